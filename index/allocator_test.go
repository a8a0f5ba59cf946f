package index

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPopClaimsSmallestFirst(t *testing.T) {
	a := NewIndexAllocator(10)
	for want := Key(0); want < 10; want++ {
		got, err := a.Pop()
		require.NoError(t, err)
		assert.Equal(t, want, got)
	}
	_, err := a.Pop()
	assert.ErrorIs(t, err, ErrExhausted)
}

func TestInsertMergesAdjacentIntervals(t *testing.T) {
	a := NewIndexAllocator(10)
	for i := Key(0); i < 10; i++ {
		_, err := a.Pop()
		require.NoError(t, err)
	}
	require.NoError(t, a.Insert(3))
	require.NoError(t, a.Insert(4))
	require.NoError(t, a.Insert(2))
	assert.Equal(t, [][2]Key{{2, 5}}, a.FreeIntervals())

	require.NoError(t, a.Insert(5)) // adjacent on the right
	assert.Equal(t, [][2]Key{{2, 6}}, a.FreeIntervals())

	require.NoError(t, a.Insert(0)) // isolated, no adjacency yet
	assert.Equal(t, [][2]Key{{0, 1}, {2, 6}}, a.FreeIntervals())

	require.NoError(t, a.Insert(1)) // bridges [0,1) and [2,6)
	assert.Equal(t, [][2]Key{{0, 6}}, a.FreeIntervals())
}

func TestRemoveSplitsInterval(t *testing.T) {
	a := NewIndexAllocator(10)
	require.NoError(t, a.Remove(4))
	assert.False(t, a.Contains(4))
	assert.Equal(t, [][2]Key{{0, 4}, {5, 10}}, a.FreeIntervals())

	// Removing an already-excluded key is a no-op.
	require.NoError(t, a.Remove(4))
	assert.Equal(t, [][2]Key{{0, 4}, {5, 10}}, a.FreeIntervals())
}

func TestRoundTripReturnsAllocatorToOriginalState(t *testing.T) {
	a := NewIndexAllocator(10)
	before := a.FreeIntervals()

	k, err := a.Pop()
	require.NoError(t, err)
	require.NoError(t, a.Insert(k))

	assert.Equal(t, before, a.FreeIntervals())
}

func TestContainsReflectsFreeSet(t *testing.T) {
	a := NewIndexAllocator(5)
	for i := Key(0); i < 5; i++ {
		assert.True(t, a.Contains(i))
	}
	k, err := a.Pop()
	require.NoError(t, err)
	assert.False(t, a.Contains(k))
	assert.False(t, a.Contains(-1))
	assert.False(t, a.Contains(5))
}
