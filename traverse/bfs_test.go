package traverse

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/casc/core"
)

func buildTet(t *testing.T) *core.Complex {
	t.Helper()
	c := core.New(4)
	_, err := c.Insert([]core.Key{1, 2, 3, 4})
	require.NoError(t, err)
	return c
}

func TestVisitBFSUpVisitsEveryCofaceOnce(t *testing.T) {
	c := buildTet(t)
	v, ok := c.Get([]core.Key{1})
	require.True(t, ok)

	seen := map[core.SimplexId]int{}
	VisitBFSUp(c, v, VisitorFunc(func(dim int, h core.SimplexId) bool {
		seen[h]++
		return true
	}))
	// vertex 1 belongs to: itself, 3 edges, 3 triangles, 1 tet = 8
	assert.Equal(t, 8, len(seen))
	for _, n := range seen {
		assert.Equal(t, 1, n)
	}
}

func TestVisitBFSUpFalseStopsExpansionNotSiblings(t *testing.T) {
	c := buildTet(t)
	v, ok := c.Get([]core.Key{1})
	require.True(t, ok)

	visitedDims := map[int]int{}
	VisitBFSUp(c, v, VisitorFunc(func(dim int, h core.SimplexId) bool {
		visitedDims[dim]++
		return dim != 1 // stop expanding past dimension-1 nodes
	}))
	assert.Equal(t, 1, visitedDims[1])
	assert.Equal(t, 0, visitedDims[2])
}

func TestVisitBFSDownNeverVisitsRoot(t *testing.T) {
	c := buildTet(t)
	top, ok := c.Get([]core.Key{1, 2, 3, 4})
	require.True(t, ok)

	minDim := 99
	VisitBFSDown(c, top, VisitorFunc(func(dim int, h core.SimplexId) bool {
		if dim < minDim {
			minDim = dim
		}
		return true
	}))
	assert.Equal(t, 1, minDim)
}

func TestNeighborsShareBoundaryFace(t *testing.T) {
	c := core.New(2)
	_, err := c.Insert([]core.Key{1, 2})
	require.NoError(t, err)
	_, err = c.Insert([]core.Key{2, 3})
	require.NoError(t, err)
	e12, ok := c.Get([]core.Key{1, 2})
	require.True(t, ok)
	e23, ok := c.Get([]core.Key{2, 3})
	require.True(t, ok)

	nb := Neighbors(c, e12)
	assert.True(t, nb.Contains(e23))
	assert.False(t, nb.Contains(e12))
}

func TestKNeighborsExcludesStart(t *testing.T) {
	c := buildTet(t)
	v, ok := c.Get([]core.Key{1})
	require.True(t, ok)
	ring := KNeighbors(c, v, 1)
	assert.False(t, ring.Contains(v))
	assert.True(t, ring.TotalSize() > 0)
}
