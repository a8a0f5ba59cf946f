package query

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/casc/core"
	"github.com/katalvlaran/casc/simplexset"
)

// buildDisk builds the triangulated disk from spec.md scenario S3:
// triangles {013, 035, 134, 345, 124, 245} over vertices 0..5.
func buildDisk(t *testing.T) *core.Complex {
	t.Helper()
	c := core.New(3)
	for _, tri := range [][]core.Key{
		{0, 1, 3}, {0, 3, 5}, {1, 3, 4}, {3, 4, 5}, {1, 2, 4}, {2, 4, 5},
	} {
		_, err := c.Insert(tri)
		require.NoError(t, err)
	}
	return c
}

// TestStarClosureLinkOfEdge covers scenario S3.
func TestStarClosureLinkOfEdge(t *testing.T) {
	c := buildDisk(t)
	e34, ok := c.Get([]core.Key{3, 4})
	require.True(t, ok)

	star := StarOf(c, e34)
	assert.Equal(t, 1, star.Size(2))
	assert.Equal(t, 2, star.Size(3))
	for _, tri := range [][]core.Key{{1, 3, 4}, {3, 4, 5}} {
		h, ok := c.Get(tri)
		require.True(t, ok)
		assert.True(t, star.Contains(h))
	}

	closure := ClosureOf(c, e34)
	assert.Equal(t, 2, closure.Size(1))
	assert.Equal(t, 1, closure.Size(2))
	v3, _ := c.Get([]core.Key{3})
	v4, _ := c.Get([]core.Key{4})
	assert.True(t, closure.Contains(v3))
	assert.True(t, closure.Contains(v4))

	link := LinkOf(c, e34)
	v1, _ := c.Get([]core.Key{1})
	v5, _ := c.Get([]core.Key{5})
	assert.Equal(t, 2, link.TotalSize())
	assert.True(t, link.Contains(v1))
	assert.True(t, link.Contains(v5))
}

// TestLinkFormula covers property 13 directly.
func TestLinkFormula(t *testing.T) {
	c := buildDisk(t)
	e34, ok := c.Get([]core.Key{3, 4})
	require.True(t, ok)
	S := simplexset.New(c.Dim())
	S.Insert(e34)

	want := simplexset.Difference(Closure(c, Star(c, S)), Star(c, Closure(c, S)))
	got := Link(c, S)
	assert.True(t, simplexset.Equal(want, got))
}
