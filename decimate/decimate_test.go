package decimate

import (
	"errors"
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

// countingCallback records one invocation per equivalence class and
// hands back its dimension as the payload so callers can check what
// actually landed on the surviving node.
type countingCallback struct {
	calls int
}

func (cb *countingCallback) Callback(c *core.Complex, dim int, newName []core.Key, merged *simplexset.SimplexSet) (interface{}, error) {
	cb.calls++
	return dim, nil
}

// TestDecimateEdgeCollapsesToOneVertex covers scenario S6: collapsing
// edge {3,4} of the disk. Every simplex touching vertex 3 or 4 (2
// vertices, 7 edges, 6 triangles — worked out by hand from the disk's 11
// edges and 6 triangles) merges into 9 equivalence classes: one vertex
// class (the two old vertices plus the edge {3,4} itself), four edge
// classes ({0,v},{1,v},{2,v},{5,v}), and four triangle classes
// ({0,1,v},{0,5,v},{1,2,v},{2,5,v}).
func TestDecimateEdgeCollapsesToOneVertex(t *testing.T) {
	c := buildDisk(t)
	e34, ok := c.Get([]core.Key{3, 4})
	require.True(t, ok)

	classes, err := ComputeClasses(c, e34)
	require.NoError(t, err)
	assert.Equal(t, 2, classes.N.Size(1))
	assert.Equal(t, 7, classes.N.Size(2))
	assert.Equal(t, 6, classes.N.Size(3))
	assert.Len(t, classes.groups.Groups(1), 1)
	assert.Len(t, classes.groups.Groups(2), 4)
	assert.Len(t, classes.groups.Groups(3), 4)

	cb := &countingCallback{}
	newVertex, err := Apply(c, classes, cb)
	require.NoError(t, err)
	assert.True(t, newVertex.Valid())
	assert.Equal(t, 9, cb.calls)

	// 6 vertices - 2 collapsed + 1 new = 5; 4 untouched edges (01,05,12,25)
	// + 4 new = 8; 0 untouched triangles + 4 new = 4. Euler characteristic
	// 5-8+4=1 matches the pre-collapse disk's, as collapsing an interior
	// edge should preserve.
	assert.Equal(t, 5, c.Size(1))
	assert.Equal(t, 8, c.Size(2))
	assert.Equal(t, 4, c.Size(3))

	v := classes.Vertex
	got, ok := c.Get([]core.Key{v})
	require.True(t, ok)
	assert.Equal(t, newVertex, got)

	for _, name := range [][]core.Key{{0, v}, {1, v}, {2, v}, {5, v}} {
		_, ok := c.Get(name)
		assert.True(t, ok, "expected merged edge %v", name)
	}
	for _, name := range [][]core.Key{{0, 1, v}, {0, 5, v}, {1, 2, v}, {2, 5, v}} {
		_, ok := c.Get(name)
		assert.True(t, ok, "expected merged triangle %v", name)
	}

	// untouched simplices survive unchanged
	for _, name := range [][]core.Key{{0, 1}, {0, 5}, {1, 2}, {2, 5}} {
		_, ok := c.Get(name)
		assert.True(t, ok, "expected untouched edge %v to survive", name)
	}
}

// TestDecimateRootRejected covers spec.md §7's precondition that the root
// cannot be collapsed. GetDown can hand back a root handle (dropping
// every key of a vertex reduces to the root, unlike Get which refuses an
// empty name), so that is how a caller ends up holding one.
func TestDecimateRootRejected(t *testing.T) {
	c := buildDisk(t)
	v0, ok := c.Get([]core.Key{0})
	require.True(t, ok)
	root, ok := c.GetDown(v0, []core.Key{0})
	require.True(t, ok)
	require.Equal(t, 0, root.Dim())

	_, err := ComputeClasses(c, root)
	assert.True(t, errors.Is(err, ErrRootCollapse))
}

// failingCallback always errors, to exercise the strict-abort and
// continue-on-error paths.
type failingCallback struct{}

func (failingCallback) Callback(c *core.Complex, dim int, newName []core.Key, merged *simplexset.SimplexSet) (interface{}, error) {
	return nil, errors.New("boom")
}

// TestApplyAbortsOnCallbackErrorByDefault covers the strict-mode
// all-or-nothing contract: a failing callback leaves the complex intact
// and releases the reserved vertex key.
func TestApplyAbortsOnCallbackErrorByDefault(t *testing.T) {
	c := buildDisk(t)
	e34, ok := c.Get([]core.Key{3, 4})
	require.True(t, ok)

	before1, before2, before3 := c.Size(1), c.Size(2), c.Size(3)

	classes, err := ComputeClasses(c, e34)
	require.NoError(t, err)

	_, err = Apply(c, classes, failingCallback{})
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrCallback))

	assert.Equal(t, before1, c.Size(1))
	assert.Equal(t, before2, c.Size(2))
	assert.Equal(t, before3, c.Size(3))
	assert.False(t, c.KeyInUse(classes.Vertex))
}

// TestApplyContinueOnCallbackErrorStillCollapses covers
// WithContinueOnCallbackError: the collapse completes with unpayloaded
// groups and the aggregated error is returned.
func TestApplyContinueOnCallbackErrorStillCollapses(t *testing.T) {
	c := buildDisk(t)
	e34, ok := c.Get([]core.Key{3, 4})
	require.True(t, ok)

	classes, err := ComputeClasses(c, e34)
	require.NoError(t, err)

	newVertex, err := Apply(c, classes, failingCallback{}, WithContinueOnCallbackError())
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrCallback))
	assert.True(t, newVertex.Valid())
	assert.Equal(t, 5, c.Size(1))
}
