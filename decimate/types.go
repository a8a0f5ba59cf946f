package decimate

import (
	"github.com/katalvlaran/casc/core"
	"github.com/katalvlaran/casc/simplexset"
)

// CallbackBundle synthesizes the payload of one post-collapse simplex from
// the set of pre-collapse simplices that merged into it. dim is the
// dimension of the surviving simplex (len(newName)); merged holds every
// old handle whose rewritten name equals newName, including the
// collapsing simplex's own faces when dim==1 (the new vertex itself).
//
// A nil error with a nil returned payload is fine — the surviving simplex
// is simply created with no payload, the same as a plain Insert.
type CallbackBundle interface {
	Callback(c *core.Complex, dim int, newName []core.Key, merged *simplexset.SimplexSet) (interface{}, error)
}

// CallbackFunc adapts a plain function to CallbackBundle, mirroring
// traverse.VisitorFunc.
type CallbackFunc func(c *core.Complex, dim int, newName []core.Key, merged *simplexset.SimplexSet) (interface{}, error)

// Callback calls f.
func (f CallbackFunc) Callback(c *core.Complex, dim int, newName []core.Key, merged *simplexset.SimplexSet) (interface{}, error) {
	return f(c, dim, newName, merged)
}

// Classes is the result of ComputeClasses: the fresh replacement vertex
// and the grouping of every affected old simplex into the equivalence
// class it will collapse into.
type Classes struct {
	// Vertex is the freshly allocated key standing in for the collapsed
	// simplex once Apply runs.
	Vertex core.Key

	// N is every simplex touched by the collapse: star(closure(s)).
	N *simplexset.SimplexSet

	sVertexKeys []core.Key
	sSet        map[core.Key]bool
	groups      *simplexset.SimplexMap
}

func (cl *Classes) rewriteName(c *core.Complex, t core.SimplexId) []core.Key {
	tName := c.Name(t)
	out := make([]core.Key, 0, len(tName)+1)
	for _, k := range tName {
		if !cl.sSet[k] {
			out = append(out, k)
		}
	}
	out = append(out, cl.Vertex)
	sortKeys(out)
	return out
}

func sortKeys(k []core.Key) {
	for i := 1; i < len(k); i++ {
		for j := i; j > 0 && k[j-1] > k[j]; j-- {
			k[j-1], k[j] = k[j], k[j-1]
		}
	}
}
