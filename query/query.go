package query

import (
	"github.com/katalvlaran/casc/core"
	"github.com/katalvlaran/casc/simplexset"
	"github.com/katalvlaran/casc/traverse"
)

// Star returns the union, over every s in S, of the BFS-up-reachable set
// from s. Traversal proceeds top-down in the sense that once a simplex is
// already in the accumulated result, its cofaces need not be revisited —
// the visitor short-circuits by returning false once it finds a member
// already recorded.
func Star(c *core.Complex, S *simplexset.SimplexSet) *simplexset.SimplexSet {
	out := simplexset.New(c.Dim())
	S.ForEach(func(s core.SimplexId) bool {
		traverse.VisitBFSUp(c, s, traverse.VisitorFunc(func(dim int, h core.SimplexId) bool {
			if out.Contains(h) {
				return false
			}
			out.Insert(h)
			return true
		}))
		return true
	})
	return out
}

// StarOf is the singleton convenience form of Star.
func StarOf(c *core.Complex, s core.SimplexId) *simplexset.SimplexSet {
	single := simplexset.New(c.Dim())
	single.Insert(s)
	return Star(c, single)
}

// Closure returns the union, over every s in S, of the BFS-down-reachable
// set from s (S itself included), exploiting the same monotonicity as
// Star but walking toward lower dimensions.
func Closure(c *core.Complex, S *simplexset.SimplexSet) *simplexset.SimplexSet {
	out := simplexset.New(c.Dim())
	S.ForEach(func(s core.SimplexId) bool {
		traverse.VisitBFSDown(c, s, traverse.VisitorFunc(func(dim int, h core.SimplexId) bool {
			if out.Contains(h) {
				return false
			}
			out.Insert(h)
			return true
		}))
		return true
	})
	return out
}

// ClosureOf is the singleton convenience form of Closure.
func ClosureOf(c *core.Complex, s core.SimplexId) *simplexset.SimplexSet {
	single := simplexset.New(c.Dim())
	single.Insert(s)
	return Closure(c, single)
}

// Link returns closure(star(S)) \ star(closure(S)).
func Link(c *core.Complex, S *simplexset.SimplexSet) *simplexset.SimplexSet {
	return simplexset.Difference(Closure(c, Star(c, S)), Star(c, Closure(c, S)))
}

// LinkOf is the singleton convenience form of Link.
func LinkOf(c *core.Complex, s core.SimplexId) *simplexset.SimplexSet {
	single := simplexset.New(c.Dim())
	single.Insert(s)
	return Link(c, single)
}
