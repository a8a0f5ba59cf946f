package traverse

import (
	"github.com/katalvlaran/casc/core"
	"github.com/katalvlaran/casc/simplexset"
)

// Neighbors returns every simplex at h's dimension that shares at least
// one boundary face with h: the union, over each boundary key a of h, of
// every sibling reachable from h.down(a) by a different cover key,
// excluding h itself.
func Neighbors(c *core.Complex, h core.SimplexId) *simplexset.SimplexSet {
	out := simplexset.New(c.Dim())
	for _, a := range c.Name(h) {
		edgeDown, ok := c.EdgeDown(h, a)
		if !ok {
			continue
		}
		p := edgeDown.Down()
		for _, b := range c.Cover(p) {
			edgeUp, ok := c.EdgeUp(p, b)
			if !ok {
				continue
			}
			sib := edgeUp.Up()
			if sib != h {
				out.Insert(sib)
			}
		}
	}
	return out
}

// NeighborsUp is the coboundary-symmetric version of Neighbors: it
// returns every simplex at h's dimension that shares at least one
// coface with h.
func NeighborsUp(c *core.Complex, h core.SimplexId) *simplexset.SimplexSet {
	out := simplexset.New(c.Dim())
	for _, a := range c.Cover(h) {
		edgeUp, ok := c.EdgeUp(h, a)
		if !ok {
			continue
		}
		q := edgeUp.Up()
		for _, w := range c.Name(q) {
			edgeDown, ok := c.EdgeDown(q, w)
			if !ok {
				continue
			}
			sib := edgeDown.Down()
			if sib != h {
				out.Insert(sib)
			}
		}
	}
	return out
}

// KNeighbors expands Neighbors r times, accumulating into a growing set;
// the starting handle itself is excluded from the result.
func KNeighbors(c *core.Complex, h core.SimplexId, r int) *simplexset.SimplexSet {
	return kring(c, h, r, Neighbors)
}

// KNeighborsUp expands NeighborsUp r times, symmetric to KNeighbors.
func KNeighborsUp(c *core.Complex, h core.SimplexId, r int) *simplexset.SimplexSet {
	return kring(c, h, r, NeighborsUp)
}

func kring(c *core.Complex, h core.SimplexId, r int, step func(*core.Complex, core.SimplexId) *simplexset.SimplexSet) *simplexset.SimplexSet {
	visited := simplexset.New(c.Dim())
	visited.Insert(h)
	frontier := []core.SimplexId{h}

	for i := 0; i < r; i++ {
		next := make([]core.SimplexId, 0)
		for _, f := range frontier {
			step(c, f).ForEach(func(nb core.SimplexId) bool {
				if !visited.Contains(nb) {
					visited.Insert(nb)
					next = append(next, nb)
				}
				return true
			})
		}
		frontier = next
	}

	visited.Erase(h)
	return visited
}
