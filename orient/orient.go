package orient

import "github.com/katalvlaran/casc/core"

// State holds the signed incidence assigned to every parent->child edge,
// and the signed orientation assigned to every top-dimensional facet.
// The zero value is not usable; construct with Init.
type State struct {
	c           *core.Complex
	edgeOrient  map[core.EdgeId]int8
	facetOrient map[core.SimplexId]int8
}

// EdgeOrientation returns the sign assigned to e, or 0 if unassigned.
func (s *State) EdgeOrientation(e core.EdgeId) int8 { return s.edgeOrient[e] }

// FacetOrientation returns the sign assigned to a top-dimensional
// simplex, or 0 if unassigned.
func (s *State) FacetOrientation(h core.SimplexId) int8 { return s.facetOrient[h] }

// Init assigns every parent->child edge in c the parity of the insertion
// position of the child's extra key into the parent's name — the signed
// boundary operator's coefficients — and clears all facet orientations.
func Init(c *core.Complex) *State {
	s := &State{
		c:           c,
		edgeOrient:  make(map[core.EdgeId]int8),
		facetOrient: make(map[core.SimplexId]int8),
	}
	for k := 0; k < c.Dim(); k++ {
		c.Iter(k, func(h core.SimplexId) bool {
			name := c.Name(h)
			for _, a := range c.Cover(h) {
				e, ok := c.EdgeUp(h, a)
				if !ok {
					continue
				}
				count := 0
				for _, b := range name {
					if b < a {
						count++
					}
				}
				sign := int8(1)
				if count%2 == 1 {
					sign = -1
				}
				s.edgeOrient[e] = sign
			}
			return true
		})
	}
	return s
}

// Clear zeroes the orientation of every facet, leaving edge orientations
// untouched.
func (s *State) Clear() {
	s.facetOrient = make(map[core.SimplexId]int8)
}

// Result is the classification compute_orientation returns.
type Result struct {
	Components     int
	Orientable     bool
	PseudoManifold bool
}

// Compute runs Init followed by the facet flood-fill and returns the
// classification. It always recomputes from scratch, so repeated calls
// are idempotent on the returned flags (property 9 in spec.md §8), even
// though the specific sign pattern assigned to each facet may differ
// between calls (the seed sign for each component's first facet is
// arbitrary per spec.md §9's open question).
func Compute(c *core.Complex) Result {
	s := Init(c)
	return s.Propagate()
}

// Propagate assumes s.edgeOrient was already populated by Init and
// (re)computes facet orientation and classification. For each connected
// component of the (D-1)-skeleton's facet-adjacency graph, it seeds one
// facet with -1 and flood-fills, requiring
//
//	orient(edge(e,f0))*orient(f0) + orient(edge(e,f1))*orient(f1) == 0
//
// across every shared (D-1)-face e between facets f0, f1. A face with
// more than two incident facets marks the complex non-pseudo-manifold and
// is skipped for propagation (spec.md §9's preferred resolution of the
// pseudo-manifold open question).
func (s *State) Propagate() Result {
	s.Clear()
	c := s.c
	D := c.Dim()

	var facets []core.SimplexId
	c.Iter(D, func(h core.SimplexId) bool { facets = append(facets, h); return true })

	visited := make(map[core.SimplexId]bool, len(facets))
	result := Result{Orientable: true, PseudoManifold: true}

	for _, f0 := range facets {
		if visited[f0] {
			continue
		}
		result.Components++
		visited[f0] = true
		s.facetOrient[f0] = -1
		queue := []core.SimplexId{f0}

		for len(queue) > 0 {
			cur := queue[0]
			queue = queue[1:]
			curName := c.Name(cur)

			for _, a := range curName {
				edgeCurRidge, ok := c.EdgeDown(cur, a)
				if !ok {
					continue
				}
				ridge := edgeCurRidge.Down()
				cofacetKeys := c.Cover(ridge)
				if len(cofacetKeys) > 2 {
					result.PseudoManifold = false
					continue
				}
				for _, b := range cofacetKeys {
					if b == a {
						continue
					}
					edgeOther, ok := c.EdgeUp(ridge, b)
					if !ok {
						continue
					}
					f1 := edgeOther.Up()
					eCur := s.edgeOrient[edgeCurRidge]
					eOther := s.edgeOrient[edgeOther]

					if !visited[f1] {
						// eCur*orient(cur) + eOther*orient(f1) == 0
						s.facetOrient[f1] = -1 * eCur * s.facetOrient[cur] * eOther
						visited[f1] = true
						queue = append(queue, f1)
						continue
					}
					lhs := eCur*s.facetOrient[cur] + eOther*s.facetOrient[f1]
					if lhs != 0 {
						result.Orientable = false
					}
				}
			}
		}
	}
	return result
}
