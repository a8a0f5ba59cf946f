package simplexset

import "github.com/katalvlaran/casc/core"

// SimplexSet is a record of D+1 per-dimension hash sets of
// core.SimplexId handles. The zero value is not usable; construct with
// New.
type SimplexSet struct {
	dim     int
	buckets []map[core.SimplexId]struct{}
}

// New returns an empty SimplexSet sized for a complex of top dimension
// dim.
func New(dim int) *SimplexSet {
	s := &SimplexSet{dim: dim, buckets: make([]map[core.SimplexId]struct{}, dim+1)}
	for k := range s.buckets {
		s.buckets[k] = make(map[core.SimplexId]struct{})
	}
	return s
}

// Dim returns the top dimension this set was sized for.
func (s *SimplexSet) Dim() int { return s.dim }

// Insert adds h to the set. O(1) amortized.
func (s *SimplexSet) Insert(h core.SimplexId) {
	s.buckets[h.Dim()][h] = struct{}{}
}

// Erase removes h from the set. O(1) amortized.
func (s *SimplexSet) Erase(h core.SimplexId) {
	delete(s.buckets[h.Dim()], h)
}

// Contains reports whether h is a member.
func (s *SimplexSet) Contains(h core.SimplexId) bool {
	_, ok := s.buckets[h.Dim()][h]
	return ok
}

// Find is an alias for Contains kept for parity with spec.md's naming.
func (s *SimplexSet) Find(h core.SimplexId) bool { return s.Contains(h) }

// Size returns the number of members at dimension k.
func (s *SimplexSet) Size(k int) int {
	if k < 0 || k >= len(s.buckets) {
		return 0
	}
	return len(s.buckets[k])
}

// TotalSize returns the number of members across every dimension.
func (s *SimplexSet) TotalSize() int {
	n := 0
	for _, b := range s.buckets {
		n += len(b)
	}
	return n
}

// Empty reports whether the set has no members at any dimension.
func (s *SimplexSet) Empty() bool { return s.TotalSize() == 0 }

// Clear removes every member.
func (s *SimplexSet) Clear() {
	for k := range s.buckets {
		s.buckets[k] = make(map[core.SimplexId]struct{})
	}
}

// At returns every member at dimension k, in unspecified order.
func (s *SimplexSet) At(k int) []core.SimplexId {
	if k < 0 || k >= len(s.buckets) {
		return nil
	}
	out := make([]core.SimplexId, 0, len(s.buckets[k]))
	for h := range s.buckets[k] {
		out = append(out, h)
	}
	return out
}

// ForEach calls fn for every member across every dimension, in
// unspecified order, until fn returns false.
func (s *SimplexSet) ForEach(fn func(core.SimplexId) bool) {
	for _, b := range s.buckets {
		for h := range b {
			if !fn(h) {
				return
			}
		}
	}
}

// Equal reports whether a and b contain exactly the same handles.
func Equal(a, b *SimplexSet) bool {
	if a.TotalSize() != b.TotalSize() {
		return false
	}
	equal := true
	a.ForEach(func(h core.SimplexId) bool {
		if !b.Contains(h) {
			equal = false
			return false
		}
		return true
	})
	return equal
}

// Union returns a new set containing every member of a or b.
func Union(a, b *SimplexSet) *SimplexSet {
	dim := a.dim
	if b.dim > dim {
		dim = b.dim
	}
	out := New(dim)
	a.ForEach(func(h core.SimplexId) bool { out.Insert(h); return true })
	b.ForEach(func(h core.SimplexId) bool { out.Insert(h); return true })
	return out
}

// Intersection returns a new set containing members of both a and b.
// Iterates the smaller side for efficiency.
func Intersection(a, b *SimplexSet) *SimplexSet {
	dim := a.dim
	if b.dim > dim {
		dim = b.dim
	}
	out := New(dim)
	small, large := a, b
	if b.TotalSize() < a.TotalSize() {
		small, large = b, a
	}
	small.ForEach(func(h core.SimplexId) bool {
		if large.Contains(h) {
			out.Insert(h)
		}
		return true
	})
	return out
}

// Difference returns a new set containing members of a that are not in b.
func Difference(a, b *SimplexSet) *SimplexSet {
	out := New(a.dim)
	a.ForEach(func(h core.SimplexId) bool {
		if !b.Contains(h) {
			out.Insert(h)
		}
		return true
	})
	return out
}
