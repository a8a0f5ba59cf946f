package simplexset

import (
	"fmt"

	"github.com/katalvlaran/casc/core"
)

// SimplexMap is a record of D+1 maps, the k-th mapping a sorted
// key-tuple of length k to a SimplexSet of nodes sharing that name — used
// by decimate to group old simplices into equivalence classes keyed by
// their post-collapse name.
type SimplexMap struct {
	dim     int
	buckets []map[string]*SimplexSet
}

// NewMap returns an empty SimplexMap sized for a complex of top dimension
// dim.
func NewMap(dim int) *SimplexMap {
	m := &SimplexMap{dim: dim, buckets: make([]map[string]*SimplexSet, dim+1)}
	for k := range m.buckets {
		m.buckets[k] = make(map[string]*SimplexSet)
	}
	return m
}

func tupleKey(tuple []core.Key) string {
	return fmt.Sprint(tuple)
}

// Add inserts h into the group named by tuple, creating the group's
// SimplexSet on first use. The group is filed under dimension len(tuple),
// which need not equal h.Dim().
func (m *SimplexMap) Add(tuple []core.Key, h core.SimplexId) {
	k := len(tuple)
	key := tupleKey(tuple)
	set, ok := m.buckets[k][key]
	if !ok {
		set = New(m.dim)
		m.buckets[k][key] = set
	}
	set.Insert(h)
}

// Get returns the group named by tuple, if any.
func (m *SimplexMap) Get(tuple []core.Key) (*SimplexSet, bool) {
	set, ok := m.buckets[len(tuple)][tupleKey(tuple)]
	return set, ok
}

// Groups returns every group at dimension k, keyed by the group's
// tuple-key. The returned map is the SimplexMap's own storage, not a copy.
func (m *SimplexMap) Groups(k int) map[string]*SimplexSet {
	return m.buckets[k]
}
