package core

import (
	"fmt"
	"sort"
	"strings"
)

// SimplexId is an opaque, copyable, totally-ordered, hashable reference
// to a single node of a Complex. It is comparable with ==, but never
// meaningfully compared across two different Complex values.
//
// A SimplexId dangles once the node it names has been removed, whether
// directly (Remove) or by cascade (removing an ancestor, or decimation).
// The library does not detect use-after-remove; callers must not use a
// handle once any operation that could have deleted its node has run.
type SimplexId struct {
	n *node
}

// Dim returns the dimension of the simplex h refers to.
func (h SimplexId) Dim() int { return h.n.dim }

// Valid reports whether h wraps a live node. It does not guarantee the
// node will still be alive by the time the caller next uses it.
func (h SimplexId) Valid() bool { return h.n != nil && h.n.alive }

// Less orders handles first by dimension, then by creation order, giving
// SimplexId a total order suitable for use as a sorted-set key.
func (h SimplexId) Less(o SimplexId) bool {
	if h.n.dim != o.n.dim {
		return h.n.dim < o.n.dim
	}
	return h.n.seq < o.n.seq
}

// String renders h as its vertex-key name, e.g. "{1,2,3}", or "∅" for
// the root. Reads h's own node directly rather than going through a
// Complex, so it is safe to call with no lock held (log lines and error
// messages format handles this way without a Complex reference).
func (h SimplexId) String() string {
	if h.n == nil {
		return "<nil>"
	}
	if h.n.dim == 0 {
		return "∅"
	}
	keys := make([]Key, 0, len(h.n.down))
	for k := range h.n.down {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool { return keys[i] < keys[j] })
	parts := make([]string, len(keys))
	for i, k := range keys {
		parts[i] = fmt.Sprint(k)
	}
	return "{" + strings.Join(parts, ",") + "}"
}

// EdgeId names a single parent -> child incidence edge: the child node
// and the key by which the parent removed to reach it (i.e. the key
// present in child's name but absent from parent's).
type EdgeId struct {
	child *node
	key   Key
}

// Dim returns the dimension of the edge's child endpoint; the parent
// lives at Dim()-1.
func (e EdgeId) Dim() int { return e.child.dim }

// Key returns the vertex key that distinguishes child from parent.
func (e EdgeId) Key() Key { return e.key }

// Up returns the child endpoint of the edge.
func (e EdgeId) Up() SimplexId { return SimplexId{n: e.child} }

// Down returns the parent endpoint of the edge.
func (e EdgeId) Down() SimplexId { return SimplexId{n: e.child.down[e.key]} }

// Less orders edges lexicographically by (child, key).
func (e EdgeId) Less(o EdgeId) bool {
	if e.child != o.child {
		return e.child.seq < o.child.seq
	}
	return e.key < o.key
}
