package core

import (
	"fmt"
	"math/bits"
)

// Insert materializes the simplex named by keys, together with every
// non-empty subset of keys, back-filling every incidence link among the
// newly and previously created nodes. keys must be strictly ascending,
// pairwise distinct, and no longer than the complex's top dimension.
//
// Every key in keys is removed from the vertex-key allocator (marked
// used), whether or not the vertex already existed. Returns a handle to
// the top-dimensional node named by keys.
func (c *Complex) Insert(keys []Key) (SimplexId, error) {
	return c.insert(keys, nil, false)
}

// InsertPayload behaves like Insert but additionally sets the payload of
// the top node named by keys: if it already existed, its payload is
// overwritten; if it is new, its payload is set to p. Payloads of any
// subsimplices created along the way are left at their zero value.
func (c *Complex) InsertPayload(keys []Key, p interface{}) (SimplexId, error) {
	return c.insert(keys, p, true)
}

func (c *Complex) insert(keys []Key, payload interface{}, havePayload bool) (SimplexId, error) {
	n := len(keys)
	if n == 0 {
		return SimplexId{}, ErrEmptyKeys
	}
	if n > c.dim {
		return SimplexId{}, fmt.Errorf("%w: %d keys, top dimension %d", ErrDimensionOverflow, n, c.dim)
	}
	for i := 1; i < n; i++ {
		if keys[i] <= keys[i-1] {
			return SimplexId{}, ErrUnsortedKeys
		}
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	memo := make(map[uint64]*node, 1<<uint(n))
	memo[0] = c.root

	full := uint64(1)<<uint(n) - 1
	for _, mask := range masksByPopcount(n) {
		if _, ok := memo[mask]; ok {
			continue
		}
		i := bits.Len64(mask) - 1 // index of highest set bit
		v := keys[i]
		parentMask := mask &^ (uint64(1) << uint(i))

		m, ok := memo[parentMask]
		if !ok {
			return SimplexId{}, errInvariant("insert: parent subset not resolved before child")
		}

		child, existed := m.up[v]
		if !existed {
			child = c.newNode(bits.OnesCount64(mask))
			child.down[v] = m
			child.edgeData[v] = nil
			m.up[v] = child

			for w, p := range m.down {
				pp, ok := p.up[v]
				if !ok {
					return SimplexId{}, errInvariant("insert: back-fill sibling missing")
				}
				child.down[w] = pp
				child.edgeData[w] = nil
				pp.up[w] = child
			}
			c.log.Debugf("core: created simplex dim=%d name=%v", child.dim, c.nameLocked(child))
		}
		memo[mask] = child
	}

	top := memo[full]
	if havePayload {
		top.payload = payload
	}
	for _, k := range keys {
		if err := c.alloc.Remove(k); err != nil {
			return SimplexId{}, err
		}
	}
	return SimplexId{n: top}, nil
}

// AddVertex allocates a fresh key from the index allocator and inserts it
// as a dimension-1 simplex with no payload. Returns ErrExhausted if the
// allocator has no free key.
func (c *Complex) AddVertex() (Key, error) {
	return c.addVertex(nil, false)
}

// AddVertexPayload behaves like AddVertex but sets the new vertex's
// payload.
func (c *Complex) AddVertexPayload(p interface{}) (Key, error) {
	return c.addVertex(p, true)
}

func (c *Complex) addVertex(p interface{}, havePayload bool) (Key, error) {
	c.mu.Lock()
	k, err := c.alloc.Pop()
	c.mu.Unlock()
	if err != nil {
		return 0, ErrExhausted
	}
	// Pop already excluded k from the allocator; Insert's own Remove(k)
	// call is then a correct, harmless no-op.

	if havePayload {
		if _, err := c.InsertPayload([]Key{k}, p); err != nil {
			return 0, err
		}
	} else {
		if _, err := c.Insert([]Key{k}); err != nil {
			return 0, err
		}
	}
	return k, nil
}

// masksByPopcount returns every non-zero subset mask of an n-bit universe
// (1 <= mask <= 2^n-1), ordered by increasing population count so that
// every proper subset of a mask is guaranteed to precede it.
func masksByPopcount(n int) []uint64 {
	total := 1 << uint(n)
	out := make([]uint64, 0, total-1)
	for mask := 1; mask < total; mask++ {
		out = append(out, uint64(mask))
	}
	// Stable sort by popcount preserves numeric order within a popcount
	// class, which is deterministic and fine since ties are independent.
	sortByPopcount(out)
	return out
}

func sortByPopcount(masks []uint64) {
	// Simple insertion sort keyed by popcount: n is bounded by the
	// complex's top dimension, so the mask count (2^n) is always small
	// in practice and this stays cheap.
	for i := 1; i < len(masks); i++ {
		j := i
		for j > 0 && bits.OnesCount64(masks[j-1]) > bits.OnesCount64(masks[j]) {
			masks[j-1], masks[j] = masks[j], masks[j-1]
			j--
		}
	}
}
