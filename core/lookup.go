package core

import "sort"

// Get walks from the root along the sorted key tuple name and returns the
// handle it names, if present.
func (c *Complex) Get(name []Key) (SimplexId, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	cur := c.root
	for _, k := range name {
		next, ok := cur.up[k]
		if !ok {
			return SimplexId{}, false
		}
		cur = next
	}
	if cur == c.root {
		return SimplexId{}, false
	}
	return SimplexId{n: cur}, true
}

// GetUp continues a lookup from h along the additional sorted keys in
// tail, i.e. it returns the handle named by name(h) ++ tail.
func (c *Complex) GetUp(h SimplexId, tail []Key) (SimplexId, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	cur := h.n
	for _, k := range tail {
		next, ok := cur.up[k]
		if !ok {
			return SimplexId{}, false
		}
		cur = next
	}
	return SimplexId{n: cur}, true
}

// GetDown returns the handle named by name(h) with every key in drop
// removed (drop need not be sorted, but every key must appear in
// name(h)).
func (c *Complex) GetDown(h SimplexId, drop []Key) (SimplexId, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	dropSet := make(map[Key]bool, len(drop))
	for _, k := range drop {
		dropSet[k] = true
	}
	remaining := make([]Key, 0)
	for _, k := range c.nameLocked(h.n) {
		if !dropSet[k] {
			remaining = append(remaining, k)
		}
	}
	if len(remaining) != h.n.dim-len(drop) {
		return SimplexId{}, false
	}
	cur := c.root
	for _, k := range remaining {
		next, ok := cur.up[k]
		if !ok {
			return SimplexId{}, false
		}
		cur = next
	}
	return SimplexId{n: cur}, true
}

// Name returns the sorted vertex-key tuple naming h, read off by
// recursively unioning its boundary keys.
func (c *Complex) Name(h SimplexId) []Key {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.nameLocked(h.n)
}

func (c *Complex) nameLocked(n *node) []Key {
	if n.dim == 0 {
		return nil
	}
	out := make([]Key, 0, n.dim)
	for k := range n.down {
		out = append(out, k)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// Cover returns the coboundary keys of h: the set of keys a such that
// h.up[a] exists.
func (c *Complex) Cover(h SimplexId) []Key {
	c.mu.RLock()
	defer c.mu.RUnlock()
	out := make([]Key, 0, len(h.n.up))
	for k := range h.n.up {
		out = append(out, k)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// Boundary returns the (dim-1)-face handles of h.
func (c *Complex) Boundary(h SimplexId) []SimplexId {
	c.mu.RLock()
	defer c.mu.RUnlock()
	out := make([]SimplexId, 0, len(h.n.down))
	for _, p := range h.n.down {
		out = append(out, SimplexId{n: p})
	}
	return out
}

// Coboundary returns the (dim+1)-coface handles of h.
func (c *Complex) Coboundary(h SimplexId) []SimplexId {
	c.mu.RLock()
	defer c.mu.RUnlock()
	out := make([]SimplexId, 0, len(h.n.up))
	for _, ch := range h.n.up {
		out = append(out, SimplexId{n: ch})
	}
	return out
}

// EdgeUp returns the EdgeId from h to its coface reachable via key, if
// any.
func (c *Complex) EdgeUp(h SimplexId, key Key) (EdgeId, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	child, ok := h.n.up[key]
	if !ok {
		return EdgeId{}, false
	}
	return EdgeId{child: child, key: key}, true
}

// EdgeDown returns the EdgeId from h's parent (missing key) to h.
func (c *Complex) EdgeDown(h SimplexId, key Key) (EdgeId, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if _, ok := h.n.down[key]; !ok {
		return EdgeId{}, false
	}
	return EdgeId{child: h.n, key: key}, true
}

// EdgeData returns the payload stored on edge e.
func (c *Complex) EdgeData(e EdgeId) interface{} {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return e.child.edgeData[e.key]
}

// SetEdgeData sets the payload stored on edge e.
func (c *Complex) SetEdgeData(e EdgeId, data interface{}) {
	c.mu.Lock()
	defer c.mu.Unlock()
	e.child.edgeData[e.key] = data
}

// Payload returns the payload stored on h's node.
func (c *Complex) Payload(h SimplexId) interface{} {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return h.n.payload
}

// SetPayload overwrites the payload stored on h's node.
func (c *Complex) SetPayload(h SimplexId, p interface{}) {
	c.mu.Lock()
	defer c.mu.Unlock()
	h.n.payload = p
}

// PayloadAs type-asserts h's payload to T, returning ok=false on mismatch
// or on a nil payload.
func PayloadAs[T any](c *Complex, h SimplexId) (T, bool) {
	v, ok := c.Payload(h).(T)
	return v, ok
}

// Size returns the number of live simplices at dimension k.
func (c *Complex) Size(k int) int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if k < 0 || k > c.dim {
		return 0
	}
	return len(c.tables[k])
}

// Iter calls fn for every live handle at dimension k, in unspecified
// order, until fn returns false or every handle has been visited.
func (c *Complex) Iter(k int, fn func(SimplexId) bool) {
	c.mu.RLock()
	nodes := make([]*node, 0, len(c.tables[k]))
	for _, n := range c.tables[k] {
		nodes = append(nodes, n)
	}
	c.mu.RUnlock()

	for _, n := range nodes {
		if !fn(SimplexId{n: n}) {
			return
		}
	}
}
