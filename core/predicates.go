package core

// Exists reports whether name currently names a live simplex.
func (c *Complex) Exists(name []Key) bool {
	_, ok := c.Get(name)
	return ok
}

// OnBoundary reports whether h lies on the boundary of the complex per
// spec §4.2:
//   - a D-node is on the boundary iff any of its down parents is;
//   - a (D-1)-node is on the boundary iff its up coboundary has fewer
//     than 2 entries;
//   - a k-node with k < D-1 is on the boundary iff any coface up to
//     dimension D-1 is.
func (c *Complex) OnBoundary(h SimplexId) bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.onBoundaryLocked(h.n)
}

func (c *Complex) onBoundaryLocked(n *node) bool {
	switch {
	case n.dim == c.dim:
		for _, p := range n.down {
			if c.onBoundaryLocked(p) {
				return true
			}
		}
		return false
	case n.dim == c.dim-1:
		return len(n.up) < 2
	default:
		for _, ch := range n.up {
			if ch.dim <= c.dim-1 && c.onBoundaryLocked(ch) {
				return true
			}
		}
		return false
	}
}

// NearBoundary reports whether any subsimplex of h (including h itself)
// is on the boundary.
func (c *Complex) NearBoundary(h SimplexId) bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.nearBoundaryLocked(h.n, make(map[*node]bool))
}

func (c *Complex) nearBoundaryLocked(n *node, seen map[*node]bool) bool {
	if seen[n] {
		return false
	}
	seen[n] = true
	if c.onBoundaryLocked(n) {
		return true
	}
	for _, p := range n.down {
		if c.nearBoundaryLocked(p, seen) {
			return true
		}
	}
	return false
}

// Leq reports whether a is a face of b (a's name is a subset of b's
// name), including the case a == b.
func (c *Complex) Leq(a, b SimplexId) bool {
	if a.n == b.n {
		return true
	}
	if a.n.dim >= b.n.dim {
		return false
	}
	c.mu.RLock()
	defer c.mu.RUnlock()
	an := c.nameLocked(a.n)
	bset := make(map[Key]bool, b.n.dim)
	for _, k := range c.nameLocked(b.n) {
		bset[k] = true
	}
	for _, k := range an {
		if !bset[k] {
			return false
		}
	}
	return true
}

// Lt reports whether a is a proper face of b.
func (c *Complex) Lt(a, b SimplexId) bool {
	return a.n != b.n && c.Leq(a, b)
}

// Eq reports whether a and b name the same node.
func (c *Complex) Eq(a, b SimplexId) bool {
	return a.n == b.n
}
