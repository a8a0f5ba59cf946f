package core

// Remove deletes the simplex named by h together with every simplex that
// has it as a face (its full coboundary cascade), sweeping upward:
// collect direct cofaces and remove each of them recursively, then detach
// h from its boundary parents and remove it from its dimension table.
// Returns the total count of removed simplices. Vertex removal also
// returns the freed key to the index allocator.
//
// Remove on the root is a precondition violation.
func (c *Complex) Remove(h SimplexId) (int, error) {
	if h.n == c.root {
		return 0, ErrRootOperation
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.removeLocked(h.n), nil
}

// RemoveName looks up name and removes it if present.
func (c *Complex) RemoveName(name []Key) (int, error) {
	h, ok := c.Get(name)
	if !ok {
		return 0, nil
	}
	return c.Remove(h)
}

func (c *Complex) removeLocked(n *node) int {
	if !n.alive {
		return 0
	}
	// Collect the direct cofaces before mutating n's own links.
	cofaces := make([]*node, 0, len(n.up))
	for _, ch := range n.up {
		cofaces = append(cofaces, ch)
	}

	count := 0
	for _, ch := range cofaces {
		count += c.removeLocked(ch)
	}

	// n's coboundary is now empty (every coface was swept). Detach from
	// boundary parents.
	for w, p := range n.down {
		delete(p.up, w)
	}

	if n.dim == 1 {
		name := c.nameLocked(n)
		_ = c.alloc.Insert(name[0])
	}

	delete(c.tables[n.dim], n.seq)
	n.alive = false
	c.log.Debugf("core: removed simplex dim=%d seq=%d", n.dim, n.seq)
	return count + 1
}
