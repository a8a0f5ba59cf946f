package core

// AllocateKey claims and returns the smallest free vertex key without
// materializing any node for it — used by decimate to reserve the
// collapse target's key before the destroy/rebuild mutation runs.
// Returns ErrExhausted if none remain.
func (c *Complex) AllocateKey() (Key, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	k, err := c.alloc.Pop()
	if err != nil {
		return 0, ErrExhausted
	}
	return k, nil
}

// ReleaseKey returns a key claimed via AllocateKey back to the free pool
// without ever having inserted a vertex for it — used to unwind a failed
// decimation.
func (c *Complex) ReleaseKey(k Key) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.alloc.Insert(k)
}

// KeyInUse reports whether key currently names a live vertex or has been
// claimed (via AllocateKey or Insert) but not yet returned.
func (c *Complex) KeyInUse(k Key) bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return !c.alloc.Contains(k)
}
