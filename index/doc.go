// Package index provides IndexAllocator, a reusable allocator of small
// non-negative integer keys backed by a balanced tree of disjoint,
// maximal, half-open free intervals [a,b).
//
// A freshly constructed allocator considers every key in [0, Max) free.
// Pop claims the smallest free key; Insert returns a key to the pool,
// merging it with adjacent free intervals; Remove excludes a key from the
// pool without claiming it through Pop (used when a caller already knows
// which key it wants, e.g. deserializing a complex).
//
// The tree backing the free set is github.com/emirpasic/gods's red-black
// tree rather than its btree implementation: interval merging on Insert
// and Remove needs predecessor/successor lookups (Floor/Ceiling), which
// gods only exposes on redblacktree. The node-fan-out and rebalancing
// behavior spec'd for a classical B-tree is delegated to that library.
package index
