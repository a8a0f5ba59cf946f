package index

import (
	"fmt"
	"sync"

	"github.com/emirpasic/gods/trees/redblacktree"
)

// Key is the integer type used for vertex identifiers throughout casc.
type Key = int64

// DefaultMax is the exclusive upper bound of the key space used when a
// Complex is constructed without an explicit capacity.
const DefaultMax Key = 1 << 62

// IndexAllocator tracks the set of currently-unused keys in [0, Max) as a
// balanced tree of disjoint, maximal, half-open intervals. It is safe for
// concurrent read/write use via an internal mutex, though casc's core
// package only ever calls it under its own single-writer discipline.
type IndexAllocator struct {
	mu   sync.Mutex
	max  Key
	free *redblacktree.Tree // start(Key) -> end(Key), interval [start,end)
}

// NewIndexAllocator returns an allocator whose free set is the single
// interval [0, max). It panics if max <= 0 — this is a construction-time
// precondition violation, not a runtime error.
func NewIndexAllocator(max Key) *IndexAllocator {
	if max <= 0 {
		panic(fmt.Sprintf("index: max must be positive, got %d", max))
	}
	free := redblacktree.NewWith(intComparator)
	free.Put(Key(0), max)
	return &IndexAllocator{max: max, free: free}
}

// NewDefaultIndexAllocator uses DefaultMax as the key-space bound.
func NewDefaultIndexAllocator() *IndexAllocator {
	return NewIndexAllocator(DefaultMax)
}

// intComparator orders the tree by Key (int64) ascending, matching the
// gods utils.Comparator contract: negative/zero/positive for less/equal/
// greater.
func intComparator(a, b interface{}) int {
	x, y := a.(Key), b.(Key)
	switch {
	case x < y:
		return -1
	case x > y:
		return 1
	default:
		return 0
	}
}

// Pop removes and returns the smallest free key, shrinking or removing
// the interval it came from. Returns ErrExhausted when the free set is
// empty.
func (a *IndexAllocator) Pop() (Key, error) {
	a.mu.Lock()
	defer a.mu.Unlock()

	if a.free.Empty() {
		return 0, ErrExhausted
	}
	left := a.free.Left()
	start := left.Key.(Key)
	end := left.Value.(Key)

	a.free.Remove(start)
	if start+1 < end {
		a.free.Put(start+1, end)
	}
	return start, nil
}

// Insert returns key to the free pool, merging it with the neighboring
// free intervals so the free set stays a maximal, disjoint set of
// intervals. It is a no-op if key is already free.
func (a *IndexAllocator) Insert(key Key) error {
	if key < 0 || key >= a.max {
		return fmt.Errorf("%w: %d not in [0,%d)", ErrInvalidKey, key, a.max)
	}
	a.mu.Lock()
	defer a.mu.Unlock()

	if _, floorEnd, ok := a.floorInterval(key); ok && key < floorEnd {
		return nil // already free
	}

	newStart, newEnd := key, key+1
	if floorStart, floorEnd, ok := a.floorInterval(key); ok && floorEnd == key {
		newStart = floorStart
		a.free.Remove(floorStart)
	}
	if rightEnd, ok := a.free.Get(newEnd); ok {
		newEnd = rightEnd.(Key)
		a.free.Remove(key + 1)
	}
	a.free.Put(newStart, newEnd)
	return nil
}

// Remove excludes key from the free set without returning it via Pop. It
// is a no-op if key is already excluded (in use or out of range of any
// free interval).
func (a *IndexAllocator) Remove(key Key) error {
	if key < 0 || key >= a.max {
		return fmt.Errorf("%w: %d not in [0,%d)", ErrInvalidKey, key, a.max)
	}
	a.mu.Lock()
	defer a.mu.Unlock()

	start, end, ok := a.floorInterval(key)
	if !ok || key >= end {
		return nil // already excluded
	}
	a.free.Remove(start)
	if start < key {
		a.free.Put(start, key)
	}
	if key+1 < end {
		a.free.Put(key+1, end)
	}
	return nil
}

// Contains reports whether key is currently free.
func (a *IndexAllocator) Contains(key Key) bool {
	a.mu.Lock()
	defer a.mu.Unlock()

	if key < 0 || key >= a.max {
		return false
	}
	_, end, ok := a.floorInterval(key)
	return ok && key < end
}

// FreeIntervals returns a snapshot of the free set as sorted [start,end)
// pairs, mainly for diagnostics and tests.
func (a *IndexAllocator) FreeIntervals() [][2]Key {
	a.mu.Lock()
	defer a.mu.Unlock()

	it := a.free.Iterator()
	out := make([][2]Key, 0, a.free.Size())
	for it.Next() {
		out = append(out, [2]Key{it.Key().(Key), it.Value().(Key)})
	}
	return out
}

// Max returns the exclusive upper bound of the key space.
func (a *IndexAllocator) Max() Key { return a.max }

// floorInterval returns the interval with the largest start <= key, if
// any. Caller must hold a.mu.
func (a *IndexAllocator) floorInterval(key Key) (start, end Key, ok bool) {
	node, found := a.free.Floor(key)
	if !found {
		return 0, 0, false
	}
	return node.Key.(Key), node.Value.(Key), true
}
