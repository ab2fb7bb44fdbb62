// Package hashtable implements an open-addressed hash table with three
// interchangeable collision policies — quadratic probing with tombstones,
// Robin Hood hashing with backward-shift deletion, and hopscotch hashing
// with a bounded neighborhood — selected per Table at construction.
package hashtable

// Policy selects the collision-resolution strategy a Table uses.
type Policy int

const (
	Quadratic Policy = iota
	RobinHood
	Hopscotch
)

// hopNeighborhood is the number of consecutive buckets hopscotch hashing
// is willing to search from an item's ideal bucket before it must
// displace a neighbor or grow the table.
const hopNeighborhood = 32

type slotState uint8

const (
	slotEmpty slotState = iota
	slotOccupied
	slotTombstone
)

type entry[K comparable, V any] struct {
	key   K
	val   V
	hash  uint64
	state slotState
}

// Table is a generic open-addressed hash table keyed by K. HashFn must be
// supplied by the caller; use GenericMap for a front end that derives one
// automatically for comparable keys.
type Table[K comparable, V any] struct {
	entries []entry[K, V]
	hop     []uint32 // only populated/maintained when policy == Hopscotch
	size    int
	tombs   int
	policy  Policy
	// threshold is the max load factor in tenths (threshold/10), in [5,9].
	threshold int
	// neighborhood bounds how far a Hopscotch entry may live from its
	// home bucket; unused for the other two policies.
	neighborhood int
	HashFn       func(K) uint64
}

const minCapacity = 8

// defaultThreshold is the max load factor (9/10) used by New.
const defaultThreshold = 9

// New returns an empty Table using policy and hashFn, with the default max
// load factor (9/10) and, for Hopscotch, the default neighborhood (32).
func New[K comparable, V any](policy Policy, hashFn func(K) uint64) *Table[K, V] {
	return NewWithConfig[K, V](policy, hashFn, defaultThreshold, hopNeighborhood)
}

// NewWithCapacity returns an empty Table pre-sized so that capacity
// entries fit without growing, using the default load factor and
// neighborhood.
func NewWithCapacity[K comparable, V any](policy Policy, hashFn func(K) uint64, capacity int) *Table[K, V] {
	t := NewWithConfig[K, V](policy, hashFn, defaultThreshold, hopNeighborhood)
	t.Resize((capacity*10 + defaultThreshold - 1) / defaultThreshold)
	return t
}

// NewWithConfig returns an empty Table using policy and hashFn, with an
// explicit max-load-factor threshold in tenths (must be in [5,9]) and, for
// Hopscotch, an explicit neighborhood width (must be in [8,32]; ignored
// otherwise).
func NewWithConfig[K comparable, V any](policy Policy, hashFn func(K) uint64, threshold, neighborhood int) *Table[K, V] {
	if threshold < 5 || threshold > 9 {
		panic("hashtable: threshold must be in [5,9]")
	}
	if policy == Hopscotch && (neighborhood < 8 || neighborhood > 32) {
		panic("hashtable: neighborhood must be in [8,32]")
	}
	t := &Table[K, V]{policy: policy, HashFn: hashFn, threshold: threshold, neighborhood: neighborhood}
	t.rehash(minCapacity)
	return t
}

// Len returns the number of live entries.
func (t *Table[K, V]) Len() int { return t.size }

// Cap returns the current bucket capacity (always a power of two).
func (t *Table[K, V]) Cap() int { return len(t.entries) }

func (t *Table[K, V]) mask() uint64 { return uint64(len(t.entries) - 1) }

// maxEntries is the load-factor ceiling threshold*capacity/10.
func (t *Table[K, V]) maxEntries(capacity int) int { return t.threshold * capacity / 10 }

func (t *Table[K, V]) rehash(newCap int) {
	if newCap < minCapacity {
		newCap = minCapacity
	}
	// round up to a power of two, then further if needed to honor
	// max_entries >= live (growth/shrink may raise the chosen capacity).
	cap := minCapacity
	for cap < newCap || t.maxEntries(cap) < t.size {
		cap <<= 1
	}
	old := t.entries
	t.entries = make([]entry[K, V], cap)
	if t.policy == Hopscotch {
		t.hop = make([]uint32, cap)
	} else {
		t.hop = nil
	}
	t.size = 0
	t.tombs = 0
	for _, e := range old {
		if e.state == slotOccupied {
			t.insertEntry(e.key, e.val, e.hash)
		}
	}
}

func (t *Table[K, V]) loadFactorExceeded() bool {
	return t.size+t.tombs+1 > t.maxEntries(len(t.entries))
}

func (t *Table[K, V]) growIfNeeded() {
	if t.loadFactorExceeded() {
		t.rehash(len(t.entries) * 2)
	}
}

// shrinkIfNeeded implements the post-remove load-management rules: shrink
// to capacity/4 (never below minCapacity) once live entries drop below
// capacity/8, and — Quadratic only — rehash into a new bucket array of the
// same capacity once tombstones exceed capacity/2, to reclaim them without
// changing size.
func (t *Table[K, V]) shrinkIfNeeded() {
	capacity := len(t.entries)
	if t.policy == Quadratic && t.tombs > capacity/2 {
		t.rehash(capacity)
		return
	}
	if capacity > minCapacity && t.size < capacity/8 {
		t.rehash(capacity / 4)
	}
}

// Insert adds key/val, overwriting any existing value for an equal key.
// It reports whether a new key was inserted (false means an existing
// value was overwritten).
func (t *Table[K, V]) Insert(key K, val V) bool {
	t.growIfNeeded()
	h := t.HashFn(key)
	return t.insertEntry(key, val, h)
}

func (t *Table[K, V]) insertEntry(key K, val V, h uint64) bool {
	switch t.policy {
	case Quadratic:
		return t.quadraticInsert(key, val, h)
	case RobinHood:
		return t.robinHoodInsert(key, val, h)
	default:
		return t.hopscotchInsert(key, val, h)
	}
}

// Find looks up key, returning its value and whether it was present.
func (t *Table[K, V]) Find(key K) (V, bool) {
	h := t.HashFn(key)
	switch t.policy {
	case Quadratic:
		return t.quadraticFind(key, h)
	case RobinHood:
		return t.robinHoodFind(key, h)
	default:
		return t.hopscotchFind(key, h)
	}
}

// Contains reports whether key is present.
func (t *Table[K, V]) Contains(key K) bool {
	_, ok := t.Find(key)
	return ok
}

// Delete removes key, reporting whether it was present.
func (t *Table[K, V]) Delete(key K) bool {
	h := t.HashFn(key)
	var removed bool
	switch t.policy {
	case Quadratic:
		removed = t.quadraticDelete(key, h)
	case RobinHood:
		removed = t.robinHoodDelete(key, h)
	default:
		removed = t.hopscotchDelete(key, h)
	}
	if removed {
		t.shrinkIfNeeded()
	}
	return removed
}

// Clear removes every entry, keeping the current capacity.
func (t *Table[K, V]) Clear() {
	for i := range t.entries {
		t.entries[i] = entry[K, V]{}
	}
	for i := range t.hop {
		t.hop[i] = 0
	}
	t.size = 0
	t.tombs = 0
}

// Resize rehashes the table into a capacity of at least newCap buckets
// (rounded up to a power of two, raised further if needed so the live
// entries still fit under the load-factor ceiling, never below the
// minimum capacity).
func (t *Table[K, V]) Resize(newCap int) {
	t.rehash(newCap)
}

// Each calls fn for every live entry, in increasing bucket (physical
// index) order — the only order iteration guarantees, and one that
// changes arbitrarily across resizes.
func (t *Table[K, V]) Each(fn func(key K, val V)) {
	for _, e := range t.entries {
		if e.state == slotOccupied {
			fn(e.key, e.val)
		}
	}
}

// Iterator yields the table's live entries in increasing bucket order.
// Mutating the table while iterating is undefined.
type Iterator[K comparable, V any] struct {
	t   *Table[K, V]
	idx int
}

// Iter returns an Iterator positioned before the first live entry.
func (t *Table[K, V]) Iter() *Iterator[K, V] {
	return &Iterator[K, V]{t: t, idx: -1}
}

// Next advances to the next live entry, reporting whether one exists.
func (it *Iterator[K, V]) Next() bool {
	for it.idx+1 < len(it.t.entries) {
		it.idx++
		if it.t.entries[it.idx].state == slotOccupied {
			return true
		}
	}
	it.idx = len(it.t.entries)
	return false
}

// Key returns the current entry's key. Valid only after Next returns true.
func (it *Iterator[K, V]) Key() K { return it.t.entries[it.idx].key }

// Value returns the current entry's value. Valid only after Next returns
// true.
func (it *Iterator[K, V]) Value() V { return it.t.entries[it.idx].val }
