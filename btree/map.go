package btree

// entryItem is the {key, value} record a map-mode node stores inline;
// Map below is a thin wrapper that orders the underlying set of
// entryItem by key alone.
type entryItem[K, V any] struct {
	key K
	val V
}

// Map is an ordered map from K to V, built directly on BTree[entryItem]:
// a map item is "just" a {key, value} record ordered by key.
type Map[K, V any] struct {
	bt *BTree[entryItem[K, V]]
}

// NewMap returns an empty Map ordered by keyLess, using the default
// fanout.
func NewMap[K, V any](keyLess func(a, b K) bool) *Map[K, V] {
	return NewMapWithDegree[K, V](keyLess, DefaultDegree)
}

// NewMapWithDegree returns an empty Map ordered by keyLess with an
// explicit minimum degree (degree must be >= 2).
func NewMapWithDegree[K, V any](keyLess func(a, b K) bool, degree int) *Map[K, V] {
	less := func(a, b entryItem[K, V]) bool { return keyLess(a.key, b.key) }
	return &Map[K, V]{bt: NewWithDegree[entryItem[K, V]](less, degree)}
}

// Len returns the number of keys stored.
func (m *Map[K, V]) Len() int { return m.bt.Len() }

// Get returns the value stored for key, and whether key was present.
func (m *Map[K, V]) Get(key K) (V, bool) {
	item, ok := m.bt.Find(entryItem[K, V]{key: key})
	return item.val, ok
}

// Insert stores val under key if key is not already present, reporting
// whether it was newly inserted. An existing entry for key is left
// unmodified — use Set to replace it.
func (m *Map[K, V]) Insert(key K, val V) bool {
	return m.bt.Insert(entryItem[K, V]{key: key, val: val})
}

// Set stores val under key, replacing any existing entry for key and
// invoking release on the replaced value first (if release is non-nil
// and key was present). It reports whether key was newly inserted.
func (m *Map[K, V]) Set(key K, val V, release func(old V)) bool {
	var rel func(entryItem[K, V])
	if release != nil {
		rel = func(old entryItem[K, V]) { release(old.val) }
	}
	return m.bt.Set(entryItem[K, V]{key: key, val: val}, rel)
}

// Delete removes key, reporting whether it was present.
func (m *Map[K, V]) Delete(key K) bool {
	return m.bt.Delete(entryItem[K, V]{key: key})
}

// DeleteMin removes and returns the entry with the smallest key.
func (m *Map[K, V]) DeleteMin() (K, V, bool) {
	item, ok := m.bt.DeleteMin()
	return item.key, item.val, ok
}

// DeleteMax removes and returns the entry with the largest key.
func (m *Map[K, V]) DeleteMax() (K, V, bool) {
	item, ok := m.bt.DeleteMax()
	return item.key, item.val, ok
}

// GetLeftmost returns the entry with the smallest key.
func (m *Map[K, V]) GetLeftmost() (K, V, bool) {
	item, ok := m.bt.GetLeftmost()
	return item.key, item.val, ok
}

// GetRightmost returns the entry with the largest key.
func (m *Map[K, V]) GetRightmost() (K, V, bool) {
	item, ok := m.bt.GetRightmost()
	return item.key, item.val, ok
}

// MapIterator walks a Map's entries in key order.
type MapIterator[K, V any] struct {
	it *Iterator[entryItem[K, V]]
}

// Next advances the iterator and reports whether an entry is available.
func (it *MapIterator[K, V]) Next() bool { return it.it.Next() }

// Key returns the current entry's key. Valid only after Next returns true.
func (it *MapIterator[K, V]) Key() K { return it.it.Key().key }

// Value returns the current entry's value. Valid only after Next returns
// true.
func (it *MapIterator[K, V]) Value() V { return it.it.Key().val }

// First returns an iterator positioned before the smallest entry.
func (m *Map[K, V]) First() *MapIterator[K, V] { return &MapIterator[K, V]{it: m.bt.First()} }

// Last returns an iterator positioned after the largest entry, for
// descending traversal via Next.
func (m *Map[K, V]) Last() *MapIterator[K, V] { return &MapIterator[K, V]{it: m.bt.Last()} }

// SeekGE returns a forward iterator positioned so the first call to Next
// yields the entry with the smallest key >= target, if any.
func (m *Map[K, V]) SeekGE(target K) *MapIterator[K, V] {
	return &MapIterator[K, V]{it: m.bt.SeekGE(entryItem[K, V]{key: target})}
}

// SeekGT returns a forward iterator positioned so the first call to Next
// yields the entry with the smallest key strictly greater than target, if
// any.
func (m *Map[K, V]) SeekGT(target K) *MapIterator[K, V] {
	return &MapIterator[K, V]{it: m.bt.SeekGT(entryItem[K, V]{key: target})}
}

// SeekLE returns a reverse iterator (use Next to walk descending)
// positioned so the first call to Next yields the entry with the largest
// key <= target, if any.
func (m *Map[K, V]) SeekLE(target K) *MapIterator[K, V] {
	return &MapIterator[K, V]{it: m.bt.SeekLE(entryItem[K, V]{key: target})}
}
