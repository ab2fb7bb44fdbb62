// Package btree implements an ordered set over a configurable-fanout
// B-tree. Node splits and merges happen eagerly on the way down from the
// root, so Insert and Delete each need only a single top-to-bottom pass
// with no separate rebalancing walk back up.
package btree

// DefaultDegree is the minimum degree (t) used by New: internal nodes
// other than the root have between t-1 and 2t-1 keys.
const DefaultDegree = 16

type node[T any] struct {
	keys     []T
	children []*node[T]
	leaf     bool
}

func newNode[T any](leaf bool) *node[T] {
	return &node[T]{leaf: leaf}
}

// BTree is an ordered set of T.
type BTree[T any] struct {
	root   *node[T]
	degree int
	size   int
	Less   func(a, b T) bool
}

// New returns an empty BTree ordered by less, using the default fanout.
func New[T any](less func(a, b T) bool) *BTree[T] {
	return NewWithDegree(less, DefaultDegree)
}

// NewWithDegree returns an empty BTree with the given minimum degree
// (degree must be >= 2).
func NewWithDegree[T any](less func(a, b T) bool, degree int) *BTree[T] {
	if degree < 2 {
		panic("btree: degree must be >= 2")
	}
	return &BTree[T]{
		root:   newNode[T](true),
		degree: degree,
		Less:   less,
	}
}

// Len returns the number of keys stored.
func (bt *BTree[T]) Len() int { return bt.size }

const linearSearchThreshold = 16

// search returns the index of the first key >= target (lower_bound), and
// whether that key is an exact match. Hybrid: binary search for wide
// nodes, linear scan for narrow ones, where branch prediction and cache
// locality make the scan cheaper.
func (bt *BTree[T]) search(n *node[T], target T) (int, bool) {
	if len(n.keys) <= linearSearchThreshold {
		for i, k := range n.keys {
			if bt.Less(target, k) {
				return i, false
			}
			if !bt.Less(k, target) {
				return i, true
			}
		}
		return len(n.keys), false
	}
	lo, hi := 0, len(n.keys)
	for lo < hi {
		mid := int(uint(lo+hi) >> 1)
		if bt.Less(n.keys[mid], target) {
			lo = mid + 1
		} else {
			hi = mid
		}
	}
	found := lo < len(n.keys) && !bt.Less(target, n.keys[lo])
	return lo, found
}

// Find reports whether key is present.
func (bt *BTree[T]) Find(key T) (T, bool) {
	n := bt.root
	for {
		i, found := bt.search(n, key)
		if found {
			return n.keys[i], true
		}
		if n.leaf {
			var zero T
			return zero, false
		}
		n = n.children[i]
	}
}

// GetLeftmost returns the smallest key, or false if the tree is empty.
func (bt *BTree[T]) GetLeftmost() (T, bool) {
	n := bt.root
	if len(n.keys) == 0 {
		var zero T
		return zero, false
	}
	for !n.leaf {
		n = n.children[0]
	}
	return n.keys[0], true
}

// GetRightmost returns the largest key, or false if the tree is empty.
func (bt *BTree[T]) GetRightmost() (T, bool) {
	n := bt.root
	if len(n.keys) == 0 {
		var zero T
		return zero, false
	}
	for !n.leaf {
		n = n.children[len(n.children)-1]
	}
	return n.keys[len(n.keys)-1], true
}

func (bt *BTree[T]) maxKeys() int { return 2*bt.degree - 1 }

// splitChild splits the full child at index i of n into two nodes of
// degree-1 keys each, promoting the median key into n.
func (bt *BTree[T]) splitChild(n *node[T], i int) {
	t := bt.degree
	full := n.children[i]
	mid := full.keys[t-1]

	right := newNode[T](full.leaf)
	right.keys = append(right.keys, full.keys[t:]...)
	if !full.leaf {
		right.children = append(right.children, full.children[t:]...)
		full.children = full.children[:t]
	}
	full.keys = full.keys[:t-1]

	n.children = append(n.children, nil)
	copy(n.children[i+2:], n.children[i+1:])
	n.children[i+1] = right

	n.keys = append(n.keys, mid)
	copy(n.keys[i+1:], n.keys[i:])
	n.keys[i] = mid
}

// Insert adds key to the tree, reporting whether it was newly inserted.
// If an equal key (per Less) is already present, the tree is left
// unmodified and Insert returns false — duplicate keys are rejected, not
// overwritten. Use Set to replace an existing equal key.
func (bt *BTree[T]) Insert(key T) bool {
	return bt.put(key, false)
}

// Set inserts key, or — if an equal key (per Less) is already present —
// replaces it with key, invoking release on the replaced value first (if
// release is non-nil). It reports whether key was newly inserted (false
// means an existing equal key was replaced).
func (bt *BTree[T]) Set(key T, release func(old T)) bool {
	if release == nil {
		return bt.put(key, true)
	}
	if old, ok := bt.Find(key); ok {
		release(old)
	}
	return bt.put(key, true)
}

func (bt *BTree[T]) put(key T, replace bool) bool {
	root := bt.root
	if len(root.keys) == bt.maxKeys() {
		newRoot := newNode[T](false)
		newRoot.children = append(newRoot.children, root)
		bt.root = newRoot
		bt.splitChild(newRoot, 0)
		root = newRoot
	}
	return bt.insertNonFull(root, key, replace)
}

func (bt *BTree[T]) insertNonFull(n *node[T], key T, replace bool) bool {
	i, found := bt.search(n, key)
	if found {
		if replace {
			n.keys[i] = key
		}
		return false
	}
	if n.leaf {
		n.keys = append(n.keys, key)
		copy(n.keys[i+1:], n.keys[i:])
		n.keys[i] = key
		bt.size++
		return true
	}
	if len(n.children[i].keys) == bt.maxKeys() {
		bt.splitChild(n, i)
		if bt.Less(n.keys[i], key) {
			i++
		} else if !bt.Less(key, n.keys[i]) {
			if replace {
				n.keys[i] = key
			}
			return false
		}
	}
	return bt.insertNonFull(n.children[i], key, replace)
}

// InsertSequential is equivalent to Insert but documents the caller's
// intent that keys arrive in ascending order. The generic Insert above
// already runs in amortized O(log n) for sequential insertion because
// every split touches only the rightmost path, so no separate code path
// is needed here.
func (bt *BTree[T]) InsertSequential(key T) bool {
	return bt.Insert(key)
}

// DeleteMin removes and returns the smallest key, or false if the tree is
// empty. This is the delete-min mode alongside Delete's by-key mode.
func (bt *BTree[T]) DeleteMin() (T, bool) {
	min, ok := bt.GetLeftmost()
	if !ok {
		return min, false
	}
	bt.Delete(min)
	return min, true
}

// DeleteMax removes and returns the largest key, or false if the tree is
// empty. This is the delete-max mode alongside Delete's by-key mode.
func (bt *BTree[T]) DeleteMax() (T, bool) {
	max, ok := bt.GetRightmost()
	if !ok {
		return max, false
	}
	bt.Delete(max)
	return max, true
}

// Delete removes key from the tree, reporting whether it was present.
func (bt *BTree[T]) Delete(key T) bool {
	removed := bt.delete(bt.root, key)
	if !bt.root.leaf && len(bt.root.keys) == 0 {
		bt.root = bt.root.children[0]
	}
	return removed
}

func (bt *BTree[T]) delete(n *node[T], key T) bool {
	i, found := bt.search(n, key)
	t := bt.degree

	if found {
		if n.leaf {
			n.keys = append(n.keys[:i], n.keys[i+1:]...)
			bt.size--
			return true
		}
		if len(n.children[i].keys) >= t {
			pred := bt.maxNode(n.children[i])
			n.keys[i] = pred.keys[len(pred.keys)-1]
			return bt.delete(n.children[i], n.keys[i])
		}
		if len(n.children[i+1].keys) >= t {
			succ := bt.minNode(n.children[i+1])
			n.keys[i] = succ.keys[0]
			return bt.delete(n.children[i+1], n.keys[i])
		}
		bt.mergeChildren(n, i)
		return bt.delete(n.children[i], key)
	}

	if n.leaf {
		return false
	}

	child := bt.ensureChildHasMinKeys(n, i)
	return bt.delete(child, key)
}

func (bt *BTree[T]) maxNode(n *node[T]) *node[T] {
	for !n.leaf {
		n = n.children[len(n.children)-1]
	}
	return n
}

func (bt *BTree[T]) minNode(n *node[T]) *node[T] {
	for !n.leaf {
		n = n.children[0]
	}
	return n
}

// mergeChildren merges n.children[i], n.keys[i] and n.children[i+1] into a
// single node stored at n.children[i].
func (bt *BTree[T]) mergeChildren(n *node[T], i int) {
	left, right := n.children[i], n.children[i+1]
	left.keys = append(left.keys, n.keys[i])
	left.keys = append(left.keys, right.keys...)
	if !left.leaf {
		left.children = append(left.children, right.children...)
	}
	n.keys = append(n.keys[:i], n.keys[i+1:]...)
	n.children = append(n.children[:i+1], n.children[i+2:]...)
}

// ensureChildHasMinKeys guarantees n.children[i] has at least degree keys
// before recursing into it, borrowing from a sibling or merging as
// needed, and returns the (possibly different) child to recurse into.
func (bt *BTree[T]) ensureChildHasMinKeys(n *node[T], i int) *node[T] {
	t := bt.degree
	child := n.children[i]
	if len(child.keys) >= t {
		return child
	}

	if i > 0 && len(n.children[i-1].keys) >= t {
		left := n.children[i-1]
		child.keys = append([]T{n.keys[i-1]}, child.keys...)
		n.keys[i-1] = left.keys[len(left.keys)-1]
		left.keys = left.keys[:len(left.keys)-1]
		if !left.leaf {
			lastChild := left.children[len(left.children)-1]
			child.children = append([]*node[T]{lastChild}, child.children...)
			left.children = left.children[:len(left.children)-1]
		}
		return child
	}

	if i < len(n.children)-1 && len(n.children[i+1].keys) >= t {
		right := n.children[i+1]
		child.keys = append(child.keys, n.keys[i])
		n.keys[i] = right.keys[0]
		right.keys = right.keys[1:]
		if !right.leaf {
			firstChild := right.children[0]
			child.children = append(child.children, firstChild)
			right.children = right.children[1:]
		}
		return child
	}

	if i < len(n.children)-1 {
		bt.mergeChildren(n, i)
		return n.children[i]
	}
	bt.mergeChildren(n, i-1)
	return n.children[i-1]
}
