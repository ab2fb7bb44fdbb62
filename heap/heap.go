// Package heap implements an in-place binary min-heap over a caller-owned
// slice, operating purely through index swaps and a comparator so it works
// identically over any element type.
package heap

// Less reports whether a orders before b.
type Less[T any] func(a, b T) bool

// siftDown restores the heap property starting at i using Floyd's
// bottom-up variant: it descends along the smaller child all the way to
// a leaf without comparing against data[i] itself, then sifts the
// dislodged value back up from the leaf to its resting place. This
// roughly halves the comparison count of the classical top-down
// sift-down for uniformly random input, at the cost of more swaps; do
// not substitute the top-down version.
func siftDown[T any](data []T, i int, less Less[T]) {
	n := len(data)
	val := data[i]
	pos := i
	child := 2*pos + 1
	for child < n {
		right := child + 1
		if right < n && !less(data[child], data[right]) {
			child = right
		}
		data[pos] = data[child]
		pos = child
		child = 2*pos + 1
	}
	data[pos] = val
	siftUpBounded(data, i, pos, less)
}

// siftUpBounded moves the value at pos up toward start while it is
// smaller than its parent, the second half of Floyd's sift-down.
func siftUpBounded[T any](data []T, start, pos int, less Less[T]) {
	val := data[pos]
	for pos > start {
		parent := (pos - 1) / 2
		if !less(val, data[parent]) {
			break
		}
		data[pos] = data[parent]
		pos = parent
	}
	data[pos] = val
}

// siftUp restores the heap property for an element that may have just
// decreased, moving it up toward the root while its parent is larger.
func siftUp[T any](data []T, i int, less Less[T]) {
	for i > 0 {
		parent := (i - 1) / 2
		if !less(data[i], data[parent]) {
			return
		}
		data[i], data[parent] = data[parent], data[i]
		i = parent
	}
}

// Heapify arranges data into a min-heap in place, in O(n).
func Heapify[T any](data []T, less Less[T]) {
	for i := len(data)/2 - 1; i >= 0; i-- {
		siftDown(data, i, less)
	}
}

// Insert adds a new element to a heap that occupies data and returns
// the new heap (data grown by one element). data must have spare capacity
// or will be reallocated, matching append's semantics.
func Insert[T any](data []T, val T, less Less[T]) []T {
	data = append(data, val)
	siftUp(data, len(data)-1, less)
	return data
}

// ExtractMin removes and returns the minimum element, restoring the heap
// property over the remainder.
func ExtractMin[T any](data []T, less Less[T]) (T, []T) {
	min := data[0]
	last := len(data) - 1
	data[0] = data[last]
	var zero T
	data[last] = zero
	data = data[:last]
	if len(data) > 0 {
		siftDown(data, 0, less)
	}
	return min, data
}

// DeleteFirst removes the minimum element without returning it, restoring
// the heap property over the remainder.
func DeleteFirst[T any](data []T, less Less[T]) []T {
	_, data = ExtractMin(data, less)
	return data
}

// Delete removes the element at index i from the heap, restoring the heap
// property over the remainder.
func Delete[T any](data []T, i int, less Less[T]) []T {
	last := len(data) - 1
	data[i] = data[last]
	var zero T
	data[last] = zero
	data = data[:last]
	if i < len(data) {
		siftDown(data, i, less)
		siftUp(data, i, less)
	}
	return data
}

// DecreaseKey notifies the heap that the element at i got smaller,
// restoring the heap property by moving it up.
func DecreaseKey[T any](data []T, i int, less Less[T]) {
	siftUp(data, i, less)
}

// IncreaseKey notifies the heap that the element at i got larger,
// restoring the heap property by moving it down.
func IncreaseKey[T any](data []T, i int, less Less[T]) {
	siftDown(data, i, less)
}

// IsHeapUntil returns the index of the first element that violates the
// heap property, or len(data) if none does.
func IsHeapUntil[T any](data []T, less Less[T]) int {
	for i := 1; i < len(data); i++ {
		parent := (i - 1) / 2
		if less(data[i], data[parent]) {
			return i
		}
	}
	return len(data)
}

// IsHeap reports whether data satisfies the min-heap property throughout.
func IsHeap[T any](data []T, less Less[T]) bool {
	return IsHeapUntil(data, less) == len(data)
}

// Sort performs an in-place heapsort of data using less, producing
// ascending order. data is destroyed as a heap in the process.
func Sort[T any](data []T, less Less[T]) {
	greater := func(a, b T) bool { return less(b, a) }
	Heapify(data, greater)
	for n := len(data) - 1; n > 0; n-- {
		data[0], data[n] = data[n], data[0]
		siftDown(data[:n], 0, greater)
	}
}
