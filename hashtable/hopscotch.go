package hashtable

import "math/bits"

// Hopscotch hashing bounds every key to live within t.neighborhood slots
// of its ideal bucket, tracked by a per-bucket bitmap (hop[idx] bit j set
// means "the item whose ideal bucket is idx currently sits at idx+j").
// That keeps lookups to a single cache line scan. Insertion finds a free
// slot by linear probing and then "hops" it backward into range by
// repeatedly displacing an occupant that can tolerate the move; if no
// such displacement exists within the neighborhood the table is grown
// and the insert retried, which is the fail-and-grow behavior the
// neighborhood size is tuned against.

func (t *Table[K, V]) hopscotchFind(key K, h uint64) (V, bool) {
	mask := t.mask()
	idx := h & mask
	bitmap := t.hop[idx]
	for bitmap != 0 {
		j := uint64(bits.TrailingZeros32(bitmap))
		pos := (idx + j) & mask
		e := &t.entries[pos]
		if e.state == slotOccupied && e.hash == h && e.key == key {
			return e.val, true
		}
		bitmap &^= 1 << j
	}
	var zero V
	return zero, false
}

func (t *Table[K, V]) hopscotchDelete(key K, h uint64) bool {
	mask := t.mask()
	idx := h & mask
	bitmap := t.hop[idx]
	for bitmap != 0 {
		j := uint64(bits.TrailingZeros32(bitmap))
		pos := (idx + j) & mask
		e := &t.entries[pos]
		if e.state == slotOccupied && e.hash == h && e.key == key {
			t.entries[pos] = entry[K, V]{}
			t.hop[idx] &^= 1 << j
			t.size--
			return true
		}
		bitmap &^= 1 << j
	}
	return false
}

func (t *Table[K, V]) hopscotchInsert(key K, val V, h uint64) bool {
	mask := t.mask()
	idx := h & mask

	bitmap := t.hop[idx]
	for bitmap != 0 {
		j := uint64(bits.TrailingZeros32(bitmap))
		pos := (idx + j) & mask
		e := &t.entries[pos]
		if e.state == slotOccupied && e.hash == h && e.key == key {
			e.val = val
			return false
		}
		bitmap &^= 1 << j
	}

	free := idx
	probed := uint64(0)
	for t.entries[free].state == slotOccupied {
		free = (free + 1) & mask
		probed++
		if probed > mask {
			t.rehash(len(t.entries) * 2)
			return t.hopscotchInsert(key, val, h)
		}
	}

	neighborhood := uint64(t.neighborhood)
	for (free-idx)&mask >= neighborhood {
		moved := false
		start := (free - (neighborhood - 1)) & mask
		for j := start; j != free; j = (j + 1) & mask {
			je := &t.entries[j]
			if je.state != slotOccupied {
				continue
			}
			origin := je.hash & mask
			if (free-origin)&mask < neighborhood {
				t.entries[free] = *je
				t.hop[origin] &^= 1 << ((j - origin) & mask)
				t.hop[origin] |= 1 << ((free - origin) & mask)
				t.entries[j] = entry[K, V]{}
				free = j
				moved = true
				break
			}
		}
		if !moved {
			t.rehash(len(t.entries) * 2)
			return t.hopscotchInsert(key, val, h)
		}
	}

	t.entries[free] = entry[K, V]{key: key, val: val, hash: h, state: slotOccupied}
	t.hop[idx] |= 1 << ((free - idx) & mask)
	t.size++
	return true
}
