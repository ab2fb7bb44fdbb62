package hashtable

// Quadratic probing walks the triangular sequence h, h+1, h+3, h+6, ... so
// that every bucket in a power-of-two-sized table is eventually visited,
// with tombstones marking deleted slots so later lookups keep scanning
// past them.

func (t *Table[K, V]) quadraticInsert(key K, val V, h uint64) bool {
	mask := t.mask()
	idx := h & mask
	firstTomb := -1
	for i := uint64(0); ; i++ {
		pos := (idx + i*(i+1)/2) & mask
		e := &t.entries[pos]
		switch e.state {
		case slotEmpty:
			target := pos
			if firstTomb >= 0 {
				target = uint64(firstTomb)
				t.tombs--
			}
			t.entries[target] = entry[K, V]{key: key, val: val, hash: h, state: slotOccupied}
			t.size++
			return true
		case slotTombstone:
			if firstTomb < 0 {
				firstTomb = int(pos)
			}
		case slotOccupied:
			if e.hash == h && e.key == key {
				e.val = val
				return false
			}
		}
	}
}

func (t *Table[K, V]) quadraticFind(key K, h uint64) (V, bool) {
	mask := t.mask()
	idx := h & mask
	for i := uint64(0); i <= mask; i++ {
		pos := (idx + i*(i+1)/2) & mask
		e := &t.entries[pos]
		if e.state == slotEmpty {
			var zero V
			return zero, false
		}
		if e.state == slotOccupied && e.hash == h && e.key == key {
			return e.val, true
		}
	}
	var zero V
	return zero, false
}

func (t *Table[K, V]) quadraticDelete(key K, h uint64) bool {
	mask := t.mask()
	idx := h & mask
	for i := uint64(0); i <= mask; i++ {
		pos := (idx + i*(i+1)/2) & mask
		e := &t.entries[pos]
		if e.state == slotEmpty {
			return false
		}
		if e.state == slotOccupied && e.hash == h && e.key == key {
			var zero K
			var zeroV V
			e.key, e.val = zero, zeroV
			e.state = slotTombstone
			t.size--
			t.tombs++
			return true
		}
	}
	return false
}
