package hashtable

// Robin Hood hashing keeps the variance in probe distance low by letting
// a newly inserted entry displace whichever occupant it passes that is
// closer to its own ideal bucket than the new entry currently is ("steal
// from the rich, give to the poor"). No tombstones are needed: deletion
// shifts later entries back one slot at a time (backward-shift deletion)
// until it reaches a slot whose occupant is already at its ideal bucket.

// robinHoodHome computes the ideal bucket for a stored hash. Robin Hood
// multiplies by 11 before masking (unlike Quadratic/Hopscotch's plain
// h&mask) to decorrelate adjacent buckets when keys are hashed with an
// identity function, where h is already dense and h&mask alone would
// cluster consecutive integer keys into consecutive buckets.
func robinHoodHome(hash, mask uint64) uint64 {
	return (11 * hash) & mask
}

func probeDistance(pos, hash, mask uint64) uint64 {
	return (pos - robinHoodHome(hash, mask)) & mask
}

func (t *Table[K, V]) robinHoodInsert(key K, val V, h uint64) bool {
	mask := t.mask()
	idx := robinHoodHome(h, mask)
	dist := uint64(0)
	for {
		pos := (idx + dist) & mask
		e := &t.entries[pos]
		if e.state != slotOccupied {
			t.entries[pos] = entry[K, V]{key: key, val: val, hash: h, state: slotOccupied}
			t.size++
			return true
		}
		if e.hash == h && e.key == key {
			e.val = val
			return false
		}
		existingDist := probeDistance(pos, e.hash, mask)
		if existingDist < dist {
			key, e.key = e.key, key
			val, e.val = e.val, val
			h, e.hash = e.hash, h
			dist = existingDist
		}
		dist++
	}
}

func (t *Table[K, V]) robinHoodFind(key K, h uint64) (V, bool) {
	mask := t.mask()
	idx := robinHoodHome(h, mask)
	dist := uint64(0)
	for {
		pos := (idx + dist) & mask
		e := &t.entries[pos]
		if e.state != slotOccupied {
			var zero V
			return zero, false
		}
		existingDist := probeDistance(pos, e.hash, mask)
		if existingDist < dist {
			var zero V
			return zero, false
		}
		if e.hash == h && e.key == key {
			return e.val, true
		}
		dist++
	}
}

func (t *Table[K, V]) robinHoodDelete(key K, h uint64) bool {
	mask := t.mask()
	idx := robinHoodHome(h, mask)
	dist := uint64(0)
	var pos uint64
	for {
		pos = (idx + dist) & mask
		e := &t.entries[pos]
		if e.state != slotOccupied {
			return false
		}
		existingDist := probeDistance(pos, e.hash, mask)
		if existingDist < dist {
			return false
		}
		if e.hash == h && e.key == key {
			break
		}
		dist++
	}

	cur := pos
	for {
		next := (cur + 1) & mask
		ne := &t.entries[next]
		if ne.state != slotOccupied || probeDistance(next, ne.hash, mask) == 0 {
			break
		}
		t.entries[cur] = *ne
		cur = next
	}
	t.entries[cur] = entry[K, V]{}
	t.size--
	return true
}
