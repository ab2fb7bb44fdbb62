package dstring

// The functions below are read-only search helpers over borrowed data:
// they operate directly on a []byte without requiring a String
// allocation, for callers that only need to search.

// IndexByte returns the offset of the first occurrence of b in s at or
// after from, or -1.
func IndexByte(s []byte, b byte, from int) int {
	for i := from; i < len(s); i++ {
		if s[i] == b {
			return i
		}
	}
	return -1
}

// LastIndexByte returns the offset of the last occurrence of b in s before
// upto (the byte at upto is not examined), or -1.
func LastIndexByte(s []byte, b byte, upto int) int {
	for i := upto - 1; i >= 0; i-- {
		if s[i] == b {
			return i
		}
	}
	return -1
}

// HasPrefix reports whether s begins with prefix.
func HasPrefix(s, prefix []byte) bool {
	if len(prefix) > len(s) {
		return false
	}
	for i := range prefix {
		if s[i] != prefix[i] {
			return false
		}
	}
	return true
}

// HasSuffix reports whether s ends with suffix.
func HasSuffix(s, suffix []byte) bool {
	if len(suffix) > len(s) {
		return false
	}
	off := len(s) - len(suffix)
	for i := range suffix {
		if s[off+i] != suffix[i] {
			return false
		}
	}
	return true
}

// Compare performs a byte-lexicographic comparison of a and b.
func Compare(a, b []byte) int {
	n := len(a)
	if len(b) < n {
		n = len(b)
	}
	for i := 0; i < n; i++ {
		if a[i] != b[i] {
			if a[i] < b[i] {
				return -1
			}
			return 1
		}
	}
	switch {
	case len(a) < len(b):
		return -1
	case len(a) > len(b):
		return 1
	default:
		return 0
	}
}
