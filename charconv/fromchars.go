package charconv

import "math"

// FromCharsResult reports how much of the input FromChars consumed and
// whether the parse succeeded. OK and Overflow are never both true:
// Overflow means digits were recognized but the magnitude didn't fit the
// target type, and the output was left unmodified either way.
type FromCharsResult struct {
	N        int  // bytes consumed on success/overflow; index of the first invalid byte on failure
	OK       bool
	Overflow bool
}

func digitValue(c byte) (int, bool) {
	switch {
	case c >= '0' && c <= '9':
		return int(c - '0'), true
	case c >= 'a' && c <= 'z':
		return int(c-'a') + 10, true
	case c >= 'A' && c <= 'Z':
		return int(c-'A') + 10, true
	default:
		return 0, false
	}
}

// scanDigits consumes digits valid in base from s, returning the
// accumulated magnitude, whether the accumulation overflowed uint64, and
// how many bytes were consumed.
func scanDigits(s []byte, base uint64) (mag uint64, overflowed bool, n int) {
	for n < len(s) {
		d, ok := digitValue(s[n])
		if !ok || uint64(d) >= base {
			break
		}
		if mag > (math.MaxUint64-uint64(d))/base {
			overflowed = true
		} else {
			mag = mag*base + uint64(d)
		}
		n++
	}
	return mag, overflowed, n
}

// FromChars parses the textual representation of a T from the front of s.
// If flags encodes no explicit base, the base is autodetected from a
// 0b/0B, 0o/0O or 0x/0X prefix, defaulting to decimal when none matches.
func FromChars[T Integer](s []byte, flags Flags) (T, FromCharsResult) {
	var zero T
	bitSize := bitSizeOf[T]()
	signed := isSigned[T]()
	autodetect := flags&baseMask == 0

	pos := 0
	neg := false
	if pos < len(s) && (s[pos] == '-' || s[pos] == '+') {
		if !signed {
			return zero, FromCharsResult{N: 0}
		}
		neg = s[pos] == '-'
		pos++
	}
	signEnd := pos

	base := resolveBase(flags)
	digitsStart := pos
	if autodetect && pos+1 < len(s) && s[pos] == '0' {
		switch s[pos+1] {
		case 'b', 'B':
			base, digitsStart = 2, pos+2
		case 'o', 'O':
			base, digitsStart = 8, pos+2
		case 'x', 'X':
			base, digitsStart = 16, pos+2
		}
	}

	mag, overflowed, n := scanDigits(s[digitsStart:], base)
	if n == 0 {
		if digitsStart != signEnd {
			// Prefix matched but no digit followed it (e.g. a bare "0x");
			// the leading '0' still parses as a valid decimal digit.
			mag, overflowed, n = scanDigits(s[signEnd:], 10)
			digitsStart = signEnd
		}
		if n == 0 {
			return zero, FromCharsResult{N: digitsStart}
		}
	}

	var allowedMax uint64
	switch {
	case neg:
		allowedMax = uint64(1) << (bitSize - 1)
	case signed:
		allowedMax = uint64(1)<<(bitSize-1) - 1
	default:
		allowedMax = maxMagnitude(bitSize, false)
	}
	if overflowed || mag > allowedMax {
		return zero, FromCharsResult{N: digitsStart + n, Overflow: true}
	}

	var result uint64
	if neg {
		result = uint64(-int64(mag))
	} else {
		result = mag
	}
	return T(result), FromCharsResult{N: digitsStart + n, OK: true}
}
