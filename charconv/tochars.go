package charconv

// ToChars writes the textual representation of val into buf and returns the
// number of bytes written. If buf is too small to hold the result, buf is
// left untouched and the number of bytes that would have been required is
// returned instead; the caller can tell which case occurred by comparing
// the result against len(buf).
func ToChars[T Integer](buf []byte, val T, flags Flags) int {
	base := resolveBase(flags)
	bitSize := bitSizeOf[T]()
	signed := isSigned[T]()

	bp := uint64(val)
	neg := signed && int64(bp) < 0
	var mag uint64
	if neg {
		mag = uint64(-int64(bp))
	} else {
		mag = bp
	}

	width := digitWidth(mag, base)
	if flags&LeadingZeros != 0 {
		maxW := digitWidth(maxMagnitude(bitSize, signed), base)
		if maxW > width {
			width = maxW
		}
	}

	needSign := neg || (flags&PlusSign != 0 && signed)
	total := width
	if needSign {
		total++
	}
	if total > len(buf) {
		return total
	}

	digits := digitsLower(base)
	if flags&Uppercase != 0 {
		digits = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZ"[:base]
	}

	pos := total
	for i := 0; i < width; i++ {
		pos--
		buf[pos] = digits[mag%base]
		mag /= base
	}
	if needSign {
		pos--
		if neg {
			buf[pos] = '-'
		} else {
			buf[pos] = '+'
		}
	}
	return total
}

// ToCharsLen returns the number of bytes ToChars would write for val under
// flags, without writing anything. Useful for sizing a buffer up front.
func ToCharsLen[T Integer](val T, flags Flags) int {
	var probe [0]byte
	return ToChars(probe[:], val, flags)
}
