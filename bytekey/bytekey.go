// Package bytekey builds order-preserving byte encodings of primitive
// values, for callers who want to plug ordinary Go values into the
// comparator-based containers (btree, rbtree, hashtable) as keys without
// hand-writing a Less/Equal pair for every type.
//
// Integer encoding policy
// -----------------------
// Every integer constructor produces an 8-byte big-endian encoding with
// an offset of 1<<63 added before encoding, so that:
//
//   - byte-lexicographic comparison of two Keys matches numeric ordering
//     of the values they were built from, including negative values;
//   - Keys built from different integer widths are comparable, e.g.
//     FromInt32(x).Equal(FromInt64(x)) for any x that fits both.
package bytekey

import (
	"encoding/binary"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/unicode/norm"
)

// Key is a byte slice whose lexicographic order matches the ordering of
// the value it was built from.
type Key []byte

const signOffset = uint64(1) << 63

func fromInt64(i int64) Key {
	var b [8]byte
	binary.BigEndian.PutUint64(b[:], uint64(i)+signOffset)
	return b[:]
}

func fromUint64(u uint64) Key {
	if u > 1<<63-1 {
		// Adding signOffset would wrap, placing the value below every
		// non-negative key. The shared signed/unsigned layout covers
		// [-2^63, 2^63); values outside it have no slot.
		panic("bytekey: unsigned value exceeds the shared signed/unsigned key domain")
	}
	var b [8]byte
	binary.BigEndian.PutUint64(b[:], u+signOffset)
	return b[:]
}

// FromInt encodes a signed int.
func FromInt(i int) Key { return fromInt64(int64(i)) }

// FromInt64 encodes an int64.
func FromInt64(i int64) Key { return fromInt64(i) }

// FromInt32 encodes an int32 into the same 8-byte layout FromInt64 uses.
func FromInt32(i int32) Key { return fromInt64(int64(i)) }

// FromInt16 encodes an int16 into the same 8-byte layout FromInt64 uses.
func FromInt16(i int16) Key { return fromInt64(int64(i)) }

// FromInt8 encodes an int8 into the same 8-byte layout FromInt64 uses.
func FromInt8(i int8) Key { return fromInt64(int64(i)) }

// FromUint encodes an unsigned int. Values above 2^63-1 panic; see
// FromUint64.
func FromUint(u uint) Key { return fromUint64(uint64(u)) }

// FromUint64 encodes a uint64. Values above 2^63-1 panic: the 8-byte
// layout is shared with the signed constructors so signed and unsigned
// keys of the same value compare equal, which leaves no room for the
// upper half of the uint64 range.
func FromUint64(u uint64) Key { return fromUint64(u) }

// FromUint32 encodes a uint32 into the same 8-byte layout FromUint64 uses.
func FromUint32(u uint32) Key { return fromUint64(uint64(u)) }

// FromUint16 encodes a uint16 into the same 8-byte layout FromUint64 uses.
func FromUint16(u uint16) Key { return fromUint64(uint64(u)) }

// FromUint8 encodes a uint8 into the same 8-byte layout FromUint64 uses.
func FromUint8(u uint8) Key { return fromUint64(uint64(u)) }

// FromByte is an alias for FromUint8.
func FromByte(b byte) Key { return FromUint8(b) }

// FromBytes copies b into a Key; byte slices already order correctly
// under plain lexicographic comparison, so no transformation is applied.
// A nil b yields an empty, non-nil Key.
func FromBytes(b []byte) Key {
	kb := make([]byte, len(b))
	copy(kb, b)
	return Key(kb)
}

// FromString returns a Key carrying the NFC-normalized UTF-8 encoding of
// s, so canonically-equivalent strings (the same text in different
// Unicode composition forms) compare equal and byte order matches
// codepoint order for same-form inputs.
func FromString(s string) Key {
	return FromBytes([]byte(norm.NFC.String(s)))
}

// FromRune encodes a rune as its UTF-8 bytes.
func FromRune(r rune) Key {
	var buf [utf8.UTFMax]byte
	n := utf8.EncodeRune(buf[:], r)
	return FromBytes(buf[:n])
}

// Bytes returns a copy of the Key's contents.
func (k Key) Bytes() []byte { return append([]byte{}, k...) }

// Clone returns an independent copy of k.
func (k Key) Clone() Key { return Key(k.Bytes()) }

// IsEmpty reports whether k has zero length.
func (k Key) IsEmpty() bool { return len(k) == 0 }

// Equal reports whether k and other hold identical bytes.
func (k Key) Equal(other Key) bool { return string(k) == string(other) }

// Less reports whether k sorts strictly before other under
// byte-lexicographic comparison.
func (k Key) Less(other Key) bool { return string(k) < string(other) }

// String renders k as comma-separated uppercase hex byte pairs, e.g.
// "[01,AB,00]", for diagnostics.
func (k Key) String() string {
	if len(k) == 0 {
		return "[]"
	}
	var sb strings.Builder
	sb.WriteByte('[')
	const hexDigits = "0123456789ABCDEF"
	for i, b := range k {
		if i > 0 {
			sb.WriteByte(',')
		}
		sb.WriteByte(hexDigits[b>>4])
		sb.WriteByte(hexDigits[b&0x0F])
	}
	sb.WriteByte(']')
	return sb.String()
}

// Less is a free-function comparator over Keys, suitable for
// btree.New/rbtree.New which expect a func(a, b T) bool.
func Less(a, b Key) bool { return a.Less(b) }
