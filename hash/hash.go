// Package hash provides keyed and seeded non-cryptographic byte-string
// hashes, integer finalizers, Fibonacci hashing and hash combiners.
//
// Every function here is pure: same input, same output, no allocation
// beyond the returned value. Byte inputs are always interpreted as
// little-endian, matching the reference SipHash/MurmurHash3 sources this
// package is ported from.
package hash

import "encoding/binary"

// Hash32 is a 32-bit hash output with both a byte and an integer view.
type Hash32 struct {
	bytes [4]byte
}

// Hash64 is a 64-bit hash output with both a byte and an integer view.
type Hash64 struct {
	bytes [8]byte
}

// Hash128 is a 128-bit hash output with both a byte and an integer view.
type Hash128 struct {
	bytes [16]byte
}

func hash32FromU32(v uint32) Hash32 {
	var h Hash32
	binary.LittleEndian.PutUint32(h.bytes[:], v)
	return h
}

func hash64FromU64(v uint64) Hash64 {
	var h Hash64
	binary.LittleEndian.PutUint64(h.bytes[:], v)
	return h
}

// Bytes returns the little-endian byte representation.
func (h Hash32) Bytes() [4]byte { return h.bytes }

// Uint32 returns the little-endian integer view.
func (h Hash32) Uint32() uint32 { return binary.LittleEndian.Uint32(h.bytes[:]) }

// Bytes returns the little-endian byte representation.
func (h Hash64) Bytes() [8]byte { return h.bytes }

// Uint64 returns the little-endian integer view.
func (h Hash64) Uint64() uint64 { return binary.LittleEndian.Uint64(h.bytes[:]) }

// Bytes returns the little-endian byte representation.
func (h Hash128) Bytes() [16]byte { return h.bytes }

// Lo returns the little-endian integer view of the low 64 bits.
func (h Hash128) Lo() uint64 { return binary.LittleEndian.Uint64(h.bytes[:8]) }

// Hi returns the little-endian integer view of the high 64 bits.
func (h Hash128) Hi() uint64 { return binary.LittleEndian.Uint64(h.bytes[8:]) }
