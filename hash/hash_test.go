package hash

import (
	"bytes"
	"testing"
	"testing/quick"

	"github.com/stretchr/testify/require"
)

func sequentialKey16() SipKey {
	var k SipKey
	for i := range k {
		k[i] = byte(i)
	}
	return k
}

func sequentialKey8() HalfSipKey {
	var k HalfSipKey
	for i := range k {
		k[i] = byte(i)
	}
	return k
}

func TestSipHashDeterministic(t *testing.T) {
	key := sequentialKey16()
	msg := []byte("the quick brown fox")
	a := SipHash24_64(msg, key)
	b := SipHash24_64(msg, key)
	require.Equal(t, a.Uint64(), b.Uint64())
}

func TestSipHashKeySensitivity(t *testing.T) {
	msg := []byte("identical message")
	k1 := sequentialKey16()
	k2 := k1
	k2[0] ^= 1
	h1 := SipHash24_64(msg, k1)
	h2 := SipHash24_64(msg, k2)
	require.NotEqual(t, h1.Uint64(), h2.Uint64())
}

func TestSipHashLengthSensitivity(t *testing.T) {
	key := sequentialKey16()
	// Exercise every tail-length branch (0..7 extra bytes beyond a full block).
	seen := map[uint64]bool{}
	for n := 0; n < 32; n++ {
		msg := bytes.Repeat([]byte{0xAB}, n)
		h := SipHash24_64(msg, key)
		seen[h.Uint64()] = true
	}
	require.True(t, len(seen) > 28, "expected near-universal distinctness across lengths, got %d/32", len(seen))
}

// The 128-bit mode mixes 0xee into v1 at setup and into v2 before
// finalization (the 64-bit mode uses 0xff), so its low half is not the
// 64-bit output; both are pinned separately.
func TestSipHash64And128PinnedOutputs(t *testing.T) {
	key := sequentialKey16()
	msg := []byte("0123456789abcdef")
	h64 := SipHash24_64(msg, key)
	h128 := SipHash24_128(msg, key)
	require.Equal(t, [8]byte{0xbd, 0xec, 0xb4, 0x61, 0x3e, 0xcc, 0xe5, 0xf1}, h64.Bytes())
	require.Equal(t, [16]byte{0xb0, 0x02, 0x7d, 0x51, 0xd2, 0xd7, 0xde, 0x0b, 0xa2, 0xe9, 0xb5, 0x86, 0x41, 0x74, 0xff, 0x67}, h128.Bytes())
}

func TestSipHash13DiffersFrom24(t *testing.T) {
	key := sequentialKey16()
	msg := []byte("round count matters")
	h13 := SipHash13_64(msg, key)
	h24 := SipHash24_64(msg, key)
	require.NotEqual(t, h13.Uint64(), h24.Uint64())
}

func TestHalfSipHashDeterministicAndSensitive(t *testing.T) {
	key := sequentialKey8()
	msg := []byte("half the width")
	a := HalfSipHash24_32(msg, key)
	b := HalfSipHash24_32(msg, key)
	require.Equal(t, a.Uint32(), b.Uint32())

	key2 := key
	key2[0] ^= 1
	c := HalfSipHash24_32(msg, key2)
	require.NotEqual(t, a.Uint32(), c.Uint32())
}

// As with SipHash, the 64-bit HalfSipHash mode uses its own domain
// separation constants, so its low half is not the 32-bit output; both are
// pinned separately.
func TestHalfSipHash32And64PinnedOutputs(t *testing.T) {
	key := sequentialKey8()
	msg := []byte("abcdefghijklmnop")
	h32 := HalfSipHash24_32(msg, key)
	h64 := HalfSipHash24_64(msg, key)
	require.Equal(t, [4]byte{0x55, 0x26, 0x88, 0x24}, h32.Bytes())
	require.Equal(t, [8]byte{0xec, 0x58, 0xdf, 0x85, 0x9d, 0x9a, 0xf2, 0xf6}, h64.Bytes())
}

func TestMurmurHash3DeterministicAndSensitive(t *testing.T) {
	msg := []byte("murmur test string, long enough to span multiple blocks!!")
	a := MurmurHash3_x86_32(msg, 0)
	b := MurmurHash3_x86_32(msg, 0)
	require.Equal(t, a.Uint32(), b.Uint32())

	c := MurmurHash3_x86_32(msg, 1)
	require.NotEqual(t, a.Uint32(), c.Uint32())
}

func TestMurmurHash3TailLengths(t *testing.T) {
	seen32 := map[uint32]bool{}
	for n := 0; n < 48; n++ {
		msg := bytes.Repeat([]byte{0x5A}, n)
		seen32[MurmurHash3_x86_32(msg, 42).Uint32()] = true
	}
	require.True(t, len(seen32) > 40)

	seen128 := map[[16]byte]bool{}
	for n := 0; n < 48; n++ {
		msg := bytes.Repeat([]byte{0x5A}, n)
		seen128[MurmurHash3_x86_128(msg, 42).Bytes()] = true
	}
	require.True(t, len(seen128) > 40)

	seenx64 := map[[16]byte]bool{}
	for n := 0; n < 48; n++ {
		msg := bytes.Repeat([]byte{0x5A}, n)
		seenx64[MurmurHash3_x64_128(msg, 42).Bytes()] = true
	}
	require.True(t, len(seenx64) > 40)
}

func TestMurmurHash3_64IsPrefixOf128(t *testing.T) {
	msg := []byte("truncation check")
	x86_128Bytes := MurmurHash3_x86_128(msg, 7).Bytes()
	require.Equal(t, MurmurHash3_x86_64(msg, 7).Bytes(), [8]byte(x86_128Bytes[:8]))
	x64_128Bytes := MurmurHash3_x64_128(msg, 7).Bytes()
	require.Equal(t, MurmurHash3_x64_64(msg, 7).Bytes(), [8]byte(x64_128Bytes[:8]))
}

func TestIntFinalizersAreBijectiveOnSample(t *testing.T) {
	// fmix is a bijection, so distinct inputs must stay distinct.
	seen := map[uint32]bool{}
	for i := uint32(0); i < 10000; i++ {
		seen[Int32(i).Uint32()] = true
	}
	require.Equal(t, 10000, len(seen))
}

func TestFibonacciHashTopBitsStable(t *testing.T) {
	f := func(x uint32) bool {
		top8 := Fibonacci32(x, 8)
		return top8 < 256
	}
	require.NoError(t, quick.Check(f, nil))
}

func TestCombineNotIdentityAtZero(t *testing.T) {
	require.NotEqual(t, uint32(0), CombineInt32(0, 0).Uint32())
	require.NotEqual(t, uint64(0), CombineInt64(0, 0).Uint64())
}

func TestCombineSensitiveToOrder(t *testing.T) {
	a := CombineInt64(1, 2)
	b := CombineInt64(2, 1)
	require.NotEqual(t, a.Uint64(), b.Uint64())
}
