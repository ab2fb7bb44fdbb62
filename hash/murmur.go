package hash

import "math/bits"

// MurmurHash3 was written by Austin Appleby and placed in the public
// domain; this is a line-by-line Go port of the x86/x64 32/128-bit
// variants.

func fmix32(h uint32) uint32 {
	h ^= h >> 16
	h *= 0x85ebca6b
	h ^= h >> 13
	h *= 0xc2b2ae35
	h ^= h >> 16
	return h
}

func fmix64(k uint64) uint64 {
	k ^= k >> 33
	k *= 0xff51afd7ed558ccd
	k ^= k >> 33
	k *= 0xc4ceb9fe1a85ec53
	k ^= k >> 33
	return k
}

// MurmurHash3_x86_32 is the 32-bit x86 variant of MurmurHash3.
func MurmurHash3_x86_32(in []byte, seed uint32) Hash32 {
	h1 := seed
	const c1 = 0xcc9e2d51
	const c2 = 0x1b873593

	nblocks := len(in) / 4
	for i := 0; i < nblocks; i++ {
		k1 := leUint32(in[i*4 : i*4+4])
		k1 *= c1
		k1 = bits.RotateLeft32(k1, 15)
		k1 *= c2
		h1 ^= k1
		h1 = bits.RotateLeft32(h1, 13)
		h1 = h1*5 + 0xe6546b64
	}

	tail := in[nblocks*4:]
	var k1 uint32
	switch len(tail) & 3 {
	case 3:
		k1 ^= uint32(tail[2]) << 16
		fallthrough
	case 2:
		k1 ^= uint32(tail[1]) << 8
		fallthrough
	case 1:
		k1 ^= uint32(tail[0])
		k1 *= c1
		k1 = bits.RotateLeft32(k1, 15)
		k1 *= c2
		h1 ^= k1
	}

	h1 ^= uint32(len(in))
	h1 = fmix32(h1)
	return hash32FromU32(h1)
}

// MurmurHash3_x86_128 is the 32-bit-lane x86 variant of MurmurHash3 with a
// 128-bit output.
func MurmurHash3_x86_128(in []byte, seed uint32) Hash128 {
	h1, h2, h3, h4 := seed, seed, seed, seed
	const c1 = 0x239b961b
	const c2 = 0xab0e9789
	const c3 = 0x38b34ae5
	const c4 = 0xa1e38b93

	nblocks := len(in) / 16
	for i := 0; i < nblocks; i++ {
		base := i * 16
		k1 := leUint32(in[base : base+4])
		k2 := leUint32(in[base+4 : base+8])
		k3 := leUint32(in[base+8 : base+12])
		k4 := leUint32(in[base+12 : base+16])

		k1 *= c1
		k1 = bits.RotateLeft32(k1, 15)
		k1 *= c2
		h1 ^= k1
		h1 = bits.RotateLeft32(h1, 19)
		h1 += h2
		h1 = h1*5 + 0x561ccd1b

		k2 *= c2
		k2 = bits.RotateLeft32(k2, 16)
		k2 *= c3
		h2 ^= k2
		h2 = bits.RotateLeft32(h2, 17)
		h2 += h3
		h2 = h2*5 + 0x0bcaa747

		k3 *= c3
		k3 = bits.RotateLeft32(k3, 17)
		k3 *= c4
		h3 ^= k3
		h3 = bits.RotateLeft32(h3, 15)
		h3 += h4
		h3 = h3*5 + 0x96cd1c35

		k4 *= c4
		k4 = bits.RotateLeft32(k4, 18)
		k4 *= c1
		h4 ^= k4
		h4 = bits.RotateLeft32(h4, 13)
		h4 += h1
		h4 = h4*5 + 0x32ac3b17
	}

	tail := in[nblocks*16:]
	var k1, k2, k3, k4 uint32
	n := len(tail)
	if n >= 13 {
		k4 ^= uint32(tail[12]) << 0
	}
	if n >= 14 {
		k4 ^= uint32(tail[13]) << 8
	}
	if n >= 15 {
		k4 ^= uint32(tail[14]) << 16
	}
	if n >= 13 {
		k4 *= c4
		k4 = bits.RotateLeft32(k4, 18)
		k4 *= c1
		h4 ^= k4
	}
	if n >= 9 {
		k3 ^= uint32(tail[8]) << 0
	}
	if n >= 10 {
		k3 ^= uint32(tail[9]) << 8
	}
	if n >= 11 {
		k3 ^= uint32(tail[10]) << 16
	}
	if n >= 12 {
		k3 ^= uint32(tail[11]) << 24
	}
	if n >= 9 {
		k3 *= c3
		k3 = bits.RotateLeft32(k3, 17)
		k3 *= c4
		h3 ^= k3
	}
	if n >= 5 {
		k2 ^= uint32(tail[4]) << 0
	}
	if n >= 6 {
		k2 ^= uint32(tail[5]) << 8
	}
	if n >= 7 {
		k2 ^= uint32(tail[6]) << 16
	}
	if n >= 8 {
		k2 ^= uint32(tail[7]) << 24
	}
	if n >= 5 {
		k2 *= c2
		k2 = bits.RotateLeft32(k2, 16)
		k2 *= c3
		h2 ^= k2
	}
	if n >= 1 {
		k1 ^= uint32(tail[0]) << 0
	}
	if n >= 2 {
		k1 ^= uint32(tail[1]) << 8
	}
	if n >= 3 {
		k1 ^= uint32(tail[2]) << 16
	}
	if n >= 4 {
		k1 ^= uint32(tail[3]) << 24
	}
	if n >= 1 {
		k1 *= c1
		k1 = bits.RotateLeft32(k1, 15)
		k1 *= c2
		h1 ^= k1
	}

	length := uint32(len(in))
	h1 ^= length
	h2 ^= length
	h3 ^= length
	h4 ^= length

	h1 += h2 + h3 + h4
	h2 += h1
	h3 += h1
	h4 += h1

	h1 = fmix32(h1)
	h2 = fmix32(h2)
	h3 = fmix32(h3)
	h4 = fmix32(h4)

	h1 += h2 + h3 + h4
	h2 += h1
	h3 += h1
	h4 += h1

	var out Hash128
	binary32LE(out.bytes[0:4], h1)
	binary32LE(out.bytes[4:8], h2)
	binary32LE(out.bytes[8:12], h3)
	binary32LE(out.bytes[12:16], h4)
	return out
}

// MurmurHash3_x86_64 truncates the x86 128-bit variant to its first 64 bits,
// matching the reference implementation's convenience accessor.
func MurmurHash3_x86_64(in []byte, seed uint32) Hash64 {
	out := MurmurHash3_x86_128(in, seed)
	var h Hash64
	copy(h.bytes[:], out.bytes[:8])
	return h
}

// MurmurHash3_x64_128 is the 64-bit-lane x64 variant of MurmurHash3.
func MurmurHash3_x64_128(in []byte, seed uint32) Hash128 {
	h1, h2 := uint64(seed), uint64(seed)
	const c1 = 0x87c37b91114253d5
	const c2 = 0x4cf5ad432745937f

	nblocks := len(in) / 16
	for i := 0; i < nblocks; i++ {
		base := i * 16
		k1 := leUint64(in[base : base+8])
		k2 := leUint64(in[base+8 : base+16])

		k1 *= c1
		k1 = bits.RotateLeft64(k1, 31)
		k1 *= c2
		h1 ^= k1
		h1 = bits.RotateLeft64(h1, 27)
		h1 += h2
		h1 = h1*5 + 0x52dce729

		k2 *= c2
		k2 = bits.RotateLeft64(k2, 33)
		k2 *= c1
		h2 ^= k2
		h2 = bits.RotateLeft64(h2, 31)
		h2 += h1
		h2 = h2*5 + 0x38495ab5
	}

	tail := in[nblocks*16:]
	var k1, k2 uint64
	n := len(tail)
	for i := n - 1; i >= 8; i-- {
		k2 ^= uint64(tail[i]) << (8 * uint(i-8))
	}
	if n >= 9 {
		k2 *= c2
		k2 = bits.RotateLeft64(k2, 33)
		k2 *= c1
		h2 ^= k2
	}
	limit := n
	if limit > 8 {
		limit = 8
	}
	for i := limit - 1; i >= 0; i-- {
		k1 ^= uint64(tail[i]) << (8 * uint(i))
	}
	if n >= 1 {
		k1 *= c1
		k1 = bits.RotateLeft64(k1, 31)
		k1 *= c2
		h1 ^= k1
	}

	length := uint64(len(in))
	h1 ^= length
	h2 ^= length

	h1 += h2
	h2 += h1

	h1 = fmix64(h1)
	h2 = fmix64(h2)

	h1 += h2
	h2 += h1

	var out Hash128
	binary64LE(out.bytes[0:8], h1)
	binary64LE(out.bytes[8:16], h2)
	return out
}

// MurmurHash3_x64_64 truncates the x64 128-bit variant to its first 64
// bits, matching the reference implementation's convenience accessor.
func MurmurHash3_x64_64(in []byte, seed uint32) Hash64 {
	out := MurmurHash3_x64_128(in, seed)
	var h Hash64
	copy(h.bytes[:], out.bytes[:8])
	return h
}
