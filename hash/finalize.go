package hash

// Int32 applies the MurmurHash3 32-bit finalizer (fmix32) to val. It is a
// fast, high-quality bit mixer for already-distinct integer keys (identity
// hashing followed by finalization), not a keyed hash.
func Int32(val uint32) Hash32 {
	return hash32FromU32(fmix32(val))
}

// Int64 applies the MurmurHash3 64-bit finalizer (fmix64) to val.
func Int64(val uint64) Hash64 {
	return hash64FromU64(fmix64(val))
}

// Fibonacci32 multiplies val by the nearest odd integer approximation of
// 2^32/phi and returns the top bits most significant bits of the product.
// bits must be in [1, 32].
func Fibonacci32(val uint32, bits uint) uint32 {
	val *= 2654435769
	return val >> (32 - bits)
}

// Fibonacci64 multiplies val by the nearest odd integer approximation of
// 2^64/phi and returns the top bits most significant bits of the product.
// bits must be in [1, 64].
func Fibonacci64(val uint64, bits uint) uint64 {
	val *= 11400714819323198485
	return val >> (64 - bits)
}

// CombineInt32 deterministically reduces a (seed, val) pair to a single
// 32-bit hash. It never degenerates to the identity function when either
// argument is zero: a nonzero constant and an odd multiplier are folded in
// before finalizing.
func CombineInt32(seed, val uint32) Hash32 {
	return Int32(seed + 0xe6546b64 + 1640531527*val)
}

// CombineInt64 deterministically reduces a (seed, val) pair to a single
// 64-bit hash, with the same non-degeneracy guarantee as CombineInt32.
func CombineInt64(seed, val uint64) Hash64 {
	return Int64(seed + 0xe6546b64 + 7046029254386353131*val)
}
