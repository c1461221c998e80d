package smchash

import "math/bits"

// mul128 returns the unsigned 128-bit product of a and b, split into
// its low and high 64-bit halves.
func mul128(a, b uint64) (lo, hi uint64) {
	hi, lo = bits.Mul64(a, b)
	return lo, hi
}

// mix folds a 128-bit product down to 64 bits by XORing its two halves.
// It is the sole source of non-linearity in the hash and the PRNG.
func mix(a, b uint64) uint64 {
	lo, hi := mul128(a, b)
	return lo ^ hi
}

// mum is mix's sibling used only by the finalizer: it returns both the
// folded value and the untouched high half, since the finalizer XORs
// each with a different secret-derived mask afterward.
func mum(a, b uint64) (uint64, uint64) {
	lo, hi := mul128(a, b)
	return lo ^ hi, hi
}
