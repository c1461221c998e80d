// Package smchash implements smcHash, a non-cryptographic 64-bit hash
// function for arbitrary byte sequences, and smcRand, a companion
// counter-based 64-bit pseudo-random number generator that reuses
// smcHash's mixing primitive.
//
// smcHash targets the quality bar set by the SMHasher3 statistical suite;
// smcRand targets BigCrush and PractRand. Neither is a cryptographic
// primitive: seeds are not secret keys and collision resistance under
// adversarial input is not claimed.
//
// The hash is a pure function of (data, seed, secret) with no shared
// state and no allocation proportional to input length; it may be called
// concurrently from any number of goroutines on distinct inputs. The PRNG
// is single-threaded by convention: its state is owned by the caller, and
// concurrent mutation of the same state is a data race.
package smchash
