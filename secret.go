package smchash

import "math/bits"

// Secret is the nine-entry keying table shared by the hash engine and the
// PRNG. Callers may supply their own via HashWithSecret, but changing the
// secret changes every digest: there is no stability guarantee across
// secret changes.
type Secret [9]uint64

// CanonicalSecret is the fixed secret that defines smcHash's reference
// digests. Hash and HashSeeded always use it.
var CanonicalSecret = Secret{
	0x9ad1e8e2aa5a5c4b,
	0xaaaad2335647d21b,
	0xb8ac35e269d1b495,
	0xa98d653cb2b4c959,
	0x71a5b853b43ca68b,
	0x2b55934dc35c9655,
	0x746ae48ed4d41e4d,
	0xa3d8c38e78aaa6a9,
	0x1bca69c565658bc3,
}

// minHammingDistance is the minimum required pairwise Hamming distance
// between any two secret entries.
const minHammingDistance = 32

// Validate checks the documented (but not enforced) invariants on a
// secret: every entry is odd, every entry has popcount 32, and every
// pair of entries has Hamming distance at least 32. Validate is purely
// advisory — HashWithSecret never calls it; these invariants are
// statistical quality guidance, not a correctness gate.
func (s Secret) Validate() error {
	for i, v := range s {
		if v&1 == 0 {
			return errInvalidSecretEntry(i, "not odd")
		}
		if bits.OnesCount64(v) != 32 {
			return errInvalidSecretEntry(i, "popcount != 32")
		}
	}
	for i := 0; i < len(s); i++ {
		for j := i + 1; j < len(s); j++ {
			if bits.OnesCount64(s[i]^s[j]) < minHammingDistance {
				return errInvalidSecretPair(i, j)
			}
		}
	}
	return nil
}

// NewSecretFromSlice builds a Secret from a caller-supplied slice,
// checking only that it has exactly nine entries. It does not check the
// statistical invariants that Validate checks; call Validate separately
// if that's wanted.
func NewSecretFromSlice(v []uint64) (Secret, error) {
	var s Secret
	if len(v) != len(s) {
		return s, ErrInvalidSecretLength
	}
	copy(s[:], v)
	return s, nil
}
