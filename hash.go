package smchash

import "encoding/binary"

// readU32 reads a little-endian uint32 starting at offset off. It never
// reads past len(data); callers are responsible for choosing an offset
// such that off+4 <= len(data).
func readU32(data []byte, off int) uint64 {
	return uint64(binary.LittleEndian.Uint32(data[off : off+4]))
}

// readU64 reads a little-endian uint64 starting at offset off. It never
// reads past len(data); callers are responsible for choosing an offset
// such that off+8 <= len(data).
func readU64(data []byte, off int) uint64 {
	return binary.LittleEndian.Uint64(data[off : off+8])
}

// Hash computes the smcHash digest of data using the canonical secret
// and a seed of CanonicalSecret[0].
func Hash(data []byte) uint64 {
	return HashSeeded(data, CanonicalSecret[0])
}

// HashSeeded computes the smcHash digest of data using the canonical
// secret and the given seed.
func HashSeeded(data []byte, seed uint64) uint64 {
	return HashWithSecret(data, seed, CanonicalSecret)
}

// HashWithSecret computes the smcHash digest of data using a
// caller-supplied secret. The canonical secret (CanonicalSecret) defines
// smcHash's reference digests; any other secret produces a different,
// internally-consistent digest family.
func HashWithSecret(data []byte, seed uint64, secret Secret) uint64 {
	length := len(data)

	if length <= 16 {
		return hashShort(data, seed, secret)
	}
	return hashLong(data, seed, secret)
}

// hashShort implements the L<=16 dispatch: seed injection, a
// length-classed word gather (empty, 1-3, 4-7, or 8-16 bytes), then
// finalize.
func hashShort(data []byte, seed uint64, secret Secret) uint64 {
	length := len(data)
	seed ^= mix(seed^secret[0], secret[1]^uint64(length))

	var a, b uint64
	switch {
	case length >= 8:
		a = readU64(data, 0)
		b = readU64(data, length-8)
	case length >= 4:
		a = readU32(data, 0)
		b = readU32(data, length-4)
	case length > 0:
		a = uint64(data[0])<<56 | uint64(data[length>>1])<<32 | uint64(data[length-1])
		b = 0
	default:
		a, b = 0, 0
	}

	return finalize(a, b, seed, secret, uint64(length))
}

// hashLong implements the L>16 dispatch: seed injection, the eight-lane
// bulk loop (entered only past 128 bytes), the 64/32/16-byte tail ladder
// (strict '>' boundaries), and the finalizer.
func hashLong(data []byte, seed uint64, secret Secret) uint64 {
	length := len(data)
	seed ^= mix(seed^secret[2], secret[1])

	i := length
	off := 0

	if length > 128 {
		see1, see2, see3, see4 := seed, seed, seed, seed
		see5, see6, see7 := seed, seed, seed

		for i > 128 {
			seed = mix(readU64(data, off)^secret[0], readU64(data, off+8)^seed)
			see1 = mix(readU64(data, off+16)^secret[1], readU64(data, off+24)^see1)
			see2 = mix(readU64(data, off+32)^secret[2], readU64(data, off+40)^see2)
			see3 = mix(readU64(data, off+48)^secret[3], readU64(data, off+56)^see3)
			see4 = mix(readU64(data, off+64)^secret[4], readU64(data, off+72)^see4)
			see5 = mix(readU64(data, off+80)^secret[5], readU64(data, off+88)^see5)
			see6 = mix(readU64(data, off+96)^secret[6], readU64(data, off+104)^see6)
			see7 = mix(readU64(data, off+112)^secret[7], readU64(data, off+120)^see7)
			off += 128
			i -= 128
		}

		seed ^= see1 ^ see4 ^ see5
		see2 ^= see3 ^ see6 ^ see7
		seed ^= see2
	}

	if i > 64 {
		seed = mix(readU64(data, off)^secret[0], readU64(data, off+8)^seed)
		seed = mix(readU64(data, off+16)^secret[1], readU64(data, off+24)^seed)
		seed = mix(readU64(data, off+32)^secret[2], readU64(data, off+40)^seed)
		seed = mix(readU64(data, off+48)^secret[3], readU64(data, off+56)^seed)
		off += 64
		i -= 64
	}

	if i > 32 {
		seed = mix(readU64(data, off)^secret[0], readU64(data, off+8)^seed)
		seed = mix(readU64(data, off+16)^secret[1], readU64(data, off+24)^seed)
		off += 32
		i -= 32
	}

	if i > 16 {
		// Deliberately does not advance off/i: the finalizer re-reads
		// the final 16 bytes of data regardless of how far the ladder
		// drained, so this mix is purely an extra avalanche step.
		seed = mix(readU64(data, off)^secret[0], readU64(data, off+8)^seed)
	}

	a := readU64(data, length-16) ^ uint64(length)
	b := readU64(data, length-8)

	return finalize(a, b, seed, secret, uint64(length))
}

// finalize is the mum+mix sequence common to both the short and long
// paths: a := a^secret[1]; b := b^seed; (a,b) := mum(a,b); return
// mix(a^secret[8], b^secret[1]^length).
func finalize(a, b, seed uint64, secret Secret, length uint64) uint64 {
	a ^= secret[1]
	b ^= seed
	a, b = mum(a, b)
	return mix(a^secret[8], b^secret[1]^length)
}
