// This file implements Sum64, the keyed SipHash-1-3 tag of a byte
// string, together with the canonical SipHash round.
package siphash

import (
	"encoding/binary"
	"math/bits"
)

// SipHash initialization constants: "somepseudorandomlygeneratedbytes".
const (
	initV0 = 0x736f6d6570736575
	initV1 = 0x646f72616e646f6d
	initV2 = 0x6c7967656e657261
	initV3 = 0x7465646279746573
)

// round applies one canonical SipHash ARX round to the four lanes.
func round(v0, v1, v2, v3 uint64) (uint64, uint64, uint64, uint64) {
	v0 += v1
	v2 += v3
	v1 = bits.RotateLeft64(v1, 13)
	v3 = bits.RotateLeft64(v3, 16)
	v1 ^= v0
	v3 ^= v2
	v0 = bits.RotateLeft64(v0, 32)

	v2 += v1
	v0 += v3
	v1 = bits.RotateLeft64(v1, 17)
	v3 = bits.RotateLeft64(v3, 21)
	v1 ^= v2
	v3 ^= v0
	v2 = bits.RotateLeft64(v2, 32)

	return v0, v1, v2, v3
}

// Sum64 computes the 64-bit SipHash-1-3 tag of data under key (k0, k1).
func Sum64(k0, k1 uint64, data []byte) uint64 {
	// 1) Key the four lanes with the initialization constants.
	v0 := k0 ^ initV0
	v1 := k1 ^ initV1
	v2 := k0 ^ initV2
	v3 := k1 ^ initV3

	// 2) Compress full 8-byte blocks, little-endian, one round each.
	var m uint64
	rest := data
	for len(rest) >= 8 {
		m = binary.LittleEndian.Uint64(rest)
		v3 ^= m
		v0, v1, v2, v3 = round(v0, v1, v2, v3)
		v0 ^= m
		rest = rest[8:]
	}

	// 3) Build the final block: remaining bytes in the low positions,
	//    message length mod 256 in the top byte.
	m = uint64(len(data)) << 56
	var i int
	for i = 0; i < len(rest); i++ {
		m |= uint64(rest[i]) << (8 * i)
	}
	v3 ^= m
	v0, v1, v2, v3 = round(v0, v1, v2, v3)
	v0 ^= m

	// 4) Finalize: flip v2, three rounds, fold the lanes.
	v2 ^= 0xff
	v0, v1, v2, v3 = round(v0, v1, v2, v3)
	v0, v1, v2, v3 = round(v0, v1, v2, v3)
	v0, v1, v2, v3 = round(v0, v1, v2, v3)

	return v0 ^ v1 ^ v2 ^ v3
}
