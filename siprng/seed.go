// This file implements seeding: direct construction from seed words,
// reseeding in place, seeding from the OS entropy source, and drawing
// a seed from another generator.
package siprng

import (
	"crypto/rand"
	"encoding/binary"
	"fmt"

	"github.com/katalvlaran/siprand/splittable"
)

// New creates a SipRng from two seed words.  The lanes are keyed the
// SipHash way, the counter starts at zero, and the depth starts at
// one (a fresh generator is the root of its split tree).
func New(k0, k1 uint64) *SipRng {
	return &SipRng{
		v0:    k0 ^ c0,
		v1:    k1 ^ c1,
		v2:    k0 ^ c2,
		v3:    k1 ^ c3,
		ctr:   0,
		depth: 1,
	}
}

// FromSeed creates a SipRng from a Seed value.
func FromSeed(seed Seed) *SipRng {
	return New(seed.K0, seed.K1)
}

// Reseed rekeys the generator in place.  Afterwards it produces the
// exact stream of a freshly constructed FromSeed(seed): all six state
// fields are overwritten, including counter and depth.
func (r *SipRng) Reseed(seed Seed) {
	r.v0 = seed.K0 ^ c0
	r.v1 = seed.K1 ^ c1
	r.v2 = seed.K0 ^ c2
	r.v3 = seed.K1 ^ c3
	r.ctr = 0
	r.depth = 1
}

// NewRandom creates a SipRng seeded with 128 bits from the OS entropy
// source.  This is the package's only fallible operation: it reports
// ErrEntropyUnavailable (wrapping the underlying cause) when the OS
// RNG cannot be opened or read.
func NewRandom() (*SipRng, error) {
	// 1) Draw 16 bytes from the OS.
	var buf [16]byte
	if _, err := rand.Read(buf[:]); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrEntropyUnavailable, err)
	}

	// 2) Interpret them as two little-endian seed words.
	k0 := binary.LittleEndian.Uint64(buf[0:8])
	k1 := binary.LittleEndian.Uint64(buf[8:16])

	return New(k0, k1), nil
}

// FromGenerator creates a SipRng whose seed is drawn from another
// generator.  Useful for deriving a splittable generator off any
// randomness source that satisfies the minimal contract.
func FromGenerator(g splittable.Generator) *SipRng {
	return New(g.NextUint64(), g.NextUint64())
}
