// This file declares the Seed and SipRng types, the SipHash
// initialization constants, and the package's sole sentinel error.
package siprng

import "errors"

// ErrEntropyUnavailable indicates the OS entropy source could not be
// opened or read while seeding a generator with NewRandom.
var ErrEntropyUnavailable = errors.New("siprng: OS entropy source unavailable")

// SipHash initialization constants ("somepseudorandomlygeneratedbytes").
const (
	c0 = 0x736f6d6570736575
	c1 = 0x646f72616e646f6d
	c2 = 0x6c7967656e657261
	c3 = 0x7465646279746573
)

// Seed is the 128-bit seed of a SipRng, presented as two 64-bit
// words.  Endianness of any external representation is the caller's
// concern.
type Seed struct {
	// K0 is the first seed word.
	K0 uint64

	// K1 is the second seed word.
	K1 uint64
}

// SipRng is a splittable pseudo-random generator based on
// SipHash-1-3.
//
// Obtain one through New, FromSeed, or NewRandom; the zero value is
// unkeyed and sits at depth zero, so it is not a seeded state.  All
// counter and depth arithmetic wraps modulo 2⁶⁴; overflow is defined,
// not an error, so no operation on a SipRng can fail.
//
// A SipRng is a plain value: Clone copies it, and two copies evolve
// identically under identical operations.  It is not safe for
// concurrent use; split and hand each goroutine its own branch.
type SipRng struct {
	// v0..v3 are the four SipHash lanes.  They are opaque: a pure
	// function of the seed and the descend-index path.
	v0, v1, v2, v3 uint64

	// ctr counts output words drawn on the current branch.
	ctr uint64

	// depth is the number of descends since seeding, plus one.  It is
	// folded into finalization as the SipHash length tag, so states on
	// paths of different lengths finalize differently.
	depth uint64
}
