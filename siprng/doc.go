// Package siprng implements a splittable pseudo-random number
// generator built on the SipHash-1-3 compression function.
//
// 🚀 What is siprng?
//
//	A generator whose state can be forked ("split") into children
//	with statistically independent output streams.  The construction
//	follows Claessen and Pałka's tree of keyed PRF applications, as
//	in the Haskell tf-random library, with SipHash-1-3 in place of
//	Skein as the pseudo-random function.
//
// ✨ Key operations:
//
//   - New / FromSeed / Reseed — map a 128-bit seed to a fresh state
//   - NextUint64 / NextUint32 / FillBytes — draw output
//   - SplitN — capture the state into an immutable branch factory
//   - Split — destructive two-way fork
//   - NewRandom — seed from the OS entropy source
//
// Every operation except FillBytes is O(1) (FillBytes is linear in
// the buffer length); the draw path is allocation-free, and all are
// fully deterministic: the output stream is a pure function of the
// seed and the path of split indices.  A SipRng is owned by one
// goroutine at a time; a SipSplit is immutable and freely shareable.
//
// This is NOT a cryptographically secure PRNG.  SipHash-1-3 is a
// keyed short-input PRF, not a stream cipher; use crypto/rand for
// anything secret.
//
// References:
//
//   - Aumasson, Jean-Philippe and Daniel J. Bernstein.  2012.
//     "SipHash: a fast short-input PRF."  Cryptology ePrint Archive,
//     Report 2012/351.
//   - Claessen, Koen and Michał H. Pałka.  2013.  "Splittable
//     Pseudorandom Number Generators using Cryptographic Hashing."
//     Haskell '13, pp. 47-58.
//   - The Haskell tf-random library.
package siprng
