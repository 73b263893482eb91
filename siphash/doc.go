// Package siphash implements keyed SipHash-1-3 over byte strings:
// one compression round per 8-byte block, three finalization rounds.
//
// SipHash is a fast keyed short-input PRF designed by Aumasson and
// Bernstein ("SipHash: a fast short-input PRF", Cryptology ePrint
// 2012/351).  The 1-3 round count trades the conservative 2-4
// margin for speed; it is the variant used throughout this module,
// including as the argument hash for random deterministic functions.
//
// This package follows the published algorithm exactly: message
// blocks are read little-endian, the final block carries the message
// length (mod 256) in its top byte, and the round function is the
// canonical one.  It is a PRF for hashing and keying, not a
// general-purpose cryptographic hash: with a known key, collisions
// are easy to construct.
package siphash
