// Package splittable defines the contract of splittable pseudo-random
// generators and the derivation of random values from their splits.
//
// 🚀 What is a splittable generator?
//
//	A generator whose state can be forked ("split") into child
//	generators whose output streams are statistically independent of
//	one another and of the parent's remaining stream.  Splitting
//	needs no coordination between branches, which makes deterministic
//	parallel generation and random deterministic functions possible.
//
// ✨ What lives here:
//
//   - Generator   — the minimal PRNG surface: NextUint64, NextUint32, FillBytes
//   - Split       — an immutable factory of branch generators, indexed by uint64
//   - Splittable  — a Generator that can be captured into a Split
//   - Deriver     — "construct a random value of type T" from a generator
//   - Func        — derive a deterministic function whose mapping is random
//
// The independence guarantee belongs to the implementation (see
// package siprng); this package only fixes the shape of the contract
// and the branch-indexing discipline for composite values: position k
// of a derived composite draws from Branch(k), so changing the type
// at one position never perturbs the value at another.
//
// References:
//
//   - Claessen, Koen and Michał H. Pałka.  2013.  "Splittable
//     Pseudorandom Number Generators using Cryptographic Hashing."
//     Haskell '13, pp. 47-58.
//   - Schaathun, Hans Georg.  2015.  "Evaluation of Splittable
//     Pseudo-Random Generators."  Journal of Functional Programming,
//     Vol. 25.
//   - The Haskell tf-random library.
package splittable
