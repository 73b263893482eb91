// Package siprand is your toolbox for deterministic, forkable
// randomness in Go, built on the SipHash-1-3 compression function.
//
// 🚀 What is siprand?
//
//	A small, pure-computation library that brings together:
//
//	  • A splittable PRNG: fork one generator into statistically
//	    independent children, no coordination required
//	  • A minimal trait surface: NextUint64 / NextUint32 / FillBytes
//	    plus SplitN and Branch
//	  • Derivable values: build composite random values and random
//	    deterministic functions off a single split
//
// ✨ Why choose siprand?
//
//   - Deterministic        — same seed, same split path, same stream; everywhere
//   - Parallel-friendly    — branches share no state, one generator per goroutine
//   - Tiny values          — a generator is six uint64 fields, a split is a snapshot
//   - Pure Go              — no cgo, no hidden dependencies
//
// Under the hood, everything is organized under three subpackages:
//
//	siprng/     — the SipHash-1-3 generator core: seed, advance, descend, split
//	splittable/ — Generator/Split/Splittable interfaces + value derivation
//	siphash/    — conformant full-message SipHash-1-3 for argument hashing
//
// Quick ASCII example:
//
//	    seed
//	     │
//	     G ──SplitN──► S
//	              ┌────┼────┐
//	          B(0)   B(1)   B(2) ...
//
//	each branch is an independent generator; the same index always
//	yields the same branch.
//
// siprand is fast and statistically strong, but it is NOT a
// cryptographically secure PRNG; do not use it for secrets.
//
//	go get github.com/katalvlaran/siprand
package siprand
