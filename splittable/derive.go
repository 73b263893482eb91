// This file implements derivation of random values from generators
// and splits: the Deriver type, base derivers for numeric and byte
// types, composite derivers, and the branch-per-position pair rule.
package splittable

import (
	"golang.org/x/exp/constraints"
)

// Deriver constructs one random value of type T from a generator.
//
// A Deriver may consume any amount of the generator's stream; when a
// composite value is derived from a Split, each component receives its
// own branch, so the amount consumed by one component never shifts the
// stream seen by another.
type Deriver[T any] func(g Generator) T

// Uint64 derives one 64-bit word.
func Uint64(g Generator) uint64 { return g.NextUint64() }

// Uint32 derives one 32-bit word.
func Uint32(g Generator) uint32 { return g.NextUint32() }

// Float64 derives a float64 uniformly distributed in [0, 1),
// using the top 53 bits of one output word as the mantissa.
func Float64(g Generator) float64 {
	return float64(g.NextUint64()>>11) / (1 << 53)
}

// Integer returns a Deriver for any fixed-width integer type T.
// The value is the low bits of one 64-bit output word.
func Integer[T constraints.Integer]() Deriver[T] {
	return func(g Generator) T { return T(g.NextUint64()) }
}

// Bytes returns a Deriver producing n pseudo-random bytes via FillBytes.
func Bytes(n int) Deriver[[]byte] {
	return func(g Generator) []byte {
		// 1) Allocate the destination once; FillBytes does the rest.
		buf := make([]byte, n)
		g.FillBytes(buf)

		return buf
	}
}

// SliceOf returns a Deriver producing a slice of n values of type T,
// drawn sequentially from a single generator with the element Deriver.
func SliceOf[T any](n int, d Deriver[T]) Deriver[[]T] {
	return func(g Generator) []T {
		// 1) Draw the elements in index order from the same stream.
		out := make([]T, n)
		var i int
		for i = 0; i < n; i++ {
			out[i] = d(g)
		}

		return out
	}
}

// Derive constructs one value of type T from a split.
// The value is a pure function of Branch(0).
func Derive[G Generator, T any](s Split[G], d Deriver[T]) T {
	return d(s.Branch(0))
}

// DerivePair constructs a pair from a split: the first component from
// Branch(0), the second from Branch(1).
//
// Because each position is bound to its own branch, the value at one
// position is unaffected by the type, and therefore by the stream
// consumption, of its sibling.  This is the property that separates
// splittable generation from sequential generation.
func DerivePair[G Generator, A, B any](s Split[G], da Deriver[A], db Deriver[B]) (A, B) {
	return da(s.Branch(0)), db(s.Branch(1))
}
