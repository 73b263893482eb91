// This file implements random deterministic functions: values of type
// func(A) B whose mapping is randomly chosen at derivation time and
// fixed thereafter.  Arguments are routed to branches by a stable
// keyed hash.
package splittable

import (
	"encoding/binary"

	"github.com/katalvlaran/siprand/siphash"
)

// Hasher maps an argument to the branch index that will generate its
// result.  A Hasher must be stable for the lifetime of any function
// derived with it: re-keying between calls would break determinism.
type Hasher[A any] func(a A) uint64

// Func derives a deterministic function with a random mapping.
//
// The result is defined pointwise as f(a) = d(s.Branch(h(a))).
// Consequences:
//
//   - f is deterministic: equal arguments yield equal results on
//     every call, because Branch is referentially transparent.
//   - f is random: functions derived from independently seeded splits
//     are statistically independent pointwise.
//   - two functions derived from the same split (with the same h and
//     d) are equal as functions.
//
// The returned closure shares the split; since a Split is immutable
// it may be called from any goroutine.
func Func[G Generator, A, B any](s Split[G], h Hasher[A], d Deriver[B]) func(A) B {
	return func(a A) B {
		return d(s.Branch(h(a)))
	}
}

// HashBytes returns a Hasher for byte slices: keyed SipHash-1-3 over
// the raw bytes.  Zero keys are a valid default; what matters is that
// the keys stay fixed for the lifetime of the derived function.
func HashBytes(k0, k1 uint64) Hasher[[]byte] {
	return func(b []byte) uint64 { return siphash.Sum64(k0, k1, b) }
}

// HashString returns a Hasher for strings: keyed SipHash-1-3 over the
// string's bytes.
func HashString(k0, k1 uint64) Hasher[string] {
	return func(s string) uint64 { return siphash.Sum64(k0, k1, []byte(s)) }
}

// HashUint64s returns a Hasher for []uint64 arguments: keyed
// SipHash-1-3 over the little-endian concatenation of the words.
func HashUint64s(k0, k1 uint64) Hasher[[]uint64] {
	return func(ws []uint64) uint64 {
		// 1) Serialize the words little-endian, 8 bytes each.
		buf := make([]byte, 8*len(ws))
		var i int
		for i = 0; i < len(ws); i++ {
			binary.LittleEndian.PutUint64(buf[8*i:], ws[i])
		}

		// 2) Hash the encoding under the fixed keys.
		return siphash.Sum64(k0, k1, buf)
	}
}
