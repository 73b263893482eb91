// This file implements the splitting surface: the SipSplit snapshot
// factory, referentially transparent branching, and the destructive
// two-way Split.
package siprng

import "github.com/katalvlaran/siprand/splittable"

// Compile-time checks that the generator satisfies the splittable
// contract.
var (
	_ splittable.Generator                      = (*SipRng)(nil)
	_ splittable.Split[*SipRng]                 = (*SipSplit)(nil)
	_ splittable.Splittable[*SipRng, *SipSplit] = (*SipRng)(nil)
)

// SipSplit is an immutable snapshot of a SipRng taken at a branching
// point.  It acts as a factory: Branch(i) instantiates the i-th child
// of the captured state, and instantiating the same i twice yields
// identical generators.
//
// A SipSplit holds plain integer fields, carries no interior
// mutability, and is freely copyable and shareable across goroutines.
type SipSplit struct {
	state SipRng
}

// Branch instantiates the i-th child of the captured state: a clone
// of the snapshot descended along index i.  The child starts with a
// fresh word counter at depth one below the snapshot.
func (s *SipSplit) Branch(i uint64) *SipRng {
	child := s.state
	child.descend(i)

	return &child
}

// SplitN captures the generator into an immutable SipSplit.
//
// The receiver must be treated as spent afterwards: drawing from it
// while also using branches voids the independence guarantee, since
// the parent's future outputs and the children share a split-tree
// prefix.  Discard the parent, or use Split, which enforces the
// discipline by moving the parent onto a branch of its own.
func (r *SipRng) SplitN() *SipSplit {
	return &SipSplit{state: *r}
}

// Split forks the generator destructively: the receiver descends onto
// branch 0 of its pre-fork state, and the returned child is branch 1.
// The two resulting generators, and any further forks of either,
// produce mutually independent streams, provided no split-tree path
// is ever walked twice.
func (r *SipRng) Split() *SipRng {
	child := *r
	r.descend(0)
	child.descend(1)

	return &child
}
