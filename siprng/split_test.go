package siprng_test

import (
	"testing"

	"github.com/katalvlaran/siprand/siprng"
	"github.com/stretchr/testify/assert"
)

// TestSipSplit_BranchRegression pins the first word of several
// branches of the (0,0)-seeded snapshot.
func TestSipSplit_BranchRegression(t *testing.T) {
	s := siprng.New(0, 0).SplitN()

	want := map[uint64]uint64{
		0: 0xbf8be5339c01b092,
		1: 0x608b99fc61b0a5b0,
		2: 0xb37e7edc7332b359,
		7: 0x75a5897814a948c4,
	}
	for i, first := range want {
		assert.Equal(t, first, s.Branch(i).NextUint64(),
			"branch(%d) first word diverged from reference", i)
	}
}

// TestSipRng_SplitRegression pins the streams on both sides of a
// destructive split of the (0,0)-seeded generator: the parent lands
// on branch 0, the child on branch 1.
func TestSipRng_SplitRegression(t *testing.T) {
	r := siprng.New(0, 0)
	child := r.Split()

	assert.Equal(t, []uint64{0xbf8be5339c01b092, 0x33983221bb8543bc}, drawWords(r, 2),
		"post-split parent stream diverged from reference")
	assert.Equal(t, []uint64{0x608b99fc61b0a5b0, 0x8b555296a618123b}, drawWords(child, 2),
		"split child stream diverged from reference")
}

// TestSipRng_SplitMatchesBranches verifies the defining relation of
// the two presentations: a destructive Split leaves the parent on
// Branch(0) and returns Branch(1) of the pre-fork state.
func TestSipRng_SplitMatchesBranches(t *testing.T) {
	seed := genSeed(t)

	r := siprng.FromSeed(seed)
	child := r.Split()

	s := siprng.FromSeed(seed).SplitN()
	assert.Equal(t, drawWords(s.Branch(0), 32), drawWords(r, 32),
		"split parent must equal branch 0")
	assert.Equal(t, drawWords(s.Branch(1), 32), drawWords(child, 32),
		"split child must equal branch 1")
}

// TestSipSplit_BranchTransparent verifies that Branch is referentially
// transparent: the same index always instantiates the same state.
func TestSipSplit_BranchTransparent(t *testing.T) {
	s := siprng.FromSeed(genSeed(t)).SplitN()

	for _, i := range []uint64{0, 1, 5, 1 << 40} {
		assert.Equal(t, drawWords(s.Branch(i), 16), drawWords(s.Branch(i), 16),
			"branch(%d) must be reproducible", i)
	}
}

// TestSipSplit_BranchesDiffer verifies that distinct indices yield
// distinct streams.
func TestSipSplit_BranchesDiffer(t *testing.T) {
	s := siprng.FromSeed(genSeed(t)).SplitN()

	assert.NotEqual(t, drawWords(s.Branch(0), 16), drawWords(s.Branch(1), 16),
		"sibling branches must not share a stream")
}

// TestSipRng_SplitCongruence runs the four-deep congruence check: two
// identically seeded generators subjected to the same splits agree on
// every leaf.
func TestSipRng_SplitCongruence(t *testing.T) {
	seed := genSeed(t)

	ra := siprng.FromSeed(seed)
	rb := siprng.FromSeed(seed)
	assert.Equal(t, asciiChars(ra.Clone(), 100), asciiChars(rb.Clone(), 100),
		"roots must agree before splitting")

	// 1) First level: (ra, ra1) and (rb, rb1).
	ra1 := ra.Split()
	rb1 := rb.Split()

	// 2) Second level: four leaves per side.
	leavesA := []*siprng.SipRng{ra, ra.Split(), ra1, ra1.Split()}
	leavesB := []*siprng.SipRng{rb, rb.Split(), rb1, rb1.Split()}

	// 3) Every leaf pair agrees on 100 characters.
	for i := range leavesA {
		assert.Equal(t, asciiChars(leavesA[i], 100), asciiChars(leavesB[i], 100),
			"leaf %d diverged between congruent split trees", i)
	}
}

// TestSipRng_DepthSeparatesPaths verifies that branch index 0 at
// different depths does not replay the same stream: the depth tag
// distinguishes a path of length d from a path of length d+1.
func TestSipRng_DepthSeparatesPaths(t *testing.T) {
	s := siprng.FromSeed(genSeed(t)).SplitN()

	shallow := s.Branch(0)
	deep := s.Branch(0).SplitN().Branch(0)

	assert.NotEqual(t, drawWords(shallow, 16), drawWords(deep, 16),
		"streams at different depths must differ")
}
