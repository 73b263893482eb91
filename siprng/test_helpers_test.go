package siprng_test

import (
	"testing"

	"github.com/katalvlaran/siprand/siprng"
	"github.com/stretchr/testify/require"
)

// asciiTable is the alphanumeric alphabet used by asciiChars.
const asciiTable = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789"

// asciiChars draws n printable characters from g, one output word per
// character.  Purely a comparison vehicle: two generators in the same
// state produce the same string.
func asciiChars(g *siprng.SipRng, n int) string {
	buf := make([]byte, n)
	for i := range buf {
		buf[i] = asciiTable[g.NextUint64()%uint64(len(asciiTable))]
	}

	return string(buf)
}

// drawWords collects n successive output words from g.
func drawWords(g *siprng.SipRng, n int) []uint64 {
	out := make([]uint64, n)
	for i := range out {
		out[i] = g.NextUint64()
	}

	return out
}

// genSeed draws a fresh seed from the OS entropy source, failing the
// test if the source is unavailable.
func genSeed(t *testing.T) siprng.Seed {
	t.Helper()

	g, err := siprng.NewRandom()
	require.NoError(t, err, "could not seed from OS entropy")

	return siprng.Seed{K0: g.NextUint64(), K1: g.NextUint64()}
}
