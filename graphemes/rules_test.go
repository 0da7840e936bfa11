package graphemes

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func clusters(s string) []string {
	var out []string
	seg := NewSegmenter([]byte(s))
	for seg.Next() {
		out = append(out, string(seg.Value()))
	}
	return out
}

func TestCRLFStaysTogether(t *testing.T) {
	assert.Equal(t, []string{"\r\n"}, clusters("\r\n"))
}

func TestControlAlwaysBreaks(t *testing.T) {
	assert.Equal(t, []string{"a", "\n", "b"}, clusters("a\nb"))
}

func TestCombiningMarkAttaches(t *testing.T) {
	// "e" + combining acute accent is one cluster.
	assert.Equal(t, []string{"é"}, clusters("é"))
}

func TestHangulSyllableSequence(t *testing.T) {
	// L, V, T Jamo sequence forms one cluster (GB6/GB7/GB8).
	assert.Equal(t, []string{"각"}, clusters("각"))
}

func TestRegionalIndicatorPairing(t *testing.T) {
	// Four regional indicators (two flags) pair up GB12/GB13-style: two
	// 2-codepoint clusters, not one 4-codepoint cluster or four singles.
	es := "\U0001F1EA\U0001F1F8"
	us := "\U0001F1FA\U0001F1F8"
	got := clusters(es + us)
	require.Len(t, got, 2)
	assert.Equal(t, es, got[0])
	assert.Equal(t, us, got[1])
}

func TestZWJEmojiSequence(t *testing.T) {
	// Extended_Pictographic ZWJ Extended_Pictographic forms one cluster
	// (GB11); build from runes to avoid embedding an invisible ZWJ literal.
	seq := string([]rune{0x1F468, 0x200D, 0x1F4BB}) // man + ZWJ + laptop
	assert.Equal(t, []string{seq}, clusters(seq))
}

func TestIndicConjunctSequence(t *testing.T) {
	// Consonant + virama (Linker) + Consonant forms one cluster under GB9c.
	seq := string([]rune{0x0915, 0x094D, 0x0915}) // KA, VIRAMA, KA
	assert.Equal(t, []string{seq}, clusters(seq))
}

func TestPrependAttaches(t *testing.T) {
	// ARABIC NUMBER SIGN (Prepend) attaches to a following letter (GB9b).
	seq := string([]rune{0x0600, 'a'})
	assert.Equal(t, []string{seq}, clusters(seq))
}
