package norm

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecomposeCanonical(t *testing.T) {
	seq, ok := Decompose(0x00E9, Canonical) // é
	require.True(t, ok)
	assert.Equal(t, []rune{'e', 0x0301}, seq)
}

func TestDecomposeCompatibilityIncludesCanonical(t *testing.T) {
	seq, ok := Decompose(0x00E9, Compatibility)
	require.True(t, ok)
	assert.Equal(t, []rune{'e', 0x0301}, seq)
}

func TestDecomposeCanonicalExcludesCompatibilityOnly(t *testing.T) {
	_, ok := Decompose(0xFB01, Canonical) // ﬁ ligature, compatibility-only
	assert.False(t, ok)

	seq, ok := Decompose(0xFB01, Compatibility)
	require.True(t, ok)
	assert.Equal(t, []rune{'f', 'i'}, seq)
}

func TestDecomposeNoMapping(t *testing.T) {
	_, ok := Decompose('a', Canonical)
	assert.False(t, ok)
}

func TestComposeInverseOfDecompose(t *testing.T) {
	r, ok := Compose('e', 0x0301)
	require.True(t, ok)
	assert.Equal(t, rune(0x00E9), r)
}

func TestComposeExcluded(t *testing.T) {
	// U+0344 decomposes to (0x0308, 0x0301) canonically but is excluded from
	// recomposition, so that pair must not compose back to it.
	_, ok := Compose(0x0308, 0x0301)
	assert.False(t, ok)
	assert.True(t, IsExcludedFromComposition(0x0344))
}

func TestQuickCheck(t *testing.T) {
	assert.Equal(t, QCYes, QuickCheck('a', Canonical))
	assert.Equal(t, QCNo, QuickCheck(0x00E9, Canonical))
	assert.Equal(t, QCMaybe, QuickCheck(0x0301, Canonical)) // bare combining mark
}

func TestHangulDecomposeCompose(t *testing.T) {
	require.True(t, IsHangulSyllable(0xAC00))
	seq := DecomposeHangul(0xAC00)
	assert.Equal(t, []rune{0x1100, 0x1161}, seq)

	r, ok := ComposeHangulLV(0x1100, 0x1161)
	require.True(t, ok)
	assert.Equal(t, rune(0xAC00), r)
}

func TestHangulLVT(t *testing.T) {
	seq := DecomposeHangul(0xAC01) // LVT syllable
	require.Len(t, seq, 3)

	lv, _ := ComposeHangulLV(seq[0], seq[1])
	r, ok := ComposeHangulLVT(lv, seq[2])
	require.True(t, ok)
	assert.Equal(t, rune(0xAC01), r)
}
