package match

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func cafeComposed() []byte {
	return []byte(string([]rune{'c', 'a', 'f', 0x00E9}))
}

func cafeDecomposed() []byte {
	return []byte(string([]rune{'c', 'a', 'f', 'e', 0x0301}))
}

func TestCanonCaselessMatchCaseOnly(t *testing.T) {
	assert.True(t, CanonCaselessMatch([]byte("Hello"), []byte("hello")))
	assert.False(t, CanonCaselessMatch([]byte("Hello"), []byte("World")))
}

func TestCanonCaselessMatchComposedVsDecomposed(t *testing.T) {
	assert.True(t, CanonCaselessMatch(cafeComposed(), cafeDecomposed()))
}

func TestCompatCaselessMatchLigatureVsLetters(t *testing.T) {
	ligature := []byte{0xEF, 0xAC, 0x83} // U+FB03 ffi ligature
	assert.True(t, CompatCaselessMatch(ligature, []byte("FFI")))
}

func TestCanonCaselessMatchDoesNotCollapseLigature(t *testing.T) {
	// Canonical caseless matching must not treat the compatibility ligature
	// as equal to its letter expansion -- only CompatCaselessMatch does.
	ligature := []byte{0xEF, 0xAC, 0x83}
	assert.False(t, CanonCaselessMatch(ligature, []byte("ffi")))
}
