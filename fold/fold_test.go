package fold

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFoldASCII(t *testing.T) {
	assert.Equal(t, []byte("hello world"), Fold([]byte("Hello World")))
}

func TestFoldExpandsSharpS(t *testing.T) {
	input := []byte{0xC3, 0x9F} // UTF-8 for U+00DF ß
	assert.Equal(t, []byte("ss"), Fold(input))
}

func TestFoldGreekSigma(t *testing.T) {
	// Final sigma (U+03C2) and capital sigma (U+03A3) both fold to U+03C3.
	final := []byte{0xCF, 0x82}
	capital := []byte{0xCE, 0xA3}
	assert.Equal(t, Fold(final), Fold(capital))
}

func TestFoldUnmappedUnchanged(t *testing.T) {
	input := []byte("日本語")
	assert.Equal(t, input, Fold(input))
}
