package width

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCodePointWidth(t *testing.T) {
	assert.Equal(t, int8(1), CodePointWidth('A'))
	assert.Equal(t, int8(0), CodePointWidth(0x00))
	assert.Equal(t, int8(2), CodePointWidth(0x4E2D)) // 中
}

func TestStrWidthASCII(t *testing.T) {
	assert.Equal(t, 5, StrWidth([]byte("Hello\r\n")))
}

func TestStrWidthASCIIClampsOnlyAtEnd(t *testing.T) {
	// DEL(-1) + 'A'(1) + backspace(-1) + backspace(-1) sums to -2 raw, but
	// the documented behavior clamps only the final total, not each step.
	assert.Equal(t, 0, StrWidth([]byte("\x7FA\x08\x08")))
	// 'A'(1) + backspace(-1) + backspace(-1) + 'A'(1) sums to 0; clamping
	// after each step would give 1 instead.
	assert.Equal(t, 0, StrWidth([]byte("A\x08\x08A")))
}

func TestStrWidthWideCharacters(t *testing.T) {
	assert.Equal(t, 8, StrWidth([]byte("中文日本"))) // 4 wide chars, width 2 each
}

func TestStrWidthVariationSelectorOverridesToNarrow(t *testing.T) {
	withoutVS := []byte(string([]rune{0x2615})) // HOT BEVERAGE, default emoji presentation, width 2
	withTextVS := []byte(string([]rune{0x2615, 0xFE0E}))

	assert.Equal(t, 2, StrWidth(withoutVS))
	assert.Equal(t, 1, StrWidth(withTextVS))
}

func TestStrWidthANSISkipsEscapes(t *testing.T) {
	plain := StrWidth([]byte("red"))
	styled := StrWidthANSI([]byte("\x1b[31mred\x1b[0m"))
	assert.Equal(t, plain, styled)
}
