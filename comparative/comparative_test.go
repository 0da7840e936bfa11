// Package comparative benchmarks and cross-checks this module's graphemes
// and width packages against two widely used alternatives: rivo/uniseg
// (grapheme segmentation) and mattn/go-runewidth (display width). It is a
// separate module so that these dependencies never reach the library's
// go.mod.
package comparative

import (
	"strings"
	"testing"

	"github.com/mattn/go-runewidth"
	"github.com/rivo/uniseg"

	"github.com/cpradog/unitext/graphemes"
	"github.com/cpradog/unitext/width"
)

var asciiSample = strings.Repeat("The quick brown fox jumps over the lazy dog. ", 100)

func graphemeCount(text string) int {
	seg := graphemes.NewSegmenter([]byte(text))
	n := 0
	for seg.Next() {
		n++
	}
	return n
}

func uniSegCount(text string) int {
	n := 0
	g := uniseg.NewGraphemes(text)
	for g.Next() {
		n++
	}
	return n
}

func familyZWJSequence() string {
	const zwj = rune(0x200D)
	return string([]rune{0x1F468, zwj, 0x1F469, zwj, 0x1F467})
}

// TestGraphemeCountAgreement checks that cluster counts agree with
// rivo/uniseg on ASCII and a handful of combining-mark and emoji cases,
// where both libraries should segment identically per UAX #29.
func TestGraphemeCountAgreement(t *testing.T) {
	tests := []string{
		"hello world",
		"café",                // e + combining acute, one cluster for the last two runes
		"\U0001F1EA\U0001F1F8", // ES flag, one cluster
		familyZWJSequence(),    // family ZWJ sequence, one cluster
	}
	for _, tt := range tests {
		ours := graphemeCount(tt)
		theirs := uniSegCount(tt)
		if ours != theirs {
			t.Errorf("cluster count mismatch for %q: ours=%d uniseg=%d", tt, ours, theirs)
		}
	}
}

// TestWidthAgreement checks that StrWidth agrees with go-runewidth for plain
// text without variation selectors, where there is no room for the two
// libraries' differing emoji-presentation heuristics to diverge.
func TestWidthAgreement(t *testing.T) {
	tests := []string{
		"hello",
		"日本語",
		"café",
	}
	for _, tt := range tests {
		ours := width.StrWidth([]byte(tt))
		theirs := runewidth.StringWidth(tt)
		if ours != theirs {
			t.Errorf("width mismatch for %q: ours=%d go-runewidth=%d", tt, ours, theirs)
		}
	}
}

func BenchmarkGraphemesASCII(b *testing.B) {
	n := int64(len(asciiSample))

	b.Run("unitext", func(b *testing.B) {
		b.SetBytes(n)
		b.ReportAllocs()
		b.ResetTimer()
		for i := 0; i < b.N; i++ {
			graphemeCount(asciiSample)
		}
	})

	b.Run("rivo/uniseg", func(b *testing.B) {
		b.SetBytes(n)
		b.ReportAllocs()
		b.ResetTimer()
		for i := 0; i < b.N; i++ {
			uniSegCount(asciiSample)
		}
	})
}

func BenchmarkWidthASCII(b *testing.B) {
	data := []byte(asciiSample)
	n := int64(len(data))

	b.Run("unitext", func(b *testing.B) {
		b.SetBytes(n)
		b.ReportAllocs()
		b.ResetTimer()
		for i := 0; i < b.N; i++ {
			width.StrWidth(data)
		}
	})

	b.Run("mattn/go-runewidth", func(b *testing.B) {
		b.SetBytes(n)
		b.ReportAllocs()
		b.ResetTimer()
		for i := 0; i < b.N; i++ {
			runewidth.StringWidth(asciiSample)
		}
	})
}
