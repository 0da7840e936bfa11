// Package twostage builds the two-stage lookup tables described by this
// module's property table format: stage1 has one entry per 256-code-point
// block (length 0x1100, covering the full 0x110000 code point space),
// indexing into a deduplicated stage2 where identical 256-entry blocks share
// one offset. Lookup is stage2[stage1[cp>>8] + (cp&0xff)].
//
// unicode/gbp, unicode/ccc, and unicode/dwp call Build from their init
// functions to turn their seed range data into tables; internal/gen does not
// use this package.
package twostage

// BlockSize is the number of code points per stage1 entry.
const BlockSize = 0x100

// Stage1Len is the number of stage1 entries, covering code points
// 0..0x10FFFF inclusive in BlockSize-sized blocks.
const Stage1Len = 0x1100

// Build constructs a deduplicated two-stage table from a sparse map of code
// point to value. Code points absent from values take the zero value of V.
func Build[V comparable](values map[rune]V) (stage1 []uint16, stage2 []V) {
	type block = [BlockSize]V

	blocks := make([]block, Stage1Len)
	for cp, v := range values {
		if cp < 0 || int(cp) >= Stage1Len*BlockSize {
			continue
		}
		hi := int(cp) >> 8
		lo := int(cp) & (BlockSize - 1)
		blocks[hi][lo] = v
	}

	stage1 = make([]uint16, Stage1Len)
	seen := make(map[block]uint16, Stage1Len)
	for i, b := range blocks {
		if off, ok := seen[b]; ok {
			stage1[i] = off
			continue
		}
		off := uint16(len(stage2))
		stage2 = append(stage2, b[:]...)
		seen[b] = off
		stage1[i] = off
	}
	return stage1, stage2
}

// Lookup reads stage2[stage1[cp>>8] + (cp&0xff)], returning the zero value
// of V for out-of-range code points.
func Lookup[V comparable](stage1 []uint16, stage2 []V, cp rune) V {
	var zero V
	if cp < 0 || int(cp) >= Stage1Len*BlockSize {
		return zero
	}
	hi := int(cp) >> 8
	lo := int(cp) & (BlockSize - 1)
	idx := int(stage1[hi]) + lo
	if idx >= len(stage2) {
		return zero
	}
	return stage2[idx]
}

// Expand fills a code point range [lo, hi] (inclusive) with v in values.
func Expand[V any](values map[rune]V, lo, hi rune, v V) {
	for cp := lo; cp <= hi; cp++ {
		values[cp] = v
	}
}
