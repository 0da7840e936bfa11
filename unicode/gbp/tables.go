package gbp

import "github.com/cpradog/unitext/internal/twostage"

// stage1 indexes into stage2 (per 256-code-point block); stage2 holds
// indices into stage3; stage3 holds the deduplicated set of distinct packed
// Properties values actually in use. This is the three-stage layout
// described for the grapheme-break property family.
var (
	stage1 []uint16
	stage2 []uint8
	stage3 []Properties
)

func init() {
	packed := make(map[rune]Properties)

	for _, rg := range gbpRanges {
		for cp := rg.lo; cp <= rg.hi; cp++ {
			packed[cp] = packed[cp].withGBP(rg.gbp)
		}
	}
	for _, rg := range indicRanges {
		for cp := rg.lo; cp <= rg.hi; cp++ {
			packed[cp] = packed[cp].withIndic(rg.indic)
		}
	}
	for _, rg := range extPictRanges {
		for cp := rg.lo; cp <= rg.hi; cp++ {
			packed[cp] = packed[cp].withExtPict()
		}
	}

	rawStage1, rawStage2 := twostage.Build(packed)

	// Deduplicate the expanded stage2 entries into stage3, leaving stage2
	// holding small indices into it.
	index := make(map[Properties]uint8)
	stage2 = make([]uint8, len(rawStage2))
	for i, p := range rawStage2 {
		idx, ok := index[p]
		if !ok {
			idx = uint8(len(stage3))
			stage3 = append(stage3, p)
			index[p] = idx
		}
		stage2[i] = idx
	}
	stage1 = rawStage1
}

func (p Properties) withGBP(g GBP) Properties {
	return Pack(g, p.Indic(), p.ExtendedPictographic())
}

func (p Properties) withIndic(ind Indic) Properties {
	return Pack(p.GBP(), ind, p.ExtendedPictographic())
}

func (p Properties) withExtPict() Properties {
	return Pack(p.GBP(), p.Indic(), true)
}

func stage1lookup(r rune) int {
	if r < 0 || int(r) >= twostage.Stage1Len*twostage.BlockSize {
		return 0
	}
	hi := int(r) >> 8
	lo := int(r) & (twostage.BlockSize - 1)
	return int(stage1[hi]) + lo
}
