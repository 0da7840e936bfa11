// Package fold holds the full case-folding table consumed by the fold and
// match packages, built at init from the seed mappings in seed.go, which
// are drawn from CaseFolding.txt rows with status C (common) or F (full); S (simple) and T
// (Turkic) are excluded per spec.
//
// Unlike the grapheme-break/ccc/width property families, the fold table is
// sparse and variable-width (1 to 3 code points per entry), so it is stored
// as a flat sorted list of records rather than a two-stage array -- this
// matches the "flat sequence of records" format used for the generated
// binary fold table.
package fold

import "sort"

type record struct {
	from rune
	to   []rune
}

var records []record

func init() {
	recs := make([]record, 0, len(seedFolds))
	for cp, to := range seedFolds {
		recs = append(recs, record{from: cp, to: to})
	}
	sort.Slice(recs, func(i, j int) bool { return recs[i].from < recs[j].from })
	records = recs
}

// Lookup returns the full case-fold mapping for r: 1 to 3 code points. Code
// points with no entry fold to themselves.
func Lookup(r rune) []rune {
	i := sort.Search(len(records), func(i int) bool { return records[i].from >= r })
	if i < len(records) && records[i].from == r {
		return records[i].to
	}
	return []rune{r}
}
