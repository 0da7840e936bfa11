package graphemes

// Grapheme is a byte range, within some source the caller already has,
// spanning one extended grapheme cluster.
type Grapheme struct {
	Offset int
	Len    int
}

// All returns the Grapheme records for data: a contiguous, gap-free,
// overlap-free tiling of data's byte range such that concatenating the
// successive Len-byte spans starting at Offset reconstructs data exactly.
func All(data []byte) []Grapheme {
	var out []Grapheme
	seg := NewSegmenter(data)
	for seg.Next() {
		out = append(out, Grapheme{Offset: seg.Start(), Len: seg.End() - seg.Start()})
	}
	return out
}

// Count returns the number of grapheme clusters in data, without allocating
// a slice of their positions.
func Count(data []byte) int {
	n := 0
	seg := NewSegmenter(data)
	for seg.Next() {
		n++
	}
	return n
}
