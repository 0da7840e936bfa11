// Package unitext provides a Unicode text-processing core: extended
// grapheme cluster segmentation (UAX #29), canonical and compatibility
// caseless matching (UAX #44 / Unicode section 3.13) built on NFD/NFKD
// normalization and full case folding, and monospace display-width
// calculation (UAX #11).
//
// See the codepoints, graphemes, normalize, fold, match, and width packages
// for the individual components, and unicode/gbp, unicode/ccc, unicode/dwp,
// unicode/fold, and unicode/norm for the underlying property tables.
package unitext
