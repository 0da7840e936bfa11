// Package ucd parses the line-oriented, semicolon-delimited text files the
// Unicode Character Database publishes (GraphemeBreakProperty.txt,
// DerivedCombiningClass.txt, EastAsianWidth.txt, CaseFolding.txt,
// UnicodeData.txt, and friends). It is consumed only by internal/gen; the
// tables checked into unicode/gbp, unicode/ccc, unicode/dwp, unicode/fold,
// and unicode/norm are themselves plain Go data, not parsed at runtime.
package ucd

import (
	"bufio"
	"io"
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// Range is an inclusive code point range, as UCD files write it: either a
// single hex code point, or "XXXX..YYYY".
type Range struct {
	Lo, Hi rune
}

// ParseRange parses a single UCD code point field, "XXXX" or "XXXX..YYYY".
func ParseRange(field string) (Range, error) {
	field = strings.TrimSpace(field)
	lo, hi, found := strings.Cut(field, "..")
	loR, err := parseHexRune(lo)
	if err != nil {
		return Range{}, errors.Wrapf(err, "ucd: parsing range %q", field)
	}
	if !found {
		return Range{Lo: loR, Hi: loR}, nil
	}
	hiR, err := parseHexRune(hi)
	if err != nil {
		return Range{}, errors.Wrapf(err, "ucd: parsing range %q", field)
	}
	return Range{Lo: loR, Hi: hiR}, nil
}

func parseHexRune(s string) (rune, error) {
	v, err := strconv.ParseInt(strings.TrimSpace(s), 16, 32)
	if err != nil {
		return 0, err
	}
	return rune(v), nil
}

// Record is one semicolon-delimited, comment-stripped, non-blank data line.
type Record struct {
	// Fields are the ';'-delimited values, trimmed, with any trailing
	// "# comment" portion of the line already removed.
	Fields []string
	// Comment is the text after '#' on the line, if any.
	Comment string
}

// Field returns the i'th field, or "" if the record has fewer fields.
func (r Record) Field(i int) string {
	if i < 0 || i >= len(r.Fields) {
		return ""
	}
	return r.Fields[i]
}

// Scan reads a UCD text file from r, skipping blank lines and lines whose
// first non-space character is '#', and calls fn with each remaining line
// split into Fields. Scanning stops at the first error fn returns.
func Scan(r io.Reader, fn func(Record) error) error {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	for sc.Scan() {
		line := sc.Text()
		trimmed := strings.TrimSpace(line)
		if trimmed == "" || strings.HasPrefix(trimmed, "#") {
			continue
		}

		data, comment, _ := strings.Cut(line, "#")
		fields := strings.Split(data, ";")
		for i, f := range fields {
			fields[i] = strings.TrimSpace(f)
		}

		if err := fn(Record{Fields: fields, Comment: strings.TrimSpace(comment)}); err != nil {
			return errors.Wrap(err, "ucd: handling record")
		}
	}
	if err := sc.Err(); err != nil {
		return errors.Wrap(err, "ucd: scanning")
	}
	return nil
}
