// Command gen is the offline table generator for the unicode/* packages. It
// downloads the relevant Unicode Character Database files and writes the
// parsed property data for unicode/gbp, unicode/ccc, unicode/dwp, and
// unicode/fold as zz_generated_*.go files; there is no task for
// unicode/norm. It is a separate module so that net/http and go/format never
// become a dependency of the library itself.
//
// The tables currently checked into those packages are hand-authored seed
// data covering representative ranges, not the output of a run of this
// generator against live UCD files -- see DESIGN.md. The generated files
// hold string-valued ranges (and, for fold, a map named generatedFolds); the
// packages' init functions build their tables from the seed data only and do
// not read these generated variables.
package main

import (
	"bytes"
	"flag"
	"fmt"
	"go/format"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"unicode"

	"github.com/pkg/errors"

	"github.com/cpradog/unitext/internal/ucd"
)

var (
	ucdVersion = flag.String("ucd-version", unicode.Version, "Unicode version to fetch (Public/<version>/ucd)")
	outDir     = flag.String("out", "..", "repository root to write generated table files under")
)

const auxBase = "https://www.unicode.org/Public/%s/ucd/auxiliary/%s"
const ucdBase = "https://www.unicode.org/Public/%s/ucd/%s"
const emojiBase = "https://www.unicode.org/Public/%s/ucd/emoji/%s"

func main() {
	flag.Parse()

	tasks := []struct {
		name string
		run  func() error
	}{
		{"gbp", generateGBP},
		{"ccc", generateCCC},
		{"dwp", generateDWP},
		{"fold", generateFold},
	}

	for _, t := range tasks {
		fmt.Fprintln(os.Stderr, "generating", t.name)
		if err := t.run(); err != nil {
			fmt.Fprintln(os.Stderr, errors.Wrapf(err, "gen: %s", t.name))
			os.Exit(1)
		}
	}
}

func fetch(url string) (io.ReadCloser, error) {
	resp, err := http.Get(url)
	if err != nil {
		return nil, errors.Wrapf(err, "fetching %s", url)
	}
	if resp.StatusCode != http.StatusOK {
		resp.Body.Close()
		return nil, errors.Errorf("fetching %s: status %s", url, resp.Status)
	}
	return resp.Body, nil
}

// generateGBP rebuilds unicode/gbp's ranges from GraphemeBreakProperty.txt,
// Indic_Conjunct_Break in DerivedCoreProperties.txt, and Extended_Pictographic
// in emoji-data.txt.
func generateGBP() error {
	gbpByRune := map[rune]string{}
	if err := scanProperty(fmt.Sprintf(auxBase, *ucdVersion, "GraphemeBreakProperty.txt"), gbpByRune); err != nil {
		return err
	}

	indicByRune := map[rune]string{}
	if err := scanFilteredProperty(
		fmt.Sprintf(ucdBase, *ucdVersion, "DerivedCoreProperties.txt"),
		"Indic_Conjunct_Break", indicByRune,
	); err != nil {
		return err
	}

	extPictByRune := map[rune]string{}
	if err := scanFilteredProperty(
		fmt.Sprintf(emojiBase, *ucdVersion, "emoji-data.txt"),
		"Extended_Pictographic", extPictByRune,
	); err != nil {
		return err
	}

	var buf bytes.Buffer
	fmt.Fprintln(&buf, "package gbp")
	fmt.Fprintln(&buf, "\n// generated by internal/gen from", *ucdVersion)
	writeStringRangeVar(&buf, "gbpRanges", gbpByRune)
	writeStringRangeVar(&buf, "indicRanges", indicByRune)
	writeStringRangeVar(&buf, "extPictRanges", extPictByRune)

	return writeFormatted(&buf, "unicode/gbp/zz_generated_ranges.go")
}

// generateCCC rebuilds unicode/ccc's ranges from DerivedCombiningClass.txt.
func generateCCC() error {
	cccByRune := map[rune]string{}
	if err := scanProperty(fmt.Sprintf(ucdBase, *ucdVersion, "extracted/DerivedCombiningClass.txt"), cccByRune); err != nil {
		return err
	}

	var buf bytes.Buffer
	fmt.Fprintln(&buf, "package ccc")
	fmt.Fprintln(&buf, "\n// generated by internal/gen from", *ucdVersion)
	writeStringRangeVar(&buf, "cccRanges", cccByRune)

	return writeFormatted(&buf, "unicode/ccc/zz_generated_ranges.go")
}

// generateDWP rebuilds unicode/dwp's ranges from EastAsianWidth.txt.
func generateDWP() error {
	widthByRune := map[rune]string{}
	if err := scanProperty(fmt.Sprintf(ucdBase, *ucdVersion, "EastAsianWidth.txt"), widthByRune); err != nil {
		return err
	}

	var buf bytes.Buffer
	fmt.Fprintln(&buf, "package dwp")
	fmt.Fprintln(&buf, "\n// generated by internal/gen from", *ucdVersion)
	writeStringRangeVar(&buf, "eastAsianWidthRanges", widthByRune)

	return writeFormatted(&buf, "unicode/dwp/zz_generated_ranges.go")
}

// generateFold rebuilds unicode/fold's seed table from CaseFolding.txt,
// keeping only status C and F rows.
func generateFold() error {
	rc, err := fetch(fmt.Sprintf(ucdBase, *ucdVersion, "CaseFolding.txt"))
	if err != nil {
		return err
	}
	defer rc.Close()

	var buf bytes.Buffer
	fmt.Fprintln(&buf, "package fold")
	fmt.Fprintln(&buf, "\n// generated by internal/gen from", *ucdVersion)
	fmt.Fprintln(&buf, "\nvar generatedFolds = map[rune][]rune{")

	err = ucd.Scan(rc, func(r ucd.Record) error {
		if len(r.Fields) < 3 {
			return nil
		}
		status := strings.TrimSpace(r.Field(1))
		if status != "C" && status != "F" {
			return nil
		}
		from, err := ucd.ParseRange(r.Field(0))
		if err != nil {
			return err
		}
		to, err := parseRuneList(r.Field(2))
		if err != nil {
			return err
		}
		fmt.Fprintf(&buf, "\t0x%04X: %#v,\n", from.Lo, to)
		return nil
	})
	if err != nil {
		return err
	}
	fmt.Fprintln(&buf, "}")

	return writeFormatted(&buf, "unicode/fold/zz_generated_folds.go")
}

func parseRuneList(field string) ([]rune, error) {
	parts := strings.Fields(field)
	out := make([]rune, 0, len(parts))
	for _, p := range parts {
		r, err := ucd.ParseRange(p)
		if err != nil {
			return nil, err
		}
		out = append(out, r.Lo)
	}
	return out, nil
}

// scanProperty reads a UnicodeData-style file whose first two fields are a
// code-point range and a property value, recording the last value seen for
// each code point in the range.
func scanProperty(url string, into map[rune]string) error {
	rc, err := fetch(url)
	if err != nil {
		return err
	}
	defer rc.Close()

	return ucd.Scan(rc, func(r ucd.Record) error {
		if len(r.Fields) < 2 {
			return nil
		}
		rng, err := ucd.ParseRange(r.Field(0))
		if err != nil {
			return err
		}
		value := strings.TrimSpace(r.Field(1))
		for cp := rng.Lo; cp <= rng.Hi; cp++ {
			into[cp] = value
		}
		return nil
	})
}

// scanFilteredProperty is like scanProperty but for files (like
// DerivedCoreProperties.txt) that list several properties together; only
// rows whose second field equals want are kept.
func scanFilteredProperty(url, want string, into map[rune]string) error {
	rc, err := fetch(url)
	if err != nil {
		return err
	}
	defer rc.Close()

	return ucd.Scan(rc, func(r ucd.Record) error {
		if len(r.Fields) < 2 || strings.TrimSpace(r.Field(1)) != want {
			return nil
		}
		rng, err := ucd.ParseRange(r.Field(0))
		if err != nil {
			return err
		}
		for cp := rng.Lo; cp <= rng.Hi; cp++ {
			into[cp] = want
		}
		return nil
	})
}

// writeStringRangeVar collapses a rune->value map into contiguous
// same-value ranges and writes it as a Go slice literal named name.
func writeStringRangeVar(buf *bytes.Buffer, name string, byRune map[rune]string) {
	runes := make([]rune, 0, len(byRune))
	for r := range byRune {
		runes = append(runes, r)
	}
	sort.Slice(runes, func(i, j int) bool { return runes[i] < runes[j] })

	type rng struct {
		lo, hi rune
		value  string
	}
	var ranges []rng
	for _, r := range runes {
		v := byRune[r]
		if n := len(ranges); n > 0 && ranges[n-1].hi == r-1 && ranges[n-1].value == v {
			ranges[n-1].hi = r
			continue
		}
		ranges = append(ranges, rng{lo: r, hi: r, value: v})
	}

	fmt.Fprintf(buf, "\nvar %s = []struct{lo,hi rune; value string}{\n", name)
	for _, rr := range ranges {
		fmt.Fprintf(buf, "\t{0x%04X, 0x%04X, %q},\n", rr.lo, rr.hi, rr.value)
	}
	fmt.Fprintln(buf, "}")
}

func writeFormatted(buf *bytes.Buffer, relPath string) error {
	formatted, err := format.Source(buf.Bytes())
	if err != nil {
		return errors.Wrapf(err, "formatting %s", relPath)
	}

	dst := filepath.Join(*outDir, relPath)
	if err := os.WriteFile(dst, formatted, 0o644); err != nil {
		return errors.Wrapf(err, "writing %s", dst)
	}
	return nil
}
