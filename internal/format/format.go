// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package format renders citation records as text in the national (ГОСТ) or
// numeric (IEEE) style. Formatting is total: any record, including an empty
// one, produces a string, and empty fields are skipped together with their
// punctuation.
package format

import (
	"regexp"
	"sort"
	"strconv"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/cases"

	"github.com/pdiddy/citeconv/pkg/types"
)

// Format renders r in style. StyleAuto and unknown styles render the national
// style.
func Format(r types.Record, style types.Style) string {
	if style == types.StyleNumeric {
		return formatNumeric(r)
	}
	return formatNational(r)
}

// SortKey orders a bibliography list.
type SortKey string

const (
	SortNone   SortKey = ""
	SortAuthor SortKey = "author"
	SortYear   SortKey = "year"
	SortTitle  SortKey = "title"
)

var sortAliases = map[string]SortKey{
	"author":   SortAuthor,
	"автор":    SortAuthor,
	"year":     SortYear,
	"год":      SortYear,
	"title":    SortTitle,
	"название": SortTitle,
}

// ParseSortKey maps a sort token to a SortKey. Unknown tokens keep the input
// order.
func ParseSortKey(token string) SortKey {
	return sortAliases[cases.Fold().String(strings.TrimSpace(token))]
}

// FormatList renders records in style, optionally sorted by key. The sort is
// stable and the input slice is not reordered.
func FormatList(records []types.Record, style types.Style, key SortKey) []string {
	sorted := make([]types.Record, len(records))
	copy(sorted, records)

	if key != SortNone {
		fold := cases.Fold()
		sortValue := func(r types.Record) string {
			switch key {
			case SortAuthor:
				if len(r.Authors) > 0 {
					return fold.String(r.Authors[0])
				}
			case SortYear:
				return r.Year
			case SortTitle:
				return fold.String(r.Title)
			}
			return ""
		}
		values := make([]string, len(sorted))
		for i := range sorted {
			values[i] = sortValue(sorted[i])
		}
		sort.Stable(byValue{records: sorted, values: values})
	}

	out := make([]string, len(sorted))
	for i, r := range sorted {
		out[i] = Format(r, style)
	}
	return out
}

// Numbered prefixes each entry with its list number the way style numbers a
// bibliography: "1. " for national, "[1] " for numeric.
func Numbered(entries []string, style types.Style) []string {
	out := make([]string, len(entries))
	for i, e := range entries {
		if style == types.StyleNumeric {
			out[i] = "[" + strconv.Itoa(i+1) + "] " + e
		} else {
			out[i] = strconv.Itoa(i+1) + ". " + e
		}
	}
	return out
}

// byValue sorts records by precomputed sort values.
type byValue struct {
	records []types.Record
	values  []string
}

func (b byValue) Len() int           { return len(b.records) }
func (b byValue) Less(i, j int) bool { return b.values[i] < b.values[j] }
func (b byValue) Swap(i, j int) {
	b.records[i], b.records[j] = b.records[j], b.records[i]
	b.values[i], b.values[j] = b.values[j], b.values[i]
}

// segments collects the sentences of a citation. Each sentence is closed by a
// period unless it already ends with terminal punctuation.
type segments []string

func (s *segments) add(parts ...string) {
	text := strings.TrimSpace(strings.Join(parts, ""))
	if text != "" {
		*s = append(*s, text)
	}
}

func (s segments) String() string {
	var b strings.Builder
	for i, p := range s {
		if i > 0 {
			b.WriteString(" ")
		}
		b.WriteString(p)
		if !strings.HasSuffix(p, ".") && !strings.HasSuffix(p, "?") && !strings.HasSuffix(p, "!") {
			b.WriteString(".")
		}
	}
	return b.String()
}

var (
	spacesRe       = regexp.MustCompile(`\s+`)
	spaceCommaRe   = regexp.MustCompile(`\s+,`)
	spacePeriodRe  = regexp.MustCompile(`\s+\.(\s|$)`)
	repeatCommaRe  = regexp.MustCompile(`,(?:\s*,)+`)
	commaPeriodRe  = regexp.MustCompile(`,\s*\.`)
	doublePeriodRe = regexp.MustCompile(`(^|[^.])\.\.($|[^.])`)
)

// cleanup removes duplicate punctuation and redundant whitespace. An
// ellipsis is left alone.
func cleanup(s string) string {
	s = spacesRe.ReplaceAllString(s, " ")
	s = spaceCommaRe.ReplaceAllString(s, ",")
	s = spacePeriodRe.ReplaceAllString(s, ".$1")
	s = repeatCommaRe.ReplaceAllString(s, ",")
	s = commaPeriodRe.ReplaceAllString(s, ".")
	s = doublePeriodRe.ReplaceAllString(s, "$1.$2")
	return strings.TrimSpace(s)
}

// abbreviatedCity restores the period of a one-letter city abbreviation
// ("М" → "М.") that parsing strips.
func abbreviatedCity(city string) string {
	if utf8.RuneCountInString(city) == 1 {
		return city + "."
	}
	return city
}

// isRange reports whether pages is a page range rather than a page count.
func isRange(pages string) bool {
	return strings.ContainsAny(pages, "-–—")
}
