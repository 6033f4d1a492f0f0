// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package format

import (
	"strconv"
	"strings"

	"github.com/pdiddy/citeconv/internal/authors"
	"github.com/pdiddy/citeconv/pkg/types"
)

// formatNumeric renders r in the numeric style:
//
//	article:    Authors, "Title," Journal, vol. V, no. I, pp. P, Year.
//	conference: Authors, "Title," in Proceedings, City, Year, pp. P.
//	book:       Authors, "Title," Nth ed., City: Publisher, Year.
//	thesis:     Authors, "Title," Degree dissertation, City, Year.
//	web:        Authors, "Title," Year. [Online]. Available: U, Accessed on: D.
func formatNumeric(r types.Record) string {
	var clauses []string
	add := func(parts ...string) {
		if c := strings.TrimSpace(strings.Join(parts, "")); c != "" {
			clauses = append(clauses, c)
		}
	}

	switch r.SourceType {
	case types.SourceArticle:
		add(r.Journal)
		if r.Volume != "" {
			add("vol. ", r.Volume)
		}
		if r.Issue != "" {
			add("no. ", r.Issue)
		}
		add(numericPages(r.Pages))
		add(r.Year)

	case types.SourceConference:
		if r.Journal != "" {
			add("in ", r.Journal)
		}
		add(numericImprint(r))
		add(r.Year)
		add(numericPages(r.Pages))

	case types.SourceThesis:
		kind := "dissertation"
		if degree := r.Extra[types.ExtraDegree]; degree != "" {
			kind = degree + " " + kind
		}
		if r.Extra[types.ExtraAbstract] == "true" {
			kind = "Abstract of " + kind
		}
		add(kind)
		add(abbreviatedCity(r.City))
		add(r.Year)

	case types.SourceWeb:
		add(r.Year)

	default:
		if r.Edition != "" {
			add(ordinal(r.Edition), " ed.")
		}
		add(numericImprint(r))
		add(r.Year)
	}

	var b strings.Builder
	if names := numericAuthors(r.Authors); names != "" {
		b.WriteString(names)
		b.WriteString(", ")
	}
	title := r.Title
	if r.Subtitle != "" {
		title = strings.TrimSpace(title + ": " + r.Subtitle)
	}
	switch {
	case title != "" && len(clauses) > 0:
		b.WriteString(`"` + title + `," `)
	case title != "":
		b.WriteString(`"` + title + `."`)
	}
	b.WriteString(strings.Join(clauses, ", "))
	if len(clauses) > 0 {
		b.WriteString(".")
	}

	if r.SourceType == types.SourceWeb {
		b.WriteString(" [Online].")
		if r.URL != "" {
			b.WriteString(" Available: " + r.URL)
			if r.AccessDate != "" {
				b.WriteString(", Accessed on: " + r.AccessDate)
			}
			b.WriteString(".")
		}
	}
	if r.DOI != "" {
		b.WriteString(" doi: " + r.DOI + ".")
	}

	out := cleanup(b.String())
	return strings.TrimSuffix(out, ",")
}

// numericAuthors renders names initials first.
func numericAuthors(names []string) string {
	out := make([]string, 0, len(names))
	for _, n := range names {
		out = append(out, authors.ToNumeric(n))
	}
	return authors.Join(out)
}

// numericImprint renders "City: Publisher", "Publisher", or "City".
func numericImprint(r types.Record) string {
	city := abbreviatedCity(r.City)
	switch {
	case city != "" && r.Publisher != "":
		return city + ": " + r.Publisher
	case r.Publisher != "":
		return r.Publisher
	default:
		return city
	}
}

// numericPages renders "p. X" for a single page and "pp. X–Y" for a range.
func numericPages(pages string) string {
	switch {
	case pages == "":
		return ""
	case isRange(pages):
		return "pp. " + pages
	default:
		return "p. " + pages
	}
}

// ordinal renders an edition number as "1st", "2nd", "3rd", "4th".
func ordinal(edition string) string {
	n, err := strconv.Atoi(edition)
	if err != nil {
		return edition
	}
	suffix := "th"
	switch {
	case n%100 >= 11 && n%100 <= 13:
	case n%10 == 1:
		suffix = "st"
	case n%10 == 2:
		suffix = "nd"
	case n%10 == 3:
		suffix = "rd"
	}
	return edition + suffix
}
