// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package format

import (
	"strings"

	"github.com/pdiddy/citeconv/internal/authors"
	"github.com/pdiddy/citeconv/pkg/types"
)

// formatNational renders r in the national style:
//
//	book:       Authors. Title : Subtitle. N-е изд. City: Publisher, Year. N с.
//	article:    Authors. Title. // Journal. Year. Т. V. № I. С. P.
//	conference: Authors. Title. // Proceedings. City: Publisher, Year. С. P.
//	thesis:     Authors. Title : дис. ... Degree. City, Year. N с.
//	web:        Authors. Title [Электронный ресурс]. Year. URL: U (дата обращения: D).
func formatNational(r types.Record) string {
	var s segments
	s.add(nationalAuthors(r.Authors))

	title := r.Title
	if r.Subtitle != "" {
		title = strings.TrimSpace(title + " : " + r.Subtitle)
	}

	switch r.SourceType {
	case types.SourceArticle, types.SourceConference:
		s.add(title)
		if r.Journal != "" {
			s.add("// ", nationalVenue(r))
		}
		if r.Publisher != "" {
			s.add(nationalImprint(r))
		} else {
			s.add(r.Year)
		}
		if r.Volume != "" {
			s.add("Т. ", r.Volume)
		}
		if r.Issue != "" {
			s.add("№ ", r.Issue)
		}
		if r.Pages != "" {
			s.add("С. ", r.Pages)
		}

	case types.SourceThesis:
		kind := "дис."
		if r.Extra[types.ExtraAbstract] == "true" {
			kind = "автореф. дис."
		}
		if degree := r.Extra[types.ExtraDegree]; degree != "" {
			kind += " ... " + degree
		}
		s.add(strings.TrimSpace(title + " : " + kind))
		if r.City != "" && r.Year != "" {
			s.add(abbreviatedCity(r.City), ", ", r.Year)
		} else {
			s.add(r.Year)
		}
		nationalPages(&s, r.Pages)

	case types.SourceWeb:
		s.add(strings.TrimSpace(title + " [Электронный ресурс]"))
		s.add(r.Year)
		if r.URL != "" {
			access := ""
			if r.AccessDate != "" {
				access = " (дата обращения: " + r.AccessDate + ")"
			}
			s.add("URL: ", r.URL, access)
		}

	default:
		s.add(title)
		if r.Edition != "" {
			s.add(r.Edition, "-е изд.")
		}
		s.add(nationalImprint(r))
		nationalPages(&s, r.Pages)
	}

	if r.DOI != "" {
		s.add("DOI: ", r.DOI)
	}
	return cleanup(s.String())
}

// nationalAuthors renders names surname first.
func nationalAuthors(names []string) string {
	out := make([]string, 0, len(names))
	for _, n := range names {
		out = append(out, authors.ToNational(n))
	}
	return authors.Join(out)
}

// nationalVenue renders the journal or collection title with its editors.
func nationalVenue(r types.Record) string {
	if editors := r.Extra[types.ExtraEditors]; editors != "" {
		return r.Journal + " / " + editors
	}
	return r.Journal
}

// nationalImprint renders "City: Publisher, Year" and degrades to whatever
// parts are present.
func nationalImprint(r types.Record) string {
	city := abbreviatedCity(r.City)
	switch {
	case r.Publisher != "":
		imprint := r.Publisher
		if city != "" {
			imprint = city + ": " + imprint
		}
		if r.Year != "" {
			imprint += ", " + r.Year
		}
		return imprint
	case city != "" && r.Year != "":
		return city + ", " + r.Year
	default:
		return r.Year
	}
}

// nationalPages renders a page count as "N с." and a range as "С. X–Y".
func nationalPages(s *segments, pages string) {
	switch {
	case pages == "":
	case isRange(pages):
		s.add("С. ", pages)
	default:
		s.add(pages, " с.")
	}
}
