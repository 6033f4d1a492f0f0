// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package parse

import (
	"regexp"
	"strings"
)

// Standalone recognizers. Each one works on any text regardless of style and
// returns "" when nothing is found.
var (
	// yearRe matches a four-digit token bounded by whitespace or punctuation.
	// A dash is not a boundary, so neither end of "1120–1125" is a year.
	yearRe = regexp.MustCompile(`(?:^|[\s.,;:()\[\]"«»“”])(\d{4})(?:\s*г\.)?(?:[\s.,;:()\[\]"«»“”]|$)`)

	// volumeRe matches "Т. 10", "том 10", "vol. 35", "Vol 35".
	volumeRe = regexp.MustCompile(`(?:^|[^\p{L}])(?:[Тт]\.|[Тт]ом|(?i:vol)\.?|(?i:volume))\s*([1-9]\d*)`)

	// issueRe matches "№ 2", "No. 2", "no. 2", "N. 2".
	issueRe = regexp.MustCompile(`(?:№|(?:^|[^\p{L}])(?:[Nn]o\.|[Nn]\.|[Nn]um\.))\s*([1-9]\d*)`)

	// pagesRe matches a page marker followed by a page or a page range:
	// "С. 15-28", "с. 15", "pp. 112–125", "p. 7".
	pagesRe = regexp.MustCompile(`(?:^|[^\p{L}])(?:[СсCc]\.|pp\.|[Pp]\.)\s*(\d+)(?:\s*[-–—]\s*(\d+))?`)

	// pageCountRe matches a page count such as "300 с." or "300 p.".
	pageCountRe = regexp.MustCompile(`(?:^|[^\p{L}\d])(\d+)\s*(?:с|p|pp)\.`)

	// urlRe matches an http(s) URL up to the next whitespace or comma.
	urlRe = regexp.MustCompile(`https?://[^\s,]+`)

	// doiRe matches a DOI with an optional "DOI:" label or doi.org prefix.
	doiRe = regexp.MustCompile(`(?i)(?:doi:?\s*|doi\.org/)?(10\.\d{4,}(?:\.\d+)*/[^\s"'&]+)`)

	// accessDateRe matches "(дата обращения: 01.02.2020)" and
	// "Accessed on: Mar. 5, 2020".
	accessDateRe = regexp.MustCompile(`(?i)\(\s*дата\s+обращения:?\s*([^)]+)\)|accessed(?:\s+on)?:?\s*([^()]+?)\.?(?:\s+doi|\s*$)`)

	// publisherRe matches a publisher phrase built around a publishing keyword.
	publisherRe = regexp.MustCompile(`(?i)(?:^|[\s:]+)([^:,.]*(?:Издательство|Изд-во|Press|Publishing)[^:,.]*)(?:,|\.|$)`)

	// dashRe matches any dash glyph between two page numbers.
	dashRe = regexp.MustCompile(`(\d+)\s*[-–—]\s*(\d+)`)
)

// pageDash is the canonical separator of a page range.
const pageDash = "–"

// FindYear returns the first four-digit year token in s.
func FindYear(s string) string {
	if m := yearRe.FindStringSubmatch(s); m != nil {
		return m[1]
	}
	return ""
}

// findLastYear returns the last four-digit year token in s. Matches are
// scanned one at a time because a boundary consumed by one match may be the
// leading boundary of the next.
func findLastYear(s string) string {
	var last string
	pos := 0
	for pos < len(s) {
		loc := yearRe.FindStringSubmatchIndex(s[pos:])
		if loc == nil {
			break
		}
		last = s[pos+loc[2] : pos+loc[3]]
		pos += loc[3]
	}
	return last
}

// FindVolume returns the volume number following a volume marker.
func FindVolume(s string) string {
	if m := volumeRe.FindStringSubmatch(s); m != nil {
		return m[1]
	}
	return ""
}

// FindIssue returns the issue number following an issue marker.
func FindIssue(s string) string {
	if m := issueRe.FindStringSubmatch(s); m != nil {
		return m[1]
	}
	return ""
}

// FindPages returns the page or page range following a page marker. A range
// is always joined by an en-dash.
func FindPages(s string) string {
	m := pagesRe.FindStringSubmatch(s)
	if m == nil {
		return ""
	}
	if m[2] != "" {
		return m[1] + pageDash + m[2]
	}
	return m[1]
}

// FindPageCount returns the number in a trailing page count ("300 с.").
func FindPageCount(s string) string {
	if m := pageCountRe.FindStringSubmatch(s); m != nil {
		return m[1]
	}
	return ""
}

// NormalizePages rewrites any dash between two page numbers as an en-dash and
// drops the spaces around it.
func NormalizePages(pages string) string {
	return dashRe.ReplaceAllString(strings.TrimSpace(pages), "${1}"+pageDash+"${2}")
}

// FindURL returns the first http(s) URL in s with trailing periods removed.
func FindURL(s string) string {
	return strings.TrimRight(urlRe.FindString(s), ".")
}

// FindDOI returns the first DOI in s without its label or resolver prefix.
func FindDOI(s string) string {
	if m := doiRe.FindStringSubmatch(s); m != nil {
		return strings.TrimRight(m[1], ".,;")
	}
	return ""
}

// FindAccessDate returns the access date of a web resource.
func FindAccessDate(s string) string {
	m := accessDateRe.FindStringSubmatch(s)
	if m == nil {
		return ""
	}
	if m[1] != "" {
		return strings.TrimSpace(m[1])
	}
	return strings.TrimSpace(m[2])
}

// FindPublisher returns a publisher phrase containing a publishing keyword.
func FindPublisher(s string) string {
	if m := publisherRe.FindStringSubmatch(s); m != nil {
		return strings.TrimSpace(m[1])
	}
	return ""
}

// stripLocators removes URLs, DOIs, and access dates from s so that the
// digits inside them are not taken for years or pages.
func stripLocators(s string) string {
	s = accessDateRe.ReplaceAllString(s, " ")
	s = urlRe.ReplaceAllString(s, " ")
	s = doiRe.ReplaceAllString(s, " ")
	return s
}

// cleanField trims whitespace and dangling separators from an extracted value.
func cleanField(s string) string {
	s = strings.Join(strings.Fields(s), " ")
	s = strings.TrimRight(s, " ,;:/—–-")
	s = strings.TrimSuffix(s, ".")
	s = strings.TrimLeft(s, " ,;:.—–-")
	return strings.TrimSpace(s)
}

// cleanTitle is cleanField for titles; a trailing abbreviation period is
// dropped together with any closing quote left over from the source.
func cleanTitle(s string) string {
	s = strings.Trim(s, ` "“”«»`)
	return cleanField(s)
}
