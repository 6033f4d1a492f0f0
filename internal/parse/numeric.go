// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package parse

import (
	"regexp"
	"strings"

	"github.com/pdiddy/citeconv/internal/authors"
	"github.com/pdiddy/citeconv/pkg/types"
)

// Numeric style patterns.
var (
	// quotedTitleRe matches a quoted title; a comma or period just inside the
	// closing quote is not part of the title.
	quotedTitleRe = regexp.MustCompile(`["“«]([^"“”«»]+?)[,.]?\s*["”»]`)

	// onlineRe matches the online resource markers.
	onlineRe = regexp.MustCompile(`(?i)\[online\]|available:`)

	// thesisKindRe matches "[Abstract of ]Degree dissertation" or "... thesis"
	// at the start of the text after the title.
	thesisKindRe = regexp.MustCompile(`^(?P<abstract>(?i:abstract\s+of\s+))?(?P<degree>[^,]*?)\s*(?i:dissertation|thesis)\s*(?:,|\.|$)`)

	// inVenueRe matches the "in" that introduces a proceedings title.
	inVenueRe = regexp.MustCompile(`^(?i:in)\s+`)

	// numericBookTailRe matches "[Nth ed., ]City[, Country]: Publisher, Year".
	numericBookTailRe = regexp.MustCompile(`^(?:(?P<edition>\d+)(?:st|nd|rd|th|-е)\s+(?:ed\.|изд\.),?\s*)?` +
		`(?P<city>[^,:]+?)(?:,\s*(?P<country>[^:]+?))?:\s*(?P<publisher>[^,]+?),\s*(?P<year>\d{4})`)

	// markerChunkRe matches a comma-separated chunk that holds a volume,
	// issue, page, DOI, or year rather than a venue name.
	markerChunkRe = regexp.MustCompile(`(?i)^(?:vol\.|no\.|pp?\.|doi|\d{4}\.?$|[ТтС]\.|№)`)

	// numericArticleRe matches "Title, Journal, vol./no./pp. ..." after the
	// author block.
	numericArticleRe = regexp.MustCompile(`^(?P<title>[^,]+?),\s*(?P<journal>[^,]+?),\s*(?P<tail>(?i:vol|no|pp?)\..*)$`)

	// numericConferenceRe matches "Title, in Proceedings, ..." after the
	// author block.
	numericConferenceRe = regexp.MustCompile(`^(?P<title>[^,]+?),\s*(?i:in)\s+(?P<venue>[^,]+?)(?P<tail>,.*)?$`)

	// numericBookRe matches "Title. City[, Country]: Publisher, Year" after the
	// author block.
	numericBookRe = regexp.MustCompile(`^(?P<title>.+?)[.,]\s+(?P<city>[^,:.]+?)(?:,\s*(?P<country>[^,:]+?))?:\s*(?P<publisher>[^,]+?),\s*(?P<year>\d{4})(?P<tail>.*)$`)
)

// numericMatchers returns the numeric-style matchers in priority order.
func numericMatchers() []Matcher {
	return []Matcher{
		{Name: "numeric.quoted", Match: matchNumericQuoted},
		{Name: "numeric.article", Match: matchNumericArticle},
		{Name: "numeric.conference", Match: matchNumericConference},
		{Name: "numeric.book", Match: matchNumericBook},
	}
}

func matchNumericQuoted(text string) (types.Record, bool) {
	loc := quotedTitleRe.FindStringSubmatchIndex(text)
	if loc == nil {
		return types.Record{}, false
	}
	r := types.Record{Authors: authors.Normalize(strings.TrimRight(text[:loc[0]], " ,"))}
	r.Title, r.Subtitle = splitSubtitle(cleanTitle(text[loc[2]:loc[3]]))
	classifyNumericTail(&r, strings.TrimLeft(text[loc[1]:], " ,."))
	return r, true
}

// splitSubtitle splits "Title: Subtitle" at the first colon.
func splitSubtitle(title string) (string, string) {
	head, tail, ok := strings.Cut(title, ": ")
	if !ok || strings.TrimSpace(head) == "" {
		return title, ""
	}
	return strings.TrimSpace(head), strings.TrimSpace(tail)
}

// classifyNumericTail decides the source type from the text after a quoted
// title and fills the fields that type carries.
func classifyNumericTail(r *types.Record, tail string) {
	bare := stripLocators(tail)
	r.DOI = FindDOI(tail)

	if loc := onlineRe.FindStringIndex(tail); loc != nil {
		r.Year = findLastYear(stripLocators(tail[:loc[0]]))
		r.URL = FindURL(tail)
		r.AccessDate = FindAccessDate(tail)
		r.SourceType = types.SourceWeb
		return
	}

	if g, ok := submatches(thesisKindRe, tail); ok {
		if g["abstract"] != "" {
			r.SetExtra(types.ExtraAbstract, "true")
		}
		r.SetExtra(types.ExtraDegree, strings.TrimSpace(g["degree"]))
		end := thesisKindRe.FindStringIndex(tail)[1]
		chunks := splitChunks(tail[end:])
		if len(chunks) > 0 && !markerChunkRe.MatchString(chunks[0]) {
			r.City = cleanField(chunks[0])
		}
		r.Year = findLastYear(bare)
		r.SourceType = types.SourceThesis
		return
	}

	if loc := inVenueRe.FindStringIndex(tail); loc != nil {
		chunks := splitChunks(tail[loc[1]:])
		if len(chunks) > 0 {
			r.Journal = cleanField(chunks[0])
		}
		if len(chunks) > 1 && !markerChunkRe.MatchString(chunks[1]) {
			city, publisher, _ := strings.Cut(chunks[1], ":")
			r.City = cleanField(city)
			r.Publisher = cleanField(publisher)
		}
		r.Year = findLastYear(bare)
		r.Pages = FindPages(bare)
		r.SourceType = types.SourceConference
		return
	}

	if g, ok := submatches(numericBookTailRe, tail); ok {
		r.Edition = g["edition"]
		r.City = cleanField(g["city"])
		r.SetExtra(types.ExtraCountry, cleanField(g["country"]))
		r.Publisher = cleanField(g["publisher"])
		r.Year = g["year"]
		r.SourceType = types.SourceBook
		return
	}

	chunks := splitChunks(tail)
	r.Volume = FindVolume(bare)
	r.Issue = FindIssue(bare)
	r.Pages = FindPages(bare)
	r.Year = findLastYear(bare)
	if len(chunks) == 0 || markerChunkRe.MatchString(chunks[0]) {
		return
	}
	venue := cleanField(chunks[0])
	if r.Volume == "" && r.Issue == "" && FindPublisher(venue) != "" {
		r.Publisher = venue
		r.SourceType = types.SourceBook
		return
	}
	r.Journal = venue
	r.SourceType = types.SourceArticle
}

// splitChunks splits the text after a title at commas and drops empty chunks.
func splitChunks(s string) []string {
	var chunks []string
	for _, c := range strings.Split(s, ",") {
		if c = strings.TrimSpace(c); c != "" {
			chunks = append(chunks, c)
		}
	}
	return chunks
}

// withNumericAuthors is withAuthors for the numeric style, where the author
// block is followed by a comma rather than a period.
func withNumericAuthors(text string) (types.Record, string, bool) {
	segment, rest := splitAuthors(text)
	if segment == "" {
		return types.Record{}, rest, false
	}
	return types.Record{Authors: authors.Normalize(segment)}, rest, true
}

func matchNumericArticle(text string) (types.Record, bool) {
	r, rest, ok := withNumericAuthors(text)
	if !ok {
		return r, false
	}
	g, ok := submatches(numericArticleRe, rest)
	if !ok {
		return r, false
	}
	tail := stripLocators(g["tail"])
	r.Title = cleanTitle(g["title"])
	r.Journal = cleanField(g["journal"])
	r.Volume = FindVolume(tail)
	r.Issue = FindIssue(tail)
	r.Pages = FindPages(tail)
	r.Year = findLastYear(tail)
	r.SourceType = types.SourceArticle
	return r, true
}

func matchNumericConference(text string) (types.Record, bool) {
	r, rest, ok := withNumericAuthors(text)
	if !ok {
		return r, false
	}
	g, ok := submatches(numericConferenceRe, rest)
	if !ok {
		return r, false
	}
	tail := stripLocators(g["tail"])
	r.Title = cleanTitle(g["title"])
	r.Journal = cleanField(g["venue"])
	r.Pages = FindPages(tail)
	r.Year = findLastYear(tail)
	r.SourceType = types.SourceConference
	return r, true
}

func matchNumericBook(text string) (types.Record, bool) {
	r, rest, ok := withNumericAuthors(text)
	if !ok {
		return r, false
	}
	g, ok := submatches(numericBookRe, rest)
	if !ok {
		return r, false
	}
	r.Title = cleanTitle(g["title"])
	r.City = cleanField(g["city"])
	r.SetExtra(types.ExtraCountry, cleanField(g["country"]))
	r.Publisher = cleanField(g["publisher"])
	r.Year = g["year"]
	r.SourceType = types.SourceBook
	return r, true
}
