// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package parse

import (
	"regexp"
	"strings"

	"github.com/pdiddy/citeconv/internal/authors"
	"github.com/pdiddy/citeconv/pkg/types"
)

// National style patterns. Each one is applied to the text that follows the
// author block.
var (
	// nationalBookRe matches
	// "Title[ : Subtitle][ / Resp]. [— ][N-е изд. — ]City: Publisher, Year[. — N с.]".
	nationalBookRe = regexp.MustCompile(`^(?P<title>[^/]+?)(?:\s*:\s+(?P<subtitle>[^/]+?))?(?:\s*/\s*(?P<resp>.+?))?\.\s*(?:[–—-]\s*)?` +
		`(?:(?P<edition>\d+)-е\s+изд\.(?:,?\s*[^.—:]*\.)?\s*(?:[–—-]\s*)?)?` +
		`(?P<city>\p{L}[\p{L}\s-]*?\.?)\s*:\s*(?P<publisher>[^,]+?),\s*(?P<year>\d{4})(?P<tail>.*)$`)

	// nationalArticleRe matches "Title[ / Resp]. // Rest". The "//" of a URL
	// scheme is not a separator.
	nationalArticleRe = regexp.MustCompile(`^(?P<title>[^/]*?[^/:])(?:\s*/\s*(?P<resp>[^/]*?[^/:]))?\s*\.?\s*//\s*(?P<rest>.+)$`)

	// journalRe splits the part after "//" into the journal title and what
	// follows. The journal ends at the first year or volume, issue, or page
	// marker.
	journalRe = regexp.MustCompile(`^(?P<journal>.+?)[.,]?\s*(?:[–—-]\s*)?(?:(?P<year>\d{4})(?:\s*г\.)?(?:[.,\s]|$)|(?:[ТтT]\.|(?i:vol)\.|№|[СC]\.)\s*\d|$)`)

	// collectionRe matches "Collection[ / Editors]. [— ]City: Publisher, Year...".
	collectionRe = regexp.MustCompile(`^(?P<collection>.+?)(?:\s*/\s*(?P<editors>.+?))?\.\s*(?:[–—-]\s*)?` +
		`(?P<city>\p{L}[\p{L}\s-]*?\.?)\s*:\s*(?P<publisher>[^,]+?),\s*(?P<year>\d{4})(?P<tail>.*)$`)

	// electronicResourceRe matches the electronic resource marker.
	electronicResourceRe = regexp.MustCompile(`\s*\[(?i:Электронный\s+ресурс)\]`)

	// nationalThesisRe matches
	// "Title : [автореф.] дис. ... Degree[ / Resp]. [City, ]Year[. — N с.]".
	nationalThesisRe = regexp.MustCompile(`^(?P<title>[^/:]+?)\s*:\s*(?P<abstract>автореф\.\s*)?дис\.\s*(?:(?:\.\.\.|…)\s*(?P<degree>[^/]+?))?` +
		`\s*(?:/\s*(?P<resp>.+?))?\.?\s*(?:[–—-]\s*)?(?:(?P<city>\p{L}[\p{L}\s-]*?\.?),\s*)?(?P<year>\d{4})(?P<tail>.*)$`)

	// conferenceVenueRe matches a collection title that names a conference.
	conferenceVenueRe = regexp.MustCompile(`(?i)конф|conference|proc\.|proceedings|симпоз|symposium|семинар|workshop|конгресс|congress|форум|forum`)

	// bookRejectRe matches markers that belong to the other national forms.
	bookRejectRe = regexp.MustCompile(`(?:^|[^:/])//|(?i:\[Электронный\s+ресурс\])|автореф|\sдис\.`)

	// journalSepRe matches the "//" that introduces a journal or collection,
	// but not the one of a URL scheme.
	journalSepRe = regexp.MustCompile(`(?:^|[^:/])//`)
)

// nationalMatchers returns the national-style matchers in priority order.
func nationalMatchers() []Matcher {
	return []Matcher{
		{Name: "national.book", Match: matchNationalBook},
		{Name: "national.article", Match: matchNationalArticle},
		{Name: "national.collection", Match: matchNationalCollection},
		{Name: "national.web", Match: matchNationalWeb},
		{Name: "national.thesis", Match: matchNationalThesis},
	}
}

// submatches maps the named groups of re to their values in s.
func submatches(re *regexp.Regexp, s string) (map[string]string, bool) {
	m := re.FindStringSubmatch(s)
	if m == nil {
		return nil, false
	}
	groups := make(map[string]string, len(m))
	for i, name := range re.SubexpNames() {
		if name != "" {
			groups[name] = m[i]
		}
	}
	return groups, true
}

// withAuthors starts a record from the author block of text and returns it
// with the remaining text.
func withAuthors(text string) (types.Record, string) {
	segment, rest := splitAuthors(text)
	return types.Record{Authors: authors.Normalize(segment)}, rest
}

// venueType returns conference for a venue that names a conference and
// fallback otherwise.
func venueType(venue string, fallback types.SourceType) types.SourceType {
	if conferenceVenueRe.MatchString(venue) {
		return types.SourceConference
	}
	return fallback
}

// sweepTail fills volume, issue, pages, and year from the text that follows
// the main groups of a pattern.
func sweepTail(r *types.Record, tail string) {
	bare := stripLocators(tail)
	if r.Volume == "" {
		r.Volume = FindVolume(bare)
	}
	if r.Issue == "" {
		r.Issue = FindIssue(bare)
	}
	if r.Pages == "" {
		r.Pages = FindPages(bare)
	}
	if r.Pages == "" {
		r.Pages = FindPageCount(bare)
	}
	if r.Year == "" {
		r.Year = FindYear(bare)
	}
}

func matchNationalBook(text string) (types.Record, bool) {
	r, rest := withAuthors(text)
	if bookRejectRe.MatchString(rest) {
		return r, false
	}
	g, ok := submatches(nationalBookRe, rest)
	if !ok {
		return r, false
	}
	r.Title = cleanTitle(g["title"])
	r.Subtitle = cleanField(g["subtitle"])
	r.Edition = g["edition"]
	r.City = cleanField(g["city"])
	r.Publisher = cleanField(g["publisher"])
	r.Year = g["year"]
	r.SourceType = types.SourceBook
	sweepTail(&r, g["tail"])
	return r, true
}

func matchNationalArticle(text string) (types.Record, bool) {
	r, rest := withAuthors(text)
	g, ok := submatches(nationalArticleRe, rest)
	if !ok {
		return r, false
	}
	after := strings.TrimSpace(g["rest"])
	if collectionRe.MatchString(after) {
		return r, false
	}
	j, ok := submatches(journalRe, after)
	if !ok {
		return r, false
	}
	r.Title = cleanTitle(g["title"])
	r.Journal = cleanField(j["journal"])
	r.Year = j["year"]
	sweepTail(&r, after[len(j["journal"]):])
	r.SourceType = venueType(r.Journal, types.SourceArticle)
	return r, true
}

func matchNationalCollection(text string) (types.Record, bool) {
	r, rest := withAuthors(text)
	g, ok := submatches(nationalArticleRe, rest)
	if !ok {
		return r, false
	}
	c, ok := submatches(collectionRe, strings.TrimSpace(g["rest"]))
	if !ok {
		return r, false
	}
	r.Title = cleanTitle(g["title"])
	r.Journal = cleanField(c["collection"])
	r.City = cleanField(c["city"])
	r.Publisher = cleanField(c["publisher"])
	r.Year = c["year"]
	r.SetExtra(types.ExtraEditors, cleanField(c["editors"]))
	sweepTail(&r, c["tail"])
	r.SourceType = venueType(r.Journal, types.SourceArticle)
	return r, true
}

func matchNationalWeb(text string) (types.Record, bool) {
	r, rest := withAuthors(text)
	marker := electronicResourceRe.FindStringIndex(rest)
	url := FindURL(rest)
	if marker == nil && url == "" {
		return r, false
	}

	var title, body string
	if marker != nil {
		title, body = rest[:marker[0]], rest[marker[1]:]
	} else {
		parts := splitSentences(rest[:strings.Index(rest, url)])
		if len(parts) == 0 {
			return r, false
		}
		title = parts[0]
		body = strings.Join(parts[1:], ". ")
	}
	r.Title = cleanTitle(stripResponsibility(title))
	r.URL = url
	r.AccessDate = FindAccessDate(rest)
	r.Year = FindYear(stripLocators(body))
	r.SourceType = types.SourceWeb
	return r, true
}

func matchNationalThesis(text string) (types.Record, bool) {
	r, rest := withAuthors(text)
	g, ok := submatches(nationalThesisRe, rest)
	if !ok {
		return r, false
	}
	r.Title = cleanTitle(g["title"])
	r.City = cleanField(g["city"])
	r.Year = g["year"]
	r.SetExtra(types.ExtraDegree, cleanField(g["degree"]))
	if g["abstract"] != "" {
		r.SetExtra(types.ExtraAbstract, "true")
	}
	sweepTail(&r, g["tail"])
	r.SourceType = types.SourceThesis
	return r, true
}
