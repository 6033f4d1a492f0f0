// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package parse

import (
	"regexp"
	"strings"

	"github.com/pdiddy/citeconv/internal/authors"
	"github.com/pdiddy/citeconv/pkg/types"
)

var (
	// journalLeadRe matches the journal name at the start of the part after
	// "//": everything up to the first period or dash separator.
	journalLeadRe = regexp.MustCompile(`^([^.—–]+)`)

	// looseInitialsRe matches an initial anywhere in a segment, used to guess
	// whether a first sentence that failed the author block is still a list
	// of names.
	looseInitialsRe = regexp.MustCompile(`(?:^|[\s,])\p{Lu}\.`)

	// parentheticalYearRe matches "(2020)" after an author list.
	parentheticalYearRe = regexp.MustCompile(`\s*\(\d{4}[a-z]?\)`)
)

// parseGeneral is the fallback used when no structural matcher fits. It
// splits at the journal separator when there is one, otherwise it reads the
// first sentence as the authors or the title. Fields that neither step finds
// are left to the standalone recognizers.
func parseGeneral(text string) types.Record {
	if loc := journalSepRe.FindStringIndex(text); loc != nil {
		first, second := text[:loc[1]-2], text[loc[1]:]
		r, rest := withAuthors(first)
		r.Title = cleanTitle(stripResponsibility(rest))
		if m := journalLeadRe.FindStringSubmatch(strings.TrimSpace(second)); m != nil {
			r.Journal = cleanField(m[1])
		}
		if r.Journal != "" {
			r.SourceType = venueType(r.Journal, types.SourceArticle)
		}
		sweepTail(&r, second)
		return r
	}

	r, rest := withAuthors(text)
	parts := splitSentences(rest)
	if len(r.Authors) == 0 && len(parts) >= 2 && strings.Contains(parts[0], ",") && looseInitialsRe.MatchString(parts[0]) {
		r.Authors = authors.Normalize(parentheticalYearRe.ReplaceAllString(parts[0], ""))
		parts = parts[1:]
	}
	// A title needs a sentence boundary. Text that is one run-on sentence
	// only contributes what the recognizers find in it.
	if len(parts) >= 2 || (len(r.Authors) > 0 && len(parts) == 1) {
		r.Title = cleanTitle(stripResponsibility(parts[0]))
	}
	return r
}
