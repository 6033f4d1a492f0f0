// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package parse

import (
	"regexp"
	"strings"
)

// Author block building blocks. A name is either "Surname I.I." or
// "I.I. Surname"; names are joined by commas, "и", "and", or "&" and the
// list may end with "и др." or "et al.".
const (
	initialPattern  = `\p{Lu}\.(?:-\p{Lu}\.)?`
	initialsPattern = initialPattern + `(?:\s?` + initialPattern + `){0,2}`
	surnamePattern  = `\p{Lu}[\p{L}'’]+(?:-[\p{L}'’]+)*`
	namePattern     = `(?:` + surnamePattern + `\s+` + initialsPattern + `|` + initialsPattern + `\s*` + surnamePattern + `)`
	nameSepPattern  = `\s*(?:,|&|\s+и\s+|\s+and\s+)\s*`
	etAlPattern     = `(?:,?\s*(?:и\s+др\.|et\s+al\.))?`
)

var (
	authorBlockRe = regexp.MustCompile(`^\s*(` + namePattern + `(?:` + nameSepPattern + namePattern + `)*` + etAlPattern + `)`)

	// referenceNumberRe matches a leading "[12]" reference number.
	referenceNumberRe = regexp.MustCompile(`^\s*\[\d+\]\s*`)

	// responsibilityRe matches a trailing statement of responsibility
	// ("/ А.В. Иванов") left on a title.
	responsibilityRe = regexp.MustCompile(`\s*/\s*[^/]*$`)

	// sentenceInitialRe matches single-letter initials so sentence splitting
	// does not break names apart.
	sentenceInitialRe = regexp.MustCompile(`(^|[^\p{L}])(\p{Lu})\.`)
)

// splitAuthors separates a leading author block from the rest of the text.
// When no author block is found the whole text is returned as rest.
func splitAuthors(text string) (segment, rest string) {
	loc := authorBlockRe.FindStringSubmatchIndex(text)
	if loc == nil {
		return "", strings.TrimSpace(text)
	}
	segment = strings.TrimSpace(text[loc[2]:loc[3]])
	rest = strings.TrimLeft(text[loc[1]:], " .,:;")
	return segment, strings.TrimSpace(rest)
}

// stripResponsibility removes a trailing "/ responsibility" statement.
func stripResponsibility(s string) string {
	return responsibilityRe.ReplaceAllString(s, "")
}

// splitSentences splits text at period boundaries, but avoids splitting on
// common abbreviations (et al., e.g., i.e., и др.) and single-letter
// initials. Only ". " ends a sentence; a terminal period does not produce an
// extra segment.
func splitSentences(text string) []string {
	safe := strings.ReplaceAll(text, "et al.", "et al\x00")
	safe = strings.ReplaceAll(safe, "e.g.", "e\x00g\x00")
	safe = strings.ReplaceAll(safe, "i.e.", "i\x00e\x00")
	safe = strings.ReplaceAll(safe, "и др.", "и др\x00")
	// Adjacent initials share a boundary character, so repeat until stable.
	for {
		next := sentenceInitialRe.ReplaceAllString(safe, "${1}${2}\x00")
		if next == safe {
			break
		}
		safe = next
	}

	var result []string
	for _, p := range strings.Split(safe, ". ") {
		p = strings.ReplaceAll(p, "\x00", ".")
		p = strings.TrimRight(p, ".")
		p = strings.TrimSpace(p)
		if p != "" {
			result = append(result, p)
		}
	}
	return result
}
