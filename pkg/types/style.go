// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

import (
	"strings"

	"golang.org/x/text/cases"
)

// Style selects a citation style for parsing or formatting.
type Style string

const (
	// StyleAuto asks the parser to detect the style from the text.
	StyleAuto Style = "auto"

	// StyleNational is the Cyrillic national standard style (ГОСТ):
	// surname before initials, "//" before the journal, "С." page prefix.
	StyleNational Style = "national"

	// StyleNumeric is the numeric quote-delimited style (IEEE):
	// initials before surname, quoted titles, vol./no./pp. tokens.
	StyleNumeric Style = "numeric"
)

var styleAliases = map[string]Style{
	"auto":            StyleAuto,
	"автоопределение": StyleAuto,
	"national":        StyleNational,
	"gost":            StyleNational,
	"гост":            StyleNational,
	"numeric":         StyleNumeric,
	"ieee":            StyleNumeric,
}

// ParseStyle maps a caller-supplied style token to a Style. Matching is
// case-insensitive. Unknown tokens are treated as StyleAuto rather than
// rejected.
func ParseStyle(token string) Style {
	key := cases.Fold().String(strings.TrimSpace(token))
	if s, ok := styleAliases[key]; ok {
		return s
	}
	return StyleAuto
}
