// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package detect classifies the citation style of free-form text from
// structural cues. It is a heuristic: misdetections are expected and the
// parsers fall back softly when handed the wrong style.
package detect

import (
	"regexp"
	"strings"

	"github.com/pdiddy/citeconv/pkg/types"
)

var (
	// referenceMarkerRe matches a leading "[12]" reference number.
	referenceMarkerRe = regexp.MustCompile(`^\s*\[\d+\]`)

	// numericMarkerRe matches the literal marker token of the numeric style.
	numericMarkerRe = regexp.MustCompile(`(?i)\bIEEE\b`)

	// quoteRe matches any quotation mark that can delimit a title.
	quoteRe = regexp.MustCompile(`["“”«»]`)

	// abbreviationRe matches the vol./no./pp. tokens.
	abbreviationRe = regexp.MustCompile(`(?i)\b(?:vol|no|pp)\.`)

	// closingCommaQuoteRe matches a comma inside a closing quote, as in
	// `"Title," Journal`.
	closingCommaQuoteRe = regexp.MustCompile(`,["”»]`)

	// dashDigitsRe matches a sentence end followed by a dash-like separator
	// and a digit-bearing token, as in ". — 2020" or ". – С. 15".
	dashDigitsRe = regexp.MustCompile(`\.\s*[–—-]\s*\D*\d+`)

	// pageAbbrevRe matches the page abbreviation before or after digits:
	// "С. 15" or "300 с.".
	pageAbbrevRe = regexp.MustCompile(`[СC]\.\s*\d+|\d+\s*с\.`)
)

// Detect returns the style of text. The first matching rule wins:
//  1. a leading [N] marker, the IEEE marker, or a quoted title together with
//     vol./no./pp. means numeric;
//  2. a dash separator before digits or a page abbreviation means national;
//  3. a comma inside a closing quote means numeric;
//  4. anything else is national.
func Detect(text string) types.Style {
	switch {
	case isNumeric(text):
		return types.StyleNumeric
	case dashDigitsRe.MatchString(text) || pageAbbrevRe.MatchString(text):
		return types.StyleNational
	case closingCommaQuoteRe.MatchString(text):
		return types.StyleNumeric
	default:
		return types.StyleNational
	}
}

// isNumeric reports whether text carries one of the strong numeric cues.
func isNumeric(text string) bool {
	if referenceMarkerRe.MatchString(text) || numericMarkerRe.MatchString(text) {
		return true
	}
	return quoteRe.MatchString(text) && abbreviationRe.MatchString(text)
}

// Resolve returns style unchanged unless it is StyleAuto, in which case the
// style is detected from text.
func Resolve(text string, style types.Style) types.Style {
	if style == types.StyleNational || style == types.StyleNumeric {
		return style
	}
	return Detect(strings.TrimSpace(text))
}
