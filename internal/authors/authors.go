// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package authors splits raw author-list segments into individual names and
// reorders names between the two notations used by the supported styles:
// surname first ("Иванов А.В.") and initials first ("А.В. Иванов").
//
// Parsing never reorders a name; the source orientation is kept and only the
// formatters call ToNational or ToNumeric.
package authors

import (
	"regexp"
	"strings"
)

// conjunctionRe matches the natural-language conjunctions that join the last
// two authors of a list.
var conjunctionRe = regexp.MustCompile(`\s+(?:and|и)\s+|\s*&\s*`)

// etAlRe matches "и др." so its conjunction is not treated as a separator.
var etAlRe = regexp.MustCompile(`\s+и\s+др\.`)

const etAlMark = "\x00"

// Normalize splits an author segment into names in source order. Conjunctions
// become separators, tokens are trimmed, and empty tokens are dropped. A token
// that matches neither notation is kept unchanged.
func Normalize(segment string) []string {
	segment = strings.TrimSpace(segment)
	if segment == "" {
		return nil
	}
	segment = etAlRe.ReplaceAllString(segment, ","+etAlMark)
	segment = conjunctionRe.ReplaceAllString(segment, ", ")
	segment = strings.ReplaceAll(segment, etAlMark, "и др.")

	var names []string
	for _, tok := range strings.Split(segment, ",") {
		tok = strings.Join(strings.Fields(tok), " ")
		if tok != "" {
			names = append(names, tok)
		}
	}
	return names
}

// IsInitialsFirst reports whether name starts with initials, detected by its
// first whitespace-separated token ending in a period.
//
// Compound surnames and names with particles can be misclassified; a
// surname that is itself abbreviated ("St. John") reads as initials first.
func IsInitialsFirst(name string) bool {
	fields := strings.Fields(name)
	if len(fields) == 0 {
		return false
	}
	return strings.HasSuffix(fields[0], ".")
}

// ToNational returns name in "Surname I.I." order. An initials-first name has
// its last token moved to the front; anything else is returned unchanged.
func ToNational(name string) string {
	name = strings.TrimSpace(name)
	if !IsInitialsFirst(name) {
		return name
	}
	fields := strings.Fields(name)
	if len(fields) < 2 || strings.HasSuffix(fields[len(fields)-1], ".") {
		return name
	}
	surname := fields[len(fields)-1]
	initials := strings.Join(fields[:len(fields)-1], " ")
	return surname + " " + initials
}

// ToNumeric returns name in "I.I. Surname" order. A surname-first name has its
// first token moved to the end; anything else is returned unchanged.
func ToNumeric(name string) string {
	name = strings.TrimSpace(name)
	if IsInitialsFirst(name) {
		return name
	}
	fields := strings.Fields(name)
	if len(fields) < 2 || !hasInitials(fields[1:]) {
		return name
	}
	surname := fields[0]
	initials := strings.Join(fields[1:], " ")
	return initials + " " + surname
}

// hasInitials reports whether the trailing tokens of a surname-first name
// look like initials, so "et al." markers and organisation names are left
// alone.
func hasInitials(tokens []string) bool {
	for _, t := range tokens {
		if !strings.HasSuffix(t, ".") {
			return false
		}
	}
	return true
}

// Join renders names as a comma-separated list.
func Join(names []string) string {
	return strings.Join(names, ", ")
}
