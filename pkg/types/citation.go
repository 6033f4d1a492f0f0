// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package types defines shared data structures for the citeconv pipeline:
// the citation Record produced by parsing and consumed by formatting, the
// style tokens that select a parser or formatter, and the engine configuration.
package types

import (
	"sort"
	"strconv"
	"strings"
)

// SourceType classifies the kind of cited work.
type SourceType string

const (
	SourceBook       SourceType = "book"
	SourceArticle    SourceType = "article"
	SourceConference SourceType = "conference"
	SourceThesis     SourceType = "thesis"
	SourceWeb        SourceType = "web"
	SourceOther      SourceType = "other"
)

// Valid reports whether t is one of the defined source types.
func (t SourceType) Valid() bool {
	switch t {
	case SourceBook, SourceArticle, SourceConference, SourceThesis, SourceWeb, SourceOther:
		return true
	}
	return false
}

// Language is the language tag of a citation, decided from its title script.
type Language string

const (
	LangRussian Language = "ru"
	LangEnglish Language = "en"
)

// Record holds the structured fields of one bibliographic source.
// Every field except SourceType and Language may be empty. Authors keep the
// order in which they appear in the source text.
type Record struct {
	// RawText is the citation text the record was parsed from. Once the
	// structured fields are edited directly RawText may be stale.
	RawText string `json:"raw_text,omitempty" yaml:"raw_text,omitempty"`

	Authors  []string `json:"authors,omitempty" yaml:"authors,omitempty"`
	Title    string   `json:"title,omitempty" yaml:"title,omitempty"`
	Subtitle string   `json:"subtitle,omitempty" yaml:"subtitle,omitempty"`

	// Year is kept as text so garbled years survive a round trip.
	Year string `json:"year,omitempty" yaml:"year,omitempty"`

	City      string `json:"city,omitempty" yaml:"city,omitempty"`
	Edition   string `json:"edition,omitempty" yaml:"edition,omitempty"`
	Publisher string `json:"publisher,omitempty" yaml:"publisher,omitempty"`

	// Journal is the journal, collection, or proceedings title.
	Journal string `json:"journal,omitempty" yaml:"journal,omitempty"`
	Volume  string `json:"volume,omitempty" yaml:"volume,omitempty"`
	Issue   string `json:"issue,omitempty" yaml:"issue,omitempty"`

	// Pages is a single page, a page count, or a range joined by an en-dash.
	Pages string `json:"pages,omitempty" yaml:"pages,omitempty"`

	DOI        string `json:"doi,omitempty" yaml:"doi,omitempty"`
	URL        string `json:"url,omitempty" yaml:"url,omitempty"`
	AccessDate string `json:"access_date,omitempty" yaml:"access_date,omitempty"`

	Language   Language   `json:"language" yaml:"language"`
	SourceType SourceType `json:"type" yaml:"type"`

	// TopTier marks a journal from the national top-tier list; CitationIndex
	// marks one from the national citation-index list. Both may be set.
	TopTier       bool `json:"top_tier" yaml:"top_tier"`
	CitationIndex bool `json:"citation_index" yaml:"citation_index"`

	// Extra carries metadata with no dedicated field (e.g. "degree", "country").
	Extra map[string]string `json:"extra,omitempty" yaml:"extra,omitempty"`
}

// NewRecord returns an empty record for raw citation text with the default
// language. SourceType is left empty so the parsing pipeline can tell whether
// a structural matcher decided it.
func NewRecord(raw string) Record {
	return Record{RawText: raw, Language: LangRussian}
}

// Clone returns a deep copy of r.
func (r Record) Clone() Record {
	c := r
	if r.Authors != nil {
		c.Authors = append([]string(nil), r.Authors...)
	}
	if r.Extra != nil {
		c.Extra = make(map[string]string, len(r.Extra))
		for k, v := range r.Extra {
			c.Extra[k] = v
		}
	}
	return c
}

// SetExtra stores an additional metadata value, allocating the map on demand.
func (r *Record) SetExtra(key, value string) {
	if value == "" {
		return
	}
	if r.Extra == nil {
		r.Extra = make(map[string]string)
	}
	r.Extra[key] = value
}

// String renders the record. The raw text wins when present; otherwise the
// fields are joined in a fixed order and empty fields are skipped together
// with their separators.
func (r Record) String() string {
	if strings.TrimSpace(r.RawText) != "" {
		return strings.TrimSpace(r.RawText)
	}

	var parts []string
	add := func(s string) {
		s = strings.TrimSpace(s)
		if s != "" {
			parts = append(parts, s)
		}
	}

	add(strings.Join(r.Authors, ", "))
	add(r.Title)
	add(r.Journal)
	add(r.Year)
	add(r.Publisher)
	switch {
	case r.Volume != "" && r.Issue != "":
		add("Т. " + r.Volume + ", № " + r.Issue)
	case r.Volume != "":
		add("Т. " + r.Volume)
	case r.Issue != "":
		add("№ " + r.Issue)
	}
	if r.Pages != "" {
		add("С. " + r.Pages)
	}
	if r.DOI != "" {
		add("DOI: " + r.DOI)
	}
	if r.URL != "" {
		add("URL: " + r.URL)
	}

	return joinSentences(parts)
}

// joinSentences joins parts with ". " without doubling a period that a part
// already ends with (e.g. trailing initials).
func joinSentences(parts []string) string {
	var b strings.Builder
	for i, p := range parts {
		if i > 0 {
			b.WriteString(" ")
		}
		b.WriteString(p)
		if !strings.HasSuffix(p, ".") {
			b.WriteString(".")
		}
	}
	return b.String()
}

// IsComplete reports whether the record carries the minimum fields for its
// source type.
func (r Record) IsComplete() bool {
	has := func(s string) bool { return strings.TrimSpace(s) != "" }
	switch r.SourceType {
	case SourceBook:
		return len(r.Authors) > 0 && has(r.Title) && has(r.Year) && has(r.Publisher)
	case SourceArticle:
		return len(r.Authors) > 0 && has(r.Title) && has(r.Year) && has(r.Journal)
	case SourceWeb:
		return has(r.Title) && has(r.URL)
	default:
		return has(r.Title) && has(r.Year)
	}
}

// Field keys used by Fields and RecordFromFields.
const (
	FieldRawText       = "raw_text"
	FieldAuthors       = "authors"
	FieldTitle         = "title"
	FieldSubtitle      = "subtitle"
	FieldYear          = "year"
	FieldCity          = "city"
	FieldEdition       = "edition"
	FieldPublisher     = "publisher"
	FieldJournal       = "journal"
	FieldVolume        = "volume"
	FieldIssue         = "issue"
	FieldPages         = "pages"
	FieldDOI           = "doi"
	FieldURL           = "url"
	FieldAccessDate    = "access_date"
	FieldLanguage      = "language"
	FieldType          = "type"
	FieldTopTier       = "top_tier"
	FieldCitationIndex = "citation_index"
)

// Keys of Extra entries written by the parsers and read by the formatters.
const (
	ExtraDegree   = "degree"
	ExtraAbstract = "abstract"
	ExtraEditors  = "editors"
	ExtraCountry  = "country"
)

// authorSeparator joins authors in a flat field map. A semicolon is used
// because author strings themselves may contain commas.
const authorSeparator = "; "

// Fields flattens the record into a string map. Extra entries are merged in
// under their own keys; dedicated fields take precedence on a clash.
func (r Record) Fields() map[string]string {
	m := make(map[string]string, 20+len(r.Extra))
	for k, v := range r.Extra {
		m[k] = v
	}
	set := func(k, v string) {
		if v != "" {
			m[k] = v
		}
	}
	set(FieldRawText, r.RawText)
	set(FieldAuthors, strings.Join(r.Authors, authorSeparator))
	set(FieldTitle, r.Title)
	set(FieldSubtitle, r.Subtitle)
	set(FieldYear, r.Year)
	set(FieldCity, r.City)
	set(FieldEdition, r.Edition)
	set(FieldPublisher, r.Publisher)
	set(FieldJournal, r.Journal)
	set(FieldVolume, r.Volume)
	set(FieldIssue, r.Issue)
	set(FieldPages, r.Pages)
	set(FieldDOI, r.DOI)
	set(FieldURL, r.URL)
	set(FieldAccessDate, r.AccessDate)
	set(FieldLanguage, string(r.Language))
	set(FieldType, string(r.SourceType))
	m[FieldTopTier] = strconv.FormatBool(r.TopTier)
	m[FieldCitationIndex] = strconv.FormatBool(r.CitationIndex)
	return m
}

// RecordFromFields builds a record from a pre-structured field map. Unknown
// keys are kept in Extra. An unknown or empty type falls back to book and an
// unknown language to ru, so the result always satisfies the record invariants.
func RecordFromFields(fields map[string]string) Record {
	r := NewRecord("")
	keys := make([]string, 0, len(fields))
	for k := range fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	for _, k := range keys {
		v := strings.TrimSpace(fields[k])
		switch k {
		case FieldRawText:
			r.RawText = v
		case FieldAuthors:
			for _, a := range strings.Split(v, ";") {
				if a = strings.TrimSpace(a); a != "" {
					r.Authors = append(r.Authors, a)
				}
			}
		case FieldTitle:
			r.Title = v
		case FieldSubtitle:
			r.Subtitle = v
		case FieldYear:
			r.Year = v
		case FieldCity:
			r.City = v
		case FieldEdition:
			r.Edition = v
		case FieldPublisher:
			r.Publisher = v
		case FieldJournal:
			r.Journal = v
		case FieldVolume:
			r.Volume = v
		case FieldIssue:
			r.Issue = v
		case FieldPages:
			r.Pages = v
		case FieldDOI:
			r.DOI = v
		case FieldURL:
			r.URL = v
		case FieldAccessDate:
			r.AccessDate = v
		case FieldLanguage:
			if Language(v) == LangEnglish {
				r.Language = LangEnglish
			}
		case FieldType:
			r.SourceType = SourceType(strings.ToLower(v))
		case FieldTopTier:
			r.TopTier, _ = strconv.ParseBool(v)
		case FieldCitationIndex:
			r.CitationIndex, _ = strconv.ParseBool(v)
		default:
			r.SetExtra(k, v)
		}
	}
	if !r.SourceType.Valid() {
		r.SourceType = SourceBook
	}
	return r
}
