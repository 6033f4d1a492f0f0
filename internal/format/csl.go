// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package format

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"

	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/citeconv/internal/authors"
	"github.com/pdiddy/citeconv/pkg/types"
)

// CSLItem represents a bibliographic entry in CSL (Citation Style Language)
// format. The field names and structure follow the CSL-JSON/CSL-YAML schema
// so that output is consumable by Pandoc and reference managers.
type CSLItem struct {
	ID             string    `json:"id" yaml:"id"`
	Type           string    `json:"type" yaml:"type"`
	Title          string    `json:"title,omitempty" yaml:"title,omitempty"`
	Author         []CSLName `json:"author,omitempty" yaml:"author,omitempty"`
	ContainerTitle string    `json:"container-title,omitempty" yaml:"container-title,omitempty"`
	Publisher      string    `json:"publisher,omitempty" yaml:"publisher,omitempty"`
	PublisherPlace string    `json:"publisher-place,omitempty" yaml:"publisher-place,omitempty"`
	Edition        string    `json:"edition,omitempty" yaml:"edition,omitempty"`
	Genre          string    `json:"genre,omitempty" yaml:"genre,omitempty"`
	Volume         string    `json:"volume,omitempty" yaml:"volume,omitempty"`
	Issue          string    `json:"issue,omitempty" yaml:"issue,omitempty"`
	Page           string    `json:"page,omitempty" yaml:"page,omitempty"`
	Issued         *CSLDate  `json:"issued,omitempty" yaml:"issued,omitempty"`
	DOI            string    `json:"DOI,omitempty" yaml:"DOI,omitempty"`
	URL            string    `json:"URL,omitempty" yaml:"URL,omitempty"`
	Language       string    `json:"language,omitempty" yaml:"language,omitempty"`
}

// CSLName represents a person's name in CSL format.
type CSLName struct {
	Family  string `json:"family,omitempty" yaml:"family,omitempty"`
	Given   string `json:"given,omitempty" yaml:"given,omitempty"`
	Literal string `json:"literal,omitempty" yaml:"literal,omitempty"`
}

// CSLDate represents a date in CSL format using date-parts.
type CSLDate struct {
	DateParts [][]int `json:"date-parts" yaml:"date-parts"`
}

// cslTypes maps source types to CSL item types.
var cslTypes = map[types.SourceType]string{
	types.SourceBook:       "book",
	types.SourceArticle:    "article-journal",
	types.SourceConference: "paper-conference",
	types.SourceThesis:     "thesis",
	types.SourceWeb:        "webpage",
	types.SourceOther:      "document",
}

// FormatCSL writes records as a CSL-YAML list to w.
func FormatCSL(records []types.Record, w io.Writer) error {
	enc := yaml.NewEncoder(w)
	defer enc.Close()
	if err := enc.Encode(ToCSL(records)); err != nil {
		return fmt.Errorf("encoding CSL-YAML: %w", err)
	}
	return nil
}

// FormatCSLJSON writes records as an indented CSL-JSON array to w.
func FormatCSLJSON(records []types.Record, w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	if err := enc.Encode(ToCSL(records)); err != nil {
		return fmt.Errorf("encoding CSL-JSON: %w", err)
	}
	return nil
}

// ToCSL converts records to CSL items with ids ref1, ref2, ...
func ToCSL(records []types.Record) []CSLItem {
	items := make([]CSLItem, len(records))
	for i, r := range records {
		items[i] = toCSLItem(r, "ref"+strconv.Itoa(i+1))
	}
	return items
}

// toCSLItem converts a Record to a CSLItem.
func toCSLItem(r types.Record, id string) CSLItem {
	typ, ok := cslTypes[r.SourceType]
	if !ok {
		typ = "document"
	}
	title := r.Title
	if r.Subtitle != "" {
		title += ": " + r.Subtitle
	}
	item := CSLItem{
		ID:             id,
		Type:           typ,
		Title:          title,
		ContainerTitle: r.Journal,
		Publisher:      r.Publisher,
		PublisherPlace: r.City,
		Edition:        r.Edition,
		Genre:          r.Extra[types.ExtraDegree],
		Volume:         r.Volume,
		Issue:          r.Issue,
		Page:           r.Pages,
		DOI:            r.DOI,
		URL:            r.URL,
		Language:       string(r.Language),
	}

	for _, a := range r.Authors {
		item.Author = append(item.Author, parseAuthorName(a))
	}

	if year, err := strconv.Atoi(r.Year); err == nil {
		item.Issued = &CSLDate{DateParts: [][]int{{year}}}
	}

	return item
}

// parseAuthorName splits a name into CSL family/given parts. Surname-first
// names split on the first space, initials-first names on the last.
// Single-token names use the literal field.
func parseAuthorName(name string) CSLName {
	name = strings.TrimSpace(name)
	if name == "" {
		return CSLName{}
	}
	if authors.IsInitialsFirst(name) {
		idx := strings.LastIndex(name, " ")
		if idx < 0 {
			return CSLName{Literal: name}
		}
		return CSLName{Given: name[:idx], Family: name[idx+1:]}
	}
	family, given, ok := strings.Cut(name, " ")
	if !ok {
		return CSLName{Literal: name}
	}
	return CSLName{Family: family, Given: strings.TrimSpace(given)}
}
