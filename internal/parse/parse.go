// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package parse turns free-form citation text into a structured Record.
// Each style has an ordered chain of structural matchers; the first one that
// fits decides the source type and the main fields. When none fits a general
// fallback splits the text heuristically. Standalone recognizers then fill
// any field still empty, and post-processing steps decide language, source
// type, and index status.
//
// Parsing never fails: on any input the result is a record that carries the
// raw text and the defaults.
package parse

import (
	"fmt"
	"io"
	"strings"

	"golang.org/x/text/unicode/norm"

	"github.com/pdiddy/citeconv/internal/detect"
	"github.com/pdiddy/citeconv/pkg/types"
)

// Matcher is one structural pattern of a style. Match returns the fields it
// extracted and whether the text fit the pattern.
type Matcher struct {
	Name  string
	Match func(text string) (types.Record, bool)
}

// fallbackMatcher names the general fallback in Result.Matcher.
const fallbackMatcher = "general"

// Result is a parsed record with a description of how it was obtained.
type Result struct {
	Record types.Record `json:"record" yaml:"record"`

	// Style is the style the text was parsed as, after auto-detection.
	Style types.Style `json:"style" yaml:"style"`

	// Matcher names the structural matcher that fit, or "general".
	Matcher string `json:"matcher" yaml:"matcher"`

	// Fallback is true when no structural matcher fit.
	Fallback bool `json:"fallback" yaml:"fallback"`

	// Recognized lists the key fields that ended up non-empty.
	Recognized []string `json:"recognized" yaml:"recognized"`
}

// keyFields are the fields Confidence is measured against.
var keyFields = []string{types.FieldAuthors, types.FieldTitle, types.FieldYear, "venue", types.FieldPages}

// Confidence returns the share of key fields that were recognized, in [0, 1].
func (r Result) Confidence() float64 {
	return float64(len(r.Recognized)) / float64(len(keyFields))
}

// Parser parses citations with a fixed configuration. A Parser is safe for
// concurrent use.
type Parser struct {
	cfg   types.ParserConfig
	steps []Step
	w     io.Writer
}

// New creates a Parser. Missing configuration values get their defaults.
// Warnings about recovered failures are written to w; a nil w discards them.
func New(cfg types.ParserConfig, w io.Writer) *Parser {
	cfg = cfg.WithDefaults()
	if w == nil {
		w = io.Discard
	}
	return &Parser{
		cfg: cfg,
		steps: []Step{
			DetectLanguage(),
			InferSourceType(cfg.DefaultSourceType),
			MarkIndexStatus(cfg.TopTierVenues, cfg.CitationIndexVenues),
		},
		w: w,
	}
}

// defaultParser serves the package-level Parse.
var defaultParser = New(types.DefaultParserConfig(), nil)

// Parse parses text with the default configuration.
func Parse(text string, style types.Style) types.Record {
	return defaultParser.Parse(text, style)
}

// Parse returns the record for text in the given style. StyleAuto (or any
// unknown style) detects the style first. Empty or whitespace-only text gives
// a record with only the defaults set.
func (p *Parser) Parse(text string, style types.Style) types.Record {
	return p.ParseResult(text, style).Record
}

// ParseResult is Parse with the details of how the record was obtained.
func (p *Parser) ParseResult(text string, style types.Style) (res Result) {
	resolved := detect.Resolve(norm.NFC.String(text), style)
	defer func() {
		if v := recover(); v != nil {
			fmt.Fprintf(p.w, "warning: parsing %q: %v\n", text, v)
			res = Result{Record: p.defaults(types.NewRecord(text)), Style: resolved, Matcher: fallbackMatcher, Fallback: true}
		}
	}()

	clean := prepare(text)
	res.Style = resolved
	if clean == "" {
		res.Record = p.defaults(types.NewRecord(text))
		res.Matcher = fallbackMatcher
		res.Fallback = true
		return res
	}

	var (
		fields types.Record
		found  bool
	)
	for _, m := range p.chain(res.Style) {
		if fields, found = m.Match(clean); found {
			res.Matcher = m.Name
			break
		}
	}
	if !found {
		fields = parseGeneral(clean)
		res.Matcher = fallbackMatcher
		res.Fallback = true
	}

	rec := types.NewRecord(text)
	rec.Language = p.cfg.DefaultLanguage
	merge(&rec, fields)
	sweep(&rec, clean)
	for _, step := range p.steps {
		rec = step(rec)
	}
	res.Record = rec
	res.Recognized = recognized(rec)
	return res
}

// chain returns the matchers for style.
func (p *Parser) chain(style types.Style) []Matcher {
	if style == types.StyleNumeric {
		return numericMatchers()
	}
	return nationalMatchers()
}

// defaults applies the post-processing steps to a record that carries only
// raw text, so the language and source type invariants hold.
func (p *Parser) defaults(r types.Record) types.Record {
	r.Language = p.cfg.DefaultLanguage
	for _, step := range p.steps {
		r = step(r)
	}
	return r
}

// prepare normalizes text to NFC, collapses whitespace, and drops a leading
// reference number.
func prepare(text string) string {
	text = norm.NFC.String(text)
	text = strings.Join(strings.Fields(text), " ")
	return strings.TrimSpace(referenceNumberRe.ReplaceAllString(text, ""))
}

// merge copies the fields a matcher extracted into dst.
func merge(dst *types.Record, src types.Record) {
	dst.Authors = src.Authors
	dst.Title = src.Title
	dst.Subtitle = src.Subtitle
	dst.Year = src.Year
	dst.City = src.City
	dst.Edition = src.Edition
	dst.Publisher = src.Publisher
	dst.Journal = src.Journal
	dst.Volume = src.Volume
	dst.Issue = src.Issue
	dst.Pages = NormalizePages(src.Pages)
	dst.DOI = src.DOI
	dst.URL = src.URL
	dst.AccessDate = src.AccessDate
	dst.SourceType = src.SourceType
	for k, v := range src.Extra {
		dst.SetExtra(k, v)
	}
}

// sweep runs the standalone recognizers over the whole text and fills every
// field that is still empty.
func sweep(r *types.Record, text string) {
	if r.URL == "" {
		r.URL = FindURL(text)
	}
	if r.DOI == "" {
		r.DOI = FindDOI(text)
	}
	if r.URL != "" && r.AccessDate == "" {
		r.AccessDate = FindAccessDate(text)
	}

	bare := stripLocators(text)
	if r.Year == "" {
		r.Year = FindYear(bare)
	}
	if r.Volume == "" {
		r.Volume = FindVolume(bare)
	}
	if r.Issue == "" {
		r.Issue = FindIssue(bare)
	}
	if r.Pages == "" {
		r.Pages = FindPages(bare)
	}
	if r.Publisher == "" && r.SourceType == "" {
		r.Publisher = FindPublisher(bare)
	}
}

// recognized lists the key fields of r that are non-empty.
func recognized(r types.Record) []string {
	var out []string
	if len(r.Authors) > 0 {
		out = append(out, types.FieldAuthors)
	}
	if r.Title != "" {
		out = append(out, types.FieldTitle)
	}
	if r.Year != "" {
		out = append(out, types.FieldYear)
	}
	if r.Journal != "" || r.Publisher != "" || r.URL != "" {
		out = append(out, "venue")
	}
	if r.Pages != "" {
		out = append(out, types.FieldPages)
	}
	return out
}
