// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package convert re-renders citations from one style into another by
// parsing them into records and formatting the records again. Batches are
// converted concurrently with a bounded number of workers; the output order
// always matches the input order and one failing citation never aborts the
// rest of the batch.
package convert

import (
	"fmt"
	"io"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/pdiddy/citeconv/internal/format"
	"github.com/pdiddy/citeconv/internal/parse"
	"github.com/pdiddy/citeconv/pkg/types"
)

// BatchResult holds the outcome of a batch conversion run.
type BatchResult struct {
	Converted int `yaml:"converted" json:"converted"`
	// Skipped counts empty or whitespace-only citations.
	Skipped int `yaml:"skipped" json:"skipped"`
	Failed  int `yaml:"failed" json:"failed"`
}

// Total returns the total number of citations processed.
func (r BatchResult) Total() int {
	return r.Converted + r.Skipped + r.Failed
}

// HasFailures reports whether any citation failed conversion.
func (r BatchResult) HasFailures() bool {
	return r.Failed > 0
}

type status int

const (
	statusConverted status = iota
	statusSkipped
	statusFailed
)

// Converter parses and formats citations with a fixed configuration.
// A Converter is safe for concurrent use.
type Converter struct {
	parser  *parse.Parser
	workers int
	w       io.Writer

	// render formats a parsed record; replaced in tests.
	render func(types.Record, types.Style) string
}

// New creates a Converter from cfg. Warnings and batch summaries are written
// to w; a nil w discards them.
func New(cfg types.EngineConfig, w io.Writer) *Converter {
	if w == nil {
		w = io.Discard
	}
	return &Converter{
		parser:  parse.New(cfg.Parser, w),
		workers: cfg.Batch.Workers,
		w:       w,
		render:  format.Format,
	}
}

// Parser returns the parser the converter uses.
func (c *Converter) Parser() *parse.Parser {
	return c.parser
}

// Convert parses text in style from and formats the record in style to.
func (c *Converter) Convert(text string, from, to types.Style) string {
	out, _ := c.convertOne(text, from, to)
	return out
}

// convertOne converts a single citation. A panic while formatting is
// recovered and the raw text takes the place of the output.
func (c *Converter) convertOne(text string, from, to types.Style) (out string, st status) {
	defer func() {
		if v := recover(); v != nil {
			fmt.Fprintf(c.w, "warning: converting %q: %v\n", text, v)
			out, st = text, statusFailed
		}
	}()

	out = c.render(c.parser.Parse(text, from), to)
	if strings.TrimSpace(text) == "" {
		return out, statusSkipped
	}
	return out, statusConverted
}

// BatchConvert converts every text from style from to style to. The result
// has one entry per input in input order. Empty inputs are skipped and yield
// whatever formatting the empty record produces; failed inputs yield their
// raw text. A summary is written to the converter's writer.
func (c *Converter) BatchConvert(texts []string, from, to types.Style) ([]string, BatchResult) {
	out := make([]string, len(texts))
	statuses := make([]status, len(texts))
	c.each(len(texts), func(i int) {
		out[i], statuses[i] = c.convertOne(texts[i], from, to)
	})

	var result BatchResult
	for _, st := range statuses {
		switch st {
		case statusConverted:
			result.Converted++
		case statusSkipped:
			result.Skipped++
		case statusFailed:
			result.Failed++
		}
	}
	fmt.Fprintf(c.w, "Batch summary: %d converted, %d skipped, %d failed (total: %d)\n",
		result.Converted, result.Skipped, result.Failed, result.Total())
	return out, result
}

// ParseAll parses every text in style, preserving input order.
func (c *Converter) ParseAll(texts []string, style types.Style) []parse.Result {
	out := make([]parse.Result, len(texts))
	c.each(len(texts), func(i int) {
		out[i] = c.parser.ParseResult(texts[i], style)
	})
	return out
}

// ConvertList parses texts and formats them as one bibliography list in
// style to, sorted by key. Numbered lists get the list markers of style to.
func (c *Converter) ConvertList(texts []string, from, to types.Style, key format.SortKey, numbered bool) []string {
	results := c.ParseAll(texts, from)
	records := make([]types.Record, len(results))
	for i, r := range results {
		records[i] = r.Record
	}
	entries := format.FormatList(records, to, key)
	if numbered {
		entries = format.Numbered(entries, to)
	}
	return entries
}

// each calls fn for every index in [0, n). Calls run on up to c.workers
// goroutines; zero or fewer workers run them sequentially.
func (c *Converter) each(n int, fn func(i int)) {
	if c.workers <= 0 || n <= 1 {
		for i := 0; i < n; i++ {
			fn(i)
		}
		return
	}

	var g errgroup.Group
	g.SetLimit(c.workers)
	for i := 0; i < n; i++ {
		g.Go(func() error {
			fn(i)
			return nil
		})
	}
	_ = g.Wait()
}

// defaultConverter serves the package-level functions.
var defaultConverter = New(types.DefaultEngineConfig(), nil)

// Convert converts text with the default configuration.
func Convert(text string, from, to types.Style) string {
	return defaultConverter.Convert(text, from, to)
}

// BatchConvert converts texts with the default configuration.
func BatchConvert(texts []string, from, to types.Style) []string {
	out, _ := defaultConverter.BatchConvert(texts, from, to)
	return out
}
