// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package venues loads the national venue reference lists from a directory
// of plain-text files. Each list is one file with one venue per line; blank
// lines and lines starting with '#' are ignored.
//
// Supported files: top-tier.txt, citation-index.txt.
package venues

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/pdiddy/citeconv/pkg/types"
)

const (
	// TopTierFile holds the national top-tier journal list.
	TopTierFile = "top-tier.txt"
	// CitationIndexFile holds the national citation-index journal list.
	CitationIndexFile = "citation-index.txt"
)

// Lists holds the venue lists read from disk. A nil list means the file was
// absent and the built-in list applies.
type Lists struct {
	TopTier       []string
	CitationIndex []string
}

// Apply overrides the venue lists of cfg with every list that was loaded.
func (l Lists) Apply(cfg types.ParserConfig) types.ParserConfig {
	if l.TopTier != nil {
		cfg.TopTierVenues = l.TopTier
	}
	if l.CitationIndex != nil {
		cfg.CitationIndexVenues = l.CitationIndex
	}
	return cfg
}

// Load reads the venue list files in dir. A missing directory or missing
// files are not errors; the corresponding lists stay nil. Unreadable files
// produce a warning on w but do not abort.
func Load(dir string, w io.Writer) (Lists, error) {
	if w == nil {
		w = io.Discard
	}
	info, err := os.Stat(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return Lists{}, nil
		}
		return Lists{}, fmt.Errorf("reading venues directory %s: %w", dir, err)
	}
	if !info.IsDir() {
		return Lists{}, fmt.Errorf("venues path %s is not a directory", dir)
	}

	var lists Lists
	lists.TopTier = readList(filepath.Join(dir, TopTierFile), w)
	lists.CitationIndex = readList(filepath.Join(dir, CitationIndexFile), w)
	return lists, nil
}

// readList returns the entries of one list file, or nil when it cannot be
// read.
func readList(path string, w io.Writer) []string {
	data, err := os.ReadFile(path)
	if err != nil {
		if !os.IsNotExist(err) {
			fmt.Fprintf(w, "warning: could not read venue list %s: %v\n", filepath.Base(path), err)
		}
		return nil
	}

	entries := []string{}
	sc := bufio.NewScanner(bytes.NewReader(data))
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		entries = append(entries, line)
	}
	return entries
}

// WriteDefaults writes the built-in lists into dir, creating it if needed.
// Existing files are left untouched.
func WriteDefaults(dir string) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating %s: %w", dir, err)
	}
	files := map[string][]string{
		TopTierFile:       types.DefaultTopTierVenues,
		CitationIndexFile: types.DefaultCitationIndexVenues,
	}
	for name, list := range files {
		path := filepath.Join(dir, name)
		if _, err := os.Stat(path); err == nil {
			continue
		}
		content := "# One venue per line.\n" + strings.Join(list, "\n") + "\n"
		if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
			return fmt.Errorf("writing %s: %w", path, err)
		}
	}
	return nil
}
