// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// maxLine bounds a single citation line read from standard input.
const maxLine = 1 << 20

// readCitations returns args when given, otherwise the non-blank lines of r.
func readCitations(args []string, r io.Reader) ([]string, error) {
	if len(args) > 0 {
		return args, nil
	}

	var texts []string
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), maxLine)
	for sc.Scan() {
		if line := sc.Text(); strings.TrimSpace(line) != "" {
			texts = append(texts, line)
		}
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("reading citations: %w", err)
	}
	return texts, nil
}
