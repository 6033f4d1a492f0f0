// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/citeconv/internal/parse"
	"github.com/pdiddy/citeconv/pkg/types"
)

// parsedCitation is one parse result as printed by the parse command.
type parsedCitation struct {
	parse.Result `yaml:",inline"`
	Confidence   float64 `json:"confidence" yaml:"confidence"`
}

var parseCmd = &cobra.Command{
	Use:   "parse [citations...]",
	Short: "Parse citations into structured records",
	Long: `Parse recovers structured records (authors, title, year, venue, pages,
identifiers, source type) from citation text. Each record is printed with
the matcher that recognised it and a confidence score.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		styleFlag, _ := cmd.Flags().GetString("style")
		outFormat, _ := cmd.Flags().GetString("format")

		texts, err := readCitations(args, cmd.InOrStdin())
		if err != nil {
			return err
		}

		results := converter.ParseAll(texts, types.ParseStyle(styleFlag))
		out := make([]parsedCitation, len(results))
		for i, r := range results {
			out[i] = parsedCitation{Result: r, Confidence: r.Confidence()}
		}
		return writeStructured(cmd.OutOrStdout(), outFormat, out)
	},
}

// writeStructured encodes v as YAML or indented JSON.
func writeStructured(w io.Writer, outFormat string, v any) error {
	switch outFormat {
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		enc.SetEscapeHTML(false)
		if err := enc.Encode(v); err != nil {
			return fmt.Errorf("encoding JSON: %w", err)
		}
		return nil
	case "yaml", "":
		enc := yaml.NewEncoder(w)
		defer enc.Close()
		if err := enc.Encode(v); err != nil {
			return fmt.Errorf("encoding YAML: %w", err)
		}
		return nil
	default:
		return fmt.Errorf("unknown output format %q (want yaml or json)", outFormat)
	}
}

func init() {
	parseCmd.Flags().String("style", "auto", "source style: auto, national (ГОСТ), or numeric (IEEE)")
	parseCmd.Flags().String("format", "yaml", "output format: yaml or json")

	rootCmd.AddCommand(parseCmd)
}
