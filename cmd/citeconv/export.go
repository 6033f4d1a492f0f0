// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/pdiddy/citeconv/internal/format"
	"github.com/pdiddy/citeconv/pkg/types"
)

var exportCmd = &cobra.Command{
	Use:   "export [citations...]",
	Short: "Export citations as CSL for reference managers",
	Long: `Export parses citations and writes them as a CSL-YAML or CSL-JSON list
that Pandoc and reference managers can read.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		fromFlag, _ := cmd.Flags().GetString("from")
		outFormat, _ := cmd.Flags().GetString("format")

		texts, err := readCitations(args, cmd.InOrStdin())
		if err != nil {
			return err
		}
		results := converter.ParseAll(texts, types.ParseStyle(fromFlag))
		records := make([]types.Record, len(results))
		for i, r := range results {
			records[i] = r.Record
		}

		switch outFormat {
		case "csl-json", "json":
			return format.FormatCSLJSON(records, cmd.OutOrStdout())
		case "csl-yaml", "yaml", "":
			return format.FormatCSL(records, cmd.OutOrStdout())
		default:
			return fmt.Errorf("unknown export format %q (want csl-yaml or csl-json)", outFormat)
		}
	},
}

func init() {
	exportCmd.Flags().String("from", "auto", "source style: auto, national (ГОСТ), or numeric (IEEE)")
	exportCmd.Flags().String("format", "csl-yaml", "export format: csl-yaml or csl-json")

	rootCmd.AddCommand(exportCmd)
}
