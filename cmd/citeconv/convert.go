// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/pdiddy/citeconv/internal/convert"
	"github.com/pdiddy/citeconv/internal/format"
	"github.com/pdiddy/citeconv/pkg/types"
)

var convertCmd = &cobra.Command{
	Use:   "convert [citations...]",
	Short: "Convert citations from one style to another",
	Long: `Convert parses each citation in the source style and renders it in the
target style. The output has one line per input line, in input order; a
citation that cannot be converted is printed unchanged.

With --sort or --numbered the citations are rendered as one bibliography
list. With --job-file the citations and options are read from a YAML job
file and the results are written back into it.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		jobFile, _ := cmd.Flags().GetString("job-file")
		if jobFile != "" {
			return runJobFile(jobFile)
		}

		fromFlag, _ := cmd.Flags().GetString("from")
		toFlag, _ := cmd.Flags().GetString("to")
		sortFlag, _ := cmd.Flags().GetString("sort")
		numbered, _ := cmd.Flags().GetBool("numbered")

		texts, err := readCitations(args, cmd.InOrStdin())
		if err != nil {
			return err
		}
		from, to := types.ParseStyle(fromFlag), types.ParseStyle(toFlag)

		var (
			out    []string
			result convert.BatchResult
		)
		if key := format.ParseSortKey(sortFlag); key != format.SortNone || numbered {
			out = converter.ConvertList(texts, from, to, key, numbered)
		} else {
			out, result = converter.BatchConvert(texts, from, to)
		}
		for _, line := range out {
			fmt.Fprintln(cmd.OutOrStdout(), line)
		}
		if result.HasFailures() {
			return fmt.Errorf("%d of %d citations failed", result.Failed, result.Total())
		}
		return nil
	},
}

// runJobFile converts the citations of a job file and saves the results.
func runJobFile(path string) error {
	job, err := convert.ReadJobFile(path)
	if err != nil {
		return err
	}
	converter.RunJob(job)
	if err := convert.WriteJobFile(path, job); err != nil {
		return err
	}
	fmt.Fprintf(os.Stderr, "Wrote %d results to %s\n", len(job.Results), path)
	return nil
}

func init() {
	convertCmd.Flags().String("from", "auto", "source style: auto, national (ГОСТ), or numeric (IEEE)")
	convertCmd.Flags().String("to", "numeric", "target style: national (ГОСТ) or numeric (IEEE)")
	convertCmd.Flags().String("sort", "", "sort the list by author, year, or title")
	convertCmd.Flags().Bool("numbered", false, "number the list in the target style")
	convertCmd.Flags().String("job-file", "", "YAML job file with citations and options; results are written back")

	rootCmd.AddCommand(convertCmd)
}
