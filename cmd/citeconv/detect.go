// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/pdiddy/citeconv/internal/detect"
)

var detectCmd = &cobra.Command{
	Use:   "detect [citations...]",
	Short: "Print the detected style of each citation",
	RunE: func(cmd *cobra.Command, args []string) error {
		texts, err := readCitations(args, cmd.InOrStdin())
		if err != nil {
			return err
		}
		for _, t := range texts {
			fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\n", detect.Detect(t), t)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(detectCmd)
}
