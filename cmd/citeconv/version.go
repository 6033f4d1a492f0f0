package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version of citeconv",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("citeconv %s\n", version)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
