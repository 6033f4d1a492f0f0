// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for the citeconv CLI.
package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/citeconv/internal/convert"
	"github.com/pdiddy/citeconv/internal/venues"
	"github.com/pdiddy/citeconv/pkg/types"
)

// version is set at build time via ldflags.
var version = "dev"

// converter is built from the layered configuration before any subcommand
// runs.
var converter *convert.Converter

// rootCmd is the base command for the citeconv CLI.
var rootCmd = &cobra.Command{
	Use:   "citeconv",
	Short: "Parse bibliographic citations and convert them between styles",
	Long: `citeconv parses free-form bibliographic citations written in the national
(ГОСТ) or numeric (IEEE) style into structured records and renders records
back into either style.

Citations are read from the arguments or, when none are given, one per line
from standard input.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := engineConfig()
		if err != nil {
			return err
		}
		converter = convert.New(cfg, os.Stderr)
		return nil
	},
}

func init() {
	cobra.OnInitialize(initConfig)

	pf := rootCmd.PersistentFlags()
	pf.String("config", "", "config file (default: ./citeconv.yaml or ~/.config/citeconv/citeconv.yaml)")
	pf.Int("workers", types.DefaultWorkers, "citations converted concurrently (0 converts sequentially)")
	pf.String("venues-dir", "", "directory with top-tier.txt and citation-index.txt venue lists")
	pf.String("language", string(types.LangRussian), "default language when the title does not decide it: ru or en")

	_ = viper.BindPFlag("batch.workers", pf.Lookup("workers"))
	_ = viper.BindPFlag("venues_dir", pf.Lookup("venues-dir"))
	_ = viper.BindPFlag("parser.default_language", pf.Lookup("language"))
}

func initConfig() {
	cfgFile, _ := rootCmd.PersistentFlags().GetString("config")
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("citeconv")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "citeconv"))
		}
	}

	viper.SetEnvPrefix("CITECONV")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

// engineConfig decodes the layered configuration over the built-in defaults
// and applies the venue lists found in venues_dir.
func engineConfig() (types.EngineConfig, error) {
	cfg := types.DefaultEngineConfig()
	if err := viper.Unmarshal(&cfg); err != nil {
		return cfg, fmt.Errorf("decoding configuration: %w", err)
	}
	cfg.Parser = cfg.Parser.WithDefaults()

	if cfg.VenuesDir != "" {
		lists, err := venues.Load(cfg.VenuesDir, os.Stderr)
		if err != nil {
			return cfg, err
		}
		cfg.Parser = lists.Apply(cfg.Parser)
	}
	return cfg, nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
