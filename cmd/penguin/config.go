package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/penguin-jump/internal/config"
)

var flagDumpFormat string

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Inspect the game configuration",
}

var configDumpCmd = &cobra.Command{
	Use:   "dump",
	Short: "Print the effective configuration",
	Long: `Print the configuration the game would run with, after the config
file and the --difficulty preset are applied. The output is a complete
config file that can be edited and passed back with --config.

Examples:
  penguin config dump > ~/.penguin/configs/penguin.yaml
  penguin config dump --format toml
  penguin config dump --difficulty hard`,
	Args: cobra.NoArgs,
	Run:  runConfigDump,
}

func init() {
	configDumpCmd.Flags().StringVar(&flagDumpFormat, "format", "yaml", "Output format: yaml or toml")
	configCmd.AddCommand(configDumpCmd)
}

func runConfigDump(_ *cobra.Command, _ []string) {
	format := config.Format(flagDumpFormat)
	if format != config.FormatYAML && format != config.FormatTOML {
		fmt.Fprintf(os.Stderr, "Error: unknown format %q (want yaml or toml)\n", flagDumpFormat)
		os.Exit(1)
	}

	cfg, err := loadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	if err := config.Encode(os.Stdout, cfg, format); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
