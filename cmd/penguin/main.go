// penguin is Penguin Jump: hop between sinking icebergs in your terminal.
//
// Usage:
//
//	penguin                  - Start the menu (same as 'penguin menu')
//	penguin play             - Jump straight into a run
//	penguin menu             - Menu with shop, scores and settings
//	penguin serve            - Start SSH server for remote play
//	penguin scores           - Show the best runs
//	penguin list             - List the penguins and what they cost
//	penguin shop             - Buy and wear penguins
//	penguin settings         - Toggle music and sound effects
//	penguin config dump      - Print the effective configuration
//	penguin sim              - Run the autopilot headless
//
// Global flags:
//
//	--fps <rate>          - Set tick rate (default: 30)
//	--seed <value>        - Set RNG seed for reproducible gameplay
//	--db <path>           - Set database path (default: ~/.penguin/penguin.db)
//	--config <path>       - Load a YAML or TOML config file
//	--difficulty <preset> - easy, normal, hard or fixed
//	--volume <0-1>        - Master volume
//	--mute                - No sound at all
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagFPS        int
	flagSeed       int64
	flagDBPath     string
	flagConfig     string
	flagDifficulty string
	flagLogLevel   string
	flagDebug      bool
	flagVolume     float64
	flagMute       bool
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "penguin",
	Short: "Penguin Jump - hop between sinking icebergs in your terminal",
	Long: `Penguin Jump is a terminal arcade game. Jump from iceberg to iceberg
before they sink, collect coins, ride out lightning storms and keep away
from the sharks.

Available commands:
  play      - Start a run directly
  menu      - Interactive menu (default)
  serve     - Start SSH server for remote play
  scores    - View the best runs
  list      - Show all penguins
  shop      - Buy and wear penguins
  settings  - Toggle music and sound effects
  config    - Inspect the configuration
  sim       - Run the autopilot without a terminal

Examples:
  penguin
  penguin play --difficulty hard
  penguin serve --ssh :2222
  penguin sim --seed 42 --frames 5000`,
	Run: runMenu,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 30, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.penguin/penguin.db", "Path to profile database")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom config (YAML or TOML)")
	rootCmd.PersistentFlags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().BoolVar(&flagDebug, "debug", false, "Enable debug keys (1-4)")
	rootCmd.PersistentFlags().Float64Var(&flagVolume, "volume", 1, "Master volume (0.0 - 1.0)")
	rootCmd.PersistentFlags().BoolVar(&flagMute, "mute", false, "Start with all sound muted")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(shopCmd)
	rootCmd.AddCommand(settingsCmd)
	rootCmd.AddCommand(configCmd)
	rootCmd.AddCommand(simCmd)
}
