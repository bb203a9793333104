package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/penguin-jump/internal/platform/tui"
)

var shopCmd = &cobra.Command{
	Use:   "shop",
	Short: "Buy and wear penguins",
	Long: `Open the penguin shop. Coins collected during runs buy new penguins;
owned penguins can be worn for free.

Controls:
  Up/Down/j/k  - Navigate
  Enter/Space  - Buy or wear
  Esc/B        - Back
  Q            - Quit`,
	Args: cobra.NoArgs,
	Run:  runShop,
}

var settingsCmd = &cobra.Command{
	Use:   "settings",
	Short: "Toggle music and sound effects",
	Args:  cobra.NoArgs,
	Run:   runSettings,
}

func runShop(_ *cobra.Command, _ []string) {
	logger, closeLog := fileLogger()
	defer closeLog()

	store := openStore(logger)
	defer store.Close()

	cfg := runtimeConfig()
	if _, err := tui.RunShop(store, cfg.ScreenW, cfg.ScreenH); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	}
}

func runSettings(_ *cobra.Command, _ []string) {
	logger, closeLog := fileLogger()
	defer closeLog()

	store := openStore(logger)
	defer store.Close()

	cfg := runtimeConfig()
	if err := tui.RunSettings(store, nil, cfg.ScreenW); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	}
}
