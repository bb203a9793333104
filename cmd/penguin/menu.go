package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/penguin-jump/internal/platform/tui"
	"github.com/vovakirdan/penguin-jump/internal/registry"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Start the game with the main menu",
	Long: `Start Penguin Jump in interactive menu mode.

From the menu you can play, visit the penguin shop, check the best runs
and change the sound settings. After a run you return to the menu.

Controls:
  Up/Down/j/k  - Navigate menu
  Enter/Space  - Select
  Q            - Quit

Examples:
  penguin menu
  penguin menu --fps 60
  penguin menu --db ./penguin.db`,
	Run: runMenu,
}

func runMenu(_ *cobra.Command, _ []string) {
	gameCfg, err := loadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	logger, closeLog := fileLogger()
	defer closeLog()

	store := openStore(logger)
	defer store.Close()

	player := startAudio(store, logger)
	defer stopAudio(player, store, logger)

	newGame := gameFactory(gameCfg, player, logger)
	name := playerName()

	opts := tui.SessionOptions{
		Store:  store,
		Config: runtimeConfig(),
		Player: name,
		NewGame: func() registry.Game {
			return newGame(store, name)
		},
	}
	if player != nil {
		opts.Music = player
	}

	if err := tui.RunSession(opts); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	}
}
