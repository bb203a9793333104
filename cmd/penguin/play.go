package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/penguin-jump/internal/platform/tui"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Start a run",
	Long: `Start a run straight away, skipping the menu.

Controls:
  Space/W/Up  - Jump (again in the air for a double jump)
  A/D/Arrows  - Aim the next jump
  P           - Pause
  R           - New run (after game over)
  Esc/B       - Back (while paused or after game over)
  Q/Ctrl+C    - Quit

Difficulty options:
  easy   - Start at the lowest difficulty, rises with height
  normal - Start at 30% difficulty, rises with height
  hard   - Start at 70% difficulty, rises with height
  fixed  - No progression, stays at the configured floor

Examples:
  penguin play
  penguin play --difficulty hard
  penguin play --seed 42
  penguin play --config ./my-penguin.yaml`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func runPlay(_ *cobra.Command, _ []string) {
	gameCfg, err := loadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	logger, closeLog := fileLogger()
	store := openStore(logger)
	player := startAudio(store, logger)

	newGame := gameFactory(gameCfg, player, logger)
	runErr := tui.Run(newGame(store, playerName()), runtimeConfig())

	// Close store before potential exit
	stopAudio(player, store, logger)
	store.Close()
	closeLog()

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}
