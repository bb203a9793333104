package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/penguin-jump/internal/platform/tui"
	"github.com/vovakirdan/penguin-jump/internal/storage"
)

var (
	flagScoresLimit int
	flagScoresTUI   bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Show the best runs",
	Long: `Display the best runs and lifetime statistics.

Examples:
  penguin scores
  penguin scores --limit 25
  penguin scores --interactive`,
	Args: cobra.NoArgs,
	Run:  runScores,
}

func init() {
	scoresCmd.Flags().IntVar(&flagScoresLimit, "limit", 10, "Number of runs to show")
	scoresCmd.Flags().BoolVarP(&flagScoresTUI, "interactive", "i", false, "Browse the scoreboard in the terminal UI")
}

func runScores(_ *cobra.Command, _ []string) {
	// Open profile storage
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening profile database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	if flagScoresTUI {
		cfg := runtimeConfig()
		if _, err := tui.RunScoreboard(store, cfg.ScreenW, cfg.ScreenH); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		}
		return
	}

	runs, err := store.TopRuns(flagScoresLimit)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving runs: %v\n", err)
		return
	}

	fmt.Println("High Scores - Penguin Jump")
	fmt.Println()

	if len(runs) == 0 {
		fmt.Println("No runs recorded yet.")
		fmt.Println()
		fmt.Println("Play 'penguin play' to set the first high score!")
		return
	}

	// Print header
	fmt.Printf("  %-4s  %-6s  %-5s  %-8s  %-10s  %s\n", "Rank", "Score", "Coins", "Height", "Penguin", "Date")
	fmt.Printf("  %-4s  %-6s  %-5s  %-8s  %-10s  %s\n", "----", "-----", "-----", "------", "-------", "----")

	// Print runs
	for i, r := range runs {
		dateStr := r.EndedAt.Local().Format("2006-01-02 15:04")
		fmt.Printf("  %-4d  %-6d  %-5d  %-8.0f  %-10s  %s\n", i+1, r.Score, r.Coins, r.Height, r.Character, dateStr)
	}

	stats, err := store.Stats()
	if err != nil {
		return
	}
	fmt.Println()
	fmt.Printf("Best: %d   Runs: %d   Average: %.1f   Storms: %d\n",
		stats.HighScore, stats.Runs, stats.AvgScore, stats.Storms)
	fmt.Printf("Time on the ice: %s\n", stats.PlayTime.Round(time.Second))
}
