package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/penguin-jump/internal/game"
	"github.com/vovakirdan/penguin-jump/internal/registry"
	"github.com/vovakirdan/penguin-jump/internal/storage"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List all penguins",
	Long:  `Shows every penguin in the shop, what it costs and whether you own it.`,
	Run:   runList,
}

func runList(_ *cobra.Command, _ []string) {
	characters := registry.List()

	if len(characters) == 0 {
		fmt.Println("No penguins available.")
		return
	}

	profile := game.DefaultProfile()
	if store, err := storage.Open(flagDBPath); err == nil {
		if p, loadErr := store.LoadProfile(); loadErr == nil {
			profile = p
		}
		store.Close()
	} else {
		fmt.Fprintf(os.Stderr, "Warning: could not open profile database: %v\n", err)
	}

	fmt.Println("Penguins:")
	fmt.Println()

	// Calculate column widths
	maxIDLen := 2 // "ID" header
	for _, c := range characters {
		if len(c.ID) > maxIDLen {
			maxIDLen = len(c.ID)
		}
	}

	// Print header
	fmt.Printf("  %-*s  %-5s  %-5s  %-8s  %s\n", maxIDLen, "ID", "Cost", "Wind", "Status", "Name")
	fmt.Printf("  %-*s  %-5s  %-5s  %-8s  %s\n", maxIDLen, "--", "----", "----", "------", "----")

	for _, c := range characters {
		status := "locked"
		switch {
		case c.ID == profile.SelectedCharacter:
			status = "wearing"
		case profile.IsUnlocked(c):
			status = "owned"
		}
		fmt.Printf("  %-*s  %-5d  %-5.2f  %-8s  %s\n", maxIDLen, c.ID, c.Cost, c.WindFactor, status, c.Name)
	}

	fmt.Println()
	fmt.Printf("Coins: %d. Run 'penguin shop' to buy and wear penguins.\n", profile.TotalCoins)
}
