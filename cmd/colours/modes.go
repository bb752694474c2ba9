package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/colourgrid/internal/platform/tui"
	"github.com/vovakirdan/colourgrid/internal/registry"
)

var modesCmd = &cobra.Command{
	Use:   "modes",
	Short: "List all rendering modes",
	Long:  `Shows every rendering mode with its toolbar key.`,
	Args:  cobra.NoArgs,
	Run:   runModes,
}

func runModes(cmd *cobra.Command, args []string) {
	modes := registry.List()

	if len(modes) == 0 {
		fmt.Println("No modes available.")
		return
	}

	fmt.Println("Available modes:")
	fmt.Println()

	// Calculate column widths
	maxIDLen := 2 // "ID" header
	for _, m := range modes {
		if len(m.ID) > maxIDLen {
			maxIDLen = len(m.ID)
		}
	}

	keys := tui.DefaultKeyMap()

	// Print header
	fmt.Printf("  %-*s  %-3s  %s\n", maxIDLen, "ID", "Key", "Title")
	fmt.Printf("  %-*s  %-3s  %s\n", maxIDLen, "--", "---", "-----")

	for _, m := range modes {
		k := keys.ModeKey(m.ID)
		if k == "" {
			k = "-"
		}
		fmt.Printf("  %-*s  %-3s  %s\n", maxIDLen, m.ID, k, m.Title)
	}

	fmt.Println()
	fmt.Println("Run 'colours run --mode <id>' to start in a mode.")
}
