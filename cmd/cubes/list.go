package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-cubes/internal/registry"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List all starting layouts",
	Long:  `Shows a list of all layouts a board can start from.`,
	Run:   runList,
}

func runList(cmd *cobra.Command, args []string) {
	layouts := registry.List()

	if len(layouts) == 0 {
		fmt.Println("No layouts available.")
		return
	}

	fmt.Println("Available layouts:")
	fmt.Println()

	// Calculate column widths
	maxIDLen := 2 // "ID" header
	for _, l := range layouts {
		if len(l.ID) > maxIDLen {
			maxIDLen = len(l.ID)
		}
	}

	fmt.Printf("  %-*s  %s\n", maxIDLen, "ID", "Description")
	fmt.Printf("  %-*s  %s\n", maxIDLen, "--", "-----------")

	for _, l := range layouts {
		fmt.Printf("  %-*s  %s\n", maxIDLen, l.ID, l.Title)
	}

	fmt.Println()
	fmt.Println("Run 'cubes play <id>' to open a board.")
}
