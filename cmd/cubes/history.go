package main

import (
	"fmt"
	"os"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-cubes/internal/platform/tui"
	"github.com/vovakirdan/tui-cubes/internal/storage"
)

var (
	flagPlain bool
	flagLimit int
	flagClear bool
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Browse recorded connections and disconnects",
	Long: `Show what happened on past boards: every connection and every
finished disconnect with how it ended.

Opens an interactive table on a terminal. With --plain, or when output
is not a terminal, prints the newest events instead.

Examples:
  cubes history
  cubes history --plain --limit 50
  cubes history --clear`,
	Run: runHistory,
}

func init() {
	historyCmd.Flags().BoolVar(&flagPlain, "plain", false, "Print events instead of opening the table")
	historyCmd.Flags().IntVar(&flagLimit, "limit", 20, "Number of events to print with --plain")
	historyCmd.Flags().BoolVar(&flagClear, "clear", false, "Delete all recorded history")
}

func runHistory(cmd *cobra.Command, args []string) {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening history database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	if flagClear {
		if err := store.ClearHistory(); err != nil {
			fmt.Fprintf(os.Stderr, "Error clearing history: %v\n", err)
			os.Exit(1)
		}
		fmt.Println("History cleared.")
		return
	}

	fd := int(os.Stdout.Fd())
	if !flagPlain && term.IsTerminal(fd) {
		width, height, sizeErr := term.GetSize(fd)
		if sizeErr != nil {
			width, height = 80, 24
		}
		if err := tui.RunHistory(store, width, height); err != nil {
			fmt.Fprintf(os.Stderr, "Error running history: %v\n", err)
			os.Exit(1)
		}
		return
	}

	printHistory(store, flagLimit)
}

// printHistory writes the newest events and the disconnect summary to stdout.
func printHistory(store *storage.Store, limit int) {
	events, err := store.RecentEvents(limit)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving history: %v\n", err)
		os.Exit(1)
	}

	fmt.Println("Board History")
	fmt.Println()

	if len(events) == 0 {
		fmt.Println("Nothing recorded yet.")
		fmt.Println()
		fmt.Println("Run 'cubes play' and connect two cubes to start a history!")
		return
	}

	fmt.Printf("  %-16s  %-8s  %-10s  %-5s  %s\n", "When", "Layout", "Event", "Tiles", "Result")
	fmt.Printf("  %-16s  %-8s  %-10s  %-5s  %s\n", "----", "------", "-----", "-----", "------")

	for _, e := range events {
		when := "-"
		if !e.CreatedAt.IsZero() {
			when = humanize.Time(e.CreatedAt)
		}
		result := ""
		if e.Kind == storage.KindDisconnect {
			result = fmt.Sprintf("%s after %s ticks (%s)",
				e.Reason, humanize.Comma(int64(e.Ticks)), time.Duration(e.ElapsedMS)*time.Millisecond)
		}
		fmt.Printf("  %-16s  %-8s  %-10s  %d+%-3d  %s\n", when, e.Layout, e.Kind, e.TileA, e.TileB, result)
	}

	reasons, err := store.DisconnectReasons()
	if err == nil && len(reasons) > 0 {
		fmt.Println()
		fmt.Println("Disconnects by outcome:")
		for _, r := range reasons {
			fmt.Printf("  %-14s %s\n", r.Reason, humanize.Comma(int64(r.Count)))
		}
	}
}
