package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-cubes/internal/config"
	"github.com/vovakirdan/tui-cubes/internal/core"
	"github.com/vovakirdan/tui-cubes/internal/platform/tui"
	"github.com/vovakirdan/tui-cubes/internal/storage"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Pick a layout from a menu",
	Long: `Start with a menu of layouts. Press B on a board to come back and
open another one.

Examples:
  cubes menu
  cubes menu --config ./my-board.yaml`,
	Run: runMenu,
}

func runMenu(cmd *cobra.Command, args []string) {
	cfg, err := config.LoadBoard(flagConfig)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	logger, closeLog, err := newLogger("cubes")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer closeLog()

	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open history database: %v\n", err)
		store = nil
	}

	runErr := tui.RunMenu(tui.Session{
		Board:  cfg,
		Store:  store,
		User:   os.Getenv("USER"),
		Logger: logger,
		Screen: core.RuntimeConfig{ScreenW: width, ScreenH: height},
	})

	closeStore(store, logger)

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running menu: %v\n", runErr)
		os.Exit(1)
	}
}
