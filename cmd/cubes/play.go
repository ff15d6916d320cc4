package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-cubes/internal/core"
	"github.com/vovakirdan/tui-cubes/internal/platform/tui"
	"github.com/vovakirdan/tui-cubes/internal/registry"
	"github.com/vovakirdan/tui-cubes/internal/storage"
)

var flagNoHistory bool

var playCmd = &cobra.Command{
	Use:   "play [layout]",
	Short: "Open a board",
	Long: `Open a board with the given starting layout, or the one named in
the config when no layout is given.

Controls:
  Left drag     - Move a tile (a paired tile moves its partner too)
  Right click   - Cycle a tile's color (orange, blue, red)
  D/Space       - Pull the connected pair apart
  Esc/C         - Stop pulling
  R             - Reset the board
  T             - Toggle light/dark theme
  Ctrl+S        - Save a screenshot to ~/.cubes/screenshots
  ?             - Show all keys
  Q/Ctrl+C      - Quit

Examples:
  cubes play
  cubes play grid
  cubes play --config ./my-board.yaml
  cubes play pair --log-file cubes.log --debug`,
	Args: cobra.MaximumNArgs(1),
	Run:  runPlay,
}

func init() {
	playCmd.Flags().BoolVar(&flagNoHistory, "no-history", false, "Do not record connections and disconnects")
}

func runPlay(cmd *cobra.Command, args []string) {
	var layoutArg string
	if len(args) == 1 {
		layoutArg = args[0]
		if !registry.Exists(layoutArg) {
			fmt.Fprintf(os.Stderr, "Error: unknown layout %q\n", layoutArg)
			fmt.Fprintln(os.Stderr, "Run 'cubes list' to see available layouts.")
			os.Exit(1)
		}
	}

	setup, err := loadBoard(layoutArg)
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

	var store *storage.Store
	if !flagNoHistory {
		store, err = storage.Open(flagDBPath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Warning: could not open history database: %v\n", err)
			// Continue without history - the board still works
			store = nil
		}
	}

	session := tui.Session{
		Board:  setup.config,
		Layout: setup.layout,
		Tiles:  setup.tiles,
		Store:  store,
		User:   os.Getenv("USER"),
		Logger: logger,
		Screen: core.RuntimeConfig{ScreenW: width, ScreenH: height},
	}

	runErr := tui.Run(session)

	// Close store before potential exit
	closeStore(store, logger)

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running board: %v\n", runErr)
		os.Exit(1)
	}
}
