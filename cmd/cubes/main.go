// cubes is a terminal playground for dragging, connecting and pulling apart
// square tiles on a board.
//
// Usage:
//
//	cubes list              - List available layouts
//	cubes play [layout]     - Open a board
//	cubes menu              - Pick layouts from a menu
//	cubes serve             - Start SSH server for remote play
//	cubes history           - Browse recorded connections and disconnects
//
// Global flags:
//
//	--config <path>    - Board config YAML (default: search ~/.cubes/configs, ./configs)
//	--db <path>        - Set database path (default: ~/.cubes/history.db)
//	--log-file <path>  - Write board logs to a file
//	--debug            - Log at debug level
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	// Import layouts to register them
	_ "github.com/vovakirdan/tui-cubes/internal/layouts"
)

var (
	// Global flags
	flagConfig  string
	flagDBPath  string
	flagLogFile string
	flagDebug   bool
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "cubes",
	Short: "Cubes - drag, connect and separate tiles in your terminal",
	Long: `Cubes is a terminal board of square tiles. Drag a tile with the
mouse onto another to connect them, move the pair together, then pull
them apart with a short animation.

Available commands:
  list     - Show all starting layouts
  play     - Open a board
  menu     - Pick layouts from a menu
  serve    - Start SSH server for remote play
  history  - Browse recorded connections and disconnects

Examples:
  cubes list
  cubes play
  cubes play grid
  cubes serve --ssh :2222
  cubes history --plain`,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to board config YAML")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.cubes/history.db", "Path to history database")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file")
	rootCmd.PersistentFlags().BoolVar(&flagDebug, "debug", false, "Log at debug level")

	// Add subcommands
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(historyCmd)
}
