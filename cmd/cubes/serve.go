package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-cubes/internal/platform/tui"
	"github.com/vovakirdan/tui-cubes/internal/registry"
)

var (
	flagSSHAddr     string
	flagHostKey     string
	flagServeLayout string // Empty opens the layout menu per session
	flagIdleTimeout int
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the cubes SSH server",
	Long: `Start an SSH server that gives every connection its own board.

Boards are independent: tiles dragged in one session never appear in
another. All sessions append to the same history database. Sessions
start at the layout menu unless --layout picks one for everybody.

Host key handling:
  - If --host-key is provided, uses that key file
  - Otherwise, auto-generates a key at ~/.cubes/host_key

Examples:
  cubes serve                           # Listen on :23234 with auto-generated key
  cubes serve --ssh :2222               # Listen on port 2222
  cubes serve --layout grid             # Every session starts from the grid
  cubes serve --db ./history.db         # Use specific database

Users can connect with:
  ssh localhost -p 23234`,
	Run: runServe,
}

func init() {
	defaults := tui.DefaultSSHServerConfig()
	serveCmd.Flags().StringVar(&flagSSHAddr, "ssh", defaults.Address, "SSH server address (host:port)")
	serveCmd.Flags().StringVar(&flagHostKey, "host-key", "", "Path to host key file (auto-generated if not specified)")
	serveCmd.Flags().StringVar(&flagServeLayout, "layout", "", "Starting layout for every session (default: layout menu)")
	serveCmd.Flags().IntVar(&flagIdleTimeout, "idle-timeout", int(defaults.IdleTimeout/time.Minute), "Idle timeout in minutes before disconnecting")
}

func runServe(_ *cobra.Command, _ []string) {
	if flagServeLayout != "" && !registry.Exists(flagServeLayout) {
		fmt.Fprintf(os.Stderr, "Error: unknown layout %q\n", flagServeLayout)
		fmt.Fprintln(os.Stderr, "Run 'cubes list' to see available layouts.")
		os.Exit(1)
	}

	setup, err := loadBoard(flagServeLayout)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	cfg := tui.SSHServerConfig{
		Address:     flagSSHAddr,
		HostKeyPath: flagHostKey,
		DBPath:      flagDBPath,
		IdleTimeout: time.Duration(flagIdleTimeout) * time.Minute,
		Board:       setup.config,
	}
	// Without --layout every session picks its own from the menu
	if flagServeLayout != "" {
		cfg.Layout = setup.layout
		cfg.Tiles = setup.tiles
	}

	// The server owns no terminal, so it logs to stderr unless told otherwise
	if flagLogFile != "" {
		logger, closeLog, logErr := newLogger("cubes-ssh")
		if logErr != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", logErr)
			os.Exit(1)
		}
		defer closeLog()
		cfg.Logger = logger
	} else if flagDebug {
		cfg.Logger = log.NewWithOptions(os.Stderr, log.Options{
			ReportTimestamp: true,
			Prefix:          "cubes-ssh",
			Level:           log.DebugLevel,
		})
	}

	server, err := tui.NewSSHServer(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating server: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Starting cubes SSH server on %s\n", server.Addr())
	fmt.Printf("Connect with: ssh localhost -p %s\n", server.Port())
	fmt.Println("Press Ctrl+C to stop")

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := server.ListenAndServe(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "Server error: %v\n", err)
		os.Exit(1)
	}
}
