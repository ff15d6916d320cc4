package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-cubes/internal/board"
	"github.com/vovakirdan/tui-cubes/internal/config"
	"github.com/vovakirdan/tui-cubes/internal/layouts"
	"github.com/vovakirdan/tui-cubes/internal/storage"
)

// boardSetup is a loaded config with its starting tiles resolved.
type boardSetup struct {
	config config.BoardConfig
	layout string // Empty for an explicit tile list
	tiles  []board.Tile
}

// loadBoard reads the board config and resolves the starting tiles.
// A layout named on the command line wins over the config file.
func loadBoard(layoutArg string) (boardSetup, error) {
	cfg, err := config.LoadBoard(flagConfig)
	if err != nil {
		return boardSetup{}, err
	}

	tiles, err := layouts.ForConfig(cfg, layoutArg)
	if err != nil {
		return boardSetup{}, err
	}

	layout := layoutArg
	if layout == "" && len(cfg.Tiles) == 0 {
		layout = cfg.Layout
	}

	// Surface placement errors before the terminal is taken over
	if _, err := board.NewBoard(cfg.Board.Size, cfg.Board.CubeSize, tiles); err != nil {
		return boardSetup{}, fmt.Errorf("config: %w", err)
	}

	return boardSetup{config: cfg, layout: layout, tiles: tiles}, nil
}

// newLogger returns the logger for board sessions. Local play owns the
// terminal, so without --log-file logs are discarded.
// The returned close function is never nil.
func newLogger(prefix string) (*log.Logger, func(), error) {
	level := log.InfoLevel
	if flagDebug {
		level = log.DebugLevel
	}

	if flagLogFile == "" {
		return log.New(io.Discard), func() {}, nil
	}

	f, err := os.OpenFile(flagLogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
	if err != nil {
		return nil, nil, fmt.Errorf("cannot open log file: %w", err)
	}

	logger := log.NewWithOptions(f, log.Options{
		ReportTimestamp: true,
		Prefix:          prefix,
		Level:           level,
	})
	return logger, func() { f.Close() }, nil
}

// closeStore closes the history database, if one was opened.
func closeStore(store *storage.Store, logger *log.Logger) {
	if store == nil {
		return
	}
	if err := store.Close(); err != nil {
		logger.Warn("closing history database", "error", err)
	}
}
