package board

import (
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-cubes/internal/core"
)

// Config holds the fixed parameters of a board.
type Config struct {
	BoardSize    int           // Board side length in board units
	CubeSize     int           // Tile side length in board units
	Step         int           // Per-tick separation on each axis during disconnect
	TickInterval time.Duration // Disconnect tick cadence
	Deadline     time.Duration // Hard stop for a disconnect run
}

// DefaultConfig returns the stock board: 800 units square, 100 unit cubes,
// separating 2 units per 16ms tick for at most one second.
func DefaultConfig() Config {
	return Config{
		BoardSize:    800,
		CubeSize:     100,
		Step:         2,
		TickInterval: 16 * time.Millisecond,
		Deadline:     time.Second,
	}
}

// Engine owns a Board and applies pointer and animation commands to it.
// It is not safe for concurrent use.
type Engine struct {
	cfg    Config
	board  *Board
	drag   dragSession
	run    *disconnectRun
	runSeq uint64

	clock     func() time.Time
	logger    *log.Logger
	observers []Observer
}

// Option configures an Engine.
type Option func(*Engine)

// WithClock overrides the time source used for disconnect deadlines.
func WithClock(now func() time.Time) Option {
	return func(e *Engine) {
		e.clock = now
	}
}

// WithLogger sets the logger for state transitions.
func WithLogger(l *log.Logger) Option {
	return func(e *Engine) {
		e.logger = l
	}
}

// WithRunSeq makes run numbers continue after last, so an engine that
// replaces another never reuses a run number the old one handed out.
func WithRunSeq(last uint64) Option {
	return func(e *Engine) {
		e.runSeq = last
	}
}

// WithObserver registers a callback for engine events.
func WithObserver(o Observer) Option {
	return func(e *Engine) {
		e.observers = append(e.observers, o)
	}
}

// New creates an engine for the given tiles.
func New(cfg Config, tiles []Tile, opts ...Option) (*Engine, error) {
	if cfg.Step <= 0 || cfg.TickInterval <= 0 || cfg.Deadline <= 0 {
		return nil, fmt.Errorf("%w: step %d, tick %s, deadline %s", ErrInvalidConfig, cfg.Step, cfg.TickInterval, cfg.Deadline)
	}

	b, err := NewBoard(cfg.BoardSize, cfg.CubeSize, tiles)
	if err != nil {
		return nil, err
	}

	e := &Engine{
		cfg:    cfg,
		board:  b,
		clock:  time.Now,
		logger: log.New(io.Discard),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e, nil
}

// Reset replaces every tile with the given set. An active disconnect run is
// cancelled, the drag ends and the connection is dropped. Run numbers keep
// counting up, so timers scheduled before the reset stay stale.
// On error the board is left untouched.
func (e *Engine) Reset(tiles []Tile) error {
	b, err := NewBoard(e.cfg.BoardSize, e.cfg.CubeSize, tiles)
	if err != nil {
		return err
	}
	e.CancelDisconnect()
	e.PointerUp()
	e.board = b
	e.logger.Debug("board reset", "tiles", len(tiles))
	return nil
}

// Config returns the engine's board parameters.
func (e *Engine) Config() Config {
	return e.cfg
}

// BoardSize returns the board side length.
func (e *Engine) BoardSize() int {
	return e.board.Size()
}

// CubeSize returns the tile side length.
func (e *Engine) CubeSize() int {
	return e.board.CubeSize()
}

// Tiles returns all tiles in display order.
func (e *Engine) Tiles() []Tile {
	return e.board.Tiles()
}

// TileAt returns the topmost tile under a board-local point.
func (e *Engine) TileAt(p core.Point) (Tile, bool) {
	return e.board.TileAt(p)
}

// ActiveConnection returns the connected pair, if any.
func (e *Engine) ActiveConnection() (Pair, bool) {
	return e.board.Connection()
}

// Dragging returns the id of the tile being dragged, if any.
func (e *Engine) Dragging() (int, bool) {
	return e.drag.tileID, e.drag.active
}

// Disconnecting reports whether a disconnect run is active.
func (e *Engine) Disconnecting() bool {
	return e.run != nil
}

// DisconnectRun returns the sequence number of the active run.
func (e *Engine) DisconnectRun() (uint64, bool) {
	if e.run == nil {
		return 0, false
	}
	return e.run.seq, true
}

// LastRun returns the number of the most recent run, or the starting
// sequence when no run has begun.
func (e *Engine) LastRun() uint64 {
	return e.runSeq
}

func (e *Engine) emit(ev Event) {
	for _, o := range e.observers {
		o(ev)
	}
}
