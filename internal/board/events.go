package board

import (
	"time"

	"github.com/vovakirdan/tui-cubes/internal/core"
)

// Event is emitted by the engine after a state transition has been committed.
type Event interface {
	boardEvent()
}

// Observer receives engine events synchronously, on the caller's goroutine.
type Observer func(Event)

// ConnectedEvent is emitted when a dragged tile collides with another tile
// and the two become a pair.
type ConnectedEvent struct {
	Pair Pair
}

func (ConnectedEvent) boardEvent() {}

// MoveRejectedEvent is emitted when a coupled move would push the pair's
// combined bounds off the board.
type MoveRejectedEvent struct {
	Pair   Pair
	Bounds core.Rect // Proposed combined bounds
}

func (MoveRejectedEvent) boardEvent() {}

// DisconnectStartedEvent is emitted when a disconnect run begins.
type DisconnectStartedEvent struct {
	Run      uint64
	Pair     Pair
	Deadline time.Time
}

func (DisconnectStartedEvent) boardEvent() {}

// EndReason describes why a disconnect run stopped.
type EndReason string

const (
	EndOutOfBounds EndReason = "out_of_bounds" // A tile left the board
	EndTimeout     EndReason = "timeout"       // The deadline passed first
	EndCancelled   EndReason = "cancelled"     // Stopped by the host (reset, quit)
	EndTileLost    EndReason = "tile_lost"     // A pair member no longer resolves
)

// DisconnectEndedEvent is emitted once per run, after the connection has
// been cleared.
type DisconnectEndedEvent struct {
	Run     uint64
	Pair    Pair
	Reason  EndReason
	Ticks   int
	Elapsed time.Duration
}

func (DisconnectEndedEvent) boardEvent() {}
