package board

import (
	"time"

	"github.com/vovakirdan/tui-cubes/internal/core"
)

// disconnectRun is the state of one separation animation.
type disconnectRun struct {
	seq      uint64
	pair     Pair
	step     core.Point // Applied negatively to pair.A and positively to pair.B
	started  time.Time
	deadline time.Time
	ticks    int
}

// RequestDisconnect starts pulling the connected pair apart.
// It is a no-op returning false when there is no pair or a run is already
// active. Any drag in progress ends.
func (e *Engine) RequestDisconnect() bool {
	if e.run != nil {
		return false
	}
	pair, ok := e.board.Connection()
	if !ok {
		return false
	}

	e.PointerUp()

	now := e.clock()
	e.runSeq++
	e.run = &disconnectRun{
		seq:      e.runSeq,
		pair:     pair,
		step:     core.Pt(e.cfg.Step, e.cfg.Step),
		started:  now,
		deadline: now.Add(e.cfg.Deadline),
	}

	e.logger.Info("disconnect started", "run", e.run.seq, "a", pair.A, "b", pair.B)
	e.emit(DisconnectStartedEvent{Run: e.run.seq, Pair: pair, Deadline: e.run.deadline})
	return true
}

// Tick advances the active disconnect run by one step.
//
// The step is written unclamped and bounds are checked afterwards: the run
// ends on the first tick that leaves any tile outside the board. A tick that
// arrives at or after the deadline stops the run without moving anything.
func (e *Engine) Tick() {
	run := e.run
	if run == nil {
		return
	}

	if !e.clock().Before(run.deadline) {
		e.stopDisconnect(EndTimeout)
		return
	}

	a, okA := e.board.Tile(run.pair.A)
	b, okB := e.board.Tile(run.pair.B)
	if !okA || !okB {
		e.stopDisconnect(EndTileLost)
		return
	}

	nextA := a.Pos().Sub(run.step)
	nextB := b.Pos().Add(run.step)
	e.board.SetTilePosition(a.ID, nextA.X, nextA.Y)
	e.board.SetTilePosition(b.ID, nextB.X, nextB.Y)
	run.ticks++

	if e.board.OutOfBounds() {
		e.stopDisconnect(EndOutOfBounds)
	}
}

// ExpireDisconnect is the deadline timer for run seq. It stops that run if
// it is still active; stale deadlines from earlier runs are ignored.
func (e *Engine) ExpireDisconnect(seq uint64) {
	if e.run == nil || e.run.seq != seq {
		return
	}
	e.stopDisconnect(EndTimeout)
}

// CancelDisconnect stops the active run, if any.
func (e *Engine) CancelDisconnect() {
	e.stopDisconnect(EndCancelled)
}

// stopDisconnect ends the active run and clears the connection. Tiles stay
// where the last tick left them. Calling it with no active run is a no-op.
func (e *Engine) stopDisconnect(reason EndReason) {
	run := e.run
	if run == nil {
		return
	}
	e.run = nil
	if pair, ok := e.board.Connection(); ok && pair.Same(run.pair) {
		e.board.ClearConnection()
	}

	elapsed := e.clock().Sub(run.started)
	e.logger.Info("disconnect ended",
		"run", run.seq,
		"reason", string(reason),
		"ticks", run.ticks,
		"elapsed", elapsed,
	)
	e.emit(DisconnectEndedEvent{
		Run:     run.seq,
		Pair:    run.pair,
		Reason:  reason,
		Ticks:   run.ticks,
		Elapsed: elapsed,
	})
}
