package board

import (
	"errors"
	"math/rand"
	"testing"
	"time"

	"github.com/vovakirdan/tui-cubes/internal/core"
)

func TestDisconnectStopsOutOfBounds(t *testing.T) {
	e, clock, events := newTestEngine(t, testConfig(800, 50), []Tile{
		{ID: 1, X: 0, Y: 0},
		{ID: 2, X: 60, Y: 60},
	})
	connectPair(t, e, core.Pt(0, 0), core.Pt(20, 20))

	if !e.RequestDisconnect() {
		t.Fatal("RequestDisconnect() refused")
	}
	runDisconnect(e, clock, 1000)

	ended := events.ended()
	if len(ended) != 1 {
		t.Fatalf("expected 1 DisconnectEndedEvent, got %d", len(ended))
	}
	if ended[0].Reason != EndOutOfBounds {
		t.Errorf("Reason = %s, expected %s", ended[0].Reason, EndOutOfBounds)
	}
	if ended[0].Ticks != 11 {
		t.Errorf("Ticks = %d, expected 11", ended[0].Ticks)
	}

	// No snap-back: the tile stays where the last tick put it.
	if got := tileAt(t, e, 1); got != core.Pt(-2, -2) {
		t.Errorf("tile 1 at %v, expected (-2, -2)", got)
	}
	if got := tileAt(t, e, 2); got != core.Pt(82, 82) {
		t.Errorf("tile 2 at %v, expected (82, 82)", got)
	}
	if _, ok := e.ActiveConnection(); ok {
		t.Error("connection should be cleared")
	}
}

func TestDisconnectRequiresConnection(t *testing.T) {
	e, _, events := newTestEngine(t, testConfig(800, 50), []Tile{{ID: 1}, {ID: 2, X: 300}})

	if e.RequestDisconnect() {
		t.Error("RequestDisconnect() without a pair should be refused")
	}
	if e.Disconnecting() {
		t.Error("Disconnecting() should be false")
	}
	if len(events.events) != 0 {
		t.Errorf("expected no events, got %d", len(events.events))
	}
}

func TestDisconnectIdempotent(t *testing.T) {
	e, clock, events := newTestEngine(t, testConfig(800, 50), []Tile{
		{ID: 1, X: 0, Y: 0},
		{ID: 2, X: 300, Y: 300},
	})
	connectPair(t, e, core.Pt(0, 0), core.Pt(300, 300))

	if !e.RequestDisconnect() {
		t.Fatal("first RequestDisconnect() refused")
	}
	seq, _ := e.DisconnectRun()
	if e.RequestDisconnect() {
		t.Error("second RequestDisconnect() should be a no-op")
	}
	if again, _ := e.DisconnectRun(); again != seq {
		t.Errorf("run changed from %d to %d", seq, again)
	}

	started := 0
	for _, ev := range events.events {
		if _, ok := ev.(DisconnectStartedEvent); ok {
			started++
		}
	}
	if started != 1 {
		t.Errorf("expected 1 DisconnectStartedEvent, got %d", started)
	}

	// One tick moves each tile by exactly one step, not two.
	clock.Advance(16 * time.Millisecond)
	e.Tick()
	if got := tileAt(t, e, 1); got != core.Pt(298, 298) {
		t.Errorf("tile 1 at %v, expected (298, 298)", got)
	}
}

func TestDisconnectRefusesDrag(t *testing.T) {
	e, _, _ := newTestEngine(t, testConfig(800, 50), []Tile{
		{ID: 1, X: 0, Y: 0},
		{ID: 2, X: 300, Y: 300},
		{ID: 3, X: 600, Y: 600},
	})
	connectPair(t, e, core.Pt(0, 0), core.Pt(300, 300))

	// The drag that formed the pair is still held; disconnect ends it.
	e.RequestDisconnect()
	if _, ok := e.Dragging(); ok {
		t.Error("RequestDisconnect() should end the active drag")
	}

	if e.PointerDown(3, core.Pt(600, 600)) {
		t.Error("PointerDown during a disconnect run should be refused")
	}
	if e.PointerDown(1, core.Pt(300, 300)) {
		t.Error("PointerDown on a pair member during a run should be refused")
	}
}

func TestDisconnectDeadline(t *testing.T) {
	e, clock, events := newTestEngine(t, testConfig(800, 50), []Tile{
		{ID: 1, X: 0, Y: 0},
		{ID: 2, X: 300, Y: 300},
	})
	connectPair(t, e, core.Pt(0, 0), core.Pt(300, 300))
	e.RequestDisconnect()

	// A tick delivered late, at the deadline, stops without moving.
	clock.Advance(time.Second)
	e.Tick()

	ended := events.ended()
	if len(ended) != 1 || ended[0].Reason != EndTimeout || ended[0].Ticks != 0 {
		t.Fatalf("ended = %+v, expected one timeout with 0 ticks", ended)
	}
	if got := tileAt(t, e, 1); got != core.Pt(300, 300) {
		t.Errorf("tile 1 moved to %v", got)
	}

	// Ticks after the run are no-ops.
	e.Tick()
	if got := tileAt(t, e, 1); got != core.Pt(300, 300) {
		t.Errorf("tile 1 moved to %v after the run", got)
	}
}

func TestExpireDisconnect(t *testing.T) {
	e, clock, events := newTestEngine(t, testConfig(800, 50), []Tile{
		{ID: 1, X: 0, Y: 0},
		{ID: 2, X: 300, Y: 300},
	})
	connectPair(t, e, core.Pt(0, 0), core.Pt(300, 300))
	e.RequestDisconnect()
	seq, ok := e.DisconnectRun()
	if !ok {
		t.Fatal("DisconnectRun() should report the active run")
	}

	clock.Advance(16 * time.Millisecond)
	e.Tick()

	// A stale deadline from another run is ignored.
	e.ExpireDisconnect(seq + 1)
	if !e.Disconnecting() {
		t.Fatal("stale deadline stopped the run")
	}

	e.ExpireDisconnect(seq)
	e.ExpireDisconnect(seq)
	e.CancelDisconnect()

	ended := events.ended()
	if len(ended) != 1 {
		t.Fatalf("expected exactly 1 DisconnectEndedEvent, got %d", len(ended))
	}
	if ended[0].Reason != EndTimeout || ended[0].Run != seq || ended[0].Ticks != 1 {
		t.Errorf("ended = %+v", ended[0])
	}
	if _, ok := e.ActiveConnection(); ok {
		t.Error("connection should be cleared")
	}
}

func TestCancelDisconnect(t *testing.T) {
	e, _, events := newTestEngine(t, testConfig(800, 50), []Tile{
		{ID: 1, X: 0, Y: 0},
		{ID: 2, X: 300, Y: 300},
	})

	e.CancelDisconnect()
	if len(events.ended()) != 0 {
		t.Fatal("CancelDisconnect() with no run should emit nothing")
	}

	connectPair(t, e, core.Pt(0, 0), core.Pt(300, 300))
	e.RequestDisconnect()
	e.CancelDisconnect()

	ended := events.ended()
	if len(ended) != 1 || ended[0].Reason != EndCancelled {
		t.Fatalf("ended = %+v, expected one cancelled run", ended)
	}

	// The pair can be formed and separated again.
	e.PointerDown(1, core.Pt(300, 300))
	e.PointerMove(core.Pt(310, 310))
	if _, ok := e.ActiveConnection(); !ok {
		t.Fatal("tiles should reconnect after a cancelled run")
	}
	if !e.RequestDisconnect() {
		t.Error("a new run should start after the previous one ended")
	}
	if seq, _ := e.DisconnectRun(); seq != 2 {
		t.Errorf("run seq = %d, expected 2", seq)
	}
}

func TestDisconnectAlwaysTerminates(t *testing.T) {
	rng := rand.New(rand.NewSource(7))

	for i := 0; i < 50; i++ {
		x := rng.Intn(700)
		y := rng.Intn(700)
		e, clock, events := newTestEngine(t, testConfig(800, 50), []Tile{
			{ID: 1, X: 0, Y: 0},
			{ID: 2, X: x, Y: y},
		})

		e.PointerDown(1, core.Pt(0, 0))
		e.PointerMove(core.Pt(x+1, y+1))
		if _, ok := e.ActiveConnection(); !ok {
			t.Fatalf("case %d: pair did not form at (%d, %d)", i, x, y)
		}

		start := clock.Now()
		e.RequestDisconnect()
		runDisconnect(e, clock, 10000)

		if _, ok := e.ActiveConnection(); ok {
			t.Fatalf("case %d: connection survived the run", i)
		}
		if clock.Now().Sub(start) > e.Config().Deadline+e.Config().TickInterval {
			t.Fatalf("case %d: run outlived the deadline", i)
		}
		if len(events.ended()) != 1 {
			t.Fatalf("case %d: expected one end event, got %d", i, len(events.ended()))
		}
	}
}

func TestLoneTileBoundsInvariant(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	e, _, _ := newTestEngine(t, testConfig(800, 50), []Tile{{ID: 1, X: 375, Y: 375}})

	e.PointerDown(1, core.Pt(400, 400))
	for i := 0; i < 2000; i++ {
		e.PointerMove(core.Pt(rng.Intn(2000)-600, rng.Intn(2000)-600))
		p := tileAt(t, e, 1)
		if p.X < 0 || p.X > 750 || p.Y < 0 || p.Y > 750 {
			t.Fatalf("sample %d: tile at %v outside [0, 750]", i, p)
		}
	}
}

func TestRigidCouplingProperty(t *testing.T) {
	rng := rand.New(rand.NewSource(99))
	e, _, _ := newTestEngine(t, testConfig(800, 50), []Tile{
		{ID: 1, X: 300, Y: 300},
		{ID: 2, X: 400, Y: 300},
	})
	connectPair(t, e, core.Pt(300, 300), core.Pt(380, 300))

	for i := 0; i < 2000; i++ {
		before1 := tileAt(t, e, 1)
		before2 := tileAt(t, e, 2)

		e.PointerMove(core.Pt(rng.Intn(1200)-200, rng.Intn(1200)-200))

		after1 := tileAt(t, e, 1)
		after2 := tileAt(t, e, 2)
		if after1.Sub(before1) != after2.Sub(before2) {
			t.Fatalf("sample %d: deltas differ: %v vs %v", i, after1.Sub(before1), after2.Sub(before2))
		}
		bounds := core.CombinedBounds(after1, after2, 50)
		if !bounds.Inside(core.NewRect(0, 0, 800, 800)) {
			t.Fatalf("sample %d: pair bounds %+v left the board", i, bounds)
		}
	}
}

func TestResetCancelsRunAndKeepsSequence(t *testing.T) {
	e, _, events := newTestEngine(t, testConfig(800, 100), []Tile{
		{ID: 1, X: 0, Y: 0},
		{ID: 2, X: 300, Y: 300},
	})
	connectPair(t, e, core.Pt(10, 10), core.Pt(310, 310))

	if !e.RequestDisconnect() {
		t.Fatal("RequestDisconnect() should start a run")
	}
	stale, _ := e.DisconnectRun()

	if err := e.Reset([]Tile{{ID: 1, X: 0, Y: 0}, {ID: 2, X: 300, Y: 300}}); err != nil {
		t.Fatalf("Reset() failed: %v", err)
	}
	if e.Disconnecting() {
		t.Error("Reset() should cancel the active run")
	}
	if _, ok := e.ActiveConnection(); ok {
		t.Error("Reset() should drop the connection")
	}
	if ended := events.ended(); len(ended) != 1 || ended[0].Reason != EndCancelled {
		t.Errorf("ended events = %+v", ended)
	}

	connectPair(t, e, core.Pt(10, 10), core.Pt(310, 310))
	e.RequestDisconnect()
	run, _ := e.DisconnectRun()
	if run == stale {
		t.Fatalf("run number %d reused after Reset()", run)
	}

	// A deadline scheduled before the reset must not end the new run.
	e.ExpireDisconnect(stale)
	if !e.Disconnecting() {
		t.Error("stale deadline stopped the new run")
	}
}

func TestResetRejectsInvalidTiles(t *testing.T) {
	e, _, _ := newTestEngine(t, testConfig(800, 100), []Tile{{ID: 1, X: 0, Y: 0}})

	err := e.Reset([]Tile{{ID: 1, X: 750, Y: 0}})
	if !errors.Is(err, ErrInvalidLayout) {
		t.Fatalf("Reset() error = %v, expected ErrInvalidLayout", err)
	}
	if got := tileAt(t, e, 1); got != core.Pt(0, 0) {
		t.Errorf("tile moved to %v after failed Reset()", got)
	}
}

func TestWithRunSeqContinuesNumbering(t *testing.T) {
	tiles := []Tile{{ID: 1, X: 0, Y: 0}, {ID: 2, X: 300, Y: 300}}
	e, err := New(testConfig(800, 100), tiles, WithRunSeq(7))
	if err != nil {
		t.Fatalf("New() failed: %v", err)
	}
	if e.LastRun() != 7 {
		t.Errorf("LastRun() = %d before any run, expected 7", e.LastRun())
	}

	connectPair(t, e, core.Pt(10, 10), core.Pt(310, 310))
	e.RequestDisconnect()
	run, ok := e.DisconnectRun()
	if !ok || run != 8 {
		t.Fatalf("DisconnectRun() = %d, %v; expected 8", run, ok)
	}

	// Deadlines from runs numbered by an earlier engine are stale.
	e.ExpireDisconnect(1)
	if !e.Disconnecting() {
		t.Error("deadline of an earlier engine's run stopped the new run")
	}

	e.CancelDisconnect()
	if e.LastRun() != 8 {
		t.Errorf("LastRun() = %d after the run ended, expected 8", e.LastRun())
	}
}
