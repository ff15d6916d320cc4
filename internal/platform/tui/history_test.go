package tui

import (
	"path/filepath"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-cubes/internal/core"
	"github.com/vovakirdan/tui-cubes/internal/storage"
)

func TestHistoryRow(t *testing.T) {
	now := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)

	conn := historyRow(storage.EventEntry{
		Layout:    "pair",
		Kind:      storage.KindConnected,
		TileA:     1,
		TileB:     2,
		CreatedAt: now.Add(-3 * time.Minute),
	}, now)
	if !strings.Contains(conn[0], "minutes ago") {
		t.Errorf("When = %q", conn[0])
	}
	if conn[2] != "local" || conn[4] != "1+2" || conn[5] != "-" {
		t.Errorf("connection row = %v", conn)
	}

	disc := historyRow(storage.EventEntry{
		Layout:    "grid",
		User:      "alice",
		Kind:      storage.KindDisconnect,
		TileA:     3,
		TileB:     4,
		Reason:    "timeout",
		Ticks:     62,
		ElapsedMS: 1008,
	}, now)
	if disc[0] != "-" {
		t.Errorf("When without a timestamp = %q", disc[0])
	}
	if disc[2] != "alice" || disc[5] != "timeout, 62 ticks, 1.008s" {
		t.Errorf("disconnect row = %v", disc)
	}
}

func TestHistoryModelFilters(t *testing.T) {
	store, err := storage.Open(filepath.Join(t.TempDir(), "history.db"))
	if err != nil {
		t.Fatalf("storage.Open() failed: %v", err)
	}
	defer store.Close()

	session, _ := store.StartSession("pair", "")
	store.RecordConnection(session, 1, 2)
	store.RecordDisconnect(session, 1, 2, "out_of_bounds", 11, 176*time.Millisecond)
	store.RecordConnection(session, 1, 2)

	m := NewHistoryModel(store, 100, 30)
	if len(m.table.Rows()) != 3 {
		t.Fatalf("All shows %d rows, expected 3", len(m.table.Rows()))
	}
	if len(m.reasons) != 1 || m.reasons[0].Count != 1 {
		t.Errorf("reasons = %+v", m.reasons)
	}

	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyTab})
	m = next.(HistoryModel)
	if len(m.table.Rows()) != 2 {
		t.Errorf("Connections shows %d rows, expected 2", len(m.table.Rows()))
	}

	next, _ = m.Update(tea.KeyMsg{Type: tea.KeyTab})
	m = next.(HistoryModel)
	rows := m.table.Rows()
	if len(rows) != 1 || rows[0][3] != storage.KindDisconnect {
		t.Errorf("Disconnects rows = %v", rows)
	}

	next, _ = m.Update(tea.KeyMsg{Type: tea.KeyShiftTab})
	m = next.(HistoryModel)
	if m.filter != 1 {
		t.Errorf("filter = %d after shift+tab, expected 1", m.filter)
	}

	if !strings.Contains(m.View(), "BOARD HISTORY") {
		t.Error("View() should show the title")
	}
}

func TestHistoryModelWithoutStore(t *testing.T) {
	m := NewHistoryModel(nil, 80, 24)
	if len(m.table.Rows()) != 0 {
		t.Error("no store should mean no rows")
	}
	if !strings.Contains(m.View(), "not available") {
		t.Error("View() should explain that history is unavailable")
	}

	next, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("q")})
	if cmd == nil || next.(HistoryModel).View() != "" {
		t.Error("q should quit")
	}
}

func TestLineCells(t *testing.T) {
	tests := []struct {
		name     string
		a, b     core.Point
		expected []core.Point
	}{
		{"single", core.Pt(2, 2), core.Pt(2, 2), []core.Point{core.Pt(2, 2)}},
		{"horizontal", core.Pt(0, 0), core.Pt(3, 0), []core.Point{core.Pt(0, 0), core.Pt(1, 0), core.Pt(2, 0), core.Pt(3, 0)}},
		{"diagonal", core.Pt(0, 0), core.Pt(2, 2), []core.Point{core.Pt(0, 0), core.Pt(1, 1), core.Pt(2, 2)}},
		{"backwards", core.Pt(0, 2), core.Pt(0, 0), []core.Point{core.Pt(0, 2), core.Pt(0, 1), core.Pt(0, 0)}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := lineCells(tc.a, tc.b)
			if len(got) != len(tc.expected) {
				t.Fatalf("lineCells() = %v, expected %v", got, tc.expected)
			}
			for i := range got {
				if got[i] != tc.expected[i] {
					t.Errorf("lineCells()[%d] = %v, expected %v", i, got[i], tc.expected[i])
				}
			}
		})
	}
}

func TestClipRect(t *testing.T) {
	bounds := core.NewRect(0, 0, 40, 16)

	tests := []struct {
		name     string
		r        core.Rect
		expected core.Rect
	}{
		{"inside", core.NewRect(2, 2, 5, 2), core.NewRect(2, 2, 5, 2)},
		{"past top-left", core.NewRect(-1, -1, 5, 2), core.NewRect(0, 0, 4, 1)},
		{"past bottom-right", core.NewRect(38, 15, 5, 2), core.NewRect(38, 15, 2, 1)},
		{"outside", core.NewRect(50, 0, 5, 2), core.Rect{X: 50, Y: 0}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := clipRect(tc.r, bounds); got != tc.expected {
				t.Errorf("clipRect() = %+v, expected %+v", got, tc.expected)
			}
		})
	}
}
