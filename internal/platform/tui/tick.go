// Package tui provides the Bubble Tea integration for the cube board.
// It handles the terminal UI loop, pointer mapping, and disconnect timing.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// TickMsg is sent to advance a disconnect run by one step.
// Run identifies the run that scheduled it; ticks for other runs are dropped.
type TickMsg struct {
	Run uint64
	At  time.Time
}

// DeadlineMsg is sent once per disconnect run when its deadline passes.
type DeadlineMsg struct {
	Run uint64
}

// tickCmd returns a Bubble Tea command that sends one tick for run after interval.
func tickCmd(run uint64, interval time.Duration) tea.Cmd {
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg{Run: run, At: t}
	})
}

// deadlineCmd returns a command that fires the deadline for run after d.
func deadlineCmd(run uint64, d time.Duration) tea.Cmd {
	return tea.Tick(d, func(time.Time) tea.Msg {
		return DeadlineMsg{Run: run}
	})
}
