package tui

import (
	"github.com/charmbracelet/bubbles/key"
)

// BoardKeyMap defines the key bindings for the board screen.
// Pointer input comes from the mouse; the keyboard drives everything else.
type BoardKeyMap struct {
	Disconnect key.Binding
	Cancel     key.Binding
	Theme      key.Binding
	Reset      key.Binding
	Screenshot key.Binding
	Back       key.Binding
	Help       key.Binding
	Quit       key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k BoardKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Disconnect, k.Reset, k.Help, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k BoardKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Disconnect, k.Cancel, k.Reset},
		{k.Theme, k.Screenshot},
		{k.Back, k.Help, k.Quit},
	}
}

// DefaultBoardKeyMap returns default key bindings.
func DefaultBoardKeyMap() BoardKeyMap {
	return BoardKeyMap{
		Disconnect: key.NewBinding(
			key.WithKeys("d", " "),
			key.WithHelp("d/space", "disconnect"),
		),
		Cancel: key.NewBinding(
			key.WithKeys("esc", "c"),
			key.WithHelp("esc/c", "stop disconnect"),
		),
		Theme: key.NewBinding(
			key.WithKeys("t"),
			key.WithHelp("t", "toggle theme"),
		),
		Reset: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "reset board"),
		),
		Screenshot: key.NewBinding(
			key.WithKeys("ctrl+s"),
			key.WithHelp("ctrl+s", "screenshot"),
		),
		Back: key.NewBinding(
			key.WithKeys("b"),
			key.WithHelp("b", "layouts"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "more keys"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}
