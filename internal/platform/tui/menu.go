package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-cubes/internal/registry"
)

// customLayoutID names the tile list from the config file in the menu.
const customLayoutID = "custom"

// MenuItem represents a selectable layout in the menu.
type MenuItem struct {
	LayoutID string
	Title    string
}

// MenuKeyMap defines the key bindings for the layout menu.
type MenuKeyMap struct {
	Up     key.Binding
	Down   key.Binding
	Select key.Binding
	Quit   key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k MenuKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Select, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k MenuKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp()}
}

// DefaultMenuKeyMap returns default key bindings.
func DefaultMenuKeyMap() MenuKeyMap {
	return MenuKeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k", "w"),
			key.WithHelp("up/k", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j", "s"),
			key.WithHelp("down/j", "down"),
		),
		Select: key.NewBinding(
			key.WithKeys("enter", " "),
			key.WithHelp("enter", "open board"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// MenuModel is the Bubble Tea model for the layout picker.
type MenuModel struct {
	items    []MenuItem
	cursor   int
	width    int
	height   int
	keys     MenuKeyMap
	help     help.Model
	notice   string // Shown under the list, e.g. why a board failed to open
	quitting bool
	selected *MenuItem // Set when user picks a layout
}

// NewMenuModel creates a menu of registered layouts. When custom is true the
// config's own tile list is offered first.
func NewMenuModel(width, height int, custom bool) MenuModel {
	layouts := registry.List()
	items := make([]MenuItem, 0, len(layouts)+1)
	if custom {
		items = append(items, MenuItem{LayoutID: customLayoutID, Title: "Tiles from the config file"})
	}
	for _, l := range layouts {
		items = append(items, MenuItem{LayoutID: l.ID, Title: l.Title})
	}

	h := help.New()
	h.Width = width

	return MenuModel{
		items:  items,
		width:  width,
		height: height,
		keys:   DefaultMenuKeyMap(),
		help:   h,
	}
}

// Init initializes the menu model.
func (m MenuModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the menu.
func (m MenuModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil
	}

	return m, nil
}

// handleKey processes keyboard input for menu navigation.
func (m MenuModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		return m, tea.Quit

	case key.Matches(msg, m.keys.Up):
		if m.cursor > 0 {
			m.cursor--
		}

	case key.Matches(msg, m.keys.Down):
		if m.cursor < len(m.items)-1 {
			m.cursor++
		}

	case key.Matches(msg, m.keys.Select):
		if len(m.items) > 0 {
			selected := m.items[m.cursor]
			m.selected = &selected
		}
	}

	return m, nil
}

// View renders the menu.
func (m MenuModel) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder

	titleStyle := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229"))
	activeStyle := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("208"))
	mutedStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("241"))

	b.WriteString("\n")
	b.WriteString(centerText(titleStyle.Render("  C U B E S  "), m.width))
	b.WriteString("\n\n")
	b.WriteString(centerText("Pick a starting layout", m.width))
	b.WriteString("\n\n")

	for i, item := range m.items {
		line := fmt.Sprintf("  %-8s %s", item.LayoutID, mutedStyle.Render(item.Title))
		if i == m.cursor {
			line = activeStyle.Render("> "+fmt.Sprintf("%-8s", item.LayoutID)) + " " + item.Title
		}
		b.WriteString(centerText(line, m.width))
		b.WriteString("\n")
	}

	if m.notice != "" {
		b.WriteString("\n")
		b.WriteString(centerText(mutedStyle.Render(m.notice), m.width))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(centerText(mutedStyle.Render(m.help.View(m.keys)), m.width))
	b.WriteString("\n")

	return b.String()
}

// Selected returns the selected menu item, or nil if none selected.
func (m MenuModel) Selected() *MenuItem {
	return m.selected
}

// IsQuitting returns true if user requested to quit.
func (m MenuModel) IsQuitting() bool {
	return m.quitting
}

// withNotice clears the selection and shows msg under the list.
func (m MenuModel) withNotice(msg string) MenuModel {
	m.selected = nil
	m.notice = msg
	return m
}
