package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"

	"github.com/vovakirdan/tui-cubes/internal/storage"
)

// History screen constants
const (
	maxHistoryEvents = 200 // Max events to load
	historyChrome    = 9   // Rows used by title, tabs, summary, border and help
)

// historyFilter selects which event kinds the table shows.
type historyFilter struct {
	title string
	kind  string // Empty shows every kind
}

var historyFilters = []historyFilter{
	{title: "All", kind: ""},
	{title: "Connections", kind: storage.KindConnected},
	{title: "Disconnects", kind: storage.KindDisconnect},
}

// HistoryKeyMap defines the key bindings for the history screen.
type HistoryKeyMap struct {
	Up         key.Binding
	Down       key.Binding
	NextFilter key.Binding
	PrevFilter key.Binding
	Refresh    key.Binding
	Quit       key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k HistoryKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.NextFilter, k.Refresh, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k HistoryKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.NextFilter, k.PrevFilter},
		{k.Refresh, k.Quit},
	}
}

// DefaultHistoryKeyMap returns default key bindings.
func DefaultHistoryKeyMap() HistoryKeyMap {
	return HistoryKeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("up/k", "scroll up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("down/j", "scroll down"),
		),
		NextFilter: key.NewBinding(
			key.WithKeys("tab", "right", "l"),
			key.WithHelp("tab", "next filter"),
		),
		PrevFilter: key.NewBinding(
			key.WithKeys("shift+tab", "left", "h"),
			key.WithHelp("S-tab", "prev filter"),
		),
		Refresh: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "refresh"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "esc", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// HistoryModel is the Bubble Tea model for browsing interaction history.
type HistoryModel struct {
	store    *storage.Store
	events   []storage.EventEntry
	reasons  []storage.ReasonCount
	filter   int
	loadErr  error
	table    table.Model
	help     help.Model
	keys     HistoryKeyMap
	now      func() time.Time
	width    int
	height   int
	quitting bool
}

// NewHistoryModel creates a history model and loads the newest events.
func NewHistoryModel(store *storage.Store, width, height int) HistoryModel {
	h := help.New()
	h.ShowAll = false
	h.Width = width

	m := HistoryModel{
		store:  store,
		keys:   DefaultHistoryKeyMap(),
		help:   h,
		now:    time.Now,
		width:  width,
		height: height,
	}
	m.table = m.createTable()
	m.load()
	return m
}

// createTable creates a table sized for the current window.
func (m *HistoryModel) createTable() table.Model {
	columns := []table.Column{
		{Title: "When", Width: 16},
		{Title: "Layout", Width: 8},
		{Title: "User", Width: 10},
		{Title: "Event", Width: 11},
		{Title: "Tiles", Width: 7},
		{Title: "Result", Width: 26},
	}

	// Give spare width to the result column
	used := 0
	for _, c := range columns {
		used += c.Width + 2
	}
	if spare := m.width - 4 - used; spare > 0 {
		columns[5].Width += min(spare, 20)
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(max(3, m.height-historyChrome)),
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Bold(false)
	t.SetStyles(s)

	return t
}

// load reads events and the disconnect summary from the store.
func (m *HistoryModel) load() {
	m.events, m.reasons, m.loadErr = nil, nil, nil
	if m.store == nil {
		m.updateTableRows()
		return
	}

	events, err := m.store.RecentEvents(maxHistoryEvents)
	if err != nil {
		m.loadErr = err
	}
	m.events = events

	reasons, err := m.store.DisconnectReasons()
	if err != nil && m.loadErr == nil {
		m.loadErr = err
	}
	m.reasons = reasons

	m.updateTableRows()
}

// visible returns the events matching the current filter.
func (m HistoryModel) visible() []storage.EventEntry {
	kind := historyFilters[m.filter].kind
	if kind == "" {
		return m.events
	}
	out := make([]storage.EventEntry, 0, len(m.events))
	for _, e := range m.events {
		if e.Kind == kind {
			out = append(out, e)
		}
	}
	return out
}

// updateTableRows refills the table from the filtered events.
func (m *HistoryModel) updateTableRows() {
	now := m.now()
	events := m.visible()
	rows := make([]table.Row, len(events))
	for i, e := range events {
		rows[i] = historyRow(e, now)
	}
	m.table.SetRows(rows)
	m.table.GotoTop()
}

// historyRow formats one event for the table.
func historyRow(e storage.EventEntry, now time.Time) table.Row {
	when := "-"
	if !e.CreatedAt.IsZero() {
		when = humanize.RelTime(e.CreatedAt, now, "ago", "from now")
	}

	user := e.User
	if user == "" {
		user = "local"
	}

	result := "-"
	if e.Kind == storage.KindDisconnect {
		elapsed := time.Duration(e.ElapsedMS) * time.Millisecond
		result = fmt.Sprintf("%s, %s ticks, %s",
			e.Reason, humanize.Comma(int64(e.Ticks)), elapsed)
	}

	return table.Row{
		when,
		e.Layout,
		user,
		e.Kind,
		fmt.Sprintf("%d+%d", e.TileA, e.TileB),
		result,
	}
}

// Init initializes the history model.
func (m HistoryModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the history screen.
func (m HistoryModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit

		case key.Matches(msg, m.keys.NextFilter):
			m.filter = (m.filter + 1) % len(historyFilters)
			m.updateTableRows()
			return m, nil

		case key.Matches(msg, m.keys.PrevFilter):
			m.filter = (m.filter + len(historyFilters) - 1) % len(historyFilters)
			m.updateTableRows()
			return m, nil

		case key.Matches(msg, m.keys.Refresh):
			m.load()
			return m, nil
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.table = m.createTable()
		m.updateTableRows()
		m.help.Width = msg.Width
		return m, nil
	}

	// Scrolling and everything else goes to the table
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// View renders the history screen.
func (m HistoryModel) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder

	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("229"))
	b.WriteString(titleStyle.Render(centerText("BOARD HISTORY", m.width)))
	b.WriteString("\n\n")

	b.WriteString(centerText(m.renderTabs(), m.width))
	b.WriteString("\n")
	b.WriteString(centerText(m.renderSummary(), m.width))
	b.WriteString("\n")

	tableStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240")).
		Padding(0, 1)
	b.WriteString(tableStyle.Render(m.renderTableContent()))

	b.WriteString("\n")
	helpStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("241"))
	b.WriteString(helpStyle.Render(m.help.View(m.keys)))

	return b.String()
}

// renderTabs renders the filter tabs.
func (m HistoryModel) renderTabs() string {
	tabStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("241"))
	activeTabStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Padding(0, 1)

	tabs := make([]string, len(historyFilters))
	for i, f := range historyFilters {
		if i == m.filter {
			tabs[i] = activeTabStyle.Render(f.title)
		} else {
			tabs[i] = tabStyle.Render(" " + f.title + " ")
		}
	}
	return strings.Join(tabs, " ")
}

// renderSummary renders how disconnect runs ended so far.
func (m HistoryModel) renderSummary() string {
	style := lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	if len(m.reasons) == 0 {
		return style.Render("no disconnects yet")
	}
	parts := make([]string, len(m.reasons))
	for i, r := range m.reasons {
		parts[i] = fmt.Sprintf("%s %s", r.Reason, humanize.Comma(int64(r.Count)))
	}
	return style.Render("disconnects: " + strings.Join(parts, ", "))
}

// renderTableContent renders the table or an empty message.
func (m HistoryModel) renderTableContent() string {
	emptyStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("241")).
		Italic(true).
		Padding(2, 4)

	switch {
	case m.loadErr != nil:
		return emptyStyle.Render("Could not read history:\n" + m.loadErr.Error())
	case m.store == nil:
		return emptyStyle.Render("History is not available.")
	case len(m.visible()) == 0:
		return emptyStyle.Render("Nothing recorded yet.\nConnect two cubes to start a history!")
	}

	return m.table.View()
}

// centerText pads text so it is centered within width.
func centerText(text string, width int) string {
	w := lipgloss.Width(text)
	if w >= width {
		return text
	}
	return strings.Repeat(" ", (width-w)/2) + text
}

// RunHistory runs the interactive history screen.
func RunHistory(store *storage.Store, width, height int) error {
	p := tea.NewProgram(
		NewHistoryModel(store, width, height),
		tea.WithAltScreen(),
	)
	_, err := p.Run()
	return err
}
