package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-cubes/internal/layouts"
)

// SessionModel manages the full flow: layout menu -> board -> menu.
// This is the top-level model for SSH sessions and `cubes menu`.
type SessionModel struct {
	base     Session
	menu     MenuModel
	board    *Model
	quitting bool
}

// NewSessionModel creates a session that starts at the layout menu.
// base supplies everything but the layout and tiles.
func NewSessionModel(base Session) SessionModel {
	base.AllowBack = true
	if base.Logger == nil {
		base.Logger = discardLogger()
	}
	return SessionModel{
		base: base,
		menu: newMenuFor(base),
	}
}

func newMenuFor(s Session) MenuModel {
	return NewMenuModel(s.Screen.ScreenW, s.Screen.ScreenH, len(s.Board.Tiles) > 0)
}

// Init initializes the session.
func (m SessionModel) Init() tea.Cmd {
	return m.menu.Init()
}

// Update handles messages for the session.
func (m SessionModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	// Track size globally so a board opened later starts at the right size
	if wsm, ok := msg.(tea.WindowSizeMsg); ok {
		m.base.Screen.ScreenW = wsm.Width
		m.base.Screen.ScreenH = wsm.Height
	}

	if m.board != nil {
		return m.updateBoard(msg)
	}
	return m.updateMenu(msg)
}

// updateMenu handles updates when in menu mode.
func (m SessionModel) updateMenu(msg tea.Msg) (tea.Model, tea.Cmd) {
	next, cmd := m.menu.Update(msg)
	if menuModel, ok := next.(MenuModel); ok {
		m.menu = menuModel
	}

	if m.menu.IsQuitting() {
		m.quitting = true
		return m, tea.Quit
	}

	if selected := m.menu.Selected(); selected != nil {
		board, err := m.openBoard(selected.LayoutID)
		if err != nil {
			m.base.Logger.Warn("cannot open board", "layout", selected.LayoutID, "error", err)
			m.menu = m.menu.withNotice(err.Error())
			return m, nil
		}
		m.board = &board
		return m, m.board.Init()
	}

	return m, cmd
}

// openBoard builds the board model for a menu choice.
func (m SessionModel) openBoard(layoutID string) (Model, error) {
	s := m.base
	if layoutID == customLayoutID {
		s.Layout = ""
		s.Tiles = s.Board.ExplicitTiles()
	} else {
		tiles, err := layouts.ForConfig(s.Board, layoutID)
		if err != nil {
			return Model{}, err
		}
		s.Layout = layoutID
		s.Tiles = tiles
	}
	return NewModel(s)
}

// updateBoard handles updates when a board is open.
func (m SessionModel) updateBoard(msg tea.Msg) (tea.Model, tea.Cmd) {
	next, cmd := m.board.Update(msg)
	if boardModel, ok := next.(Model); ok {
		m.board = &boardModel
	}

	if m.board.BackToMenu() {
		m.base.LastRun = m.board.engine.LastRun()
		m.board = nil
		m.menu = newMenuFor(m.base)
		return m, m.menu.Init()
	}

	if m.board.IsQuitting() {
		m.quitting = true
		return m, tea.Quit
	}

	return m, cmd
}

// View renders the current view.
func (m SessionModel) View() string {
	if m.quitting {
		return ""
	}
	if m.board != nil {
		return m.board.View()
	}
	return m.menu.View()
}

// RunMenu starts a local session at the layout menu.
func RunMenu(base Session) error {
	p := tea.NewProgram(
		NewSessionModel(base),
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	)

	_, err := p.Run()
	return err
}
