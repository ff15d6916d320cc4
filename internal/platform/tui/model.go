package tui

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-cubes/internal/board"
	"github.com/vovakirdan/tui-cubes/internal/config"
	"github.com/vovakirdan/tui-cubes/internal/core"
	"github.com/vovakirdan/tui-cubes/internal/storage"
)

// Session holds everything needed to put one board in front of one user.
type Session struct {
	Board  config.BoardConfig
	Layout string       // Layout name, recorded with the history
	Tiles  []board.Tile // Starting tiles, restored on reset
	Store  *storage.Store
	User   string
	Logger *log.Logger
	Screen core.RuntimeConfig

	// ScreenshotDir overrides ~/.cubes/screenshots.
	ScreenshotDir string

	// AllowBack enables the key that leaves the board for the layout menu.
	AllowBack bool

	// LastRun is the highest disconnect run number used by earlier boards
	// of this session. Timers they scheduled can still be in flight.
	LastRun uint64
}

// Model is the Bubble Tea model for a cube board.
type Model struct {
	session  Session
	engine   *board.Engine
	recorder *storage.Recorder
	view     boardView
	screen   *core.Screen
	colors   map[int]core.Color
	status   *statusLog
	theme    Theme
	keys     BoardKeyMap
	help     help.Model
	config   core.RuntimeConfig
	logger   *log.Logger
	quitting bool
	back     bool // Set when the user asks for the layout menu
}

// NewModel creates the board engine for a session and wraps it in a model.
// History recording is best-effort: a store that cannot start a session
// leaves the board running without it.
func NewModel(s Session) (Model, error) {
	logger := s.Logger
	if logger == nil {
		logger = discardLogger()
	}

	status := &statusLog{}
	opts := []board.Option{
		board.WithLogger(logger),
		board.WithObserver(status.observe),
		board.WithRunSeq(s.LastRun),
	}

	var recorder *storage.Recorder
	if s.Store != nil {
		rec, err := storage.NewRecorder(s.Store, s.Layout, s.User, logger)
		if err != nil {
			logger.Warn("history disabled", "error", err)
		} else {
			recorder = rec
			opts = append(opts, board.WithObserver(rec.Observe))
		}
	}

	engine, err := board.New(s.Board.Engine(), s.Tiles, opts...)
	if err != nil {
		return Model{}, fmt.Errorf("tui: cannot create board: %w", err)
	}

	cfg := s.Screen
	if cfg.ScreenW <= 0 || cfg.ScreenH <= 0 {
		cfg = core.DefaultConfig()
	}

	h := help.New()
	h.Width = cfg.ScreenW

	keys := DefaultBoardKeyMap()
	keys.Back.SetEnabled(s.AllowBack)

	m := Model{
		session:  s,
		engine:   engine,
		recorder: recorder,
		colors:   make(map[int]core.Color),
		status:   status,
		theme:    ThemeByName(s.Board.Render.Theme),
		keys:     keys,
		help:     h,
		config:   cfg,
		logger:   logger,
	}
	m.paintTiles()
	m.layout()
	return m, nil
}

func discardLogger() *log.Logger {
	return log.New(io.Discard)
}

// paintTiles assigns the starting colors in picker order.
func (m *Model) paintTiles() {
	clear(m.colors)
	for i, t := range m.engine.Tiles() {
		m.colors[t.ID] = core.TileColors[i%len(core.TileColors)]
	}
}

// layout sizes the screen buffer and recenters the board.
// Two rows below the board are reserved for status and help.
func (m *Model) layout() {
	m.view = newBoardView(m.session.Board.Render, m.engine.BoardSize(), m.config.ScreenW)
	w := max(m.config.ScreenW, m.view.cols+2)
	if m.screen == nil {
		m.screen = core.NewScreen(w, m.view.height())
	} else {
		m.screen.Resize(w, m.view.height())
	}
}

// Init initializes the model. The board is idle until the user acts.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		m.handlePointer(pointerEvent(msg))
		return m, nil

	case tea.WindowSizeMsg:
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
		m.help.Width = msg.Width
		m.layout()
		return m, nil

	case TickMsg:
		return m, m.handleTick(msg)

	case DeadlineMsg:
		m.engine.ExpireDisconnect(msg.Run)
		return m, nil
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		return m, tea.Quit

	case key.Matches(msg, m.keys.Back):
		// Leaving mid-run still records how the run ended
		m.engine.CancelDisconnect()
		m.back = true
		return m, nil

	case key.Matches(msg, m.keys.Disconnect):
		return m, m.startDisconnect()

	case key.Matches(msg, m.keys.Cancel):
		m.engine.CancelDisconnect()

	case key.Matches(msg, m.keys.Theme):
		m.theme = m.theme.Toggle()

	case key.Matches(msg, m.keys.Reset):
		m.reset()

	case key.Matches(msg, m.keys.Screenshot):
		m.saveScreenshot()

	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
	}

	return m, nil
}

// startDisconnect begins a run and schedules its ticks and its deadline.
func (m Model) startDisconnect() tea.Cmd {
	if !m.engine.RequestDisconnect() {
		return nil
	}
	run, _ := m.engine.DisconnectRun()
	cfg := m.engine.Config()
	return tea.Batch(
		tickCmd(run, cfg.TickInterval),
		deadlineCmd(run, cfg.Deadline),
	)
}

// handleTick advances the run that scheduled msg and keeps it ticking.
func (m Model) handleTick(msg TickMsg) tea.Cmd {
	run, ok := m.engine.DisconnectRun()
	if !ok || run != msg.Run {
		return nil
	}
	m.engine.Tick()
	if next, ok := m.engine.DisconnectRun(); ok && next == run {
		return tickCmd(run, m.engine.Config().TickInterval)
	}
	return nil
}

// pointerEvent converts a terminal mouse message to a pointer event.
func pointerEvent(msg tea.MouseMsg) core.PointerEvent {
	ev := core.PointerEvent{Col: msg.X, Row: msg.Y}

	switch msg.Action {
	case tea.MouseActionPress:
		ev.Kind = core.PointerPress
	case tea.MouseActionMotion:
		ev.Kind = core.PointerMotion
	case tea.MouseActionRelease:
		ev.Kind = core.PointerRelease
	}

	switch msg.Button {
	case tea.MouseButtonLeft:
		ev.Button = core.ButtonPrimary
	case tea.MouseButtonRight:
		ev.Button = core.ButtonSecondary
	}

	return ev
}

// handlePointer routes a pointer event to the engine.
// The primary button drags; the secondary button cycles a tile's color.
func (m *Model) handlePointer(ev core.PointerEvent) {
	p := m.view.pointAt(ev.Col, ev.Row)

	switch ev.Kind {
	case core.PointerPress:
		tile, ok := m.engine.TileAt(p)
		if !ok {
			return
		}
		switch ev.Button {
		case core.ButtonPrimary:
			m.engine.PointerDown(tile.ID, p)
		case core.ButtonSecondary:
			m.colors[tile.ID] = core.NextTileColor(m.colors[tile.ID])
		}

	case core.PointerMotion:
		m.engine.PointerMove(p)

	case core.PointerRelease:
		m.engine.PointerUp()
	}
}

// reset puts the starting tiles back and cancels any run.
func (m *Model) reset() {
	if err := m.engine.Reset(m.session.Tiles); err != nil {
		m.logger.Error("reset failed", "error", err)
		return
	}
	m.paintTiles()
	m.status.set("board reset")
}

// screenshotDir returns where screenshots are written.
func (m Model) screenshotDir() string {
	if m.session.ScreenshotDir != "" {
		return m.session.ScreenshotDir
	}
	return filepath.Join(os.Getenv("HOME"), ".cubes", "screenshots")
}

// saveScreenshot saves the current board to a text file.
func (m *Model) saveScreenshot() {
	m.view.draw(m.screen, m.engine, m.colors)

	dir := m.screenshotDir()
	//nolint:errcheck // Best-effort directory creation
	os.MkdirAll(dir, 0o755)

	layout := m.session.Layout
	if layout == "" {
		layout = "board"
	}
	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("%s_%s.txt", layout, timestamp))

	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		m.logger.Warn("screenshot failed", "path", path, "error", err)
		return
	}
	m.status.set("saved " + path)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.view.draw(m.screen, m.engine, m.colors)

	var b strings.Builder
	b.WriteString(RenderScreen(m.screen, m.theme))
	b.WriteString("\n")
	b.WriteString(m.statusLine())
	b.WriteString("\n")
	b.WriteString(m.theme.Help.Render(m.help.View(m.keys)))
	return b.String()
}

// statusLine describes the connection, the active run and the last event.
func (m Model) statusLine() string {
	field := func(label, value string) string {
		return m.theme.StatusLabel.Render(label+" ") + m.theme.StatusValue.Render(value)
	}

	parts := []string{field("layout", m.layoutName())}

	if pair, ok := m.engine.ActiveConnection(); ok {
		parts = append(parts, field("pair", fmt.Sprintf("%d+%d", pair.A, pair.B)))
	} else {
		parts = append(parts, field("pair", "none"))
	}
	if run, ok := m.engine.DisconnectRun(); ok {
		parts = append(parts, field("run", fmt.Sprintf("#%d", run)))
	}
	if msg := m.status.text(); msg != "" {
		parts = append(parts, m.theme.StatusBar.Render(msg))
	}

	return strings.Join(parts, m.theme.StatusLabel.Render("  "))
}

func (m Model) layoutName() string {
	if m.session.Layout == "" {
		return "custom"
	}
	return m.session.Layout
}

// BackToMenu returns true if the user asked for the layout menu.
func (m Model) BackToMenu() bool {
	return m.back
}

// IsQuitting returns true if the user asked to quit.
func (m Model) IsQuitting() bool {
	return m.quitting
}

// SessionID returns the history session id, or "" when history is off.
func (m Model) SessionID() string {
	if m.recorder == nil {
		return ""
	}
	return m.recorder.SessionID()
}

// statusLog keeps the most recent board event as a status message.
// It is shared by pointer between model copies and written by the engine.
type statusLog struct {
	last string
}

func (s *statusLog) observe(ev board.Event) {
	switch ev := ev.(type) {
	case board.ConnectedEvent:
		s.last = fmt.Sprintf("connected %d and %d", ev.Pair.A, ev.Pair.B)
	case board.MoveRejectedEvent:
		s.last = "pair would leave the board"
	case board.DisconnectStartedEvent:
		s.last = fmt.Sprintf("pulling %d and %d apart", ev.Pair.A, ev.Pair.B)
	case board.DisconnectEndedEvent:
		s.last = fmt.Sprintf("disconnected (%s after %d ticks, %s)",
			ev.Reason, ev.Ticks, ev.Elapsed.Round(time.Millisecond))
	}
}

func (s *statusLog) set(msg string) {
	s.last = msg
}

func (s *statusLog) text() string {
	return s.last
}

// Run starts the Bubble Tea program for a local session.
func Run(s Session) error {
	model, err := NewModel(s)
	if err != nil {
		return err
	}

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(), // Motion is reported while a button is held
	)

	_, err = p.Run()
	return err
}
