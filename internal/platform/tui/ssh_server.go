package tui

import (
	"context"
	"errors"
	"fmt"
	"net"
	"os"
	"path/filepath"
	"sync/atomic"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
	"github.com/charmbracelet/ssh"
	"github.com/charmbracelet/wish"
	"github.com/charmbracelet/wish/bubbletea"

	"github.com/vovakirdan/tui-cubes/internal/board"
	"github.com/vovakirdan/tui-cubes/internal/config"
	"github.com/vovakirdan/tui-cubes/internal/core"
	"github.com/vovakirdan/tui-cubes/internal/storage"
)

// SSHServerConfig holds configuration for the SSH server.
type SSHServerConfig struct {
	// Address is the host:port to listen on (e.g., ":23234").
	Address string

	// HostKeyPath is the path to the host key file.
	// If empty, a key will be auto-generated at ~/.cubes/host_key.
	HostKeyPath string

	// DBPath is the path to the history database.
	DBPath string

	// IdleTimeout is how long to wait before closing idle connections.
	IdleTimeout time.Duration

	// Board is the config every session uses. With Tiles set every session
	// opens that board directly; otherwise sessions start at the layout menu.
	Board  config.BoardConfig
	Layout string
	Tiles  []board.Tile

	// Logger receives server and board logs. Defaults to stderr.
	Logger *log.Logger
}

// DefaultSSHServerConfig returns a config with sensible defaults.
func DefaultSSHServerConfig() SSHServerConfig {
	return SSHServerConfig{
		Address:     ":23234",
		DBPath:      "~/.cubes/history.db",
		IdleTimeout: 30 * time.Minute,
		Board:       config.DefaultBoardConfig(),
	}
}

// SSHServer serves one independent board per SSH session.
type SSHServer struct {
	config SSHServerConfig
	server *ssh.Server
	store  *storage.Store
	logger *log.Logger
	active atomic.Int64 // Sessions currently connected
}

// NewSSHServer creates a new SSH server with the given configuration.
func NewSSHServer(cfg SSHServerConfig) (*SSHServer, error) {
	logger := cfg.Logger
	if logger == nil {
		logger = log.NewWithOptions(os.Stderr, log.Options{
			ReportTimestamp: true,
			Prefix:          "cubes-ssh",
		})
	}

	// Boards run without history when the database is unavailable
	store, err := storage.Open(cfg.DBPath)
	if err != nil {
		logger.Warn("could not open history database", "path", cfg.DBPath, "error", err)
		store = nil
	}

	srv := &SSHServer{
		config: cfg,
		store:  store,
		logger: logger,
	}

	// Resolve host key path
	hostKeyPath := cfg.HostKeyPath
	if hostKeyPath == "" {
		home, homeErr := os.UserHomeDir()
		if homeErr != nil {
			return nil, fmt.Errorf("cannot get home directory: %w", homeErr)
		}
		hostKeyPath = filepath.Join(home, ".cubes", "host_key")
	}

	hostKeyDir := filepath.Dir(hostKeyPath)
	if mkdirErr := os.MkdirAll(hostKeyDir, 0o700); mkdirErr != nil {
		return nil, fmt.Errorf("cannot create host key directory: %w", mkdirErr)
	}

	opts := []ssh.Option{
		wish.WithAddress(cfg.Address),
		wish.WithHostKeyPath(hostKeyPath),
		wish.WithIdleTimeout(cfg.IdleTimeout),
		wish.WithMiddleware(
			bubbletea.Middleware(srv.teaHandler),
			srv.loggingMiddleware,
		),
	}

	server, err := wish.NewServer(opts...)
	if err != nil {
		srv.closeStore()
		return nil, fmt.Errorf("cannot create SSH server: %w", err)
	}

	srv.server = server
	return srv, nil
}

// sessionFor builds the board session for an SSH user.
func (s *SSHServer) sessionFor(user string, width, height int) Session {
	return Session{
		Board:  s.config.Board,
		Layout: s.config.Layout,
		Tiles:  s.config.Tiles,
		Store:  s.store,
		User:   user,
		Logger: s.logger.With("user", user),
		Screen: core.RuntimeConfig{ScreenW: width, ScreenH: height},
	}
}

// teaHandler creates a board, or the layout menu, for each SSH session.
func (s *SSHServer) teaHandler(sshSession ssh.Session) (tea.Model, []tea.ProgramOption) {
	pty, _, ok := sshSession.Pty()
	if !ok {
		s.logger.Warn("no PTY requested", "user", sshSession.User())
		return nil, nil
	}

	session := s.sessionFor(sshSession.User(), pty.Window.Width, pty.Window.Height)

	var model tea.Model
	if len(session.Tiles) == 0 {
		model = NewSessionModel(session)
	} else {
		board, err := NewModel(session)
		if err != nil {
			s.logger.Error("cannot start board", "user", sshSession.User(), "error", err)
			return nil, nil
		}
		s.logger.Debug("board ready", "user", sshSession.User(), "session", board.SessionID())
		model = board
	}

	return model, []tea.ProgramOption{
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	}
}

// loggingMiddleware logs each session with its duration and the number of
// boards open at the time.
func (s *SSHServer) loggingMiddleware(next ssh.Handler) ssh.Handler {
	return func(sshSession ssh.Session) {
		started := time.Now()
		logger := s.logger.With("user", sshSession.User(), "remote", sshSession.RemoteAddr().String())

		logger.Info("session started", "active", s.active.Add(1))
		defer func() {
			logger.Info("session ended",
				"active", s.active.Add(-1),
				"duration", time.Since(started).Round(time.Second),
			)
		}()

		next(sshSession)
	}
}

// ActiveSessions returns the number of connected sessions.
func (s *SSHServer) ActiveSessions() int64 {
	return s.active.Load()
}

// ListenAndServe serves until ctx is cancelled or the listener fails,
// then shuts the server down.
func (s *SSHServer) ListenAndServe(ctx context.Context) error {
	s.logger.Info("starting SSH server", "address", s.config.Address, "layout", s.config.Layout)

	errCh := make(chan error, 1)
	go func() {
		errCh <- s.server.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		s.logger.Info("shutting down", "active", s.active.Load())
		return s.Shutdown()
	case err := <-errCh:
		s.closeStore()
		if errors.Is(err, ssh.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("ssh: %w", err)
	}
}

// Shutdown waits up to ten seconds for open sessions, then closes the
// listener and the history database.
func (s *SSHServer) Shutdown() error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	defer s.closeStore()

	return s.server.Shutdown(ctx)
}

func (s *SSHServer) closeStore() {
	if s.store == nil {
		return
	}
	if err := s.store.Close(); err != nil {
		s.logger.Warn("closing history database", "error", err)
	}
	s.store = nil
}

// Addr returns the server's listen address string.
func (s *SSHServer) Addr() string {
	return s.config.Address
}

// Port returns the port part of the listen address, "22" when none is set.
func (s *SSHServer) Port() string {
	_, port, err := net.SplitHostPort(s.config.Address)
	if err != nil || port == "" {
		return "22"
	}
	return port
}
