// Package storage provides SQLite-based persistence for board interaction
// history. Board state itself is never persisted; only what happened to it.
// Uses the pure-Go modernc.org/sqlite driver to avoid CGO dependencies.
package storage

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite" // Pure Go SQLite driver
)

// Event kinds stored in the events table.
const (
	KindConnected  = "connected"
	KindDisconnect = "disconnect"
)

// Store manages the SQLite database connection for interaction history.
type Store struct {
	db *sql.DB
}

// EventEntry is one recorded interaction.
type EventEntry struct {
	ID        int64
	SessionID string
	Layout    string
	User      string
	Kind      string
	TileA     int
	TileB     int
	Reason    string // Disconnect end reason; empty for connections
	Ticks     int
	ElapsedMS int64
	CreatedAt time.Time
}

// ReasonCount is the number of disconnect runs that ended for one reason.
type ReasonCount struct {
	Reason string
	Count  int
}

// Open creates or opens a SQLite database at the given path.
// It creates the parent directories if needed and runs migrations.
func Open(dbPath string) (*Store, error) {
	// Expand ~ to home directory
	if dbPath != "" && dbPath[0] == '~' {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("storage: cannot expand home directory: %w", err)
		}
		dbPath = filepath.Join(home, dbPath[1:])
	}

	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("storage: cannot create directory %s: %w", dir, err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot open database: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: cannot connect to database: %w", err)
	}

	store := &Store{db: db}

	if err := store.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: migration failed: %w", err)
	}

	return store, nil
}

// migrate creates the database schema if it doesn't exist.
func (s *Store) migrate() error {
	schema := `
		CREATE TABLE IF NOT EXISTS sessions (
			id TEXT PRIMARY KEY,
			layout TEXT NOT NULL,
			user TEXT NOT NULL DEFAULT '',
			started_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);

		CREATE TABLE IF NOT EXISTS events (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			session_id TEXT NOT NULL REFERENCES sessions(id),
			kind TEXT NOT NULL,
			tile_a INTEGER NOT NULL,
			tile_b INTEGER NOT NULL,
			reason TEXT NOT NULL DEFAULT '',
			ticks INTEGER NOT NULL DEFAULT 0,
			elapsed_ms INTEGER NOT NULL DEFAULT 0,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_events_session ON events(session_id);
		CREATE INDEX IF NOT EXISTS idx_events_kind ON events(kind, reason);
	`

	_, err := s.db.Exec(schema)
	return err
}

// Close closes the database connection.
func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// StartSession registers a new board session and returns its id.
func (s *Store) StartSession(layout, user string) (string, error) {
	id := uuid.NewString()
	_, err := s.db.Exec(
		"INSERT INTO sessions (id, layout, user) VALUES (?, ?, ?)",
		id, layout, user,
	)
	if err != nil {
		return "", fmt.Errorf("storage: cannot start session: %w", err)
	}
	return id, nil
}

// RecordConnection records that tiles a and b formed a pair.
func (s *Store) RecordConnection(sessionID string, a, b int) (int64, error) {
	return s.insertEvent(sessionID, KindConnected, a, b, "", 0, 0)
}

// RecordDisconnect records a finished disconnect run.
func (s *Store) RecordDisconnect(sessionID string, a, b int, reason string, ticks int, elapsed time.Duration) (int64, error) {
	return s.insertEvent(sessionID, KindDisconnect, a, b, reason, ticks, elapsed.Milliseconds())
}

func (s *Store) insertEvent(sessionID, kind string, a, b int, reason string, ticks int, elapsedMS int64) (int64, error) {
	result, err := s.db.Exec(
		`INSERT INTO events (session_id, kind, tile_a, tile_b, reason, ticks, elapsed_ms)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		sessionID, kind, a, b, reason, ticks, elapsedMS,
	)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot save %s event: %w", kind, err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot get inserted ID: %w", err)
	}
	return id, nil
}

// RecentEvents returns the newest events across all sessions.
func (s *Store) RecentEvents(limit int) ([]EventEntry, error) {
	if limit <= 0 {
		limit = 20
	}

	rows, err := s.db.Query(
		`SELECT e.id, e.session_id, s.layout, s.user, e.kind, e.tile_a, e.tile_b,
		        e.reason, e.ticks, e.elapsed_ms, e.created_at
		 FROM events e
		 JOIN sessions s ON s.id = e.session_id
		 ORDER BY e.id DESC
		 LIMIT ?`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query events: %w", err)
	}
	defer rows.Close()

	var entries []EventEntry
	for rows.Next() {
		var e EventEntry
		var createdAt any
		if err := rows.Scan(
			&e.ID, &e.SessionID, &e.Layout, &e.User, &e.Kind, &e.TileA, &e.TileB,
			&e.Reason, &e.Ticks, &e.ElapsedMS, &createdAt,
		); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		e.CreatedAt = parseTime(createdAt)
		entries = append(entries, e)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return entries, nil
}

// SessionEvents returns every event of one session in the order recorded.
func (s *Store) SessionEvents(sessionID string) ([]EventEntry, error) {
	rows, err := s.db.Query(
		`SELECT e.id, e.session_id, s.layout, s.user, e.kind, e.tile_a, e.tile_b,
		        e.reason, e.ticks, e.elapsed_ms, e.created_at
		 FROM events e
		 JOIN sessions s ON s.id = e.session_id
		 WHERE e.session_id = ?
		 ORDER BY e.id ASC`,
		sessionID,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query events: %w", err)
	}
	defer rows.Close()

	var entries []EventEntry
	for rows.Next() {
		var e EventEntry
		var createdAt any
		if err := rows.Scan(
			&e.ID, &e.SessionID, &e.Layout, &e.User, &e.Kind, &e.TileA, &e.TileB,
			&e.Reason, &e.Ticks, &e.ElapsedMS, &createdAt,
		); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		e.CreatedAt = parseTime(createdAt)
		entries = append(entries, e)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return entries, nil
}

// DisconnectReasons counts finished disconnect runs by end reason,
// most frequent first.
func (s *Store) DisconnectReasons() ([]ReasonCount, error) {
	rows, err := s.db.Query(
		`SELECT reason, COUNT(*) AS n
		 FROM events
		 WHERE kind = ?
		 GROUP BY reason
		 ORDER BY n DESC, reason ASC`,
		KindDisconnect,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query reasons: %w", err)
	}
	defer rows.Close()

	var counts []ReasonCount
	for rows.Next() {
		var rc ReasonCount
		if err := rows.Scan(&rc.Reason, &rc.Count); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		counts = append(counts, rc)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return counts, nil
}

// ClearHistory deletes all sessions and events.
func (s *Store) ClearHistory() error {
	if _, err := s.db.Exec("DELETE FROM events"); err != nil {
		return fmt.Errorf("storage: cannot clear events: %w", err)
	}
	if _, err := s.db.Exec("DELETE FROM sessions"); err != nil {
		return fmt.Errorf("storage: cannot clear sessions: %w", err)
	}
	return nil
}

// parseTime handles both time.Time and string DATETIME values.
func parseTime(v any) time.Time {
	switch t := v.(type) {
	case time.Time:
		return t
	case string:
		if parsed, err := time.Parse("2006-01-02 15:04:05", t); err == nil {
			return parsed
		}
	}
	return time.Time{}
}
