package storage

import (
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-cubes/internal/board"
)

// Recorder writes board events of one session to the store.
// Writes are best-effort: failures are logged and the board keeps running.
type Recorder struct {
	store     *Store
	sessionID string
	logger    *log.Logger
}

// NewRecorder starts a session in the store and returns a recorder for it.
func NewRecorder(store *Store, layout, user string, logger *log.Logger) (*Recorder, error) {
	id, err := store.StartSession(layout, user)
	if err != nil {
		return nil, err
	}
	return &Recorder{store: store, sessionID: id, logger: logger}, nil
}

// SessionID returns the id of the recorded session.
func (r *Recorder) SessionID() string {
	return r.sessionID
}

// Observe is a board.Observer.
func (r *Recorder) Observe(ev board.Event) {
	var err error
	switch ev := ev.(type) {
	case board.ConnectedEvent:
		_, err = r.store.RecordConnection(r.sessionID, ev.Pair.A, ev.Pair.B)
	case board.DisconnectEndedEvent:
		_, err = r.store.RecordDisconnect(r.sessionID, ev.Pair.A, ev.Pair.B, string(ev.Reason), ev.Ticks, ev.Elapsed)
	default:
		return
	}
	if err != nil {
		r.logger.Warn("could not record board event", "session", r.sessionID, "error", err)
	}
}
