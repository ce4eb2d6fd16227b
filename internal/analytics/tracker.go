// Package analytics keeps the observational record of play: an
// append-only event log in SQLite, exportable as one JSON document, and
// the best-effort delivery of final playthrough reports. Nothing in the
// game reads any of it back.
package analytics

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
	_ "modernc.org/sqlite"
)

// Event is one emitted record, in the shape the JSON export uses.
type Event struct {
	SessionID  string          `db:"session_id" json:"session_id"`
	Timestamp  string          `db:"timestamp" json:"timestamp"`
	Event      string          `db:"event" json:"event"`
	Properties json.RawMessage `db:"properties" json:"properties"`
}

// Tracker appends events to a local SQLite log. It is shared by all
// connection sessions; the database handle serializes writes.
type Tracker struct {
	db  *sqlx.DB
	now func() time.Time
}

// NewTracker opens or creates the event log database at path.
func NewTracker(path string) (*Tracker, error) {
	db, err := sqlx.Open("sqlite", path+"?_journal_mode=WAL&_busy_timeout=5000")
	if err != nil {
		return nil, fmt.Errorf("opening event log: %w", err)
	}

	t := &Tracker{db: db, now: time.Now}
	if err := t.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("migrating event log: %w", err)
	}

	return t, nil
}

func (t *Tracker) migrate() error {
	schema := `
	CREATE TABLE IF NOT EXISTS events (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		session_id TEXT NOT NULL,
		timestamp TEXT NOT NULL,
		event TEXT NOT NULL,
		properties TEXT NOT NULL
	);

	CREATE INDEX IF NOT EXISTS idx_events_session ON events(session_id);
	`
	_, err := t.db.Exec(schema)
	return err
}

// Track appends one event. Properties may be nil.
func (t *Tracker) Track(sessionID, event string, properties map[string]any) error {
	if properties == nil {
		properties = map[string]any{}
	}
	props, err := json.Marshal(properties)
	if err != nil {
		return fmt.Errorf("marshalling properties: %w", err)
	}

	_, err = t.db.Exec(
		"INSERT INTO events (session_id, timestamp, event, properties) VALUES (?, ?, ?, ?)",
		sessionID, t.now().UTC().Format(time.RFC3339), event, string(props),
	)
	if err != nil {
		return fmt.Errorf("appending event: %w", err)
	}
	return nil
}

// Export returns every event in emission order as a single JSON document.
func (t *Tracker) Export() ([]byte, error) {
	var events []Event
	err := t.db.Select(&events, "SELECT session_id, timestamp, event, properties FROM events ORDER BY id")
	if err != nil {
		return nil, fmt.Errorf("reading event log: %w", err)
	}
	if events == nil {
		events = []Event{}
	}
	return json.MarshalIndent(events, "", "  ")
}

func (t *Tracker) Close() error {
	return t.db.Close()
}

// Start keeps the tracker open for the life of the service and closes the
// database on shutdown.
func (t *Tracker) Start(ctx context.Context) error {
	<-ctx.Done()
	return t.Close()
}
