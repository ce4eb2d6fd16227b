package player

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/pixil98/go-quest/internal/analytics"
	"github.com/pixil98/go-quest/internal/catalog"
	"github.com/pixil98/go-quest/internal/game"
	"github.com/pixil98/go-quest/internal/messaging"
)

// recentCompletionLimit caps how many finished journeys the map screen
// shows.
const recentCompletionLimit = 5

// SessionManager runs one interactive playthrough per accepted
// connection and owns everything sessions share: the catalog, the
// analytics collaborators, and the completion feed.
type SessionManager struct {
	catalog  *catalog.Catalog
	tracker  *analytics.Tracker
	reporter *analytics.Reporter
	bus      messaging.Bus

	mu     sync.Mutex
	recent []messaging.Completion
}

func NewSessionManager(
	cat *catalog.Catalog,
	tracker *analytics.Tracker,
	reporter *analytics.Reporter,
	bus messaging.Bus,
) *SessionManager {
	return &SessionManager{
		catalog:  cat,
		tracker:  tracker,
		reporter: reporter,
		bus:      bus,
	}
}

// Start subscribes to the completion feed for the life of the service.
// The bus worker comes up concurrently, so the subscription retries until
// it is ready.
func (m *SessionManager) Start(ctx context.Context) error {
	m.track("", "app_loaded", nil)

	if m.bus != nil {
		var unsub func()
		for {
			u, err := messaging.SubscribeCompletions(m.bus, m.remember)
			if err == nil {
				unsub = u
				break
			}
			select {
			case <-ctx.Done():
				return nil
			case <-time.After(time.Second):
			}
		}
		defer unsub()
	}

	<-ctx.Done()
	return nil
}

func (m *SessionManager) remember(c messaging.Completion) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.recent = append(m.recent, c)
	if len(m.recent) > recentCompletionLimit {
		m.recent = m.recent[len(m.recent)-recentCompletionLimit:]
	}
}

func (m *SessionManager) recentCompletions() []messaging.Completion {
	m.mu.Lock()
	defer m.mu.Unlock()

	out := make([]messaging.Completion, len(m.recent))
	copy(out, m.recent)
	return out
}

// track appends an analytics event and mirrors it onto the bus. The log
// is observational; failures never reach the player.
func (m *SessionManager) track(sessionID, event string, properties map[string]any) {
	if m.tracker != nil {
		if err := m.tracker.Track(sessionID, event, properties); err != nil {
			slog.Warn("tracking event", "event", event, "error", err)
		}
	}

	if m.bus != nil {
		payload, err := json.Marshal(map[string]any{
			"session_id": sessionID,
			"event":      event,
			"properties": properties,
		})
		if err != nil {
			return
		}
		if err := m.bus.Publish(messaging.SubjectAnalytics, payload); err != nil {
			slog.Debug("publishing analytics event", "event", event, "error", err)
		}
	}
}

// RunSession drives one connection through the playthrough loop until
// the player quits or the connection drops.
func (m *SessionManager) RunSession(ctx context.Context, conn io.ReadWriter) error {
	sessionID := uuid.NewString()
	term := newTerminal(conn)
	sess := game.NewSession(m.catalog)

	m.track(sessionID, "flow_start", nil)

	banner, err := renderTemplate(bannerTemplate, nil)
	if err != nil {
		return err
	}
	if err := term.Print(banner); err != nil {
		return err
	}

	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		var quit bool
		var err error
		switch sess.Screen() {
		case game.ScreenCharacterSetup:
			err = m.runCharacterSetup(term, sess, sessionID)
		case game.ScreenMap:
			quit, err = m.runMap(term, sess, sessionID)
		case game.ScreenRegion:
			err = m.runRegion(term, sess, sessionID)
		case game.ScreenResults:
			quit, err = m.runResults(term, sess, sessionID)
		}
		if err != nil {
			return err
		}
		if quit {
			return nil
		}
	}
}
