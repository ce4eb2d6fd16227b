package player

import (
	"fmt"
	"strings"

	"github.com/pixil98/go-quest/internal/display"
	"github.com/pixil98/go-quest/internal/game"
)

// runResults shows the personality outcome and offers a restart or an
// event log export. Returns true when the player quits.
func (m *SessionManager) runResults(t *terminal, sess *game.Session, sessionID string) (bool, error) {
	trait := game.Classify(sess.Stats())
	profile := m.catalog.Personality(trait)

	out, err := renderTemplate(resultsTemplate, struct {
		Title       string
		Description string
		Player      string
		Stats       game.Stats
		Elapsed     string
	}{
		Title:       profile.Title,
		Description: display.Wrap(profile.Description),
		Player:      sess.Player().Name,
		Stats:       sess.Stats(),
		Elapsed:     fmt.Sprintf("%ds", int(sess.Elapsed().Seconds())),
	})
	if err != nil {
		return false, err
	}
	if err := t.Print(out); err != nil {
		return false, err
	}

	input, err := t.Prompt("\nWalk the path again ('restart'), 'export' the event log, or 'quit': ")
	if err != nil {
		return false, err
	}

	switch strings.ToLower(strings.TrimSpace(input)) {
	case "r", "restart":
		if sess.Restart() {
			m.track(sessionID, "game_restarted", nil)
		}
		return false, nil

	case "e", "export":
		if m.tracker == nil {
			return false, t.Print("No event log configured.\n")
		}
		data, err := m.tracker.Export()
		if err != nil {
			return false, t.Printf("Export failed: %s\n", err)
		}
		return false, t.Printf("%s\n", data)

	default:
		return true, nil
	}
}
