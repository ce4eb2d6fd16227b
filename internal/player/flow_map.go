package player

import (
	"log/slog"
	"strconv"
	"strings"

	"github.com/pixil98/go-quest/internal/analytics"
	"github.com/pixil98/go-quest/internal/game"
	"github.com/pixil98/go-quest/internal/messaging"
)

type mapScreenData struct {
	Player    string
	Stats     game.Stats
	Regions   []game.RegionView
	Done      int
	Total     int
	CanFinish bool
	Recent    []messaging.Completion
}

// runMap shows the journey overview and dispatches the player's choice.
// Returns true when the player quits.
func (m *SessionManager) runMap(t *terminal, sess *game.Session, sessionID string) (bool, error) {
	views := sess.MapView()

	out, err := renderTemplate(mapTemplate, mapScreenData{
		Player:    sess.Player().Name,
		Stats:     sess.Stats(),
		Regions:   views,
		Done:      sess.CompletedCount(),
		Total:     m.catalog.RegionCount(),
		CanFinish: sess.AllCompleted(),
		Recent:    m.recentCompletions(),
	})
	if err != nil {
		return false, err
	}
	if err := t.Print(out); err != nil {
		return false, err
	}

	input, err := t.Prompt("\nEnter a stage number, 'finish', or 'quit': ")
	if err != nil {
		return false, err
	}

	switch strings.ToLower(strings.TrimSpace(input)) {
	case "q", "quit":
		return true, nil

	case "f", "finish":
		if !sess.Finish() {
			return false, t.Printf("Your journey isn't over yet: %d of %d stages complete.\n",
				sess.CompletedCount(), m.catalog.RegionCount())
		}
		m.finishGame(sess, sessionID)
		return false, nil

	default:
		i, convErr := strconv.Atoi(strings.TrimSpace(input))
		if convErr != nil || i < 1 || i > len(views) {
			return false, t.Print("Pick a stage from the list.\n")
		}

		view := views[i-1]
		if !sess.SelectRegion(view.ID) {
			if view.Completed {
				return false, t.Printf("You have already passed through %s.\n", view.Region.Name)
			}
			return false, t.Print("That stage is still locked. Finish the earlier ones first.\n")
		}

		m.track(sessionID, "region_started", map[string]any{"region": view.ID})
		return false, nil
	}
}

// finishGame runs once per playthrough, on the transition to the results
// screen: it builds the final report, hands it to the reporter, and
// announces the completion to everyone connected.
func (m *SessionManager) finishGame(sess *game.Session, sessionID string) {
	player := sess.Player()
	trait := game.Classify(sess.Stats())
	profile := m.catalog.Personality(trait)

	report := analytics.NewReport(m.catalog, player, sess.AnswerLog(), sess.Stats(), profile.Title, sess.Elapsed())
	m.track(sessionID, "game_completed", report)

	if m.reporter != nil {
		m.reporter.Deliver(report)
	}

	if m.bus != nil {
		err := messaging.PublishCompletion(m.bus, messaging.Completion{
			Player: player.Name,
			Title:  profile.Title,
		})
		if err != nil {
			slog.Debug("announcing completion", "error", err)
		}
	}
}
