package player

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/pixil98/go-quest/internal/catalog"
	"github.com/pixil98/go-quest/internal/display"
	"github.com/pixil98/go-quest/internal/game"
)

// runRegion plays one region attempt to completion or abandonment. The
// stage machine lives in the session; this loop only renders and feeds it
// player actions.
func (m *SessionManager) runRegion(t *terminal, sess *game.Session, sessionID string) error {
	for sess.Screen() == game.ScreenRegion {
		var err error
		switch sess.Stage() {
		case game.StageIntro:
			err = m.regionIntro(t, sess)
		case game.StageQuestion:
			err = m.regionQuestion(t, sess)
		case game.StageFeedback:
			err = m.regionFeedback(t, sess)
		case game.StageSummary:
			err = m.regionSummary(t, sess, sessionID)
		}
		if err != nil {
			return err
		}
	}
	return nil
}

func (m *SessionManager) regionIntro(t *terminal, sess *game.Session) error {
	_, region := sess.ActiveRegion()

	err := t.Printf("\n%s  %s\n%s\n\n", region.Icon.Glyph(), region.Name, display.Wrap(region.Description))
	if err != nil {
		return err
	}

	input, err := t.Prompt("Press enter to begin, or 'back' to return to the map: ")
	if err != nil {
		return err
	}

	if isBack(input) {
		sess.LeaveRegion()
		return nil
	}
	sess.ConfirmIntro()
	return nil
}

func (m *SessionManager) regionQuestion(t *terminal, sess *game.Session) error {
	_, region := sess.ActiveRegion()
	question, idx, ok := sess.CurrentQuestion()
	if !ok {
		return fmt.Errorf("no active question in region %s", region.Name)
	}

	err := t.Printf("\n[%s - question %d of %d]\n%s, %s\n\n%s\n\n",
		region.Name, idx+1, len(region.Questions),
		question.NpcName, question.NpcDescription,
		display.Wrap(fmt.Sprintf("%q", question.Dialogue)))
	if err != nil {
		return err
	}

	for i, a := range question.Answers {
		if err := t.Printf(" %d. %s\n", i+1, a.Text); err != nil {
			return err
		}
	}

	input, err := t.Prompt("\nYour answer (or 'back'): ", withValidator(
		func(str string) (bool, string) {
			if isBack(str) {
				return true, ""
			}
			i, err := strconv.Atoi(strings.TrimSpace(str))
			if err != nil || i < 1 || i > len(question.Answers) {
				return false, "Pick one of the numbered answers.\n"
			}
			return true, ""
		},
	))
	if err != nil {
		return err
	}

	if isBack(input) {
		sess.LeaveRegion()
		return nil
	}

	i, err := strconv.Atoi(strings.TrimSpace(input))
	if err != nil {
		return err
	}
	sess.ChooseAnswer(i - 1)
	return nil
}

func (m *SessionManager) regionFeedback(t *terminal, sess *game.Session) error {
	answer := sess.LastAnswer()
	if answer == nil {
		return fmt.Errorf("feedback stage without an answer")
	}

	if err := t.Printf("\n%s\n", rewardLine(answer.Reward)); err != nil {
		return err
	}
	if err := t.Printf("\n%s\n\n", display.Wrap(answer.Reason)); err != nil {
		return err
	}

	if err := t.PromptEnter("Press enter to continue: "); err != nil {
		return err
	}
	sess.AcknowledgeFeedback()
	return nil
}

func (m *SessionManager) regionSummary(t *terminal, sess *game.Session, sessionID string) error {
	regionID, region := sess.ActiveRegion()

	out, err := renderTemplate(summaryTemplate, struct {
		Name    string
		Rewards game.Stats
	}{
		Name:    region.Name,
		Rewards: sess.AttemptRewards(),
	})
	if err != nil {
		return err
	}
	if err := t.Print(out); err != nil {
		return err
	}

	if err := t.PromptEnter("\nPress enter to continue your path: "); err != nil {
		return err
	}

	if sess.ConfirmSummary() {
		m.track(sessionID, "region_completed", map[string]any{"region": regionID})
	}
	return nil
}

func isBack(input string) bool {
	switch strings.ToLower(strings.TrimSpace(input)) {
	case "b", "back":
		return true
	default:
		return false
	}
}

// rewardLine formats the non-zero parts of a reward for the feedback
// overlay.
func rewardLine(r catalog.Reward) string {
	parts := []string{}
	if r.Happiness > 0 {
		parts = append(parts, fmt.Sprintf("Happiness +%d", r.Happiness))
	}
	if r.Income > 0 {
		parts = append(parts, fmt.Sprintf("Income +%d", r.Income))
	}
	if r.Status > 0 {
		parts = append(parts, fmt.Sprintf("Status +%d", r.Status))
	}
	if len(parts) == 0 {
		return "No change."
	}
	return strings.Join(parts, "   ")
}
