package player

import (
	"strconv"
	"strings"

	"github.com/pixil98/go-quest/internal/display"
	"github.com/pixil98/go-quest/internal/game"
)

// runCharacterSetup prompts for the persona and submits it. Every field
// is validated at the prompt, so the submission normally succeeds on the
// first try; a rejected submission just leaves the player on this screen.
func (m *SessionManager) runCharacterSetup(t *terminal, sess *game.Session, sessionID string) error {
	if err := t.Print("\nCreate the explorer who will walk this path.\n\n"); err != nil {
		return err
	}

	name, err := t.Prompt("What is your name? ", withValidator(
		func(str string) (bool, string) {
			if strings.TrimSpace(str) == "" {
				return false, "A name is required.\n"
			}
			return true, ""
		},
	))
	if err != nil {
		return err
	}

	ageStr, err := t.Prompt("How old are you? ", withValidator(
		func(str string) (bool, string) {
			age, err := strconv.Atoi(strings.TrimSpace(str))
			if err != nil || age <= 0 {
				return false, "Age must be a positive number.\n"
			}
			return true, ""
		},
	))
	if err != nil {
		return err
	}
	age, err := strconv.Atoi(strings.TrimSpace(ageStr))
	if err != nil {
		return err
	}

	genderStr, err := t.Prompt("Gender (f/m)? ", withValidator(
		func(str string) (bool, string) {
			if _, err := game.ParseGender(strings.TrimSpace(str)); err != nil {
				return false, "Enter 'f' or 'm'.\n"
			}
			return true, ""
		},
	))
	if err != nil {
		return err
	}
	gender, err := game.ParseGender(strings.TrimSpace(genderStr))
	if err != nil {
		return err
	}

	avatarIdx, err := newSelector(m.catalog.Avatars()).Prompt(t, "\nChoose your avatar:")
	if err != nil {
		return err
	}

	p := &game.Player{
		Name:     display.Title(strings.TrimSpace(name)),
		Age:      age,
		Gender:   gender,
		AvatarID: avatarIdx,
	}

	if err := sess.SubmitCharacter(p); err != nil {
		return t.Printf("That didn't work: %s\n", err)
	}

	m.track(sessionID, "character_created", map[string]any{
		"name":   p.Name,
		"avatar": p.AvatarID,
	})

	return t.Printf("\nWelcome, %s. Your journey begins.\n", p.Name)
}
