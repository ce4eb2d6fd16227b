package game

import (
	"fmt"
	"strings"

	"github.com/pixil98/go-errors"
)

type Gender int

const (
	GenderUnset Gender = iota
	GenderFemale
	GenderMale
)

func (g Gender) String() string {
	switch g {
	case GenderFemale:
		return "female"
	case GenderMale:
		return "male"
	default:
		return ""
	}
}

func ParseGender(s string) (Gender, error) {
	switch strings.ToLower(s) {
	case "f", "female":
		return GenderFemale, nil
	case "m", "male":
		return GenderMale, nil
	default:
		return GenderUnset, fmt.Errorf("unknown gender: %s", s)
	}
}

func (g *Gender) UnmarshalText(text []byte) error {
	parsed, err := ParseGender(string(text))
	if err != nil {
		return err
	}
	*g = parsed
	return nil
}

func (g Gender) MarshalText() ([]byte, error) {
	return []byte(g.String()), nil
}

// Player is the persona created at the start of a playthrough. It is
// immutable once submitted; a restart discards it entirely.
type Player struct {
	Name     string `json:"name"`
	Age      int    `json:"age"`
	Gender   Gender `json:"gender"`
	AvatarID int    `json:"avatar_id"`
}

// Validate checks the persona against the submission rules. avatarCount is
// the size of the avatar roster the id must index into.
func (p *Player) Validate(avatarCount int) error {
	el := errors.NewErrorList()

	if strings.TrimSpace(p.Name) == "" {
		el.Add(fmt.Errorf("name is required"))
	}
	if p.Age <= 0 {
		el.Add(fmt.Errorf("age must be a positive integer"))
	}
	if p.Gender == GenderUnset {
		el.Add(fmt.Errorf("gender must be chosen"))
	}
	if p.AvatarID < 0 || p.AvatarID >= avatarCount {
		el.Add(fmt.Errorf("avatar %d is out of range", p.AvatarID))
	}

	return el.Err()
}
