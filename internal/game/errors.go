package game

import "errors"

var (
	// ErrWrongScreen is returned when a character submission arrives
	// outside the character setup screen.
	ErrWrongScreen = errors.New("not on the character setup screen")
)
