package display

import (
	"github.com/muesli/reflow/wordwrap"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

const DefaultWidth = 76

var titleCaser = cases.Title(language.Und, cases.NoLower)

// Wrap word-wraps text to DefaultWidth, preserving ANSI escape sequences.
func Wrap(text string) string {
	return wordwrap.String(text, DefaultWidth)
}

// Title uppercases the leading letter of each word, leaving the rest of
// the word alone so player-chosen capitalization survives.
func Title(s string) string {
	return titleCaser.String(s)
}
