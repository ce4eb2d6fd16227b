package player

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

type promptValidator func(string) (bool, string)

type promptConfig struct {
	tries     int
	validator promptValidator
}

type promptOption func(*promptConfig)

func withValidator(v promptValidator) promptOption {
	return func(cfg *promptConfig) {
		cfg.validator = v
	}
}

func withMaxTries(i int) promptOption {
	return func(cfg *promptConfig) {
		cfg.tries = i
	}
}

// terminal wraps a connection with a single buffered reader so input
// typed ahead of a prompt isn't lost between prompts.
type terminal struct {
	w  io.Writer
	br *bufio.Reader
}

func newTerminal(rw io.ReadWriter) *terminal {
	return &terminal{
		w:  rw,
		br: bufio.NewReader(rw),
	}
}

func (t *terminal) Print(s string) error {
	_, err := t.w.Write([]byte(s))
	return err
}

func (t *terminal) Printf(format string, args ...any) error {
	_, err := fmt.Fprintf(t.w, format, args...)
	return err
}

// Prompt writes the prompt and reads one line, re-prompting until the
// validator accepts the input or the try limit is hit.
func (t *terminal) Prompt(prompt string, opts ...promptOption) (string, error) {
	config := &promptConfig{}
	for _, opt := range opts {
		opt(config)
	}

	tries := 0
	for {
		err := t.Print(prompt)
		if err != nil {
			return "", err
		}

		line, err := t.br.ReadString('\n')
		if err != nil && (err != io.EOF || line == "") {
			return "", err
		}
		input := strings.TrimRight(line, "\r\n")

		if config.validator != nil {
			ok, msg := config.validator(input)
			if !ok {
				if msg != "" {
					if err := t.Print(msg); err != nil {
						return "", err
					}
				}

				tries++
				if config.tries > 0 && config.tries == tries {
					return "", fmt.Errorf("too many tries")
				}

				continue
			}
		}

		return input, nil
	}
}

// PromptEnter waits for the player to press enter.
func (t *terminal) PromptEnter(prompt string) error {
	_, err := t.Prompt(prompt)
	return err
}

func (t *terminal) PromptYN(prompt string) (bool, error) {
	str, err := t.Prompt(prompt, withValidator(
		func(str string) (bool, string) {
			switch strings.ToLower(str) {
			case "y", "yes":
				return true, ""

			case "n", "no":
				return true, ""
			default:
				return false, "enter 'yes' or 'no'\n"
			}
		},
	))
	if err != nil {
		return false, err
	}

	switch strings.ToLower(str) {
	case "y", "yes":
		return true, nil
	default:
		return false, nil
	}
}
