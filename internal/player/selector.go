package player

import (
	"fmt"
	"strconv"
)

const (
	defaultSelectorRowLength = 80
	defaultSelectorRowCount  = 5
)

type Selectable interface {
	Selector() string
}

// selector renders a numbered multi-column menu over an ordered option
// list and resolves a selection to its index.
type selector[T Selectable] struct {
	options []T
	output  []string
}

func newSelector[T Selectable](options []T) *selector[T] {
	s := &selector[T]{options: options}
	s.build()
	return s
}

func (s *selector[T]) build() {
	// Calculate column width
	colWidth := 1
	for _, v := range s.options {
		l := len(v.Selector()) + 7 // Plus 7 for number and spacing (nn. <val>  )
		if l > colWidth {
			colWidth = l
		}
	}

	// Figure out the number of columns and rows. We want to fill columns
	// first, left to right, but we might need more rows than the default
	// number if there isn't enough space.
	numVals := len(s.options)
	numCols := defaultSelectorRowLength / colWidth
	if numCols < 1 {
		numCols = 1
	}
	numRows := numVals / numCols
	if numRows < defaultSelectorRowCount {
		numRows = defaultSelectorRowCount
	}

	count := 0
	rows := make([]string, numRows)
	for _, v := range s.options {
		rows[count%numRows] = rows[count%numRows] + fmt.Sprintf("%2d. %-*s  ", count+1, colWidth-5, v.Selector())
		count++
	}

	s.output = rows
}

// Prompt shows the menu and returns the 0-based index of the selection.
func (s *selector[T]) Prompt(t *terminal, prompt string) (int, error) {
	err := t.Printf("%s\n", prompt)
	if err != nil {
		return 0, err
	}

	for _, str := range s.output {
		if len(str) > 0 {
			err = t.Printf("%s\n", str)
			if err != nil {
				return 0, err
			}
		}
	}

	selection, err := t.Prompt("Make your selection: ", withValidator(
		func(str string) (bool, string) {
			i, err := strconv.Atoi(str)
			if err != nil {
				return false, "Invalid selection!\n"
			}

			if i < 1 || i > len(s.options) {
				return false, "Invalid selection!\n"
			}

			return true, ""
		},
	))
	if err != nil {
		return 0, err
	}

	i, err := strconv.Atoi(selection)
	if err != nil {
		return 0, err
	}

	return i - 1, nil
}
