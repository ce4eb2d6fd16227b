package catalog

import (
	"fmt"

	"github.com/pixil98/go-errors"
)

// Avatar is one portrait a player can pick during character setup.
// Players reference avatars by their position in catalog order.
type Avatar struct {
	// Name is an optional display label
	Name string `json:"name,omitempty"`

	// Category groups avatars on the selection screen
	Category string `json:"category"`

	// Art is an external art reference for clients that can show one
	Art string `json:"art,omitempty"`

	Order int `json:"order"`
}

func (a *Avatar) Validate() error {
	el := errors.NewErrorList()

	if a.Category == "" {
		el.Add(fmt.Errorf("category is required"))
	}
	if a.Order < 0 {
		el.Add(fmt.Errorf("order must not be negative"))
	}

	return el.Err()
}

// Selector returns the label shown on the avatar selection menu.
func (a *Avatar) Selector() string {
	if a.Name != "" {
		return fmt.Sprintf("%s (%s)", a.Name, a.Category)
	}
	return a.Category
}
