package catalog

import (
	"fmt"

	"github.com/pixil98/go-errors"
)

// Trait identifies one of the personality outcomes the classifier can
// produce. The catalog must define a profile for every trait.
type Trait string

const (
	TraitBalanced  Trait = "balanced"
	TraitHappiness Trait = "happiness"
	TraitStatus    Trait = "status"
	TraitIncome    Trait = "income"
)

// Traits lists every trait a catalog must cover.
var Traits = []Trait{TraitBalanced, TraitHappiness, TraitStatus, TraitIncome}

// Personality is the descriptive result shown for a trait. Color and
// Gradient are presentation tokens carried for richer clients.
type Personality struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Color       string `json:"color"`
	Gradient    string `json:"gradient"`
}

func (p *Personality) Validate() error {
	el := errors.NewErrorList()

	if p.Title == "" {
		el.Add(fmt.Errorf("title is required"))
	}
	if p.Description == "" {
		el.Add(fmt.Errorf("description is required"))
	}
	if p.Color == "" {
		el.Add(fmt.Errorf("color is required"))
	}
	if p.Gradient == "" {
		el.Add(fmt.Errorf("gradient is required"))
	}

	return el.Err()
}
