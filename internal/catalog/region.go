package catalog

import (
	"fmt"

	"github.com/pixil98/go-errors"
)

// QuestionsPerRegion is how many questions every region must define.
const QuestionsPerRegion = 2

// Reward is the stat delta a single answer grants.
type Reward struct {
	Happiness int `json:"happiness"`
	Income    int `json:"income"`
	Status    int `json:"status"`
}

func (r *Reward) Validate() error {
	el := errors.NewErrorList()

	if r.Happiness < 0 {
		el.Add(fmt.Errorf("happiness must not be negative"))
	}
	if r.Income < 0 {
		el.Add(fmt.Errorf("income must not be negative"))
	}
	if r.Status < 0 {
		el.Add(fmt.Errorf("status must not be negative"))
	}

	return el.Err()
}

// Answer is one selectable option on a question. Reason is shown to the
// player after they pick it.
type Answer struct {
	Text   string `json:"text"`
	Reward Reward `json:"reward"`
	Reason string `json:"reason"`
}

func (a *Answer) Validate() error {
	el := errors.NewErrorList()

	if a.Text == "" {
		el.Add(fmt.Errorf("text is required"))
	}
	if a.Reason == "" {
		el.Add(fmt.Errorf("reason is required"))
	}
	el.Add(a.Reward.Validate())

	return el.Err()
}

// Question is a single NPC dialogue with its answer options.
type Question struct {
	// NpcName is the speaking character's display name
	NpcName string `json:"npc_name"`

	// NpcDescription is a one-line blurb shown under the name
	NpcDescription string `json:"npc_description"`

	// Portrait is an external art reference for clients that can show one
	Portrait string `json:"portrait,omitempty"`

	Dialogue string   `json:"dialogue"`
	Answers  []Answer `json:"answers"`
}

func (q *Question) Validate() error {
	el := errors.NewErrorList()

	if q.NpcName == "" {
		el.Add(fmt.Errorf("npc_name is required"))
	}
	if q.Dialogue == "" {
		el.Add(fmt.Errorf("dialogue is required"))
	}
	if len(q.Answers) < 2 {
		el.Add(fmt.Errorf("at least two answers are required"))
	}
	for i, a := range q.Answers {
		if err := a.Validate(); err != nil {
			el.Add(fmt.Errorf("answer %d: %w", i, err))
		}
	}

	return el.Err()
}

// Region is one life stage of the journey. Order defines the fixed unlock
// sequence across the catalog.
type Region struct {
	Name        string     `json:"name"`
	Description string     `json:"description"`
	Icon        Icon       `json:"icon"`
	Order       int        `json:"order"`
	Questions   []Question `json:"questions"`
}

func (r *Region) Validate() error {
	el := errors.NewErrorList()

	if r.Name == "" {
		el.Add(fmt.Errorf("name is required"))
	}
	if r.Description == "" {
		el.Add(fmt.Errorf("description is required"))
	}
	if r.Order < 0 {
		el.Add(fmt.Errorf("order must not be negative"))
	}
	if len(r.Questions) != QuestionsPerRegion {
		el.Add(fmt.Errorf("exactly %d questions are required, got %d", QuestionsPerRegion, len(r.Questions)))
	}
	for i, q := range r.Questions {
		if err := q.Validate(); err != nil {
			el.Add(fmt.Errorf("question %d: %w", i, err))
		}
	}

	return el.Err()
}
