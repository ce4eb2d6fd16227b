package messaging

import (
	"encoding/json"
	"fmt"
)

const (
	// SubjectCompletions carries finished-playthrough announcements shown
	// to other connected players.
	SubjectCompletions = "quest.completions"

	// SubjectAnalytics mirrors every analytics event onto the bus for
	// external observers.
	SubjectAnalytics = "analytics.events"
)

// Bus is the publish/subscribe surface the game uses, satisfied by
// NatsServer.
type Bus interface {
	Publish(subject string, data []byte) error
	Subscribe(subject string, handler func(data []byte)) (func(), error)
}

// Completion is the broadcast announcing a finished playthrough.
type Completion struct {
	Player string `json:"player"`
	Title  string `json:"title"`
}

// PublishCompletion broadcasts a completion on the bus.
func PublishCompletion(bus Bus, c Completion) error {
	data, err := json.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshalling completion: %w", err)
	}
	return bus.Publish(SubjectCompletions, data)
}

// SubscribeCompletions decodes completion broadcasts for the handler,
// dropping anything unparseable.
func SubscribeCompletions(bus Bus, handler func(Completion)) (func(), error) {
	return bus.Subscribe(SubjectCompletions, func(data []byte) {
		var c Completion
		if err := json.Unmarshal(data, &c); err != nil {
			return
		}
		handler(c)
	})
}
