package command

import (
	"fmt"

	"github.com/pixil98/go-quest/internal/listener"
	"github.com/pixil98/go-quest/internal/player"
	"github.com/pixil98/go-service"
)

func BuildWorkers(config interface{}) (service.WorkerList, error) {
	cfg, ok := config.(*Config)
	if !ok {
		return nil, fmt.Errorf("unable to cast config")
	}

	// Load and verify the content catalog before anything else
	cat, err := cfg.Storage.BuildCatalog()
	if err != nil {
		return nil, fmt.Errorf("building catalog: %w", err)
	}

	natsServer, err := cfg.Nats.buildNatsServer()
	if err != nil {
		return nil, fmt.Errorf("building nats server: %w", err)
	}

	tracker, err := cfg.Analytics.buildTracker()
	if err != nil {
		return nil, fmt.Errorf("building event tracker: %w", err)
	}

	reporter, err := cfg.Analytics.buildReporter()
	if err != nil {
		return nil, fmt.Errorf("building reporter: %w", err)
	}

	sessionManager := player.NewSessionManager(cat, tracker, reporter, natsServer)
	connManager := listener.NewConnectionManager(sessionManager)

	// Create Listeners
	listeners := make(service.WorkerList, len(cfg.Listeners))
	for i, l := range cfg.Listeners {
		lst, err := l.BuildListener(connManager)
		if err != nil {
			return nil, fmt.Errorf("creating listener %d: %w", i, err)
		}
		listeners[fmt.Sprintf("listener-%d", i)] = lst
	}

	// Create a worker list
	return service.WorkerList{
		"nats":      natsServer,
		"tracker":   tracker,
		"sessions":  sessionManager,
		"listeners": &listeners,
	}, nil
}
