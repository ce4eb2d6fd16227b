package listener

import (
	"context"
	"io"
	"log/slog"
)

// SessionRunner drives one player connection from accept to disconnect.
type SessionRunner interface {
	RunSession(ctx context.Context, conn io.ReadWriter) error
}

type ConnectionManager struct {
	runner SessionRunner
}

func NewConnectionManager(r SessionRunner) *ConnectionManager {
	return &ConnectionManager{
		runner: r,
	}
}

func (m *ConnectionManager) AcceptConnection(ctx context.Context, conn io.ReadWriter) {
	if err := m.runner.RunSession(ctx, conn); err != nil {
		slog.WarnContext(ctx, "player session", "error", err)
	}
}
