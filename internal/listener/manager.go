package listener

import (
	"context"
	"io"
	"log/slog"

	"github.com/pixil98/go-mudcore/internal/session"
)

// ConnectionManager hands accepted sockets to the session layer. One call to
// AcceptConnection runs the whole session and returns when the socket drops.
type ConnectionManager struct {
	sessions *session.Manager
}

func NewConnectionManager(sessions *session.Manager) *ConnectionManager {
	return &ConnectionManager{
		sessions: sessions,
	}
}

func (m *ConnectionManager) AcceptConnection(ctx context.Context, conn io.ReadWriteCloser) {
	slog.DebugContext(ctx, "connection accepted")
	s := m.sessions.NewSession(conn)
	s.Run()
	slog.DebugContext(ctx, "connection closed")
}
