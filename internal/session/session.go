package session

import (
	"bufio"
	"io"
	"log/slog"
	"sync"

	"github.com/google/uuid"

	"github.com/pixil98/go-mudcore/internal/living"
)

// Session is one socket's lifetime: a read loop feeding lines to whichever
// entity currently owns the connection. A session starts on a throwaway
// login actor and swaps to the real character entity once authentication
// completes.
type Session struct {
	manager *Manager
	conn    io.ReadWriteCloser
	out     *connOutput

	mu     sync.Mutex
	entity *living.Entity
}

// NewSession wires a fresh connection to a login actor and returns the
// session. Call Run to start pumping input; it blocks until the socket
// closes.
func (m *Manager) NewSession(conn io.ReadWriteCloser) *Session {
	s := &Session{
		manager: m,
		conn:    conn,
		out:     newConnOutput(conn),
	}

	login := living.NewPlayer("login-"+uuid.NewString(), "guest", s.out,
		living.WithHooks(living.Hooks{
			OnEnterWorld: func(e *living.Entity, u *living.User) {
				m.attach(s, e, u)
			},
		}))
	login.Become(living.NewGuestBehavior(m.users, m.dispatcher))
	s.entity = login
	login.Start()

	return s
}

// Run pumps input lines into the owning entity until the socket drops, then
// routes the disconnect: in-game characters go link-dead, half-finished
// logins are discarded.
func (s *Session) Run() {
	scanner := bufio.NewScanner(s.conn)
	for scanner.Scan() {
		e := s.current()
		if e == nil {
			break
		}
		e.Send(living.CommandMsg{
			TraceID: uuid.NewString(),
			Text:    scanner.Text(),
		})
	}
	if err := scanner.Err(); err != nil {
		slog.Debug("session read ended", "error", err)
	}
	_ = s.conn.Close()

	e := s.current()
	if e == nil {
		return
	}
	if e.InGame() {
		// A reconnect may have rebound the entity to another socket while
		// this loop was winding down; only the owning session marks the
		// character link-dead.
		if e.Output() == s.out {
			s.manager.MarkLinkDead(e)
		}
		return
	}
	e.Stop()
}

func (s *Session) current() *living.Entity {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.entity
}

func (s *Session) swap(e *living.Entity) {
	s.mu.Lock()
	s.entity = e
	s.mu.Unlock()
}
