package session

import (
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/pixil98/go-mudcore/internal/display"
	"github.com/pixil98/go-mudcore/internal/living"
)

// DefaultLinkDeadGrace is how long a link-dead character lingers in the
// world before being forced out.
const DefaultLinkDeadGrace = 10 * time.Minute

// Clock abstracts time for the link-dead bookkeeping, so tests can pin it.
type Clock interface {
	Now() time.Time
}

type systemClock struct{}

func (systemClock) Now() time.Time { return time.Now() }

// World is the slice of the world manager the session layer needs.
type World interface {
	FindPlayer(id string) (*living.Entity, bool)
	UnregisterPlayer(id string)
	Hooks() living.Hooks
}

// Manager binds sockets to living entities. It owns the login handoff, the
// link-dead grace window, and reconnect takeover.
type Manager struct {
	world      World
	users      living.UserStore
	dispatcher living.Dispatcher

	grace time.Duration
	clock Clock

	mu       sync.Mutex
	linkDead map[string]time.Time
}

type Opt func(*Manager)

// WithGrace overrides the link-dead grace window.
func WithGrace(d time.Duration) Opt {
	return func(m *Manager) { m.grace = d }
}

// WithClock replaces the wall clock, for tests.
func WithClock(c Clock) Opt {
	return func(m *Manager) { m.clock = c }
}

func NewManager(world World, users living.UserStore, dispatcher living.Dispatcher, opts ...Opt) *Manager {
	m := &Manager{
		world:      world,
		users:      users,
		dispatcher: dispatcher,
		grace:      DefaultLinkDeadGrace,
		clock:      systemClock{},
		linkDead:   map[string]time.Time{},
	}
	for _, o := range opts {
		o(m)
	}
	return m
}

// attach completes authentication for a session: either take over the
// character's existing entity or build a fresh one. Runs on the login
// actor's goroutine.
func (m *Manager) attach(s *Session, login *living.Entity, u *living.User) {
	if existing, ok := m.world.FindPlayer(u.CharacterID); ok && existing != login {
		m.takeover(s, existing)
		login.Stop()
		return
	}

	e := living.NewPlayer(u.CharacterID, display.Capitalize(u.Name), s.out,
		living.WithHooks(m.world.Hooks()))
	e.BeginPlay(m.dispatcher)
	s.swap(e)

	// World setup runs before the mailbox starts, so nothing races with the
	// character restore.
	if hooks := m.world.Hooks(); hooks.OnEnterWorld != nil {
		hooks.OnEnterWorld(e, u)
	}
	e.Start()
	login.Stop()

	slog.Info("player entered world", "character", u.CharacterID)
}

// takeover rebinds a live entity to a new connection. The displaced socket,
// if still attached, is closed.
func (m *Manager) takeover(s *Session, e *living.Entity) {
	if old := e.BindOutput(s.out); old != nil {
		_ = old.Close()
	}
	m.clearLinkDead(e.ID())
	e.SetLinkDead(false)
	s.swap(e)

	e.Reply("You shake off the haze and regain your senses.")
	if r := e.Room(); r != nil {
		r.BroadcastToOthers(e.ID(), fmt.Sprintf("%s has reconnected.", e.Name()))
		if text, err := r.Look(e); err == nil {
			e.Reply(text)
		}
	}
	slog.Info("player reconnected", "character", e.ID())
}

// MarkLinkDead records a dropped socket. The character stays in the world
// for the grace window; if no reconnect lands in time, it is logged out.
func (m *Manager) MarkLinkDead(e *living.Entity) {
	at := m.clock.Now()
	m.mu.Lock()
	m.linkDead[e.ID()] = at
	m.mu.Unlock()

	e.SetLinkDead(true)
	if r := e.Room(); r != nil {
		r.BroadcastToOthers(e.ID(), fmt.Sprintf("%s has lost their link.", e.Name()))
	}
	slog.Info("player link-dead", "character", e.ID(), "grace", m.grace)

	time.AfterFunc(m.grace, func() { m.expireLinkDead(e, at) })
}

// expireLinkDead fires when a grace timer elapses. The timestamp comparison
// guards against a reconnect-then-drop cycle inside the window: only the
// timer matching the still-current drop forces the logout.
func (m *Manager) expireLinkDead(e *living.Entity, at time.Time) {
	m.mu.Lock()
	recorded, ok := m.linkDead[e.ID()]
	if !ok || !recorded.Equal(at) {
		m.mu.Unlock()
		return
	}
	delete(m.linkDead, e.ID())
	m.mu.Unlock()

	slog.Info("link-dead grace expired", "character", e.ID())
	m.Logout(e)
}

func (m *Manager) clearLinkDead(id string) {
	m.mu.Lock()
	delete(m.linkDead, id)
	m.mu.Unlock()
}

// Logout removes a character from the world, flushing a final snapshot
// before the mailbox stops. The flush runs before the room Leave: Leave
// clears the entity's room pointer on the room's goroutine, so a snapshot
// taken after it can record an empty location and lose the character's
// position.
func (m *Manager) Logout(e *living.Entity) {
	saved := make(chan struct{}, 1)
	e.Send(living.SaveMsg{Reply: saved})
	select {
	case <-saved:
	case <-time.After(time.Second):
		slog.Warn("final save timed out", "character", e.ID())
	}

	if r := e.Room(); r != nil {
		r.Leave(e, "")
	}
	m.world.UnregisterPlayer(e.ID())

	e.CloseOutput()
	e.Stop()
	slog.Info("player logged out", "character", e.ID())
}
