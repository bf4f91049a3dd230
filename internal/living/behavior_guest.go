package living

import (
	"errors"
	"fmt"
	"log/slog"
	"regexp"
	"strings"

	"golang.org/x/crypto/bcrypt"
)

// DefaultMaxAuthRetries caps failed password attempts before the connection
// is force-closed.
const DefaultMaxAuthRetries = 5

var namePattern = regexp.MustCompile(`^[A-Za-z]{3,16}$`)

// GuestBehavior walks a fresh connection through the login state machine:
// name prompt, then either password entry for a known account or password
// creation for a new one, handing off to InGameBehavior on success.
type GuestBehavior struct {
	BaseBehavior

	users      UserStore
	dispatcher Dispatcher
	maxRetries int

	state       ConnState
	pendingName string
	retries     int
}

type GuestOpt func(*GuestBehavior)

// WithMaxRetries overrides the failed-attempt cap.
func WithMaxRetries(n int) GuestOpt {
	return func(g *GuestBehavior) {
		g.maxRetries = n
	}
}

func NewGuestBehavior(users UserStore, dispatcher Dispatcher, opts ...GuestOpt) *GuestBehavior {
	g := &GuestBehavior{
		users:      users,
		dispatcher: dispatcher,
		maxRetries: DefaultMaxAuthRetries,
		state:      StateConnected,
	}
	for _, o := range opts {
		o(g)
	}
	return g
}

func (g *GuestBehavior) Greet(e *Entity) {
	e.Reply("Welcome, traveler.")
	e.Reply("What is your name?")
	g.state = StateConnected
}

func (g *GuestBehavior) HandleInput(e *Entity, input string) {
	input = strings.TrimSpace(input)
	if input == "" {
		return
	}

	switch g.state {
	case StateConnected:
		g.handleName(e, input)
	case StateCreatingPassword:
		g.handleNewPassword(e, input)
	case StateEnteringPassword:
		g.handlePassword(e, input)
	default:
		// Input in any other state is dropped.
	}
}

// fail counts one rejected credential attempt. The cap covers the whole
// login flow, not just wrong passwords; once it is hit the connection is
// cut.
func (g *GuestBehavior) fail(e *Entity, prompt string) {
	g.retries++
	if g.retries >= g.maxRetries {
		e.Reply("Too many failed attempts. Goodbye.")
		e.CloseOutput()
		return
	}
	e.Reply(prompt)
}

func (g *GuestBehavior) handleName(e *Entity, name string) {
	if !namePattern.MatchString(name) {
		g.fail(e, "Names are 3 to 16 letters. Try again.")
		return
	}

	u, err := g.users.Lookup(strings.ToLower(name))
	switch {
	case err == nil:
		g.pendingName = strings.ToLower(name)
		g.state = StateEnteringPassword
		e.Reply(fmt.Sprintf("Welcome back, %s. Password:", u.Name))
	case errors.Is(err, ErrUserNotFound):
		g.pendingName = name
		g.state = StateCreatingPassword
		e.Reply(fmt.Sprintf("A new face! %s, choose a password:", name))
	default:
		slog.Error("user lookup failed", "name", name, "error", err)
		e.Reply("Something went wrong.")
	}
}

func (g *GuestBehavior) handleNewPassword(e *Entity, password string) {
	if len(password) < 4 {
		g.fail(e, "Passwords need at least 4 characters. Choose a password:")
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		slog.Error("hashing password", "error", err)
		e.Reply("Something went wrong.")
		return
	}

	u := &User{
		Name:         g.pendingName,
		PasswordHash: hash,
		CharacterID:  strings.ToLower(g.pendingName),
	}
	if err := g.users.Create(u); err != nil {
		if errors.Is(err, ErrUserExists) {
			e.Reply("Someone claimed that name while you hesitated. What is your name?")
			g.state = StateConnected
			return
		}
		slog.Error("creating user", "name", u.Name, "error", err)
		e.Reply("Something went wrong.")
		return
	}

	g.enterWorld(e, u)
}

func (g *GuestBehavior) handlePassword(e *Entity, password string) {
	u, err := g.users.Lookup(g.pendingName)
	if err != nil {
		slog.Error("user lookup failed", "name", g.pendingName, "error", err)
		e.Reply("Something went wrong.")
		return
	}

	if bcrypt.CompareHashAndPassword(u.PasswordHash, []byte(password)) != nil {
		g.fail(e, "Wrong password. Try again:")
		return
	}

	g.enterWorld(e, u)
}

func (g *GuestBehavior) enterWorld(e *Entity, u *User) {
	g.state = StateInGame
	e.inGame.Store(true)
	e.Become(NewInGameBehavior(g.dispatcher))
	if e.hooks.OnEnterWorld != nil {
		e.hooks.OnEnterWorld(e, u)
	}
}
