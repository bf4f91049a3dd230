package living

import (
	"errors"
	"fmt"

	"github.com/pixil98/go-mudcore/internal/game"
)

// Room is the slice of a room actor a living entity interacts with. All
// methods are safe to call from any goroutine; ask-style methods block until
// the room answers or the ask timeout elapses.
type Room interface {
	ID() string
	Name() string

	Enter(e *Entity, direction string) error
	Leave(e *Entity, direction string)

	Say(speaker *Entity, text string)
	Broadcast(text string)
	BroadcastToOthers(excludeID, text string)

	TryPickItem(query string) (*game.Item, error)
	DropItem(item *game.Item)
	FindActor(id string) (*Entity, error)
	RemoveDead(e *Entity)

	Look(viewer *Entity) (string, error)
}

// Output is the transport side of a player session. Implementations must be
// safe for concurrent writers.
type Output interface {
	WriteLine(text string) error
	Close() error
}

// Dispatcher turns one line of raw player input into game actions. A
// returned *UserError is shown to the player verbatim; any other error is
// logged and replaced with a generic reply.
type Dispatcher interface {
	Dispatch(e *Entity, input string) error
}

// User is an account record consulted during login.
type User struct {
	Name         string
	PasswordHash []byte
	CharacterID  string
}

var (
	ErrUserNotFound = errors.New("user not found")
	ErrUserExists   = errors.New("user already exists")
)

// UserStore holds account credentials.
type UserStore interface {
	Lookup(name string) (*User, error)
	Create(u *User) error
}

// UserError is a game-logic failure whose text is meant for the player.
type UserError struct {
	msg string
}

func NewUserError(format string, args ...any) *UserError {
	return &UserError{msg: fmt.Sprintf(format, args...)}
}

func (e *UserError) Error() string {
	return e.msg
}
