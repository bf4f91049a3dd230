package commands

import (
	"fmt"
	"strings"

	"github.com/pixil98/go-mudcore/internal/living"
	"github.com/pixil98/go-mudcore/internal/room"
	"github.com/pixil98/go-mudcore/internal/storage"
)

// World is the slice of the world manager command handlers need.
type World interface {
	Room(id string) (*room.Room, error)
	OnlinePlayers() []string
}

// Quitter retires a character from the world. The session layer provides it.
type Quitter interface {
	Logout(e *living.Entity)
}

// Publisher pushes messages onto the message bus.
type Publisher interface {
	Publish(subject string, data []byte) error
}

// CommandContext is everything a compiled handler gets per invocation.
// Handlers run on the acting entity's goroutine, so its inventory and
// equipment are safe to touch directly.
type CommandContext struct {
	Actor  *living.Entity
	Args   string
	Config map[string]string
}

// CommandFunc is a compiled command implementation.
type CommandFunc func(ctx *CommandContext) error

// HandlerFactory compiles command configs into executable functions.
// Implementations validate up front so bad asset files fail at startup, not
// at the first keystroke.
type HandlerFactory interface {
	ValidateConfig(config map[string]string) error
	Create(config map[string]string) (CommandFunc, error)
}

type compiledCommand struct {
	cmd *Command
	fn  CommandFunc
}

// Dispatcher routes player input lines to compiled commands. It implements
// living.Dispatcher.
type Dispatcher struct {
	store     storage.Storer[*Command]
	factories map[string]HandlerFactory
	compiled  map[string]*compiledCommand
}

func NewDispatcher(store storage.Storer[*Command]) *Dispatcher {
	return &Dispatcher{
		store:     store,
		factories: make(map[string]HandlerFactory),
		compiled:  make(map[string]*compiledCommand),
	}
}

// RegisterFactory registers a handler factory by name. The name must match
// the "handler" field in command asset files.
func (d *Dispatcher) RegisterFactory(name string, factory HandlerFactory) error {
	if name == "" {
		return fmt.Errorf("handler name cannot be empty")
	}
	if factory == nil {
		return fmt.Errorf("handler factory cannot be nil")
	}
	if _, exists := d.factories[name]; exists {
		return fmt.Errorf("handler factory %q already registered", name)
	}
	d.factories[name] = factory
	return nil
}

// CompileAll compiles every command in the store. Call after all factories
// are registered.
func (d *Dispatcher) CompileAll() error {
	for id, cmd := range d.store.GetAll() {
		if err := d.compile(cmd); err != nil {
			return fmt.Errorf("compiling command %q: %w", id, err)
		}
	}
	return nil
}

func (d *Dispatcher) compile(cmd *Command) error {
	factory, ok := d.factories[cmd.Handler]
	if !ok {
		return fmt.Errorf("unknown handler %q", cmd.Handler)
	}

	if err := factory.ValidateConfig(cmd.Config); err != nil {
		return fmt.Errorf("validating config: %w", err)
	}

	fn, err := factory.Create(cmd.Config)
	if err != nil {
		return fmt.Errorf("creating handler: %w", err)
	}

	compiled := &compiledCommand{cmd: cmd, fn: fn}
	for _, alias := range cmd.Aliases {
		alias = strings.ToLower(alias)
		if _, exists := d.compiled[alias]; exists {
			return fmt.Errorf("alias %q bound twice", alias)
		}
		d.compiled[alias] = compiled
	}
	return nil
}

// Dispatch implements living.Dispatcher: first word selects the command,
// the remainder becomes its argument string.
func (d *Dispatcher) Dispatch(e *living.Entity, input string) error {
	input = strings.TrimSpace(input)
	if input == "" {
		return nil
	}

	name, rest, _ := strings.Cut(input, " ")
	compiled, ok := d.compiled[strings.ToLower(name)]
	if !ok {
		return living.NewUserError("Huh? Try 'help'.")
	}

	return compiled.fn(&CommandContext{
		Actor:  e,
		Args:   strings.TrimSpace(rest),
		Config: compiled.cmd.Config,
	})
}

// Commands returns every compiled command keyed by primary alias, for help
// output.
func (d *Dispatcher) Commands() map[string]*Command {
	out := make(map[string]*Command)
	for _, c := range d.compiled {
		if len(c.cmd.Aliases) > 0 {
			out[strings.ToLower(c.cmd.Aliases[0])] = c.cmd
		}
	}
	return out
}
