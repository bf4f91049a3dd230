package commands

import (
	"github.com/pixil98/go-mudcore/internal/living"
)

// LookHandlerFactory renders the actor's current room.
type LookHandlerFactory struct{}

func (f *LookHandlerFactory) ValidateConfig(config map[string]string) error { return nil }

func (f *LookHandlerFactory) Create(config map[string]string) (CommandFunc, error) {
	return func(ctx *CommandContext) error {
		r := ctx.Actor.Room()
		if r == nil {
			return living.NewUserError("You are nowhere. How unsettling.")
		}
		text, err := r.Look(ctx.Actor)
		if err != nil {
			return err
		}
		ctx.Actor.Reply(text)
		return nil
	}, nil
}
