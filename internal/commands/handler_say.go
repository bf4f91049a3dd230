package commands

import (
	"github.com/pixil98/go-mudcore/internal/living"
)

// SayHandlerFactory speaks to everyone in the actor's room.
type SayHandlerFactory struct{}

func (f *SayHandlerFactory) ValidateConfig(config map[string]string) error { return nil }

func (f *SayHandlerFactory) Create(config map[string]string) (CommandFunc, error) {
	return func(ctx *CommandContext) error {
		if ctx.Args == "" {
			return living.NewUserError("Say what?")
		}
		r := ctx.Actor.Room()
		if r == nil {
			return living.NewUserError("Nobody can hear you here.")
		}
		r.Say(ctx.Actor, ctx.Args)
		return nil
	}, nil
}
