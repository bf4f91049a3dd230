package commands

import (
	"github.com/pixil98/go-mudcore/internal/living"
)

// QuitHandlerFactory logs the actor out. The logout itself runs off the
// actor's goroutine: it has to flush a final snapshot through the mailbox
// this handler is currently executing on.
type QuitHandlerFactory struct {
	quitter Quitter
}

func NewQuitHandlerFactory(quitter Quitter) *QuitHandlerFactory {
	return &QuitHandlerFactory{quitter: quitter}
}

func (f *QuitHandlerFactory) ValidateConfig(config map[string]string) error { return nil }

func (f *QuitHandlerFactory) Create(config map[string]string) (CommandFunc, error) {
	return func(ctx *CommandContext) error {
		if ctx.Actor.InCombat() {
			return living.NewUserError("You cannot quit while fighting!")
		}
		ctx.Actor.Reply("Farewell, adventurer.")
		go f.quitter.Logout(ctx.Actor)
		return nil
	}, nil
}
