package commands

import (
	"fmt"

	"github.com/pixil98/go-mudcore/internal/living"
)

// GetHandlerFactory picks an item up off the ground. The room guarantees at
// most one contender wins a contested grab.
type GetHandlerFactory struct{}

func (f *GetHandlerFactory) ValidateConfig(config map[string]string) error { return nil }

func (f *GetHandlerFactory) Create(config map[string]string) (CommandFunc, error) {
	return func(ctx *CommandContext) error {
		if ctx.Args == "" {
			return living.NewUserError("Get what?")
		}
		r := ctx.Actor.Room()
		if r == nil {
			return living.NewUserError("There is nothing here to take.")
		}

		item, err := r.TryPickItem(ctx.Args)
		if err != nil {
			return err
		}
		if item == nil {
			return living.NewUserError("You don't see a '%s' here.", ctx.Args)
		}

		ctx.Actor.Inventory().Add(item)
		ctx.Actor.Reply(fmt.Sprintf("You pick up %s.", item.DisplayName()))
		r.BroadcastToOthers(ctx.Actor.ID(),
			fmt.Sprintf("%s picks up %s.", ctx.Actor.Name(), item.DisplayName()))
		return nil
	}, nil
}
