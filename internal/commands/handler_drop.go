package commands

import (
	"fmt"

	"github.com/pixil98/go-mudcore/internal/game"
	"github.com/pixil98/go-mudcore/internal/living"
)

// DropHandlerFactory moves an inventory item to the floor of the actor's
// room.
type DropHandlerFactory struct{}

func (f *DropHandlerFactory) ValidateConfig(config map[string]string) error { return nil }

func (f *DropHandlerFactory) Create(config map[string]string) (CommandFunc, error) {
	return func(ctx *CommandContext) error {
		if ctx.Args == "" {
			return living.NewUserError("Drop what?")
		}
		r := ctx.Actor.Room()
		if r == nil {
			return living.NewUserError("There is no floor here.")
		}

		query, n := game.ParseQuery(ctx.Args)
		item := ctx.Actor.Inventory().Find(query, n)
		if item == nil {
			return living.NewUserError("You don't have a '%s'.", query)
		}

		ctx.Actor.Inventory().Remove(item.InstanceID)
		r.DropItem(item)
		ctx.Actor.Reply(fmt.Sprintf("You drop %s.", item.DisplayName()))
		r.BroadcastToOthers(ctx.Actor.ID(),
			fmt.Sprintf("%s drops %s.", ctx.Actor.Name(), item.DisplayName()))
		return nil
	}, nil
}
