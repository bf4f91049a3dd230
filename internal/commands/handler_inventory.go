package commands

import (
	"strings"
)

// InventoryHandlerFactory lists what the actor is carrying.
type InventoryHandlerFactory struct{}

func (f *InventoryHandlerFactory) ValidateConfig(config map[string]string) error { return nil }

func (f *InventoryHandlerFactory) Create(config map[string]string) (CommandFunc, error) {
	return func(ctx *CommandContext) error {
		items := ctx.Actor.Inventory().Items()
		if len(items) == 0 {
			ctx.Actor.Reply("You are carrying nothing.")
			return nil
		}

		var b strings.Builder
		b.WriteString("You are carrying:")
		for _, item := range items {
			b.WriteString("\r\n  " + item.DisplayName())
		}
		ctx.Actor.Reply(b.String())
		return nil
	}, nil
}
