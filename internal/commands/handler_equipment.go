package commands

import (
	"fmt"
	"sort"
	"strings"

	"github.com/pixil98/go-mudcore/internal/game"
	"github.com/pixil98/go-mudcore/internal/living"
)

// WearHandlerFactory equips an inventory item into its slot.
type WearHandlerFactory struct{}

func (f *WearHandlerFactory) ValidateConfig(config map[string]string) error { return nil }

func (f *WearHandlerFactory) Create(config map[string]string) (CommandFunc, error) {
	return func(ctx *CommandContext) error {
		if ctx.Args == "" {
			return living.NewUserError("Wear what?")
		}
		ctx.Actor.Reply(ctx.Actor.EquipItem(ctx.Args))
		return nil
	}, nil
}

// RemoveHandlerFactory returns an equipped item to inventory.
type RemoveHandlerFactory struct{}

func (f *RemoveHandlerFactory) ValidateConfig(config map[string]string) error { return nil }

func (f *RemoveHandlerFactory) Create(config map[string]string) (CommandFunc, error) {
	return func(ctx *CommandContext) error {
		if ctx.Args == "" {
			return living.NewUserError("Remove what?")
		}
		ctx.Actor.Reply(ctx.Actor.UnequipItem(ctx.Args))
		return nil
	}, nil
}

// EquipmentHandlerFactory lists what the actor is wearing, slot by slot.
type EquipmentHandlerFactory struct{}

func (f *EquipmentHandlerFactory) ValidateConfig(config map[string]string) error { return nil }

func (f *EquipmentHandlerFactory) Create(config map[string]string) (CommandFunc, error) {
	return func(ctx *CommandContext) error {
		type worn struct {
			slot game.Slot
			name string
		}
		var items []worn
		ctx.Actor.Equipment().Each(func(slot game.Slot, item *game.Item) {
			items = append(items, worn{slot: slot, name: item.DisplayName()})
		})
		if len(items) == 0 {
			ctx.Actor.Reply("You are wearing nothing of note.")
			return nil
		}
		sort.Slice(items, func(i, j int) bool { return items[i].slot < items[j].slot })

		var b strings.Builder
		b.WriteString("You are wearing:")
		for _, w := range items {
			b.WriteString(fmt.Sprintf("\r\n  [%s] %s", w.slot, w.name))
		}
		ctx.Actor.Reply(b.String())
		return nil
	}, nil
}
