package commands

import (
	"fmt"
	"sort"
	"strings"
)

// WhoHandlerFactory lists everyone online.
type WhoHandlerFactory struct {
	world World
}

func NewWhoHandlerFactory(world World) *WhoHandlerFactory {
	return &WhoHandlerFactory{world: world}
}

func (f *WhoHandlerFactory) ValidateConfig(config map[string]string) error { return nil }

func (f *WhoHandlerFactory) Create(config map[string]string) (CommandFunc, error) {
	return func(ctx *CommandContext) error {
		names := f.world.OnlinePlayers()
		sort.Strings(names)

		var b strings.Builder
		b.WriteString(fmt.Sprintf("Adventurers online: %d", len(names)))
		for _, name := range names {
			b.WriteString("\r\n  " + name)
		}
		ctx.Actor.Reply(b.String())
		return nil
	}, nil
}
