package commands

import (
	"fmt"

	"github.com/pixil98/go-mudcore/internal/living"
)

// KillHandlerFactory engages a target in the actor's room.
type KillHandlerFactory struct {
	world World
}

func NewKillHandlerFactory(world World) *KillHandlerFactory {
	return &KillHandlerFactory{world: world}
}

func (f *KillHandlerFactory) ValidateConfig(config map[string]string) error { return nil }

func (f *KillHandlerFactory) Create(config map[string]string) (CommandFunc, error) {
	return func(ctx *CommandContext) error {
		if ctx.Args == "" {
			return living.NewUserError("Kill what?")
		}
		cur := ctx.Actor.Room()
		if cur == nil {
			return living.NewUserError("There is nothing here to fight.")
		}

		r, err := f.world.Room(cur.ID())
		if err != nil {
			return fmt.Errorf("resolving current room: %w", err)
		}

		target, err := r.FindTarget(ctx.Args)
		if err != nil {
			return err
		}
		if target == nil {
			return living.NewUserError("You don't see a '%s' here.", ctx.Args)
		}
		if target == ctx.Actor {
			return living.NewUserError("Hitting yourself solves nothing.")
		}

		ctx.Actor.Reply(fmt.Sprintf("You attack %s!", target.Name()))
		ctx.Actor.Attack(target)
		return nil
	}, nil
}
