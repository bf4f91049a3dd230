package commands

import (
	"fmt"
	"strings"

	"github.com/pixil98/go-mudcore/internal/living"
)

// oppositeDirections maps a travel direction to the direction arrivals are
// announced from in the destination room.
var oppositeDirections = map[string]string{
	"north": "south",
	"south": "north",
	"east":  "west",
	"west":  "east",
	"up":    "below",
	"down":  "above",
}

// MoveHandlerFactory creates handlers that move the actor between rooms.
// Config:
//   - direction (required): the exit to take (north, south, east, west, up, down)
type MoveHandlerFactory struct {
	world World
}

func NewMoveHandlerFactory(world World) *MoveHandlerFactory {
	return &MoveHandlerFactory{world: world}
}

func (f *MoveHandlerFactory) ValidateConfig(config map[string]string) error {
	direction := config["direction"]
	if direction == "" {
		return fmt.Errorf("direction is required")
	}
	if _, ok := oppositeDirections[strings.ToLower(direction)]; !ok {
		return fmt.Errorf("unknown direction %q", direction)
	}
	return nil
}

func (f *MoveHandlerFactory) Create(config map[string]string) (CommandFunc, error) {
	direction := strings.ToLower(config["direction"])

	return func(ctx *CommandContext) error {
		if ctx.Actor.InCombat() {
			return living.NewUserError("You cannot flee mid-swing!")
		}

		cur := ctx.Actor.Room()
		if cur == nil {
			return living.NewUserError("You are in an invalid location.")
		}

		from, err := f.world.Room(cur.ID())
		if err != nil {
			return fmt.Errorf("resolving current room: %w", err)
		}
		destID, ok := from.Exits()[direction]
		if !ok {
			return living.NewUserError("You cannot go %s from here.", direction)
		}

		to, err := f.world.Room(destID)
		if err != nil {
			return living.NewUserError("Alas, you cannot go that way...")
		}

		from.Leave(ctx.Actor, direction)
		if err := to.Enter(ctx.Actor, oppositeDirections[direction]); err != nil {
			return fmt.Errorf("entering %s: %w", destID, err)
		}

		text, err := to.Look(ctx.Actor)
		if err != nil {
			return err
		}
		ctx.Actor.Reply(text)
		return nil
	}, nil
}
