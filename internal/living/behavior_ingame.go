package living

import (
	"errors"
	"log/slog"
	"strings"
)

// InGameBehavior hands free text to the command dispatcher. Game-logic
// failures come back as user errors and are shown verbatim; anything else is
// logged and the player sees a generic line instead of internals.
type InGameBehavior struct {
	BaseBehavior

	dispatcher Dispatcher
}

func NewInGameBehavior(dispatcher Dispatcher) *InGameBehavior {
	return &InGameBehavior{dispatcher: dispatcher}
}

func (b *InGameBehavior) Fights() bool { return true }

func (b *InGameBehavior) HandleInput(e *Entity, input string) {
	input = strings.TrimSpace(input)
	if input == "" {
		return
	}
	if b.dispatcher == nil {
		return
	}

	err := b.dispatcher.Dispatch(e, input)
	if err == nil {
		return
	}

	var uerr *UserError
	if errors.As(err, &uerr) {
		e.Reply(uerr.Error())
		return
	}

	slog.Error("command failed", "entity", e.ID(), "input", input, "error", err)
	e.Reply("Something went wrong.")
}
