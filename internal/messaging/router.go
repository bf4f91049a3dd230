package messaging

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"

	"github.com/pixil98/go-mudcore/internal/living"
)

// Bus is the publish/subscribe surface the router needs; NatsServer
// satisfies it.
type Bus interface {
	Publish(subject string, data []byte) error
	Subscribe(subject string, handler func(data []byte)) (func(), error)
}

// World resolves bus recipients to live entities.
type World interface {
	FindPlayer(id string) (*living.Entity, bool)
	ForEachPlayer(fn func(e *living.Entity))
}

// Router drains the chat subjects and delivers lines to player entities.
// Senders publish fire-and-forget; delivery feedback (an offline tell
// target, say) travels back over the same bus pattern as a reply to the
// sender.
type Router struct {
	bus   Bus
	world World
	ready <-chan struct{}
}

func NewRouter(bus Bus, world World, ready <-chan struct{}) *Router {
	return &Router{bus: bus, world: world, ready: ready}
}

// Start subscribes once the bus is up and blocks until shutdown. Satisfies
// service.Worker.
func (r *Router) Start(ctx context.Context) error {
	if r.ready != nil {
		select {
		case <-ctx.Done():
			return nil
		case <-r.ready:
		}
	}

	subs := []struct {
		subject string
		handler func(data []byte)
	}{
		{SubjectTell, r.onTell},
		{SubjectChannel, r.onChannel},
		{SubjectSystem, r.onSystem},
	}

	var cancels []func()
	for _, s := range subs {
		cancel, err := r.bus.Subscribe(s.subject, s.handler)
		if err != nil {
			return fmt.Errorf("subscribing to %s: %w", s.subject, err)
		}
		cancels = append(cancels, cancel)
	}
	defer func() {
		for _, cancel := range cancels {
			cancel()
		}
	}()

	slog.Info("chat router started")
	<-ctx.Done()
	return nil
}

func (r *Router) onTell(data []byte) {
	var msg ChatMessage
	if err := json.Unmarshal(data, &msg); err != nil {
		slog.Warn("dropping malformed tell", "error", err)
		return
	}

	target, ok := r.world.FindPlayer(strings.ToLower(msg.To))
	if !ok {
		if sender, ok := r.world.FindPlayer(msg.FromID); ok {
			sender.Send(living.SendTextMsg{
				Text: fmt.Sprintf("No one named '%s' is listening.", msg.To),
			})
		}
		return
	}

	target.Send(living.SendTextMsg{
		Text: fmt.Sprintf("%s tells you: %s", msg.FromName, msg.Text),
	})
	if sender, ok := r.world.FindPlayer(msg.FromID); ok {
		sender.Send(living.SendTextMsg{
			Text: fmt.Sprintf("You tell %s: %s", target.Name(), msg.Text),
		})
	}
}

func (r *Router) onChannel(data []byte) {
	var msg ChatMessage
	if err := json.Unmarshal(data, &msg); err != nil {
		slog.Warn("dropping malformed channel message", "error", err)
		return
	}

	line := fmt.Sprintf("[%s] %s: %s", msg.Channel, msg.FromName, msg.Text)
	r.world.ForEachPlayer(func(e *living.Entity) {
		if e.ID() == msg.FromID {
			e.Send(living.SendTextMsg{
				Text: fmt.Sprintf("[%s] You: %s", msg.Channel, msg.Text),
			})
			return
		}
		e.Send(living.SendTextMsg{Text: line})
	})
}

func (r *Router) onSystem(data []byte) {
	var msg SystemMessage
	if err := json.Unmarshal(data, &msg); err != nil {
		slog.Warn("dropping malformed system message", "error", err)
		return
	}

	line := fmt.Sprintf("[SYSTEM] %s", msg.Text)
	r.world.ForEachPlayer(func(e *living.Entity) {
		e.Send(living.SendTextMsg{Text: line})
	})
}
