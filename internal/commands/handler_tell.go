package commands

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/pixil98/go-mudcore/internal/living"
	"github.com/pixil98/go-mudcore/internal/messaging"
)

// TellHandlerFactory whispers to one player anywhere in the world, routed
// over the message bus.
type TellHandlerFactory struct {
	pub Publisher
}

func NewTellHandlerFactory(pub Publisher) *TellHandlerFactory {
	return &TellHandlerFactory{pub: pub}
}

func (f *TellHandlerFactory) ValidateConfig(config map[string]string) error { return nil }

func (f *TellHandlerFactory) Create(config map[string]string) (CommandFunc, error) {
	return func(ctx *CommandContext) error {
		target, text, _ := strings.Cut(ctx.Args, " ")
		text = strings.TrimSpace(text)
		if target == "" || text == "" {
			return living.NewUserError("Tell whom what?")
		}

		data, err := json.Marshal(messaging.ChatMessage{
			FromID:   ctx.Actor.ID(),
			FromName: ctx.Actor.Name(),
			To:       target,
			Text:     text,
		})
		if err != nil {
			return fmt.Errorf("encoding tell: %w", err)
		}
		return f.pub.Publish(messaging.SubjectTell, data)
	}, nil
}

// ChannelHandlerFactory speaks on a named world-wide channel.
// Config:
//   - channel (required): the channel name shown in brackets
type ChannelHandlerFactory struct {
	pub Publisher
}

func NewChannelHandlerFactory(pub Publisher) *ChannelHandlerFactory {
	return &ChannelHandlerFactory{pub: pub}
}

func (f *ChannelHandlerFactory) ValidateConfig(config map[string]string) error {
	if config["channel"] == "" {
		return fmt.Errorf("channel is required")
	}
	return nil
}

func (f *ChannelHandlerFactory) Create(config map[string]string) (CommandFunc, error) {
	channel := config["channel"]

	return func(ctx *CommandContext) error {
		if ctx.Args == "" {
			return living.NewUserError("Say what on the %s channel?", channel)
		}

		data, err := json.Marshal(messaging.ChatMessage{
			FromID:   ctx.Actor.ID(),
			FromName: ctx.Actor.Name(),
			Channel:  channel,
			Text:     ctx.Args,
		})
		if err != nil {
			return fmt.Errorf("encoding channel message: %w", err)
		}
		return f.pub.Publish(messaging.SubjectChannel, data)
	}, nil
}
