package commands

import (
	"fmt"

	"github.com/pixil98/go-mudcore/internal/game"
)

// defaultScoreTemplate renders the stat sheet when an asset file doesn't
// override it.
const defaultScoreTemplate = `{{ .Name }}, level {{ .Stats.Level }} ({{ .Stats.Experience }} exp)
  HP: {{ .Stats.HP }}/{{ .Stats.MaxHP }}  MP: {{ .Stats.MP }}/{{ .Stats.MaxMP }}
  Str {{ .Stats.Attributes.Strength }}  Int {{ .Stats.Attributes.Intellect }}  Dex {{ .Stats.Attributes.Dexterity }}  Con {{ .Stats.Attributes.Constitution }}
  Damage {{ .Stats.MinDamage }}-{{ .Stats.MaxDamage }}  Defense {{ .Stats.Defense }}`

// ScoreHandlerFactory shows the actor's stat sheet.
// Config:
//   - template (optional): overrides the default sheet layout
type ScoreHandlerFactory struct{}

type scoreData struct {
	Name  string
	Stats game.LivingStats
}

func (f *ScoreHandlerFactory) ValidateConfig(config map[string]string) error {
	if tmpl, ok := config["template"]; ok {
		if _, err := ExpandTemplate(tmpl, scoreData{}); err != nil {
			return fmt.Errorf("score template: %w", err)
		}
	}
	return nil
}

func (f *ScoreHandlerFactory) Create(config map[string]string) (CommandFunc, error) {
	tmpl := config["template"]
	if tmpl == "" {
		tmpl = defaultScoreTemplate
	}

	return func(ctx *CommandContext) error {
		text, err := ExpandTemplate(tmpl, scoreData{
			Name:  ctx.Actor.Name(),
			Stats: *ctx.Actor.Stats(),
		})
		if err != nil {
			return fmt.Errorf("rendering score: %w", err)
		}
		ctx.Actor.Reply(text)
		return nil
	}, nil
}
