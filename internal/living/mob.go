package living

import (
	"github.com/google/uuid"

	"github.com/pixil98/go-mudcore/internal/combat"
	"github.com/pixil98/go-mudcore/internal/game"
)

// NewMob spawns an actor instance from a mob template. The behavior is fixed
// at creation from the template flags: a shop id makes a merchant, the
// aggressive flag an attacker-on-sight, everything else a passive mob.
func NewMob(templateID string, tpl *game.MobTemplate, opts ...Opt) *Entity {
	id := "mob-" + uuid.New().String()

	e := newEntity(id, tpl.Name, KindMob, opts...)
	e.mobTemplate = tpl
	e.templateID = templateID
	e.stats = tpl.NewStats()
	e.aggro = combat.NewAggroTable()

	switch {
	case tpl.ShopID != "":
		e.behavior = NewMerchantBehavior(tpl.ShopID)
	case tpl.Aggressive:
		e.behavior = NewAggressiveBehavior()
	default:
		e.behavior = NewPassiveBehavior()
	}

	return e
}
