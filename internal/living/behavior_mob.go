package living

import (
	"fmt"
	"math/rand/v2"
)

// idleSpeechChance is the per-tick probability that an idle mob with speech
// lines says one.
const idleSpeechChance = 0.02

// PassiveBehavior ignores everyone until attacked, then fights back. Mobs
// with idle speech occasionally mutter it.
type PassiveBehavior struct {
	BaseBehavior

	randFn func() float64
}

func NewPassiveBehavior() *PassiveBehavior {
	return &PassiveBehavior{randFn: rand.Float64}
}

func (b *PassiveBehavior) Fights() bool { return true }

func (b *PassiveBehavior) OnTick(e *Entity, m TickMsg) {
	if e.InCombat() {
		return
	}
	tpl := e.MobTemplate()
	if tpl == nil || len(tpl.IdleSpeech) == 0 {
		return
	}
	if b.randFn() >= idleSpeechChance {
		return
	}
	if room := e.Room(); room != nil {
		line := tpl.IdleSpeech[rand.IntN(len(tpl.IdleSpeech))]
		room.Broadcast(fmt.Sprintf("%s says: %s", e.Name(), line))
	}
}

// AggressiveBehavior attacks players on sight as well as retaliating.
type AggressiveBehavior struct {
	PassiveBehavior
}

func NewAggressiveBehavior() *AggressiveBehavior {
	return &AggressiveBehavior{PassiveBehavior{randFn: rand.Float64}}
}

func (b *AggressiveBehavior) OnPlayerEntered(e *Entity, m PlayerEnteredMsg) {
	if e.InCombat() {
		return
	}

	e.aggro.Add(m.PlayerID, 1)
	e.engage(m.PlayerID, m.PlayerName)

	room := e.Room()
	if room == nil {
		return
	}
	room.Broadcast(fmt.Sprintf("%s snarls and lunges at %s!", e.Name(), m.PlayerName))

	if target, err := room.FindActor(m.PlayerID); err == nil && target != nil {
		target.Send(OnAttackedMsg{AttackerID: e.ID(), AttackerName: e.Name()})
	}
}

// MerchantBehavior runs a shop: greets arrivals, never fights.
type MerchantBehavior struct {
	BaseBehavior

	shopID string
}

func NewMerchantBehavior(shopID string) *MerchantBehavior {
	return &MerchantBehavior{shopID: shopID}
}

func (b *MerchantBehavior) OnPlayerEntered(e *Entity, m PlayerEnteredMsg) {
	if room := e.Room(); room != nil {
		room.Broadcast(fmt.Sprintf("%s says: Welcome, %s! Have a look at my wares.",
			e.Name(), m.PlayerName))
	}
}

// ShopID identifies the merchant's shop template.
func (b *MerchantBehavior) ShopID() string { return b.shopID }
