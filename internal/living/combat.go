package living

import (
	"fmt"
	"log/slog"

	"github.com/pixil98/go-mudcore/internal/combat"
	"github.com/pixil98/go-mudcore/internal/game"
)

func (e *Entity) onTick(m TickMsg) {
	if !e.Valid() || !e.stats.Alive() {
		return
	}

	if e.inCombat.Load() {
		e.autoAttack(m)
	} else if m.Count%regenInterval == 0 {
		amount := int(float64(e.stats.MaxHP) * regenFraction)
		if amount > 0 && e.stats.HP < e.stats.MaxHP {
			e.stats.Heal(amount)
			e.markDirty()
		}
	}

	if e.behavior != nil {
		e.behavior.OnTick(e, m)
	}
}

// autoAttack swings at the current target when the attack cooldown allows.
// A vanished or unreachable target disengages combat instead of erroring.
func (e *Entity) autoAttack(m TickMsg) {
	room := e.Room()
	if room == nil {
		e.disengage()
		return
	}

	targetID := e.targetID
	if e.kind == KindMob {
		id, ok := e.aggro.Highest()
		if !ok {
			e.disengage()
			return
		}
		targetID = id
		e.targetID = id
	}
	if targetID == "" {
		e.disengage()
		return
	}

	if m.Now.Before(e.nextAttack) {
		return
	}

	target, err := room.FindActor(targetID)
	if err != nil || target == nil || !target.Valid() {
		if e.kind == KindMob {
			e.aggro.Remove(targetID)
			return
		}
		e.Reply("Your target is gone.")
		e.disengage()
		return
	}

	res := e.resolver.CalculateDamage(e, target)
	e.nextAttack = m.Now.Add(e.stats.AttackSpeed)

	room.Broadcast(combat.AttackLine(e, target, res))
	if res.Missed {
		return
	}

	target.Send(OnDamageMsg{
		Amount:       res.Amount,
		AttackerID:   e.id,
		AttackerName: e.name,
	})
}

// Attack engages a target deliberately, the kill-command path. Runs on the
// entity's goroutine because command dispatch happens inside the handler.
func (e *Entity) Attack(target *Entity) {
	if !e.Valid() || !e.stats.Alive() || target == nil {
		return
	}
	e.targetID = target.ID()
	e.inCombat.Store(true)
	target.Send(OnAttackedMsg{AttackerID: e.id, AttackerName: e.name})
}

func (e *Entity) onAttacked(m OnAttackedMsg) {
	if !e.Valid() || !e.stats.Alive() {
		return
	}
	e.engage(m.AttackerID, m.AttackerName)
}

// engage marks the entity in combat. The first attacker wins the target lock;
// later attackers only raise aggro.
func (e *Entity) engage(attackerID, attackerName string) {
	if e.behavior != nil && !e.behavior.Fights() {
		return
	}
	if e.targetID == "" {
		e.targetID = attackerID
	}
	if e.inCombat.CompareAndSwap(false, true) {
		if e.kind == KindPlayer {
			e.Reply(fmt.Sprintf("%s attacks you!", attackerName))
		}
	}
}

func (e *Entity) disengage() {
	e.inCombat.Store(false)
	e.targetID = ""
	if e.aggro != nil {
		e.aggro.Clear()
	}
}

func (e *Entity) onDamage(m OnDamageMsg) {
	// Dead entities reject further damage until revival.
	if !e.Valid() || !e.stats.Alive() {
		return
	}

	if e.mobTemplate != nil && e.mobTemplate.Invincible {
		if room := e.Room(); room != nil {
			room.Broadcast(fmt.Sprintf("%s shrugs off the blow.", e.name))
		}
		return
	}

	applied := e.stats.ApplyDamage(m.Amount)

	if e.aggro != nil {
		e.aggro.Add(m.AttackerID, applied)
	}
	e.engage(m.AttackerID, m.AttackerName)
	e.markDirty()

	if e.kind == KindPlayer {
		e.Reply(fmt.Sprintf("%s hits you for %d damage. [%d/%d hp]",
			m.AttackerName, applied, e.stats.HP, e.stats.MaxHP))
	}

	if !e.stats.Alive() {
		e.die(m.AttackerID)
	}
}

// die runs the death transition: mark invalid, clear combat state, drop a
// corpse carrying everything the entity owned, leave the room, then hand off
// to the world layer.
func (e *Entity) die(killerID string) {
	if e.invalid.Load() {
		return
	}
	e.invalid.Store(true)
	e.stats.HP = 0
	e.inCombat.Store(false)
	e.targetID = ""
	if e.aggro != nil {
		e.aggro.Clear()
	}

	contents := e.inv.Drain()
	contents = append(contents, e.eq.Drain()...)
	e.stats.Recalculate(e.eq)

	room := e.Room()
	if room != nil {
		room.DropItem(game.NewCorpse(e.name, contents))
		room.BroadcastToOthers(e.id, fmt.Sprintf("%s dies!", e.name))
		room.RemoveDead(e)
	}
	e.Reply("You have died!")
	e.markDirty()

	slog.Info("entity died", "entity", e.id, "name", e.name, "killer", killerID)

	if e.hooks.OnDeath != nil {
		e.hooks.OnDeath(e, killerID)
	}
}

func (e *Entity) onPlayerEntered(m PlayerEnteredMsg) {
	if !e.Valid() || !e.stats.Alive() || e.behavior == nil {
		return
	}
	e.behavior.OnPlayerEntered(e, m)
}
