package living

import (
	"fmt"

	"github.com/pixil98/go-mudcore/internal/game"
)

// EquipItem and UnequipItem are the direct forms of EquipMsg/UnequipMsg for
// callers already on the entity's goroutine, which is where command dispatch
// runs. Cross-actor callers use the messages instead.
func (e *Entity) EquipItem(query string) string   { return e.doEquip(query) }
func (e *Entity) UnequipItem(query string) string { return e.doUnequip(query) }

// doEquip moves the first matching inventory item into its slot, swapping
// out whatever occupied it. Failures come back as readable text, never
// errors; equip is a player-facing operation.
func (e *Entity) doEquip(query string) string {
	query, n := game.ParseQuery(query)
	item := e.inv.Find(query, n)
	if item == nil {
		return fmt.Sprintf("You don't have a '%s'.", query)
	}
	tpl := item.Template
	if tpl == nil || !tpl.Equippable() {
		return fmt.Sprintf("You can't equip %s.", item.DisplayName())
	}

	// Swap out the current occupant first so the slot is free.
	if old := e.eq.Unequip(tpl.Slot); old != nil {
		e.inv.Add(old)
		e.Reply(fmt.Sprintf("You remove %s.", old.DisplayName()))
	}

	e.inv.Remove(item.InstanceID)
	if err := e.eq.Equip(tpl.Slot, item); err != nil {
		// Slot was just cleared, so this is an internal inconsistency.
		e.inv.Add(item)
		return "Something went wrong."
	}

	e.stats.Recalculate(e.eq)
	e.markDirty()
	return fmt.Sprintf("You equip %s.", item.DisplayName())
}

// doUnequip removes the first equipped item matching the query and returns
// it to inventory.
func (e *Entity) doUnequip(query string) string {
	query, n := game.ParseQuery(query)

	var found *game.Item
	var slot game.Slot
	matches := 0
	e.eq.Each(func(s game.Slot, item *game.Item) {
		if found != nil || !item.Match(query) {
			return
		}
		matches++
		if matches == n {
			found, slot = item, s
		}
	})
	if found == nil {
		return fmt.Sprintf("You aren't wearing a '%s'.", query)
	}

	e.eq.Unequip(slot)
	e.inv.Add(found)
	e.stats.Recalculate(e.eq)
	e.markDirty()
	return fmt.Sprintf("You remove %s.", found.DisplayName())
}
