package game

import "fmt"

// Equipment holds the items worn or wielded by a living entity, keyed by
// slot. Callers are responsible for recomputing stats after every mutation;
// the living entity's equip/unequip operations are the only writers.
type Equipment struct {
	slots map[Slot]*Item
}

// NewEquipment creates an empty equipment set.
func NewEquipment() *Equipment {
	return &Equipment{slots: make(map[Slot]*Item)}
}

// Equip places an item in the given slot. Returns an error if the slot is
// already occupied.
func (eq *Equipment) Equip(slot Slot, item *Item) error {
	if _, occupied := eq.slots[slot]; occupied {
		return fmt.Errorf("slot %s is already occupied", slot)
	}
	eq.slots[slot] = item
	return nil
}

// Unequip removes and returns the item in the given slot, or nil if empty.
func (eq *Equipment) Unequip(slot Slot) *Item {
	item, ok := eq.slots[slot]
	if !ok {
		return nil
	}
	delete(eq.slots, slot)
	return item
}

// Get returns the item in the given slot, or nil if empty.
func (eq *Equipment) Get(slot Slot) *Item {
	return eq.slots[slot]
}

// Items returns all equipped items in slot order (map iteration order is
// fine for stat sums; display code sorts separately).
func (eq *Equipment) Items() []*Item {
	out := make([]*Item, 0, len(eq.slots))
	for _, item := range eq.slots {
		out = append(out, item)
	}
	return out
}

// Each calls fn for every occupied slot.
func (eq *Equipment) Each(fn func(Slot, *Item)) {
	for slot, item := range eq.slots {
		fn(slot, item)
	}
}

// Len returns the number of occupied slots.
func (eq *Equipment) Len() int {
	return len(eq.slots)
}

// Drain removes and returns all equipped items.
func (eq *Equipment) Drain() []*Item {
	out := make([]*Item, 0, len(eq.slots))
	for slot, item := range eq.slots {
		out = append(out, item)
		delete(eq.slots, slot)
	}
	return out
}
