package game

// Inventory is the ordered list of items owned by a living entity. Stackable
// items merge by template identity instead of growing the list.
type Inventory struct {
	items []*Item
}

// NewInventory creates an empty inventory.
func NewInventory() *Inventory {
	return &Inventory{}
}

// Add places an item in the inventory. Stackable items merge into an existing
// stack of the same template.
func (inv *Inventory) Add(item *Item) {
	if item == nil {
		return
	}
	if item.Stackable() {
		for _, existing := range inv.items {
			if existing.TemplateID == item.TemplateID {
				existing.Count += item.Count
				return
			}
		}
	}
	inv.items = append(inv.items, item)
}

// Remove takes an item out of the inventory by instance id. Returns the
// removed item, or nil if not present.
func (inv *Inventory) Remove(instanceID string) *Item {
	for i, item := range inv.items {
		if item.InstanceID == instanceID {
			inv.items = append(inv.items[:i], inv.items[i+1:]...)
			return item
		}
	}
	return nil
}

// Find returns the n-th item (1-based) whose name or alias contains keyword,
// case-insensitive. Returns nil when fewer than n items match.
func (inv *Inventory) Find(keyword string, n int) *Item {
	if n < 1 {
		n = 1
	}
	matches := 0
	for _, item := range inv.items {
		if item.Match(keyword) {
			matches++
			if matches == n {
				return item
			}
		}
	}
	return nil
}

// Items returns a copy of the item list in insertion order.
func (inv *Inventory) Items() []*Item {
	out := make([]*Item, len(inv.items))
	copy(out, inv.items)
	return out
}

// Len returns the number of distinct entries (stacks count once).
func (inv *Inventory) Len() int {
	return len(inv.items)
}

// Drain removes and returns all items, leaving the inventory empty. Used when
// transferring a victim's belongings into a corpse.
func (inv *Inventory) Drain() []*Item {
	out := inv.items
	inv.items = nil
	return out
}
