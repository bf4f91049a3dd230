package game

import (
	"testing"

	"github.com/pixil98/go-testutil"
)

func newTestItem(id string, tpl *ItemTemplate) *Item {
	item := NewItem(id, tpl)
	return item
}

func TestInventoryStacking(t *testing.T) {
	coin := &ItemTemplate{Name: "gold coin", ShortDesc: "a gold coin", Type: ItemTypeMisc, Stackable: true}
	sword := &ItemTemplate{Name: "iron sword", ShortDesc: "an iron sword", Type: ItemTypeWeapon, Slot: SlotMainHand}

	inv := NewInventory()
	inv.Add(newTestItem("coin", coin))
	inv.Add(newTestItem("coin", coin))
	inv.Add(newTestItem("sword", sword))
	inv.Add(newTestItem("sword", sword))

	// Coins merged into one stack, swords stayed distinct.
	testutil.AssertEqual(t, "entry count", inv.Len(), 3)

	stack := inv.Find("coin", 1)
	if stack == nil {
		t.Fatal("expected a coin stack")
	}
	testutil.AssertEqual(t, "stack count", stack.Count, 2)
	testutil.AssertEqual(t, "display name", stack.DisplayName(), "gold coin (x2)")
}

func TestInventoryFindOrdinal(t *testing.T) {
	goblinEar := &ItemTemplate{Name: "goblin ear", ShortDesc: "a goblin ear", Type: ItemTypeMisc}

	inv := NewInventory()
	first := newTestItem("ear", goblinEar)
	second := newTestItem("ear", goblinEar)
	inv.Add(first)
	inv.Add(second)

	tests := map[string]struct {
		keyword string
		n       int
		exp     *Item
	}{
		"default first":    {keyword: "ear", n: 1, exp: first},
		"second match":     {keyword: "ear", n: 2, exp: second},
		"past the end":     {keyword: "ear", n: 3, exp: nil},
		"no match":         {keyword: "sword", n: 1, exp: nil},
		"case insensitive": {keyword: "GOBLIN", n: 1, exp: first},
		"zero clamps to 1": {keyword: "ear", n: 0, exp: first},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			got := inv.Find(tt.keyword, tt.n)
			if got != tt.exp {
				t.Errorf("Find(%q, %d) = %v, want %v", tt.keyword, tt.n, got, tt.exp)
			}
		})
	}
}

func TestInventoryRemove(t *testing.T) {
	tpl := &ItemTemplate{Name: "apple", ShortDesc: "an apple", Type: ItemTypeConsumable}

	inv := NewInventory()
	item := newTestItem("apple", tpl)
	inv.Add(item)

	got := inv.Remove(item.InstanceID)
	if got != item {
		t.Fatalf("Remove returned %v, want %v", got, item)
	}
	testutil.AssertEqual(t, "entry count", inv.Len(), 0)

	if inv.Remove(item.InstanceID) != nil {
		t.Error("expected nil removing an absent item")
	}
}

func TestInventoryDrain(t *testing.T) {
	tpl := &ItemTemplate{Name: "apple", ShortDesc: "an apple", Type: ItemTypeConsumable}

	inv := NewInventory()
	inv.Add(newTestItem("apple", tpl))
	inv.Add(newTestItem("apple", tpl))

	drained := inv.Drain()
	testutil.AssertEqual(t, "drained count", len(drained), 2)
	testutil.AssertEqual(t, "entry count", inv.Len(), 0)
}
