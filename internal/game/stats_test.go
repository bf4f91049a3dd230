package game

import (
	"testing"
	"time"

	"github.com/pixil98/go-testutil"
)

func TestStatsRecalculate(t *testing.T) {
	sword := &ItemTemplate{
		Name: "iron sword", ShortDesc: "an iron sword",
		Type: ItemTypeWeapon, Slot: SlotMainHand,
		MinDamage: 3, MaxDamage: 7, AttackSpeedMs: 2000,
	}
	shield := &ItemTemplate{
		Name: "wooden shield", ShortDesc: "a wooden shield",
		Type: ItemTypeShield, Slot: SlotOffHand,
		Defense: 4,
	}

	tests := map[string]struct {
		equip       map[Slot]*ItemTemplate
		expMinDmg   int
		expMaxDmg   int
		expDefense  int
		expAtkSpeed time.Duration
	}{
		"bare hands": {
			expMinDmg: 1, expMaxDmg: 2, expDefense: 1,
			expAtkSpeed: 3 * time.Second,
		},
		"weapon only": {
			equip:     map[Slot]*ItemTemplate{SlotMainHand: sword},
			expMinDmg: 4, expMaxDmg: 9, expDefense: 1,
			expAtkSpeed: 2 * time.Second,
		},
		"weapon and shield": {
			equip: map[Slot]*ItemTemplate{
				SlotMainHand: sword,
				SlotOffHand:  shield,
			},
			expMinDmg: 4, expMaxDmg: 9, expDefense: 5,
			expAtkSpeed: 2 * time.Second,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			stats := &LivingStats{
				BaseMinDamage:   1,
				BaseMaxDamage:   2,
				BaseDefense:     1,
				BaseAttackSpeed: 3 * time.Second,
			}
			eq := NewEquipment()
			for slot, tpl := range tt.equip {
				if err := eq.Equip(slot, NewItem(tpl.Name, tpl)); err != nil {
					t.Fatalf("equip %s: %v", slot, err)
				}
			}

			stats.Recalculate(eq)

			testutil.AssertEqual(t, "min damage", stats.MinDamage, tt.expMinDmg)
			testutil.AssertEqual(t, "max damage", stats.MaxDamage, tt.expMaxDmg)
			testutil.AssertEqual(t, "defense", stats.Defense, tt.expDefense)
			testutil.AssertEqual(t, "attack speed", stats.AttackSpeed, tt.expAtkSpeed)
		})
	}
}

func TestStatsDamageAndHeal(t *testing.T) {
	stats := &LivingStats{HP: 10, MaxHP: 20}

	testutil.AssertEqual(t, "partial damage", stats.ApplyDamage(4), 4)
	testutil.AssertEqual(t, "hp after damage", stats.HP, 6)
	testutil.AssertEqual(t, "alive", stats.Alive(), true)

	// Overkill clamps at zero.
	testutil.AssertEqual(t, "overkill damage", stats.ApplyDamage(100), 6)
	testutil.AssertEqual(t, "hp at zero", stats.HP, 0)
	testutil.AssertEqual(t, "dead", stats.Alive(), false)

	// Healing clamps at the maximum.
	testutil.AssertEqual(t, "heal", stats.Heal(15), 15)
	testutil.AssertEqual(t, "overheal", stats.Heal(100), 5)
	testutil.AssertEqual(t, "hp at max", stats.HP, 20)

	// Negative amounts are ignored.
	testutil.AssertEqual(t, "negative damage", stats.ApplyDamage(-5), 0)
	testutil.AssertEqual(t, "negative heal", stats.Heal(-5), 0)
}

func TestEquipmentSlotConflict(t *testing.T) {
	sword := &ItemTemplate{
		Name: "iron sword", ShortDesc: "an iron sword",
		Type: ItemTypeWeapon, Slot: SlotMainHand,
	}

	eq := NewEquipment()
	first := NewItem("sword", sword)
	if err := eq.Equip(SlotMainHand, first); err != nil {
		t.Fatalf("first equip: %v", err)
	}

	if err := eq.Equip(SlotMainHand, NewItem("sword", sword)); err == nil {
		t.Fatal("expected an error equipping into an occupied slot")
	}

	got := eq.Unequip(SlotMainHand)
	if got != first {
		t.Errorf("Unequip returned %v, want %v", got, first)
	}
	testutil.AssertEqual(t, "occupied slots", eq.Len(), 0)
}
