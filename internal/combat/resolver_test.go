package combat

import (
	"testing"

	"github.com/pixil98/go-mudcore/internal/game"
	"github.com/pixil98/go-testutil"
)

// fakeCombatant is a minimal Combatant for resolver tests.
type fakeCombatant struct {
	id    string
	stats *game.LivingStats
}

func (f *fakeCombatant) CombatID() string        { return f.id }
func (f *fakeCombatant) CombatName() string      { return f.id }
func (f *fakeCombatant) Stats() *game.LivingStats { return f.stats }

// fixedRand returns the given values in sequence, then repeats the last one.
func fixedRand(vals ...float64) func() float64 {
	i := 0
	return func() float64 {
		v := vals[i]
		if i < len(vals)-1 {
			i++
		}
		return v
	}
}

func TestCalculateDamage(t *testing.T) {
	tests := map[string]struct {
		attacker  *game.LivingStats
		defender  *game.LivingStats
		rand      []float64
		expMissed bool
		expAmount int
	}{
		"plain hit midpoint variance": {
			attacker:  &game.LivingStats{MinDamage: 30, MaxDamage: 30},
			defender:  &game.LivingStats{},
			rand:      []float64{0.5},
			expAmount: 30,
		},
		"defense subtracts": {
			attacker:  &game.LivingStats{MinDamage: 30, MaxDamage: 30},
			defender:  &game.LivingStats{Defense: 10},
			rand:      []float64{0.5},
			expAmount: 20,
		},
		"damage floors at one": {
			attacker:  &game.LivingStats{MinDamage: 5, MaxDamage: 5},
			defender:  &game.LivingStats{Defense: 50},
			rand:      []float64{0.5},
			expAmount: 1,
		},
		"roll above hit chance misses": {
			attacker:  &game.LivingStats{MinDamage: 30, MaxDamage: 30},
			defender:  &game.LivingStats{},
			rand:      []float64{0.85},
			expMissed: true,
		},
		"dexterity advantage turns miss into hit": {
			attacker: &game.LivingStats{
				MinDamage:  30,
				MaxDamage:  30,
				Attributes: game.Attributes{Dexterity: 10},
			},
			defender:  &game.LivingStats{},
			rand:      []float64{0.85, 0.5},
			expAmount: 30,
		},
		"low variance scales down": {
			attacker:  &game.LivingStats{MinDamage: 100, MaxDamage: 100},
			defender:  &game.LivingStats{},
			rand:      []float64{0.0},
			expAmount: 90,
		},
		"high variance scales up": {
			attacker:  &game.LivingStats{MinDamage: 100, MaxDamage: 100},
			defender:  &game.LivingStats{},
			rand:      []float64{0.5, 1.0},
			expAmount: 110,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			r := NewResolver(WithRandSource(fixedRand(tt.rand...)))
			res := r.CalculateDamage(
				&fakeCombatant{id: "attacker", stats: tt.attacker},
				&fakeCombatant{id: "defender", stats: tt.defender},
			)

			testutil.AssertEqual(t, "missed", res.Missed, tt.expMissed)
			if !tt.expMissed {
				testutil.AssertEqual(t, "amount", res.Amount, tt.expAmount)
			}
		})
	}
}

func TestCalculateDamageDeterministicKillSequence(t *testing.T) {
	// A 30-damage attacker against a defenseless 100 hp target takes it
	// down in four swings: 100 -> 70 -> 40 -> 10 -> 0.
	r := NewResolver(WithRandSource(func() float64 { return 0.5 }))
	attacker := &fakeCombatant{id: "player", stats: &game.LivingStats{MinDamage: 30, MaxDamage: 30}}
	defender := &fakeCombatant{id: "mob", stats: &game.LivingStats{HP: 100, MaxHP: 100}}

	expHP := []int{70, 40, 10, 0}
	for i, want := range expHP {
		res := r.CalculateDamage(attacker, defender)
		if res.Missed {
			t.Fatalf("swing %d unexpectedly missed", i+1)
		}
		defender.stats.ApplyDamage(res.Amount)
		testutil.AssertEqual(t, "hp", defender.stats.HP, want)
	}
	testutil.AssertEqual(t, "alive", defender.stats.Alive(), false)
}

func TestHitChanceClamping(t *testing.T) {
	// Even a huge dexterity gap leaves a 5% floor and a 95% ceiling.
	hopeless := &fakeCombatant{id: "a", stats: &game.LivingStats{
		MinDamage: 10, MaxDamage: 10,
		Attributes: game.Attributes{Dexterity: -1000},
	}}
	target := &fakeCombatant{id: "b", stats: &game.LivingStats{}}

	r := NewResolver(WithRandSource(fixedRand(0.04, 0.5)))
	res := r.CalculateDamage(hopeless, target)
	testutil.AssertEqual(t, "floor hit", res.Missed, false)

	deadly := &fakeCombatant{id: "c", stats: &game.LivingStats{
		MinDamage: 10, MaxDamage: 10,
		Attributes: game.Attributes{Dexterity: 1000},
	}}
	r = NewResolver(WithRandSource(fixedRand(0.96)))
	res = r.CalculateDamage(deadly, target)
	testutil.AssertEqual(t, "ceiling miss", res.Missed, true)
}

func TestDamageVerb(t *testing.T) {
	tests := map[string]struct {
		damage int
		exp    string
	}{
		"zero":    {damage: 0, exp: "misses"},
		"scratch": {damage: 2, exp: "barely scratches"},
		"plain":   {damage: 8, exp: "hits"},
		"heavy":   {damage: 28, exp: "mauls"},
		"absurd":  {damage: 500, exp: "does UNSPEAKABLE things to"},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			testutil.AssertEqual(t, "verb", DamageVerb(tt.damage), tt.exp)
		})
	}
}
