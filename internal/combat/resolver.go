package combat

import (
	"math/rand/v2"

	"github.com/pixil98/go-mudcore/internal/game"
)

// Combatant is the read-side view of a living entity during damage
// resolution. Implementations must only be touched from the owning entity's
// message handler.
type Combatant interface {
	CombatID() string
	CombatName() string
	Stats() *game.LivingStats
}

// Tuning holds the combat coefficients. These are balance knobs, not fixed
// rules, so they are configurable rather than hardcoded in the resolver.
type Tuning struct {
	// BaseHitChance is the chance to land a blow when attacker and defender
	// have equal dexterity.
	BaseHitChance float64 `json:"base_hit_chance"`

	// HitPerDexPoint shifts the hit chance per point of dexterity
	// difference between attacker and defender.
	HitPerDexPoint float64 `json:"hit_per_dex_point"`

	// Damage is scaled by a uniform factor in [VarianceMin, VarianceMax].
	VarianceMin float64 `json:"variance_min"`
	VarianceMax float64 `json:"variance_max"`
}

// DefaultTuning returns the stock coefficients.
func DefaultTuning() Tuning {
	return Tuning{
		BaseHitChance:  0.8,
		HitPerDexPoint: 0.01,
		VarianceMin:    0.9,
		VarianceMax:    1.1,
	}
}

// Result is the outcome of a single attack resolution.
type Result struct {
	Missed bool
	Amount int
}

// Resolver computes attack outcomes. It is stateless apart from its random
// source and safe to share across entities when the source is the default.
type Resolver struct {
	tuning Tuning
	randFn func() float64
}

type ResolverOpt func(*Resolver)

// WithTuning overrides the default coefficients.
func WithTuning(t Tuning) ResolverOpt {
	return func(r *Resolver) {
		r.tuning = t
	}
}

// WithRandSource replaces the random source with fn, which must return
// uniform values in [0, 1). Used by tests to pin outcomes.
func WithRandSource(fn func() float64) ResolverOpt {
	return func(r *Resolver) {
		r.randFn = fn
	}
}

func NewResolver(opts ...ResolverOpt) *Resolver {
	r := &Resolver{
		tuning: DefaultTuning(),
		randFn: rand.Float64,
	}
	for _, o := range opts {
		o(r)
	}
	return r
}

// CalculateDamage resolves one attack. Hit chance starts at the base and
// moves with the dexterity differential; a miss yields a zero-damage result.
// On a hit, raw damage is the attacker's rolled damage minus the defender's
// defense, floored at 1, then scaled by the variance factor.
func (r *Resolver) CalculateDamage(attacker, defender Combatant) Result {
	att := attacker.Stats()
	def := defender.Stats()

	chance := r.tuning.BaseHitChance +
		r.tuning.HitPerDexPoint*float64(att.Attributes.Dexterity-def.Attributes.Dexterity)
	if chance < 0.05 {
		chance = 0.05
	}
	if chance > 0.95 {
		chance = 0.95
	}

	if r.randFn() >= chance {
		return Result{Missed: true}
	}

	attack := att.MinDamage
	if spread := att.MaxDamage - att.MinDamage; spread > 0 {
		attack += int(r.randFn() * float64(spread+1))
	}

	raw := attack - def.Defense
	if raw < 1 {
		raw = 1
	}

	variance := r.tuning.VarianceMin +
		r.randFn()*(r.tuning.VarianceMax-r.tuning.VarianceMin)

	amount := int(float64(raw) * variance)
	if amount < 1 {
		amount = 1
	}

	return Result{Amount: amount}
}
