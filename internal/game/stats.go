package game

import "time"

// Attributes are the core rolled attributes of a living entity.
type Attributes struct {
	Strength     int `json:"strength"`
	Intellect    int `json:"intellect"`
	Dexterity    int `json:"dexterity"`
	Constitution int `json:"constitution"`
}

// LivingStats holds the mutable numeric state of a living entity. The derived
// combat block (MinDamage/MaxDamage/Defense/AttackSpeed) is recomputed from
// the base values plus equipment whenever equipment changes; it must never be
// read while stale, so all mutation goes through Recalculate.
type LivingStats struct {
	Level      int `json:"level"`
	Experience int `json:"experience,omitempty"`

	HP         int `json:"hp"`
	MaxHP      int `json:"max_hp"`
	MP         int `json:"mp"`
	MaxMP      int `json:"max_mp"`
	Stamina    int `json:"stamina"`
	MaxStamina int `json:"max_stamina"`

	Attributes Attributes `json:"attributes"`

	// Base combat values before equipment. For mobs these come from the
	// template; for players from level and attributes.
	BaseMinDamage   int           `json:"base_min_damage"`
	BaseMaxDamage   int           `json:"base_max_damage"`
	BaseDefense     int           `json:"base_defense"`
	BaseAttackSpeed time.Duration `json:"base_attack_speed"`

	// Derived combat values, valid only after Recalculate.
	MinDamage   int           `json:"min_damage"`
	MaxDamage   int           `json:"max_damage"`
	Defense     int           `json:"defense"`
	AttackSpeed time.Duration `json:"attack_speed"`
}

// Recalculate rebuilds the derived combat block from the base values plus the
// bonuses carried by equipped items.
func (s *LivingStats) Recalculate(eq *Equipment) {
	s.MinDamage = s.BaseMinDamage
	s.MaxDamage = s.BaseMaxDamage
	s.Defense = s.BaseDefense
	s.AttackSpeed = s.BaseAttackSpeed

	if eq == nil {
		return
	}

	for _, item := range eq.Items() {
		tpl := item.Template
		if tpl == nil {
			continue
		}
		s.MinDamage += tpl.MinDamage
		s.MaxDamage += tpl.MaxDamage
		s.Defense += tpl.Defense
		if tpl.AttackSpeedMs > 0 {
			s.AttackSpeed = time.Duration(tpl.AttackSpeedMs) * time.Millisecond
		}
	}

	if s.MaxDamage < s.MinDamage {
		s.MaxDamage = s.MinDamage
	}
}

// Alive reports whether the entity has hit points left.
func (s *LivingStats) Alive() bool {
	return s.HP > 0
}

// ApplyDamage reduces HP by amount, clamping at zero, and returns the damage
// actually applied.
func (s *LivingStats) ApplyDamage(amount int) int {
	if amount < 0 {
		amount = 0
	}
	if amount > s.HP {
		amount = s.HP
	}
	s.HP -= amount
	return amount
}

// Heal raises HP by amount, clamping at MaxHP, and returns the amount
// actually restored.
func (s *LivingStats) Heal(amount int) int {
	if amount < 0 {
		amount = 0
	}
	if s.HP+amount > s.MaxHP {
		amount = s.MaxHP - s.HP
	}
	s.HP += amount
	return amount
}
