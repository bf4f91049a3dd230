package game

import (
	"fmt"
	"time"

	"github.com/pixil98/go-errors"
)

// MobTemplate defines a type of mobile entity loaded from asset files.
// Multiple instances can be spawned from one definition.
type MobTemplate struct {
	Name    string   `json:"name"`
	Aliases []string `json:"aliases"`

	// ShortDesc is used in action messages ("The town guard hits you.")
	ShortDesc string `json:"short_desc"`
	// LongDesc is shown in the room listing
	LongDesc string `json:"long_desc"`

	Level      int `json:"level"`
	MaxHP      int `json:"max_hp"`
	MaxMP      int `json:"max_mp,omitempty"`
	MaxStamina int `json:"max_stamina,omitempty"`

	Attributes Attributes `json:"attributes"`

	MinDamage     int `json:"min_damage"`
	MaxDamage     int `json:"max_damage"`
	Defense       int `json:"defense"`
	AttackSpeedMs int `json:"attack_speed_ms"`

	// Behavior selection: a shop id makes a merchant, aggressive makes the
	// mob attack players on sight, otherwise the mob is passive.
	ShopID     string `json:"shop_id,omitempty"`
	Aggressive bool   `json:"aggressive,omitempty"`
	Invincible bool   `json:"invincible,omitempty"`

	// IdleSpeech lines are said occasionally by passive mobs.
	IdleSpeech []string `json:"idle_speech,omitempty"`

	Equipment map[Slot]string `json:"equipment,omitempty"`
	Inventory []string        `json:"inventory,omitempty"`

	ExpReward int `json:"exp_reward,omitempty"`
}

// Validate satisfies storage.ValidatingSpec.
func (t *MobTemplate) Validate() error {
	el := errors.NewErrorList()

	if t.Name == "" {
		el.Add(fmt.Errorf("mob name is required"))
	}
	if len(t.Aliases) < 1 {
		el.Add(fmt.Errorf("mob alias is required"))
	}
	if t.ShortDesc == "" {
		el.Add(fmt.Errorf("mob short description is required"))
	}
	if t.MaxHP <= 0 {
		el.Add(fmt.Errorf("mob max_hp must be positive"))
	}
	if t.AttackSpeedMs <= 0 {
		el.Add(fmt.Errorf("mob attack_speed_ms must be positive"))
	}

	return el.Err()
}

// NewStats builds the initial LivingStats for a freshly spawned instance of
// this template.
func (t *MobTemplate) NewStats() *LivingStats {
	s := &LivingStats{
		Level:      t.Level,
		HP:         t.MaxHP,
		MaxHP:      t.MaxHP,
		MP:         t.MaxMP,
		MaxMP:      t.MaxMP,
		Stamina:    t.MaxStamina,
		MaxStamina: t.MaxStamina,
		Attributes: t.Attributes,

		BaseMinDamage:   t.MinDamage,
		BaseMaxDamage:   t.MaxDamage,
		BaseDefense:     t.Defense,
		BaseAttackSpeed: time.Duration(t.AttackSpeedMs) * time.Millisecond,
	}
	s.Recalculate(nil)
	return s
}
