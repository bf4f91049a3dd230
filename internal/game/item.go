package game

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/pixil98/go-errors"
)

// Slot identifies an equipment slot. At most one item occupies a slot.
type Slot string

const (
	SlotHead      Slot = "head"
	SlotBody      Slot = "body"
	SlotLegs      Slot = "legs"
	SlotFeet      Slot = "feet"
	SlotMainHand  Slot = "main-hand"
	SlotOffHand   Slot = "off-hand"
	SlotAccessory Slot = "accessory"
)

// ItemType classifies an item template.
type ItemType string

const (
	ItemTypeWeapon     ItemType = "weapon"
	ItemTypeArmor      ItemType = "armor"
	ItemTypeShield     ItemType = "shield"
	ItemTypeAccessory  ItemType = "accessory"
	ItemTypeConsumable ItemType = "consumable"
	ItemTypeMisc       ItemType = "misc"
)

// equippableTypes lists the item types that can occupy an equipment slot.
var equippableTypes = map[ItemType]bool{
	ItemTypeWeapon:    true,
	ItemTypeArmor:     true,
	ItemTypeShield:    true,
	ItemTypeAccessory: true,
}

// ItemTemplate defines a type of item loaded from asset files. Multiple
// instances can be spawned from one definition.
type ItemTemplate struct {
	Name    string   `json:"name"`
	Aliases []string `json:"aliases,omitempty"`

	ShortDesc string `json:"short_desc"`
	LongDesc  string `json:"long_desc,omitempty"`

	Type ItemType `json:"type"`
	Slot Slot     `json:"slot,omitempty"`

	MinDamage     int `json:"min_damage,omitempty"`
	MaxDamage     int `json:"max_damage,omitempty"`
	Defense       int `json:"defense,omitempty"`
	AttackSpeedMs int `json:"attack_speed_ms,omitempty"`

	Stackable bool `json:"stackable,omitempty"`
}

// Validate satisfies storage.ValidatingSpec.
func (t *ItemTemplate) Validate() error {
	el := errors.NewErrorList()

	if t.Name == "" {
		el.Add(fmt.Errorf("item name is required"))
	}
	if t.ShortDesc == "" {
		el.Add(fmt.Errorf("item short description is required"))
	}

	switch t.Type {
	case ItemTypeWeapon, ItemTypeArmor, ItemTypeShield, ItemTypeAccessory,
		ItemTypeConsumable, ItemTypeMisc:
	case "":
		el.Add(fmt.Errorf("item type is required"))
	default:
		el.Add(fmt.Errorf("unknown item type: %s", t.Type))
	}

	if equippableTypes[t.Type] && t.Slot == "" {
		el.Add(fmt.Errorf("equippable item requires a slot"))
	}

	return el.Err()
}

// Equippable reports whether instances of this template can be equipped.
func (t *ItemTemplate) Equippable() bool {
	return equippableTypes[t.Type]
}

// Match returns true if keyword is a case-insensitive substring of the item's
// name or any alias.
func (t *ItemTemplate) Match(keyword string) bool {
	kw := strings.ToLower(keyword)
	if strings.Contains(strings.ToLower(t.Name), kw) {
		return true
	}
	for _, alias := range t.Aliases {
		if strings.Contains(strings.ToLower(alias), kw) {
			return true
		}
	}
	return false
}

// Item is a single spawned instance of an ItemTemplate. Corpses are items
// with Contents and no template bonuses.
type Item struct {
	InstanceID string        `json:"instance_id"`
	TemplateID string        `json:"template_id"`
	Template   *ItemTemplate `json:"-"`

	// Count is only ever >1 for stackable templates.
	Count int `json:"count"`

	// Contents is non-nil for container items (corpses).
	Contents []*Item `json:"contents,omitempty"`
}

// NewItem spawns a fresh instance of the given template.
func NewItem(templateID string, tpl *ItemTemplate) *Item {
	return &Item{
		InstanceID: uuid.New().String(),
		TemplateID: templateID,
		Template:   tpl,
		Count:      1,
	}
}

// NewCorpse creates the corpse container dropped when a living entity dies.
// The corpse carries the victim's inventory and equipment as contents.
func NewCorpse(victimName string, contents []*Item) *Item {
	tpl := &ItemTemplate{
		Name:      fmt.Sprintf("corpse of %s", victimName),
		Aliases:   []string{"corpse"},
		ShortDesc: fmt.Sprintf("the corpse of %s", victimName),
		LongDesc:  fmt.Sprintf("The corpse of %s lies here, growing cold.", victimName),
		Type:      ItemTypeMisc,
	}
	return &Item{
		InstanceID: uuid.New().String(),
		TemplateID: "corpse",
		Template:   tpl,
		Count:      1,
		Contents:   contents,
	}
}

// DisplayName returns the name shown to players, including a stack count
// where relevant.
func (i *Item) DisplayName() string {
	name := i.TemplateID
	if i.Template != nil {
		name = i.Template.Name
	}
	if i.Count > 1 {
		return fmt.Sprintf("%s (x%d)", name, i.Count)
	}
	return name
}

// Match returns true if keyword matches the item's template name or aliases.
func (i *Item) Match(keyword string) bool {
	if i.Template == nil {
		return strings.Contains(strings.ToLower(i.TemplateID), strings.ToLower(keyword))
	}
	return i.Template.Match(keyword)
}

// Stackable reports whether this instance merges with others of the same
// template.
func (i *Item) Stackable() bool {
	return i.Template != nil && i.Template.Stackable
}
