package persist

import (
	"github.com/pixil98/go-mudcore/internal/game"
)

// Record is one unit of write-behind work. Snapshots are deep copies taken
// on the owning actor's goroutine, so flushing never races with live state.
type Record interface {
	// Key addresses the record in storage; later snapshots of the same key
	// overwrite earlier ones.
	Key() string
	persistRecord()
}

// ItemSnapshot is the serializable shape of one item instance.
type ItemSnapshot struct {
	InstanceID string         `json:"instance_id"`
	TemplateID string         `json:"template_id"`
	Count      int            `json:"count"`
	Contents   []ItemSnapshot `json:"contents,omitempty"`
}

// SnapshotItems deep-copies a live item list.
func SnapshotItems(items []*game.Item) []ItemSnapshot {
	if len(items) == 0 {
		return nil
	}
	out := make([]ItemSnapshot, 0, len(items))
	for _, item := range items {
		out = append(out, ItemSnapshot{
			InstanceID: item.InstanceID,
			TemplateID: item.TemplateID,
			Count:      item.Count,
			Contents:   SnapshotItems(item.Contents),
		})
	}
	return out
}

// CharacterRecord is the durable state of one player character.
type CharacterRecord struct {
	ID          string                     `json:"id"`
	Name        string                     `json:"name"`
	DisplayName string                     `json:"display_name"`
	RoomID      string                     `json:"room_id"`
	Stats       game.LivingStats           `json:"stats"`
	Inventory   []ItemSnapshot             `json:"inventory,omitempty"`
	Equipment   map[game.Slot]ItemSnapshot `json:"equipment,omitempty"`
}

func (r *CharacterRecord) Key() string  { return r.ID }
func (*CharacterRecord) persistRecord() {}

// RoomRecord is the durable state of one room: just what players dropped.
type RoomRecord struct {
	RoomID string         `json:"room_id"`
	ZoneID string         `json:"zone_id"`
	Items  []ItemSnapshot `json:"items,omitempty"`
}

func (r *RoomRecord) Key() string  { return r.RoomID }
func (*RoomRecord) persistRecord() {}

// UserRecord is one account's credentials.
type UserRecord struct {
	Name         string `json:"name"`
	PasswordHash []byte `json:"password_hash"`
	CharacterID  string `json:"character_id"`
}

func (r *UserRecord) Key() string  { return r.Name }
func (*UserRecord) persistRecord() {}

// Store is the durable backend behind the queue.
type Store interface {
	// PutBatch writes all records in one transaction.
	PutBatch(records []Record) error
}
