package persist

import (
	"errors"
	"path/filepath"
	"testing"

	"github.com/pixil98/go-mudcore/internal/living"
	"github.com/pixil98/go-testutil"
)

func testBolt(t *testing.T) *BoltStore {
	t.Helper()
	s, err := OpenBolt(filepath.Join(t.TempDir(), "world.db"))
	if err != nil {
		t.Fatalf("opening store: %v", err)
	}
	t.Cleanup(func() { _ = s.Close() })
	return s
}

func TestBoltPutBatchRoundTrip(t *testing.T) {
	s := testBolt(t)

	err := s.PutBatch([]Record{
		&CharacterRecord{ID: "alice", Name: "alice", DisplayName: "Alice", RoomID: "square"},
		&RoomRecord{RoomID: "square", ZoneID: "town", Items: []ItemSnapshot{{TemplateID: "sword", Count: 1}}},
	})
	if err != nil {
		t.Fatalf("PutBatch: %v", err)
	}

	char, err := s.GetCharacter("alice")
	if err != nil {
		t.Fatalf("GetCharacter: %v", err)
	}
	if char == nil {
		t.Fatal("character not found")
	}
	testutil.AssertEqual(t, "display name", char.DisplayName, "Alice")
	testutil.AssertEqual(t, "room", char.RoomID, "square")

	room, err := s.GetRoom("square")
	if err != nil {
		t.Fatalf("GetRoom: %v", err)
	}
	testutil.AssertEqual(t, "room items", len(room.Items), 1)

	// A later snapshot of the same key wins.
	err = s.PutBatch([]Record{&CharacterRecord{ID: "alice", Name: "alice", DisplayName: "Alice", RoomID: "gate"}})
	if err != nil {
		t.Fatalf("PutBatch: %v", err)
	}
	char, err = s.GetCharacter("alice")
	if err != nil {
		t.Fatal(err)
	}
	testutil.AssertEqual(t, "updated room", char.RoomID, "gate")
}

func TestBoltGetCharacterAbsent(t *testing.T) {
	s := testBolt(t)

	char, err := s.GetCharacter("nobody")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if char != nil {
		t.Fatalf("expected nil, got %+v", char)
	}
}

func TestBoltUserStore(t *testing.T) {
	s := testBolt(t)

	_, err := s.Lookup("alice")
	if !errors.Is(err, living.ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}

	u := &living.User{Name: "Alice", PasswordHash: []byte("hash"), CharacterID: "alice"}
	if err := s.Create(u); err != nil {
		t.Fatalf("Create: %v", err)
	}

	// Lookup is case-insensitive.
	got, err := s.Lookup("ALICE")
	if err != nil {
		t.Fatalf("Lookup: %v", err)
	}
	testutil.AssertEqual(t, "name", got.Name, "Alice")
	testutil.AssertEqual(t, "character", got.CharacterID, "alice")

	err = s.Create(&living.User{Name: "alice"})
	if !errors.Is(err, living.ErrUserExists) {
		t.Fatalf("expected ErrUserExists, got %v", err)
	}
}
