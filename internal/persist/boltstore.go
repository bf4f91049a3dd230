package persist

import (
	"encoding/json"
	"fmt"
	"strings"

	bbolt "go.etcd.io/bbolt"

	"github.com/pixil98/go-mudcore/internal/living"
)

var (
	bucketPlayers = []byte("players")
	bucketRooms   = []byte("rooms")
	bucketUsers   = []byte("users")
)

// BoltStore is the durable backend: one bbolt file with a bucket per record
// family. It is the flush target of the write-behind queue and doubles as
// the account store consulted during login.
type BoltStore struct {
	db *bbolt.DB
}

// OpenBolt opens or creates the database file and ensures buckets exist.
func OpenBolt(path string) (*BoltStore, error) {
	db, err := bbolt.Open(path, 0600, nil)
	if err != nil {
		return nil, fmt.Errorf("opening %s: %w", path, err)
	}

	err = db.Update(func(tx *bbolt.Tx) error {
		for _, name := range [][]byte{bucketPlayers, bucketRooms, bucketUsers} {
			if _, err := tx.CreateBucketIfNotExists(name); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("creating buckets: %w", err)
	}

	return &BoltStore{db: db}, nil
}

func (s *BoltStore) Close() error {
	return s.db.Close()
}

func bucketFor(rec Record) []byte {
	switch rec.(type) {
	case *CharacterRecord:
		return bucketPlayers
	case *RoomRecord:
		return bucketRooms
	case *UserRecord:
		return bucketUsers
	default:
		return nil
	}
}

// PutBatch writes all records in a single transaction.
func (s *BoltStore) PutBatch(records []Record) error {
	return s.db.Update(func(tx *bbolt.Tx) error {
		for _, rec := range records {
			bucket := bucketFor(rec)
			if bucket == nil {
				return fmt.Errorf("unknown record type %T", rec)
			}
			data, err := json.Marshal(rec)
			if err != nil {
				return fmt.Errorf("encoding %s: %w", rec.Key(), err)
			}
			if err := tx.Bucket(bucket).Put([]byte(rec.Key()), data); err != nil {
				return err
			}
		}
		return nil
	})
}

// GetCharacter loads one character record, or nil when absent.
func (s *BoltStore) GetCharacter(id string) (*CharacterRecord, error) {
	var rec *CharacterRecord
	err := s.db.View(func(tx *bbolt.Tx) error {
		data := tx.Bucket(bucketPlayers).Get([]byte(id))
		if data == nil {
			return nil
		}
		rec = &CharacterRecord{}
		return json.Unmarshal(data, rec)
	})
	if err != nil {
		return nil, fmt.Errorf("loading character %s: %w", id, err)
	}
	return rec, nil
}

// GetRoom loads one room record, or nil when absent.
func (s *BoltStore) GetRoom(id string) (*RoomRecord, error) {
	var rec *RoomRecord
	err := s.db.View(func(tx *bbolt.Tx) error {
		data := tx.Bucket(bucketRooms).Get([]byte(id))
		if data == nil {
			return nil
		}
		rec = &RoomRecord{}
		return json.Unmarshal(data, rec)
	})
	if err != nil {
		return nil, fmt.Errorf("loading room %s: %w", id, err)
	}
	return rec, nil
}

// Lookup implements living.UserStore. Account names are case-insensitive.
func (s *BoltStore) Lookup(name string) (*living.User, error) {
	var u *living.User
	err := s.db.View(func(tx *bbolt.Tx) error {
		data := tx.Bucket(bucketUsers).Get([]byte(strings.ToLower(name)))
		if data == nil {
			return nil
		}
		var rec UserRecord
		if err := json.Unmarshal(data, &rec); err != nil {
			return err
		}
		u = &living.User{
			Name:         rec.Name,
			PasswordHash: rec.PasswordHash,
			CharacterID:  rec.CharacterID,
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("looking up user %s: %w", name, err)
	}
	if u == nil {
		return nil, living.ErrUserNotFound
	}
	return u, nil
}

// Create implements living.UserStore. Creation is atomic; a concurrent
// duplicate loses with ErrUserExists.
func (s *BoltStore) Create(u *living.User) error {
	key := []byte(strings.ToLower(u.Name))
	return s.db.Update(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketUsers)
		if bucket.Get(key) != nil {
			return living.ErrUserExists
		}
		data, err := json.Marshal(&UserRecord{
			Name:         u.Name,
			PasswordHash: u.PasswordHash,
			CharacterID:  u.CharacterID,
		})
		if err != nil {
			return fmt.Errorf("encoding user %s: %w", u.Name, err)
		}
		return bucket.Put(key, data)
	})
}
