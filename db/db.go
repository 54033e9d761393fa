package db

import (
	"encoding/json"
	"fmt"
	"os"
	"syscall"
	"time"

	"github.com/boltdb/bolt"
)

const (
	CHECK_BUCKET = "checkmark"
	CHECK_KEY    = "med_checked"
)

// BoltStore keeps the checkmark set as one json value in a bolt bucket.
type BoltStore struct {
	*bolt.DB
}

func NewBoltStore(path string) (*BoltStore, error) {
	db, err := bolt.Open(path, 0600, &bolt.Options{Timeout: 1 * time.Second})
	if err != nil {
		return nil, fmt.Errorf("open %s: %w (try --unlockdb if no other medtyping is running)", path, err)
	}

	err = db.Update(func(tx *bolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists([]byte(CHECK_BUCKET))
		return err
	})
	if err != nil {
		db.Close()
		return nil, err
	}

	return &BoltStore{DB: db}, nil
}

func (db *BoltStore) Load() (map[string]bool, error) {
	var data []byte
	err := db.DB.View(func(tx *bolt.Tx) error {
		b := tx.Bucket([]byte(CHECK_BUCKET)).Get([]byte(CHECK_KEY))
		data = append(data, b...)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return decodeSet(data)
}

func (db *BoltStore) Save(set map[string]bool) error {
	data, err := json.Marshal(set)
	if err != nil {
		return err
	}
	return db.DB.Update(func(tx *bolt.Tx) error {
		return tx.Bucket([]byte(CHECK_BUCKET)).Put([]byte(CHECK_KEY), data)
	})
}

// Unlock releases the flock a crashed process left on the bolt file.
func Unlock(path string) error {
	file, err := os.Open(path)
	if err != nil {
		return err
	}
	defer file.Close()
	return syscall.Flock(int(file.Fd()), syscall.LOCK_UN)
}

func decodeSet(data []byte) (map[string]bool, error) {
	set := map[string]bool{}
	if len(data) == 0 {
		return set, nil
	}
	err := json.Unmarshal(data, &set)
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", CHECK_KEY, err)
	}
	for k, v := range set {
		if !v {
			delete(set, k)
		}
	}
	return set, nil
}
