// Package store persists form models between sessions in a bbolt file, one
// record per form name. A host saves the model snapshot after a run and
// loads it back to resume; Reset drops the record so the next run starts
// from a fresh model and freshly issued control ids.
package store

import (
	"errors"
	"fmt"
	"time"

	bolt "go.etcd.io/bbolt"

	"github.com/goliatone/go-formlet/pkg/model"
)

// ErrNotFound is returned by Load when no model is saved under the name.
var ErrNotFound = errors.New("store: no saved model")

var bucketModels = []byte("models")

// Store is a handle to an open state file. Safe for concurrent use; bbolt
// serialises writers internally.
type Store struct {
	db *bolt.DB
}

// Open opens or creates the state file at path.
func Open(path string) (*Store, error) {
	db, err := bolt.Open(path, 0o600, &bolt.Options{Timeout: time.Second})
	if err != nil {
		return nil, fmt.Errorf("store: open %s: %w", path, err)
	}
	err = db.Update(func(tx *bolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists(bucketModels)
		return err
	})
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("store: init %s: %w", path, err)
	}
	return &Store{db: db}, nil
}

// Close releases the file lock.
func (s *Store) Close() error {
	return s.db.Close()
}

// Save writes the model snapshot under the form name, replacing any
// previous snapshot.
func (s *Store) Save(form string, m model.Model) error {
	if form == "" {
		return fmt.Errorf("store: form name is required")
	}
	data, err := model.EncodeJSON(m)
	if err != nil {
		return fmt.Errorf("store: encode %q: %w", form, err)
	}
	return s.db.Update(func(tx *bolt.Tx) error {
		return tx.Bucket(bucketModels).Put([]byte(form), data)
	})
}

// Load reads the saved model for the form name, or ErrNotFound.
func (s *Store) Load(form string) (model.Model, error) {
	var data []byte
	err := s.db.View(func(tx *bolt.Tx) error {
		v := tx.Bucket(bucketModels).Get([]byte(form))
		if v == nil {
			return ErrNotFound
		}
		data = append([]byte(nil), v...)
		return nil
	})
	if err != nil {
		return nil, err
	}
	m, err := model.DecodeJSON(data)
	if err != nil {
		return nil, fmt.Errorf("store: load %q: %w", form, err)
	}
	return m, nil
}

// Reset deletes the saved model for the form name. Resetting a name that
// was never saved is not an error.
func (s *Store) Reset(form string) error {
	return s.db.Update(func(tx *bolt.Tx) error {
		return tx.Bucket(bucketModels).Delete([]byte(form))
	})
}

// List returns the names of all saved forms in key order.
func (s *Store) List() ([]string, error) {
	var names []string
	err := s.db.View(func(tx *bolt.Tx) error {
		c := tx.Bucket(bucketModels).Cursor()
		for k, _ := c.First(); k != nil; k, _ = c.Next() {
			names = append(names, string(k))
		}
		return nil
	})
	return names, err
}
