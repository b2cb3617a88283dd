package cache

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/dgraph-io/badger/v3"

	"github.com/katalvlaran/lvperiodic/periodicity"
)

// ErrClosed is returned by operations on a closed Store.
var ErrClosed = errors.New("cache: store is closed")

const keyPrefix = "periodicity/"

// Store is a badger-backed result cache. It is safe for concurrent use.
type Store struct {
	db *badger.DB
}

// Open opens (or creates) a store in dir. An empty dir keeps everything in
// memory.
func Open(dir string) (*Store, error) {
	opts := badger.DefaultOptions(dir).
		WithLogger(nil).
		WithInMemory(dir == "")
	db, err := badger.Open(opts)
	if err != nil {
		return nil, fmt.Errorf("cache: open %q: %w", dir, err)
	}

	return &Store{db: db}, nil
}

// Get returns the result stored under key; ok is false on a miss.
func (s *Store) Get(key string) (res periodicity.Result, ok bool, err error) {
	if s.db == nil {
		return res, false, ErrClosed
	}
	err = s.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get([]byte(keyPrefix + key))
		if err != nil {
			return err
		}

		return item.Value(func(val []byte) error {
			return json.Unmarshal(val, &res)
		})
	})
	if errors.Is(err, badger.ErrKeyNotFound) {
		return periodicity.Result{}, false, nil
	}
	if err != nil {
		return periodicity.Result{}, false, fmt.Errorf("cache: get %s: %w", key, err)
	}

	return res, true, nil
}

// Put stores res under key, replacing any previous value.
func (s *Store) Put(key string, res periodicity.Result) error {
	if s.db == nil {
		return ErrClosed
	}
	val, err := json.Marshal(res)
	if err != nil {
		return fmt.Errorf("cache: encode %s: %w", key, err)
	}
	err = s.db.Update(func(txn *badger.Txn) error {
		return txn.Set([]byte(keyPrefix+key), val)
	})
	if err != nil {
		return fmt.Errorf("cache: put %s: %w", key, err)
	}

	return nil
}

// Close flushes and closes the database. Further calls return ErrClosed.
func (s *Store) Close() error {
	if s.db == nil {
		return ErrClosed
	}
	err := s.db.Close()
	s.db = nil

	return err
}
