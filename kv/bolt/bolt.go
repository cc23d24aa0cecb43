// Package bolt implements kv.Store on top of bbolt, an embedded B+ tree
// database, for stores that must survive process restarts.
package bolt

import (
	"context"
	"errors"
	"fmt"
	"sync/atomic"
	"time"

	"github.com/aalemi-dev/typedstore/kv"
	bolt "go.etcd.io/bbolt"
)

// DefaultBucket is used when Config.Bucket is empty.
const DefaultBucket = "typedstore"

// Config describes the database file backing the store.
type Config struct {
	// Path of the database file. It is created if missing unless ReadOnly is set.
	Path string `toml:"path"`

	// Bucket holding the records. Defaults to DefaultBucket.
	Bucket string `toml:"bucket"`

	// Timeout for acquiring the file lock. Zero waits forever.
	Timeout time.Duration `toml:"timeout"`

	// ReadOnly opens the file with a shared lock; every write fails.
	ReadOnly bool `toml:"read_only"`
}

// Store implements kv.Store using a single bbolt bucket.
type Store struct {
	db     *bolt.DB
	bucket []byte
	closed atomic.Bool
}

var (
	_ kv.Store  = (*Store)(nil)
	_ kv.Lister = (*Store)(nil)
)

// Open creates or opens the database described by cfg.
func Open(cfg Config) (*Store, error) {
	if cfg.Path == "" {
		return nil, errors.New("bolt: empty path")
	}
	bucket := cfg.Bucket
	if bucket == "" {
		bucket = DefaultBucket
	}

	db, err := bolt.Open(cfg.Path, 0600, &bolt.Options{Timeout: cfg.Timeout, ReadOnly: cfg.ReadOnly})
	if err != nil {
		return nil, fmt.Errorf("opening bolt db: %w", err)
	}
	s := &Store{db: db, bucket: []byte(bucket)}

	if !cfg.ReadOnly {
		err = db.Update(func(tx *bolt.Tx) error {
			_, err := tx.CreateBucketIfNotExists(s.bucket)
			return err
		})
		if err != nil {
			db.Close()
			return nil, fmt.Errorf("creating bucket: %w", err)
		}
	}
	return s, nil
}

func (s *Store) Get(ctx context.Context, key string) (string, bool, error) {
	if s.closed.Load() {
		return "", false, kv.ErrClosed
	}
	var (
		val   string
		found bool
	)
	err := s.db.View(func(tx *bolt.Tx) error {
		b := tx.Bucket(s.bucket)
		if b == nil {
			return nil
		}
		if v := b.Get([]byte(key)); v != nil {
			// v is only valid inside the transaction; string() copies it.
			val, found = string(v), true
		}
		return nil
	})
	return val, found, err
}

func (s *Store) Set(ctx context.Context, key, value string) error {
	if s.closed.Load() {
		return kv.ErrClosed
	}
	return s.db.Update(func(tx *bolt.Tx) error {
		b, err := tx.CreateBucketIfNotExists(s.bucket)
		if err != nil {
			return fmt.Errorf("creating bucket: %w", err)
		}
		return b.Put([]byte(key), []byte(value))
	})
}

func (s *Store) Remove(ctx context.Context, key string) error {
	if s.closed.Load() {
		return kv.ErrClosed
	}
	return s.db.Update(func(tx *bolt.Tx) error {
		b := tx.Bucket(s.bucket)
		if b == nil {
			return nil
		}
		return b.Delete([]byte(key))
	})
}

func (s *Store) Clear(ctx context.Context) error {
	if s.closed.Load() {
		return kv.ErrClosed
	}
	return s.db.Update(func(tx *bolt.Tx) error {
		if tx.Bucket(s.bucket) != nil {
			if err := tx.DeleteBucket(s.bucket); err != nil {
				return err
			}
		}
		_, err := tx.CreateBucket(s.bucket)
		return err
	})
}

// Keys returns every key in the bucket in byte order.
func (s *Store) Keys(ctx context.Context) ([]string, error) {
	if s.closed.Load() {
		return nil, kv.ErrClosed
	}
	var keys []string
	err := s.db.View(func(tx *bolt.Tx) error {
		b := tx.Bucket(s.bucket)
		if b == nil {
			return nil
		}
		return b.ForEach(func(k, _ []byte) error {
			keys = append(keys, string(k))
			return nil
		})
	})
	return keys, err
}

// Path returns the database file path.
func (s *Store) Path() string {
	return s.db.Path()
}

// Close releases the database file. Closing twice is a no-op.
func (s *Store) Close() error {
	if s.closed.Swap(true) {
		return nil
	}
	return s.db.Close()
}
