// Package memory provides an in-process kv.Store with an optional byte
// capacity, modelled on browser storage quotas.
package memory

import (
	"context"
	"maps"
	"slices"
	"sync"

	"github.com/aalemi-dev/typedstore/kv"
)

// Config controls the in-memory store.
type Config struct {
	// CapacityBytes caps the summed len(key)+len(value) of all records.
	// Zero or negative means unlimited.
	CapacityBytes int `toml:"capacity_bytes"`
}

// Store implements kv.Store with a mutex-guarded map.
type Store struct {
	mu       sync.RWMutex
	data     map[string]string
	used     int
	capacity int
}

var (
	_ kv.Store  = (*Store)(nil)
	_ kv.Lister = (*Store)(nil)
)

// New creates an empty in-memory store.
func New(cfg Config) *Store {
	return &Store{
		data:     make(map[string]string),
		capacity: cfg.CapacityBytes,
	}
}

func (s *Store) Get(ctx context.Context, key string) (string, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	v, ok := s.data[key]
	return v, ok, nil
}

func (s *Store) Set(ctx context.Context, key, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	used := s.used + len(key) + len(value)
	if old, ok := s.data[key]; ok {
		used -= len(key) + len(old)
	}
	if s.capacity > 0 && used > s.capacity {
		return kv.ErrQuotaExceeded
	}
	s.data[key] = value
	s.used = used
	return nil
}

func (s *Store) Remove(ctx context.Context, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if old, ok := s.data[key]; ok {
		s.used -= len(key) + len(old)
		delete(s.data, key)
	}
	return nil
}

func (s *Store) Clear(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data = make(map[string]string)
	s.used = 0
	return nil
}

// Keys returns every key in ascending order.
func (s *Store) Keys(ctx context.Context) ([]string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return slices.Sorted(maps.Keys(s.data)), nil
}

// Len returns the number of records.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.data)
}

// Used returns the bytes currently counted against the capacity.
func (s *Store) Used() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.used
}
