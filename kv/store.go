// Package kv defines the raw string key-value store a typed store persists
// into. Implementations live in the memory and bolt sub-packages.
package kv

import (
	"context"
	"errors"
)

var (
	// ErrQuotaExceeded is returned by Set when the store has no room for
	// the value. The previous value, if any, is left in place.
	ErrQuotaExceeded = errors.New("kv: quota exceeded")

	// ErrClosed is returned by operations on a closed store.
	ErrClosed = errors.New("kv: store closed")
)

// Store is a flat string key-value store with last-write-wins semantics.
// Single-key operations are atomic; there are no multi-key transactions.
// Implementations must be safe for concurrent use.
type Store interface {
	// Get returns the value stored under key and whether it exists.
	Get(ctx context.Context, key string) (string, bool, error)

	// Set stores value under key, replacing any previous value.
	Set(ctx context.Context, key, value string) error

	// Remove deletes key. Removing a missing key is not an error.
	Remove(ctx context.Context, key string) error

	// Clear deletes every key in the store.
	Clear(ctx context.Context) error
}

// Lister is implemented by stores that can enumerate their keys.
type Lister interface {
	// Keys returns every key in the store in ascending byte order.
	Keys(ctx context.Context) ([]string, error)
}
