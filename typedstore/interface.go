package typedstore

import "context"

// Client is the typed accessor API. *Store implements it.
type Client interface {
	// Get returns the value for key, the key's default, or an absent Value.
	Get(ctx context.Context, key string) (Value, error)

	// Set validates value and writes it under key.
	Set(ctx context.Context, key string, value any) error

	// Remove deletes the record for key. Removing a missing record is not
	// an error.
	Remove(ctx context.Context, key string) error

	// Clear removes the record of every registered key. Records outside
	// the registry are left alone.
	Clear(ctx context.Context) error

	// Has reports whether a record exists for key, without decoding it.
	Has(ctx context.Context, key string) (bool, error)

	// RegisteredKeys returns the registered keys in declaration order.
	RegisteredKeys() []string

	// StorageKey returns the key used in the backing store for key.
	StorageKey(key string) string
}
