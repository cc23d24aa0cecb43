package schema

import (
	"errors"
	"fmt"
)

var (
	// ErrEmptyKey is returned when an entry has an empty key name.
	ErrEmptyKey = errors.New("schema: empty key")

	// ErrNilValidator is returned when an entry has no validator.
	ErrNilValidator = errors.New("schema: nil validator")

	// ErrDuplicateKey is returned when two entries share a key name.
	ErrDuplicateKey = errors.New("schema: duplicate key")
)

// Entry binds a logical key name to the validator for its value.
type Entry struct {
	Key       string
	Validator Validator
}

// Define is shorthand for Entry{Key: key, Validator: v}.
func Define(key string, v Validator) Entry {
	return Entry{Key: key, Validator: v}
}

// Registry is the fixed, ordered set of schema entries a store is built from.
// It is immutable after construction and safe for concurrent use.
type Registry struct {
	keys       []string
	validators map[string]Validator
}

// NewRegistry builds a Registry from entries, preserving their order.
// An empty registry is legal and yields a store with no registered keys.
func NewRegistry(entries ...Entry) (*Registry, error) {
	r := &Registry{
		keys:       make([]string, 0, len(entries)),
		validators: make(map[string]Validator, len(entries)),
	}
	for i, e := range entries {
		if e.Key == "" {
			return nil, fmt.Errorf("entry %d: %w", i, ErrEmptyKey)
		}
		if e.Validator == nil {
			return nil, fmt.Errorf("entry %q: %w", e.Key, ErrNilValidator)
		}
		if _, ok := r.validators[e.Key]; ok {
			return nil, fmt.Errorf("entry %q: %w", e.Key, ErrDuplicateKey)
		}
		r.keys = append(r.keys, e.Key)
		r.validators[e.Key] = e.Validator
	}
	return r, nil
}

// MustRegistry is like NewRegistry but panics on error.
// It is meant for registries declared as package-level variables.
func MustRegistry(entries ...Entry) *Registry {
	r, err := NewRegistry(entries...)
	if err != nil {
		panic(err)
	}
	return r
}

// Keys returns the registered key names in declaration order.
// The returned slice is a copy.
func (r *Registry) Keys() []string {
	out := make([]string, len(r.keys))
	copy(out, r.keys)
	return out
}

// Len returns the number of registered keys.
func (r *Registry) Len() int {
	return len(r.keys)
}

// Has reports whether key is registered.
func (r *Registry) Has(key string) bool {
	_, ok := r.validators[key]
	return ok
}

// ValidatorFor returns the validator registered for key.
func (r *Registry) ValidatorFor(key string) (Validator, bool) {
	v, ok := r.validators[key]
	return v, ok
}

// DefaultFor evaluates the default declared by key's validator.
// Defaults are computed on each call and never cached.
func (r *Registry) DefaultFor(key string) (any, bool) {
	v, ok := r.validators[key]
	if !ok {
		return nil, false
	}
	return v.Default()
}
