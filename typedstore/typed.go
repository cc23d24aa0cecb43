package typedstore

import (
	"context"
	"fmt"
)

// Key is a registered key bound to the Go type its values decode into.
//
//	var Theme = typedstore.NewKey[string]("theme")
//
//	theme, ok, err := typedstore.Get(ctx, store, Theme)
type Key[T any] struct {
	Name string
}

// NewKey returns a typed handle for the registered key name.
func NewKey[T any](name string) Key[T] {
	return Key[T]{Name: name}
}

// Get reads k and converts the result to T. ok is false when the value is
// absent. A value that does not fit T is reported as a parsing error.
func Get[T any](ctx context.Context, s *Store, k Key[T]) (value T, ok bool, err error) {
	v, err := s.Get(ctx, k.Name)
	if err != nil || !v.Present() {
		return value, false, err
	}
	if t, isT := v.Raw().(T); isT {
		return t, true, nil
	}
	if err := v.Decode(&value); err != nil {
		var zero T
		return zero, false, &Error{
			Kind:    KindParsing,
			Key:     k.Name,
			Value:   v.Raw(),
			Message: fmt.Sprintf("failed to decode value for key %q into %T", k.Name, zero),
			Err:     err,
		}
	}
	return value, true, nil
}

// Set writes v under k.
func Set[T any](ctx context.Context, s *Store, k Key[T], v T) error {
	return s.Set(ctx, k.Name, v)
}

// Remove deletes the record for k.
func Remove[T any](ctx context.Context, s *Store, k Key[T]) error {
	return s.Remove(ctx, k.Name)
}

// Has reports whether a record exists for k.
func Has[T any](ctx context.Context, s *Store, k Key[T]) (bool, error) {
	return s.Has(ctx, k.Name)
}
