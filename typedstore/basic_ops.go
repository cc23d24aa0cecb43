package typedstore

import (
	"context"

	"go.uber.org/multierr"
)

// Get reads key from the store.
//
// With nothing stored, Get returns the key's default when it has one and
// an absent Value otherwise. A stored value is decoded and validated; if
// either step fails a strict store returns a parsing or validation *Error,
// while a lenient store logs a warning and behaves as if nothing were
// stored. Backend failures are returned as storage errors in both modes.
func (s *Store) Get(ctx context.Context, key string) (val Value, err error) {
	ctx, op := s.begin(ctx, "get", key)
	defer func() {
		op.set("source", val.Source().String())
		op.end(err)
	}()

	validator, ok := s.registry.ValidatorFor(key)
	if !ok {
		return Value{}, unknownKey(key)
	}

	raw, found, err := s.backend.Get(ctx, op.storageKey)
	if err != nil {
		serr := storageError(key, "read", nil, err)
		s.logger.ErrorWithContext(ctx, "failed to read stored value", err, s.fields(op))
		return Value{}, serr
	}
	if !found {
		return s.defaultValue(key), nil
	}
	op.size = int64(len(raw))

	decoded, err := s.codec.Decode(raw)
	if err != nil {
		return s.fallback(ctx, op, parsingError(key, raw, err))
	}

	validated, err := validator.Validate(decoded)
	if err != nil {
		return s.fallback(ctx, op, validationError(key, decoded, true, err))
	}
	return stored(validated), nil
}

// Set validates value against key's validator and writes its encoding.
// Validation applies in lenient mode too; nothing is written when it fails.
func (s *Store) Set(ctx context.Context, key string, value any) (err error) {
	ctx, op := s.begin(ctx, "set", key)
	defer func() { op.end(err) }()

	validator, ok := s.registry.ValidatorFor(key)
	if !ok {
		return unknownKey(key)
	}

	validated, err := validator.Validate(value)
	if err != nil {
		return validationError(key, value, false, err)
	}

	encoded, err := s.codec.Encode(validated)
	if err != nil {
		return validationError(key, value, false, err)
	}

	if err := s.backend.Set(ctx, op.storageKey, encoded); err != nil {
		s.logger.ErrorWithContext(ctx, "failed to store value", err, s.fields(op))
		return storageError(key, "store", value, err)
	}
	op.size = int64(len(encoded))

	s.logger.DebugWithContext(ctx, "value stored", nil, s.fields(op))
	return nil
}

// Remove deletes the record for key. It succeeds when there is none.
func (s *Store) Remove(ctx context.Context, key string) (err error) {
	ctx, op := s.begin(ctx, "remove", key)
	defer func() { op.end(err) }()

	if !s.registry.Has(key) {
		return unknownKey(key)
	}
	if err := s.backend.Remove(ctx, op.storageKey); err != nil {
		s.logger.ErrorWithContext(ctx, "failed to remove value", err, s.fields(op))
		return storageError(key, "remove", nil, err)
	}

	s.logger.DebugWithContext(ctx, "value removed", nil, s.fields(op))
	return nil
}

// Clear removes the records of every registered key, one at a time.
// Records outside the registry, including ones sharing the prefix, are
// left alone. A failed removal does not stop the others; the returned
// error combines every failure and the store may be partially cleared.
func (s *Store) Clear(ctx context.Context) (err error) {
	ctx, op := s.begin(ctx, "clear", "")
	defer func() { op.end(err) }()

	keys := s.registry.Keys()
	removed := 0
	for _, key := range keys {
		storageKey := s.StorageKey(key)
		if rerr := s.backend.Remove(ctx, storageKey); rerr != nil {
			err = multierr.Append(err, storageError(key, "remove", nil, rerr))
			continue
		}
		removed++
	}
	op.set("keys", len(keys))
	op.set("removed", removed)

	if err != nil {
		s.logger.ErrorWithContext(ctx, "store partially cleared", err, s.fields(op))
		return err
	}
	s.logger.DebugWithContext(ctx, "store cleared", nil, s.fields(op))
	return nil
}

// Has reports whether a record exists for key. The record is neither
// decoded nor validated.
func (s *Store) Has(ctx context.Context, key string) (found bool, err error) {
	ctx, op := s.begin(ctx, "has", key)
	defer func() { op.end(err) }()

	if !s.registry.Has(key) {
		return false, unknownKey(key)
	}
	_, found, err = s.backend.Get(ctx, op.storageKey)
	if err != nil {
		return false, storageError(key, "read", nil, err)
	}
	return found, nil
}

// defaultValue returns key's default, freshly evaluated, or an absent Value.
func (s *Store) defaultValue(key string) Value {
	if d, ok := s.registry.DefaultFor(key); ok {
		return Value{raw: d, source: SourceDefault}
	}
	return Value{}
}

// fallback handles a stored value that could not be decoded or validated.
func (s *Store) fallback(ctx context.Context, op *operation, cause *Error) (Value, error) {
	if s.strict {
		return Value{}, cause
	}
	op.set("fallback", true)
	s.logger.WarnWithContext(ctx, "ignoring unusable stored value", cause, s.fields(op), map[string]interface{}{
		"kind": string(cause.Kind),
	})
	return s.defaultValue(op.key), nil
}

func (s *Store) fields(op *operation) map[string]interface{} {
	f := map[string]interface{}{"operation": op.name}
	if op.key != "" {
		f["key"] = op.key
		f["storage_key"] = op.storageKey
	}
	if s.prefix != "" {
		f["prefix"] = s.prefix
	}
	return f
}
