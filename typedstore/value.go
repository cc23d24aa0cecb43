package typedstore

import (
	"encoding/json"
	"fmt"
)

// Source tells where a Value came from.
type Source int

const (
	// SourceAbsent means nothing was stored and the key has no default.
	SourceAbsent Source = iota

	// SourceStored means the value was read and validated from the store.
	SourceStored

	// SourceDefault means the key's default was returned, either because
	// nothing was stored or because a lenient read discarded the stored
	// value.
	SourceDefault
)

func (s Source) String() string {
	switch s {
	case SourceStored:
		return "stored"
	case SourceDefault:
		return "default"
	}
	return "absent"
}

// Value is the result of a read. A stored JSON null is present with a nil
// Raw value, which is distinct from an absent value.
type Value struct {
	raw    any
	source Source
}

// Present reports whether the value holds anything, stored or default.
func (v Value) Present() bool {
	return v.source != SourceAbsent
}

// Source reports where the value came from.
func (v Value) Source() Source {
	return v.source
}

// Raw returns the validated value. Values read from the store are in
// their decoded generic form (map[string]any, []any, float64, ...).
// Raw is nil when the value is absent.
func (v Value) Raw() any {
	return v.raw
}

// Decode copies the value into target, which must be a non-nil pointer,
// by round-tripping it through JSON.
func (v Value) Decode(target any) error {
	if !v.Present() {
		return ErrNoValue
	}
	data, err := json.Marshal(v.raw)
	if err != nil {
		return fmt.Errorf("re-encoding value: %w", err)
	}
	return json.Unmarshal(data, target)
}

func stored(raw any) Value {
	return Value{raw: raw, source: SourceStored}
}
