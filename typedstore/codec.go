package typedstore

import (
	"encoding/json"
	"fmt"
)

// Codec converts values to and from the text kept in the backing store.
type Codec interface {
	Encode(value any) (string, error)

	// Decode returns the generic form of raw: map[string]any, []any,
	// float64, string, bool or nil for JSON-like codecs.
	Decode(raw string) (any, error)
}

// JSONCodec stores values as JSON text. Structs keep their field order;
// maps are written with sorted keys.
type JSONCodec struct{}

var _ Codec = JSONCodec{}

func (JSONCodec) Encode(value any) (string, error) {
	data, err := json.Marshal(value)
	if err != nil {
		return "", fmt.Errorf("failed to marshal JSON: %w", err)
	}
	return string(data), nil
}

func (JSONCodec) Decode(raw string) (any, error) {
	var out any
	if err := json.Unmarshal([]byte(raw), &out); err != nil {
		return nil, fmt.Errorf("failed to unmarshal JSON: %w", err)
	}
	return out, nil
}
