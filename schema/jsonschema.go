package schema

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/google/jsonschema-go/jsonschema"
)

// SchemaValidator validates values against a JSON Schema (draft 2020-12).
//
// Values are checked in their JSON form, so a Go struct and the map decoded
// from its stored text validate identically. The schema's "default" keyword
// becomes the validator's default value, and property defaults are filled
// into objects that omit them.
type SchemaValidator struct {
	resolved    *jsonschema.Resolved
	defaultJSON json.RawMessage
}

// JSONSchema resolves s and returns a validator for it. Declared defaults are
// checked against their own schemas during resolution, so a schema whose
// default does not conform is rejected here rather than on first read.
// s must not be modified after this call.
func JSONSchema(s *jsonschema.Schema) (*SchemaValidator, error) {
	if s == nil {
		return nil, errors.New("schema: nil JSON schema")
	}
	rs, err := s.Resolve(&jsonschema.ResolveOptions{ValidateDefaults: true})
	if err != nil {
		return nil, fmt.Errorf("schema: resolving JSON schema: %w", err)
	}
	return &SchemaValidator{resolved: rs, defaultJSON: s.Default}, nil
}

// MustJSONSchema is like JSONSchema but panics on error.
func MustJSONSchema(s *jsonschema.Schema) *SchemaValidator {
	v, err := JSONSchema(s)
	if err != nil {
		panic(err)
	}
	return v
}

// For infers a JSON Schema from the Go type T and returns a validator for it.
// Struct fields without "omitempty" are required and unknown properties are
// rejected, following jsonschema.For.
func For[T any]() (*SchemaValidator, error) {
	s, err := jsonschema.For[T](nil)
	if err != nil {
		return nil, fmt.Errorf("schema: inferring JSON schema: %w", err)
	}
	return JSONSchema(s)
}

// MustFor is like For but panics on error.
func MustFor[T any]() *SchemaValidator {
	v, err := For[T]()
	if err != nil {
		panic(err)
	}
	return v
}

// Enum returns a validator that accepts exactly the given JSON values.
func Enum(values ...any) *SchemaValidator {
	return MustJSONSchema(&jsonschema.Schema{Enum: values})
}

// Schema returns the resolved JSON Schema.
func (v *SchemaValidator) Schema() *jsonschema.Schema {
	return v.resolved.Schema()
}

// Validate implements Validator.
//
// The original value is returned unchanged when it conforms and no property
// defaults had to be filled in; otherwise the returned value is the JSON
// decoded form with defaults applied.
func (v *SchemaValidator) Validate(value any) (any, error) {
	normalized, err := toJSONValue(value)
	if err != nil {
		return nil, err
	}
	if err := v.resolved.Validate(normalized); err != nil {
		return nil, err
	}
	if obj, ok := normalized.(map[string]any); ok {
		before := len(obj)
		if err := v.resolved.ApplyDefaults(&normalized); err != nil {
			return nil, fmt.Errorf("applying defaults: %w", err)
		}
		if len(obj) != before {
			return normalized, nil
		}
	}
	return value, nil
}

// Default implements Validator. The default is decoded from the schema on
// every call.
func (v *SchemaValidator) Default() (any, bool) {
	if len(v.defaultJSON) == 0 {
		return nil, false
	}
	var d any
	if err := json.Unmarshal(v.defaultJSON, &d); err != nil {
		return nil, false
	}
	return d, true
}

// toJSONValue converts value into the shape encoding/json produces when
// decoding into an interface: map[string]any, []any, float64, string, bool
// or nil.
func toJSONValue(value any) (any, error) {
	switch value.(type) {
	case nil, string, bool, float64:
		return value, nil
	}
	data, err := json.Marshal(value)
	if err != nil {
		return nil, fmt.Errorf("value is not representable as JSON: %w", err)
	}
	var out any
	if err := json.Unmarshal(data, &out); err != nil {
		return nil, fmt.Errorf("value is not representable as JSON: %w", err)
	}
	return out, nil
}
