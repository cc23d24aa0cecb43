package schema

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/google/jsonschema-go/jsonschema"
)

// document is the on-disk form of a registry. Keys are a list rather than an
// object so declaration order survives decoding.
type document struct {
	Keys []struct {
		Key    string             `json:"key"`
		Schema *jsonschema.Schema `json:"schema"`
	} `json:"keys"`
}

// Parse builds a Registry from a JSON document of the form
//
//	{"keys": [
//	    {"key": "theme", "schema": {"enum": ["light", "dark"], "default": "light"}},
//	    {"key": "user",  "schema": {"type": "object", "required": ["name", "age"]}}
//	]}
//
// Each schema becomes a SchemaValidator.
func Parse(data []byte) (*Registry, error) {
	var doc document
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("schema: decoding registry document: %w", err)
	}
	entries := make([]Entry, 0, len(doc.Keys))
	for _, k := range doc.Keys {
		if k.Schema == nil {
			return nil, fmt.Errorf("entry %q: %w", k.Key, ErrNilValidator)
		}
		v, err := JSONSchema(k.Schema)
		if err != nil {
			return nil, fmt.Errorf("entry %q: %w", k.Key, err)
		}
		entries = append(entries, Define(k.Key, v))
	}
	return NewRegistry(entries...)
}

// LoadFile reads a registry document from path. See Parse for the format.
func LoadFile(path string) (*Registry, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("schema: reading registry file: %w", err)
	}
	return Parse(data)
}
