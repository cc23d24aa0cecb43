package schema

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/jsonschema-go/jsonschema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type user struct {
	Name string `json:"name"`
	Age  int    `json:"age"`
}

func TestJSONSchema_NilSchema(t *testing.T) {
	t.Parallel()
	_, err := JSONSchema(nil)
	assert.Error(t, err)
}

func TestJSONSchema_RejectsNonConformingDefault(t *testing.T) {
	t.Parallel()
	_, err := JSONSchema(&jsonschema.Schema{Type: "string", Default: json.RawMessage(`1`)})
	assert.Error(t, err)
}

func TestMustJSONSchema_Panics(t *testing.T) {
	t.Parallel()
	assert.Panics(t, func() {
		MustJSONSchema(&jsonschema.Schema{Type: "string", Default: json.RawMessage(`true`)})
	})
}

func TestEnum(t *testing.T) {
	t.Parallel()
	theme := Enum("light", "dark")

	got, err := theme.Validate("dark")
	require.NoError(t, err)
	assert.Equal(t, "dark", got)

	_, err = theme.Validate("blue")
	assert.Error(t, err)

	_, ok := theme.Default()
	assert.False(t, ok)
}

func TestSchemaValidator_Default(t *testing.T) {
	t.Parallel()
	v := MustJSONSchema(&jsonschema.Schema{
		Enum:    []any{"light", "dark"},
		Default: json.RawMessage(`"light"`),
	})

	d, ok := v.Default()
	require.True(t, ok)
	assert.Equal(t, "light", d)
}

func TestSchemaValidator_DefaultIsFreshPerCall(t *testing.T) {
	t.Parallel()
	v := MustJSONSchema(&jsonschema.Schema{
		Type:    "object",
		Default: json.RawMessage(`{"tags":[]}`),
	})

	first, ok := v.Default()
	require.True(t, ok)
	first.(map[string]any)["tags"] = []any{"mutated"}

	second, _ := v.Default()
	assert.Equal(t, map[string]any{"tags": []any{}}, second)
}

func TestFor_Struct(t *testing.T) {
	t.Parallel()
	v, err := For[user]()
	require.NoError(t, err)

	in := user{Name: "John", Age: 30}
	got, err := v.Validate(in)
	require.NoError(t, err)
	assert.Equal(t, in, got, "a conforming value is returned unchanged")

	got, err = v.Validate(map[string]any{"name": "John", "age": float64(30)})
	require.NoError(t, err)
	assert.Equal(t, map[string]any{"name": "John", "age": float64(30)}, got)
}

func TestFor_RejectsMissingAndExtraProperties(t *testing.T) {
	t.Parallel()
	v := MustFor[user]()

	_, err := v.Validate(map[string]any{"name": "John"})
	assert.Error(t, err, "age is required")

	_, err = v.Validate(map[string]any{"name": "John", "age": float64(30), "admin": true})
	assert.Error(t, err, "unknown properties are rejected")

	_, err = v.Validate(map[string]any{"name": "John", "age": "thirty"})
	assert.Error(t, err)
}

func TestFor_UnsupportedType(t *testing.T) {
	t.Parallel()
	_, err := For[func()]()
	assert.Error(t, err)
	assert.Panics(t, func() { MustFor[chan int]() })
}

func TestSchemaValidator_AppliesPropertyDefaults(t *testing.T) {
	t.Parallel()
	v := MustJSONSchema(&jsonschema.Schema{
		Type:     "object",
		Required: []string{"name"},
		Properties: map[string]*jsonschema.Schema{
			"name": {Type: "string"},
			"lang": {Type: "string", Default: json.RawMessage(`"en"`)},
		},
	})

	got, err := v.Validate(map[string]any{"name": "John"})
	require.NoError(t, err)
	assert.Equal(t, map[string]any{"name": "John", "lang": "en"}, got)

	got, err = v.Validate(map[string]any{"name": "John", "lang": "it"})
	require.NoError(t, err)
	assert.Equal(t, map[string]any{"name": "John", "lang": "it"}, got)
}

func TestSchemaValidator_NotRepresentableAsJSON(t *testing.T) {
	t.Parallel()
	v := MustJSONSchema(&jsonschema.Schema{})
	_, err := v.Validate(make(chan int))
	assert.Error(t, err)
}

func TestSchemaValidator_Schema(t *testing.T) {
	t.Parallel()
	v := MustJSONSchema(&jsonschema.Schema{Type: "boolean"})
	assert.Equal(t, "boolean", v.Schema().Type)
}

const registryDocument = `{
  "keys": [
    {"key": "theme", "schema": {"enum": ["light", "dark"], "default": "light"}},
    {"key": "user", "schema": {
      "type": "object",
      "required": ["name", "age"],
      "properties": {"name": {"type": "string"}, "age": {"type": "number"}}
    }}
  ]
}`

func TestParse(t *testing.T) {
	t.Parallel()
	r, err := Parse([]byte(registryDocument))
	require.NoError(t, err)
	assert.Equal(t, []string{"theme", "user"}, r.Keys())

	d, ok := r.DefaultFor("theme")
	require.True(t, ok)
	assert.Equal(t, "light", d)

	v, _ := r.ValidatorFor("user")
	_, err = v.Validate(map[string]any{"name": "John"})
	assert.Error(t, err)
}

func TestParse_Errors(t *testing.T) {
	t.Parallel()
	cases := map[string]string{
		"not json":       `not json`,
		"missing schema": `{"keys":[{"key":"theme"}]}`,
		"bad default":    `{"keys":[{"key":"n","schema":{"type":"number","default":"x"}}]}`,
		"duplicate":      `{"keys":[{"key":"a","schema":{}},{"key":"a","schema":{}}]}`,
	}
	for name, doc := range cases {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			_, err := Parse([]byte(doc))
			assert.Error(t, err)
		})
	}
}

func TestLoadFile(t *testing.T) {
	t.Parallel()
	path := filepath.Join(t.TempDir(), "registry.json")
	require.NoError(t, os.WriteFile(path, []byte(registryDocument), 0o644))

	r, err := LoadFile(path)
	require.NoError(t, err)
	assert.Equal(t, 2, r.Len())

	_, err = LoadFile(filepath.Join(t.TempDir(), "missing.json"))
	assert.Error(t, err)
}
