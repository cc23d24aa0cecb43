package typedstore_test

import (
	"context"
	"encoding/json"
	"errors"
	"sync"
	"testing"

	"github.com/aalemi-dev/typedstore/kv"
	"github.com/aalemi-dev/typedstore/kv/memory"
	"github.com/aalemi-dev/typedstore/schema"
	"github.com/aalemi-dev/typedstore/typedstore"
	"github.com/google/jsonschema-go/jsonschema"
	"github.com/stretchr/testify/require"
)

type User struct {
	Name string `json:"name"`
	Age  int    `json:"age"`
}

var errBackend = errors.New("disk on fire")

func themeValidator() schema.Validator {
	return schema.MustJSONSchema(&jsonschema.Schema{
		Enum:    []any{"light", "dark"},
		Default: json.RawMessage(`"light"`),
	})
}

func userValidator() schema.Validator {
	return schema.MustJSONSchema(&jsonschema.Schema{
		Type: "object",
		Properties: map[string]*jsonschema.Schema{
			"name": {Type: "string"},
			"age":  {Type: "number"},
		},
		Required: []string{"name", "age"},
	})
}

func anyValidator() schema.Validator {
	return schema.Func(func(v any) (any, error) { return v, nil })
}

func testRegistry(t *testing.T) *schema.Registry {
	t.Helper()
	reg, err := schema.NewRegistry(
		schema.Define("theme", themeValidator()),
		schema.Define("user", userValidator()),
		schema.Define("note", anyValidator()),
	)
	require.NoError(t, err)
	return reg
}

func newStore(t *testing.T, backend kv.Store, cfg typedstore.Config, opts ...typedstore.Option) *typedstore.Store {
	t.Helper()
	s, err := typedstore.New(testRegistry(t), backend, cfg, opts...)
	require.NoError(t, err)
	return s
}

// faultyStore wraps a memory store and fails selected operations.
type faultyStore struct {
	*memory.Store

	mu        sync.Mutex
	getErr    error
	setErr    error
	removeErr map[string]error
}

func newFaultyStore() *faultyStore {
	return &faultyStore{Store: memory.New(memory.Config{}), removeErr: map[string]error{}}
}

func (f *faultyStore) Get(ctx context.Context, key string) (string, bool, error) {
	f.mu.Lock()
	err := f.getErr
	f.mu.Unlock()
	if err != nil {
		return "", false, err
	}
	return f.Store.Get(ctx, key)
}

func (f *faultyStore) Set(ctx context.Context, key, value string) error {
	f.mu.Lock()
	err := f.setErr
	f.mu.Unlock()
	if err != nil {
		return err
	}
	return f.Store.Set(ctx, key, value)
}

func (f *faultyStore) Remove(ctx context.Context, key string) error {
	f.mu.Lock()
	err := f.removeErr[key]
	f.mu.Unlock()
	if err != nil {
		return err
	}
	return f.Store.Remove(ctx, key)
}
