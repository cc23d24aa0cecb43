package typedstore

import (
	"github.com/aalemi-dev/typedstore/kv"
	"github.com/aalemi-dev/typedstore/observability"
	"github.com/aalemi-dev/typedstore/schema"
	"github.com/aalemi-dev/typedstore/tracer"
)

// Store is a typed view over a kv.Store. It is immutable after New and
// safe for concurrent use when the backend is.
type Store struct {
	registry *schema.Registry
	backend  kv.Store
	prefix   string
	strict   bool

	codec    Codec
	logger   Logger
	observer observability.Observer
	tracer   tracer.Tracer
}

var _ Client = (*Store)(nil)

// New binds registry to backend.
//
//	reg := schema.MustRegistry(
//	    schema.Define("theme", schema.WithDefault(schema.Enum("light", "dark"),
//	        func() any { return "light" })),
//	)
//	store, err := typedstore.New(reg, memory.New(memory.Config{}), typedstore.Config{Prefix: "app"})
func New(registry *schema.Registry, backend kv.Store, cfg Config, opts ...Option) (*Store, error) {
	if registry == nil {
		return nil, ErrNilRegistry
	}
	if backend == nil {
		return nil, ErrNilBackend
	}

	s := &Store{
		registry: registry,
		backend:  backend,
		prefix:   cfg.Prefix,
		strict:   cfg.IsStrict(),
		codec:    JSONCodec{},
		logger:   noopLogger{},
	}
	for _, opt := range opts {
		opt(s)
	}
	return s, nil
}

// StorageKey returns "<prefix>:<key>", or key when the prefix is empty.
func (s *Store) StorageKey(key string) string {
	if s.prefix == "" {
		return key
	}
	return s.prefix + ":" + key
}

// RegisteredKeys returns the registered keys in declaration order. The
// returned slice is a copy.
func (s *Store) RegisteredKeys() []string {
	return s.registry.Keys()
}

// Prefix returns the configured namespace.
func (s *Store) Prefix() string {
	return s.prefix
}

// Strict reports whether reads fail on unusable stored values.
func (s *Store) Strict() bool {
	return s.strict
}
