package typedstore

import (
	"context"

	"github.com/aalemi-dev/typedstore/observability"
	"github.com/aalemi-dev/typedstore/tracer"
)

// Config holds the options recognised by New.
type Config struct {
	// Prefix namespaces every storage key as "<prefix>:<key>". Empty means
	// keys are stored as is. Colons inside the prefix or key are not
	// escaped.
	Prefix string `toml:"prefix"`

	// Strict makes reads fail on stored values that cannot be decoded or
	// validated. When false such reads fall back to the key's default, or
	// to an absent value. nil means true. Writes are always validated.
	Strict *bool `toml:"strict"`
}

// Bool returns a pointer to b, for filling Config.Strict.
func Bool(b bool) *bool {
	return &b
}

// IsStrict reports the effective strict setting.
func (c Config) IsStrict() bool {
	return c.Strict == nil || *c.Strict
}

// Logger is the subset of logger.Logger the store writes to.
// *logger.LoggerClient satisfies it.
type Logger interface {
	DebugWithContext(ctx context.Context, msg string, err error, fields ...map[string]interface{})
	WarnWithContext(ctx context.Context, msg string, err error, fields ...map[string]interface{})
	ErrorWithContext(ctx context.Context, msg string, err error, fields ...map[string]interface{})
}

type noopLogger struct{}

func (noopLogger) DebugWithContext(context.Context, string, error, ...map[string]interface{}) {}
func (noopLogger) WarnWithContext(context.Context, string, error, ...map[string]interface{})  {}
func (noopLogger) ErrorWithContext(context.Context, string, error, ...map[string]interface{}) {}

// Option configures optional collaborators of a Store.
type Option func(*Store)

// WithLogger sets the logger. Successful writes log at debug, lenient
// fallbacks at warn and backend failures at error.
func WithLogger(l Logger) Option {
	return func(s *Store) {
		if l != nil {
			s.logger = l
		}
	}
}

// WithObserver reports every storage operation to o.
func WithObserver(o observability.Observer) Option {
	return func(s *Store) {
		s.observer = o
	}
}

// WithTracer opens a span named "typedstore.<operation>" around every
// storage operation.
func WithTracer(t tracer.Tracer) Option {
	return func(s *Store) {
		s.tracer = t
	}
}

// WithCodec replaces the JSON codec used for the stored text.
func WithCodec(c Codec) Option {
	return func(s *Store) {
		if c != nil {
			s.codec = c
		}
	}
}
