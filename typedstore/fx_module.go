package typedstore

import (
	"context"

	"github.com/aalemi-dev/typedstore/kv"
	"github.com/aalemi-dev/typedstore/observability"
	"github.com/aalemi-dev/typedstore/schema"
	"github.com/aalemi-dev/typedstore/tracer"
	"go.uber.org/fx"
)

// FXModule provides *Store and Client. The graph must supply a
// *schema.Registry, a kv.Store and a typedstore.Config; Logger,
// observability.Observer, tracer.Tracer and Codec are used when present.
var FXModule = fx.Module("typedstore",
	fx.Provide(
		NewStoreWithDI,
		fx.Annotate(
			func(s *Store) Client { return s },
			fx.As(new(Client)),
		),
	),
	fx.Invoke(RegisterLifecycle),
)

// Params groups the dependencies of NewStoreWithDI.
type Params struct {
	fx.In

	Registry *schema.Registry
	Backend  kv.Store
	Config   Config
	Logger   Logger                 `optional:"true"`
	Observer observability.Observer `optional:"true"`
	Tracer   tracer.Tracer          `optional:"true"`
	Codec    Codec                  `optional:"true"`
}

// NewStoreWithDI builds a Store from injected dependencies.
func NewStoreWithDI(p Params) (*Store, error) {
	opts := []Option{WithLogger(p.Logger), WithCodec(p.Codec)}
	if p.Observer != nil {
		opts = append(opts, WithObserver(p.Observer))
	}
	if p.Tracer != nil {
		opts = append(opts, WithTracer(p.Tracer))
	}
	return New(p.Registry, p.Backend, p.Config, opts...)
}

// RegisterLifecycle logs the store's shape once the application starts.
func RegisterLifecycle(lc fx.Lifecycle, s *Store) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			s.logger.DebugWithContext(ctx, "typed store ready", nil, map[string]interface{}{
				"prefix": s.prefix,
				"strict": s.strict,
				"keys":   s.registry.Len(),
			})
			return nil
		},
	})
}
