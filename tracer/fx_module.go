package tracer

import (
	"context"

	"go.uber.org/fx"
)

// FXModule provides *TracerClient and Tracer from a tracer.Config and
// shuts the provider down when the application stops.
var FXModule = fx.Module("tracer",
	fx.Provide(
		func(cfg Config) (*TracerClient, error) { return NewClient(cfg) },
		fx.Annotate(
			func(t *TracerClient) Tracer { return t },
			fx.As(new(Tracer)),
		),
	),
	fx.Invoke(RegisterTracerLifecycle),
)

// RegisterTracerLifecycle flushes and stops the provider on shutdown.
func RegisterTracerLifecycle(lc fx.Lifecycle, t *TracerClient) {
	lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			return t.Shutdown(ctx)
		},
	})
}
