package logger

import (
	"context"

	"go.uber.org/fx"
)

// FXModule provides *LoggerClient and Logger from a logger.Config in the
// container, and syncs the logger on stop.
var FXModule = fx.Module("logger",
	fx.Provide(
		NewLoggerClient,
		fx.Annotate(
			func(l *LoggerClient) Logger { return l },
			fx.As(new(Logger)),
		),
	),
	fx.Invoke(RegisterLoggerLifecycle),
)

// RegisterLoggerLifecycle flushes the logger when the application stops.
// Sync errors are dropped: syncing stderr fails with EINVAL or ENOTTY on
// most systems and would otherwise fail every shutdown.
func RegisterLoggerLifecycle(lc fx.Lifecycle, client *LoggerClient) {
	lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			_ = client.Sync()
			return nil
		},
	})
}
