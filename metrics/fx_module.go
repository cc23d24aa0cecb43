package metrics

import (
	"context"
	"errors"
	"net/http"

	"github.com/aalemi-dev/typedstore/logger"
	"github.com/aalemi-dev/typedstore/observability"
	"go.uber.org/fx"
)

// FXModule provides *Metrics, *OperationObserver and the
// observability.Observer interface from a metrics.Config, and runs the
// /metrics server for the lifetime of the application.
var FXModule = fx.Module("metrics",
	fx.Provide(
		NewMetrics,
		NewOperationObserver,
		fx.Annotate(
			func(o *OperationObserver) observability.Observer { return o },
			fx.As(new(observability.Observer)),
		),
	),
	fx.Invoke(RegisterMetricsLifecycle),
)

// LifecycleParams groups the dependencies of RegisterMetricsLifecycle.
type LifecycleParams struct {
	fx.In

	Lifecycle fx.Lifecycle
	Metrics   *Metrics
	Logger    logger.Logger `optional:"true"`
}

// RegisterMetricsLifecycle starts the metrics server on start and shuts
// it down on stop. It does nothing when the server is disabled.
func RegisterMetricsLifecycle(p LifecycleParams) {
	srv := p.Metrics.Server
	if srv == nil {
		return
	}
	log := p.Logger

	p.Lifecycle.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			go func() {
				if log != nil {
					log.Info("starting metrics server", nil, map[string]interface{}{"address": srv.Addr})
				}
				if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) && log != nil {
					log.Error("metrics server failed", err, map[string]interface{}{"address": srv.Addr})
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			if log != nil {
				log.Info("shutting down metrics server", nil, nil)
			}
			return srv.Shutdown(ctx)
		},
	})
}
