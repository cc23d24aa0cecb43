package config

import (
	"context"

	"github.com/aalemi-dev/typedstore/kv"
	"github.com/aalemi-dev/typedstore/kv/bolt"
	"github.com/aalemi-dev/typedstore/kv/memory"
	"github.com/aalemi-dev/typedstore/logger"
	"github.com/aalemi-dev/typedstore/metrics"
	"github.com/aalemi-dev/typedstore/schema"
	"github.com/aalemi-dev/typedstore/tracer"
	"github.com/aalemi-dev/typedstore/typedstore"
	"go.uber.org/fx"
)

// Module returns the fx options that build a typedstore.Client from c:
// the logger, the selected backend, the registry when Schema is set, and
// the metrics and tracer modules when their sections are present.
func (c *Config) Module() fx.Option {
	opts := []fx.Option{
		fx.Supply(c.Store, c.Logger),
		logger.FXModule,
		fx.Provide(func(l logger.Logger) typedstore.Logger { return l }),
		typedstore.FXModule,
	}

	if c.Schema != "" {
		path := c.Schema
		opts = append(opts, fx.Provide(func() (*schema.Registry, error) {
			return schema.LoadFile(path)
		}))
	}

	switch c.Backend {
	case BackendBolt:
		opts = append(opts, fx.Supply(c.Bolt), fx.Provide(NewBoltBackend))
	default:
		opts = append(opts, fx.Supply(c.Memory), fx.Provide(NewMemoryBackend))
	}

	if c.Metrics != nil {
		opts = append(opts, fx.Supply(*c.Metrics), metrics.FXModule)
	}
	if c.Tracer != nil {
		opts = append(opts, fx.Supply(*c.Tracer), tracer.FXModule)
	}

	return fx.Options(opts...)
}

// NewMemoryBackend provides an in-memory kv.Store.
func NewMemoryBackend(cfg memory.Config) kv.Store {
	return memory.New(cfg)
}

// NewBoltBackend opens the bolt database and closes it when the
// application stops.
func NewBoltBackend(lc fx.Lifecycle, cfg bolt.Config, log logger.Logger) (kv.Store, error) {
	s, err := bolt.Open(cfg)
	if err != nil {
		return nil, err
	}
	lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			log.Info("closing bolt store", nil, map[string]interface{}{"path": s.Path()})
			return s.Close()
		},
	})
	return s, nil
}
