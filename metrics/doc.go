// Package metrics exposes typed store activity to Prometheus.
//
// NewMetrics creates a dedicated registry (plus the Go and process
// collectors) and an HTTP server that serves it on /metrics.
// NewOperationObserver registers the store collectors on that registry
// and implements observability.Observer, so it plugs straight into a
// store:
//
//	m := metrics.NewMetrics(metrics.Config{ServiceName: "prefs"})
//	obs, err := metrics.NewOperationObserver(m)
//	if err != nil {
//	    return err
//	}
//	store, err := typedstore.New(reg, backend, cfg, typedstore.WithObserver(obs))
//
// With fx, FXModule provides the same objects and manages the server.
package metrics
