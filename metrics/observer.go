package metrics

import (
	"github.com/aalemi-dev/typedstore/observability"
	"github.com/prometheus/client_golang/prometheus"
)

// OperationObserver turns store operation events into Prometheus series:
//
//	<ns>_operations_total{operation, key, outcome}
//	<ns>_operation_duration_seconds{operation}
//	<ns>_value_bytes{operation}
//	<ns>_default_fallbacks_total{key}
//
// The key label is the logical key, which is bounded by the registry.
type OperationObserver struct {
	operations *prometheus.CounterVec
	duration   *prometheus.HistogramVec
	size       *prometheus.HistogramVec
	fallbacks  *prometheus.CounterVec
}

var _ observability.Observer = (*OperationObserver)(nil)

// NewOperationObserver registers the store collectors on m.
func NewOperationObserver(m *Metrics) (*OperationObserver, error) {
	o := &OperationObserver{
		operations: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: m.namespace,
			Name:      "operations_total",
			Help:      "Store operations by operation, logical key and outcome.",
		}, []string{"operation", "key", "outcome"}),
		duration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: m.namespace,
			Name:      "operation_duration_seconds",
			Help:      "Store operation latency.",
			Buckets:   prometheus.ExponentialBuckets(0.00001, 4, 10),
		}, []string{"operation"}),
		size: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: m.namespace,
			Name:      "value_bytes",
			Help:      "Size of encoded values read or written.",
			Buckets:   prometheus.ExponentialBuckets(16, 4, 8),
		}, []string{"operation"}),
		fallbacks: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: m.namespace,
			Name:      "default_fallbacks_total",
			Help:      "Reads that returned the default because the stored value was unusable.",
		}, []string{"key"}),
	}

	for _, c := range []prometheus.Collector{o.operations, o.duration, o.size, o.fallbacks} {
		if err := m.registerer.Register(c); err != nil {
			return nil, err
		}
	}
	return o, nil
}

// ObserveOperation implements observability.Observer.
func (o *OperationObserver) ObserveOperation(ctx observability.OperationContext) {
	o.operations.WithLabelValues(ctx.Operation, ctx.Resource, ctx.Outcome()).Inc()
	o.duration.WithLabelValues(ctx.Operation).Observe(ctx.Duration.Seconds())
	if ctx.Size > 0 {
		o.size.WithLabelValues(ctx.Operation).Observe(float64(ctx.Size))
	}
	if fallback, _ := ctx.Metadata["fallback"].(bool); fallback {
		o.fallbacks.WithLabelValues(ctx.Resource).Inc()
	}
}
