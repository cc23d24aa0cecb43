package metrics

import (
	"errors"
	"io"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/aalemi-dev/typedstore/observability"
	dto "github.com/prometheus/client_model/go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/fx"
	"go.uber.org/fx/fxtest"
)

func newTestMetrics(t *testing.T) *Metrics {
	t.Helper()
	return NewMetrics(Config{Address: Ptr(""), ServiceName: "test", DisableRuntimeCollectors: true})
}

func family(t *testing.T, m *Metrics, name string) *dto.MetricFamily {
	t.Helper()
	families, err := m.Registry.Gather()
	require.NoError(t, err)
	for _, f := range families {
		if f.GetName() == name {
			return f
		}
	}
	return nil
}

func labels(metric *dto.Metric) map[string]string {
	out := map[string]string{}
	for _, lp := range metric.GetLabel() {
		out[lp.GetName()] = lp.GetValue()
	}
	return out
}

func counterValue(t *testing.T, m *Metrics, name string, want map[string]string) float64 {
	t.Helper()
	f := family(t, m, name)
	if f == nil {
		return 0
	}
	for _, metric := range f.GetMetric() {
		got := labels(metric)
		match := true
		for k, v := range want {
			if got[k] != v {
				match = false
				break
			}
		}
		if match {
			return metric.GetCounter().GetValue()
		}
	}
	return 0
}

func TestNewMetrics_Defaults(t *testing.T) {
	m := NewMetrics(Config{ServiceName: "svc"})
	require.NotNil(t, m.Server)
	assert.Equal(t, DefaultAddress, m.Server.Addr)
	assert.Equal(t, DefaultNamespace, m.namespace)

	families, err := m.Registry.Gather()
	require.NoError(t, err)
	assert.NotEmpty(t, families, "runtime collectors are registered")
}

func TestNewMetrics_EmptyAddressDisablesServer(t *testing.T) {
	m := newTestMetrics(t)
	assert.Nil(t, m.Server)
}

func TestOperationObserver(t *testing.T) {
	m := newTestMetrics(t)
	o, err := NewOperationObserver(m)
	require.NoError(t, err)

	o.ObserveOperation(observability.OperationContext{Operation: "set", Resource: "theme", Duration: time.Millisecond, Size: 7})
	o.ObserveOperation(observability.OperationContext{Operation: "set", Resource: "theme", Error: errors.New("invalid")})
	o.ObserveOperation(observability.OperationContext{Operation: "get", Resource: "theme", Metadata: map[string]interface{}{"fallback": true}})
	o.ObserveOperation(observability.OperationContext{Operation: "get", Resource: "theme"})

	assert.Equal(t, 1.0, counterValue(t, m, "typedstore_operations_total",
		map[string]string{"operation": "set", "key": "theme", "outcome": "success", "service": "test"}))
	assert.Equal(t, 1.0, counterValue(t, m, "typedstore_operations_total",
		map[string]string{"operation": "set", "key": "theme", "outcome": "error"}))
	assert.Equal(t, 2.0, counterValue(t, m, "typedstore_operations_total",
		map[string]string{"operation": "get", "key": "theme", "outcome": "success"}))
	assert.Equal(t, 1.0, counterValue(t, m, "typedstore_default_fallbacks_total",
		map[string]string{"key": "theme"}))

	size := family(t, m, "typedstore_value_bytes")
	require.NotNil(t, size)
	require.Len(t, size.GetMetric(), 1)
	assert.Equal(t, uint64(1), size.GetMetric()[0].GetHistogram().GetSampleCount())

	duration := family(t, m, "typedstore_operation_duration_seconds")
	require.NotNil(t, duration)
	assert.Len(t, duration.GetMetric(), 2)
}

func TestOperationObserver_CustomNamespace(t *testing.T) {
	m := NewMetrics(Config{Address: Ptr(""), Namespace: "prefs", DisableRuntimeCollectors: true})
	o, err := NewOperationObserver(m)
	require.NoError(t, err)

	o.ObserveOperation(observability.OperationContext{Operation: "clear"})
	assert.NotNil(t, family(t, m, "prefs_operations_total"))
}

func TestOperationObserver_DoubleRegistration(t *testing.T) {
	m := newTestMetrics(t)
	_, err := NewOperationObserver(m)
	require.NoError(t, err)

	_, err = NewOperationObserver(m)
	assert.Error(t, err)
}

func TestHandler(t *testing.T) {
	m := newTestMetrics(t)
	o, err := NewOperationObserver(m)
	require.NoError(t, err)
	o.ObserveOperation(observability.OperationContext{Operation: "remove", Resource: "user"})

	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest("GET", "/metrics", nil))

	body, err := io.ReadAll(rec.Body)
	require.NoError(t, err)
	assert.Contains(t, string(body), `typedstore_operations_total{key="user",operation="remove",outcome="success",service="test"} 1`)
}

func TestFXModule(t *testing.T) {
	var obs observability.Observer
	app := fxtest.New(t,
		fx.Supply(Config{Address: Ptr("127.0.0.1:0"), DisableRuntimeCollectors: true}),
		FXModule,
		fx.Populate(&obs),
	)
	app.RequireStart()
	require.NotNil(t, obs)
	obs.ObserveOperation(observability.OperationContext{Operation: "get", Resource: "theme"})
	app.RequireStop()
}
