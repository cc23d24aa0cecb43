package typedstore_test

import (
	"context"
	"testing"

	"github.com/aalemi-dev/typedstore/kv/memory"
	"github.com/aalemi-dev/typedstore/logger"
	"github.com/aalemi-dev/typedstore/observability"
	"github.com/aalemi-dev/typedstore/tracer"
	"github.com/aalemi-dev/typedstore/typedstore"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestObserverReceivesOneEventPerOperation(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	rec := &observability.Recorder{}
	s := newStore(t, memory.New(memory.Config{}), typedstore.Config{Prefix: "app"}, typedstore.WithObserver(rec))

	require.NoError(t, s.Set(ctx, "theme", "dark"))
	_, err := s.Get(ctx, "theme")
	require.NoError(t, err)
	_, err = s.Has(ctx, "theme")
	require.NoError(t, err)
	require.NoError(t, s.Remove(ctx, "theme"))
	_, err = s.Get(ctx, "theme")
	require.NoError(t, err)
	require.NoError(t, s.Clear(ctx))
	assert.Error(t, s.Set(ctx, "theme", "blue"))

	events := rec.Events()
	require.Len(t, events, 7)

	ops := make([]string, len(events))
	for i, e := range events {
		ops[i] = e.Operation
		assert.Equal(t, "typedstore", e.Component)
	}
	assert.Equal(t, []string{"set", "get", "has", "remove", "get", "clear", "set"}, ops)

	set := events[0]
	assert.Equal(t, "theme", set.Resource)
	assert.Equal(t, "app:theme", set.SubResource)
	assert.Equal(t, int64(len(`"dark"`)), set.Size)
	assert.NoError(t, set.Error)

	assert.Equal(t, "stored", events[1].Metadata["source"])
	assert.Equal(t, "default", events[4].Metadata["source"])

	clr := events[5]
	assert.Empty(t, clr.Resource)
	assert.Empty(t, clr.SubResource)
	assert.Equal(t, 3, clr.Metadata["keys"])

	assert.ErrorIs(t, events[6].Error, typedstore.ErrValidation)
}

func TestObserverMarksLenientFallback(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	backend := memory.New(memory.Config{})
	rec := &observability.Recorder{}
	s := newStore(t, backend, typedstore.Config{Strict: typedstore.Bool(false)}, typedstore.WithObserver(rec))
	require.NoError(t, backend.Set(ctx, "theme", "not json"))

	_, err := s.Get(ctx, "theme")
	require.NoError(t, err)

	events := rec.Events()
	require.Len(t, events, 1)
	assert.Equal(t, true, events[0].Metadata["fallback"])
	assert.Equal(t, "default", events[0].Metadata["source"])
	assert.Equal(t, int64(len("not json")), events[0].Size)
}

func TestLogging(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	core, logs := observer.New(zapcore.DebugLevel)
	log := logger.NewFromZap(zap.New(core), false)

	backend := newFaultyStore()
	s := newStore(t, backend, typedstore.Config{Prefix: "app", Strict: typedstore.Bool(false)}, typedstore.WithLogger(log))

	require.NoError(t, s.Set(ctx, "theme", "dark"))
	stored := logs.FilterMessage("value stored").All()
	require.Len(t, stored, 1)
	assert.Equal(t, "app:theme", stored[0].ContextMap()["storage_key"])

	require.NoError(t, backend.Store.Set(ctx, "app:theme", "not json"))
	_, err := s.Get(ctx, "theme")
	require.NoError(t, err)
	warns := logs.FilterMessage("ignoring unusable stored value").All()
	require.Len(t, warns, 1)
	assert.Equal(t, zapcore.WarnLevel, warns[0].Level)
	assert.Equal(t, "parsing", warns[0].ContextMap()["kind"])
	assert.Equal(t, "theme", warns[0].ContextMap()["key"])

	backend.setErr = errBackend
	assert.Error(t, s.Set(ctx, "theme", "light"))
	errs := logs.FilterLevelExact(zapcore.ErrorLevel).All()
	require.Len(t, errs, 1)
	assert.Equal(t, "failed to store value", errs[0].Message)
}

func TestTracing(t *testing.T) {
	ctx := context.Background()
	spans := tracetest.NewSpanRecorder()
	tr, err := tracer.NewClient(tracer.Config{ServiceName: "test"}, tracer.WithSpanProcessor(spans))
	require.NoError(t, err)
	t.Cleanup(func() { _ = tr.Shutdown(context.Background()) })

	s := newStore(t, memory.New(memory.Config{}), typedstore.Config{Prefix: "app"}, typedstore.WithTracer(tr))

	require.NoError(t, s.Set(ctx, "theme", "dark"))
	assert.Error(t, s.Set(ctx, "theme", "blue"))

	ended := spans.Ended()
	require.Len(t, ended, 2)
	assert.Equal(t, "typedstore.set", ended[0].Name())

	attrs := map[string]string{}
	for _, kv := range ended[0].Attributes() {
		attrs[string(kv.Key)] = kv.Value.Emit()
	}
	assert.Equal(t, "theme", attrs["typedstore.key"])
	assert.Equal(t, "app:theme", attrs["typedstore.storage_key"])

	assert.Equal(t, codes.Unset, ended[0].Status().Code)
	assert.Equal(t, codes.Error, ended[1].Status().Code)
}
