package typedstore

import (
	"context"
	"time"

	"github.com/aalemi-dev/typedstore/observability"
	"github.com/aalemi-dev/typedstore/tracer"
)

const component = "typedstore"

// observeOperation notifies the observer, if any, about a finished operation.
func (s *Store) observeOperation(operation, key, storageKey string, duration time.Duration, err error, size int64, metadata map[string]interface{}) {
	if s == nil || s.observer == nil {
		return
	}

	s.observer.ObserveOperation(observability.OperationContext{
		Component:   component,
		Operation:   operation,
		Resource:    key,
		SubResource: storageKey,
		Duration:    duration,
		Error:       err,
		Size:        size,
		Metadata:    metadata,
	})
}

// operation tracks one facade call from start to finish.
type operation struct {
	store      *Store
	name       string
	key        string
	storageKey string
	start      time.Time
	span       tracer.Span
	size       int64
	metadata   map[string]interface{}
}

// begin starts timing an operation and opens its span. The returned
// context carries the span.
func (s *Store) begin(ctx context.Context, name, key string) (context.Context, *operation) {
	op := &operation{
		store: s,
		name:  name,
		key:   key,
		start: time.Now(),
	}
	if key != "" {
		op.storageKey = s.StorageKey(key)
	}
	if s.tracer != nil {
		ctx, op.span = s.tracer.StartSpan(ctx, component+"."+name)
		attrs := map[string]interface{}{"typedstore.operation": name}
		if key != "" {
			attrs["typedstore.key"] = key
			attrs["typedstore.storage_key"] = op.storageKey
		}
		op.span.SetAttributes(attrs)
	}
	return ctx, op
}

func (op *operation) set(field string, value interface{}) {
	if op.metadata == nil {
		op.metadata = make(map[string]interface{})
	}
	op.metadata[field] = value
}

// end reports the operation to the observer and closes the span.
func (op *operation) end(err error) {
	if op.span != nil {
		if err != nil {
			op.span.RecordError(err)
		}
		if len(op.metadata) > 0 {
			op.span.SetAttributes(op.metadata)
		}
		op.span.End()
	}
	op.store.observeOperation(op.name, op.key, op.storageKey, time.Since(op.start), err, op.size, op.metadata)
}
