package tracer

import "context"

// Tracer starts spans. *TracerClient implements it.
type Tracer interface {
	// StartSpan starts a span named name as a child of any span in ctx and
	// returns a context carrying the new span.
	StartSpan(ctx context.Context, name string) (context.Context, Span)
}

// Span is a started span. End must be called exactly once.
type Span interface {
	End()

	// SetAttributes attaches key/value pairs. Values other than string,
	// int, int64, float64 and bool are formatted with fmt.Sprint.
	SetAttributes(attrs map[string]interface{})

	// RecordError records err and marks the span as failed.
	RecordError(err error)
}
