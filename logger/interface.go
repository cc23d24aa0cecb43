package logger

import "context"

// Logger is the structured logging API exposed to the rest of the module.
// *LoggerClient implements it, and it satisfies the narrower logger
// interfaces declared by the store packages.
type Logger interface {
	Debug(msg string, err error, fields ...map[string]interface{})
	Info(msg string, err error, fields ...map[string]interface{})
	Warn(msg string, err error, fields ...map[string]interface{})
	Error(msg string, err error, fields ...map[string]interface{})

	// The *WithContext variants add trace_id and span_id when tracing is
	// enabled and ctx carries a recording span.
	DebugWithContext(ctx context.Context, msg string, err error, fields ...map[string]interface{})
	InfoWithContext(ctx context.Context, msg string, err error, fields ...map[string]interface{})
	WarnWithContext(ctx context.Context, msg string, err error, fields ...map[string]interface{})
	ErrorWithContext(ctx context.Context, msg string, err error, fields ...map[string]interface{})

	// Sync flushes buffered entries.
	Sync() error
}
