package logger

import (
	"fmt"
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// LoggerClient wraps a zap.Logger with map-based structured fields and
// optional trace correlation.
type LoggerClient struct {
	// Zap is the underlying logger, exposed for zap-specific needs.
	Zap *zap.Logger

	tracingEnabled bool
}

var _ Logger = (*LoggerClient)(nil)

// NewLoggerClient builds a JSON logger from cfg. Entries carry an ISO8601
// "timestamp", a capitalised level, the caller, the process id and the
// service name.
func NewLoggerClient(cfg Config) (*LoggerClient, error) {
	encoderCfg := zap.NewProductionEncoderConfig()
	encoderCfg.TimeKey = "timestamp"
	encoderCfg.EncodeTime = zapcore.ISO8601TimeEncoder
	encoderCfg.EncodeLevel = zapcore.CapitalLevelEncoder
	encoderCfg.EncodeDuration = zapcore.MillisDurationEncoder

	level, err := zap.ParseAtomicLevel(cfg.zapLevelName())
	if err != nil {
		return nil, fmt.Errorf("parsing log level: %w", err)
	}

	outputs := cfg.OutputPaths
	if len(outputs) == 0 {
		outputs = []string{"stderr"}
	}

	config := zap.Config{
		Level:            level,
		Encoding:         "json",
		EncoderConfig:    encoderCfg,
		OutputPaths:      outputs,
		ErrorOutputPaths: []string{"stderr"},
		InitialFields: map[string]interface{}{
			"pid":     os.Getpid(),
			"service": cfg.ServiceName,
		},
	}

	callerSkip := cfg.CallerSkip
	if callerSkip <= 0 {
		callerSkip = 1
	}

	z, err := config.Build(zap.AddCaller(), zap.AddCallerSkip(callerSkip))
	if err != nil {
		return nil, fmt.Errorf("building zap logger: %w", err)
	}

	return &LoggerClient{Zap: z, tracingEnabled: cfg.EnableTracing}, nil
}

// NewFromZap wraps an existing zap logger.
func NewFromZap(z *zap.Logger, enableTracing bool) *LoggerClient {
	return &LoggerClient{Zap: z, tracingEnabled: enableTracing}
}

// Sync flushes buffered entries. Errors from syncing a terminal
// (stderr on most platforms) are expected and ignored by callers that
// only care about file sinks.
func (l *LoggerClient) Sync() error {
	return l.Zap.Sync()
}
