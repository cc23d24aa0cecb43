package logger

// Log levels accepted by Config.Level.
const (
	Debug   = "debug"
	Info    = "info"
	Warning = "warning"
	Error   = "error"
)

// Config controls the zap logger built by NewLoggerClient.
type Config struct {
	// Level is the minimum level written: "debug", "info", "warning" or
	// "error". Anything else means "info".
	Level string `toml:"level"`

	// EnableTracing adds trace_id and span_id from the active
	// OpenTelemetry span to entries logged through the *WithContext methods.
	EnableTracing bool `toml:"enable_tracing"`

	// ServiceName populates the "service" field of every entry.
	ServiceName string `toml:"service_name"`

	// CallerSkip is the number of wrapper frames to skip when reporting
	// the caller. Defaults to 1.
	CallerSkip int `toml:"caller_skip"`

	// OutputPaths are zap sink URLs or file paths. Defaults to stderr.
	OutputPaths []string `toml:"output_paths"`
}

func (c Config) zapLevelName() string {
	switch c.Level {
	case Debug, Info, Error:
		return c.Level
	case Warning:
		return "warn"
	}
	return Info
}
