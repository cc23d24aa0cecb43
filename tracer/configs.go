package tracer

// Config controls the OpenTelemetry tracer provider.
type Config struct {
	// ServiceName is reported as the service.name resource attribute.
	ServiceName string `toml:"service_name"`

	// AppEnv is reported as deployment.environment, e.g. "production".
	AppEnv string `toml:"app_env"`

	// EnableExport sends spans to an OTLP/HTTP collector. The endpoint
	// comes from Endpoint or, when empty, from the standard
	// OTEL_EXPORTER_OTLP_* environment variables.
	EnableExport bool `toml:"enable_export"`

	// Endpoint is the collector host:port, e.g. "localhost:4318".
	Endpoint string `toml:"endpoint"`

	// Insecure disables TLS towards the collector.
	Insecure bool `toml:"insecure"`

	// SampleRatio is the fraction of root spans sampled, in (0, 1].
	// Zero means sample everything.
	SampleRatio float64 `toml:"sample_ratio"`
}
