package metrics

// DefaultAddress is the listen address used when Config.Address is nil.
const DefaultAddress = ":9090"

// DefaultNamespace prefixes every metric name when Config.Namespace is empty.
const DefaultNamespace = "typedstore"

// Config controls the Prometheus registry and its HTTP endpoint.
type Config struct {
	// Address the /metrics server listens on. nil means DefaultAddress;
	// a pointer to "" disables the server while still collecting.
	Address *string `toml:"address"`

	// ServiceName is attached to every series as the "service" label.
	ServiceName string `toml:"service_name"`

	// Namespace prefixes metric names. Defaults to DefaultNamespace.
	Namespace string `toml:"namespace"`

	// DisableRuntimeCollectors skips the Go and process collectors.
	DisableRuntimeCollectors bool `toml:"disable_runtime_collectors"`
}

// Ptr returns a pointer to s, for filling Config.Address.
func Ptr(s string) *string {
	return &s
}

func (c Config) address() string {
	if c.Address == nil {
		return DefaultAddress
	}
	return *c.Address
}

func (c Config) namespace() string {
	if c.Namespace == "" {
		return DefaultNamespace
	}
	return c.Namespace
}
