// Package config loads a TOML file describing a typed store and its
// supporting services, and turns it into an fx application graph.
//
//	# typedstore.toml
//	schema  = "/etc/prefs/schema.json"
//	backend = "bolt"
//
//	[store]
//	prefix = "app"
//	strict = false
//
//	[bolt]
//	path    = "/var/lib/prefs/store.db"
//	timeout = "1s"
//
//	[logger]
//	level = "info"
//
//	[metrics]
//	address = ":9090"
//
//	[tracer]
//	service_name = "prefs"
//
// The [metrics] and [tracer] sections are optional; leaving one out
// disables that service.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/aalemi-dev/typedstore/kv/bolt"
	"github.com/aalemi-dev/typedstore/kv/memory"
	"github.com/aalemi-dev/typedstore/logger"
	"github.com/aalemi-dev/typedstore/metrics"
	"github.com/aalemi-dev/typedstore/tracer"
	"github.com/aalemi-dev/typedstore/typedstore"
)

// Backend names accepted by Config.Backend.
const (
	BackendMemory = "memory"
	BackendBolt   = "bolt"
)

var (
	ErrUnknownBackend = errors.New("config: unknown backend")
	ErrMissingPath    = errors.New("config: bolt backend needs a path")
)

type Config struct {
	// Schema is the path of a registry file read by schema.LoadFile.
	// When empty the application must supply a *schema.Registry itself.
	Schema string `toml:"schema"`

	// Backend selects the kv.Store: "memory" (default) or "bolt".
	Backend string `toml:"backend"`

	Store  typedstore.Config `toml:"store"`
	Memory memory.Config     `toml:"memory"`
	Bolt   bolt.Config       `toml:"bolt"`
	Logger logger.Config     `toml:"logger"`

	Metrics *metrics.Config `toml:"metrics"`
	Tracer  *tracer.Config  `toml:"tracer"`
}

// Defaults returns an in-memory, strict, unprefixed store logging at info.
func Defaults() *Config {
	return &Config{
		Backend: BackendMemory,
		Bolt: bolt.Config{
			Bucket: bolt.DefaultBucket,
		},
		Logger: logger.Config{
			Level:       logger.Info,
			ServiceName: "typedstore",
		},
	}
}

// Load reads the TOML file at path over Defaults and validates the result.
// Unknown keys are rejected so typos do not go unnoticed.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(expandHome(path))
	if err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}
	return Parse(string(data))
}

// Parse is Load for configuration already in memory.
func Parse(data string) (*Config, error) {
	cfg := Defaults()

	md, err := toml.Decode(data, cfg)
	if err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return nil, fmt.Errorf("parsing config: unknown keys %v", undecoded)
	}

	cfg.Schema = expandHome(cfg.Schema)
	cfg.Bolt.Path = expandHome(cfg.Bolt.Path)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks that the backend section is usable.
func (c *Config) Validate() error {
	switch c.Backend {
	case "", BackendMemory:
	case BackendBolt:
		if c.Bolt.Path == "" {
			return ErrMissingPath
		}
	default:
		return fmt.Errorf("%w %q", ErrUnknownBackend, c.Backend)
	}
	return nil
}

func expandHome(path string) string {
	if strings.HasPrefix(path, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return path
		}
		return filepath.Join(home, path[2:])
	}
	return path
}
