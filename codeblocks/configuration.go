package codeblocks

import (
	"fmt"
	"maps"
	"time"

	"github.com/MKhiriev/go-codeblocks/internal/config"
)

// Configuration is the configuration code block. It carries the server,
// auth and storage settings plus free-form app settings readable with Get.
type Configuration struct {
	cfg *config.StructuredConfig
}

// LoadConfiguration reads the configuration from the environment, the
// command-line args (usually os.Args[1:]) and the JSON file named by -c,
// -config or CONFIG, on top of the defaults. Later sources win.
func LoadConfiguration(args ...string) (*Configuration, error) {
	cfg, err := config.GetStructuredConfig(args)
	if err != nil {
		return nil, fmt.Errorf("error loading configuration: %w", err)
	}
	return &Configuration{cfg: cfg}, nil
}

// NewConfiguration returns the default configuration with the given app
// settings. It reads no environment variables, flags or files.
func NewConfiguration(settings map[string]string) *Configuration {
	cfg := config.Default()
	cfg.App.Settings = maps.Clone(settings)
	return &Configuration{cfg: cfg}
}

// Get returns the app setting stored under key.
func (c *Configuration) Get(key string) (string, bool) {
	value, ok := c.cfg.App.Settings[key]
	return value, ok
}

// GetDefault returns the app setting stored under key, or def.
func (c *Configuration) GetDefault(key, def string) string {
	if value, ok := c.Get(key); ok {
		return value
	}
	return def
}

// Settings returns a copy of the app settings.
func (c *Configuration) Settings() map[string]string {
	return maps.Clone(c.cfg.App.Settings)
}

// Address returns the configured listen address in host:port form.
func (c *Configuration) Address() string {
	return c.cfg.Server.HTTPAddress
}

// RequestTimeout returns the per-request timeout. Zero means none.
func (c *Configuration) RequestTimeout() time.Duration {
	return c.cfg.Server.RequestTimeout
}

// MaxBodyBytes returns the size limit of POST and PUT request bodies.
// Zero means no limit.
func (c *Configuration) MaxBodyBytes() int64 {
	return c.cfg.Server.MaxBodyBytes
}

// Debug reports whether debug logging is enabled.
func (c *Configuration) Debug() bool {
	return c.cfg.Server.Debug
}

// DatabaseDSN returns the DSN used by the SQL backed code blocks.
func (c *Configuration) DatabaseDSN() string {
	return c.cfg.Storage.DB.DSN
}
