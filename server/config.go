package server

import (
	"fmt"

	"github.com/stratakit/strata/server/middleware"
)

// Config holds the HTTP listener settings. Timeouts are plain seconds so
// YAML and environment values stay simple integers.
type Config struct {
	// Host is the bind address; empty binds all interfaces.
	Host string `yaml:"host" mapstructure:"host"`
	// Port is the listen port.
	Port int `yaml:"port" mapstructure:"port"`
	// ReadTimeout bounds reading the full request, in seconds.
	ReadTimeout int `yaml:"read_timeout" mapstructure:"read_timeout"`
	// WriteTimeout bounds writing the response, in seconds.
	WriteTimeout int `yaml:"write_timeout" mapstructure:"write_timeout"`
	// IdleTimeout bounds idle keep-alive connections, in seconds.
	IdleTimeout int `yaml:"idle_timeout" mapstructure:"idle_timeout"`
	// CORS configures the cross-origin middleware.
	CORS middleware.CORSConfig `yaml:"cors" mapstructure:"cors"`
}

// ApplyDefaults sets sensible defaults for zero-valued fields.
func (c *Config) ApplyDefaults() {
	if c.Port == 0 {
		c.Port = 8080
	}
	if c.ReadTimeout == 0 {
		c.ReadTimeout = 15
	}
	if c.WriteTimeout == 0 {
		c.WriteTimeout = 15
	}
	if c.IdleTimeout == 0 {
		c.IdleTimeout = 60
	}
	c.CORS.ApplyDefaults()
}

// Validate checks the configuration.
func (c *Config) Validate() error {
	if c.Port < 0 || c.Port > 65535 {
		return fmt.Errorf("server.port must be between 0 and 65535 (got: %d)", c.Port)
	}
	timeouts := []struct {
		name  string
		value int
	}{
		{"server.read_timeout", c.ReadTimeout},
		{"server.write_timeout", c.WriteTimeout},
		{"server.idle_timeout", c.IdleTimeout},
	}
	for _, t := range timeouts {
		if t.value < 0 {
			return fmt.Errorf("%s must be non-negative (got: %d)", t.name, t.value)
		}
	}
	return nil
}
