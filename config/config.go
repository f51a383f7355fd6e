package config

import (
	"fmt"

	"github.com/stratakit/strata/auth"
	"github.com/stratakit/strata/logger"
	"github.com/stratakit/strata/observability"
	"github.com/stratakit/strata/server"
)

// ServiceInfo identifies the running service.
type ServiceInfo struct {
	Name        string `yaml:"name" mapstructure:"name"`
	Version     string `yaml:"version" mapstructure:"version"`
	Environment string `yaml:"environment" mapstructure:"environment"`
}

// ApplyDefaults sets sensible default values for unset fields.
func (s *ServiceInfo) ApplyDefaults() {
	if s.Name == "" {
		s.Name = "strata"
	}
	if s.Version == "" {
		s.Version = "dev"
	}
	if s.Environment == "" {
		s.Environment = "development"
	}
}

// AppConfig aggregates all configuration sections for a strata service.
type AppConfig struct {
	Service       ServiceInfo          `yaml:"service" mapstructure:"service"`
	Server        server.Config        `yaml:"server" mapstructure:"server"`
	Logging       logger.Config        `yaml:"logging" mapstructure:"logging"`
	Auth          auth.Config          `yaml:"auth" mapstructure:"auth"`
	Observability observability.Config `yaml:"observability" mapstructure:"observability"`
}

// ApplyDefaults applies defaults to every section.
func (c *AppConfig) ApplyDefaults() {
	c.Service.ApplyDefaults()
	c.Server.ApplyDefaults()
	c.Logging.ApplyDefaults()
	c.Auth.ApplyDefaults()
	c.Observability.ApplyDefaults()
}

// Validate checks every section for invalid values.
func (c *AppConfig) Validate() error {
	if err := c.Server.Validate(); err != nil {
		return fmt.Errorf("server: %w", err)
	}
	if err := c.Logging.Validate(); err != nil {
		return fmt.Errorf("logging: %w", err)
	}
	if err := c.Auth.Validate(); err != nil {
		return fmt.Errorf("auth: %w", err)
	}
	return nil
}
