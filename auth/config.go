package auth

import (
	"fmt"
	"time"
)

// Config configures token issuance and password hashing.
type Config struct {
	// JWTSecret is the HMAC signing secret. Required when auth is enabled.
	JWTSecret string `yaml:"jwt_secret" mapstructure:"jwt_secret"`
	// Issuer is the iss claim stamped on issued tokens.
	Issuer string `yaml:"issuer" mapstructure:"issuer"`
	// TokenTTLMinutes is the token lifetime in minutes.
	TokenTTLMinutes int `yaml:"token_ttl_minutes" mapstructure:"token_ttl_minutes"`
	// BcryptCost is the bcrypt cost parameter (range 4-31).
	BcryptCost int `yaml:"bcrypt_cost" mapstructure:"bcrypt_cost"`
	// Enabled toggles the auth middleware on protected routes.
	Enabled bool `yaml:"enabled" mapstructure:"enabled"`
}

// ApplyDefaults sets sensible defaults for zero-valued fields.
func (c *Config) ApplyDefaults() {
	if c.Issuer == "" {
		c.Issuer = "strata"
	}
	if c.TokenTTLMinutes == 0 {
		c.TokenTTLMinutes = 60
	}
	if c.BcryptCost == 0 {
		c.BcryptCost = 12
	}
}

// Validate checks the configuration.
func (c *Config) Validate() error {
	if c.Enabled && c.JWTSecret == "" {
		return fmt.Errorf("auth.jwt_secret is required when auth is enabled")
	}
	if c.BcryptCost < 4 || c.BcryptCost > 31 {
		return fmt.Errorf("auth.bcrypt_cost must be between 4 and 31 (got: %d)", c.BcryptCost)
	}
	if c.TokenTTLMinutes < 1 {
		return fmt.Errorf("auth.token_ttl_minutes must be positive (got: %d)", c.TokenTTLMinutes)
	}
	return nil
}

// TokenTTL returns the configured token lifetime as a duration.
func (c *Config) TokenTTL() time.Duration {
	return time.Duration(c.TokenTTLMinutes) * time.Minute
}
