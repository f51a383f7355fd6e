// Package config loads strata service configuration from YAML files, .env
// files, and environment variables (in increasing precedence), backed by
// viper and godotenv. AppConfig aggregates the per-package config sections
// and applies their defaults and validation in one place.
package config
