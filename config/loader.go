package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// LoaderOption customizes Load behavior.
type LoaderOption func(*loaderOptions)

type loaderOptions struct {
	configFile string
	envFile    string
}

// WithConfigFile sets an explicit config file path instead of searching.
func WithConfigFile(path string) LoaderOption {
	return func(o *loaderOptions) { o.configFile = path }
}

// WithEnvFile sets an explicit .env file path instead of searching.
func WithEnvFile(path string) LoaderOption {
	return func(o *loaderOptions) { o.envFile = path }
}

// configSearchPaths are the locations checked, in order, when no explicit
// config file is given.
var configSearchPaths = []string{
	"./config.yml",
	"./config/config.yml",
	"./cmd/strata/config.yml",
}

// envSearchPaths are the locations checked for a .env file.
var envSearchPaths = []string{
	"./.env",
	"./config/.env",
}

// Load reads configuration into cfg from, in increasing precedence:
// a YAML config file, a .env file, and process environment variables.
// Missing files are not an error; environment-only configuration works.
func Load(cfg any, opts ...LoaderOption) error {
	var o loaderOptions
	for _, opt := range opts {
		opt(&o)
	}

	configFile := o.configFile
	if configFile == "" {
		configFile = firstExisting(configSearchPaths)
	}
	envFile := o.envFile
	if envFile == "" {
		envFile = firstExisting(envSearchPaths)
	}

	// .env first so viper's env lookup sees its variables.
	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil {
			return fmt.Errorf("config: loading env file %s: %w", envFile, err)
		}
	}

	v := viper.New()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if configFile != "" {
		v.SetConfigFile(configFile)
		if err := v.ReadInConfig(); err != nil {
			return fmt.Errorf("config: reading %s: %w", configFile, err)
		}
	}

	bindEnvOverrides(v)

	if err := v.Unmarshal(cfg); err != nil {
		return fmt.Errorf("config: unmarshal: %w", err)
	}
	return nil
}

// bindEnvOverrides makes every UPPER_SNAKE environment variable visible to
// Unmarshal under each dotted key shape it may address. AutomaticEnv alone
// only covers keys viper already knows about, so env-only configuration
// needs the explicit Set calls.
func bindEnvOverrides(v *viper.Viper) {
	for _, env := range os.Environ() {
		pair := strings.SplitN(env, "=", 2)
		if len(pair) != 2 || pair[0] == "" {
			continue
		}
		for _, key := range envKeyVariants(pair[0]) {
			v.Set(key, pair[1])
		}
	}
}

// envKeyVariants expands a variable name into the candidate config keys,
// splitting on underscores at every position. The underscore split is
// ambiguous for multi-word leaves: AUTH_JWT_SECRET must bind
// auth.jwt_secret, not just auth.jwt.secret.
//
//	SERVER_PORT            -> [server_port, server.port]
//	AUTH_TOKEN_TTL_MINUTES -> [auth_token_ttl_minutes, auth.token_ttl_minutes,
//	                           auth.token.ttl_minutes, auth.token.ttl.minutes]
func envKeyVariants(name string) []string {
	lower := strings.ToLower(name)
	parts := strings.Split(lower, "_")
	if len(parts) <= 1 {
		return []string{lower}
	}

	variants := []string{lower}
	for i := 1; i < len(parts); i++ {
		variants = append(variants, strings.Join(parts[:i], ".")+"."+strings.Join(parts[i:], "_"))
	}
	return variants
}

func firstExisting(paths []string) string {
	for _, p := range paths {
		if _, err := os.Stat(p); err == nil {
			return p
		}
	}
	return ""
}
