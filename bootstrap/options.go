package bootstrap

import (
	"time"

	"github.com/stratakit/strata/logger"
	"github.com/stratakit/strata/registry"
)

// Option customizes App construction.
type Option func(*options)

type options struct {
	logger          *logger.Logger
	registry        *registry.Registry
	gracefulTimeout *time.Duration
}

func resolveOptions(opts []Option) options {
	var o options
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// WithLogger supplies a preconfigured logger instead of building one from
// the logging config. Used by tests to keep output quiet.
func WithLogger(l *logger.Logger) Option {
	return func(o *options) { o.logger = l }
}

// WithRegistry supplies an existing dependency registry. Core singletons are
// still registered into it, replacing any prior entries under the same keys.
func WithRegistry(r *registry.Registry) Option {
	return func(o *options) { o.registry = r }
}

// WithGracefulTimeout overrides the shutdown deadline (default 15s).
func WithGracefulTimeout(d time.Duration) Option {
	return func(o *options) { o.gracefulTimeout = &d }
}
