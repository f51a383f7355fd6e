package bootstrap

import (
	"context"
	"fmt"
	"os/signal"
	"syscall"
	"time"

	"github.com/stratakit/strata/auth"
	"github.com/stratakit/strata/component"
	"github.com/stratakit/strata/config"
	"github.com/stratakit/strata/errors"
	"github.com/stratakit/strata/logger"
	"github.com/stratakit/strata/observability"
	"github.com/stratakit/strata/registry"
)

// App assembles a strata service: it owns the dependency registry used for
// construction-time wiring, the component registry driving runtime
// lifecycle, and the lifecycle hooks. The dependency registry is an explicit
// instance passed down from here; there is no process-global registry, so
// tests build their own App (or Registry) without cross-test leakage.
type App struct {
	Name       string
	Version    string
	Cfg        *config.AppConfig
	Registry   *registry.Registry
	Components *component.Registry
	Logger     *logger.Logger

	gracefulTimeout time.Duration
	onStart         []Hook
	onReady         []Hook
	onStop          []Hook

	// telemetry shutdown functions, run after components stop.
	telemetryShutdown []func(context.Context) error
}

// New creates an application from config. It applies defaults, validates,
// initializes the logger, and registers the core singletons (config, logger,
// token service, password hasher) in the dependency registry.
func New(cfg *config.AppConfig, opts ...Option) (*App, error) {
	cfg.ApplyDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config validation: %w", err)
	}

	app := &App{
		Name:            cfg.Service.Name,
		Version:         cfg.Service.Version,
		Cfg:             cfg,
		Registry:        registry.New(),
		Components:      component.NewRegistry(),
		gracefulTimeout: 15 * time.Second,
	}

	o := resolveOptions(opts)
	if o.registry != nil {
		app.Registry = o.registry
	}
	if o.gracefulTimeout != nil {
		app.gracefulTimeout = *o.gracefulTimeout
	}

	if o.logger != nil {
		app.Logger = o.logger
	} else {
		logger.Init(cfg.Logging)
		app.Logger = logger.New(&cfg.Logging, cfg.Service.Name)
		logger.SetGlobalLogger(app.Logger)
	}

	if err := app.registerCore(); err != nil {
		return nil, err
	}
	return app, nil
}

// registerCore wires the infrastructure singletons every resource layer may
// resolve. Resource wiring (repository -> service -> handler) happens in the
// per-resource Register functions.
func (a *App) registerCore() error {
	cfg := a.Cfg
	log := a.Logger

	if err := a.Registry.RegisterSingleton(registry.Core.Config, func() (any, error) {
		return cfg, nil
	}); err != nil {
		return err
	}
	if err := a.Registry.RegisterSingleton(registry.Core.Logger, func() (any, error) {
		return log, nil
	}); err != nil {
		return err
	}
	if err := a.Registry.RegisterSingleton(registry.Core.PasswordHasher, func() (any, error) {
		return auth.NewBcryptHasher(cfg.Auth.BcryptCost), nil
	}); err != nil {
		return err
	}
	return a.Registry.RegisterSingleton(registry.Core.TokenService, func() (any, error) {
		return auth.NewTokenService(cfg.Auth), nil
	})
}

// RegisterComponent adds a lifecycle component to the application.
func (a *App) RegisterComponent(c component.Component) error {
	return a.Components.Register(c)
}

// ReadyCheck verifies that all registered components are healthy. Failure
// is reported as a retryable service-unavailable error carrying the
// offending components.
func (a *App) ReadyCheck(ctx context.Context) error {
	results := a.Components.HealthAll(ctx)
	var unhealthy []string
	for _, h := range results {
		if h.Status != component.StatusHealthy {
			detail := h.Name + "=" + string(h.Status)
			if h.Message != "" {
				detail += "(" + h.Message + ")"
			}
			unhealthy = append(unhealthy, detail)
		}
	}
	if len(unhealthy) > 0 {
		return errors.Unavailable("application").WithDetail("components", unhealthy)
	}
	return nil
}

// Run executes the full lifecycle for long-running services: telemetry and
// component startup, hooks, block on SIGINT/SIGTERM, graceful shutdown.
func (a *App) Run(ctx context.Context) error {
	if err := a.startup(ctx); err != nil {
		return err
	}

	a.Logger.Info("Application ready", logger.Fields("service", a.Name, "version", a.Version))

	signalCtx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	<-signalCtx.Done()
	stop()

	return a.shutdown(context.Background())
}

// RunTask executes a finite task with the full lifecycle. Unlike Run it does
// not block on signals: it runs the task and shuts down when it returns.
func (a *App) RunTask(ctx context.Context, task func(ctx context.Context) error) error {
	if err := a.startup(ctx); err != nil {
		return err
	}

	taskErr := task(ctx)

	if err := a.shutdown(context.Background()); err != nil {
		if taskErr == nil {
			return err
		}
		a.Logger.Error("Shutdown error after task failure", logger.ErrorFields("shutdown", err))
	}
	return taskErr
}

func (a *App) startup(ctx context.Context) error {
	if a.Cfg.Observability.Enabled {
		if err := a.initTelemetry(ctx); err != nil {
			return err
		}
	}

	err := a.Components.StartAll(ctx)
	if err == nil {
		if err = runHooks(ctx, a.onStart); err == nil {
			if err = a.ReadyCheck(ctx); err == nil {
				return runHooks(ctx, a.onReady)
			}
		}
	}

	// roll back components that already started
	if stopErr := a.Components.StopAll(context.Background()); stopErr != nil {
		a.Logger.Error("Rollback after failed startup", logger.ErrorFields("stop_all", stopErr))
	}
	return err
}

func (a *App) initTelemetry(ctx context.Context) error {
	svc := a.Cfg.Service

	tp, err := observability.InitTracer(ctx, a.Cfg.Observability, svc.Name, svc.Version, svc.Environment)
	if err != nil {
		return fmt.Errorf("init tracer: %w", err)
	}
	a.telemetryShutdown = append(a.telemetryShutdown, tp.Shutdown)

	mp, err := observability.InitMeter(ctx, a.Cfg.Observability, svc.Name, svc.Version, svc.Environment)
	if err != nil {
		return fmt.Errorf("init meter: %w", err)
	}
	a.telemetryShutdown = append(a.telemetryShutdown, mp.Shutdown)
	return nil
}

func (a *App) shutdown(ctx context.Context) error {
	shutdownCtx, cancel := context.WithTimeout(ctx, a.gracefulTimeout)
	defer cancel()

	var firstErr error
	if err := runHooks(shutdownCtx, a.onStop); err != nil {
		firstErr = err
	}
	if err := a.Components.StopAll(shutdownCtx); err != nil && firstErr == nil {
		firstErr = err
	}
	for _, fn := range a.telemetryShutdown {
		if err := fn(shutdownCtx); err != nil && firstErr == nil {
			firstErr = err
		}
	}

	a.Logger.Info("Application stopped", logger.Fields("service", a.Name))
	return firstErr
}
