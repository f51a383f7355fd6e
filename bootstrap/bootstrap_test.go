package bootstrap

import (
	"context"
	stderrors "errors"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stratakit/strata/auth"
	"github.com/stratakit/strata/component"
	"github.com/stratakit/strata/config"
	"github.com/stratakit/strata/errors"
	"github.com/stratakit/strata/logger"
	"github.com/stratakit/strata/registry"
)

type recordingComponent struct {
	name    string
	events  *[]string
	healthy bool
	failure error
}

func (c *recordingComponent) Name() string { return c.name }

func (c *recordingComponent) Start(ctx context.Context) error {
	*c.events = append(*c.events, "start:"+c.name)
	return c.failure
}

func (c *recordingComponent) Stop(ctx context.Context) error {
	*c.events = append(*c.events, "stop:"+c.name)
	return nil
}

func (c *recordingComponent) Health(ctx context.Context) component.Health {
	status := component.StatusHealthy
	if !c.healthy {
		status = component.StatusUnhealthy
	}
	return component.Health{Name: c.name, Status: status}
}

func testApp(t *testing.T, opts ...Option) *App {
	t.Helper()
	cfg := &config.AppConfig{}
	opts = append([]Option{WithLogger(logger.NewDefault("test"))}, opts...)
	app, err := New(cfg, opts...)
	require.NoError(t, err)
	return app
}

func TestNewRegistersCoreSingletons(t *testing.T) {
	app := testApp(t)

	cfg, err := registry.Singleton[*config.AppConfig](app.Registry, registry.Core.Config)
	require.NoError(t, err)
	assert.Equal(t, "strata", cfg.Service.Name)

	log, err := registry.Singleton[*logger.Logger](app.Registry, registry.Core.Logger)
	require.NoError(t, err)
	assert.Same(t, app.Logger, log)

	hasher, err := registry.Singleton[auth.Hasher](app.Registry, registry.Core.PasswordHasher)
	require.NoError(t, err)
	assert.NotNil(t, hasher)

	tokens, err := registry.Singleton[*auth.TokenService](app.Registry, registry.Core.TokenService)
	require.NoError(t, err)
	assert.NotNil(t, tokens)
}

func TestNewRejectsInvalidConfig(t *testing.T) {
	cfg := &config.AppConfig{}
	cfg.Server.Port = 70000

	_, err := New(cfg, WithLogger(logger.NewDefault("test")))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "config validation")
}

func TestWithRegistryReusesInstance(t *testing.T) {
	reg := registry.New()
	require.NoError(t, reg.RegisterSingleton("custom.thing", func() (any, error) {
		return "kept", nil
	}))

	app := testApp(t, WithRegistry(reg))
	assert.Same(t, reg, app.Registry)

	v, err := app.Registry.GetSingleton("custom.thing")
	require.NoError(t, err)
	assert.Equal(t, "kept", v)
}

func TestRunTaskLifecycleOrdering(t *testing.T) {
	var events []string
	app := testApp(t, WithGracefulTimeout(time.Second))

	require.NoError(t, app.RegisterComponent(&recordingComponent{name: "a", events: &events, healthy: true}))
	require.NoError(t, app.RegisterComponent(&recordingComponent{name: "b", events: &events, healthy: true}))

	app.OnStart("hook-start", func(ctx context.Context) error {
		events = append(events, "on_start")
		return nil
	})
	app.OnReady("hook-ready", func(ctx context.Context) error {
		events = append(events, "on_ready")
		return nil
	})
	app.OnStop("hook-stop", func(ctx context.Context) error {
		events = append(events, "on_stop")
		return nil
	})

	err := app.RunTask(context.Background(), func(ctx context.Context) error {
		events = append(events, "task")
		return nil
	})
	require.NoError(t, err)

	assert.Equal(t, []string{
		"start:a", "start:b",
		"on_start", "on_ready",
		"task",
		"on_stop",
		"stop:b", "stop:a",
	}, events)
}

func TestRunTaskReturnsTaskError(t *testing.T) {
	app := testApp(t)
	taskErr := fmt.Errorf("task exploded")

	err := app.RunTask(context.Background(), func(ctx context.Context) error {
		return taskErr
	})
	assert.ErrorIs(t, err, taskErr)
}

func TestStartupHaltsOnComponentFailure(t *testing.T) {
	var events []string
	app := testApp(t)

	bootErr := fmt.Errorf("bind failed")
	require.NoError(t, app.RegisterComponent(&recordingComponent{name: "a", events: &events, healthy: true}))
	require.NoError(t, app.RegisterComponent(&recordingComponent{name: "b", events: &events, failure: bootErr}))
	require.NoError(t, app.RegisterComponent(&recordingComponent{name: "c", events: &events, healthy: true}))

	err := app.RunTask(context.Background(), func(ctx context.Context) error {
		t.Fatal("task must not run when startup fails")
		return nil
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, bootErr)
	assert.NotContains(t, events, "start:c")
}

func TestStartupFailsOnStartHookError(t *testing.T) {
	app := testApp(t)
	hookErr := fmt.Errorf("migration failed")
	app.OnStart("migrate", func(ctx context.Context) error { return hookErr })

	err := app.RunTask(context.Background(), func(ctx context.Context) error { return nil })
	require.Error(t, err)

	var he *HookError
	require.True(t, stderrors.As(err, &he))
	assert.Equal(t, "migrate", he.Hook)
	assert.ErrorIs(t, err, hookErr)
}

func TestReadyCheckReportsUnhealthy(t *testing.T) {
	var events []string
	app := testApp(t)
	require.NoError(t, app.RegisterComponent(&recordingComponent{name: "db", events: &events, healthy: false}))

	err := app.ReadyCheck(context.Background())
	require.Error(t, err)

	var appErr *errors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, errors.ErrCodeServiceUnavailable, appErr.Code)
	assert.True(t, appErr.Retryable)
	assert.Contains(t, fmt.Sprint(appErr.Details["components"]), "db")
}
