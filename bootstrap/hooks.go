package bootstrap

import "context"

// Hook is a named lifecycle callback.
type Hook struct {
	Name string
	Fn   func(ctx context.Context) error
}

// OnStart registers a hook that runs after components start, before the
// readiness check.
func (a *App) OnStart(name string, fn func(ctx context.Context) error) {
	a.onStart = append(a.onStart, Hook{Name: name, Fn: fn})
}

// OnReady registers a hook that runs once the readiness check passes.
func (a *App) OnReady(name string, fn func(ctx context.Context) error) {
	a.onReady = append(a.onReady, Hook{Name: name, Fn: fn})
}

// OnStop registers a hook that runs at the start of shutdown, before
// components stop.
func (a *App) OnStop(name string, fn func(ctx context.Context) error) {
	a.onStop = append(a.onStop, Hook{Name: name, Fn: fn})
}

func runHooks(ctx context.Context, hooks []Hook) error {
	for _, h := range hooks {
		if err := h.Fn(ctx); err != nil {
			return &HookError{Hook: h.Name, Err: err}
		}
	}
	return nil
}

// HookError reports which lifecycle hook failed.
type HookError struct {
	Hook string
	Err  error
}

func (e *HookError) Error() string { return "hook " + e.Hook + ": " + e.Err.Error() }

func (e *HookError) Unwrap() error { return e.Err }
