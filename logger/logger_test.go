package logger

import (
	"testing"
)

func TestConfigApplyDefaults(t *testing.T) {
	cfg := Config{}
	cfg.ApplyDefaults()

	if cfg.Level != "info" {
		t.Errorf("expected 'info', got %q", cfg.Level)
	}
	if cfg.Format != "console" {
		t.Errorf("expected 'console', got %q", cfg.Format)
	}
	if cfg.Output != "stdout" {
		t.Errorf("expected 'stdout', got %q", cfg.Output)
	}
	if !cfg.Timestamp {
		t.Error("expected timestamp enabled by default")
	}
}

func TestConfigValidate(t *testing.T) {
	cfg := Config{Level: "info", Format: "json"}
	if err := cfg.Validate(); err != nil {
		t.Errorf("expected valid config, got %v", err)
	}

	cfg = Config{Level: "verbose", Format: "json"}
	if err := cfg.Validate(); err == nil {
		t.Error("expected error for invalid level")
	}

	cfg = Config{Level: "info", Format: "xml"}
	if err := cfg.Validate(); err == nil {
		t.Error("expected error for invalid format")
	}
}

func TestNewDefault(t *testing.T) {
	l := NewDefault("test-service")
	if l == nil {
		t.Fatal("expected non-nil logger")
	}
	if l.service != "test-service" {
		t.Errorf("expected service name retained, got %q", l.service)
	}
}

func TestWithComponent(t *testing.T) {
	l := NewDefault("svc")
	tagged := l.WithComponent("registry")
	if tagged == nil {
		t.Fatal("expected non-nil logger")
	}
	if tagged == l {
		t.Error("expected a new logger instance")
	}
}

func TestFields(t *testing.T) {
	m := Fields("op", "create", "count", 3)
	if m["op"] != "create" {
		t.Errorf("expected 'create', got %v", m["op"])
	}
	if m["count"] != 3 {
		t.Errorf("expected 3, got %v", m["count"])
	}
}

func TestFieldsOddArgs(t *testing.T) {
	m := Fields("op", "create", "dangling")
	if len(m) != 1 {
		t.Errorf("expected dangling key ignored, got %v", m)
	}
}

func TestGlobalLogger(t *testing.T) {
	SetGlobalLogger(nil)
	l := GetGlobalLogger()
	if l == nil {
		t.Fatal("expected lazily-created global logger")
	}
	if GetGlobalLogger() != l {
		t.Error("expected the same global instance")
	}
}
