package config

import (
	"testing"
	"time"
)

var envKeys = []string{"PORT", "LISTEN_ADDR", "GIN_MODE", "LOG_LEVEL", "LOG_FORMAT", "SHUTDOWN_TIMEOUT_SECONDS"}

func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range envKeys {
		t.Setenv(key, "")
	}
}

func TestLoadDefaults(t *testing.T) {
	clearEnv(t)

	cfg := Load()
	if cfg.Port != "3000" {
		t.Fatalf("expected default port 3000, got %q", cfg.Port)
	}
	if cfg.ListenAddr != ":3000" {
		t.Fatalf("expected listen addr :3000, got %q", cfg.ListenAddr)
	}
	if cfg.GinMode != "release" {
		t.Fatalf("expected release mode, got %q", cfg.GinMode)
	}
	if cfg.LogLevel != "info" || cfg.LogFormat != "text" {
		t.Fatalf("unexpected log defaults: level=%q format=%q", cfg.LogLevel, cfg.LogFormat)
	}
	if cfg.ShutdownTimeout != 10*time.Second {
		t.Fatalf("expected 10s shutdown timeout, got %s", cfg.ShutdownTimeout)
	}
}

func TestLoadOverrides(t *testing.T) {
	clearEnv(t)
	t.Setenv("PORT", " 8090 ")
	t.Setenv("GIN_MODE", "DEBUG")
	t.Setenv("LOG_LEVEL", "warn")
	t.Setenv("LOG_FORMAT", "json")
	t.Setenv("SHUTDOWN_TIMEOUT_SECONDS", "3")

	cfg := Load()
	if cfg.ListenAddr != ":8090" {
		t.Fatalf("expected listen addr derived from port, got %q", cfg.ListenAddr)
	}
	if cfg.GinMode != "debug" {
		t.Fatalf("expected debug mode, got %q", cfg.GinMode)
	}
	if cfg.LogLevel != "warn" || cfg.LogFormat != "json" {
		t.Fatalf("unexpected log config: level=%q format=%q", cfg.LogLevel, cfg.LogFormat)
	}
	if cfg.ShutdownTimeout != 3*time.Second {
		t.Fatalf("expected 3s shutdown timeout, got %s", cfg.ShutdownTimeout)
	}

	t.Setenv("LISTEN_ADDR", "127.0.0.1:9000")
	if got := Load().ListenAddr; got != "127.0.0.1:9000" {
		t.Fatalf("expected explicit listen addr, got %q", got)
	}
}

func TestLoadInvalidValuesFallBack(t *testing.T) {
	tests := []struct {
		name  string
		key   string
		value string
		check func(AppConfig) bool
	}{
		{name: "gin mode", key: "GIN_MODE", value: "verbose", check: func(c AppConfig) bool { return c.GinMode == "release" }},
		{name: "log level", key: "LOG_LEVEL", value: "trace", check: func(c AppConfig) bool { return c.LogLevel == "info" }},
		{name: "log format", key: "LOG_FORMAT", value: "xml", check: func(c AppConfig) bool { return c.LogFormat == "text" }},
		{name: "timeout not a number", key: "SHUTDOWN_TIMEOUT_SECONDS", value: "soon", check: func(c AppConfig) bool { return c.ShutdownTimeout == 10*time.Second }},
		{name: "timeout negative", key: "SHUTDOWN_TIMEOUT_SECONDS", value: "-5", check: func(c AppConfig) bool { return c.ShutdownTimeout == 10*time.Second }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clearEnv(t)
			t.Setenv(tt.key, tt.value)
			if cfg := Load(); !tt.check(cfg) {
				t.Fatalf("%s=%q did not fall back to default: %+v", tt.key, tt.value, cfg)
			}
		})
	}
}
