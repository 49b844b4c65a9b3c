package config_test

import (
	"strings"
	"testing"
	"time"

	"github.com/jsamuelsen11/go-admin-workflow/internal/platform/config"
)

func TestValidate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		mutate  func(*config.Config)
		wantKey string
	}{
		{name: "port zero", mutate: func(c *config.Config) { c.Server.Port = 0 }, wantKey: "server.port"},
		{name: "unknown log level", mutate: func(c *config.Config) { c.Log.Level = "verbose" }, wantKey: "log.level"},
		{name: "unknown log format", mutate: func(c *config.Config) { c.Log.Format = "logfmt" }, wantKey: "log.format"},
		{name: "otlp without endpoint", mutate: func(c *config.Config) {
			c.Telemetry = config.TelemetryConfig{Enabled: true, Exporter: "otlp"}
		}, wantKey: "telemetry.endpoint"},
		{name: "redis without address", mutate: func(c *config.Config) { c.Session.Store = "redis" }, wantKey: "session.redis_addr"},
		{name: "unknown session store", mutate: func(c *config.Config) { c.Session.Store = "cookie" }, wantKey: "session.store"},
		{name: "short csrf secret", mutate: func(c *config.Config) { c.Security.CsrfSecret = "short" }, wantKey: "security.csrf_secret"},
		{name: "unknown export format", mutate: func(c *config.Config) { c.Admin.ExportFormats = []string{"xls"} }, wantKey: "admin.export_formats"},
		{name: "relative base path", mutate: func(c *config.Config) { c.Admin.BasePath = "admin" }, wantKey: "admin.base_path"},
		{name: "unknown storage driver", mutate: func(c *config.Config) { c.Storage.Driver = "postgres" }, wantKey: "storage.driver"},
		{name: "sqlite without dsn", mutate: func(c *config.Config) { c.Storage.DSN = "" }, wantKey: "storage.dsn"},
		{name: "default locale not listed", mutate: func(c *config.Config) { c.I18n.DefaultLocale = "de" }, wantKey: "i18n.locales"},
		{name: "rate limit without burst", mutate: func(c *config.Config) {
			c.Client.RateLimit = config.RateLimitConfig{RequestsPerSecond: 10}
		}, wantKey: "client.rate_limit.burst_size"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			cfg := validBaseConfig()
			tt.mutate(cfg)

			err := cfg.Validate()
			if err == nil {
				t.Fatal("Validate() returned nil, want error")
			}
			if !strings.Contains(err.Error(), tt.wantKey) {
				t.Errorf("Validate() = %q, want it to name %s", err, tt.wantKey)
			}
		})
	}
}

func TestValidate_ReportsEveryViolation(t *testing.T) {
	t.Parallel()

	cfg := validBaseConfig()
	cfg.Server.Port = 70000
	cfg.Session.TTL = 0
	cfg.Security.CsrfTTL = -time.Minute

	err := cfg.Validate()
	if err == nil {
		t.Fatal("Validate() returned nil, want error")
	}
	for _, key := range []string{"server.port", "session.ttl", "security.csrf_ttl"} {
		if !strings.Contains(err.Error(), key) {
			t.Errorf("Validate() = %q, missing %s", err, key)
		}
	}
}

func TestValidate_ValidConfig(t *testing.T) {
	t.Parallel()

	if err := validBaseConfig().Validate(); err != nil {
		t.Fatalf("Validate() returned error for valid config: %v", err)
	}
}

// validBaseConfig returns a Config with all fields set to valid values.
func validBaseConfig() *config.Config {
	return &config.Config{
		Server: config.ServerConfig{
			Host:         "0.0.0.0",
			Port:         8080,
			ReadTimeout:  5 * time.Second,
			WriteTimeout: 10 * time.Second,
			IdleTimeout:  120 * time.Second,
		},
		Log: config.LogConfig{
			Level:  "info",
			Format: "json",
		},
		Client: config.ClientConfig{
			BaseURL: "http://localhost:8081",
			Timeout: 30 * time.Second,
			Retry: config.RetryConfig{
				MaxAttempts:     3,
				InitialInterval: 100 * time.Millisecond,
				MaxInterval:     10 * time.Second,
				Multiplier:      2.0,
			},
			CircuitBreaker: config.CircuitBreakerConfig{
				MaxFailures:   5,
				Timeout:       30 * time.Second,
				HalfOpenLimit: 1,
			},
		},
		Telemetry: config.TelemetryConfig{
			Enabled:  false,
			Exporter: "stdout",
		},
		Admin: config.AdminConfig{
			BasePath:      "/admin",
			PerPage:       32,
			ExportFormats: []string{"csv", "json"},
		},
		Storage: config.StorageConfig{
			Driver: "sqlite",
			DSN:    "file::memory:",
		},
		Session: config.SessionConfig{
			Store:      "memory",
			CookieName: "admin_session",
			TTL:        time.Hour,
		},
		Security: config.SecurityConfig{
			CsrfSecret: "0123456789abcdef0123456789abcdef",
			CsrfTTL:    time.Hour,
		},
		I18n: config.I18nConfig{
			DefaultLocale: "en",
			Locales:       []string{"en"},
		},
	}
}
