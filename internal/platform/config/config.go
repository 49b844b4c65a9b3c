// Package config provides configuration loading and validation for the service.
// Configuration is loaded from YAML files with environment variable overrides
// using a layered system: defaults -> base.yaml -> {profile}.yaml -> env vars.
package config

import "time"

// Config holds all configuration for the service.
type Config struct {
	Server    ServerConfig    `koanf:"server"`
	Log       LogConfig       `koanf:"log"`
	Client    ClientConfig    `koanf:"client"`
	Telemetry TelemetryConfig `koanf:"telemetry"`
	Admin     AdminConfig     `koanf:"admin"`
	Storage   StorageConfig   `koanf:"storage"`
	Session   SessionConfig   `koanf:"session"`
	Security  SecurityConfig  `koanf:"security"`
	I18n      I18nConfig      `koanf:"i18n"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Host         string        `koanf:"host"`
	Port         int           `koanf:"port"`
	ReadTimeout  time.Duration `koanf:"read_timeout"`
	WriteTimeout time.Duration `koanf:"write_timeout"`
	IdleTimeout  time.Duration `koanf:"idle_timeout"`
}

// LogConfig holds structured logging settings.
type LogConfig struct {
	Level  string `koanf:"level"`
	Format string `koanf:"format"`
}

// ClientConfig holds settings of the remote article backend client.
type ClientConfig struct {
	BaseURL        string               `koanf:"base_url"`
	Timeout        time.Duration        `koanf:"timeout"`
	Retry          RetryConfig          `koanf:"retry"`
	CircuitBreaker CircuitBreakerConfig `koanf:"circuit_breaker"`
	RateLimit      RateLimitConfig      `koanf:"rate_limit"`
}

// RetryConfig holds retry policy settings with exponential backoff.
type RetryConfig struct {
	MaxAttempts     int           `koanf:"max_attempts"`
	InitialInterval time.Duration `koanf:"initial_interval"`
	MaxInterval     time.Duration `koanf:"max_interval"`
	Multiplier      float64       `koanf:"multiplier"`
}

// CircuitBreakerConfig holds circuit breaker settings.
type CircuitBreakerConfig struct {
	MaxFailures   int           `koanf:"max_failures"`
	Timeout       time.Duration `koanf:"timeout"`
	HalfOpenLimit int           `koanf:"half_open_limit"`
}

// RateLimitConfig holds outbound rate limiting settings. A zero
// RequestsPerSecond disables the limiter.
type RateLimitConfig struct {
	RequestsPerSecond float64 `koanf:"requests_per_second"`
	BurstSize         int     `koanf:"burst_size"`
}

// TelemetryConfig holds OpenTelemetry settings.
type TelemetryConfig struct {
	Enabled     bool   `koanf:"enabled"`
	Exporter    string `koanf:"exporter"`
	Endpoint    string `koanf:"endpoint"`
	ServiceName string `koanf:"service_name"`
}

// AdminConfig describes the managed article resource.
type AdminConfig struct {
	// Debug propagates recoverable persistence failures instead of turning
	// them into feedback.
	Debug           bool     `koanf:"debug"`
	BasePath        string   `koanf:"base_path"`
	PerPage         int      `koanf:"per_page"`
	PersistFilters  bool     `koanf:"persist_filters"`
	SupportsPreview bool     `koanf:"supports_preview"`
	ACLEnabled      bool     `koanf:"acl_enabled"`
	ExportFormats   []string `koanf:"export_formats"`
	// Roles maps a role to the actions it grants.
	Roles map[string][]string `koanf:"roles"`
}

// StorageConfig selects the persistence backend.
type StorageConfig struct {
	// Driver is "sqlite" or "remote". The remote driver talks to the article
	// backend configured under client.
	Driver string `koanf:"driver"`
	DSN    string `koanf:"dsn"`
}

// SessionConfig holds session and feedback store settings.
type SessionConfig struct {
	Store         string        `koanf:"store"`
	CookieName    string        `koanf:"cookie_name"`
	CookieSecure  bool          `koanf:"cookie_secure"`
	TTL           time.Duration `koanf:"ttl"`
	RedisAddr     string        `koanf:"redis_addr"`
	RedisPassword string        `koanf:"redis_password"`
	RedisDB       int           `koanf:"redis_db"`
}

// SecurityConfig holds CSRF token settings.
type SecurityConfig struct {
	CsrfSecret string        `koanf:"csrf_secret"`
	CsrfTTL    time.Duration `koanf:"csrf_ttl"`
}

// I18nConfig holds translation catalog settings.
type I18nConfig struct {
	DefaultLocale string   `koanf:"default_locale"`
	Locales       []string `koanf:"locales"`
	CatalogDir    string   `koanf:"catalog_dir"`
}
