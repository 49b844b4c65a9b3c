package config

import (
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/jsamuelsen11/go-admin-workflow/internal/platform/logging"
)

const minCsrfSecretLen = 32

// Validate reports every invalid setting at once, one joined error per line.
func (c *Config) Validate() error {
	var v violations
	c.Server.check(&v)
	c.Log.check(&v)
	c.Client.check(&v)
	c.Telemetry.check(&v)
	c.Admin.check(&v)
	c.Storage.check(&v)
	c.Session.check(&v)
	c.Security.check(&v)
	c.I18n.check(&v)
	return errors.Join(v...)
}

// violations accumulates failed checks, each naming the offending key.
type violations []error

func (v *violations) require(ok bool, format string, args ...any) {
	if !ok {
		*v = append(*v, fmt.Errorf(format, args...))
	}
}

func (v *violations) oneOf(key, got string, allowed ...string) {
	v.require(slices.Contains(allowed, got), "%s must be one of: %s; got %q", key, strings.Join(allowed, ", "), got)
}

func (s *ServerConfig) check(v *violations) {
	v.require(s.Port >= 1 && s.Port <= 65535, "server.port must be between 1 and 65535, got %d", s.Port)
	v.require(s.ReadTimeout > 0, "server.read_timeout must be positive")
	v.require(s.WriteTimeout > 0, "server.write_timeout must be positive")
}

func (l *LogConfig) check(v *violations) {
	_, ok := logging.ParseLevel(l.Level)
	v.require(ok, "log.level must be one of: debug, info, warn, error; got %q", l.Level)
	v.oneOf("log.format", l.Format, "json", "text")
}

func (cl *ClientConfig) check(v *violations) {
	v.require(cl.BaseURL != "", "client.base_url must not be empty")
	v.require(cl.Timeout > 0, "client.timeout must be positive")
	v.require(cl.Retry.MaxAttempts >= 1, "client.retry.max_attempts must be >= 1, got %d", cl.Retry.MaxAttempts)
	v.require(cl.Retry.Multiplier > 0, "client.retry.multiplier must be positive, got %g", cl.Retry.Multiplier)
	v.require(cl.CircuitBreaker.MaxFailures >= 1,
		"client.circuit_breaker.max_failures must be >= 1, got %d", cl.CircuitBreaker.MaxFailures)

	rl := cl.RateLimit
	v.require(rl.RequestsPerSecond >= 0,
		"client.rate_limit.requests_per_second must not be negative, got %g", rl.RequestsPerSecond)
	v.require(rl.RequestsPerSecond == 0 || rl.BurstSize >= 1,
		"client.rate_limit.burst_size must be >= 1 when limiting, got %d", rl.BurstSize)
}

func (t *TelemetryConfig) check(v *violations) {
	if !t.Enabled {
		return
	}
	v.oneOf("telemetry.exporter", t.Exporter, "stdout", "otlp")
	v.require(t.Exporter != "otlp" || t.Endpoint != "", "telemetry.endpoint must not be empty when exporter is otlp")
}

func (a *AdminConfig) check(v *violations) {
	v.require(strings.HasPrefix(a.BasePath, "/"), "admin.base_path must start with /, got %q", a.BasePath)
	v.require(a.PerPage >= 1, "admin.per_page must be >= 1, got %d", a.PerPage)
	for _, f := range a.ExportFormats {
		v.oneOf("admin.export_formats entry", f, "csv", "json", "xml")
	}
}

func (s *StorageConfig) check(v *violations) {
	v.oneOf("storage.driver", s.Driver, "sqlite", "remote")
	// The remote driver is configured by the client section.
	v.require(s.Driver != "sqlite" || s.DSN != "", "storage.dsn must not be empty when driver is sqlite")
}

func (s *SessionConfig) check(v *violations) {
	v.oneOf("session.store", s.Store, "memory", "redis")
	v.require(s.Store != "redis" || s.RedisAddr != "", "session.redis_addr must not be empty when store is redis")
	v.require(s.CookieName != "", "session.cookie_name must not be empty")
	v.require(s.TTL > 0, "session.ttl must be positive")
}

func (s *SecurityConfig) check(v *violations) {
	v.require(len(s.CsrfSecret) >= minCsrfSecretLen, "security.csrf_secret must be at least %d bytes", minCsrfSecretLen)
	v.require(s.CsrfTTL > 0, "security.csrf_ttl must be positive")
}

func (i *I18nConfig) check(v *violations) {
	v.require(i.DefaultLocale != "", "i18n.default_locale must not be empty")
	v.require(i.DefaultLocale == "" || slices.Contains(i.Locales, i.DefaultLocale),
		"i18n.locales must contain the default locale %q", i.DefaultLocale)
}
