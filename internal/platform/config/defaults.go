package config

const (
	defaultServerPort = 8080

	defaultRetryMaxAttempts = 3
	defaultRetryMultiplier  = 2.0

	defaultCircuitBreakerMaxFailures = 5
	defaultCircuitBreakerHalfOpen    = 1

	defaultAdminPerPage = 32
)

// defaults returns the default configuration values.
// These are loaded first and can be overridden by base.yaml, profile YAML, and env vars.
func defaults() map[string]any {
	return map[string]any{
		"server.host":          "0.0.0.0",
		"server.port":          defaultServerPort,
		"server.read_timeout":  "5s",
		"server.write_timeout": "10s",
		"server.idle_timeout":  "120s",

		"log.level":  "info",
		"log.format": "json",

		"client.base_url":                        "http://localhost:8081",
		"client.timeout":                         "30s",
		"client.retry.max_attempts":              defaultRetryMaxAttempts,
		"client.retry.initial_interval":          "100ms",
		"client.retry.max_interval":              "10s",
		"client.retry.multiplier":                defaultRetryMultiplier,
		"client.circuit_breaker.max_failures":    defaultCircuitBreakerMaxFailures,
		"client.circuit_breaker.timeout":         "30s",
		"client.circuit_breaker.half_open_limit": defaultCircuitBreakerHalfOpen,
		"client.rate_limit.requests_per_second":  0,
		"client.rate_limit.burst_size":           1,

		"telemetry.enabled":      false,
		"telemetry.exporter":     "stdout",
		"telemetry.endpoint":     "",
		"telemetry.service_name": "go-admin-workflow",

		"admin.debug":            false,
		"admin.base_path":        "/admin",
		"admin.per_page":         defaultAdminPerPage,
		"admin.persist_filters":  false,
		"admin.supports_preview": false,
		"admin.acl_enabled":      false,
		"admin.export_formats":   []string{"csv", "json", "xml"},

		"storage.driver": "sqlite",
		"storage.dsn":    "file:admin.db?_pragma=foreign_keys(1)",

		"session.store":       "memory",
		"session.cookie_name": "admin_session",
		"session.ttl":         "12h",

		"security.csrf_ttl": "2h",

		"i18n.default_locale": "en",
		"i18n.locales":        []string{"en"},
		"i18n.catalog_dir":    "configs/i18n",
	}
}
