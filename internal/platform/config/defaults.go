package config

import "github.com/knadh/koanf/providers/confmap"

const (
	defaultServerPort = 8080
	defaultCORSMaxAge = 300

	defaultMaxConcurrency = 4

	defaultCircuitBreakerMaxFailures = 5
	defaultCircuitBreakerHalfOpen    = 1
)

// defaults returns the default configuration values.
// These are loaded first and can be overridden by base.yaml, profile YAML, and env vars.
func defaults() map[string]any {
	return map[string]any{
		"server.host":                 "0.0.0.0",
		"server.port":                 defaultServerPort,
		"server.read_timeout":         "5s",
		"server.write_timeout":        "10s",
		"server.idle_timeout":         "120s",
		"server.request_timeout":      "8s",
		"server.cors.allowed_origins": []string{"http://localhost:4200"},
		"server.cors.max_age":         defaultCORSMaxAge,

		"log.level":  "info",
		"log.format": "json",

		"client.base_url":                        "http://localhost:4567",
		"client.todos_path":                      "/api/todos",
		"client.timeout":                         "30s",
		"client.max_concurrency":                 defaultMaxConcurrency,
		"client.circuit_breaker.max_failures":    defaultCircuitBreakerMaxFailures,
		"client.circuit_breaker.timeout":         "30s",
		"client.circuit_breaker.half_open_limit": defaultCircuitBreakerHalfOpen,
		"client.rate_limit.requests_per_second":  0,
		"client.rate_limit.burst_size":           1,

		"telemetry.enabled":      false,
		"telemetry.exporter":     "stdout",
		"telemetry.endpoint":     "",
		"telemetry.service_name": "todo-list-service",
	}
}

// defaultsProvider wraps defaults() for koanf.
func defaultsProvider() *confmap.Confmap {
	return confmap.Provider(defaults(), ".")
}
