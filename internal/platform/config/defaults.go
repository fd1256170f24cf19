package config

const (
	defaultServerPort   = 8080
	defaultParseWorkers = 4

	defaultRetryMaxAttempts = 3
	defaultRetryMultiplier  = 2.0
	defaultRateLimitBurst   = 1

	defaultCircuitBreakerMaxFailures = 5
	defaultCircuitBreakerHalfOpen    = 1
)

// defaults returns the default configuration values.
// These are loaded first and can be overridden by base.yaml, profile YAML, and env vars.
func defaults() map[string]any {
	return map[string]any{
		"server.host":            "0.0.0.0",
		"server.port":            defaultServerPort,
		"server.read_timeout":    "5s",
		"server.write_timeout":   "10s",
		"server.idle_timeout":    "120s",
		"server.request_timeout": "5s",

		"log.level":  "info",
		"log.format": "json",

		"compiler.output_dir":    ".",
		"compiler.tree_name":     "source.gcstree",
		"compiler.parse_workers": defaultParseWorkers,

		"story.source":     SourceFile,
		"story.tree_path":  "source.gcstree",
		"story.object_key": "",

		"object_store.enabled":                         false,
		"object_store.endpoint":                        "",
		"object_store.bucket":                          "",
		"object_store.prefix":                          "",
		"object_store.access_key":                      "",
		"object_store.secret_key":                      "",
		"object_store.use_ssl":                         true,
		"object_store.timeout":                         "30s",
		"object_store.retry.max_attempts":              defaultRetryMaxAttempts,
		"object_store.retry.initial_interval":          "100ms",
		"object_store.retry.max_interval":              "2s",
		"object_store.retry.multiplier":                defaultRetryMultiplier,
		"object_store.rate_limit.requests_per_second":  0,
		"object_store.rate_limit.burst_size":           defaultRateLimitBurst,
		"object_store.circuit_breaker.max_failures":    defaultCircuitBreakerMaxFailures,
		"object_store.circuit_breaker.timeout":         "30s",
		"object_store.circuit_breaker.half_open_limit": defaultCircuitBreakerHalfOpen,

		"telemetry.enabled":      false,
		"telemetry.exporter":     "stdout",
		"telemetry.endpoint":     "",
		"telemetry.service_name": "gcs-story",
	}
}
