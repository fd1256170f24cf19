package config

import (
	"errors"
	"fmt"
	"strings"
)

// Validate checks all configuration values and returns aggregated errors.
func (c *Config) Validate() error {
	return errors.Join(
		c.Server.validate(),
		c.Log.validate(),
		c.Compiler.validate(),
		c.Story.validate(&c.ObjectStore),
		c.ObjectStore.validate(),
		c.Telemetry.validate(),
	)
}

func (s *ServerConfig) validate() error {
	var errs []error

	if s.Port < 1 || s.Port > 65535 {
		errs = append(errs, fmt.Errorf("server.port must be between 1 and 65535, got %d", s.Port))
	}
	if s.ReadTimeout <= 0 {
		errs = append(errs, errors.New("server.read_timeout must be positive"))
	}
	if s.WriteTimeout <= 0 {
		errs = append(errs, errors.New("server.write_timeout must be positive"))
	}
	if s.RequestTimeout <= 0 {
		errs = append(errs, errors.New("server.request_timeout must be positive"))
	}

	return errors.Join(errs...)
}

func (l *LogConfig) validate() error {
	var errs []error

	switch l.Level {
	case "debug", "info", "warn", "error":
		// Valid levels.
	default:
		errs = append(errs, fmt.Errorf("log.level must be one of: debug, info, warn, error; got %q", l.Level))
	}

	switch l.Format {
	case "json", "text":
		// Valid formats.
	default:
		errs = append(errs, fmt.Errorf("log.format must be one of: json, text; got %q", l.Format))
	}

	return errors.Join(errs...)
}

func (c *CompilerConfig) validate() error {
	var errs []error

	if c.TreeName == "" {
		errs = append(errs, errors.New("compiler.tree_name must not be empty"))
	}
	if strings.ContainsAny(c.TreeName, `/\`) {
		errs = append(errs, fmt.Errorf("compiler.tree_name must be a file name, got %q", c.TreeName))
	}
	if c.ParseWorkers < 1 {
		errs = append(errs, fmt.Errorf("compiler.parse_workers must be >= 1, got %d", c.ParseWorkers))
	}

	return errors.Join(errs...)
}

func (s *StoryConfig) validate(store *ObjectStoreConfig) error {
	switch s.Source {
	case SourceFile:
		if s.TreePath == "" {
			return errors.New("story.tree_path must not be empty when story.source is file")
		}
	case SourceObjectStore:
		var errs []error
		if !store.Enabled {
			errs = append(errs, errors.New("object_store.enabled must be true when story.source is objectstore"))
		}
		if s.ObjectKey == "" {
			errs = append(errs, errors.New("story.object_key must not be empty when story.source is objectstore"))
		}
		return errors.Join(errs...)
	default:
		return fmt.Errorf("story.source must be one of: file, objectstore; got %q", s.Source)
	}
	return nil
}

func (o *ObjectStoreConfig) validate() error {
	if !o.Enabled {
		return nil
	}

	var errs []error

	if o.Endpoint == "" {
		errs = append(errs, errors.New("object_store.endpoint must not be empty"))
	}
	if o.Bucket == "" {
		errs = append(errs, errors.New("object_store.bucket must not be empty"))
	}
	if o.Timeout <= 0 {
		errs = append(errs, errors.New("object_store.timeout must be positive"))
	}
	if o.Retry.MaxAttempts < 1 {
		errs = append(errs, fmt.Errorf("object_store.retry.max_attempts must be >= 1, got %d", o.Retry.MaxAttempts))
	}
	if o.Retry.Multiplier <= 0 {
		errs = append(errs, fmt.Errorf("object_store.retry.multiplier must be positive, got %f", o.Retry.Multiplier))
	}
	if o.RateLimit.RequestsPerSecond < 0 {
		errs = append(errs, fmt.Errorf("object_store.rate_limit.requests_per_second must be >= 0, got %f",
			o.RateLimit.RequestsPerSecond))
	}
	if o.RateLimit.RequestsPerSecond > 0 && o.RateLimit.BurstSize < 1 {
		errs = append(errs, fmt.Errorf("object_store.rate_limit.burst_size must be >= 1 when rate limiting, got %d",
			o.RateLimit.BurstSize))
	}
	if o.CircuitBreaker.MaxFailures < 1 {
		errs = append(errs, fmt.Errorf("object_store.circuit_breaker.max_failures must be >= 1, got %d",
			o.CircuitBreaker.MaxFailures))
	}

	return errors.Join(errs...)
}

func (t *TelemetryConfig) validate() error {
	if !t.Enabled {
		return nil
	}

	var errs []error

	switch t.Exporter {
	case "stdout", "otlp":
		// Valid exporters.
	default:
		errs = append(errs, fmt.Errorf("telemetry.exporter must be one of: stdout, otlp; got %q", t.Exporter))
	}

	if t.Exporter == "otlp" && t.Endpoint == "" {
		errs = append(errs, errors.New("telemetry.endpoint must not be empty when exporter is otlp"))
	}

	return errors.Join(errs...)
}
