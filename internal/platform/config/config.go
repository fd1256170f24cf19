// Package config provides configuration loading and validation for the
// compiler CLI and the story server. Configuration is loaded from YAML files
// with environment variable overrides using a layered system:
// defaults -> base.yaml -> {profile}.yaml -> env vars.
package config

import (
	"path/filepath"
	"time"
)

// Story sources.
const (
	SourceFile        = "file"
	SourceObjectStore = "objectstore"
)

// Config holds all configuration for the compiler and the story server.
type Config struct {
	Server      ServerConfig      `koanf:"server"`
	Log         LogConfig         `koanf:"log"`
	Compiler    CompilerConfig    `koanf:"compiler"`
	Story       StoryConfig       `koanf:"story"`
	ObjectStore ObjectStoreConfig `koanf:"object_store"`
	Telemetry   TelemetryConfig   `koanf:"telemetry"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Host           string        `koanf:"host"`
	Port           int           `koanf:"port"`
	ReadTimeout    time.Duration `koanf:"read_timeout"`
	WriteTimeout   time.Duration `koanf:"write_timeout"`
	IdleTimeout    time.Duration `koanf:"idle_timeout"`
	RequestTimeout time.Duration `koanf:"request_timeout"`
}

// LogConfig holds structured logging settings.
type LogConfig struct {
	Level  string `koanf:"level"`
	Format string `koanf:"format"`
}

// CompilerConfig holds settings for cmd/gcsc.
type CompilerConfig struct {
	OutputDir    string `koanf:"output_dir"`
	TreeName     string `koanf:"tree_name"`
	ParseWorkers int    `koanf:"parse_workers"`
}

// TreePath joins OutputDir and TreeName.
func (c *CompilerConfig) TreePath() string {
	return filepath.Join(c.OutputDir, c.TreeName)
}

// StoryConfig selects the artifact the story server serves.
type StoryConfig struct {
	// Source is SourceFile or SourceObjectStore.
	Source string `koanf:"source"`

	// TreePath is the local blob path when Source is SourceFile.
	TreePath string `koanf:"tree_path"`

	// ObjectKey is the blob key when Source is SourceObjectStore. The index
	// key is derived from it.
	ObjectKey string `koanf:"object_key"`
}

// ObjectStoreConfig holds S3-compatible storage settings.
type ObjectStoreConfig struct {
	Enabled        bool                 `koanf:"enabled"`
	Endpoint       string               `koanf:"endpoint"`
	Bucket         string               `koanf:"bucket"`
	Prefix         string               `koanf:"prefix"`
	AccessKey      string               `koanf:"access_key"`
	SecretKey      string               `koanf:"secret_key"`
	UseSSL         bool                 `koanf:"use_ssl"`
	Timeout        time.Duration        `koanf:"timeout"`
	Retry          RetryConfig          `koanf:"retry"`
	RateLimit      RateLimitConfig      `koanf:"rate_limit"`
	CircuitBreaker CircuitBreakerConfig `koanf:"circuit_breaker"`
}

// RetryConfig holds retry policy settings with exponential backoff.
type RetryConfig struct {
	MaxAttempts     int           `koanf:"max_attempts"`
	InitialInterval time.Duration `koanf:"initial_interval"`
	MaxInterval     time.Duration `koanf:"max_interval"`
	Multiplier      float64       `koanf:"multiplier"`
}

// RateLimitConfig holds client-side request throttling. A zero
// RequestsPerSecond disables the limiter.
type RateLimitConfig struct {
	RequestsPerSecond float64 `koanf:"requests_per_second"`
	BurstSize         int     `koanf:"burst_size"`
}

// CircuitBreakerConfig holds circuit breaker settings.
type CircuitBreakerConfig struct {
	MaxFailures   int           `koanf:"max_failures"`
	Timeout       time.Duration `koanf:"timeout"`
	HalfOpenLimit int           `koanf:"half_open_limit"`
}

// TelemetryConfig holds OpenTelemetry settings.
type TelemetryConfig struct {
	Enabled     bool   `koanf:"enabled"`
	Exporter    string `koanf:"exporter"`
	Endpoint    string `koanf:"endpoint"`
	ServiceName string `koanf:"service_name"`
}
