// Package config provides configuration loading and validation for the
// tracker client. Configuration is loaded from YAML files with environment
// variable overrides using a layered system:
// defaults -> base.yaml -> {profile}.yaml -> env vars.
package config

import "time"

// Config holds all configuration for the client.
type Config struct {
	Log       LogConfig       `koanf:"log"`
	Client    ClientConfig    `koanf:"client"`
	Board     BoardConfig     `koanf:"board"`
	Session   SessionConfig   `koanf:"session"`
	Telemetry TelemetryConfig `koanf:"telemetry"`
}

// LogConfig holds structured logging settings.
type LogConfig struct {
	Level  string `koanf:"level"`
	Format string `koanf:"format"`
}

// ClientConfig holds tracker API client settings.
type ClientConfig struct {
	BaseURL        string               `koanf:"base_url"`
	Timeout        time.Duration        `koanf:"timeout"`
	Retry          RetryConfig          `koanf:"retry"`
	RateLimit      RateLimitConfig      `koanf:"rate_limit"`
	CircuitBreaker CircuitBreakerConfig `koanf:"circuit_breaker"`
}

// RetryConfig holds the retry policy for read requests. Mutations are never
// retried: a failed write is terminal for that attempt and the user retries
// by repeating the action. max_attempts defaults to 1 (retries off).
type RetryConfig struct {
	MaxAttempts     int           `koanf:"max_attempts"`
	InitialInterval time.Duration `koanf:"initial_interval"`
	MaxInterval     time.Duration `koanf:"max_interval"`
	Multiplier      float64       `koanf:"multiplier"`
}

// RateLimitConfig holds outbound rate limiting settings. Disabled when
// requests_per_second is 0.
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

// BoardConfig holds board defaults.
type BoardConfig struct {
	// ParentProject scopes every project list; the UI always browses one
	// parent at a time.
	ParentProject string `koanf:"parent_project"`
}

// SessionConfig holds session persistence settings.
type SessionConfig struct {
	// Path of the JSON file holding the signed-in identity. Empty means
	// "$HOME/.config/trackboard/session.json".
	Path string `koanf:"path"`
}

// TelemetryConfig holds OpenTelemetry settings.
type TelemetryConfig struct {
	Enabled     bool   `koanf:"enabled"`
	Exporter    string `koanf:"exporter"`
	Endpoint    string `koanf:"endpoint"`
	ServiceName string `koanf:"service_name"`
}
