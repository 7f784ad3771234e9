// Package config loads the timesheet service settings from layered YAML
// (base.yaml, then a profile) with APP_* environment overrides. Both the
// HTTP server and the tsvalidate CLI read it.
package config

import "time"

// Config is the fully merged and validated configuration.
type Config struct {
	Server     ServerConfig     `koanf:"server"`
	Log        LogConfig        `koanf:"log"`
	Client     ClientConfig     `koanf:"client"`
	Telemetry  TelemetryConfig  `koanf:"telemetry"`
	Store      StoreConfig      `koanf:"store"`
	Validation ValidationConfig `koanf:"validation"`
}

type ServerConfig struct {
	Host         string        `koanf:"host"`
	Port         int           `koanf:"port"`
	ReadTimeout  time.Duration `koanf:"read_timeout"`
	WriteTimeout time.Duration `koanf:"write_timeout"`
	IdleTimeout  time.Duration `koanf:"idle_timeout"`
}

// LogConfig picks the slog level and handler ("json" or "text").
type LogConfig struct {
	Level  string `koanf:"level"`
	Format string `koanf:"format"`
}

// ClientConfig describes the connection to the downstream entry service
// that backs the rest store driver.
type ClientConfig struct {
	BaseURL        string               `koanf:"base_url"`
	Timeout        time.Duration        `koanf:"timeout"`
	Retry          RetryConfig          `koanf:"retry"`
	CircuitBreaker CircuitBreakerConfig `koanf:"circuit_breaker"`
	RateLimit      RateLimitConfig      `koanf:"rate_limit"`
	Auth           AuthConfig           `koanf:"auth"`
}

// RetryConfig bounds the jittered exponential backoff between attempts.
type RetryConfig struct {
	MaxAttempts     int           `koanf:"max_attempts"`
	InitialInterval time.Duration `koanf:"initial_interval"`
	MaxInterval     time.Duration `koanf:"max_interval"`
	Multiplier      float64       `koanf:"multiplier"`
}

// CircuitBreakerConfig trips after MaxFailures consecutive failures and
// tries again after Timeout.
type CircuitBreakerConfig struct {
	MaxFailures   int           `koanf:"max_failures"`
	Timeout       time.Duration `koanf:"timeout"`
	HalfOpenLimit int           `koanf:"half_open_limit"`
}

// RateLimitConfig throttles outbound calls; zero RequestsPerSecond means
// unlimited.
type RateLimitConfig struct {
	RequestsPerSecond float64 `koanf:"requests_per_second"`
	BurstSize         int     `koanf:"burst_size"`
}

// AuthConfig enables the OAuth2 client-credentials flow when TokenURL is set.
type AuthConfig struct {
	TokenURL     string   `koanf:"token_url"`
	ClientID     string   `koanf:"client_id"`
	ClientSecret string   `koanf:"client_secret"`
	Scopes       []string `koanf:"scopes"`
}

// TelemetryConfig switches tracing and metrics export on. Exporter is
// "stdout" or "otlp" (HTTP, to Endpoint).
type TelemetryConfig struct {
	Enabled     bool   `koanf:"enabled"`
	Exporter    string `koanf:"exporter"`
	Endpoint    string `koanf:"endpoint"`
	ServiceName string `koanf:"service_name"`
}

// Store drivers.
const (
	StoreDriverREST   = "rest"
	StoreDriverMemory = "memory"
)

// StoreConfig selects the entry store used for duplicate detection.
type StoreConfig struct {
	// Driver is "rest" (downstream entry service) or "memory".
	Driver string `koanf:"driver"`

	// SeedFile is an optional YAML file of entries loaded into the memory
	// store at startup.
	SeedFile string `koanf:"seed_file"`
}

// ValidationConfig tunes the entry validators. BatchConcurrency above 1
// validates batch entries in parallel; results keep input order.
type ValidationConfig struct {
	DuplicateCheckTimeout time.Duration `koanf:"duplicate_check_timeout"`
	BatchConcurrency      int           `koanf:"batch_concurrency"`
	MaxBatchSize          int           `koanf:"max_batch_size"`
}
