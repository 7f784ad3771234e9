package config

import (
	"errors"
	"fmt"
	"slices"
)

// problems collects every configuration mistake so a bad deploy reports
// all of them at once.
type problems []error

func (p *problems) require(ok bool, format string, args ...any) {
	if !ok {
		*p = append(*p, fmt.Errorf(format, args...))
	}
}

func (p *problems) oneOf(key, got string, allowed ...string) {
	p.require(slices.Contains(allowed, got), "%s must be one of %v, got %q", key, allowed, got)
}

// Validate reports every invalid setting, joined into one error.
func (c *Config) Validate() error {
	var p problems

	s := c.Server
	p.require(s.Port >= 1 && s.Port <= 65535, "server.port must be between 1 and 65535, got %d", s.Port)
	p.require(s.ReadTimeout > 0, "server.read_timeout must be positive")
	p.require(s.WriteTimeout > 0, "server.write_timeout must be positive")

	p.oneOf("log.level", c.Log.Level, "debug", "info", "warn", "error")
	p.oneOf("log.format", c.Log.Format, "json", "text")

	cl := c.Client
	p.require(cl.BaseURL != "", "client.base_url must not be empty")
	p.require(cl.Timeout > 0, "client.timeout must be positive")
	p.require(cl.Retry.MaxAttempts >= 1, "client.retry.max_attempts must be >= 1, got %d", cl.Retry.MaxAttempts)
	p.require(cl.Retry.Multiplier > 0, "client.retry.multiplier must be positive, got %g", cl.Retry.Multiplier)
	p.require(cl.CircuitBreaker.MaxFailures >= 1,
		"client.circuit_breaker.max_failures must be >= 1, got %d", cl.CircuitBreaker.MaxFailures)
	p.require(cl.RateLimit.RequestsPerSecond >= 0,
		"client.rate_limit.requests_per_second must not be negative, got %g", cl.RateLimit.RequestsPerSecond)
	p.require(cl.RateLimit.RequestsPerSecond == 0 || cl.RateLimit.BurstSize >= 1,
		"client.rate_limit.burst_size must be >= 1 when rate limiting, got %d", cl.RateLimit.BurstSize)
	p.require(cl.Auth.TokenURL == "" || cl.Auth.ClientID != "",
		"client.auth.client_id must not be empty when token_url is set")

	if t := c.Telemetry; t.Enabled {
		p.oneOf("telemetry.exporter", t.Exporter, "stdout", "otlp")
		p.require(t.Exporter != "otlp" || t.Endpoint != "", "telemetry.endpoint must not be empty when exporter is otlp")
	}

	p.oneOf("store.driver", c.Store.Driver, StoreDriverREST, StoreDriverMemory)
	p.require(c.Store.SeedFile == "" || c.Store.Driver == StoreDriverMemory,
		"store.seed_file is only supported by the memory driver")

	v := c.Validation
	p.require(v.DuplicateCheckTimeout > 0, "validation.duplicate_check_timeout must be positive")
	p.require(v.BatchConcurrency >= 1, "validation.batch_concurrency must be >= 1, got %d", v.BatchConcurrency)
	p.require(v.MaxBatchSize >= 1, "validation.max_batch_size must be >= 1, got %d", v.MaxBatchSize)

	return errors.Join(p...)
}
