package config_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/jsamuelsen11/timesheet-service/internal/platform/config"
)

func TestValidate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		modify  func(*config.Config)
		wantErr string
	}{
		{name: "valid", modify: func(*config.Config) {}},
		{name: "port zero", modify: func(c *config.Config) { c.Server.Port = 0 }, wantErr: "server.port"},
		{name: "port too large", modify: func(c *config.Config) { c.Server.Port = 70000 }, wantErr: "server.port"},
		{name: "log level", modify: func(c *config.Config) { c.Log.Level = "verbose" }, wantErr: `log.level must be one of [debug info warn error], got "verbose"`},
		{name: "log format", modify: func(c *config.Config) { c.Log.Format = "logfmt" }, wantErr: "log.format"},
		{name: "retry attempts", modify: func(c *config.Config) { c.Client.Retry.MaxAttempts = 0 }, wantErr: "client.retry.max_attempts"},
		{name: "burst without size", modify: func(c *config.Config) { c.Client.RateLimit.RequestsPerSecond = 5 }, wantErr: "burst_size"},
		{name: "rate without burst is fine when unlimited", modify: func(c *config.Config) { c.Client.RateLimit.BurstSize = 0 }},
		{name: "token url without client id", modify: func(c *config.Config) { c.Client.Auth.TokenURL = "http://auth.local/token" }, wantErr: "client.auth.client_id"},
		{
			name: "otlp without endpoint",
			modify: func(c *config.Config) {
				c.Telemetry.Enabled = true
				c.Telemetry.Exporter = "otlp"
			},
			wantErr: "telemetry.endpoint",
		},
		{name: "exporter ignored while disabled", modify: func(c *config.Config) { c.Telemetry.Exporter = "zipkin" }},
		{name: "unknown store driver", modify: func(c *config.Config) { c.Store.Driver = "postgres" }, wantErr: "store.driver"},
		{name: "seed file on rest driver", modify: func(c *config.Config) { c.Store.SeedFile = "entries.yaml" }, wantErr: "store.seed_file"},
		{name: "zero lookup timeout", modify: func(c *config.Config) { c.Validation.DuplicateCheckTimeout = 0 }, wantErr: "duplicate_check_timeout"},
		{name: "zero concurrency", modify: func(c *config.Config) { c.Validation.BatchConcurrency = 0 }, wantErr: "batch_concurrency"},
		{name: "zero batch size", modify: func(c *config.Config) { c.Validation.MaxBatchSize = 0 }, wantErr: "max_batch_size"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			cfg := validBaseConfig()
			tt.modify(cfg)
			err := cfg.Validate()

			if tt.wantErr == "" {
				if err != nil {
					t.Fatalf("Validate() error = %v, want nil", err)
				}
				return
			}
			if err == nil || !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("Validate() error = %v, want mention of %q", err, tt.wantErr)
			}
		})
	}
}

func TestValidate_ReportsEveryProblem(t *testing.T) {
	t.Parallel()

	cfg := validBaseConfig()
	cfg.Server.Port = -1
	cfg.Log.Level = "loud"
	cfg.Validation.MaxBatchSize = 0

	err := cfg.Validate()
	var joined interface{ Unwrap() []error }
	if !errors.As(err, &joined) {
		t.Fatalf("Validate() error = %v, want a joined error", err)
	}
	if n := len(joined.Unwrap()); n != 3 {
		t.Errorf("Validate() reported %d problems, want 3: %v", n, err)
	}
}
