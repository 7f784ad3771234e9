// Package store selects the entry store backing duplicate detection.
package store

import (
	"fmt"
	"log/slog"

	"github.com/spf13/afero"

	"github.com/jsamuelsen11/timesheet-service/internal/adapters/clients/acl"
	"github.com/jsamuelsen11/timesheet-service/internal/adapters/store/memory"
	"github.com/jsamuelsen11/timesheet-service/internal/platform/config"
	"github.com/jsamuelsen11/timesheet-service/internal/platform/httpclient"
	"github.com/jsamuelsen11/timesheet-service/internal/platform/telemetry"
	"github.com/jsamuelsen11/timesheet-service/internal/ports"
)

// entryServiceName is the peer service name of the downstream entry API.
const entryServiceName = "timesheet-entries"

// Backend is an entry store that can also report its health.
type Backend interface {
	ports.EntryStore
	ports.HealthChecker
}

// Open returns the entry store named by cfg.Store.Driver. The memory driver
// reads its optional seed file from fs; the rest driver builds a resilient
// HTTP client from cfg.Client.
func Open(fs afero.Fs, cfg *config.Config, metrics *telemetry.Metrics, logger *slog.Logger) (Backend, error) {
	switch cfg.Store.Driver {
	case config.StoreDriverMemory:
		if cfg.Store.SeedFile == "" {
			return memory.New(logger), nil
		}
		s, err := memory.NewFromSeed(fs, cfg.Store.SeedFile, logger)
		if err != nil {
			return nil, fmt.Errorf("opening memory store: %w", err)
		}
		return s, nil
	case config.StoreDriverREST:
		client := httpclient.New(&cfg.Client, entryServiceName, metrics, logger)
		return acl.NewEntryClient(client, logger), nil
	default:
		return nil, fmt.Errorf("unknown store driver %q", cfg.Store.Driver)
	}
}
