package store_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/spf13/afero"

	"github.com/jsamuelsen11/timesheet-service/internal/adapters/clients/acl"
	"github.com/jsamuelsen11/timesheet-service/internal/adapters/store"
	"github.com/jsamuelsen11/timesheet-service/internal/adapters/store/memory"
	"github.com/jsamuelsen11/timesheet-service/internal/domain"
	"github.com/jsamuelsen11/timesheet-service/internal/domain/timesheet"
	"github.com/jsamuelsen11/timesheet-service/internal/platform/config"
)

const seed = `entries:
  - id: 7
    employee_id: E1
    date_worked: "2025-01-02"
    project_code: P1
    cost_code: C1
    standard_hours: "8"
`

func testConfig(driver, seedFile string) *config.Config {
	return &config.Config{
		Client: config.ClientConfig{
			BaseURL: "http://localhost:1",
			Timeout: time.Second,
			Retry: config.RetryConfig{
				MaxAttempts:     1,
				InitialInterval: time.Millisecond,
				MaxInterval:     time.Millisecond,
				Multiplier:      1,
			},
			CircuitBreaker: config.CircuitBreakerConfig{
				MaxFailures:   1,
				Timeout:       time.Second,
				HalfOpenLimit: 1,
			},
		},
		Store: config.StoreConfig{Driver: driver, SeedFile: seedFile},
	}
}

func TestOpen_MemoryWithSeed(t *testing.T) {
	t.Parallel()

	fs := afero.NewMemMapFs()
	if err := afero.WriteFile(fs, "seed.yaml", []byte(seed), 0o644); err != nil {
		t.Fatalf("writing seed: %v", err)
	}

	backend, err := store.Open(fs, testConfig(config.StoreDriverMemory, "seed.yaml"), nil, nil)
	if err != nil {
		t.Fatalf("Open() error = %v", err)
	}
	if _, ok := backend.(*memory.Store); !ok {
		t.Fatalf("backend = %T, want *memory.Store", backend)
	}

	got, err := backend.FindByKey(context.Background(), timesheet.EntryKey{
		EmployeeID: "E1", DateWorked: "2025-01-02", ProjectCode: "P1", CostCode: "C1",
	}, nil)
	if err != nil {
		t.Fatalf("FindByKey() error = %v", err)
	}
	if got.ID != 7 {
		t.Errorf("ID = %d, want 7", got.ID)
	}
}

func TestOpen_MemoryWithoutSeed(t *testing.T) {
	t.Parallel()

	backend, err := store.Open(afero.NewMemMapFs(), testConfig(config.StoreDriverMemory, ""), nil, nil)
	if err != nil {
		t.Fatalf("Open() error = %v", err)
	}

	_, err = backend.FindByKey(context.Background(), timesheet.EntryKey{
		EmployeeID: "E1", DateWorked: "2025-01-02", ProjectCode: "P1", CostCode: "C1",
	}, nil)
	if !errors.Is(err, domain.ErrNotFound) {
		t.Errorf("FindByKey() error = %v, want ErrNotFound", err)
	}
}

func TestOpen_MemoryMissingSeed(t *testing.T) {
	t.Parallel()

	_, err := store.Open(afero.NewMemMapFs(), testConfig(config.StoreDriverMemory, "missing.yaml"), nil, nil)
	if err == nil {
		t.Fatal("Open() error = nil, want error for missing seed file")
	}
}

func TestOpen_REST(t *testing.T) {
	t.Parallel()

	backend, err := store.Open(afero.NewMemMapFs(), testConfig(config.StoreDriverREST, ""), nil, nil)
	if err != nil {
		t.Fatalf("Open() error = %v", err)
	}
	if _, ok := backend.(*acl.EntryClient); !ok {
		t.Fatalf("backend = %T, want *acl.EntryClient", backend)
	}
	if backend.Name() != "timesheet-entries" {
		t.Errorf("Name() = %q, want %q", backend.Name(), "timesheet-entries")
	}
}

func TestOpen_UnknownDriver(t *testing.T) {
	t.Parallel()

	_, err := store.Open(afero.NewMemMapFs(), testConfig("sqlite", ""), nil, nil)
	if err == nil {
		t.Fatal("Open() error = nil, want error for unknown driver")
	}
}
