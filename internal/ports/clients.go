package ports

import (
	"context"

	"github.com/jsamuelsen11/timesheet-service/internal/domain/timesheet"
)

// EntryStore defines the client port for looking up persisted timesheet
// entries. Implemented by the ACL adapter (REST entry service) and by the
// in-memory store; called by the application layer.
type EntryStore interface {
	// FindByKey returns the persisted entry matching key, ignoring the entry
	// whose ID equals excludeID when excludeID is non-nil.
	// Returns domain.ErrNotFound if no other entry has the key.
	// Any other error means the store could not be queried.
	FindByKey(ctx context.Context, key timesheet.EntryKey, excludeID *int64) (*timesheet.ExistingEntry, error)
}
