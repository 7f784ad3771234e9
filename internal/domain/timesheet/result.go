package timesheet

// ValidationResult is the outcome of validating one entry.
// Valid is true if and only if Errors is empty.
type ValidationResult struct {
	Valid  bool
	Errors []string
}

// NewValidationResult builds a result from collected messages. A nil slice
// is replaced by an empty one so that encoders emit [] rather than null.
func NewValidationResult(errs []string) ValidationResult {
	if errs == nil {
		errs = []string{}
	}
	return ValidationResult{Valid: len(errs) == 0, Errors: errs}
}

// EntryErrors holds the messages for the invalid entry at Index in a batch.
type EntryErrors struct {
	Index  int
	Errors []string
}

// BatchValidationResult is the outcome of validating an ordered batch.
// EntryErrors has one element per invalid input entry, in ascending Index
// order. Valid is true if and only if EntryErrors is empty.
type BatchValidationResult struct {
	BatchID     string
	Valid       bool
	EntryErrors []EntryErrors
}

// NewBatchValidationResult assembles a batch result from per-entry results
// listed in input order.
func NewBatchValidationResult(batchID string, results []ValidationResult) BatchValidationResult {
	entryErrs := []EntryErrors{}
	for i, r := range results {
		if !r.Valid {
			entryErrs = append(entryErrs, EntryErrors{Index: i, Errors: r.Errors})
		}
	}
	return BatchValidationResult{
		BatchID:     batchID,
		Valid:       len(entryErrs) == 0,
		EntryErrors: entryErrs,
	}
}

// DuplicateCheckResult reports whether an entry with the same key already
// exists. Entry is non-nil if and only if Exists is true.
type DuplicateCheckResult struct {
	Exists bool
	Entry  *ExistingEntry
}
