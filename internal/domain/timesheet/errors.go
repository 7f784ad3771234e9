package timesheet

import (
	"github.com/jsamuelsen11/timesheet-service/internal/domain"
)

// DuplicateCheckError reports that the entry store could not be queried, so
// the validity of an entry could not be determined. It matches
// domain.ErrUnavailable under errors.Is and also unwraps to the cause.
type DuplicateCheckError struct {
	Err error
}

func (e *DuplicateCheckError) Error() string {
	return MsgDuplicateCheckFailed
}

func (e *DuplicateCheckError) Unwrap() []error {
	if e.Err == nil {
		return []error{domain.ErrUnavailable}
	}
	return []error{domain.ErrUnavailable, e.Err}
}
