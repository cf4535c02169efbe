package reminder

import (
	"errors"
	"fmt"
)

// Sentinel causes carried by ValidationError. Callers match them with
// errors.Is.
var (
	ErrEmptyMessage             = errors.New("message cannot be empty")
	ErrZeroTime                 = errors.New("scheduled time must be set")
	ErrNotUTC                   = errors.New("scheduled time must be UTC")
	ErrInvalidKind              = errors.New("unknown reminder kind")
	ErrMissingRecurrenceDetails = errors.New("recurrence details are required")
)

// ValidationError reports a malformed reminder field at construction time.
type ValidationError struct {
	Field string
	Err   error
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid reminder: %s: %v", e.Field, e.Err)
}

func (e *ValidationError) Unwrap() error {
	return e.Err
}
