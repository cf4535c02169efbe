package store

import "fmt"

// StoreError wraps an underlying persistence failure so callers can treat
// storage problems uniformly regardless of the backend.
type StoreError struct {
	Op  string
	Err error
}

func (e *StoreError) Error() string {
	return fmt.Sprintf("store: %s: %v", e.Op, e.Err)
}

func (e *StoreError) Unwrap() error {
	return e.Err
}
