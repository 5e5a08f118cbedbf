package domain

import (
	"errors"
	"fmt"
)

// ErrInvalidMeasurement indicates a non-positive weight or height.
var ErrInvalidMeasurement = errors.New("invalid measurement")

func invalidMeasurement(msg string) error {
	return fmt.Errorf("%w: %s", ErrInvalidMeasurement, msg)
}

// StorageError wraps a durable read/write failure or an unparseable payload
// beyond the tolerated legacy shapes. It is never raised for a missing day on
// delete; deletion is idempotent.
type StorageError struct {
	Op  string
	Err error
}

func (e *StorageError) Error() string {
	return fmt.Sprintf("storage: %s: %v", e.Op, e.Err)
}

func (e *StorageError) Unwrap() error { return e.Err }

// NewStorageError wraps err with the failing operation name.
func NewStorageError(op string, err error) *StorageError {
	return &StorageError{Op: op, Err: err}
}

// IsStorageError reports whether err is (or wraps) a StorageError.
func IsStorageError(err error) bool {
	var se *StorageError
	return errors.As(err, &se)
}
