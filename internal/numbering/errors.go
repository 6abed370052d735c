package numbering

import (
	"errors"
	"fmt"
)

// Common numbering errors
var (
	// ErrInvalidNumber is returned when a manual document number is not a
	// plain positive integer.
	ErrInvalidNumber = errors.New("document number must be a positive integer")

	// ErrNumberCollision is returned when a manual document number has already
	// been consumed and the operator has not confirmed a forced reuse.
	ErrNumberCollision = errors.New("document number already exists")

	// ErrForceMismatch is returned when a force confirmation is pending for a
	// different number than the one resubmitted.
	ErrForceMismatch = errors.New("force confirmation is for a different number")

	// ErrPersistence is returned when the counter record cannot be written.
	// No allocation takes place when this error is returned.
	ErrPersistence = errors.New("failed to persist counter record")
)

// AllocationError wraps errors with context about the numbering operation
// that failed.
type AllocationError struct {
	// Op is the operation that failed (e.g. "AllocateNext", "SetExact").
	Op string

	// Category is the document category being numbered.
	Category string

	// Err is the underlying error.
	Err error
}

// Error implements the error interface.
func (e *AllocationError) Error() string {
	if e.Category != "" {
		return fmt.Sprintf("numbering: %s failed (category: %s): %v", e.Op, e.Category, e.Err)
	}
	return fmt.Sprintf("numbering: %s failed: %v", e.Op, e.Err)
}

// Unwrap returns the underlying error for error unwrapping.
func (e *AllocationError) Unwrap() error {
	return e.Err
}

// Is implements error matching for Go 1.13+ error handling.
func (e *AllocationError) Is(target error) bool {
	return errors.Is(e.Err, target)
}

func newAllocationError(op string, category string, err error) *AllocationError {
	return &AllocationError{Op: op, Category: category, Err: err}
}
