package storage

import (
	"errors"
)

// Common errors returned by storage implementations.
var (
	// ErrAlreadyInTx is returned when an operation requiring a non-transactional
	// context is attempted while already inside a transaction.
	ErrAlreadyInTx = errors.New("already in tx")
	// ErrNotInTx is returned when a transaction-specific operation is attempted
	// while not currently inside a transaction.
	ErrNotInTx = errors.New("not in tx")
	// ErrUniqueViolation is matched by every UniqueViolationError.
	ErrUniqueViolation = errors.New("unique violation")
)

// UniqueViolationError reports that a write collided with an existing row on a
// unique field.
type UniqueViolationError struct {
	// Field is the logical field name (e.g. "email"), or empty when unknown.
	Field string
}

func (e *UniqueViolationError) Error() string {
	if e.Field == "" {
		return ErrUniqueViolation.Error()
	}

	return ErrUniqueViolation.Error() + " on " + e.Field
}

// Is makes errors.Is(err, ErrUniqueViolation) hold.
func (e *UniqueViolationError) Is(target error) bool { return target == ErrUniqueViolation }
