package domain

import (
	"errors"
	"fmt"
	"strings"
)

// Common domain errors
var (
	ErrNotFound          = errors.New("resource not found")
	ErrValidation        = errors.New("validation failed")
	ErrDuplicateEmail    = errors.New("user with this email already exists")
	ErrInvalidTransition = errors.New("invalid status transition")
	ErrCorruption        = errors.New("stored collection is corrupt")
	ErrNoSession         = errors.New("no user is signed in")
	ErrForbidden         = errors.New("not allowed for this user")
)

// ValidationError reports missing or malformed caller input.
// errors.Is(err, ErrValidation) matches any ValidationError.
type ValidationError struct {
	Fields []string
}

// NewValidationError creates a validation error for the given field messages
func NewValidationError(fields ...string) *ValidationError {
	return &ValidationError{Fields: fields}
}

func (e *ValidationError) Error() string {
	if len(e.Fields) == 0 {
		return ErrValidation.Error()
	}
	return ErrValidation.Error() + ": " + strings.Join(e.Fields, "; ")
}

func (e *ValidationError) Is(target error) bool {
	return target == ErrValidation
}

// CorruptionError is raised by the document store when a persisted
// collection cannot be decoded. It is logged and never returned past the store.
type CorruptionError struct {
	Collection string
	Err        error
}

func (e *CorruptionError) Error() string {
	return fmt.Sprintf("collection %q is corrupt: %v", e.Collection, e.Err)
}

func (e *CorruptionError) Unwrap() error {
	return e.Err
}

func (e *CorruptionError) Is(target error) bool {
	return target == ErrCorruption
}
