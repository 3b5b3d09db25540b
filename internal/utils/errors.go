package utils

import "fmt"

// ValidationError represents an error occurring during input validation.
type ValidationError struct {
	Message string
}

// Error returns the error message string.
func (e *ValidationError) Error() string {
	return e.Message
}

// NewValidationError creates a new ValidationError with a specific message.
func NewValidationError(message string) error {
	return &ValidationError{
		Message: message,
	}
}

// NewValidationErrorf creates a new ValidationError with a formatted message.
func NewValidationErrorf(format string, args ...interface{}) error {
	return &ValidationError{
		Message: fmt.Sprintf(format, args...),
	}
}

// NewLengthMismatchError reports two series whose lengths must agree but do
// not. Mismatched lengths are a caller contract violation, never a
// degenerate input, so they always fail fast.
func NewLengthMismatchError(name string, want, got int) error {
	return NewValidationErrorf("%s: length mismatch: expected %d values, got %d", name, want, got)
}
