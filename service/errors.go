package service

import "fmt"

// The submission workflow distinguishes three caller-visible failure
// classes; anything else is treated as internal by the HTTP layer.

// InvalidRequestError marks malformed or incomplete client input.
type InvalidRequestError struct {
	Message string
}

func (e *InvalidRequestError) Error() string { return e.Message }

// NewInvalidRequest creates an InvalidRequestError
func NewInvalidRequest(format string, args ...any) error {
	return &InvalidRequestError{Message: fmt.Sprintf(format, args...)}
}

// ConflictError marks a resubmission attempt for an address that has
// already placed bets.
type ConflictError struct {
	Message string
}

func (e *ConflictError) Error() string { return e.Message }

// NewConflict creates a ConflictError
func NewConflict(format string, args ...any) error {
	return &ConflictError{Message: fmt.Sprintf(format, args...)}
}

// InvariantViolationError marks a failed server-side precondition,
// such as an unseeded catalog.
type InvariantViolationError struct {
	Message string
}

func (e *InvariantViolationError) Error() string { return e.Message }

// NewInvariantViolation creates an InvariantViolationError
func NewInvariantViolation(format string, args ...any) error {
	return &InvariantViolationError{Message: fmt.Sprintf(format, args...)}
}
