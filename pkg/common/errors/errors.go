package errors

import (
	"errors"
	"fmt"
)

// Common error types used across the goseq library

var (
	// ErrInvalidState indicates an operation that violates the enumerator
	// protocol or a structural precondition (empty, too many elements)
	ErrInvalidState = errors.New("invalid enumerator state")

	// ErrOutOfRange indicates an argument outside its permitted range
	ErrOutOfRange = errors.New("argument out of range")

	// ErrNotFound indicates a key with no binding in an associative container
	ErrNotFound = errors.New("key not found")

	// ErrInvalidConfiguration indicates invalid configuration parameters
	ErrInvalidConfiguration = errors.New("invalid configuration")
)

// StateError describes a violation of the enumerator protocol or of a
// structural precondition of a terminal operation.
type StateError struct {
	Module    string
	Operation string
	Reason    string
}

// Error implements the error interface.
func (e *StateError) Error() string {
	return fmt.Sprintf("%s.%s: %s", e.Module, e.Operation, e.Reason)
}

// Unwrap allows errors.Is checks against ErrInvalidState.
func (e *StateError) Unwrap() error {
	return ErrInvalidState
}

// NewStateError creates a new StateError.
func NewStateError(module, operation, reason string) *StateError {
	return &StateError{
		Module:    module,
		Operation: operation,
		Reason:    reason,
	}
}

// RangeError describes an argument outside its permitted range, such as a
// negative count or an index with no corresponding element.
type RangeError struct {
	Module string
	Field  string
	Value  interface{}
	Reason string
	Hint   string
}

// Error implements the error interface.
func (e *RangeError) Error() string {
	msg := fmt.Sprintf("%s: invalid %s=%v (%s)", e.Module, e.Field, e.Value, e.Reason)
	if e.Hint != "" {
		msg += " - " + e.Hint
	}
	return msg
}

// Unwrap allows errors.Is checks against ErrOutOfRange.
func (e *RangeError) Unwrap() error {
	return ErrOutOfRange
}

// NewRangeError creates a new RangeError.
func NewRangeError(module, field string, value interface{}, reason string) *RangeError {
	return &RangeError{
		Module: module,
		Field:  field,
		Value:  value,
		Reason: reason,
	}
}

// WithHint adds a hint and returns the same error for chaining.
func (e *RangeError) WithHint(hint string) *RangeError {
	e.Hint = hint
	return e
}

// ValidationError describes an invalid constructor argument, such as a nil
// selector or comparer.
type ValidationError struct {
	Module string
	Field  string
	Value  interface{}
	Reason string
	Hint   string
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	msg := fmt.Sprintf("%s: invalid %s=%v (%s)", e.Module, e.Field, e.Value, e.Reason)
	if e.Hint != "" {
		msg += " - " + e.Hint
	}
	return msg
}

// Unwrap allows errors.Is checks against ErrInvalidConfiguration.
func (e *ValidationError) Unwrap() error {
	return ErrInvalidConfiguration
}

// NewValidationError creates a new ValidationError.
func NewValidationError(module, field string, value interface{}, reason string) *ValidationError {
	return &ValidationError{
		Module: module,
		Field:  field,
		Value:  value,
		Reason: reason,
	}
}

// WithHint adds a hint and returns the same error for chaining.
func (e *ValidationError) WithHint(hint string) *ValidationError {
	e.Hint = hint
	return e
}

// IsInvalidState returns true if the error indicates an enumerator protocol
// or structural precondition violation
func IsInvalidState(err error) bool {
	return errors.Is(err, ErrInvalidState)
}

// IsOutOfRange returns true if the error indicates an out-of-range argument
func IsOutOfRange(err error) bool {
	return errors.Is(err, ErrOutOfRange)
}

// IsNotFound returns true if the error indicates a missing key
func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}

// IsValidationError returns true if the error is or wraps a ValidationError
func IsValidationError(err error) bool {
	var verr *ValidationError
	return errors.As(err, &verr)
}
