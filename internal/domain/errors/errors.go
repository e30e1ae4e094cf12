// Package errors defines the domain error taxonomy for roster administration.
// Typed errors (instead of strings) let callers handle specific cases and let
// the HTTP layer map each class to a status code without string matching.
package errors

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors shared across entities.
var (
	ErrEntityNotFound = errors.New("entity not found")
	ErrInvalidInput   = errors.New("invalid input")
)

// ValidationError is a single field-level violation. RejectedValue carries the
// offending input so callers can echo it back to the user.
type ValidationError struct {
	Field         string `json:"field"`
	Message       string `json:"message"`
	RejectedValue any    `json:"value,omitempty"`
}

// Error implements the error interface.
func (e ValidationError) Error() string {
	return fmt.Sprintf("validation failed for field '%s': %s", e.Field, e.Message)
}

// ValidationErrors is the full batch of violations for one request.
// The whole batch is always surfaced together; no record is ever written
// when the batch is non-empty.
type ValidationErrors []ValidationError

// Error implements the error interface.
func (e ValidationErrors) Error() string {
	if len(e) == 0 {
		return "validation failed"
	}
	msgs := make([]string, len(e))
	for i, v := range e {
		msgs[i] = v.Error()
	}
	return strings.Join(msgs, "; ")
}

// Add appends a violation.
func (e *ValidationErrors) Add(field, message string, rejected any) {
	*e = append(*e, ValidationError{Field: field, Message: message, RejectedValue: rejected})
}

// Merge appends all violations from other.
func (e *ValidationErrors) Merge(other ValidationErrors) {
	*e = append(*e, other...)
}

// HasErrors reports whether any violation was recorded.
func (e ValidationErrors) HasErrors() bool {
	return len(e) > 0
}

// ConflictError reports a uniqueness violation on Field, detected either by
// the application-level pre-check or by a storage constraint rejection.
type ConflictError struct {
	Field string
	Value string
}

// Error implements the error interface.
func (e *ConflictError) Error() string {
	return fmt.Sprintf("a record with %s '%s' already exists", e.Field, e.Value)
}

// NewConflictError creates a ConflictError for the given unique field.
func NewConflictError(field, value string) *ConflictError {
	return &ConflictError{Field: field, Value: value}
}

// NotFoundError reports that an operation targeted a non-existent id.
type NotFoundError struct {
	Entity string
	ID     string
}

// Error implements the error interface.
func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s with id '%s' not found", e.Entity, e.ID)
}

// Unwrap lets errors.Is(err, ErrEntityNotFound) match.
func (e *NotFoundError) Unwrap() error {
	return ErrEntityNotFound
}

// NewNotFoundError creates a NotFoundError.
func NewNotFoundError(entity, id string) *NotFoundError {
	return &NotFoundError{Entity: entity, ID: id}
}

// StateTransitionError reports a mutation attempted from a disallowed state,
// or a delete blocked by referential usage. Message names the specific
// blocking condition so the caller knows the required precondition.
type StateTransitionError struct {
	Entity  string
	Message string
}

// Error implements the error interface.
func (e *StateTransitionError) Error() string {
	return fmt.Sprintf("%s: %s", e.Entity, e.Message)
}

// NewStateTransitionError creates a StateTransitionError.
func NewStateTransitionError(entity, message string) *StateTransitionError {
	return &StateTransitionError{Entity: entity, Message: message}
}

// InternalError wraps an unexpected failure from an external collaborator,
// typically the repository port. Detail is surfaced only outside production.
type InternalError struct {
	Op  string
	Err error
}

// Error implements the error interface.
func (e *InternalError) Error() string {
	return fmt.Sprintf("internal error in %s: %v", e.Op, e.Err)
}

// Unwrap implements error unwrapping for errors.Is and errors.As.
func (e *InternalError) Unwrap() error {
	return e.Err
}

// NewInternalError wraps err with the failing operation name.
func NewInternalError(op string, err error) *InternalError {
	return &InternalError{Op: op, Err: err}
}

// Helper predicates for common error checking.

// IsValidation reports whether err carries field-level violations.
func IsValidation(err error) bool {
	var single ValidationError
	var batch ValidationErrors
	return errors.As(err, &single) || errors.As(err, &batch)
}

// AsValidationErrors extracts the violation batch, if any.
func AsValidationErrors(err error) (ValidationErrors, bool) {
	var batch ValidationErrors
	if errors.As(err, &batch) {
		return batch, true
	}
	var single ValidationError
	if errors.As(err, &single) {
		return ValidationErrors{single}, true
	}
	return nil, false
}

// IsConflict reports whether err is a uniqueness conflict.
func IsConflict(err error) bool {
	var ce *ConflictError
	return errors.As(err, &ce)
}

// IsNotFound reports whether err indicates a missing entity.
func IsNotFound(err error) bool {
	return errors.Is(err, ErrEntityNotFound)
}

// IsStateTransition reports whether err is a lifecycle guard rejection.
func IsStateTransition(err error) bool {
	var ste *StateTransitionError
	return errors.As(err, &ste)
}

// IsInternal reports whether err is an unexpected infrastructure failure.
func IsInternal(err error) bool {
	var ie *InternalError
	return errors.As(err, &ie)
}
