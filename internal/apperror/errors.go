// Package apperror defines the error kinds the service surfaces to its
// callers. Every failure is one of these three kinds or a raw storage
// error; the handler layer maps them to HTTP status codes.
package apperror

import (
	"fmt"
	"strings"
)

// ValidationError reports malformed or out-of-range input. It carries
// every violated rule so the caller sees all problems in one response.
type ValidationError struct {
	Violations []string
}

func NewValidation(violations ...string) *ValidationError {
	return &ValidationError{Violations: violations}
}

func (e *ValidationError) Error() string {
	return strings.Join(e.Violations, "; ")
}

// NotFoundError reports that a referenced entity id does not exist.
type NotFoundError struct {
	Resource string
	ID       uint
}

func NewNotFound(resource string, id uint) *NotFoundError {
	return &NotFoundError{Resource: resource, ID: id}
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s %d not found", e.Resource, e.ID)
}

// ConflictError reports an invariant violation caused by existing state,
// such as reassigning a property's owner or reusing an internal code.
type ConflictError struct {
	Message string
}

func NewConflict(message string) *ConflictError {
	return &ConflictError{Message: message}
}

func (e *ConflictError) Error() string {
	return e.Message
}
