package apperror

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
)

// ErrNotFound is the sentinel every NotFoundError matches with errors.Is.
var ErrNotFound = errors.New("record not found")

// ValidationError carries every violated rule of a rejected write, in the
// order the rules ran.
type ValidationError struct {
	Messages []string
}

func (e *ValidationError) Error() string {
	return "validation failed: " + strings.Join(e.Messages, ", ")
}

// NewValidation builds a ValidationError from one or more messages.
func NewValidation(messages ...string) *ValidationError {
	return &ValidationError{Messages: messages}
}

// NotFoundError reports a lookup by identifier that found nothing.
type NotFoundError struct {
	Entity string
}

func (e *NotFoundError) Error() string {
	return strings.ToLower(e.Entity) + " not found"
}

// Is makes errors.Is(err, ErrNotFound) true for any NotFoundError.
func (e *NotFoundError) Is(target error) bool {
	return target == ErrNotFound
}

// NotFound returns a NotFoundError for the given entity name.
func NotFound(entity string) *NotFoundError {
	return &NotFoundError{Entity: entity}
}

// ConstraintError is a write rejected by the storage layer
// (foreign key, restrict-on-delete).
type ConstraintError struct {
	Message string
	Err     error
}

func (e *ConstraintError) Error() string {
	if e.Err == nil {
		return e.Message
	}
	return fmt.Sprintf("%s: %v", e.Message, e.Err)
}

func (e *ConstraintError) Unwrap() error {
	return e.Err
}

// NewConstraint wraps err as a ConstraintError.
func NewConstraint(message string, err error) *ConstraintError {
	return &ConstraintError{Message: message, Err: err}
}

// HTTPStatus maps an error of this taxonomy to an HTTP status code.
func HTTPStatus(err error) int {
	var (
		verr *ValidationError
		cerr *ConstraintError
	)

	switch {
	case err == nil:
		return http.StatusOK
	case errors.As(err, &verr):
		return http.StatusUnprocessableEntity
	case errors.Is(err, ErrNotFound):
		return http.StatusNotFound
	case errors.As(err, &cerr):
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}
