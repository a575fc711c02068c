// Package apperror defines the application's error taxonomy.
//
// Services and the store return these typed errors; the HTTP layer maps them
// to status codes in one place with errors.Is/errors.As. Durability failures
// deliberately do NOT appear here: persistence errors are absorbed and
// logged by the store, never propagated to callers.
package apperror

import (
	"errors"
	"fmt"
)

var (
	ErrNotFound   = errors.New("not found")
	ErrValidation = errors.New("validation failed")
)

// AppError carries a human-readable message alongside the sentinel error it
// wraps, plus the offending field for validation failures.
type AppError struct {
	Err     error  // sentinel, checked with errors.Is
	Message string // human-readable description
	Field   string // optional: field causing the error
}

func (e *AppError) Error() string {
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// NotFound reports that no record with the given id exists.
func NotFound(resource, id string) *AppError {
	return &AppError{
		Err:     ErrNotFound,
		Message: fmt.Sprintf("%s not found with id %s", resource, id),
	}
}

// ValidationFailed reports invalid caller input on a specific field.
func ValidationFailed(field, message string) *AppError {
	return &AppError{
		Err:     ErrValidation,
		Message: message,
		Field:   field,
	}
}
