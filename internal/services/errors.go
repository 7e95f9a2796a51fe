package services

import (
	"errors"
	"strings"

	"hrm-api/internal/validation"
)

// Define common service errors
var (
	ErrNotFound           = errors.New("resource not found")
	ErrForbidden          = errors.New("forbidden")
	ErrConflict           = errors.New("conflict")
	ErrValidation         = errors.New("validation failed")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrUnauthorized       = errors.New("unauthorized")
)

// ValidationError carries the field-level problems found by a service.
// It matches ErrValidation with errors.Is.
type ValidationError struct {
	Fields []validation.FieldError
}

func fieldError(field, message string) validation.FieldError {
	return validation.FieldError{Field: field, Message: message}
}

func newValidationError(field, message string) *ValidationError {
	return &ValidationError{Fields: []validation.FieldError{fieldError(field, message)}}
}

func (e *ValidationError) Error() string {
	parts := make([]string, len(e.Fields))
	for i, f := range e.Fields {
		parts[i] = f.Field + ": " + f.Message
	}
	return ErrValidation.Error() + ": " + strings.Join(parts, "; ")
}

func (e *ValidationError) Unwrap() error { return ErrValidation }
