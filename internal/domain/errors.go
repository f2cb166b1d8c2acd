package domain

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrNotFound signals a missing listing.
	ErrNotFound = errors.New("listing not found")
	// ErrUserNotFound signals a missing user.
	ErrUserNotFound = errors.New("user not found")
	// ErrEmailTaken signals a registration with an already-used email.
	ErrEmailTaken = errors.New("email already registered")
	// ErrInvalidCredentials signals a failed login.
	ErrInvalidCredentials = errors.New("invalid credentials")
	// ErrUnauthorized signals a missing, invalid, or expired credential.
	ErrUnauthorized = errors.New("unauthorized")
	// ErrForbidden signals a valid credential lacking the required permission.
	ErrForbidden = errors.New("forbidden")
	// ErrValidation signals structurally invalid or constraint-violating input.
	ErrValidation = errors.New("validation failed")
	// ErrEmptyModelResponse signals an empty or absent text-model response.
	ErrEmptyModelResponse = errors.New("empty model response")
	// ErrMalformedFilter signals model output that could not be parsed as a filter.
	ErrMalformedFilter = errors.New("malformed filter")
	// ErrModelProviderError signals a text-model provider failure.
	ErrModelProviderError = errors.New("model provider error")
)

// ValidationError wraps ErrValidation with the offending field names.
type ValidationError struct {
	Fields []string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", ErrValidation.Error(), strings.Join(e.Fields, ", "))
}

func (e *ValidationError) Unwrap() error { return ErrValidation }

// NewValidationError creates a validation error for the given fields.
func NewValidationError(fields ...string) error {
	return &ValidationError{Fields: fields}
}
