package apperr

import (
	"errors"
	"net/http"
)

// ValidationError indicates missing or malformed input.
type ValidationError struct {
	msg string
}

func NewValidationError(msg string) *ValidationError {
	return &ValidationError{msg}
}

func (e *ValidationError) Error() string { return e.msg }

// ConflictError indicates a uniqueness violation.
type ConflictError struct {
	msg string
}

func NewConflictError(msg string) *ConflictError {
	return &ConflictError{msg}
}

func (e *ConflictError) Error() string { return e.msg }

// NotFoundError indicates a referenced id is absent.
type NotFoundError struct {
	msg string
}

func NewNotFoundError(msg string) *NotFoundError {
	return &NotFoundError{msg}
}

func (e *NotFoundError) Error() string { return e.msg }

// AuthError indicates bad credentials.
type AuthError struct {
	msg string
}

func NewAuthError(msg string) *AuthError {
	return &AuthError{msg}
}

func (e *AuthError) Error() string { return e.msg }

// AccessDeniedError indicates a role mismatch on a protected resource.
type AccessDeniedError struct {
	msg string
}

func NewAccessDeniedError(msg string) *AccessDeniedError {
	return &AccessDeniedError{msg}
}

func (e *AccessDeniedError) Error() string { return e.msg }

func IsValidation(err error) bool {
	var e *ValidationError
	return errors.As(err, &e)
}

func IsConflict(err error) bool {
	var e *ConflictError
	return errors.As(err, &e)
}

func IsNotFound(err error) bool {
	var e *NotFoundError
	return errors.As(err, &e)
}

func IsAuth(err error) bool {
	var e *AuthError
	return errors.As(err, &e)
}

func IsAccessDenied(err error) bool {
	var e *AccessDeniedError
	return errors.As(err, &e)
}

// Status maps an error to the HTTP status the boundary should answer with.
func Status(err error) int {
	switch {
	case err == nil:
		return http.StatusOK
	case IsValidation(err):
		return http.StatusBadRequest
	case IsConflict(err):
		return http.StatusConflict
	case IsNotFound(err):
		return http.StatusNotFound
	case IsAuth(err):
		return http.StatusUnauthorized
	case IsAccessDenied(err):
		return http.StatusForbidden
	default:
		return http.StatusInternalServerError
	}
}
