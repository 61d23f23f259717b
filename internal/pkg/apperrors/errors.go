package apperrors

import (
	"errors"
	"fmt"
	"net/http"
)

// Common errors
var (
	// Backend call errors
	ErrTransport      = errors.New("backend unreachable")
	ErrUpstreamStatus = errors.New("backend returned an error status")
	ErrDecode         = errors.New("unexpected backend response")

	// Session errors
	ErrUnauthenticated = errors.New("not signed in")
	ErrInvalidSession  = errors.New("invalid session cookie")

	// Validation errors
	ErrValidationFailed = errors.New("validation failed")
	ErrBadRequest       = errors.New("bad request")

	// Resource errors
	ErrResourceNotFound = errors.New("resource not found")
)

// APIError describes a non-2xx answer from the backend. The body is kept
// as-is and Message holds whatever human-readable text could be decoded from it.
type APIError struct {
	Method     string
	Path       string
	StatusCode int
	Message    string
	Body       []byte
}

// Error implements error interface
func (e *APIError) Error() string {
	msg := e.Message
	if msg == "" {
		msg = http.StatusText(e.StatusCode)
	}
	return fmt.Sprintf("%s %s: %d %s", e.Method, e.Path, e.StatusCode, msg)
}

// Unwrap lets errors.Is match ErrUpstreamStatus, and the more specific
// sentinels for statuses the pages care about.
func (e *APIError) Unwrap() []error {
	errs := []error{ErrUpstreamStatus}
	switch e.StatusCode {
	case http.StatusUnauthorized, http.StatusForbidden:
		errs = append(errs, ErrUnauthenticated)
	case http.StatusNotFound:
		errs = append(errs, ErrResourceNotFound)
	case http.StatusBadRequest, http.StatusUnprocessableEntity:
		errs = append(errs, ErrBadRequest)
	}
	return errs
}

// StatusCode returns the backend status carried by err, or 0 when err did not
// come from a backend response.
func StatusCode(err error) int {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr.StatusCode
	}
	return 0
}

// Is returns whether target matches any of the errors in errList
func Is(err, target error, errList ...error) bool {
	if errors.Is(err, target) {
		return true
	}

	for _, e := range errList {
		if errors.Is(err, e) {
			return true
		}
	}

	return false
}

// CustomError represents application-specific errors with additional context
type CustomError struct {
	Err     error
	Message string
	Field   string
}

// Error implements error interface
func (e *CustomError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	if e.Err != nil {
		return e.Err.Error()
	}
	return "unknown error"
}

// Unwrap implements errors.Unwrap interface
func (e *CustomError) Unwrap() error {
	return e.Err
}

// NewValidationError reports an invalid form field
func NewValidationError(field, message string) *CustomError {
	return &CustomError{
		Err:     ErrValidationFailed,
		Message: message,
		Field:   field,
	}
}

// NewBadRequestError creates a new custom error for bad request with a message
func NewBadRequestError(message string) error {
	return &CustomError{
		Err:     ErrBadRequest,
		Message: message,
	}
}
