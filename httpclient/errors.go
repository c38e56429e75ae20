package httpclient

import (
	"errors"
	"fmt"
)

// ErrorCode classifies HTTP client errors.
type ErrorCode int

const (
	// ErrCodeTimeout indicates a request or connection timeout.
	ErrCodeTimeout ErrorCode = iota
	// ErrCodeConnection indicates a connection failure (refused, DNS, etc).
	ErrCodeConnection
	// ErrCodeValidation indicates a client-side request construction error.
	ErrCodeValidation
	// ErrCodeStatus indicates a non-success HTTP status code.
	ErrCodeStatus
)

// String returns the error code name.
func (c ErrorCode) String() string {
	switch c {
	case ErrCodeTimeout:
		return "timeout"
	case ErrCodeConnection:
		return "connection"
	case ErrCodeValidation:
		return "validation"
	case ErrCodeStatus:
		return "status"
	default:
		return "unknown"
	}
}

// Error is a structured HTTP client error with classification.
type Error struct {
	// StatusCode is the HTTP status code (0 for connection-level errors).
	StatusCode int
	// Code classifies the error.
	Code ErrorCode
	// Message describes the error.
	Message string
	// Body is the original response body (may be nil).
	Body []byte
	// Err is the underlying error.
	Err error
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.StatusCode > 0 {
		return fmt.Sprintf("httpclient: %s (HTTP %d): %s", e.Code, e.StatusCode, e.Message)
	}
	return fmt.Sprintf("httpclient: %s: %s", e.Code, e.Message)
}

// Unwrap returns the underlying error.
func (e *Error) Unwrap() error {
	return e.Err
}

// NewTimeoutError creates a timeout error.
func NewTimeoutError(err error) *Error {
	return &Error{
		Code:    ErrCodeTimeout,
		Message: err.Error(),
		Err:     err,
	}
}

// NewConnectionError creates a connection error.
func NewConnectionError(err error) *Error {
	return &Error{
		Code:    ErrCodeConnection,
		Message: err.Error(),
		Err:     err,
	}
}

// NewValidationError creates a request construction error.
func NewValidationError(msg string) *Error {
	return &Error{
		Code:    ErrCodeValidation,
		Message: msg,
	}
}

// NewStatusError creates an error for a non-success HTTP status code.
// The response body is retained so callers can extract a service-specific message.
func NewStatusError(statusCode int, body []byte) *Error {
	return &Error{
		StatusCode: statusCode,
		Code:       ErrCodeStatus,
		Message:    fmt.Sprintf("HTTP %d", statusCode),
		Body:       body,
	}
}

// IsTimeout checks if an error is a timeout error.
func IsTimeout(err error) bool {
	var e *Error
	return errors.As(err, &e) && e.Code == ErrCodeTimeout
}

// IsConnection checks if an error is a connection error.
func IsConnection(err error) bool {
	var e *Error
	return errors.As(err, &e) && e.Code == ErrCodeConnection
}

// IsTransport checks if an error occurred before a response was received.
func IsTransport(err error) bool {
	var e *Error
	return errors.As(err, &e) && (e.Code == ErrCodeTimeout || e.Code == ErrCodeConnection)
}

// IsStatus checks if an error carries a non-success HTTP status code.
func IsStatus(err error) bool {
	var e *Error
	return errors.As(err, &e) && e.Code == ErrCodeStatus
}
