package consul

import (
	"errors"
	"fmt"
)

// errorKind classifies the failure stage inside the request pipeline.
type errorKind int

const (
	kindTransport errorKind = iota
	kindDecode
	kindStatus
	kindInvalid
)

func (k errorKind) String() string {
	switch k {
	case kindTransport:
		return "transport"
	case kindDecode:
		return "decode"
	case kindStatus:
		return "status"
	case kindInvalid:
		return "invalid"
	default:
		return "unknown"
	}
}

// Error is the single error representation returned by every client
// operation. Raw transport and JSON-decode errors never cross the
// operation boundary; they appear here as Cause.
type Error struct {
	// Op names the failing operation ("service", "create-key", ...).
	Op string
	// StatusCode is the HTTP status code for application errors, 0 otherwise.
	// Informational only; Message already carries the server's error text.
	StatusCode int
	// Message describes the failure. For transport and decode failures it is
	// the underlying error text; for application errors it is the message
	// extracted from Consul's error payload or response body.
	Message string
	// Cause is the underlying error detail, when one exists.
	Cause error

	kind errorKind
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.Op != "" {
		return fmt.Sprintf("consul: %s: %s", e.Op, e.Message)
	}
	return fmt.Sprintf("consul: %s", e.Message)
}

// Unwrap returns the underlying cause.
func (e *Error) Unwrap() error {
	return e.Cause
}

func newTransportError(op string, cause error, message string) *Error {
	return &Error{Op: op, Message: message, Cause: cause, kind: kindTransport}
}

func newDecodeError(op string, cause error) *Error {
	return &Error{Op: op, Message: cause.Error(), Cause: cause, kind: kindDecode}
}

func newStatusError(op string, statusCode int, message string, cause error) *Error {
	return &Error{Op: op, StatusCode: statusCode, Message: message, Cause: cause, kind: kindStatus}
}

func newInvalidError(op string, cause error) *Error {
	return &Error{Op: op, Message: cause.Error(), Cause: cause, kind: kindInvalid}
}

// AsError extracts a *Error from an error chain.
func AsError(err error) (*Error, bool) {
	var e *Error
	ok := errors.As(err, &e)
	return e, ok
}

// IsTransport reports whether the error is a transport failure
// (connection refused, DNS, timeout).
func IsTransport(err error) bool {
	e, ok := AsError(err)
	return ok && e.kind == kindTransport
}

// IsDecode reports whether the error is a response decoding failure.
func IsDecode(err error) bool {
	e, ok := AsError(err)
	return ok && e.kind == kindDecode
}

// IsStatus reports whether the error reflects a non-success HTTP status
// returned by Consul.
func IsStatus(err error) bool {
	e, ok := AsError(err)
	return ok && e.kind == kindStatus
}

// IsInvalid reports whether the error is a client-side payload rejection
// (the request was never sent).
func IsInvalid(err error) bool {
	e, ok := AsError(err)
	return ok && e.kind == kindInvalid
}
