package httpclient

import (
	"errors"
	"fmt"
	"testing"
)

func TestErrorCode_String(t *testing.T) {
	tests := []struct {
		code ErrorCode
		want string
	}{
		{ErrCodeTimeout, "timeout"},
		{ErrCodeConnection, "connection"},
		{ErrCodeValidation, "validation"},
		{ErrCodeStatus, "status"},
		{ErrorCode(99), "unknown"},
	}
	for _, tt := range tests {
		if got := tt.code.String(); got != tt.want {
			t.Errorf("ErrorCode(%d).String() = %q, want %q", tt.code, got, tt.want)
		}
	}
}

func TestError_Error(t *testing.T) {
	e := NewStatusError(500, []byte("boom"))
	want := "httpclient: status (HTTP 500): HTTP 500"
	if e.Error() != want {
		t.Errorf("expected %q, got %q", want, e.Error())
	}

	conn := NewConnectionError(fmt.Errorf("dial tcp: connection refused"))
	if conn.StatusCode != 0 {
		t.Errorf("expected no status code, got %d", conn.StatusCode)
	}
	if got := conn.Error(); got != "httpclient: connection: dial tcp: connection refused" {
		t.Errorf("unexpected error string: %q", got)
	}
}

func TestError_Unwrap(t *testing.T) {
	cause := fmt.Errorf("underlying")
	e := NewTimeoutError(cause)
	if !errors.Is(e, cause) {
		t.Error("expected errors.Is to find the cause")
	}
}

func TestStatusError_KeepsBody(t *testing.T) {
	e := NewStatusError(403, []byte("Permission denied"))
	if string(e.Body) != "Permission denied" {
		t.Errorf("expected body retained, got %q", string(e.Body))
	}
}

func TestPredicates(t *testing.T) {
	timeout := NewTimeoutError(fmt.Errorf("deadline exceeded"))
	conn := NewConnectionError(fmt.Errorf("refused"))
	status := NewStatusError(404, nil)
	validation := NewValidationError("bad method")

	if !IsTimeout(timeout) || IsTimeout(conn) {
		t.Error("IsTimeout misclassified")
	}
	if !IsConnection(conn) || IsConnection(status) {
		t.Error("IsConnection misclassified")
	}
	if !IsTransport(timeout) || !IsTransport(conn) || IsTransport(status) || IsTransport(validation) {
		t.Error("IsTransport misclassified")
	}
	if !IsStatus(status) || IsStatus(conn) {
		t.Error("IsStatus misclassified")
	}
	if IsStatus(nil) || IsTransport(fmt.Errorf("plain")) {
		t.Error("predicates should reject non-classified errors")
	}
}

func TestPredicates_WrappedError(t *testing.T) {
	inner := NewStatusError(500, []byte("x"))
	wrapped := fmt.Errorf("operation failed: %w", inner)
	if !IsStatus(wrapped) {
		t.Error("expected IsStatus to see through wrapping")
	}
}
