package errors

import (
	"errors"
	"fmt"
	"strings"
	"testing"
)

func TestNew(t *testing.T) {
	err := New(ErrCodeRequestFailed, "test error message")

	if err.Code != ErrCodeRequestFailed {
		t.Errorf("expected code %s, got %s", ErrCodeRequestFailed, err.Code)
	}

	if err.Message != "test error message" {
		t.Errorf("expected message 'test error message', got '%s'", err.Message)
	}

	if err.Cause != nil {
		t.Errorf("expected nil cause, got %v", err.Cause)
	}
}

func TestWrap(t *testing.T) {
	cause := fmt.Errorf("underlying error")
	err := Wrap(ErrCodeFileReadFailed, "failed to read file", cause)

	if err.Code != ErrCodeFileReadFailed {
		t.Errorf("expected code %s, got %s", ErrCodeFileReadFailed, err.Code)
	}

	if err.Cause != cause {
		t.Errorf("expected cause to be set")
	}

	if !errors.Is(err, cause) {
		t.Errorf("expected errors.Is to find the cause")
	}
}

func TestErrorFormat(t *testing.T) {
	err := New(ErrCodeSessionExpired, "your session has expired").
		WithSuggestion("Run 'arcctl auth login' to sign in again").
		WithDocs("https://example.com/docs")

	msg := err.Error()

	if !strings.Contains(msg, "[AUTH-001]") {
		t.Errorf("expected error code in message, got: %s", msg)
	}
	if !strings.Contains(msg, "your session has expired") {
		t.Errorf("expected message text, got: %s", msg)
	}
	if !strings.Contains(msg, "Suggestions:") {
		t.Errorf("expected suggestions section, got: %s", msg)
	}
	if !strings.Contains(msg, "https://example.com/docs") {
		t.Errorf("expected docs URL, got: %s", msg)
	}
}

func TestErrorFormatWithCause(t *testing.T) {
	cause := fmt.Errorf("connection refused")
	err := Wrap(ErrCodeNetwork, "network failure", cause)

	msg := err.Error()
	if !strings.Contains(msg, "connection refused") {
		t.Errorf("expected cause in message, got: %s", msg)
	}
}

func TestWithSuggestions(t *testing.T) {
	err := New(ErrCodeConfigInvalid, "bad config").
		WithSuggestions("first", "second", "third")

	if len(err.Suggestions) != 3 {
		t.Errorf("expected 3 suggestions, got %d", len(err.Suggestions))
	}
}

func TestNewNetworkError(t *testing.T) {
	cause := fmt.Errorf("dial tcp: connection refused")
	err := NewNetworkError(cause)

	if err.Code != ErrCodeNetwork {
		t.Errorf("expected code %s, got %s", ErrCodeNetwork, err.Code)
	}

	// The user-facing message is fixed regardless of cause.
	if err.Message != "Network error. Please check your connection and try again." {
		t.Errorf("unexpected network error message: %s", err.Message)
	}

	if !errors.Is(err, cause) {
		t.Errorf("expected cause chain to be preserved")
	}
}

func TestNewSessionExpiredError(t *testing.T) {
	err := NewSessionExpiredError()

	if err.Code != ErrCodeSessionExpired {
		t.Errorf("expected code %s, got %s", ErrCodeSessionExpired, err.Code)
	}
	if len(err.Suggestions) == 0 {
		t.Errorf("expected a recovery suggestion")
	}
}

func TestNewForbiddenError(t *testing.T) {
	err := NewForbiddenError("download framework")

	if err.Code != ErrCodeForbidden {
		t.Errorf("expected code %s, got %s", ErrCodeForbidden, err.Code)
	}
	if !strings.Contains(err.Message, "download framework") {
		t.Errorf("expected action in message, got: %s", err.Message)
	}
}

func TestIsCode(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		code     ErrorCode
		expected bool
	}{
		{"matching code", New(ErrCodeNetwork, "net"), ErrCodeNetwork, true},
		{"different code", New(ErrCodeNetwork, "net"), ErrCodeForbidden, false},
		{"plain error", fmt.Errorf("plain"), ErrCodeNetwork, false},
		{"nil error", nil, ErrCodeNetwork, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsCode(tt.err, tt.code); got != tt.expected {
				t.Errorf("IsCode() = %v, expected %v", got, tt.expected)
			}
		})
	}
}
