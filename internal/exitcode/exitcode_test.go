package exitcode

import (
	stderrors "errors"
	"fmt"
	"testing"

	"github.com/airiskcouncil/arcctl/internal/errors"
)

func TestExitCodes(t *testing.T) {
	tests := []struct {
		name     string
		code     int
		expected int
	}{
		{"Success", Success, 0},
		{"GeneralError", GeneralError, 1},
		{"UsageError", UsageError, 2},
		{"AuthError", AuthError, 3},
		{"ForbiddenError", ForbiddenError, 4},
		{"ValidationError", ValidationError, 5},
		{"NetworkError", NetworkError, 6},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.code != tt.expected {
				t.Errorf("Exit code %s = %d, want %d", tt.name, tt.code, tt.expected)
			}
		})
	}
}

func TestDetermineExitCode(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected int
	}{
		{
			name:     "nil error returns success",
			err:      nil,
			expected: Success,
		},
		{
			name:     "network failure",
			err:      errors.NewNetworkError(stderrors.New("dial tcp: connection refused")),
			expected: NetworkError,
		},
		{
			name:     "request timeout",
			err:      errors.New(errors.ErrCodeRequestTimeout, "request timed out"),
			expected: NetworkError,
		},
		{
			name:     "session expired",
			err:      errors.NewSessionExpiredError(),
			expected: AuthError,
		},
		{
			name:     "not logged in",
			err:      errors.NewNotLoggedInError(),
			expected: AuthError,
		},
		{
			name:     "pending approval",
			err:      errors.New(errors.ErrCodePendingApproval, "account awaiting approval"),
			expected: AuthError,
		},
		{
			name:     "forbidden action",
			err:      errors.NewForbiddenError("upload whitepaper"),
			expected: ForbiddenError,
		},
		{
			name:     "validation failure",
			err:      errors.NewValidationError("password", "Password must be at least 8 characters."),
			expected: ValidationError,
		},
		{
			name:     "invalid config",
			err:      errors.NewConfigInvalidError("/tmp/config.yaml", nil),
			expected: UsageError,
		},
		{
			name:     "wrapped council error still classified",
			err:      fmt.Errorf("running command: %w", errors.NewForbiddenError("manage users")),
			expected: ForbiddenError,
		},
		{
			name:     "uncoded error falls back to general",
			err:      stderrors.New("something broke"),
			expected: GeneralError,
		},
		{
			name:     "uncategorised code falls back to general",
			err:      errors.New(errors.ErrCodeUnexpectedData, "malformed payload"),
			expected: GeneralError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := DetermineExitCode(tt.err); got != tt.expected {
				t.Errorf("DetermineExitCode() = %d, want %d", got, tt.expected)
			}
		})
	}
}

func TestDescription(t *testing.T) {
	tests := []struct {
		code int
		want string
	}{
		{Success, "Success"},
		{GeneralError, "General error"},
		{NetworkError, "Network error"},
		{99, "Unknown error"},
	}

	for _, tt := range tests {
		if got := Description(tt.code); got != tt.want {
			t.Errorf("Description(%d) = %q, want %q", tt.code, got, tt.want)
		}
	}
}
