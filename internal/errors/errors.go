package errors

import (
	"errors"
	"fmt"
	"strings"
)

// ErrorCode represents a unique error identifier
type ErrorCode string

// Error categories
const (
	// Network errors (NET-001 to NET-099)
	ErrCodeNetwork        ErrorCode = "NET-001"
	ErrCodeRequestTimeout ErrorCode = "NET-002"

	// Authentication errors (AUTH-001 to AUTH-099)
	ErrCodeSessionExpired  ErrorCode = "AUTH-001"
	ErrCodePendingApproval ErrorCode = "AUTH-002"
	ErrCodeForbidden       ErrorCode = "AUTH-003"
	ErrCodeNotLoggedIn     ErrorCode = "AUTH-004"

	// API errors (API-001 to API-099)
	ErrCodeRequestFailed    ErrorCode = "API-001"
	ErrCodeValidation       ErrorCode = "API-002"
	ErrCodeServerError      ErrorCode = "API-003"
	ErrCodeUnexpectedData   ErrorCode = "API-004"
	ErrCodeRequestCancelled ErrorCode = "API-005"

	// Configuration errors (CONFIG-001 to CONFIG-099)
	ErrCodeConfigNotFound ErrorCode = "CONFIG-001"
	ErrCodeConfigInvalid  ErrorCode = "CONFIG-002"

	// File I/O errors (IO-001 to IO-099)
	ErrCodeFileNotFound    ErrorCode = "IO-001"
	ErrCodeFileReadFailed  ErrorCode = "IO-002"
	ErrCodeFileWriteFailed ErrorCode = "IO-003"

	// Contract errors (CONTRACT-001 to CONTRACT-099)
	ErrCodeContractInvalid ErrorCode = "CONTRACT-001"
)

// CouncilError represents an enhanced error with code, suggestions, and documentation
type CouncilError struct {
	Code        ErrorCode
	Message     string
	Suggestions []string
	DocsURL     string
	Cause       error
}

// Error implements the error interface
func (e *CouncilError) Error() string {
	var b strings.Builder

	// Error code and message
	b.WriteString(fmt.Sprintf("[%s] %s", e.Code, e.Message))

	// Add cause if present
	if e.Cause != nil {
		b.WriteString(fmt.Sprintf(": %v", e.Cause))
	}

	// Add suggestions
	if len(e.Suggestions) > 0 {
		b.WriteString("\n\nSuggestions:")
		for _, suggestion := range e.Suggestions {
			b.WriteString(fmt.Sprintf("\n  • %s", suggestion))
		}
	}

	// Add documentation link
	if e.DocsURL != "" {
		b.WriteString(fmt.Sprintf("\n\nDocumentation: %s", e.DocsURL))
	}

	return b.String()
}

// Unwrap implements error unwrapping for errors.Is and errors.As
func (e *CouncilError) Unwrap() error {
	return e.Cause
}

// New creates a new CouncilError
func New(code ErrorCode, message string) *CouncilError {
	return &CouncilError{
		Code:    code,
		Message: message,
	}
}

// Wrap creates a new CouncilError wrapping an existing error
func Wrap(code ErrorCode, message string, cause error) *CouncilError {
	return &CouncilError{
		Code:    code,
		Message: message,
		Cause:   cause,
	}
}

// WithSuggestion adds a suggestion to the error
func (e *CouncilError) WithSuggestion(suggestion string) *CouncilError {
	e.Suggestions = append(e.Suggestions, suggestion)
	return e
}

// WithSuggestions adds multiple suggestions to the error
func (e *CouncilError) WithSuggestions(suggestions ...string) *CouncilError {
	e.Suggestions = append(e.Suggestions, suggestions...)
	return e
}

// WithDocs adds a documentation URL to the error
func (e *CouncilError) WithDocs(url string) *CouncilError {
	e.DocsURL = url
	return e
}

// Common error constructors for frequently used errors

// NewNetworkError creates the uniform network failure error.
// All transport-level failures (dial, timeout, connection reset) collapse
// into this single message; callers cannot distinguish them further.
func NewNetworkError(cause error) *CouncilError {
	return Wrap(ErrCodeNetwork, "Network error. Please check your connection and try again.", cause).
		WithSuggestion("Check your internet connection").
		WithSuggestion("Run 'arcctl doctor' to verify the API is reachable")
}

// NewSessionExpiredError creates a session invalidation error
func NewSessionExpiredError() *CouncilError {
	return New(ErrCodeSessionExpired, "your session has expired").
		WithSuggestion("Run 'arcctl auth login' to sign in again")
}

// NewNotLoggedInError creates an error for commands that require a session
func NewNotLoggedInError() *CouncilError {
	return New(ErrCodeNotLoggedIn, "you are not logged in").
		WithSuggestion("Run 'arcctl auth login' to sign in").
		WithSuggestion("Run 'arcctl auth register' to create an account")
}

// NewForbiddenError creates an insufficient-role error
func NewForbiddenError(action string) *CouncilError {
	return New(ErrCodeForbidden, fmt.Sprintf("your membership does not allow this action: %s", action)).
		WithSuggestion("Upgrade your membership to unlock this feature").
		WithSuggestion("Run 'arcctl auth status' to see your current role")
}

// NewValidationError creates a client-side validation error for a named field
func NewValidationError(field, message string) *CouncilError {
	return New(ErrCodeValidation, message).
		WithSuggestion(fmt.Sprintf("Fix the '%s' field and try again", field))
}

// NewConfigInvalidError creates a config parse error
func NewConfigInvalidError(path string, cause error) *CouncilError {
	return Wrap(ErrCodeConfigInvalid, fmt.Sprintf("invalid configuration file: %s", path), cause).
		WithSuggestion("Fix the YAML syntax or delete the file to regenerate defaults")
}

// FromError finds the first CouncilError in err's chain.
func FromError(err error) (*CouncilError, bool) {
	var ce *CouncilError
	if errors.As(err, &ce) {
		return ce, true
	}
	return nil, false
}

// IsCode reports whether err carries the given error code.
func IsCode(err error, code ErrorCode) bool {
	ce, ok := FromError(err)
	return ok && ce.Code == code
}
