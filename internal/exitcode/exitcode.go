package exitcode

import (
	"os"

	"github.com/airiskcouncil/arcctl/internal/errors"
)

// Exit codes for consistent error handling across the CLI
const (
	// Success indicates successful execution
	Success = 0

	// GeneralError indicates a general error condition
	GeneralError = 1

	// UsageError indicates invalid command usage (bad flags, missing args, etc.)
	UsageError = 2

	// AuthError indicates a missing, expired, or rejected session
	AuthError = 3

	// ForbiddenError indicates the member's role does not permit the action
	ForbiddenError = 4

	// ValidationError indicates the input was rejected before or by the API
	ValidationError = 5

	// NetworkError indicates a network connectivity issue
	NetworkError = 6

	// Interrupted indicates the run was cancelled by a signal
	Interrupted = 130
)

// Exit terminates the program with the given exit code
func Exit(code int) {
	os.Exit(code)
}

// ExitWithError exits with an appropriate code based on error type
func ExitWithError(err error) {
	Exit(DetermineExitCode(err))
}

// DetermineExitCode maps an error to an exit code by its error code.
// Errors without a code fall back to GeneralError.
func DetermineExitCode(err error) int {
	if err == nil {
		return Success
	}

	ce, ok := errors.FromError(err)
	if !ok {
		return GeneralError
	}

	switch ce.Code {
	case errors.ErrCodeNetwork, errors.ErrCodeRequestTimeout:
		return NetworkError
	case errors.ErrCodeSessionExpired, errors.ErrCodePendingApproval, errors.ErrCodeNotLoggedIn:
		return AuthError
	case errors.ErrCodeForbidden:
		return ForbiddenError
	case errors.ErrCodeValidation:
		return ValidationError
	case errors.ErrCodeConfigNotFound, errors.ErrCodeConfigInvalid:
		return UsageError
	default:
		return GeneralError
	}
}

// Description returns a human-readable description of an exit code
func Description(code int) string {
	switch code {
	case Success:
		return "Success"
	case GeneralError:
		return "General error"
	case UsageError:
		return "Usage error (invalid flags, arguments, or configuration)"
	case AuthError:
		return "Authentication error"
	case ForbiddenError:
		return "Action not permitted for your membership role"
	case ValidationError:
		return "Validation error"
	case NetworkError:
		return "Network error"
	case Interrupted:
		return "Interrupted"
	default:
		return "Unknown error"
	}
}
