package api

import (
	"errors"
	"fmt"
	"net/http"

	cerrors "github.com/airiskcouncil/arcctl/internal/errors"
)

// FallbackMessage is shown when the server provides no usable message.
const FallbackMessage = "Something went wrong. Please try again."

// Error is an HTTP error response from the API: the status code plus the
// server-provided message. 403/422/5xx responses surface as this type so
// each caller decides how to present them.
type Error struct {
	Status  int
	Message string
}

func (e *Error) Error() string {
	if e.Message != "" {
		return e.Message
	}
	return fmt.Sprintf("request failed with status %d", e.Status)
}

// StatusOf returns the HTTP status carried by err, or 0 if err is not an
// API error.
func StatusOf(err error) int {
	var apiErr *Error
	if errors.As(err, &apiErr) {
		return apiErr.Status
	}
	return 0
}

// IsForbidden reports whether err is an HTTP 403, commonly presented as
// an upgrade prompt rather than a failure.
func IsForbidden(err error) bool {
	return StatusOf(err) == http.StatusForbidden
}

// IsCancelled reports whether err is a superseded/abandoned request.
func IsCancelled(err error) bool {
	return cerrors.IsCode(err, cerrors.ErrCodeRequestCancelled)
}

// ErrorMessage extracts the human-readable message for err per the error
// taxonomy: network failures and session expiry already carry their fixed
// messages, API errors use the server text, and everything else falls back
// to a generic message.
func ErrorMessage(err error) string {
	if err == nil {
		return ""
	}

	var apiErr *Error
	if errors.As(err, &apiErr) {
		if apiErr.Message != "" {
			return apiErr.Message
		}
		return FallbackMessage
	}

	var ce *cerrors.CouncilError
	if errors.As(err, &ce) {
		return ce.Message
	}

	return FallbackMessage
}
