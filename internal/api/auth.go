package api

import (
	"context"
	"net/http"
	"net/mail"
	"strings"

	cerrors "github.com/airiskcouncil/arcctl/internal/errors"
)

// minPasswordLength is enforced client-side before any network call.
const minPasswordLength = 8

// loginRequest is the credential exchange payload.
type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// RegisterInput is the account creation payload.
type RegisterInput struct {
	Name         string     `json:"name"`
	Email        string     `json:"email"`
	Password     string     `json:"password"`
	Organisation string     `json:"organisation,omitempty"`
	Role         string     `json:"role,omitempty"`
}

// validateCredentials rejects malformed credentials before any request is
// issued, mirroring the login form's field validation.
func validateCredentials(email, password string) error {
	if strings.TrimSpace(email) == "" {
		return cerrors.NewValidationError("email", "Email is required.")
	}
	if _, err := mail.ParseAddress(email); err != nil {
		return cerrors.NewValidationError("email", "Please enter a valid email address.")
	}
	if password == "" {
		return cerrors.NewValidationError("password", "Password is required.")
	}
	if len(password) < minPasswordLength {
		return cerrors.NewValidationError("password", "Password must be at least 8 characters.")
	}
	return nil
}

// Login exchanges credentials for a server-side session. On success the
// session cookie lands in the client's jar; the returned user reflects the
// authenticated account. A 401 carrying a pending-approval message is
// surfaced as its own error code so callers can render a dedicated warning.
func (c *Client) Login(ctx context.Context, email, password string) (*User, error) {
	if err := validateCredentials(email, password); err != nil {
		return nil, err
	}

	var user User
	err := c.doJSON(ctx, http.MethodPost, "/auth/login", nil, loginRequest{Email: email, Password: password}, &user)
	if err != nil {
		if apiErr, ok := asAPIError(err); ok && apiErr.Status == http.StatusUnauthorized {
			if strings.Contains(strings.ToLower(apiErr.Message), "pending approval") {
				return nil, cerrors.New(cerrors.ErrCodePendingApproval, apiErr.Message).
					WithSuggestion("Your account is awaiting review; you will be notified by email")
			}
			msg := apiErr.Message
			if msg == "" {
				msg = "Invalid email or password."
			}
			return nil, cerrors.New(cerrors.ErrCodeRequestFailed, msg)
		}
		return nil, err
	}

	return &user, nil
}

// Register creates a new membership account. Depending on the requested
// role the account may enter a pending-approval state rather than an
// active session.
func (c *Client) Register(ctx context.Context, in RegisterInput) (*User, error) {
	if strings.TrimSpace(in.Name) == "" {
		return nil, cerrors.NewValidationError("name", "Name is required.")
	}
	if err := validateCredentials(in.Email, in.Password); err != nil {
		return nil, err
	}

	var user User
	if err := c.doJSON(ctx, http.MethodPost, "/auth/register", nil, in, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

// Logout ends the server-side session. Callers treat failures as
// best-effort; the cookie may already be gone.
func (c *Client) Logout(ctx context.Context) error {
	return c.doJSON(ctx, http.MethodPost, "/auth/logout", nil, nil, nil)
}

// Me returns the user bound to the current session cookie. Anonymous
// callers receive a 401, which surfaces as an API error, not a session
// invalidation.
func (c *Client) Me(ctx context.Context) (*User, error) {
	var user User
	if err := c.doJSON(ctx, http.MethodGet, "/auth/me", nil, nil, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

// asAPIError unwraps err to an *Error if it is one.
func asAPIError(err error) (*Error, bool) {
	apiErr, ok := err.(*Error)
	return apiErr, ok
}
