package api

import (
	"context"
	"net/http"
	"strings"

	cerrors "github.com/airiskcouncil/arcctl/internal/errors"
)

// ProfileInput is the editable slice of the member profile.
type ProfileInput struct {
	Name         string `json:"name"`
	Organisation string `json:"organisation,omitempty"`
}

// GetProfile returns the current member's profile.
func (c *Client) GetProfile(ctx context.Context) (*User, error) {
	var user User
	if err := c.doJSON(ctx, http.MethodGet, "/profile", nil, nil, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

// UpdateProfile updates the current member's profile and returns the
// refreshed user.
func (c *Client) UpdateProfile(ctx context.Context, in ProfileInput) (*User, error) {
	if strings.TrimSpace(in.Name) == "" {
		return nil, cerrors.NewValidationError("name", "Name is required.")
	}

	var user User
	if err := c.doJSON(ctx, http.MethodPut, "/profile", nil, in, &user); err != nil {
		return nil, err
	}
	return &user, nil
}
