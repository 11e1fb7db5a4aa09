package api

import (
	"context"
	"io"
	"net/http"
	"strings"

	cerrors "github.com/airiskcouncil/arcctl/internal/errors"
	"github.com/airiskcouncil/arcctl/internal/query"
)

// TeamMemberInput describes a team member create/update. Photo is
// optional; when present it is sent as a multipart file part.
type TeamMemberInput struct {
	Name      string
	Title     string
	Bio       string
	Order     string
	PhotoName string
	Photo     io.Reader
}

// ListTeam returns one page of team members, ordered for display.
func (c *Client) ListTeam(ctx context.Context, p query.Params) (query.Page[TeamMember], error) {
	return list[TeamMember](ctx, c, "/team", p)
}

// CreateTeamMember adds a team member (admin only).
func (c *Client) CreateTeamMember(ctx context.Context, in TeamMemberInput) (*TeamMember, error) {
	if strings.TrimSpace(in.Name) == "" {
		return nil, cerrors.NewValidationError("name", "Name is required.")
	}

	var member TeamMember
	fields := map[string]string{
		"name":  in.Name,
		"title": in.Title,
		"bio":   in.Bio,
		"order": in.Order,
	}
	if err := c.doMultipart(ctx, http.MethodPost, "/admin/team", fields, "photo", in.PhotoName, in.Photo, &member); err != nil {
		return nil, err
	}
	return &member, nil
}

// UpdateTeamMember updates a team member (admin only).
func (c *Client) UpdateTeamMember(ctx context.Context, id string, in TeamMemberInput) (*TeamMember, error) {
	var member TeamMember
	fields := map[string]string{
		"name":  in.Name,
		"title": in.Title,
		"bio":   in.Bio,
		"order": in.Order,
	}
	if err := c.doMultipart(ctx, http.MethodPut, "/admin/team/"+id, fields, "photo", in.PhotoName, in.Photo, &member); err != nil {
		return nil, err
	}
	return &member, nil
}

// DeleteTeamMember removes a team member (admin only).
func (c *Client) DeleteTeamMember(ctx context.Context, id string) error {
	return c.doJSON(ctx, http.MethodDelete, "/admin/team/"+id, nil, nil, nil)
}
