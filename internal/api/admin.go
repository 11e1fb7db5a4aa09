package api

import (
	"context"
	"net/http"

	"github.com/airiskcouncil/arcctl/internal/authz"
	"github.com/airiskcouncil/arcctl/internal/query"
)

// EventInput is the admin create/update payload for events.
type EventInput struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Category    string `json:"category"`
	Location    string `json:"location"`
	StartsAt    string `json:"starts_at"`
	EndsAt      string `json:"ends_at"`
	Capacity    int    `json:"capacity"`
}

// NewsInput is the admin create/update payload for news articles.
type NewsInput struct {
	Title    string `json:"title"`
	Summary  string `json:"summary"`
	Body     string `json:"body"`
	Category string `json:"category"`
}

// ListUsers returns one page of member accounts (admin only). Supported
// filters: status (pending/approved) and role.
func (c *Client) ListUsers(ctx context.Context, p query.Params) (query.Page[User], error) {
	return list[User](ctx, c, "/admin/users", p)
}

// ApproveUser approves a pending member account (admin only).
func (c *Client) ApproveUser(ctx context.Context, id string) error {
	return c.doJSON(ctx, http.MethodPut, "/admin/users/"+id+"/approve", nil, nil, nil)
}

// SetUserRole changes a member's role (admin only).
func (c *Client) SetUserRole(ctx context.Context, id string, role authz.Role) error {
	payload := map[string]string{"role": role.String()}
	return c.doJSON(ctx, http.MethodPut, "/admin/users/"+id+"/role", nil, payload, nil)
}

// DeleteUser removes a member account (admin only).
func (c *Client) DeleteUser(ctx context.Context, id string) error {
	return c.doJSON(ctx, http.MethodDelete, "/admin/users/"+id, nil, nil, nil)
}

// CreateEvent creates an event (admin only).
func (c *Client) CreateEvent(ctx context.Context, in EventInput) (*Event, error) {
	var event Event
	if err := c.doJSON(ctx, http.MethodPost, "/admin/events", nil, in, &event); err != nil {
		return nil, err
	}
	return &event, nil
}

// UpdateEvent updates an event (admin only).
func (c *Client) UpdateEvent(ctx context.Context, id string, in EventInput) (*Event, error) {
	var event Event
	if err := c.doJSON(ctx, http.MethodPut, "/admin/events/"+id, nil, in, &event); err != nil {
		return nil, err
	}
	return &event, nil
}

// DeleteEvent removes an event (admin only).
func (c *Client) DeleteEvent(ctx context.Context, id string) error {
	return c.doJSON(ctx, http.MethodDelete, "/admin/events/"+id, nil, nil, nil)
}

// CreateNews publishes a news article (admin only).
func (c *Client) CreateNews(ctx context.Context, in NewsInput) (*NewsItem, error) {
	var item NewsItem
	if err := c.doJSON(ctx, http.MethodPost, "/admin/news", nil, in, &item); err != nil {
		return nil, err
	}
	return &item, nil
}

// UpdateNews updates a news article (admin only).
func (c *Client) UpdateNews(ctx context.Context, id string, in NewsInput) (*NewsItem, error) {
	var item NewsItem
	if err := c.doJSON(ctx, http.MethodPut, "/admin/news/"+id, nil, in, &item); err != nil {
		return nil, err
	}
	return &item, nil
}

// DeleteNews removes a news article (admin only).
func (c *Client) DeleteNews(ctx context.Context, id string) error {
	return c.doJSON(ctx, http.MethodDelete, "/admin/news/"+id, nil, nil, nil)
}

// DeleteResource removes a resource (admin only).
func (c *Client) DeleteResource(ctx context.Context, id string) error {
	return c.doJSON(ctx, http.MethodDelete, "/admin/resources/"+id, nil, nil, nil)
}
