package api

import (
	"context"
	"net/http"

	"github.com/airiskcouncil/arcctl/internal/query"
)

// Event listing tabs.
const (
	EventTabUpcoming = "upcoming"
	EventTabPast     = "past"
)

// ListEvents returns one page of events. Supported filters: tab
// (upcoming/past) and category. All filtering is server-side.
func (c *Client) ListEvents(ctx context.Context, p query.Params) (query.Page[Event], error) {
	return list[Event](ctx, c, "/events", p)
}

// GetEvent returns a single event by id.
func (c *Client) GetEvent(ctx context.Context, id string) (*Event, error) {
	var event Event
	if err := c.doJSON(ctx, http.MethodGet, "/events/"+id, nil, nil, &event); err != nil {
		return nil, err
	}
	return &event, nil
}

// RegisterForEvent registers the current member for an event.
func (c *Client) RegisterForEvent(ctx context.Context, id string) error {
	return c.doJSON(ctx, http.MethodPost, "/events/"+id+"/register", nil, nil, nil)
}

// UnregisterFromEvent cancels the current member's registration.
func (c *Client) UnregisterFromEvent(ctx context.Context, id string) error {
	return c.doJSON(ctx, http.MethodDelete, "/events/"+id+"/register", nil, nil, nil)
}
