package api

import (
	"context"
	"net/http"

	"github.com/airiskcouncil/arcctl/internal/query"
)

// ListNews returns one page of news articles. Supported filters: category
// and search.
func (c *Client) ListNews(ctx context.Context, p query.Params) (query.Page[NewsItem], error) {
	return list[NewsItem](ctx, c, "/news", p)
}

// GetNews returns a single article by id.
func (c *Client) GetNews(ctx context.Context, id string) (*NewsItem, error) {
	var item NewsItem
	if err := c.doJSON(ctx, http.MethodGet, "/news/"+id, nil, nil, &item); err != nil {
		return nil, err
	}
	return &item, nil
}
