// Package query implements the shared paginated list-fetching state machine.
// Every list surface (events, news, Q&A, resources, team, admin users) drives
// one Pager instance instead of carrying its own copy of the fetch logic.
package query

import (
	"net/url"
	"strconv"
)

// Params is a paginated list query: page, page size, and resource-specific
// filters (tab/category for events, tags/search for Q&A, type for resources).
type Params struct {
	Page    int
	Limit   int
	Filters map[string]string
}

// DefaultParams returns the first page with the standard page size.
func DefaultParams() Params {
	return Params{Page: 1, Limit: 10}
}

// WithFilter returns a copy of p with the filter set. Empty values remove
// the filter so cleared search boxes do not send empty query parameters.
func (p Params) WithFilter(key, value string) Params {
	filters := make(map[string]string, len(p.Filters)+1)
	for k, v := range p.Filters {
		filters[k] = v
	}
	if value == "" {
		delete(filters, key)
	} else {
		filters[key] = value
	}
	p.Filters = filters
	return p
}

// WithPage returns a copy of p on the given page.
func (p Params) WithPage(page int) Params {
	p.Page = page
	return p
}

// Values encodes the params as URL query parameters.
func (p Params) Values() url.Values {
	v := url.Values{}
	if p.Page > 0 {
		v.Set("page", strconv.Itoa(p.Page))
	}
	if p.Limit > 0 {
		v.Set("limit", strconv.Itoa(p.Limit))
	}
	for key, value := range p.Filters {
		if value != "" {
			v.Set(key, value)
		}
	}
	return v
}
