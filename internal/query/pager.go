package query

import (
	"context"
	"errors"
	"sync"
)

// FetchFunc loads one page of a resource for the given params.
type FetchFunc[T any] func(ctx context.Context, p Params) (Page[T], error)

// State is a snapshot of a pager's list-fetching state.
type State[T any] struct {
	Items      []T
	Loading    bool
	Err        string
	Pagination Pagination
	Params     Params
}

// Pager drives paginated fetching for one list surface. Changing params (or
// refetching) cancels any in-flight request, so at most one request is ever
// outstanding and only the response to the latest params is applied --
// last-request-wins under network reordering, enforced by cancellation plus a
// generation counter rather than timestamp comparison.
type Pager[T any] struct {
	mu       sync.Mutex
	fetch    FetchFunc[T]
	base     context.Context
	state    State[T]
	cancel   context.CancelFunc
	gen      uint64
	humanize func(error) string
	onChange func(State[T])
}

// Option configures a Pager.
type Option[T any] func(*Pager[T])

// WithHumanizer sets the error-to-message translator used for the Err field.
func WithHumanizer[T any](fn func(error) string) Option[T] {
	return func(p *Pager[T]) {
		p.humanize = fn
	}
}

// WithOnChange registers a callback invoked after every state change.
// The callback receives a snapshot and must not call back into the pager.
func WithOnChange[T any](fn func(State[T])) Option[T] {
	return func(p *Pager[T]) {
		p.onChange = fn
	}
}

// NewPager creates a pager with the given fetch function and initial params.
// No request is issued until SetParams or Refetch is called. The base context
// bounds the lifetime of every request the pager issues.
func NewPager[T any](base context.Context, fetch FetchFunc[T], initial Params, opts ...Option[T]) *Pager[T] {
	if base == nil {
		base = context.Background()
	}
	p := &Pager[T]{
		fetch: fetch,
		base:  base,
		state: State[T]{Params: initial},
		humanize: func(err error) string {
			return err.Error()
		},
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// State returns a snapshot of the current list state.
func (p *Pager[T]) State() State[T] {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.state
}

// SetParams replaces the query params and issues a fetch, superseding any
// request still in flight.
func (p *Pager[T]) SetParams(params Params) {
	p.mu.Lock()
	p.state.Params = params
	p.startLocked()
	p.mu.Unlock()
	p.notify()
}

// Refetch re-issues the current params without changing them. Used after
// mutating actions (create/delete/vote) to resynchronize the list.
func (p *Pager[T]) Refetch() {
	p.mu.Lock()
	p.startLocked()
	p.mu.Unlock()
	p.notify()
}

// Close cancels any in-flight request. The pager remains readable; the
// cancelled request's result is discarded, never applied.
func (p *Pager[T]) Close() {
	p.mu.Lock()
	if p.cancel != nil {
		p.cancel()
		p.cancel = nil
	}
	p.gen++
	p.mu.Unlock()
}

// startLocked cancels the previous request and launches a new one for the
// current params. Caller holds p.mu.
func (p *Pager[T]) startLocked() {
	if p.cancel != nil {
		p.cancel()
	}

	p.gen++
	gen := p.gen
	params := p.state.Params

	ctx, cancel := context.WithCancel(p.base)
	p.cancel = cancel

	p.state.Loading = true
	p.state.Err = ""

	go func() {
		page, err := p.fetch(ctx, params)
		cancel()
		p.apply(gen, page, err)
	}()
}

// apply installs a fetch result if it is still the latest request.
func (p *Pager[T]) apply(gen uint64, page Page[T], err error) {
	p.mu.Lock()
	if gen != p.gen {
		// Superseded by a newer request; discard even though it resolved.
		p.mu.Unlock()
		return
	}

	if err != nil {
		if errors.Is(err, context.Canceled) {
			// Cancellation is the expected result of superseding a request
			// or shutting down; it is not a user-facing error.
			p.mu.Unlock()
			return
		}
		p.state.Loading = false
		p.state.Err = p.humanize(err)
		p.mu.Unlock()
		p.notify()
		return
	}

	p.state.Items = page.Items
	p.state.Pagination = page.Pagination
	p.state.Loading = false
	p.state.Err = ""
	p.mu.Unlock()
	p.notify()
}

func (p *Pager[T]) notify() {
	if p.onChange == nil {
		return
	}
	p.onChange(p.State())
}
