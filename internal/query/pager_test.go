package query

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// collectState returns an onChange callback plus a channel of snapshots.
func collectState[T any]() (func(State[T]), chan State[T]) {
	ch := make(chan State[T], 32)
	return func(s State[T]) { ch <- s }, ch
}

// waitSettled reads snapshots until one is no longer loading.
func waitSettled[T any](t *testing.T, ch chan State[T]) State[T] {
	t.Helper()
	deadline := time.After(2 * time.Second)
	for {
		select {
		case s := <-ch:
			if !s.Loading {
				return s
			}
		case <-deadline:
			t.Fatal("pager never settled")
		}
	}
}

func TestPagerFetchPopulatesState(t *testing.T) {
	fetch := func(ctx context.Context, p Params) (Page[string], error) {
		return Page[string]{
			Items:      []string{"a", "b"},
			Pagination: Pagination{Total: 25, Page: p.Page, Limit: p.Limit, TotalPages: 3},
		}, nil
	}

	onChange, ch := collectState[string]()
	pager := NewPager(context.Background(), fetch, Params{Page: 2, Limit: 10}, WithOnChange(onChange))
	pager.Refetch()

	s := waitSettled(t, ch)
	assert.Equal(t, []string{"a", "b"}, s.Items)
	assert.Equal(t, Pagination{Total: 25, Page: 2, Limit: 10, TotalPages: 3}, s.Pagination)
	assert.Empty(t, s.Err)
	assert.False(t, s.Loading)
}

func TestPagerLastRequestWins(t *testing.T) {
	releaseA := make(chan struct{})
	started := make(chan struct{}, 1)

	fetch := func(ctx context.Context, p Params) (Page[string], error) {
		if p.Page == 1 {
			started <- struct{}{}
			// Hold request A until after B has resolved, then let it
			// resolve "successfully" -- it must still be discarded.
			<-releaseA
			return Page[string]{Items: []string{"stale"}}, nil
		}
		return Page[string]{Items: []string{"fresh"}, Pagination: Pagination{Page: 2}}, nil
	}

	onChange, ch := collectState[string]()
	pager := NewPager(context.Background(), fetch, Params{Page: 1, Limit: 10}, WithOnChange(onChange))

	pager.Refetch()
	<-started
	pager.SetParams(Params{Page: 2, Limit: 10})

	s := waitSettled(t, ch)
	assert.Equal(t, []string{"fresh"}, s.Items)

	// Let the superseded request A resolve after B.
	close(releaseA)
	time.Sleep(50 * time.Millisecond)

	final := pager.State()
	assert.Equal(t, []string{"fresh"}, final.Items, "stale response must never be applied")
	assert.Equal(t, 2, final.Pagination.Page)
}

func TestPagerCancellationIsNotAnError(t *testing.T) {
	blocked := make(chan struct{}, 1)

	fetch := func(ctx context.Context, p Params) (Page[int], error) {
		blocked <- struct{}{}
		<-ctx.Done()
		return Page[int]{}, ctx.Err()
	}

	pager := NewPager(context.Background(), fetch, DefaultParams())
	pager.Refetch()
	<-blocked
	pager.Close()

	time.Sleep(50 * time.Millisecond)
	s := pager.State()
	assert.Empty(t, s.Err, "a cancelled request must never set the error field")
}

func TestPagerFetchErrorSurfacesMessage(t *testing.T) {
	fetch := func(ctx context.Context, p Params) (Page[int], error) {
		return Page[int]{}, fmt.Errorf("boom")
	}

	onChange, ch := collectState[int]()
	pager := NewPager(context.Background(), fetch, DefaultParams(),
		WithOnChange(onChange),
		WithHumanizer[int](func(err error) string { return "Something went wrong. Please try again." }),
	)
	pager.Refetch()

	s := waitSettled(t, ch)
	assert.Equal(t, "Something went wrong. Please try again.", s.Err)
	assert.Empty(t, s.Items)
}

func TestPagerErrorClearedOnNextFetch(t *testing.T) {
	fail := true
	fetch := func(ctx context.Context, p Params) (Page[int], error) {
		if fail {
			return Page[int]{}, fmt.Errorf("boom")
		}
		return Page[int]{Items: []int{1}}, nil
	}

	onChange, ch := collectState[int]()
	pager := NewPager(context.Background(), fetch, DefaultParams(), WithOnChange(onChange))

	pager.Refetch()
	s := waitSettled(t, ch)
	require.NotEmpty(t, s.Err)

	fail = false
	pager.Refetch()
	s = waitSettled(t, ch)
	assert.Empty(t, s.Err)
	assert.Equal(t, []int{1}, s.Items)
}

func TestPagerRefetchKeepsParams(t *testing.T) {
	var seen []Params
	fetch := func(ctx context.Context, p Params) (Page[int], error) {
		seen = append(seen, p)
		return Page[int]{}, nil
	}

	onChange, ch := collectState[int]()
	params := Params{Page: 3, Limit: 20, Filters: map[string]string{"tab": "upcoming"}}
	pager := NewPager(context.Background(), fetch, params, WithOnChange(onChange))

	pager.Refetch()
	waitSettled(t, ch)
	pager.Refetch()
	waitSettled(t, ch)

	require.Len(t, seen, 2)
	assert.Equal(t, seen[0], seen[1], "refetch must not change params")
	assert.Equal(t, "upcoming", seen[1].Filters["tab"])
}

func TestParamsValues(t *testing.T) {
	p := Params{Page: 2, Limit: 10, Filters: map[string]string{
		"tab":      "upcoming",
		"category": "webinar",
		"empty":    "",
	}}

	v := p.Values()
	assert.Equal(t, "2", v.Get("page"))
	assert.Equal(t, "10", v.Get("limit"))
	assert.Equal(t, "upcoming", v.Get("tab"))
	assert.Equal(t, "webinar", v.Get("category"))
	assert.False(t, v.Has("empty"), "empty filters must not be sent")
}

func TestParamsWithFilter(t *testing.T) {
	p := DefaultParams().WithFilter("search", "governance")
	assert.Equal(t, "governance", p.Filters["search"])

	// Clearing removes the key entirely.
	cleared := p.WithFilter("search", "")
	assert.NotContains(t, cleared.Filters, "search")

	// The original is unchanged (value semantics).
	assert.Equal(t, "governance", p.Filters["search"])
}

func TestParamsWithPage(t *testing.T) {
	p := DefaultParams().WithPage(4)
	assert.Equal(t, 4, p.Page)
	assert.Equal(t, 10, p.Limit)
}
