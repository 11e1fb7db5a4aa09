package tui

import (
	"context"
	"strconv"

	"github.com/airiskcouncil/arcctl/internal/api"
	"github.com/airiskcouncil/arcctl/internal/query"
)

// listState is a row-oriented snapshot of a pager, ready to render.
type listState struct {
	rows       [][]string
	ids        []string
	loading    bool
	err        string
	pagination query.Pagination
	page       int
}

// listSource adapts one typed Pager to the screens, which only deal in
// rows of cells. Each list route owns one source for the lifetime of the
// program; closing it cancels any in-flight fetch.
type listSource struct {
	route   route
	cols    []string
	state   func() listState
	setPage func(int)
	filter  func(key, value string)
	refetch func()
	close   func()
}

// newListSource wires a Pager for item type T to a row renderer. The
// notify callback fires on every pager state change; the TUI turns it
// into a message.
func newListSource[T any](
	base context.Context,
	r route,
	cols []string,
	fetch query.FetchFunc[T],
	id func(T) string,
	toRow func(T) []string,
	notify func(route),
) *listSource {
	pager := query.NewPager(base, fetch, query.DefaultParams(),
		query.WithHumanizer[T](api.ErrorMessage),
		query.WithOnChange[T](func(query.State[T]) { notify(r) }),
	)

	src := &listSource{route: r, cols: cols}
	src.state = func() listState {
		s := pager.State()
		rows := make([][]string, 0, len(s.Items))
		ids := make([]string, 0, len(s.Items))
		for _, item := range s.Items {
			rows = append(rows, toRow(item))
			ids = append(ids, id(item))
		}
		return listState{
			rows:       rows,
			ids:        ids,
			loading:    s.Loading,
			err:        s.Err,
			pagination: s.Pagination,
			page:       s.Params.Page,
		}
	}
	src.setPage = func(page int) {
		if page < 1 {
			page = 1
		}
		pager.SetParams(pager.State().Params.WithPage(page))
	}
	src.filter = func(key, value string) {
		// Filter changes restart from the first page.
		pager.SetParams(pager.State().Params.WithFilter(key, value).WithPage(1))
	}
	src.refetch = pager.Refetch
	src.close = pager.Close
	return src
}

// newListSources builds the source for every list route in the TUI.
func newListSources(base context.Context, client *api.Client, notify func(route)) map[route]*listSource {
	return map[route]*listSource{
		routeEvents: newListSource(base, routeEvents,
			[]string{"Title", "Category", "Location", "Starts"},
			client.ListEvents,
			func(e api.Event) string { return e.ID },
			func(e api.Event) []string {
				starts := ""
				if !e.StartsAt.IsZero() {
					starts = e.StartsAt.Format("2006-01-02 15:04")
				}
				return []string{e.Title, e.Category, e.Location, starts}
			},
			notify),
		routeNews: newListSource(base, routeNews,
			[]string{"Title", "Category", "Published"},
			client.ListNews,
			func(n api.NewsItem) string { return n.ID },
			func(n api.NewsItem) []string {
				published := ""
				if !n.PublishedAt.IsZero() {
					published = n.PublishedAt.Format("2006-01-02")
				}
				return []string{n.Title, n.Category, published}
			},
			notify),
		routeQnA: newListSource(base, routeQnA,
			[]string{"Title", "Author", "Votes", "Answers"},
			client.ListQuestions,
			func(q api.Question) string { return q.ID },
			func(q api.Question) []string {
				return []string{q.Title, q.Author, strconv.Itoa(q.Votes), strconv.Itoa(q.AnswerCount)}
			},
			notify),
		routeResources: newListSource(base, routeResources,
			[]string{"Title", "Type", "File"},
			client.ListResources,
			func(r api.Resource) string { return r.ID },
			func(r api.Resource) []string {
				return []string{r.Title, r.Type, r.FileName}
			},
			notify),
		routeTeam: newListSource(base, routeTeam,
			[]string{"Name", "Title"},
			client.ListTeam,
			func(m api.TeamMember) string { return m.ID },
			func(m api.TeamMember) []string {
				return []string{m.Name, m.Title}
			},
			notify),
		routeAdminUsers: newListSource(base, routeAdminUsers,
			[]string{"Name", "Email", "Role", "Approved"},
			client.ListUsers,
			func(u api.User) string { return u.ID },
			func(u api.User) []string {
				approved := "no"
				if u.Approved {
					approved = "yes"
				}
				return []string{u.Name, u.Email, string(u.Role), approved}
			},
			notify),
	}
}

