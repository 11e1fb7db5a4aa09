package cmd

import (
	"github.com/spf13/cobra"

	"github.com/airiskcouncil/arcctl/internal/query"
	"github.com/airiskcouncil/arcctl/internal/ux"
)

// listFlags are the pagination flags shared by every list command.
type listFlags struct {
	page  int
	limit int
}

func (l *listFlags) register(cmd *cobra.Command) {
	cmd.Flags().IntVar(&l.page, "page", 1, "page number")
	cmd.Flags().IntVar(&l.limit, "limit", 10, "items per page")
}

func (l *listFlags) params() query.Params {
	return query.Params{Page: l.page, Limit: l.limit}
}

// emitList renders a page of items: structured formats get the raw items,
// text gets a table with a pagination footer.
func emitList[T any](page query.Page[T], build func([]T) *ux.Table) error {
	if flagOutput == "json" || flagOutput == "yaml" {
		return emit(page.Items)
	}
	return emit(build(page.Items).WithPagination(page.Pagination))
}
