package ux

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/airiskcouncil/arcctl/internal/query"
)

var (
	headerStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("99"))
	cellStyle   = lipgloss.NewStyle().Padding(0, 1)
	footerStyle = lipgloss.NewStyle().Faint(true)
)

// Table is tabular command output: one row per item, with optional
// pagination metadata rendered as a footer.
type Table struct {
	Headers    []string
	Rows       [][]string
	Pagination *query.Pagination
}

// NewTable creates a table with the given column headers.
func NewTable(headers ...string) *Table {
	return &Table{Headers: headers}
}

// AddRow appends a row. Short rows are padded with empty cells.
func (t *Table) AddRow(cells ...string) {
	for len(cells) < len(t.Headers) {
		cells = append(cells, "")
	}
	t.Rows = append(t.Rows, cells)
}

// WithPagination attaches page metadata for the footer line.
func (t *Table) WithPagination(p query.Pagination) *Table {
	t.Pagination = &p
	return t
}

// Render returns the table as a string. With noColor set, styling is
// dropped but the layout is kept.
func (t *Table) Render(noColor bool) string {
	if len(t.Rows) == 0 {
		return "No results."
	}

	styles := func(row, _ int) lipgloss.Style {
		if noColor {
			return cellStyle
		}
		if row == table.HeaderRow {
			return headerStyle.Padding(0, 1)
		}
		return cellStyle
	}

	rendered := table.New().
		Border(lipgloss.NormalBorder()).
		StyleFunc(styles).
		Headers(t.Headers...).
		Rows(t.Rows...).
		String()

	if t.Pagination == nil {
		return rendered
	}

	footer := fmt.Sprintf("Page %d of %d (%d total)",
		t.Pagination.Page, t.Pagination.TotalPages, t.Pagination.Total)
	if !noColor {
		footer = footerStyle.Render(footer)
	}
	return strings.Join([]string{rendered, footer}, "\n")
}

// String implements fmt.Stringer for use with the text formatter.
func (t *Table) String() string {
	return t.Render(false)
}
