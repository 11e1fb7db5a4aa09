package tui

import (
	"fmt"
	"strings"

	"github.com/airiskcouncil/arcctl/internal/guard"
)

// View renders the TUI (required by Bubble Tea)
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder
	b.WriteString(m.styles.Title.Render(m.route.title()))
	b.WriteString("\n")
	b.WriteString(m.styles.Subtitle.Render(m.sessionLine()))
	b.WriteString("\n")

	state := m.sess.State()
	if d := decide(m.route, state); d.Action == guard.Wait {
		b.WriteString(fmt.Sprintf("%s Restoring session...\n", m.spin.View()))
		return m.withToasts(b.String())
	}

	switch m.route {
	case routeHome:
		b.WriteString(m.viewHome())
	case routeLogin:
		if m.login != nil {
			b.WriteString(m.login.form.View())
		}
	case routeRegister:
		if m.register != nil {
			b.WriteString(m.register.form.View())
		}
	case routeQnADetail:
		b.WriteString(m.viewDetail())
	case routeProfile:
		b.WriteString(m.viewProfile())
	default:
		b.WriteString(m.viewList())
	}

	b.WriteString("\n")
	b.WriteString(m.styles.Help.Render(m.helpLine()))
	return m.withToasts(b.String())
}

func (m Model) sessionLine() string {
	s := m.sess.State()
	if s.Loading {
		return "Checking session..."
	}
	if !s.Authenticated() {
		return "Not signed in"
	}
	return fmt.Sprintf("%s (%s)", s.User.Name, s.User.Role)
}

func (m Model) viewHome() string {
	var b strings.Builder
	for i, entry := range m.menu() {
		line := "  " + entry.label
		if i == m.cursor {
			line = m.styles.Selected.Render("> " + entry.label)
		}
		b.WriteString(line + "\n")
	}
	return b.String()
}

func (m Model) viewList() string {
	src, ok := m.lists[m.route]
	if !ok {
		return ""
	}
	state := src.state()

	if state.loading && len(state.rows) == 0 {
		return fmt.Sprintf("%s Loading...\n", m.spin.View())
	}
	if state.err != "" {
		return m.styles.Error.Render(state.err) + "\n"
	}
	if len(state.rows) == 0 {
		return m.styles.Muted.Render("Nothing here yet.") + "\n"
	}

	var b strings.Builder
	b.WriteString(m.styles.Muted.Render(strings.Join(src.cols, "  ")) + "\n")
	for i, row := range state.rows {
		line := strings.Join(row, "  ")
		if i == m.cursor {
			line = m.styles.Selected.Render(line)
		} else {
			line = "  " + line
		}
		b.WriteString(line + "\n")
	}

	if state.pagination.TotalPages > 1 {
		dots := m.dots
		dots.SetTotalPages(state.pagination.TotalPages)
		dots.Page = state.page - 1
		b.WriteString("\n" + dots.View() + "  ")
		b.WriteString(m.styles.Muted.Render(fmt.Sprintf("page %d/%d, %d total",
			state.page, state.pagination.TotalPages, state.pagination.Total)))
		b.WriteString("\n")
	}
	if state.loading {
		b.WriteString(fmt.Sprintf("%s Refreshing...\n", m.spin.View()))
	}
	return b.String()
}

func (m Model) viewDetail() string {
	d := m.detail
	if d == nil {
		return ""
	}
	if d.loading {
		return fmt.Sprintf("%s Loading question...\n", m.spin.View())
	}
	if d.err != "" {
		return m.styles.Error.Render(d.err) + "\n"
	}
	if d.detail == nil {
		return ""
	}

	q := d.detail.Question
	var b strings.Builder

	header := fmt.Sprintf("[%+d] %s", q.Votes, q.Title)
	if d.cursor == -1 {
		header = m.styles.Selected.Render(header)
	}
	b.WriteString(header + "\n")
	b.WriteString(m.styles.Muted.Render("by "+q.Author) + "\n\n")
	b.WriteString(q.Body + "\n\n")

	if len(d.detail.Answers) == 0 {
		b.WriteString(m.styles.Muted.Render("No answers yet.") + "\n")
	}
	for i, a := range d.detail.Answers {
		line := fmt.Sprintf("[%+d] %s", a.Votes, a.Body)
		if i == d.cursor {
			line = m.styles.Selected.Render(line)
		} else {
			line = "  " + line
		}
		b.WriteString(line + "\n")
		b.WriteString(m.styles.Muted.Render("      -- "+a.Author) + "\n")
	}

	if d.votePending {
		b.WriteString(fmt.Sprintf("\n%s Voting...\n", m.spin.View()))
	}
	return b.String()
}

func (m Model) viewProfile() string {
	s := m.sess.State()
	if s.User == nil {
		return ""
	}
	var b strings.Builder
	b.WriteString(fmt.Sprintf("Name:         %s\n", s.User.Name))
	b.WriteString(fmt.Sprintf("Email:        %s\n", s.User.Email))
	b.WriteString(fmt.Sprintf("Role:         %s\n", s.User.Role))
	if s.User.Organisation != "" {
		b.WriteString(fmt.Sprintf("Organisation: %s\n", s.User.Organisation))
	}
	return b.String()
}

func (m Model) helpLine() string {
	switch m.route {
	case routeHome:
		return "j/k move - enter open - q quit"
	case routeLogin, routeRegister:
		return "tab next field - enter submit - esc back"
	case routeQnADetail:
		return "j/k select - +/- vote - esc back"
	case routeEvents:
		return "j/k move - h/l page - t upcoming/past - enter register - r refresh - esc home"
	case routeQnA:
		return "j/k move - h/l page - enter open - r refresh - esc home"
	case routeAdminUsers:
		return "j/k move - h/l page - a approve - r refresh - esc home"
	default:
		return "j/k move - h/l page - r refresh - esc home"
	}
}

// withToasts overlays the toast queue beneath the screen content.
func (m Model) withToasts(view string) string {
	if len(m.toastList) == 0 {
		return view
	}
	var b strings.Builder
	b.WriteString(view)
	b.WriteString("\n")
	for _, t := range m.toastList {
		style, ok := m.styles.Toast[string(t.Level)]
		if !ok {
			style = m.styles.Toast["info"]
		}
		b.WriteString(style.Render(t.Message) + "\n")
	}
	return b.String()
}
