// Package tui implements the interactive browse screen for arcctl. One
// root model owns the session manager, the toast queue, and a list source
// per screen; guards decide on every session change whether the current
// screen may stay up.
package tui

import (
	"context"

	"github.com/charmbracelet/bubbles/paginator"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"

	"github.com/airiskcouncil/arcctl/internal/api"
	"github.com/airiskcouncil/arcctl/internal/guard"
	"github.com/airiskcouncil/arcctl/internal/notify"
	"github.com/airiskcouncil/arcctl/internal/session"
)

// Model is the root browse model.
type Model struct {
	client *api.Client
	sess   *session.Manager
	toasts *notify.Center
	styles Styles
	base   context.Context

	route     route
	returnTo  route
	hasReturn bool

	width    int
	height   int
	quitting bool

	spin spinner.Model
	dots paginator.Model

	events chan tea.Msg
	unsubs []func()

	lists     map[route]*listSource
	cursor    int
	eventsTab string
	login     *loginModel
	register  *registerModel
	detail    *detailModel

	toastList []notify.Toast
}

// New builds the browse model. The base context bounds every fetch the
// model issues; cancelling it (program shutdown) cancels in-flight work.
func New(base context.Context, client *api.Client, sess *session.Manager, toasts *notify.Center) Model {
	if base == nil {
		base = context.Background()
	}

	m := Model{
		client: client,
		sess:   sess,
		toasts: toasts,
		styles: DefaultStyles(),
		base:   base,
		route:  routeHome,
		spin:   spinner.New(spinner.WithSpinner(spinner.Dot)),
		events: make(chan tea.Msg, 64),
	}

	m.dots = paginator.New()
	m.dots.Type = paginator.Dots

	push := func(msg tea.Msg) {
		// Never block a broadcaster; a dropped notification is repaired
		// by the next one.
		select {
		case m.events <- msg:
		default:
		}
	}

	m.lists = newListSources(base, client, func(r route) {
		push(listChangedMsg{route: r})
	})
	m.unsubs = append(m.unsubs,
		sess.Subscribe(func(s session.State) { push(sessionChangedMsg{state: s}) }),
		toasts.Subscribe(func(ts []notify.Toast) { push(toastsChangedMsg{toasts: ts}) }),
	)

	return m
}

// Init restores the persisted session and starts listening for
// notifications (required by Bubble Tea).
func (m Model) Init() tea.Cmd {
	return tea.Batch(m.listen(), m.spin.Tick, func() tea.Msg {
		m.sess.Restore(m.base)
		return nil
	})
}

// listen waits for the next funneled notification.
func (m Model) listen() tea.Cmd {
	return func() tea.Msg { return <-m.events }
}

// Update handles messages and updates the model state (required by Bubble Tea)
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spin, cmd = m.spin.Update(msg)
		return m, cmd

	case sessionChangedMsg:
		// Re-run the guard for the screen that is up; an invalidated
		// session redirects to login exactly once because the state only
		// transitions once.
		var cmd tea.Cmd
		m, cmd = m.navigate(m.route)
		return m, tea.Batch(cmd, m.listen())

	case toastsChangedMsg:
		m.toastList = msg.toasts
		return m, m.listen()

	case listChangedMsg:
		if src, ok := m.lists[msg.route]; ok && msg.route == m.route {
			if rows := len(src.state().rows); m.cursor >= rows && rows > 0 {
				m.cursor = rows - 1
			}
		}
		return m, m.listen()

	case detailLoadedMsg:
		if m.detail != nil && m.detail.id == msg.id {
			m.detail.loading = false
			if msg.err != nil {
				m.detail.err = api.ErrorMessage(msg.err)
			} else {
				m.detail.detail = msg.detail
			}
		}
		return m, nil

	case loginDoneMsg:
		return m.finishLogin(msg)

	case registerDoneMsg:
		return m.finishRegister(msg)

	case voteDoneMsg:
		return m.finishVote(msg)

	case actionDoneMsg:
		if msg.err != nil {
			m.toasts.Error(api.ErrorMessage(msg.err))
			return m, nil
		}
		if msg.message != "" {
			m.toasts.Success(msg.message)
		}
		if src, ok := m.lists[msg.route]; ok {
			src.refetch()
		}
		return m, nil
	}

	return m.forwardToForm(msg)
}

// navigate runs the guard for the target route and enters the screen the
// decision allows.
func (m Model) navigate(target route) (Model, tea.Cmd) {
	d := decide(target, m.sess.State())
	switch d.Action {
	case guard.Wait:
		// Session still restoring; stay put and let the next session
		// change resolve the route.
		m.route = target
		return m, nil

	case guard.Redirect:
		redirected, ok := pathRoutes[d.Target]
		if !ok {
			redirected = routeHome
		}
		if d.Target == guard.RouteLogin && d.ReturnTo != "" {
			if back, ok := pathRoutes[d.ReturnTo]; ok {
				m.returnTo = back
				m.hasReturn = true
			}
		}
		return m.enter(redirected)

	default:
		return m.enter(target)
	}
}

// enter switches to an allowed route and kicks off whatever it needs.
func (m Model) enter(target route) (Model, tea.Cmd) {
	m.route = target
	m.cursor = 0

	switch target {
	case routeLogin:
		m.login = newLoginModel()
		return m, m.login.form.Init()
	case routeRegister:
		m.register = newRegisterModel()
		return m, m.register.form.Init()
	case routeQnADetail:
		// Entered through openDetail; nothing to do here.
		return m, nil
	default:
		if src, ok := m.lists[target]; ok {
			src.refetch()
		}
		return m, nil
	}
}

// openDetail navigates to a question's detail screen.
func (m Model) openDetail(id string) (Model, tea.Cmd) {
	m.detail = newDetailModel(id)
	m.route = routeQnADetail
	return m, func() tea.Msg {
		detail, err := m.client.GetQuestion(m.base, id)
		return detailLoadedMsg{id: id, detail: detail, err: err}
	}
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+c" {
		return m.quit()
	}

	// Forms own the keyboard while they are up, except for escape.
	if m.route == routeLogin || m.route == routeRegister {
		if msg.String() == "esc" {
			return asTea(m.navigate(routeHome))
		}
		return m.forwardToForm(msg)
	}

	switch msg.String() {
	case "q":
		return m.quit()
	case "esc":
		if m.route == routeQnADetail {
			return asTea(m.navigate(routeQnA))
		}
		return asTea(m.navigate(routeHome))
	}

	switch m.route {
	case routeHome:
		return m.handleHomeKey(msg)
	case routeQnADetail:
		return m.handleDetailKey(msg)
	default:
		if _, ok := m.lists[m.route]; ok {
			return m.handleListKey(msg)
		}
	}
	return m, nil
}

func (m Model) quit() (tea.Model, tea.Cmd) {
	m.quitting = true
	for _, unsub := range m.unsubs {
		unsub()
	}
	for _, src := range m.lists {
		src.close()
	}
	return m, tea.Quit
}

// menuEntry is one destination on the home screen.
type menuEntry struct {
	label string
	to    route
}

// menu lists the destinations the current session may see. Admin and
// auth entries appear and disappear with the session.
func (m Model) menu() []menuEntry {
	s := m.sess.State()
	entries := []menuEntry{
		{"Events", routeEvents},
		{"News", routeNews},
		{"Q&A forum", routeQnA},
		{"Resource library", routeResources},
		{"Council team", routeTeam},
	}
	if s.Authenticated() {
		entries = append(entries, menuEntry{"Profile", routeProfile})
		if m.sess.IsAdmin() {
			entries = append(entries, menuEntry{"Member administration", routeAdminUsers})
		}
	} else {
		entries = append(entries,
			menuEntry{"Member login", routeLogin},
			menuEntry{"Apply for membership", routeRegister},
		)
	}
	return entries
}

func (m Model) handleHomeKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	entries := m.menu()
	switch msg.String() {
	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}
	case "down", "j":
		if m.cursor < len(entries)-1 {
			m.cursor++
		}
	case "enter":
		if m.cursor < len(entries) {
			return asTea(m.navigate(entries[m.cursor].to))
		}
	}
	return m, nil
}

func (m Model) handleListKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	src := m.lists[m.route]
	state := src.state()

	switch msg.String() {
	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}
	case "down", "j":
		if m.cursor < len(state.rows)-1 {
			m.cursor++
		}
	case "left", "h":
		if state.page > 1 {
			m.cursor = 0
			src.setPage(state.page - 1)
		}
	case "right", "l":
		if state.page < state.pagination.TotalPages {
			m.cursor = 0
			src.setPage(state.page + 1)
		}
	case "r":
		src.refetch()
	case "t":
		if m.route == routeEvents {
			if m.eventsTab == "past" {
				m.eventsTab = "upcoming"
			} else {
				m.eventsTab = "past"
			}
			m.cursor = 0
			src.filter(api.FilterTab, m.eventsTab)
		}
	case "a":
		if m.route == routeAdminUsers && m.cursor < len(state.ids) {
			return m, m.approveUserCmd(state.ids[m.cursor])
		}
	case "enter":
		if m.route == routeQnA && m.cursor < len(state.ids) {
			return asTea(m.openDetail(state.ids[m.cursor]))
		}
		if m.route == routeEvents && m.cursor < len(state.ids) {
			return m, m.registerEventCmd(state.ids[m.cursor])
		}
	}
	return m, nil
}

func (m Model) handleDetailKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	d := m.detail
	if d == nil || d.detail == nil {
		return m, nil
	}

	switch msg.String() {
	case "up", "k":
		d.moveCursor(-1)
	case "down", "j":
		d.moveCursor(1)
	case "+", "=":
		return m.castVote(api.VoteUp)
	case "-":
		return m.castVote(api.VoteDown)
	}
	return m, nil
}

// castVote applies the optimistic increment and issues the request. At
// most one vote is in flight per detail screen.
func (m Model) castVote(direction string) (tea.Model, tea.Cmd) {
	d := m.detail
	if d.votePending {
		return m, nil
	}
	votes, target := d.currentVotes()
	if votes == nil {
		return m, nil
	}

	op := applyVote(*votes, direction)
	*votes = op.after
	d.votePending = true
	d.voteTarget = target

	return m, func() tea.Msg {
		var (
			count int
			err   error
		)
		if target.answerID == "" {
			count, err = m.client.VoteQuestion(m.base, target.questionID, direction)
		} else {
			count, err = m.client.VoteAnswer(m.base, target.questionID, target.answerID, direction)
		}
		return voteDoneMsg{target: target, op: op, votes: count, err: err}
	}
}

func (m Model) finishVote(msg voteDoneMsg) (tea.Model, tea.Cmd) {
	d := m.detail
	if d == nil {
		return m, nil
	}
	d.votePending = false

	votes := d.votesFor(msg.target)
	if votes == nil {
		return m, nil
	}
	if msg.err != nil {
		*votes = msg.op.Rollback()
		m.toasts.Error(api.ErrorMessage(msg.err))
		return m, nil
	}
	*votes = msg.op.Commit(msg.votes)
	return m, nil
}

func (m Model) forwardToForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch m.route {
	case routeLogin:
		if m.login == nil {
			return m, nil
		}
		f, cmd := m.login.form.Update(msg)
		if form, ok := f.(*huh.Form); ok {
			m.login.form = form
		}
		if m.login.form.State == huh.StateCompleted && !m.login.submitting {
			m.login.submitting = true
			return m, tea.Batch(cmd, m.loginCmd())
		}
		return m, cmd

	case routeRegister:
		if m.register == nil {
			return m, nil
		}
		f, cmd := m.register.form.Update(msg)
		if form, ok := f.(*huh.Form); ok {
			m.register.form = form
		}
		if m.register.form.State == huh.StateCompleted && !m.register.submitting {
			m.register.submitting = true
			return m, tea.Batch(cmd, m.registerCmd())
		}
		return m, cmd
	}
	return m, nil
}

func (m Model) loginCmd() tea.Cmd {
	email, password := m.login.email, m.login.password
	return func() tea.Msg {
		user, err := m.client.Login(m.base, email, password)
		return loginDoneMsg{user: user, err: err}
	}
}

func (m Model) finishLogin(msg loginDoneMsg) (tea.Model, tea.Cmd) {
	if msg.err != nil {
		m.toasts.Error(api.ErrorMessage(msg.err))
		m.login = newLoginModel()
		return m, m.login.form.Init()
	}

	m.sess.Login(msg.user)
	m.toasts.Success("Welcome back, " + msg.user.Name)

	target := routeHome
	if m.hasReturn {
		target = m.returnTo
		m.hasReturn = false
	}
	return asTea(m.navigate(target))
}

func (m Model) registerCmd() tea.Cmd {
	in := m.register.input()
	return func() tea.Msg {
		user, err := m.client.Register(m.base, in)
		return registerDoneMsg{user: user, err: err}
	}
}

func (m Model) finishRegister(msg registerDoneMsg) (tea.Model, tea.Cmd) {
	if msg.err != nil {
		m.toasts.Error(api.ErrorMessage(msg.err))
		m.register = newRegisterModel()
		return m, m.register.form.Init()
	}

	m.toasts.Success("Application submitted. You can sign in once your membership is approved.")
	return asTea(m.navigate(routeLogin))
}

func (m Model) registerEventCmd(id string) tea.Cmd {
	return func() tea.Msg {
		err := m.client.RegisterForEvent(m.base, id)
		return actionDoneMsg{route: routeEvents, message: "Registered for event", err: err}
	}
}

func (m Model) approveUserCmd(id string) tea.Cmd {
	return func() tea.Msg {
		err := m.client.ApproveUser(m.base, id)
		return actionDoneMsg{route: routeAdminUsers, message: "Member approved", err: err}
	}
}

// asTea widens the (Model, tea.Cmd) pair returned by navigation helpers.
func asTea(m Model, cmd tea.Cmd) (tea.Model, tea.Cmd) {
	return m, cmd
}
