package tui

import (
	"github.com/airiskcouncil/arcctl/internal/api"
	"github.com/airiskcouncil/arcctl/internal/notify"
	"github.com/airiskcouncil/arcctl/internal/session"
)

// sessionChangedMsg carries a new session snapshot into the update loop.
type sessionChangedMsg struct {
	state session.State
}

// toastsChangedMsg carries a new toast queue snapshot.
type toastsChangedMsg struct {
	toasts []notify.Toast
}

// listChangedMsg signals that a list source has new state to render.
type listChangedMsg struct {
	route route
}

// detailLoadedMsg is the result of fetching a question with its answers.
type detailLoadedMsg struct {
	id     string
	detail *api.QuestionDetail
	err    error
}

// loginDoneMsg is the result of a login attempt.
type loginDoneMsg struct {
	user *api.User
	err  error
}

// registerDoneMsg is the result of a membership application.
type registerDoneMsg struct {
	user *api.User
	err  error
}

// voteTarget identifies what an optimistic vote applies to.
type voteTarget struct {
	questionID string
	answerID   string // empty for a question vote
}

// voteDoneMsg resolves an optimistic vote with the server's answer.
type voteDoneMsg struct {
	target voteTarget
	op     voteOp
	votes  int
	err    error
}

// actionDoneMsg is the result of a simple mutating action (event
// registration, member approval). The list refetches on success.
type actionDoneMsg struct {
	route   route
	message string
	err     error
}
