package tui

import (
	"github.com/airiskcouncil/arcctl/internal/api"
)

// detailModel is the question detail screen: one question, its answers,
// and at most one optimistic vote in flight.
type detailModel struct {
	id      string
	loading bool
	err     string
	detail  *api.QuestionDetail

	// cursor selects the vote target: -1 is the question itself,
	// 0..len(answers)-1 an answer.
	cursor int

	votePending bool
	voteTarget  voteTarget
}

func newDetailModel(id string) *detailModel {
	return &detailModel{id: id, loading: true, cursor: -1}
}

// moveCursor shifts the vote target, clamped to the answer range.
func (d *detailModel) moveCursor(delta int) {
	if d.detail == nil {
		return
	}
	next := d.cursor + delta
	if next < -1 {
		next = -1
	}
	if max := len(d.detail.Answers) - 1; next > max {
		next = max
	}
	d.cursor = next
}

// currentVotes returns a pointer to the vote count under the cursor,
// along with the target it belongs to.
func (d *detailModel) currentVotes() (*int, voteTarget) {
	if d.detail == nil {
		return nil, voteTarget{}
	}
	if d.cursor < 0 {
		return &d.detail.Question.Votes, voteTarget{questionID: d.detail.Question.ID}
	}
	if d.cursor >= len(d.detail.Answers) {
		return nil, voteTarget{}
	}
	a := &d.detail.Answers[d.cursor]
	return &a.Votes, voteTarget{questionID: d.detail.Question.ID, answerID: a.ID}
}

// votesFor finds the count a resolved vote applies to. The cursor may have
// moved while the request was in flight; the target, not the cursor,
// decides where the result lands.
func (d *detailModel) votesFor(t voteTarget) *int {
	if d.detail == nil || d.detail.Question.ID != t.questionID {
		return nil
	}
	if t.answerID == "" {
		return &d.detail.Question.Votes
	}
	for i := range d.detail.Answers {
		if d.detail.Answers[i].ID == t.answerID {
			return &d.detail.Answers[i].Votes
		}
	}
	return nil
}
