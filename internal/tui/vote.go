package tui

import "github.com/airiskcouncil/arcctl/internal/api"

// voteOp is one optimistic vote: the local increment is applied before the
// request is sent, and the op either commits to the server's authoritative
// count or rolls back to the pre-vote value when the request fails.
type voteOp struct {
	before int
	after  int
}

// applyVote computes the optimistic counts for a vote in the given
// direction. The caller displays After immediately.
func applyVote(votes int, direction string) voteOp {
	delta := 1
	if direction == api.VoteDown {
		delta = -1
	}
	return voteOp{before: votes, after: votes + delta}
}

// Commit resolves the op with the server's authoritative count. The server
// value wins even when it disagrees with the local increment.
func (op voteOp) Commit(authoritative int) int {
	return authoritative
}

// Rollback restores the pre-vote count after a failed request.
func (op voteOp) Rollback() int {
	return op.before
}
