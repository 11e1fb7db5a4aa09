package api

import (
	"context"
	"net/http"
	"strings"

	cerrors "github.com/airiskcouncil/arcctl/internal/errors"
	"github.com/airiskcouncil/arcctl/internal/query"
)

// Vote directions accepted by the vote endpoints.
const (
	VoteUp   = "up"
	VoteDown = "down"
)

// voteRequest is the vote payload.
type voteRequest struct {
	Direction string `json:"direction"`
}

// voteResult carries the authoritative vote count after a vote lands.
type voteResult struct {
	Votes int `json:"votes"`
}

// AskInput is a new question payload.
type AskInput struct {
	Title string   `json:"title"`
	Body  string   `json:"body"`
	Tags  []string `json:"tags,omitempty"`
}

// ListQuestions returns one page of Q&A questions. Supported filters:
// tags and search.
func (c *Client) ListQuestions(ctx context.Context, p query.Params) (query.Page[Question], error) {
	return list[Question](ctx, c, "/qna", p)
}

// GetQuestion returns a question with its answers.
func (c *Client) GetQuestion(ctx context.Context, id string) (*QuestionDetail, error) {
	var detail QuestionDetail
	if err := c.doJSON(ctx, http.MethodGet, "/qna/"+id, nil, nil, &detail); err != nil {
		return nil, err
	}
	return &detail, nil
}

// AskQuestion posts a new question.
func (c *Client) AskQuestion(ctx context.Context, in AskInput) (*Question, error) {
	if strings.TrimSpace(in.Title) == "" {
		return nil, cerrors.NewValidationError("title", "Title is required.")
	}
	if strings.TrimSpace(in.Body) == "" {
		return nil, cerrors.NewValidationError("body", "Question body is required.")
	}

	var question Question
	if err := c.doJSON(ctx, http.MethodPost, "/qna", nil, in, &question); err != nil {
		return nil, err
	}
	return &question, nil
}

// PostAnswer posts an answer to a question.
func (c *Client) PostAnswer(ctx context.Context, questionID, body string) (*Answer, error) {
	if strings.TrimSpace(body) == "" {
		return nil, cerrors.NewValidationError("body", "Answer body is required.")
	}

	var answer Answer
	payload := map[string]string{"body": body}
	if err := c.doJSON(ctx, http.MethodPost, "/qna/"+questionID+"/answers", nil, payload, &answer); err != nil {
		return nil, err
	}
	return &answer, nil
}

// VoteQuestion casts a vote on a question and returns the authoritative
// count. The optimistic-update flow applies its local increment before
// calling this and compensates if it fails.
func (c *Client) VoteQuestion(ctx context.Context, id, direction string) (int, error) {
	var result voteResult
	if err := c.doJSON(ctx, http.MethodPost, "/qna/"+id+"/vote", nil, voteRequest{Direction: direction}, &result); err != nil {
		return 0, err
	}
	return result.Votes, nil
}

// VoteAnswer casts a vote on an answer and returns the authoritative count.
func (c *Client) VoteAnswer(ctx context.Context, questionID, answerID, direction string) (int, error) {
	var result voteResult
	path := "/qna/" + questionID + "/answers/" + answerID + "/vote"
	if err := c.doJSON(ctx, http.MethodPost, path, nil, voteRequest{Direction: direction}, &result); err != nil {
		return 0, err
	}
	return result.Votes, nil
}
