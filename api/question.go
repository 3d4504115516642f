package api

import (
	"context"
	"strconv"

	"github.com/viant/pybo/dispatch"
)

// ListQuestions returns a page of questions, page is zero based; a nil query
// selects the first page.
func (c *Client) ListQuestions(ctx context.Context, query *QuestionQuery) (*QuestionList, error) {
	if query == nil {
		query = &QuestionQuery{}
	}
	params := *query
	if params.Size <= 0 {
		params.Size = DefaultPageSize
	}
	ret := &QuestionList{}
	if err := c.call(ctx, dispatch.Get, "/api/question/list", &params, ret); err != nil {
		return nil, err
	}
	return ret, nil
}

// Question returns a question with its answers.
func (c *Client) Question(ctx context.Context, id int) (*Question, error) {
	ret := &Question{}
	if err := c.call(ctx, dispatch.Get, "/api/question/detail/"+strconv.Itoa(id), nil, ret); err != nil {
		return nil, err
	}
	return ret, nil
}

// CreateQuestion posts a new question.
func (c *Client) CreateQuestion(ctx context.Context, question *QuestionCreate) error {
	return c.call(ctx, dispatch.Post, "/api/question/create", question, nil)
}

// UpdateQuestion edits a question owned by the signed in user.
func (c *Client) UpdateQuestion(ctx context.Context, question *QuestionUpdate) error {
	return c.call(ctx, dispatch.Put, "/api/question/update", question, nil)
}

// DeleteQuestion deletes a question owned by the signed in user.
func (c *Client) DeleteQuestion(ctx context.Context, id int) error {
	return c.call(ctx, dispatch.Delete, "/api/question/delete", &questionRef{QuestionID: id}, nil)
}

// VoteQuestion recommends a question.
func (c *Client) VoteQuestion(ctx context.Context, id int) error {
	return c.call(ctx, dispatch.Post, "/api/question/vote", &questionRef{QuestionID: id}, nil)
}
