package api

import (
	"context"
	"strconv"

	"github.com/viant/pybo/dispatch"
)

// CreateAnswer answers a question.
func (c *Client) CreateAnswer(ctx context.Context, questionID int, content string) error {
	return c.call(ctx, dispatch.Post, "/api/answer/create/"+strconv.Itoa(questionID), &answerCreate{Content: content}, nil)
}

// Answer returns a single answer.
func (c *Client) Answer(ctx context.Context, id int) (*Answer, error) {
	ret := &Answer{}
	if err := c.call(ctx, dispatch.Get, "/api/answer/detail/"+strconv.Itoa(id), nil, ret); err != nil {
		return nil, err
	}
	return ret, nil
}

// UpdateAnswer edits an answer owned by the signed in user.
func (c *Client) UpdateAnswer(ctx context.Context, answer *AnswerUpdate) error {
	return c.call(ctx, dispatch.Put, "/api/answer/update", answer, nil)
}

// DeleteAnswer deletes an answer owned by the signed in user.
func (c *Client) DeleteAnswer(ctx context.Context, id int) error {
	return c.call(ctx, dispatch.Delete, "/api/answer/delete", &answerRef{AnswerID: id}, nil)
}

// VoteAnswer recommends an answer.
func (c *Client) VoteAnswer(ctx context.Context, id int) error {
	return c.call(ctx, dispatch.Post, "/api/answer/vote", &answerRef{AnswerID: id}, nil)
}
