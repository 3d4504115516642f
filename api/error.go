package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
)

// ErrHandled reports a response the dispatcher already surfaced to the user.
var ErrHandled = errors.New("api: request handled by dispatcher")

// Error is a failure body returned by the server.
type Error struct {
	Detail string
	Body   json.RawMessage
}

func (e *Error) Error() string {
	if e.Detail == "" {
		return fmt.Sprintf("api error: %s", e.Body)
	}
	return e.Detail
}

type validationItem struct {
	Loc []any  `json:"loc"`
	Msg string `json:"msg"`
}

// NewError decodes a FastAPI error body, detail is either a string or a list of
// validation items.
func NewError(body json.RawMessage) *Error {
	ret := &Error{Body: body}
	var envelope struct {
		Detail json.RawMessage `json:"detail"`
	}
	if err := json.Unmarshal(body, &envelope); err != nil || len(envelope.Detail) == 0 {
		return ret
	}
	var text string
	if err := json.Unmarshal(envelope.Detail, &text); err == nil {
		ret.Detail = text
		return ret
	}
	var items []validationItem
	if err := json.Unmarshal(envelope.Detail, &items); err == nil {
		var messages []string
		for _, item := range items {
			if field := location(item.Loc); field != "" {
				messages = append(messages, field+": "+item.Msg)
				continue
			}
			messages = append(messages, item.Msg)
		}
		ret.Detail = strings.Join(messages, "; ")
	}
	return ret
}

func location(loc []any) string {
	if len(loc) == 0 {
		return ""
	}
	// first element is the request part (body, query)
	parts := make([]string, 0, len(loc))
	for _, part := range loc[1:] {
		parts = append(parts, fmt.Sprint(part))
	}
	return strings.Join(parts, ".")
}
