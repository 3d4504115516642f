package dispatch

import (
	"fmt"
	"net/http"
	"strings"
)

// Operation names a request kind.
type Operation string

const (
	Get    Operation = "get"
	Post   Operation = "post"
	Put    Operation = "put"
	Delete Operation = "delete"
	Login  Operation = "login"
)

// Content types
const (
	ContentTypeJSON = "application/json"
	ContentTypeForm = "application/x-www-form-urlencoded"
)

// ParseOperation parses a case-insensitive operation name.
func ParseOperation(name string) (Operation, error) {
	op := Operation(strings.ToLower(strings.TrimSpace(name)))
	switch op {
	case Get, Post, Put, Delete, Login:
		return op, nil
	}
	return "", fmt.Errorf("unsupported operation: %q", name)
}

// Method returns the HTTP verb, login is always POST.
func (o Operation) Method() string {
	switch o {
	case Login, Post:
		return http.MethodPost
	case Get:
		return http.MethodGet
	case Put:
		return http.MethodPut
	case Delete:
		return http.MethodDelete
	}
	return strings.ToUpper(string(o))
}

// ContentType returns the request content type.
func (o Operation) ContentType() string {
	if o == Login {
		return ContentTypeForm
	}
	return ContentTypeJSON
}
