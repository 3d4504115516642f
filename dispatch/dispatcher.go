package dispatch

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
)

// SuccessFunc receives the JSON body, or nil for 204 No Content.
type SuccessFunc func(body json.RawMessage)

// FailureFunc receives the JSON error body.
type FailureFunc func(body json.RawMessage)

// Dispatcher issues requests against a base URL. It is safe for concurrent use;
// responses of concurrent calls are handled in arrival order.
type Dispatcher struct {
	baseURL      string
	client       *http.Client
	notifier     Notifier
	interceptors []Interceptor
	logger       *slog.Logger
}

// BaseURL returns the backend base URL.
func (d *Dispatcher) BaseURL() string {
	return d.baseURL
}

// Dispatch issues one request and invokes onSuccess or onFailure; both may be nil.
func (d *Dispatcher) Dispatch(ctx context.Context, operation Operation, path string, params any, onSuccess SuccessFunc, onFailure FailureFunc) {
	d.Do(ctx, &Request{Operation: operation, Path: path, Params: params}, onSuccess, onFailure)
}

// Do is Dispatch for a prepared Request.
func (d *Dispatcher) Do(ctx context.Context, request *Request, onSuccess SuccessFunc, onFailure FailureFunc) {
	response, err := d.Send(ctx, request)
	if err != nil {
		d.logger.WarnContext(ctx, "dispatch failed", "operation", request.Operation, "path", request.Path, "error", err)
		d.notifier.Notify(ctx, err.Error())
		return
	}
	if response.StatusCode == http.StatusNoContent {
		if onSuccess != nil {
			onSuccess(nil)
		}
		return
	}
	if response.Success() {
		if onSuccess != nil {
			onSuccess(response.Body)
		}
		return
	}
	for _, interceptor := range d.interceptors {
		if interceptor.Intercept(ctx, response) {
			return
		}
	}
	if onFailure != nil {
		onFailure(response.Body)
		return
	}
	d.notifier.Notify(ctx, string(response.Body))
}

// Send performs exactly one round trip and decodes the JSON body.
func (d *Dispatcher) Send(ctx context.Context, request *Request) (*Response, error) {
	httpRequest, err := request.HTTPRequest(ctx, d.baseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to build %v %v request: %w", request.Operation, request.Path, err)
	}
	d.logger.DebugContext(ctx, "dispatch", "operation", request.Operation, "method", httpRequest.Method, "url", httpRequest.URL.String())
	httpResponse, err := d.client.Do(httpRequest)
	if err != nil {
		return nil, err
	}
	defer httpResponse.Body.Close()
	data, err := io.ReadAll(httpResponse.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read %v %v response: %w", request.Operation, request.Path, err)
	}
	d.logger.DebugContext(ctx, "dispatched", "operation", request.Operation, "path", request.Path, "status", httpResponse.StatusCode)
	ret := &Response{
		Request:    request,
		StatusCode: httpResponse.StatusCode,
		Header:     httpResponse.Header,
	}
	if httpResponse.StatusCode == http.StatusNoContent {
		return ret, nil
	}
	if !json.Valid(data) {
		return nil, &DecodeError{StatusCode: httpResponse.StatusCode, Body: data}
	}
	ret.Body = data
	return ret, nil
}

// New creates a dispatcher for baseURL.
func New(baseURL string, options ...Option) *Dispatcher {
	ret := &Dispatcher{
		baseURL: baseURL,
		client:  &http.Client{},
	}
	for _, opt := range options {
		opt(ret)
	}
	if ret.logger == nil {
		ret.logger = slog.Default()
	}
	if ret.notifier == nil {
		ret.notifier = &LogNotifier{Logger: ret.logger}
	}
	return ret
}
