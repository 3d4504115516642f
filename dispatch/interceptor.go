package dispatch

import (
	"context"
	"log/slog"
	"net/http"
)

const (
	// LoginRoute is where an expired session is sent.
	LoginRoute = "/user-login"
	// SessionExpiredMessage is shown when the server rejects the session token.
	SessionExpiredMessage = "login required"
)

// Interceptor inspects a non-2xx response before callbacks run; returning true marks
// the response as handled and suppresses both callbacks.
type Interceptor interface {
	Intercept(ctx context.Context, response *Response) bool
}

// InterceptorFunc adapts a func to Interceptor.
type InterceptorFunc func(ctx context.Context, response *Response) bool

func (f InterceptorFunc) Intercept(ctx context.Context, response *Response) bool {
	return f(ctx, response)
}

// SessionCloser clears the stored session.
type SessionCloser interface {
	SignOut(ctx context.Context) error
}

// SessionExpiry treats 401 on any operation but login as an expired session: it signs
// the session out, notifies the user and navigates to the login route. A 401 on login
// means bad credentials and is left to the caller.
type SessionExpiry struct {
	Session   SessionCloser
	Notifier  Notifier
	Navigator Navigator
	Message   string
	Route     string
	Logger    *slog.Logger
}

// NewSessionExpiry creates the interceptor with the default message and route.
func NewSessionExpiry(session SessionCloser, notifier Notifier, navigator Navigator) *SessionExpiry {
	return &SessionExpiry{
		Session:   session,
		Notifier:  notifier,
		Navigator: navigator,
		Message:   SessionExpiredMessage,
		Route:     LoginRoute,
	}
}

func (s *SessionExpiry) Intercept(ctx context.Context, response *Response) bool {
	if response.StatusCode != http.StatusUnauthorized {
		return false
	}
	if response.Request != nil && response.Request.Operation == Login {
		return false
	}
	if s.Session != nil {
		if err := s.Session.SignOut(ctx); err != nil {
			s.logger().WarnContext(ctx, "failed to clear session", "error", err)
		}
	}
	if s.Notifier != nil {
		s.Notifier.Notify(ctx, s.message())
	}
	if s.Navigator != nil {
		s.Navigator.Navigate(ctx, s.route())
	}
	return true
}

func (s *SessionExpiry) message() string {
	if s.Message == "" {
		return SessionExpiredMessage
	}
	return s.Message
}

func (s *SessionExpiry) route() string {
	if s.Route == "" {
		return LoginRoute
	}
	return s.Route
}

func (s *SessionExpiry) logger() *slog.Logger {
	if s.Logger == nil {
		return slog.Default()
	}
	return s.Logger
}
