package pybo

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/viant/pybo/api"
	"github.com/viant/pybo/dispatch"
	"github.com/viant/pybo/session"
	"github.com/viant/pybo/store"
	"github.com/viant/pybo/transport"
)

// ClientOptions defines options for configuring a pybo client.
type ClientOptions struct {
	ServerURL  string `yaml:"serverURL" json:"serverURL,omitempty"  short:"u" long:"url" description:"pybo server url"`
	StorageURL string `yaml:"storageURL,omitempty" json:"storageURL,omitempty"  short:"s" long:"storage" description:"session storage url, empty keeps state in memory"`

	// Storage, if set, takes precedence over StorageURL.
	Storage store.Storage `yaml:"-" json:"-"`
	// Transport is the base round tripper, http.DefaultTransport when nil.
	Transport http.RoundTripper  `yaml:"-" json:"-"`
	Notifier  dispatch.Notifier  `yaml:"-" json:"-"`
	Navigator dispatch.Navigator `yaml:"-" json:"-"`
	Logger    *slog.Logger       `yaml:"-" json:"-"`
}

func (c *ClientOptions) storage(ctx context.Context) (store.Storage, error) {
	if c.Storage != nil {
		return c.Storage, nil
	}
	if c.StorageURL == "" {
		return store.NewMemoryStorage(), nil
	}
	return store.NewFileStorage(ctx, c.StorageURL)
}

// Options returns dispatcher options for a session.
func (c *ClientOptions) Options(sess *session.Context) []dispatch.Option {
	logger := c.Logger
	if logger == nil {
		logger = slog.Default()
	}
	notifier := c.Notifier
	if notifier == nil {
		notifier = &dispatch.LogNotifier{Logger: logger}
	}
	rtOptions := []transport.Option{transport.WithTokenSource(sess.TokenSource())}
	if c.Transport != nil {
		rtOptions = append(rtOptions, transport.WithTransport(c.Transport))
	}
	expiry := dispatch.NewSessionExpiry(sess, notifier, c.Navigator)
	expiry.Logger = logger
	return []dispatch.Option{
		dispatch.WithTransport(transport.New(rtOptions...)),
		dispatch.WithNotifier(notifier),
		dispatch.WithInterceptor(expiry),
		dispatch.WithLogger(logger),
	}
}

// NewClient creates a pybo client with restored session state, bearer token transport and
// session expiry handling.
func NewClient(ctx context.Context, options *ClientOptions) (*api.Client, error) {
	if options == nil || options.ServerURL == "" {
		return nil, fmt.Errorf("server URL was empty")
	}
	storage, err := options.storage(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to open storage: %w", err)
	}
	sess, err := session.New(ctx, storage)
	if err != nil {
		return nil, fmt.Errorf("failed to restore session: %w", err)
	}
	dispatcher := dispatch.New(options.ServerURL, options.Options(sess)...)
	return api.New(dispatcher, sess), nil
}
