package cli

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/viant/pybo/api"
	"github.com/viant/pybo/session"
	"github.com/viant/scy"
	"github.com/viant/scy/cred"
)

type loginCmd struct {
	Password    string `short:"p" long:"password" description:"password"`
	Credentials string `long:"credentials" description:"scy basic credentials url, e.g. ~/.secret/pybo.json"`
	Key         string `short:"k" long:"key" description:"credentials encryption key" default:"blowfish://default"`
	app         *App
}

func (c *loginCmd) Execute(args []string) error {
	username, password := "", c.Password
	if len(args) > 0 {
		username = args[0]
	}
	if c.Credentials != "" {
		basic, err := loadCredentials(c.app.ctx, c.Credentials, c.Key)
		if err != nil {
			return err
		}
		if username == "" {
			username = basic.Username
		}
		if password == "" {
			password = basic.Password
		}
	}
	if username == "" || password == "" {
		return errors.New("usage: login <username> (-p <password> | --credentials <url>)")
	}
	token, err := c.app.client.Login(c.app.ctx, username, password)
	if err != nil {
		return err
	}
	_, _ = fmt.Fprintf(c.app.stdout, "signed in as %v\n", token.Username)
	return nil
}

func loadCredentials(ctx context.Context, URL, key string) (*cred.Basic, error) {
	secret, err := scy.New().Load(ctx, scy.NewResource(&cred.Basic{}, URL, key))
	if err != nil {
		return nil, fmt.Errorf("failed to load credentials %v: %w", URL, err)
	}
	basic, ok := secret.Target.(*cred.Basic)
	if !ok {
		return nil, fmt.Errorf("unsupported credentials type: %T", secret.Target)
	}
	return basic, nil
}

type logoutCmd struct {
	app *App
}

func (c *logoutCmd) Execute([]string) error {
	if err := c.app.client.Logout(c.app.ctx); err != nil {
		return err
	}
	_, _ = fmt.Fprintln(c.app.stdout, "signed out")
	return nil
}

type statusCmd struct {
	app *App
}

func (c *statusCmd) Execute([]string) error {
	sess := c.app.client.Session()
	out := c.app.stdout
	_, _ = fmt.Fprintf(out, "server:   %v\n", c.app.config.ServerURL)
	_, _ = fmt.Fprintf(out, "storage:  %v\n", c.app.config.StorageURL)
	_, _ = fmt.Fprintf(out, "page:     %v\n", sess.Page.Get())
	_, _ = fmt.Fprintf(out, "keyword:  %v\n", sess.Keyword.Get())
	if keys := sess.Keys(); len(keys) > 0 {
		_, _ = fmt.Fprintf(out, "stored:   %v\n", strings.Join(keys, ", "))
	}
	if !sess.IsLogin.Get() {
		_, _ = fmt.Fprintln(out, "session:  signed out")
		return nil
	}
	_, _ = fmt.Fprintf(out, "session:  signed in as %v\n", sess.Username.Get())
	claims, err := sess.Claims()
	if err != nil {
		if errors.Is(err, session.ErrNoToken) {
			return nil
		}
		_, _ = fmt.Fprintf(out, "token:    unreadable (%v)\n", err)
		return nil
	}
	if claims.ExpiresAt.IsZero() {
		return nil
	}
	state := "valid"
	if claims.Expired(time.Now()) {
		state = "expired"
	}
	_, _ = fmt.Fprintf(out, "token:    %v until %v\n", state, claims.ExpiresAt.Format(time.RFC3339))
	return nil
}

type signupCmd struct {
	Username string `short:"n" long:"username" description:"username" required:"true"`
	Password string `short:"p" long:"password" description:"password" required:"true"`
	Confirm  string `long:"confirm" description:"password confirmation, defaults to password"`
	Email    string `short:"e" long:"email" description:"email" required:"true"`
	app      *App
}

func (c *signupCmd) Execute([]string) error {
	confirm := c.Confirm
	if confirm == "" {
		confirm = c.Password
	}
	user := &api.UserCreate{Username: c.Username, Password1: c.Password, Password2: confirm, Email: c.Email}
	if err := c.app.client.SignUp(c.app.ctx, user); err != nil {
		return err
	}
	_, _ = fmt.Fprintf(c.app.stdout, "created user %v\n", c.Username)
	return nil
}
