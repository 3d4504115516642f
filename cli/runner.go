package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/jessevdk/go-flags"
	"github.com/viant/pybo"
	"github.com/viant/pybo/api"
	"github.com/viant/pybo/config"
	"github.com/viant/pybo/dispatch"
	"github.com/viant/pybo/internal/logging"
)

// App runs pybo commands; the client is built once, after flags are parsed.
type App struct {
	Options Options
	stdout  io.Writer
	stderr  io.Writer
	ctx     context.Context
	config  *config.Config
	client  *api.Client
}

// Run executes a command with process stdio.
func Run(args []string) error {
	return New(os.Stdout, os.Stderr).Run(context.Background(), args)
}

// New creates an app writing results to stdout and notices to stderr.
func New(stdout, stderr io.Writer) *App {
	return &App{stdout: stdout, stderr: stderr}
}

// Run parses args and executes the selected command.
func (a *App) Run(ctx context.Context, args []string) error {
	a.ctx = ctx
	parser := flags.NewParser(&a.Options, flags.HelpFlag|flags.PassDoubleDash)
	parser.Name = "pybo"
	if err := a.register(parser); err != nil {
		return err
	}
	parser.CommandHandler = func(command flags.Commander, args []string) error {
		if command == nil {
			return nil
		}
		if err := a.init(ctx); err != nil {
			return err
		}
		return command.Execute(args)
	}
	_, err := parser.ParseArgs(args)
	var flagsErr *flags.Error
	if errors.As(err, &flagsErr) && flagsErr.Type == flags.ErrHelp {
		_, _ = fmt.Fprintln(a.stdout, flagsErr.Message)
		return nil
	}
	return err
}

func (a *App) register(parser *flags.Parser) error {
	commands := []struct {
		name, short string
		data        flags.Commander
	}{
		{"login", "sign in and store the access token", &loginCmd{app: a}},
		{"logout", "clear the stored session", &logoutCmd{app: a}},
		{"status", "show the stored session", &statusCmd{app: a}},
		{"signup", "create a user", &signupCmd{app: a}},
		{"list", "list questions, page and keyword are remembered", &listCmd{app: a}},
		{"show", "show a question with its answers", &showCmd{app: a}},
		{"ask", "create a question", &askCmd{app: a}},
		{"edit", "edit a question", &editCmd{app: a}},
		{"delete", "delete a question", &deleteCmd{app: a}},
		{"vote", "vote for a question", &voteCmd{app: a}},
		{"answer", "answer a question", &answerCmd{app: a}},
		{"edit-answer", "edit an answer", &editAnswerCmd{app: a}},
		{"delete-answer", "delete an answer", &deleteAnswerCmd{app: a}},
		{"vote-answer", "vote for an answer", &voteAnswerCmd{app: a}},
		{"call", "dispatch a raw request: call <get|post|put|delete|login> <path> [key=value...]", &callCmd{app: a}},
	}
	for _, command := range commands {
		if _, err := parser.AddCommand(command.name, command.short, "", command.data); err != nil {
			return err
		}
	}
	return nil
}

func (a *App) init(ctx context.Context) error {
	if a.client != nil {
		return nil
	}
	cfg, err := config.Load(a.Options.Config)
	if err != nil {
		return err
	}
	if a.Options.URL != "" {
		cfg.ServerURL = a.Options.URL
	}
	if a.Options.Storage != "" {
		cfg.StorageURL = a.Options.Storage
	}
	if a.Options.LogLevel != "" {
		cfg.LogLevel = a.Options.LogLevel
	}
	if a.Options.LogFormat != "" {
		cfg.LogFormat = a.Options.LogFormat
	}
	if err = cfg.Validate(); err != nil {
		return err
	}
	a.config = cfg
	a.client, err = pybo.NewClient(ctx, &pybo.ClientOptions{
		ServerURL:  cfg.ServerURL,
		StorageURL: cfg.StorageURL,
		Notifier:   dispatch.NotifierFunc(a.notify),
		Navigator:  dispatch.NavigatorFunc(a.navigate),
		Logger:     logging.New(cfg.LogLevel, cfg.LogFormat, a.stderr),
	})
	return err
}

func (a *App) notify(_ context.Context, message string) {
	_, _ = fmt.Fprintf(a.stderr, "error: %v\n", message)
}

func (a *App) navigate(_ context.Context, route string) {
	if route == dispatch.LoginRoute {
		_, _ = fmt.Fprintln(a.stderr, "hint: sign in again with: pybo login <username>")
		return
	}
	_, _ = fmt.Fprintf(a.stderr, "hint: continue at %v\n", route)
}
