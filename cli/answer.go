package cli

import (
	"fmt"

	"github.com/viant/pybo/api"
)

type answerCmd struct {
	Content string `short:"m" long:"content" description:"answer content" required:"true"`
	app     *App
}

func (c *answerCmd) Execute(args []string) error {
	id, err := parseID(args, "question")
	if err != nil {
		return err
	}
	if err = c.app.client.CreateAnswer(c.app.ctx, id, c.Content); err != nil {
		return err
	}
	_, _ = fmt.Fprintf(c.app.stdout, "answered question %d\n", id)
	return nil
}

type editAnswerCmd struct {
	Content string `short:"m" long:"content" description:"answer content" required:"true"`
	app     *App
}

func (c *editAnswerCmd) Execute(args []string) error {
	id, err := parseID(args, "answer")
	if err != nil {
		return err
	}
	if err = c.app.client.UpdateAnswer(c.app.ctx, &api.AnswerUpdate{AnswerID: id, Content: c.Content}); err != nil {
		return err
	}
	_, _ = fmt.Fprintf(c.app.stdout, "answer %d updated\n", id)
	return nil
}

type deleteAnswerCmd struct {
	app *App
}

func (c *deleteAnswerCmd) Execute(args []string) error {
	id, err := parseID(args, "answer")
	if err != nil {
		return err
	}
	if err = c.app.client.DeleteAnswer(c.app.ctx, id); err != nil {
		return err
	}
	_, _ = fmt.Fprintf(c.app.stdout, "answer %d deleted\n", id)
	return nil
}

type voteAnswerCmd struct {
	app *App
}

func (c *voteAnswerCmd) Execute(args []string) error {
	id, err := parseID(args, "answer")
	if err != nil {
		return err
	}
	if err = c.app.client.VoteAnswer(c.app.ctx, id); err != nil {
		return err
	}
	_, _ = fmt.Fprintf(c.app.stdout, "voted for answer %d\n", id)
	return nil
}
