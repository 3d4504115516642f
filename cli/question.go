package cli

import (
	"fmt"
	"strconv"
	"text/tabwriter"

	"github.com/viant/pybo/api"
)

func parseID(args []string, name string) (int, error) {
	if len(args) == 0 {
		return 0, fmt.Errorf("%v id was empty", name)
	}
	id, err := strconv.Atoi(args[0])
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("invalid %v id: %q", name, args[0])
	}
	return id, nil
}

type listCmd struct {
	Page    int    `short:"p" long:"page" description:"zero based page, the remembered page when omitted" default:"-1"`
	Size    int    `long:"size" description:"page size" default:"10"`
	Keyword string `short:"k" long:"keyword" description:"search keyword, remembered for later calls"`
	Clear   bool   `long:"clear" description:"forget the remembered keyword"`
	app     *App
}

func (c *listCmd) Execute([]string) error {
	ctx := c.app.ctx
	sess := c.app.client.Session()
	keyword := sess.Keyword.Get()
	page := sess.Page.Get()
	switch {
	case c.Clear:
		keyword, page = "", 0
	case c.Keyword != "" && c.Keyword != keyword:
		keyword, page = c.Keyword, 0
	}
	if c.Page >= 0 {
		page = c.Page
	}
	list, err := c.app.client.ListQuestions(ctx, &api.QuestionQuery{Page: page, Size: c.Size, Keyword: keyword})
	if err != nil {
		return err
	}
	if err = sess.Page.Set(ctx, page); err != nil {
		return err
	}
	if err = sess.Keyword.Set(ctx, keyword); err != nil {
		return err
	}
	w := tabwriter.NewWriter(c.app.stdout, 0, 4, 2, ' ', 0)
	_, _ = fmt.Fprintln(w, "ID\tSUBJECT\tANSWERS\tAUTHOR\tCREATED")
	for _, question := range list.QuestionList {
		_, _ = fmt.Fprintf(w, "%d\t%v\t%d\t%v\t%v\n", question.ID, question.Subject, len(question.Answers), author(question.User), question.CreateDate.Format("2006-01-02 15:04"))
	}
	if err = w.Flush(); err != nil {
		return err
	}
	_, _ = fmt.Fprintf(c.app.stdout, "page %d of %d, %d questions\n", page+1, pages(list.Total, c.Size), list.Total)
	return nil
}

func pages(total, size int) int {
	if size <= 0 {
		size = api.DefaultPageSize
	}
	if total == 0 {
		return 1
	}
	return (total + size - 1) / size
}

func author(user *api.User) string {
	if user == nil {
		return "-"
	}
	return user.Username
}

type showCmd struct {
	app *App
}

func (c *showCmd) Execute(args []string) error {
	id, err := parseID(args, "question")
	if err != nil {
		return err
	}
	question, err := c.app.client.Question(c.app.ctx, id)
	if err != nil {
		return err
	}
	out := c.app.stdout
	_, _ = fmt.Fprintf(out, "#%d %v\n", question.ID, question.Subject)
	_, _ = fmt.Fprintf(out, "by %v on %v, %d votes\n\n", author(question.User), question.CreateDate.Format("2006-01-02 15:04"), len(question.Voter))
	_, _ = fmt.Fprintln(out, question.Content)
	_, _ = fmt.Fprintf(out, "\n%d answers\n", len(question.Answers))
	for _, answer := range question.Answers {
		_, _ = fmt.Fprintf(out, "\n  [%d] by %v, %d votes\n  %v\n", answer.ID, author(answer.User), len(answer.Voter), answer.Content)
	}
	return nil
}

type askCmd struct {
	Subject string `short:"t" long:"subject" description:"question subject" required:"true"`
	Content string `short:"m" long:"content" description:"question content" required:"true"`
	app     *App
}

func (c *askCmd) Execute([]string) error {
	if err := c.app.client.CreateQuestion(c.app.ctx, &api.QuestionCreate{Subject: c.Subject, Content: c.Content}); err != nil {
		return err
	}
	_, _ = fmt.Fprintln(c.app.stdout, "question created")
	return nil
}

type editCmd struct {
	Subject string `short:"t" long:"subject" description:"question subject" required:"true"`
	Content string `short:"m" long:"content" description:"question content" required:"true"`
	app     *App
}

func (c *editCmd) Execute(args []string) error {
	id, err := parseID(args, "question")
	if err != nil {
		return err
	}
	if err = c.app.client.UpdateQuestion(c.app.ctx, &api.QuestionUpdate{QuestionID: id, Subject: c.Subject, Content: c.Content}); err != nil {
		return err
	}
	_, _ = fmt.Fprintf(c.app.stdout, "question %d updated\n", id)
	return nil
}

type deleteCmd struct {
	app *App
}

func (c *deleteCmd) Execute(args []string) error {
	id, err := parseID(args, "question")
	if err != nil {
		return err
	}
	if err = c.app.client.DeleteQuestion(c.app.ctx, id); err != nil {
		return err
	}
	_, _ = fmt.Fprintf(c.app.stdout, "question %d deleted\n", id)
	return nil
}

type voteCmd struct {
	app *App
}

func (c *voteCmd) Execute(args []string) error {
	id, err := parseID(args, "question")
	if err != nil {
		return err
	}
	if err = c.app.client.VoteQuestion(c.app.ctx, id); err != nil {
		return err
	}
	_, _ = fmt.Fprintf(c.app.stdout, "voted for question %d\n", id)
	return nil
}
