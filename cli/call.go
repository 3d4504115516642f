package cli

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/viant/pybo/api"
	"github.com/viant/pybo/dispatch"
)

type callCmd struct {
	app *App
}

// Execute dispatches <operation> <path> with key=value params; values that parse as JSON
// are sent typed, the rest as strings.
func (c *callCmd) Execute(args []string) error {
	if len(args) < 2 {
		return fmt.Errorf("usage: call <get|post|put|delete|login> <path> [key=value...]")
	}
	operation, err := dispatch.ParseOperation(args[0])
	if err != nil {
		return err
	}
	params, err := callParams(args[2:])
	if err != nil {
		return err
	}
	err = api.ErrHandled
	c.app.client.Dispatcher().Dispatch(c.app.ctx, operation, args[1], params, func(body json.RawMessage) {
		err = c.print(body)
	}, func(body json.RawMessage) {
		err = api.NewError(body)
	})
	return err
}

func (c *callCmd) print(body json.RawMessage) error {
	if body == nil {
		_, _ = fmt.Fprintln(c.app.stdout, "no content")
		return nil
	}
	buf := &bytes.Buffer{}
	if err := json.Indent(buf, body, "", "  "); err != nil {
		return err
	}
	buf.WriteByte('\n')
	_, err := c.app.stdout.Write(buf.Bytes())
	return err
}

func callParams(args []string) (map[string]any, error) {
	if len(args) == 0 {
		return nil, nil
	}
	ret := make(map[string]any, len(args))
	for _, arg := range args {
		key, value, ok := strings.Cut(arg, "=")
		if !ok || key == "" {
			return nil, fmt.Errorf("invalid param %q, expected key=value", arg)
		}
		ret[key] = typedValue(value)
	}
	return ret, nil
}

func typedValue(value string) any {
	if !json.Valid([]byte(value)) {
		return value
	}
	decoder := json.NewDecoder(strings.NewReader(value))
	decoder.UseNumber()
	var ret any
	if err := decoder.Decode(&ret); err != nil {
		return value
	}
	if _, nested := ret.(map[string]any); nested {
		return value
	}
	return ret
}
