// Package pybo is a client for the pybo question and answer service.
//
// The package glues the building blocks kept in the sub packages:
//  1. store – write-through persisted values over a pluggable storage,
//  2. session – the persisted login and navigation state,
//  3. transport – an http.RoundTripper attaching the bearer token,
//  4. dispatch – the request dispatcher with its session expiry interceptor,
//  5. api – typed operations of the pybo REST API.
//
// Example:
//
//	cli, _ := pybo.NewClient(ctx, &pybo.ClientOptions{ServerURL: "http://localhost:8000"})
//	_, _ = cli.Login(ctx, "user", "secret")
//	list, _ := cli.ListQuestions(ctx, &api.QuestionQuery{Page: 0})
package pybo
