// Package dispatch issues single requests against the pybo backend and routes the
// outcome to caller supplied callbacks.
//
// An Operation selects both the HTTP verb and the body encoding: login posts form
// encoded credentials (the OAuth2 password grant convention), every other operation
// sends JSON, and get moves the parameters into the query string.
//
// Responses are handled once, without retry:
//
//   - 204 calls onSuccess with a nil body
//   - 2xx calls onSuccess with the JSON body
//   - other statuses go through the installed interceptors first; SessionExpiry turns a
//     401 on a non-login operation into a forced sign out and a redirect to the login route
//   - anything left calls onFailure, or the Notifier when onFailure is nil
//
// Transport and decoding failures are reported to the Notifier only; Dispatch never
// returns an error to its caller.
package dispatch
