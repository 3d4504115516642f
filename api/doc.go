// Package api exposes the pybo question, answer and user endpoints as typed Go calls
// on top of dispatch.Dispatcher.
//
// Every call performs one Dispatch. A failure body is returned as *Error; a response
// the dispatcher handled on its own (expired session, transport or decoding failure)
// yields ErrHandled, since the user has already been notified.
package api
