// Package store provides durable key/value text storage and the persisted value
// container built on top of it.
//
// A Storage mirrors the browser local storage contract: string keys, string values,
// nothing else. Two implementations ship with the package, an in-memory one for tests
// and short lived processes, and a file one backed by github.com/viant/afs that keeps
// a JSON snapshot at any afs URL.
//
// Persisted wraps a single named value of type T. It restores the value from storage
// on creation and writes it back, JSON encoded, on every mutation before returning.
package store
