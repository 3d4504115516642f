// Package conv collects tiny helper functions that are not part of the public API
// but aid internal conversions.
//
// At the moment it only exposes `AsString` which renders primitive parameter values
// the way form and query encoders expect them.
package conv
