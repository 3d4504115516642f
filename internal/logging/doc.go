// Package logging builds the slog loggers used across the client.
package logging
