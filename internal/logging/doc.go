// Package logging assembles structured slog loggers and formatting helpers used
// across wordmask.
//
// It owns the configurable console/JSON handlers, centralizes level and output
// plumbing, and tags every record with the session ID of the CLI invocation
// that produced it. The package also provides a no-op logger for tests and
// wiring code that cannot fail.
//
// Console output goes to stderr by default so transformed text written to
// stdout stays clean for pipes.
package logging
