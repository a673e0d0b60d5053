// Package logging assembles structured slog loggers and formatting helpers
// used by the textpipe CLI.
//
// It owns the console and JSON handlers, centralizes level and output
// plumbing, and exposes attribute helpers and standard field names so every
// command tags its lines with the same component, run, and path keys. The
// package also provides a no-op logger for tests and for library callers that
// do not want output.
//
// Logs go to stderr by default so command output on stdout stays clean.
package logging
