// Package logging constructs slog loggers for the CLI and the tag engine.
//
// Two formats are supported: "console" (text handler for interactive use) and
// "json" (machine-readable, UTC timestamps, lowercase level names). Output can
// fan out to stdout/stderr and a log file under the configured log directory.
// NewNop returns a logger that discards everything, for tests and optional
// collaborators.
package logging
