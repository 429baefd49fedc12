// Package logging builds the slog loggers used across launchguard: a
// compact console handler for interactive runs and JSON output for files
// and non-terminal streams.
package logging
