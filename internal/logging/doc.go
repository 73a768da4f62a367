// Package logging assembles structured slog loggers and formatting helpers used
// across assetmanifest commands.
//
// It owns the console and JSON handlers, centralizes level and output
// plumbing, and tags every invocation with a run identifier so log lines from
// one manifest build can be grouped. Logs default to stderr because stdout
// carries the manifest output itself. The package also provides a no-op
// logger for tests and wiring code that cannot fail.
package logging
