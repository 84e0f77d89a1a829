// Package logging builds the slog loggers used throughout showscan.
//
// It offers a human-oriented console handler for interactive runs, JSON
// output for non-terminal destinations, attribute helpers shared across
// packages, and a no-op logger for tests.
package logging
