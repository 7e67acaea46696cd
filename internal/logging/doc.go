// Package logging assembles the structured slog loggers used by fb2sci.
//
// It owns the console and JSON handlers, centralizes level parsing, and
// defines the standardized field keys the conversion pipeline logs with, so
// every component emits data with the same shape. A no-op logger is provided
// for tests and wiring code that cannot fail.
package logging
