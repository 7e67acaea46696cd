package logging

import (
	"context"
	"log/slog"
)

const (
	// FieldRunID is the standardized structured logging key for the
	// correlation ID attached to one conversion run.
	FieldRunID = "run_id"
	// FieldBank is the standardized structured logging key for bank names.
	FieldBank = "bank"
	// FieldFile is the standardized structured logging key for file paths.
	FieldFile = "file"
	// FieldSize is the standardized structured logging key for byte counts.
	FieldSize = "size"
)

// Error wraps err as a standardized error attribute.
func Error(err error) slog.Attr {
	if err == nil {
		return slog.String("error", "<nil>")
	}
	return slog.Any("error", err)
}

// NewNop returns a logger that discards every record.
func NewNop() *slog.Logger {
	return slog.New(nopHandler{})
}

type nopHandler struct{}

func (nopHandler) Enabled(context.Context, slog.Level) bool  { return false }
func (nopHandler) Handle(context.Context, slog.Record) error { return nil }
func (h nopHandler) WithAttrs([]slog.Attr) slog.Handler      { return h }
func (h nopHandler) WithGroup(string) slog.Handler           { return h }
