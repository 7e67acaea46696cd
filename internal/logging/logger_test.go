package logging_test

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"fb2sci/internal/logging"
)

func TestNewConsoleLoggerWritesAttrs(t *testing.T) {
	var buf bytes.Buffer
	logger, err := logging.New(logging.Options{Level: "info", Format: "console", Writer: &buf})
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}

	logger.Info("patch created", logging.FieldFile, "out.pat", logging.FieldSize, 6148)

	line := buf.String()
	if !strings.Contains(line, "patch created") {
		t.Fatalf("missing message in %q", line)
	}
	if !strings.Contains(line, "file=out.pat") || !strings.Contains(line, "size=6148") {
		t.Fatalf("missing attrs in %q", line)
	}
}

func TestConsoleLoggerHonorsLevel(t *testing.T) {
	var buf bytes.Buffer
	logger, err := logging.New(logging.Options{Level: "warn", Format: "console", Writer: &buf})
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}

	logger.Info("suppressed")
	logger.Warn("visible")

	out := buf.String()
	if strings.Contains(out, "suppressed") {
		t.Fatalf("info record leaked past warn level: %q", out)
	}
	if !strings.Contains(out, "visible") {
		t.Fatalf("warn record missing: %q", out)
	}
}

func TestNewJSONLogger(t *testing.T) {
	var buf bytes.Buffer
	logger, err := logging.New(logging.Options{Level: "debug", Format: "json", Writer: &buf})
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}

	logger.Debug("transcoding", logging.FieldBank, "A")

	var record map[string]any
	if err := json.Unmarshal(buf.Bytes(), &record); err != nil {
		t.Fatalf("parse JSON record: %v (%q)", err, buf.String())
	}
	if record["msg"] != "transcoding" {
		t.Fatalf("unexpected msg field: %v", record["msg"])
	}
	if record["level"] != "debug" {
		t.Fatalf("unexpected level field: %v", record["level"])
	}
	if record["bank"] != "A" {
		t.Fatalf("unexpected bank field: %v", record["bank"])
	}
}

func TestNewRejectsUnknownFormat(t *testing.T) {
	if _, err := logging.New(logging.Options{Format: "xml"}); err == nil {
		t.Fatal("expected error for unsupported format")
	}
}

func TestNewNopDiscards(t *testing.T) {
	logger := logging.NewNop()
	logger.Error("should not panic", logging.Error(nil))
}
