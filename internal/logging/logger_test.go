package logging_test

import (
	"bytes"
	"strings"
	"testing"

	"taskport/internal/logging"
)

func TestNewConsoleFormat(t *testing.T) {
	var buf bytes.Buffer
	logger, err := logging.New(logging.Options{Level: "info", Format: "console", Writer: &buf})
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}

	logger.Info("converted file", logging.String("path", "export.json"), logging.Int("rows", 3))

	line := buf.String()
	if !strings.Contains(line, "converted file") {
		t.Fatalf("expected message in output, got %q", line)
	}
	if !strings.Contains(line, "path=export.json") || !strings.Contains(line, "rows=3") {
		t.Fatalf("expected attrs in output, got %q", line)
	}
}

func TestNewJSONFormat(t *testing.T) {
	var buf bytes.Buffer
	logger, err := logging.New(logging.Options{Level: "info", Format: "json", Writer: &buf})
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}

	logger.Warn("unparseable date", logging.String("value", "not-a-date"))

	if !strings.Contains(buf.String(), `"unparseable date"`) {
		t.Fatalf("expected json output, got %q", buf.String())
	}
}

func TestNewRejectsUnknownFormat(t *testing.T) {
	if _, err := logging.New(logging.Options{Format: "yaml"}); err == nil {
		t.Fatal("expected error for unsupported format")
	}
}

func TestVerboseLowersLevel(t *testing.T) {
	var buf bytes.Buffer
	logger, err := logging.New(logging.Options{Level: "info", Format: "console", Writer: &buf, Verbose: true})
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}

	logger.Debug("record defaulted", logging.String("field", "notes"))

	if !strings.Contains(buf.String(), "record defaulted") {
		t.Fatalf("expected debug line with verbose enabled, got %q", buf.String())
	}
}

func TestNewComponentLoggerTagsLines(t *testing.T) {
	var buf bytes.Buffer
	base, err := logging.New(logging.Options{Format: "console", Writer: &buf})
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}

	logger := logging.NewComponentLogger(base, "convert")
	logger.Info("converted file")

	if !strings.Contains(buf.String(), "component=convert") {
		t.Fatalf("expected component attr, got %q", buf.String())
	}
}

func TestNewComponentLoggerNilBaseIsNop(t *testing.T) {
	logger := logging.NewComponentLogger(nil, "rows")
	logger.Error("should not panic")
}

func TestNewNopDiscards(t *testing.T) {
	logger := logging.NewNop()
	logger.Error("should not panic", logging.Error(nil))
}

func TestConsoleQuotesValuesWithSpaces(t *testing.T) {
	var buf bytes.Buffer
	logger, err := logging.New(logging.Options{Format: "console", Writer: &buf})
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}

	logger.Info("skip", logging.String("title", "Buy milk"))

	if !strings.Contains(buf.String(), `title="Buy milk"`) {
		t.Fatalf("expected quoted attr value, got %q", buf.String())
	}
}
