package reminder_test

import (
	"encoding/json"
	"testing"

	"taskport/internal/reminder"
)

func parseDoc(t *testing.T, raw string) map[string]any {
	t.Helper()
	var doc map[string]any
	if err := json.Unmarshal([]byte(raw), &doc); err != nil {
		t.Fatalf("unmarshal test document: %v", err)
	}
	return doc
}

func TestDetectFormat(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want reminder.Format
	}{
		{"bulk", `{"reminders": [{"title": "a"}]}`, reminder.FormatBulk},
		{"bulk empty list", `{"reminders": []}`, reminder.FormatBulk},
		{"reminders not a list", `{"reminders": "nope"}`, reminder.FormatUnknown},
		{"single current schema", `{"title": "a", "notes": ""}`, reminder.FormatSingle},
		{"single legacy schema", `{"Title": "a", "Notes": ""}`, reminder.FormatSingle},
		{"unknown", `{"items": []}`, reminder.FormatUnknown},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := reminder.DetectFormat(parseDoc(t, tt.raw))
			if got != tt.want {
				t.Errorf("DetectFormat() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestFormatString(t *testing.T) {
	if reminder.FormatBulk.String() != "bulk" {
		t.Errorf("FormatBulk.String() = %q", reminder.FormatBulk.String())
	}
	if reminder.FormatSingle.String() != "single" {
		t.Errorf("FormatSingle.String() = %q", reminder.FormatSingle.String())
	}
	if reminder.FormatUnknown.String() != "unknown" {
		t.Errorf("FormatUnknown.String() = %q", reminder.FormatUnknown.String())
	}
}

func TestRecordsBulk(t *testing.T) {
	doc := parseDoc(t, `{"reminders": [{"title": "one"}, {"Title": "two"}]}`)

	records := reminder.Records(doc)
	if len(records) != 2 {
		t.Fatalf("expected 2 records, got %d", len(records))
	}
	if records[0].IsLegacy() {
		t.Error("first record should use the current schema")
	}
	if !records[1].IsLegacy() {
		t.Error("second record should use the legacy schema")
	}
}

func TestRecordsSingle(t *testing.T) {
	doc := parseDoc(t, `{"title": "solo"}`)

	records := reminder.Records(doc)
	if len(records) != 1 {
		t.Fatalf("expected 1 record, got %d", len(records))
	}
}

func TestRecordsUnknown(t *testing.T) {
	doc := parseDoc(t, `{"tasks": []}`)

	if records := reminder.Records(doc); records != nil {
		t.Fatalf("expected nil records for unknown document, got %v", records)
	}
}
