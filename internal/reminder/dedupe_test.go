package reminder_test

import (
	"testing"

	"taskport/internal/reminder"
)

func TestDeduplicateCollapsesCrossSchemaDuplicates(t *testing.T) {
	legacy := reminder.Normalize(reminder.Record{
		"Title":    "Buy milk",
		"Notes":    "2 liters",
		"List":     "Home",
		"Due Date": "2025-02-08T18:00:00Z",
		"Priority": "High",
	})
	current := reminder.Normalize(reminder.Record{
		"title":    "Buy milk",
		"notes":    "2 liters",
		"list":     "Home",
		"due_date": "2025-02-08T18:00:00Z",
		"prio":     "Hoch",
		"done":     "Ja",
	})

	survivors := reminder.Deduplicate([]reminder.Task{legacy, current})

	if len(survivors) != 1 {
		t.Fatalf("expected 1 survivor, got %d", len(survivors))
	}
	// First occurrence wins, including its non-key fields.
	if survivors[0].Priority != "High" || survivors[0].Completed {
		t.Fatalf("expected the legacy record to survive, got %+v", survivors[0])
	}
}

func TestDeduplicatePreservesOrderOfDistinctTasks(t *testing.T) {
	tasks := []reminder.Task{
		{Title: "c"},
		{Title: "a"},
		{Title: "c"},
		{Title: "b"},
	}

	survivors := reminder.Deduplicate(tasks)

	want := []string{"c", "a", "b"}
	if len(survivors) != len(want) {
		t.Fatalf("expected %d survivors, got %d", len(want), len(survivors))
	}
	for i, title := range want {
		if survivors[i].Title != title {
			t.Errorf("survivor[%d] = %q, want %q", i, survivors[i].Title, title)
		}
	}
}

func TestDeduplicateKeyIgnoresPriorityTagsCompletion(t *testing.T) {
	tasks := []reminder.Task{
		{Title: "same", Priority: "High", Tags: []string{"a"}},
		{Title: "same", Priority: "Low", Completed: true},
	}

	if survivors := reminder.Deduplicate(tasks); len(survivors) != 1 {
		t.Fatalf("priority/tags/completion must not distinguish duplicates, got %d survivors", len(survivors))
	}
}

func TestDeduplicateDifferingFieldsSurvive(t *testing.T) {
	tasks := []reminder.Task{
		{Title: "same", Notes: "x"},
		{Title: "same", Notes: "y"},
		{Title: "same", Notes: "x", Section: "Work"},
		{Title: "same", Notes: "x", DueDate: "2025-01-01"},
	}

	if survivors := reminder.Deduplicate(tasks); len(survivors) != 4 {
		t.Fatalf("expected all 4 distinct tasks to survive, got %d", len(survivors))
	}
}

func TestDeduplicateEmpty(t *testing.T) {
	if survivors := reminder.Deduplicate(nil); len(survivors) != 0 {
		t.Fatalf("expected no survivors, got %v", survivors)
	}
}
