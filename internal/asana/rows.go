package asana

import (
	"fmt"
	"log/slog"
	"strings"

	"taskport/internal/logging"
	"taskport/internal/reminder"
)

// Options carries the run-time knobs the row builder needs. The value is
// immutable for the duration of one build.
type Options struct {
	AssigneeEmail    string
	Language         string
	IncludeCompleted bool
	FlattenSubtasks  bool
	Logger           *slog.Logger
}

// Row is one flat CSV record. Its key set is exactly the active column set;
// every declared column is present, empty when not applicable.
type Row map[string]string

// BuildResult is the outcome of one row-building pass.
type BuildResult struct {
	Rows    []Row
	Skipped int
}

// BuildRows turns canonical tasks into ordered output rows. Completed tasks
// are dropped (and counted) unless IncludeCompleted is set. With
// FlattenSubtasks enabled each subtask becomes its own row directly after its
// parent; otherwise subtasks are summarized inside the parent's notes.
func BuildRows(tasks []reminder.Task, opts Options) BuildResult {
	logger := logging.NewComponentLogger(opts.Logger, "rows")

	result := BuildResult{}
	total := len(tasks)
	for i, task := range tasks {
		if task.Completed && !opts.IncludeCompleted {
			logger.Debug("skipping completed task",
				logging.Int("index", i+1),
				logging.Int("total", total),
				logging.String("title", task.Title),
			)
			result.Skipped++
			continue
		}

		parentTitle := reminder.DisplayTitle(task.Title)
		result.Rows = append(result.Rows, buildRow(task, "", false, opts, logger))

		if opts.FlattenSubtasks {
			for _, sub := range task.Subtasks {
				result.Rows = append(result.Rows, buildRow(sub, parentTitle, true, opts, logger))
			}
		}

		logger.Debug("converted task",
			logging.Int("index", i+1),
			logging.Int("total", total),
			logging.String("title", task.Title),
		)
	}
	return result
}

func buildRow(task reminder.Task, parent string, isSubtask bool, opts Options, logger *slog.Logger) Row {
	clean, hashtags := reminder.ExtractTags(task.Title)
	name := clean
	if name == "" {
		name = task.Title
	}
	tags := reminder.MergeTags(hashtags, task.Tags)

	due, err := FormatDate(task.DueDate)
	if err != nil {
		logger.Warn("could not convert due date",
			logging.String("title", task.Title),
			logging.Error(err),
		)
	}

	// Subtasks never carry a section, even when the parent's title is empty.
	section := ""
	if !isSubtask {
		section = FormatSection(task.Section)
	}

	row := Row{
		ColumnName:                    name,
		ColumnAssigneeEmail:           opts.AssigneeEmail,
		ColumnDueDate:                 due,
		ColumnTags:                    strings.Join(tags, ", "),
		ColumnNotes:                   buildNotes(task, opts.FlattenSubtasks),
		ColumnSection:                 section,
		PriorityColumn(opts.Language): MapPriority(task.Priority, opts.Language),
	}
	if opts.FlattenSubtasks {
		row[ColumnParentTask] = parent
	}
	return row
}

// buildNotes appends extended metadata lines to a task's notes, each tagged
// with a marker glyph, in a fixed order. When subtasks are not flattened into
// rows they are summarized here as well.
func buildNotes(task reminder.Task, flatten bool) string {
	var extras []string
	if task.Flagged {
		extras = append(extras, "⭐ Flagged")
	}
	if task.HasReminder {
		extras = append(extras, "🔔 Has Reminder")
	}
	if task.Location != "" {
		extras = append(extras, "📍 Location: "+task.Location)
	}
	if task.URL != "" {
		extras = append(extras, "🔗 URL: "+task.URL)
	}
	if !flatten && len(task.Subtasks) > 0 {
		extras = append(extras, fmt.Sprintf("📝 %d subtasks", len(task.Subtasks)))
		for _, sub := range task.Subtasks {
			extras = append(extras, "– "+reminder.DisplayTitle(sub.Title))
		}
	}

	if len(extras) == 0 {
		return task.Notes
	}
	block := strings.Join(extras, "\n")
	if task.Notes == "" {
		return block
	}
	return task.Notes + "\n\n" + block
}
