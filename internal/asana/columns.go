package asana

// Column names shared by every configuration.
const (
	ColumnName          = "Name"
	ColumnAssigneeEmail = "Assignee Email"
	ColumnDueDate       = "Due Date"
	ColumnTags          = "Tags"
	ColumnNotes         = "Notes"
	ColumnSection       = "Section/Column"
	ColumnParentTask    = "Parent task"

	columnPriorityEN = "Priority"
	columnPriorityDE = "Priorität"
)

// PriorityColumn returns the priority column label for the target language.
func PriorityColumn(language string) string {
	if language == "de" {
		return columnPriorityDE
	}
	return columnPriorityEN
}

// Columns returns the ordered CSV header for the given language and
// subtask-handling mode. The Parent task column only exists when subtasks are
// flattened into their own rows.
func Columns(language string, flatten bool) []string {
	columns := []string{
		ColumnName,
		ColumnAssigneeEmail,
		ColumnDueDate,
		ColumnTags,
		ColumnNotes,
		ColumnSection,
	}
	if flatten {
		columns = append(columns, ColumnParentTask)
	}
	return append(columns, PriorityColumn(language))
}
