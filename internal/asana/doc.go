// Package asana derives Asana CSV import rows from canonical tasks.
//
// It owns everything specific to the target format: the column sets for both
// supported languages and subtask-handling modes, the priority vocabulary
// mapping with optional German localization, due-date reformatting to
// MM/DD/YYYY, section-name cleanup, and assignee display-name derivation from
// an email address. BuildRows is the entry point; it filters completed tasks,
// flattens subtasks into parent/child rows (or summarizes them in the parent's
// notes), and guarantees every row carries every active column.
package asana
