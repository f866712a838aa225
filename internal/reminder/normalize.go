package reminder

// germanYes is the affirmative marker the current export schema uses for its
// boolean-ish string fields.
const germanYes = "Ja"

// Normalize maps one raw record in either schema to a Task. Missing keys
// default to zero values; it never fails. Priority is carried through as the
// raw source string.
func Normalize(r Record) Task {
	if r.IsLegacy() {
		return Task{
			Title:     r.stringValue("Title"),
			Notes:     r.stringValue("Notes"),
			Section:   r.stringValue("List"),
			DueDate:   r.stringValue("Due Date"),
			Priority:  r.stringValue("Priority"),
			Completed: r.boolValue("Is Completed"),
		}
	}

	task := Task{
		Title:       r.stringValue("title"),
		Notes:       r.stringValue("notes"),
		Section:     r.stringValue("list"),
		DueDate:     r.stringValue("due_date"),
		Priority:    r.stringValue("prio"),
		Completed:   r.stringValue("done") == germanYes,
		Tags:        r.stringSlice("tags"),
		Flagged:     r.stringValue("flagged") == germanYes,
		HasReminder: r.stringValue("has_reminder") == germanYes,
		Location:    r.stringValue("reminder_location"),
		URL:         r.stringValue("url"),
	}

	// Subtasks share the current schema and nest at most one level deep.
	for _, sub := range r.recordSlice("subtasks") {
		task.Subtasks = append(task.Subtasks, Normalize(sub))
	}

	return task
}

// NormalizeAll maps a record sequence to tasks, preserving order.
func NormalizeAll(records []Record) []Task {
	tasks := make([]Task, 0, len(records))
	for _, r := range records {
		tasks = append(tasks, Normalize(r))
	}
	return tasks
}
