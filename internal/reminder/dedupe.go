package reminder

// dedupeKey identifies a logically-identical task. Priority, tags, and
// completion status deliberately stay out of the key: two exports of the same
// reminder can disagree on those without being distinct tasks.
type dedupeKey struct {
	title   string
	notes   string
	section string
	dueDate string
}

// Deduplicate drops tasks whose (title, notes, section, due date) tuple was
// already seen, keeping the first occurrence and the relative order of
// survivors. Because keys are compared on normalized tasks, a legacy-schema
// record and a current-schema record with equal content collapse to one.
func Deduplicate(tasks []Task) []Task {
	seen := make(map[dedupeKey]struct{}, len(tasks))
	survivors := make([]Task, 0, len(tasks))
	for _, task := range tasks {
		key := dedupeKey{
			title:   task.Title,
			notes:   task.Notes,
			section: task.Section,
			dueDate: task.DueDate,
		}
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		survivors = append(survivors, task)
	}
	return survivors
}
