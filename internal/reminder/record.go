package reminder

// Record is one raw key/value document from a JSON export, in either schema.
type Record map[string]any

// Task is the canonical, schema-agnostic form of one reminder. Priority stays
// the raw source string; the output layer owns vocabulary mapping so language
// choices do not leak into this model.
type Task struct {
	Title     string
	Notes     string
	Section   string
	DueDate   string
	Priority  string
	Completed bool
	Tags      []string
	Subtasks  []Task

	Flagged     bool
	HasReminder bool
	Location    string
	URL         string
}

func (r Record) stringValue(key string) string {
	value, ok := r[key]
	if !ok {
		return ""
	}
	s, ok := value.(string)
	if !ok {
		return ""
	}
	return s
}

func (r Record) boolValue(key string) bool {
	value, ok := r[key]
	if !ok {
		return false
	}
	b, ok := value.(bool)
	return ok && b
}

func (r Record) stringSlice(key string) []string {
	value, ok := r[key]
	if !ok {
		return nil
	}
	items, ok := value.([]any)
	if !ok {
		return nil
	}
	out := make([]string, 0, len(items))
	for _, item := range items {
		if s, ok := item.(string); ok {
			out = append(out, s)
		}
	}
	return out
}

func (r Record) recordSlice(key string) []Record {
	value, ok := r[key]
	if !ok {
		return nil
	}
	items, ok := value.([]any)
	if !ok {
		return nil
	}
	out := make([]Record, 0, len(items))
	for _, item := range items {
		if m, ok := item.(map[string]any); ok {
			out = append(out, Record(m))
		}
	}
	return out
}
