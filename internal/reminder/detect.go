package reminder

// Format classifies a parsed JSON document.
type Format int

const (
	// FormatUnknown marks a document that is neither a bulk export nor a
	// single record. Callers treat it as unprocessable, not as a panic.
	FormatUnknown Format = iota
	// FormatBulk marks a {"reminders": [...]} collection.
	FormatBulk
	// FormatSingle marks a document that is itself one record.
	FormatSingle
)

func (f Format) String() string {
	switch f {
	case FormatBulk:
		return "bulk"
	case FormatSingle:
		return "single"
	default:
		return "unknown"
	}
}

// DetectFormat classifies a parsed JSON document. A document is bulk when it
// carries a "reminders" array, single when it has a title key in either
// schema's casing, and unknown otherwise.
func DetectFormat(doc map[string]any) Format {
	if value, ok := doc["reminders"]; ok {
		if _, isList := value.([]any); isList {
			return FormatBulk
		}
	}
	if _, ok := doc["Title"]; ok {
		return FormatSingle
	}
	if _, ok := doc["title"]; ok {
		return FormatSingle
	}
	return FormatUnknown
}

// Records extracts the record sequence from a parsed document according to its
// detected format. Unknown documents yield nil.
func Records(doc map[string]any) []Record {
	switch DetectFormat(doc) {
	case FormatBulk:
		return Record(doc).recordSlice("reminders")
	case FormatSingle:
		return []Record{Record(doc)}
	default:
		return nil
	}
}

// IsLegacy reports whether a record uses the legacy capitalized-key schema.
// Bulk collections may mix schemas, so this is re-checked per record.
func (r Record) IsLegacy() bool {
	_, ok := r["Title"]
	return ok
}
