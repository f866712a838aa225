package asana

// sourceLevels maps the full priority vocabulary seen across both source
// export languages to the three-level target scale. The empty value means
// "no priority"; Asana leaves the field unset on import.
var sourceLevels = map[string]string{
	// German export values.
	"Ohne":    "",
	"Gering":  "Low",
	"Niedrig": "Low",
	"Mittel":  "Medium",
	"Hoch":    "High",
	// English export values.
	"None":   "",
	"Low":    "Low",
	"Medium": "Medium",
	"High":   "High",
	"":       "",
}

var germanLevels = map[string]string{
	"Low":    "Niedrig",
	"Medium": "Mittel",
	"High":   "Hoch",
}

// MapPriority converts a raw source priority to the target value in the given
// language. Unrecognized input maps to the empty value rather than a guessed
// level: omitting a priority is recoverable on the Asana side, assuming
// lowest urgency is not.
func MapPriority(raw, language string) string {
	level, ok := sourceLevels[raw]
	if !ok {
		level = ""
	}
	if language == "de" {
		return germanLevels[level]
	}
	return level
}
