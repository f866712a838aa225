package asana

import "strings"

// FormatSection prepares a list name for the Section/Column field. A trailing
// colon is stripped because Asana appends its own when rendering sections;
// anything else passes through unchanged.
func FormatSection(listName string) string {
	if strings.HasSuffix(listName, ":") {
		return strings.TrimRight(strings.TrimSuffix(listName, ":"), " \t")
	}
	return listName
}
