package asana

import (
	"fmt"
	"time"
)

// dateLayouts covers the ISO-8601 shapes the exports produce: full timestamps
// with a Z suffix or explicit offset, naive timestamps, and bare dates.
var dateLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02",
}

// FormatDate converts an ISO-8601 date string to the zero-padded MM/DD/YYYY
// form Asana expects. Empty input yields an empty string with no error;
// unparseable input yields an empty string and an error the caller may log.
func FormatDate(value string) (string, error) {
	if value == "" {
		return "", nil
	}
	for _, layout := range dateLayouts {
		if parsed, err := time.Parse(layout, value); err == nil {
			return parsed.Format("01/02/2006"), nil
		}
	}
	return "", fmt.Errorf("unparseable date %q", value)
}
