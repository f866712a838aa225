package asana

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

var titleCaser = cases.Title(language.Und)

// DisplayName derives a human-readable name from an email address: the local
// part is split on dots and each segment title-cased, so "john.doe@corp.com"
// becomes "John Doe" and "admin@corp.com" becomes "Admin". Empty input yields
// an empty name.
func DisplayName(email string) string {
	local, _, _ := strings.Cut(email, "@")
	if local == "" {
		return ""
	}
	segments := strings.Split(local, ".")
	for i, segment := range segments {
		segments[i] = titleCaser.String(segment)
	}
	return strings.Join(segments, " ")
}
