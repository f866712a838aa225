package reminder

import (
	"regexp"
	"strings"
)

// Word characters are spelled out as Unicode classes: the exports carry
// German tags like #büro, which an ASCII-only \w would split mid-rune.
var (
	hashtagPattern  = regexp.MustCompile(`#([\p{L}\p{N}_]+)`)
	hashtagStripper = regexp.MustCompile(`\s*#[\p{L}\p{N}_]+`)
)

// ExtractTags pulls #word tokens out of a title in left-to-right order and
// returns the cleaned title alongside them. Each token is removed together
// with any whitespace immediately before it. The clean title can come back
// empty when the title was nothing but tags; callers that need a display name
// fall back to the original title (see DisplayTitle).
func ExtractTags(title string) (string, []string) {
	matches := hashtagPattern.FindAllStringSubmatch(title, -1)
	var tags []string
	for _, match := range matches {
		tags = append(tags, match[1])
	}

	clean := strings.TrimSpace(hashtagStripper.ReplaceAllString(title, ""))
	return clean, tags
}

// DisplayTitle returns the tag-stripped title, or the original title when
// stripping left nothing, so a row never loses its name.
func DisplayTitle(title string) string {
	clean, _ := ExtractTags(title)
	if clean == "" {
		return title
	}
	return clean
}

// MergeTags concatenates hashtag-derived tags with a record's native tags and
// deduplicates case-insensitively, keeping the first occurrence and its
// original casing.
func MergeTags(hashtags, native []string) []string {
	seen := make(map[string]struct{}, len(hashtags)+len(native))
	var merged []string
	for _, tag := range append(append([]string{}, hashtags...), native...) {
		key := strings.ToLower(tag)
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		merged = append(merged, tag)
	}
	return merged
}
