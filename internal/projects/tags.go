package projects

import "strings"

// ParseTags splits comma-separated text into trimmed, non-empty tags.
func ParseTags(text string) []string {
	out := []string{}
	for _, part := range strings.Split(text, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		out = append(out, part)
	}
	return out
}

// FormatTags is the inverse used to prefill edit forms.
func FormatTags(tags []string) string {
	return strings.Join(tags, ", ")
}
