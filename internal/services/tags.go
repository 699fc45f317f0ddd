package services

import "strings"

// ToggleTag adds the tag to the working set, or removes it if already
// present. Used by the tagging modal's preset tag pills.
func ToggleTag(tags []string, tag string) []string {
	for i, t := range tags {
		if t == tag {
			return append(append([]string{}, tags[:i]...), tags[i+1:]...)
		}
	}
	return append(append([]string{}, tags...), tag)
}

// AddCustomTag appends a trimmed free-form tag, ignoring empty input and
// duplicates.
func AddCustomTag(tags []string, input string) []string {
	trimmed := strings.TrimSpace(input)
	if trimmed == "" {
		return tags
	}
	for _, t := range tags {
		if t == trimmed {
			return tags
		}
	}
	return append(append([]string{}, tags...), trimmed)
}
