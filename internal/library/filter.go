package library

import (
	"strings"

	"github.com/frameflow/frameflow-core/internal/models"
)

// FilterMedia returns the items matching the tag and search filters. It is
// a pure function: no I/O, the input is never mutated, order is preserved.
//
// A tag of "" or the sentinel "All" applies no tag filter; otherwise an
// item must carry the tag exactly (case-sensitive). A non-empty searchText
// keeps items where at least one tag contains it case-insensitively. Both
// filters compose with AND.
func FilterMedia(items []models.MediaItem, tag, searchText string) []models.MediaItem {
	out := make([]models.MediaItem, 0, len(items))
	needle := strings.ToLower(searchText)
	for _, item := range items {
		if tag != "" && tag != models.TagAll && !item.HasTag(tag) {
			continue
		}
		if needle != "" && !anyTagContains(item.Tags, needle) {
			continue
		}
		out = append(out, item)
	}
	return out
}

// anyTagContains reports whether any tag contains the lowercased needle.
func anyTagContains(tags []string, needle string) bool {
	for _, t := range tags {
		if strings.Contains(strings.ToLower(t), needle) {
			return true
		}
	}
	return false
}

// TagGroup is one bucket of the group-by-first-tag projection.
type TagGroup struct {
	Name  string
	Items []models.MediaItem
}

// GroupByFirstTag groups items by their first tag, or "Other" for untagged
// items. Group order follows the first occurrence of each key as items are
// scanned in stored order. This is a derived view: it must be recomputed
// from a fresh LoadMedia on every use and never cached, since the media
// array can change between calls.
func GroupByFirstTag(items []models.MediaItem) []TagGroup {
	index := make(map[string]int)
	groups := make([]TagGroup, 0)
	for _, item := range items {
		name := models.TagOther
		if len(item.Tags) > 0 {
			name = item.Tags[0]
		}
		i, ok := index[name]
		if !ok {
			i = len(groups)
			index[name] = i
			groups = append(groups, TagGroup{Name: name})
		}
		groups[i].Items = append(groups[i].Items, item)
	}
	return groups
}

// AvailableTags returns the sentinel "All" followed by every distinct tag
// in first-occurrence order. The gallery builds its filter pills from this.
func AvailableTags(items []models.MediaItem) []string {
	tags := []string{models.TagAll}
	seen := map[string]struct{}{models.TagAll: {}}
	for _, item := range items {
		for _, t := range item.Tags {
			if _, ok := seen[t]; ok {
				continue
			}
			seen[t] = struct{}{}
			tags = append(tags, t)
		}
	}
	return tags
}
