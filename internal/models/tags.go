package models

// TagAll is the sentinel filter value meaning "no tag filter".
const TagAll = "All"

// TagOther is the group label for items that carry no tags.
const TagOther = "Other"

// PresetTags are the built-in labels offered during photo tagging.
var PresetTags = []string{
	"Bride", "Groom", "Couple", "Family", "Kids", "Wedding", "Portrait", "Male", "Female",
}

// GalleryFilterTags is the fixed order of the gallery filter pills.
var GalleryFilterTags = []string{
	TagAll, "Portrait", "Wedding", "Couple", "Bride", "Groom", "Family", "Kids", "Male", "Female",
}
