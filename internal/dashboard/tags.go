package dashboard

import "github.com/MrSnakeDoc/mafl/internal/domain"

// defaultTagColor is assigned to tag names that were never declared.
const defaultTagColor = "blue"

// TagIndex is a lookup of declared tags by name.
type TagIndex map[string]domain.Tag

// BuildTagIndex indexes declared tags by name. Later declarations win on
// duplicate names.
func BuildTagIndex(tags []domain.Tag) TagIndex {
	idx := make(TagIndex, len(tags))
	for _, tag := range tags {
		idx[tag.Name] = tag
	}
	return idx
}

// ResolveTag turns a tag reference into a full tag. Inline objects pass
// through untouched; name references resolve against the index, or
// synthesize a tag with the default color when undeclared.
func ResolveTag(ref TagRef, idx TagIndex) domain.Tag {
	if ref.Tag != nil {
		return *ref.Tag
	}
	if tag, ok := idx[ref.Name]; ok {
		return tag
	}
	return domain.Tag{Name: ref.Name, Color: defaultTagColor}
}
