package diagnostic

import (
	"slices"
	"strconv"
	"strings"
)

// PathSegment is one step of a Path: either a named field or a list index.
type PathSegment struct {
	Name    string
	Index   int
	IsIndex bool
}

// Path is the position of a value inside an output tree. It is a value type;
// Field and Index return extended copies and never modify the receiver.
type Path struct {
	segments []PathSegment
}

// Field returns the path extended by a named field.
func (p Path) Field(name string) Path {
	return Path{segments: append(slices.Clip(p.segments), PathSegment{Name: name})}
}

// Index returns the path extended by a list position.
func (p Path) Index(i int) Path {
	return Path{segments: append(slices.Clip(p.segments), PathSegment{Index: i, IsIndex: true})}
}

// IsRoot returns true for the empty path.
func (p Path) IsRoot() bool {
	return len(p.segments) == 0
}

// String renders the full path: "location.city", "tags[2]", "friends[0].id".
func (p Path) String() string {
	return render(p.segments)
}

// Leaf renders the name a diagnostic message uses: the last field name,
// followed by any trailing indexes ("tags[2]").
func (p Path) Leaf() string {
	start := len(p.segments)
	for start > 0 {
		start--
		if !p.segments[start].IsIndex {
			break
		}
	}

	return render(p.segments[start:])
}

func render(segments []PathSegment) string {
	var sb strings.Builder

	for i, seg := range segments {
		if seg.IsIndex {
			sb.WriteByte('[')
			sb.WriteString(strconv.Itoa(seg.Index))
			sb.WriteByte(']')

			continue
		}

		if i > 0 {
			sb.WriteByte('.')
		}

		sb.WriteString(seg.Name)
	}

	return sb.String()
}
