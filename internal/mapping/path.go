package mapping

import (
	"errors"
	"fmt"
	"strings"
)

// FieldPath is a parsed dotted field path.
type FieldPath struct {
	Raw      string
	Segments []PathSegment
}

// PathSegment is one dot-delimited component of a field path.
type PathSegment struct {
	Name string
}

// String returns the original path text.
func (p FieldPath) String() string {
	return p.Raw
}

// IsFlat reports whether the path has a single segment.
func (p FieldPath) IsFlat() bool {
	return len(p.Segments) == 1
}

// ParsePath parses a field path string into a FieldPath.
// Supports: "Field", "Nested.Field", "A.B.C".
func ParsePath(path string) (FieldPath, error) {
	if path == "" {
		return FieldPath{}, errors.New("empty path")
	}

	var segments []PathSegment

	for part := range strings.SplitSeq(path, ".") {
		if part == "" {
			return FieldPath{}, fmt.Errorf("invalid path %q: empty segment", path)
		}

		segments = append(segments, PathSegment{Name: part})
	}

	return FieldPath{Raw: path, Segments: segments}, nil
}
