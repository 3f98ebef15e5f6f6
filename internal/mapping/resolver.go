package mapping

import (
	"fmt"
	"strings"

	"classmap-builder/accessor"
	"classmap-builder/internal/analyze"
	"classmap-builder/internal/match"
)

// Segment is a resolved path segment: the field, the type that owns it and,
// through Field.Type, the declared value type.
type Segment struct {
	Name  string
	Owner *analyze.TypeInfo
	Field *analyze.FieldInfo
}

// Resolved is a fully resolved field path. The last segment is the leaf.
type Resolved struct {
	Root     *analyze.TypeInfo
	Path     FieldPath
	Segments []Segment
}

// Leaf returns the last segment.
func (r Resolved) Leaf() Segment {
	return r.Segments[len(r.Segments)-1]
}

// Chain converts the resolved segments into an accessor descriptor.
func (r Resolved) Chain() accessor.Chain {
	chain := accessor.NewChain(r.Root.GoType)
	for _, seg := range r.Segments {
		chain = chain.Field(seg.Name, seg.Field.Index)
	}

	return chain
}

// DirectField returns the field of root named exactly path when path has no
// dot. It is the fast path for flat columns.
func DirectField(root *analyze.TypeInfo, path string) (*analyze.FieldInfo, bool) {
	if strings.Contains(path, ".") {
		return nil, false
	}

	owner := root.Deref()
	if owner == nil || owner.Kind != analyze.TypeKindStruct {
		return nil, false
	}

	return owner.Field(path)
}

// DirectChain builds the single-field accessor descriptor for a direct field.
func DirectChain(root *analyze.TypeInfo, field *analyze.FieldInfo) accessor.Chain {
	return accessor.NewChain(root.GoType).Field(field.Name, field.Index)
}

// Resolve resolves a dotted path against root, segment by segment. Pointer
// types are followed structurally. Any segment that is not a field of the type
// reached so far fails the whole resolution with an *UnknownFieldError.
func Resolve(root *analyze.TypeInfo, path string) (Resolved, error) {
	fp, err := ParsePath(path)
	if err != nil {
		return Resolved{}, &UnknownFieldError{Path: path, Owner: root.String(), Err: err}
	}

	segments := make([]Segment, 0, len(fp.Segments))
	current := root

	for _, seg := range fp.Segments {
		owner := current.Deref()
		if owner == nil || owner.Kind != analyze.TypeKindStruct {
			return Resolved{}, &UnknownFieldError{
				Path:    path,
				Segment: seg.Name,
				Owner:   current.String(),
				Err:     fmt.Errorf("cannot access field on %s kind", kindOf(owner)),
			}
		}

		fld, ok := owner.Field(seg.Name)
		if !ok {
			return Resolved{}, &UnknownFieldError{
				Path:        path,
				Segment:     seg.Name,
				Owner:       owner.String(),
				Suggestions: match.Suggest(seg.Name, owner.FieldNames()),
			}
		}

		segments = append(segments, Segment{Name: seg.Name, Owner: owner, Field: fld})
		current = fld.Type
	}

	return Resolved{Root: root, Path: fp, Segments: segments}, nil
}

func kindOf(t *analyze.TypeInfo) analyze.TypeKind {
	if t == nil {
		return analyze.TypeKindUnknown
	}

	return t.Kind
}

// UnknownFieldError reports a path segment that is not a member of its owning type.
type UnknownFieldError struct {
	Path        string   // the full path being resolved
	Segment     string   // the offending segment, empty when the path itself is malformed
	Owner       string   // the type the segment was looked up on
	Suggestions []string // similarly named fields of Owner
	Err         error    // underlying cause, if any
}

func (e *UnknownFieldError) Error() string {
	var b strings.Builder

	fmt.Fprintf(&b, "path %q: ", e.Path)

	if e.Segment == "" {
		fmt.Fprintf(&b, "cannot resolve on %s", e.Owner)
	} else {
		fmt.Fprintf(&b, "field %q not found in %s", e.Segment, e.Owner)
	}

	if e.Err != nil {
		fmt.Fprintf(&b, ": %v", e.Err)
	}

	if len(e.Suggestions) > 0 {
		fmt.Fprintf(&b, " (did you mean %s?)", strings.Join(e.Suggestions, ", "))
	}

	return b.String()
}

func (e *UnknownFieldError) Unwrap() error {
	return e.Err
}
