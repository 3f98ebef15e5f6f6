package analyze

import (
	"reflect"
	"slices"

	"classmap-builder/internal/common"
	"classmap-builder/primitive"
)

// TypeID uniquely identifies a type by its package path and name.
type TypeID struct {
	PkgPath string // e.g., "classmap-builder/store"
	Name    string // e.g., "Transaction"
}

// String returns a human-readable representation of the TypeID.
func (t TypeID) String() string {
	if t.PkgPath == "" {
		return t.Name
	}

	return t.PkgPath + "." + t.Name
}

// TypeKind represents the kind of a type.
type TypeKind int

const (
	TypeKindUnknown TypeKind = iota
	TypeKindLeaf             // a type with a primitive.KindEnum: string, *time.Time, uuid.UUID, ...
	TypeKindBasic            // any other basic type: int, float32, named strings, ...
	TypeKindStruct           // struct type that can be navigated into
	TypeKindPointer          // pointer to another type
	TypeKindSlice            // slice of another type
	TypeKindArray            // array of another type
	TypeKindMap              // map type
)

// String returns a human-readable representation of the TypeKind.
func (k TypeKind) String() string {
	switch k {
	case TypeKindLeaf:
		return "leaf"
	case TypeKindBasic:
		return "basic"
	case TypeKindStruct:
		return "struct"
	case TypeKindPointer:
		return "pointer"
	case TypeKindSlice:
		return "slice"
	case TypeKindArray:
		return "array"
	case TypeKindMap:
		return "map"
	default:
		return common.UnknownStr
	}
}

// TypeInfo describes a Go type as seen by the path resolver.
type TypeInfo struct {
	ID       TypeID             // Unique identifier (empty for unnamed types like *T or []T)
	Kind     TypeKind           // Kind of type
	Leaf     primitive.KindEnum // For TypeKindLeaf, the leaf kind
	ElemType *TypeInfo          // For pointers, slices and arrays, the element type
	Fields   []FieldInfo        // For structs, the visible exported fields
	GoType   reflect.Type       // The original reflect.Type

	byName map[string]int
}

// IsNamed returns true if this type has a name (TypeID is set).
func (t *TypeInfo) IsNamed() bool {
	return t.ID.Name != ""
}

// Deref follows pointer types down to the first non-pointer type.
func (t *TypeInfo) Deref() *TypeInfo {
	for t != nil && t.Kind == TypeKindPointer {
		t = t.ElemType
	}

	return t
}

// Field returns the visible exported field with the given name. The lookup is
// ordinal and case-sensitive.
func (t *TypeInfo) Field(name string) (*FieldInfo, bool) {
	i, ok := t.byName[name]
	if !ok {
		return nil, false
	}

	return &t.Fields[i], true
}

// FieldNames returns the field names in declaration order.
func (t *TypeInfo) FieldNames() []string {
	names := make([]string, 0, len(t.Fields))
	for i := range t.Fields {
		names = append(names, t.Fields[i].Name)
	}

	return names
}

// String returns the type's display name.
func (t *TypeInfo) String() string {
	if t == nil {
		return "<nil>"
	}

	if t.IsNamed() {
		return t.ID.String()
	}

	return t.GoType.String()
}

// FieldInfo describes a struct field.
type FieldInfo struct {
	Name     string            // Go field name
	Type     *TypeInfo         // Field type
	Tag      reflect.StructTag // Raw struct tag
	Embedded bool              // Whether the field is embedded (anonymous)
	Index    []int             // Index sequence from the owning struct, longer than one for promoted fields
}

// Promoted reports whether the field is reached through an embedded struct.
func (f *FieldInfo) Promoted() bool {
	return len(f.Index) > 1
}

// IndexPath returns a copy of the index sequence.
func (f *FieldInfo) IndexPath() []int {
	return slices.Clone(f.Index)
}
