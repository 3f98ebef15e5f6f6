package analyze

import (
	"reflect"

	"classmap-builder/primitive"
)

// Analyzer converts reflect types into TypeInfo descriptors.
// An Analyzer is not safe for concurrent use.
type Analyzer struct {
	typeCache map[reflect.Type]*TypeInfo // Cache to handle recursive types
}

// NewAnalyzer creates a new Analyzer.
func NewAnalyzer() *Analyzer {
	return &Analyzer{
		typeCache: make(map[reflect.Type]*TypeInfo),
	}
}

// Analyze returns the descriptor for t, analyzing nested types as needed.
func (a *Analyzer) Analyze(t reflect.Type) *TypeInfo {
	if t == nil {
		return nil
	}

	// Check cache to handle recursive types
	if cached, ok := a.typeCache[t]; ok {
		return cached
	}

	info := &TypeInfo{
		GoType: t,
		ID:     TypeID{PkgPath: t.PkgPath(), Name: t.Name()},
	}

	// Pre-cache to handle recursive types (we'll fill in details)
	a.typeCache[t] = info

	// Leaf kinds are checked first so that *time.Time or decimal.Decimal are
	// never treated as navigable pointers or structs.
	if kind := primitive.FromReflectType(t); kind != 0 {
		info.Kind = TypeKindLeaf
		info.Leaf = kind

		return info
	}

	switch t.Kind() {
	case reflect.Struct:
		info.Kind = TypeKindStruct
		a.analyzeStructFields(t, info)

	case reflect.Pointer:
		info.Kind = TypeKindPointer
		info.ElemType = a.Analyze(t.Elem())

	case reflect.Slice:
		info.Kind = TypeKindSlice
		info.ElemType = a.Analyze(t.Elem())

	case reflect.Array:
		info.Kind = TypeKindArray
		info.ElemType = a.Analyze(t.Elem())

	case reflect.Map:
		info.Kind = TypeKindMap

	case reflect.Bool, reflect.String,
		reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr,
		reflect.Float32, reflect.Float64, reflect.Complex64, reflect.Complex128:
		info.Kind = TypeKindBasic

	default:
		// Interfaces, channels, functions, unsafe pointers
		info.Kind = TypeKindUnknown
	}

	return info
}

// analyzeStructFields collects the visible exported fields of a struct,
// including fields promoted from embedded structs.
func (a *Analyzer) analyzeStructFields(t reflect.Type, info *TypeInfo) {
	info.byName = make(map[string]int)

	for _, field := range reflect.VisibleFields(t) {
		if !field.IsExported() || !reachable(t, field.Index) {
			continue
		}

		info.byName[field.Name] = len(info.Fields)
		info.Fields = append(info.Fields, FieldInfo{
			Name:     field.Name,
			Type:     a.Analyze(field.Type),
			Tag:      field.Tag,
			Embedded: field.Anonymous,
			Index:    field.Index,
		})
	}
}

// reachable reports whether every embedded hop of a promoted field can be
// written through. A nil pointer to an unexported embedded struct cannot be
// allocated by reflection, so fields behind it are left out.
func reachable(t reflect.Type, index []int) bool {
	owner := t

	for _, i := range index[:len(index)-1] {
		f := owner.Field(i)
		if !f.IsExported() && f.Type.Kind() == reflect.Pointer {
			return false
		}

		owner = f.Type
		for owner.Kind() == reflect.Pointer {
			owner = owner.Elem()
		}
	}

	return true
}
