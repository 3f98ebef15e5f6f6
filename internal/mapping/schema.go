package mapping

import "classmap-builder/internal/common"

// SpecFile represents the root of a YAML field-spec file.
type SpecFile struct {
	// Version of the spec schema (for future compatibility).
	Version string `yaml:"version,omitempty"`

	// Model optionally names the model type the specs target (e.g., "store.Transaction").
	// It is informational; the caller supplies the actual type.
	Model string `yaml:"model,omitempty"`

	// Fields is the ordered list of field specs.
	Fields []FieldSpec `yaml:"fields"`
}

// FieldSpec binds a column position and alias to a dotted target field path.
type FieldSpec struct {
	// ColumnIndex is the position of the column in a row.
	ColumnIndex int `yaml:"index"`

	// Alias is the column's external name (e.g., the header text).
	Alias string `yaml:"alias,omitempty"`

	// Path is the dot-separated field path relative to the model type.
	Path string `yaml:"path"`
}

// SpecsWithPath returns, in order, every spec whose path equals path.
// The comparison is ordinal: case-sensitive, no trimming or normalization.
func SpecsWithPath(specs []FieldSpec, path string) []FieldSpec {
	var out []FieldSpec

	for _, s := range specs {
		if s.Path == path {
			out = append(out, s)
		}
	}

	return out
}

// SpecsWithAlias returns, in order, every spec whose alias equals alias.
func SpecsWithAlias(specs []FieldSpec, alias string) []FieldSpec {
	var out []FieldSpec

	for _, s := range specs {
		if s.Alias == alias {
			out = append(out, s)
		}
	}

	return out
}

// Binding applies the ambiguity policy to path: the first spec naming the
// path supplies the column metadata, and the binding is ignored unless exactly
// one spec names the path.
func Binding(specs []FieldSpec, path string) (FieldSpec, bool) {
	matches := SpecsWithPath(specs, path)
	if common.IsEmpty(matches) {
		return FieldSpec{}, true
	}

	first, _ := common.First(matches)

	return first, !common.IsSingle(matches)
}
