package classmap

import (
	"reflect"
	"strings"

	"classmap-builder/internal/analyze"
)

// maxAutoDepth bounds how deep AutoSpecs descends into nested structs.
const maxAutoDepth = 8

// Reference rebases the specs of a nested type under member, so a class map
// written for Product can be reused inside Transaction as "Product.*".
func Reference(member string, specs ...FieldSpec) []FieldSpec {
	out := make([]FieldSpec, 0, len(specs))

	for _, s := range specs {
		s.Path = member + "." + s.Path
		out = append(out, s)
	}

	return out
}

// AutoSpecs lists one spec per mappable leaf of modelType, depth-first in
// field declaration order. Columns are numbered from zero and aliases are the
// lowercased path with dots replaced by underscores.
func AutoSpecs(modelType reflect.Type) ([]FieldSpec, error) {
	root, err := analyzeModel(modelType)
	if err != nil {
		return nil, err
	}

	leaves := analyze.LeafPaths(root, maxAutoDepth)
	specs := make([]FieldSpec, 0, len(leaves))

	for i, leaf := range leaves {
		specs = append(specs, FieldSpec{
			ColumnIndex: i,
			Alias:       strings.ToLower(strings.ReplaceAll(leaf.Path, ".", "_")),
			Path:        leaf.Path,
		})
	}

	return specs, nil
}
