package analyze

import (
	"strings"
)

// LeafPath is a dotted field path ending at a mappable leaf.
type LeafPath struct {
	Path  string
	Field *FieldInfo
}

// LeafPaths lists every path from root to a TypeKindLeaf field, depth-first in
// field declaration order. Nesting stops at maxDepth segments and at types
// already on the current path, so recursive types terminate.
func LeafPaths(root *TypeInfo, maxDepth int) []LeafPath {
	root = root.Deref()
	if root == nil || root.Kind != TypeKindStruct {
		return nil
	}

	var out []LeafPath

	collectLeafPaths(root, nil, map[*TypeInfo]bool{root: true}, maxDepth, &out)

	return out
}

func collectLeafPaths(t *TypeInfo, prefix []string, onPath map[*TypeInfo]bool, maxDepth int, out *[]LeafPath) {
	if len(prefix) >= maxDepth {
		return
	}

	for i := range t.Fields {
		field := &t.Fields[i]
		path := append(prefix[:len(prefix):len(prefix)], field.Name)

		switch ft := field.Type.Deref(); {
		case field.Type.Kind == TypeKindLeaf:
			*out = append(*out, LeafPath{Path: strings.Join(path, "."), Field: field})

		case ft != nil && ft.Kind == TypeKindStruct && !onPath[ft]:
			// Embedded structs are already flattened into promoted fields.
			if field.Embedded {
				continue
			}

			onPath[ft] = true
			collectLeafPaths(ft, path, onPath, maxDepth, out)
			delete(onPath, ft)
		}
	}
}
