package mapping

import (
	"errors"
	"fmt"

	"classmap-builder/dispatch"
	"classmap-builder/internal/analyze"
	"classmap-builder/internal/diagnostic"
	"classmap-builder/options"
)

// Validate checks every spec against root without stopping at the first
// failure. Unresolvable paths and unsupported leaf types are errors; paths
// named more than once and aliases shared by different paths are warnings;
// column indexes reused across paths are informational.
func Validate(root *analyze.TypeInfo, specs []FieldSpec, allowed options.CategoryEnum) *diagnostic.Diagnostics {
	diags := &diagnostic.Diagnostics{}

	if owner := root.Deref(); owner == nil || owner.Kind != analyze.TypeKindStruct {
		diags.AddError(diagnostic.CodeInvalidModel,
			fmt.Sprintf("model %s is not a struct type", root), diagnostic.NoSubject)

		return diags
	}

	for _, spec := range specs {
		validateSpec(diags, root, spec, allowed)
	}

	diags.Merge(*Lint(specs))

	return diags
}

// Lint reports the problems visible from the specs alone, without a model
// type: ambiguous paths, shared aliases and reused columns. It never reports
// errors.
func Lint(specs []FieldSpec) *diagnostic.Diagnostics {
	diags := &diagnostic.Diagnostics{}

	validateAmbiguity(diags, specs)
	validateAliases(diags, specs)
	validateColumns(diags, specs)

	return diags
}

func subjectOf(spec FieldSpec) diagnostic.Subject {
	return diagnostic.Subject{FieldPath: spec.Path, Alias: spec.Alias, ColumnIndex: spec.ColumnIndex}
}

func validateSpec(diags *diagnostic.Diagnostics, root *analyze.TypeInfo, spec FieldSpec, allowed options.CategoryEnum) {
	res, err := Resolve(root, spec.Path)
	if err != nil {
		var ufe *UnknownFieldError
		if errors.As(err, &ufe) {
			diags.AddError(diagnostic.CodeUnknownField, err.Error(), subjectOf(spec), ufe.Suggestions...)
		} else {
			diags.AddError(diagnostic.CodeUnknownField, err.Error(), subjectOf(spec))
		}

		return
	}

	if _, err := dispatch.Dispatch(res.Chain(), allowed); err != nil {
		diags.AddError(diagnostic.CodeUnsupportedType, err.Error(), subjectOf(spec))
	}
}

func validateAmbiguity(diags *diagnostic.Diagnostics, specs []FieldSpec) {
	seen := make(map[string]bool)

	for _, spec := range specs {
		if seen[spec.Path] {
			continue
		}

		seen[spec.Path] = true

		if n := len(SpecsWithPath(specs, spec.Path)); n > 1 {
			diags.AddWarning(diagnostic.CodeAmbiguousPath,
				fmt.Sprintf("path is named by %d specs; all are ignored", n), subjectOf(spec))
		}
	}
}

func validateAliases(diags *diagnostic.Diagnostics, specs []FieldSpec) {
	seen := make(map[string]bool)

	for _, spec := range specs {
		if spec.Alias == "" || seen[spec.Alias] {
			continue
		}

		seen[spec.Alias] = true

		paths := distinctPaths(SpecsWithAlias(specs, spec.Alias))
		if len(paths) > 1 {
			diags.AddWarning(diagnostic.CodeDuplicateAlias,
				fmt.Sprintf("alias is shared by paths %v; lookups by alias return %s", paths, paths[0]),
				subjectOf(spec))
		}
	}
}

func validateColumns(diags *diagnostic.Diagnostics, specs []FieldSpec) {
	byColumn := make(map[int][]FieldSpec)

	var order []int

	for _, spec := range specs {
		if _, ok := byColumn[spec.ColumnIndex]; !ok {
			order = append(order, spec.ColumnIndex)
		}

		byColumn[spec.ColumnIndex] = append(byColumn[spec.ColumnIndex], spec)
	}

	for _, col := range order {
		group := byColumn[col]

		paths := distinctPaths(group)
		if len(paths) > 1 {
			diags.AddInfo(diagnostic.CodeDuplicateColumn,
				fmt.Sprintf("column feeds paths %v", paths), subjectOf(group[0]))
		}
	}
}

func distinctPaths(specs []FieldSpec) []string {
	var paths []string

	seen := make(map[string]bool)

	for _, s := range specs {
		if !seen[s.Path] {
			seen[s.Path] = true
			paths = append(paths, s.Path)
		}
	}

	return paths
}
