package classmap

import (
	"iter"
	"reflect"
	"slices"

	"classmap-builder/accessor"
	"classmap-builder/internal/diagnostic"
	"classmap-builder/internal/mapping"
	"classmap-builder/primitive"
)

// FieldSpec binds a column position and alias to a dotted target field path.
type FieldSpec = mapping.FieldSpec

// SpecFile is the YAML document holding an ordered list of field specs.
type SpecFile = mapping.SpecFile

type (
	Diagnostics = diagnostic.Diagnostics
	Diagnostic  = diagnostic.Diagnostic
)

// Diagnostic codes reported by Validate and recorded on a Definition.
const (
	CodeUnknownField    = diagnostic.CodeUnknownField
	CodeUnsupportedType = diagnostic.CodeUnsupportedType
	CodeAmbiguousPath   = diagnostic.CodeAmbiguousPath
	CodeDuplicateAlias  = diagnostic.CodeDuplicateAlias
	CodeDuplicateColumn = diagnostic.CodeDuplicateColumn
	CodeInvalidModel    = diagnostic.CodeInvalidModel
)

// MappingEntry is one assembled column binding.
type MappingEntry struct {
	// ColumnIndex and Alias come from the first spec naming the entry's path.
	ColumnIndex int
	Alias       string
	// Ignored is set when the path is named by more than one spec.
	Ignored bool
	// Accessor reads and writes the leaf field.
	Accessor accessor.Accessor
}

// Path returns the dotted field path of the entry.
func (e MappingEntry) Path() string {
	return e.Accessor.Path()
}

// Kind returns the leaf kind of the entry.
func (e MappingEntry) Kind() primitive.KindEnum {
	return e.Accessor.Kind()
}

// Definition is the assembled class map of a model type. It is immutable and
// safe for concurrent use.
type Definition struct {
	modelType reflect.Type
	entries   []MappingEntry
	diags     Diagnostics
}

// ModelType returns the struct type the definition maps.
func (d *Definition) ModelType() reflect.Type {
	return d.modelType
}

// Len returns the number of entries, one per input spec.
func (d *Definition) Len() int {
	return len(d.entries)
}

// Entry returns the i-th entry, in input order.
func (d *Definition) Entry(i int) MappingEntry {
	return d.entries[i]
}

// Entries returns a copy of the entries in input order.
func (d *Definition) Entries() []MappingEntry {
	return slices.Clone(d.entries)
}

// All iterates over the entries in input order.
func (d *Definition) All() iter.Seq2[int, MappingEntry] {
	return slices.All(d.entries)
}

// Lookup returns the first entry with the given alias.
func (d *Definition) Lookup(alias string) (MappingEntry, bool) {
	i := slices.IndexFunc(d.entries, func(e MappingEntry) bool { return e.Alias == alias })
	if i < 0 {
		return MappingEntry{}, false
	}

	return d.entries[i], true
}

// Diagnostics returns a copy of the warnings and notes recorded during
// assembly. Errors is always empty: any error aborts assembly, so a
// Definition only exists when there were none. Use Validate to collect errors.
func (d *Definition) Diagnostics() *Diagnostics {
	return &Diagnostics{
		Warnings: slices.Clone(d.diags.Warnings),
		Infos:    slices.Clone(d.diags.Infos),
	}
}
