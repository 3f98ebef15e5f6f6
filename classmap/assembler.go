package classmap

import (
	"fmt"
	"reflect"

	"go.uber.org/zap"

	"classmap-builder/accessor"
	"classmap-builder/dispatch"
	"classmap-builder/internal/analyze"
	"classmap-builder/internal/mapping"
	"classmap-builder/options"
)

// Assembler turns field specs into Definitions. An Assembler is safe for
// concurrent use.
type Assembler struct {
	logger  *zap.Logger
	allowed options.CategoryEnum
}

// New creates an Assembler accepting every leaf category.
func New(opts ...Option) *Assembler {
	a := &Assembler{
		logger:  zap.NewNop(),
		allowed: options.CategoryAll,
	}

	for _, opt := range opts {
		opt(a)
	}

	return a
}

// Assemble builds the definition of modelType with a default Assembler.
func Assemble(modelType reflect.Type, specs []FieldSpec, opts ...Option) (*Definition, error) {
	return New(opts...).Assemble(modelType, specs)
}

// AssembleFor builds the definition of T.
func AssembleFor[T any](specs []FieldSpec, opts ...Option) (*Definition, error) {
	return New(opts...).Assemble(reflect.TypeFor[T](), specs)
}

// Assemble resolves every spec against modelType and returns one entry per
// spec, in input order. The first spec whose path cannot be resolved, or whose
// leaf type has no accessor, aborts assembly.
func (a *Assembler) Assemble(modelType reflect.Type, specs []FieldSpec) (*Definition, error) {
	root, err := analyzeModel(modelType)
	if err != nil {
		return nil, err
	}

	log := a.logger.With(zap.Stringer("model", root.GoType))

	entries := make([]MappingEntry, 0, len(specs))
	ignored := 0

	for i, spec := range specs {
		chain, fast, err := chainFor(root, spec.Path)
		if err != nil {
			return nil, fmt.Errorf("field spec #%d (%s): %w", i, spec.Path, err)
		}

		acc, err := dispatch.Dispatch(chain, a.allowed)
		if err != nil {
			return nil, fmt.Errorf("field spec #%d (%s): %w", i, spec.Path, err)
		}

		binding, isIgnored := mapping.Binding(specs, spec.Path)

		entry := MappingEntry{
			ColumnIndex: binding.ColumnIndex,
			Alias:       binding.Alias,
			Ignored:     isIgnored,
			Accessor:    acc,
		}
		entries = append(entries, entry)

		log.Debug("resolved field",
			zap.String("path", spec.Path),
			zap.Int("column", entry.ColumnIndex),
			zap.Stringer("kind", acc.Kind()),
			zap.Bool("nested", chain.Depth() > 1),
			zap.Bool("fast_path", fast),
		)

		if isIgnored {
			ignored++

			log.Warn("ambiguous path, entry ignored",
				zap.String("path", spec.Path),
				zap.Int("column", spec.ColumnIndex),
				zap.String("alias", spec.Alias),
			)
		}
	}

	diags := mapping.Lint(specs)
	for _, w := range diags.WithCode(CodeDuplicateAlias) {
		log.Warn("alias shared by several paths",
			zap.String("alias", w.Alias),
			zap.String("lookup_path", w.FieldPath),
		)
	}

	log.Info("class map assembled",
		zap.Int("entries", len(entries)),
		zap.Int("ignored", ignored),
	)

	return &Definition{
		modelType: root.GoType,
		entries:   entries,
		diags:     *diags,
	}, nil
}

// Validate checks every spec against modelType and reports all problems
// instead of stopping at the first.
func (a *Assembler) Validate(modelType reflect.Type, specs []FieldSpec) *Diagnostics {
	return mapping.Validate(analyze.NewAnalyzer().Analyze(modelType), specs, a.allowed)
}

// Validate checks specs against modelType with a default Assembler.
func Validate(modelType reflect.Type, specs []FieldSpec, opts ...Option) *Diagnostics {
	return New(opts...).Validate(modelType, specs)
}

func analyzeModel(modelType reflect.Type) (*analyze.TypeInfo, error) {
	if modelType == nil {
		return nil, fmt.Errorf("%w: got nil", ErrInvalidModel)
	}

	for modelType.Kind() == reflect.Pointer {
		modelType = modelType.Elem()
	}

	if modelType.Kind() != reflect.Struct {
		return nil, fmt.Errorf("%w: got %s", ErrInvalidModel, modelType)
	}

	return analyze.NewAnalyzer().Analyze(modelType), nil
}

// chainFor builds the accessor descriptor of path. Flat paths naming a direct
// member skip the segment-by-segment resolver.
func chainFor(root *analyze.TypeInfo, path string) (accessor.Chain, bool, error) {
	if field, ok := mapping.DirectField(root, path); ok {
		return mapping.DirectChain(root, field), true, nil
	}

	res, err := mapping.Resolve(root, path)
	if err != nil {
		return accessor.Chain{}, false, err
	}

	return res.Chain(), false, nil
}
