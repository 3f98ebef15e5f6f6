package accessor

import (
	"errors"
	"fmt"
	"reflect"

	"classmap-builder/primitive"
)

var (
	ErrNilRoot   = errors.New("root is nil")
	ErrRootType  = errors.New("root has wrong type")
	ErrValueType = errors.New("value has wrong type")
)

// Accessor reads and writes one leaf field of a model graph.
type Accessor interface {
	// Kind is the leaf kind the accessor was specialized for.
	Kind() primitive.KindEnum
	// Type is the declared Go type of the leaf field.
	Type() reflect.Type
	// Path is the dotted field path, relative to the model type.
	Path() string
	// Get reads the leaf from a *Model or Model. A nil intermediate yields the zero value.
	Get(root any) (any, error)
	// Set writes the leaf into a *Model, allocating nil intermediates on the way.
	Set(root any, value any) error
}

// Typed is the Accessor specialization for a leaf of type T.
type Typed[T any] struct {
	kind  primitive.KindEnum
	chain Chain
}

var _ Accessor = (*Typed[string])(nil)

// New binds a typed accessor to chain. It panics when T is not exactly the
// chain's leaf type.
func New[T any](kind primitive.KindEnum, chain Chain) *Typed[T] {
	if want := reflect.TypeFor[T](); chain.Leaf() != want {
		panic(fmt.Sprintf("accessor for %s cannot bind path %q of type %v", want, chain.Path(), chain.Leaf()))
	}

	return &Typed[T]{kind: kind, chain: chain}
}

// As recovers the typed accessor behind a, if its leaf type is T.
func As[T any](a Accessor) (*Typed[T], bool) {
	t, ok := a.(*Typed[T])
	return t, ok
}

func (a *Typed[T]) Kind() primitive.KindEnum { return a.kind }

func (a *Typed[T]) Type() reflect.Type { return a.chain.Leaf() }

func (a *Typed[T]) Path() string { return a.chain.Path() }

// Chain returns the descriptor the accessor walks.
func (a *Typed[T]) Chain() Chain { return a.chain }

// GetValue reads the leaf.
func (a *Typed[T]) GetValue(root any) (T, error) {
	var zero T

	v, err := a.rootValue(root, false)
	if err != nil {
		return zero, err
	}

	leaf, ok := a.chain.read(v)
	if !ok {
		return zero, nil
	}

	return leaf.Interface().(T), nil
}

// SetValue writes the leaf.
func (a *Typed[T]) SetValue(root any, value T) error {
	v, err := a.rootValue(root, true)
	if err != nil {
		return err
	}

	a.chain.locate(v).Set(reflect.ValueOf(&value).Elem())

	return nil
}

func (a *Typed[T]) Get(root any) (any, error) {
	return a.GetValue(root)
}

func (a *Typed[T]) Set(root any, value any) error {
	if value == nil && a.kind.IsNullable() {
		var absent T
		return a.SetValue(root, absent)
	}

	typed, ok := value.(T)
	if !ok {
		return fmt.Errorf("%w: %s expects %s, got %T", ErrValueType, a.chain.Path(), a.chain.Leaf(), value)
	}

	return a.SetValue(root, typed)
}

// rootValue unwraps root into the root struct value. Writes need an
// addressable value, hence a non-nil pointer.
func (a *Typed[T]) rootValue(root any, write bool) (reflect.Value, error) {
	rv := reflect.ValueOf(root)
	if !rv.IsValid() {
		return reflect.Value{}, ErrNilRoot
	}

	want := a.chain.Root()

	switch {
	case rv.Kind() == reflect.Pointer && rv.Type().Elem() == want:
		if rv.IsNil() {
			return reflect.Value{}, ErrNilRoot
		}

		return rv.Elem(), nil
	case !write && rv.Type() == want:
		return rv, nil
	case write && rv.Type() == want:
		return reflect.Value{}, fmt.Errorf("%w: %s must be passed by pointer to be written", ErrRootType, want)
	default:
		return reflect.Value{}, fmt.Errorf("%w: expected *%s, got %s", ErrRootType, want, rv.Type())
	}
}
