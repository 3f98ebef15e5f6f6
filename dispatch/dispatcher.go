package dispatch

import (
	"fmt"
	"reflect"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"classmap-builder/accessor"
	"classmap-builder/options"
	"classmap-builder/primitive"
)

// Handler builds the accessor specialized for one leaf kind.
type Handler interface {
	Kind() primitive.KindEnum
	Type() reflect.Type
	Build(chain accessor.Chain) accessor.Accessor
}

type handler[T any] struct {
	kind primitive.KindEnum
}

func (h handler[T]) Kind() primitive.KindEnum { return h.kind }

func (h handler[T]) Type() reflect.Type { return reflect.TypeFor[T]() }

func (h handler[T]) Build(chain accessor.Chain) accessor.Accessor {
	return accessor.New[T](h.kind, chain)
}

// handlers is indexed by kind. It is filled at package initialization and only read afterwards.
var handlers = [primitive.KindTotal]Handler{
	primitive.KindString:      handler[string]{primitive.KindString},
	primitive.KindBool:        handler[bool]{primitive.KindBool},
	primitive.KindInt32:       handler[int32]{primitive.KindInt32},
	primitive.KindFloat64:     handler[float64]{primitive.KindFloat64},
	primitive.KindDecimal:     handler[decimal.Decimal]{primitive.KindDecimal},
	primitive.KindTime:        handler[time.Time]{primitive.KindTime},
	primitive.KindUUID:        handler[uuid.UUID]{primitive.KindUUID},
	primitive.KindNullString:  handler[*string]{primitive.KindNullString},
	primitive.KindNullBool:    handler[*bool]{primitive.KindNullBool},
	primitive.KindNullInt32:   handler[*int32]{primitive.KindNullInt32},
	primitive.KindNullFloat64: handler[*float64]{primitive.KindNullFloat64},
	primitive.KindNullDecimal: handler[*decimal.Decimal]{primitive.KindNullDecimal},
	primitive.KindNullTime:    handler[*time.Time]{primitive.KindNullTime},
	primitive.KindNullUUID:    handler[*uuid.UUID]{primitive.KindNullUUID},
}

// Lookup returns the handler registered for kind.
func Lookup(kind primitive.KindEnum) (Handler, bool) {
	if !kind.IsValid() {
		return nil, false
	}

	h := handlers[kind]

	return h, h != nil
}

// Dispatch selects the handler whose type exactly matches the chain's leaf and
// builds the accessor. Leaf types outside the kind set, or kinds whose category
// is not allowed, yield an *UnsupportedTypeError.
func Dispatch(chain accessor.Chain, allowed options.CategoryEnum) (accessor.Accessor, error) {
	leaf := chain.Leaf()
	if leaf == nil {
		panic("dispatcher requires a chain with at least one field")
	}

	kind := primitive.FromReflectType(leaf)

	h, ok := Lookup(kind)
	if !ok {
		return nil, &UnsupportedTypeError{Path: chain.Path(), Type: leaf}
	}

	if !allowed.Allows(kind.Category()) {
		return nil, &UnsupportedTypeError{
			Path:   chain.Path(),
			Type:   leaf,
			Kind:   kind,
			Reason: "kind is disabled by the allowed categories",
		}
	}

	return h.Build(chain), nil
}

// UnsupportedTypeError reports a leaf whose declared type cannot be mapped.
type UnsupportedTypeError struct {
	Path   string
	Type   reflect.Type
	Kind   primitive.KindEnum // zero when the type matches no kind at all
	Reason string
}

func (e *UnsupportedTypeError) Error() string {
	reason := e.Reason
	if reason == "" {
		reason = "no handler for this type"
	}

	return fmt.Sprintf("path %q: unsupported leaf type %v: %s", e.Path, e.Type, reason)
}
