package primitive

import (
	"reflect"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"classmap-builder/options"
)

//go:generate go tool stringer -type=KindEnum -output=kind_string.go

// KindEnum tags a leaf value type that can be mapped dynamically.
// The declaration order is the dispatch order.
type KindEnum int

const (
	_ KindEnum = iota // skip zero value, use it as a default (invalid) value for KindEnum

	KindString
	KindBool
	KindInt32
	KindFloat64
	KindDecimal
	KindTime
	KindUUID
	KindNullString
	KindNullBool
	KindNullInt32
	KindNullFloat64
	KindNullDecimal
	KindNullTime
	KindNullUUID

	// KindTotal is a constant that represents the total number of kinds defined
	KindTotal = int(iota)
)

var kindTypes = [KindTotal]reflect.Type{
	KindString:      reflect.TypeFor[string](),
	KindBool:        reflect.TypeFor[bool](),
	KindInt32:       reflect.TypeFor[int32](),
	KindFloat64:     reflect.TypeFor[float64](),
	KindDecimal:     reflect.TypeFor[decimal.Decimal](),
	KindTime:        reflect.TypeFor[time.Time](),
	KindUUID:        reflect.TypeFor[uuid.UUID](),
	KindNullString:  reflect.TypeFor[*string](),
	KindNullBool:    reflect.TypeFor[*bool](),
	KindNullInt32:   reflect.TypeFor[*int32](),
	KindNullFloat64: reflect.TypeFor[*float64](),
	KindNullDecimal: reflect.TypeFor[*decimal.Decimal](),
	KindNullTime:    reflect.TypeFor[*time.Time](),
	KindNullUUID:    reflect.TypeFor[*uuid.UUID](),
}

func (k KindEnum) IsValid() bool {
	return k > 0 && int(k) < KindTotal
}

// IsNullable reports whether the kind is the absent-capable (pointer) variant.
func (k KindEnum) IsNullable() bool {
	switch k {
	default:
		return false
	case KindNullString, KindNullBool, KindNullInt32, KindNullFloat64,
		KindNullDecimal, KindNullTime, KindNullUUID:
		return true
	}
}

// Base returns the non-nullable counterpart of k. Non-nullable kinds return themselves.
func (k KindEnum) Base() KindEnum {
	if !k.IsNullable() {
		return k
	}

	return k - (KindNullString - KindString)
}

// Nullable returns the nullable counterpart of k. Nullable kinds return themselves.
func (k KindEnum) Nullable() KindEnum {
	if !k.IsValid() || k.IsNullable() {
		return k
	}

	return k + (KindNullString - KindString)
}

// Type returns the exact Go type mapped by the kind, or nil for an invalid kind.
func (k KindEnum) Type() reflect.Type {
	if !k.IsValid() {
		return nil
	}

	return kindTypes[k]
}

// Category returns the category bits a kind requires to be dispatched.
func (k KindEnum) Category() options.CategoryEnum {
	var c options.CategoryEnum

	switch k.Base() {
	default:
		return options.CategoryNone
	case KindString:
		c = options.CategoryText
	case KindBool:
		c = options.CategoryBool
	case KindInt32:
		c = options.CategoryInteger
	case KindFloat64:
		c = options.CategoryFloat
	case KindDecimal:
		c = options.CategoryDecimal
	case KindTime:
		c = options.CategoryTemporal
	case KindUUID:
		c = options.CategoryIdentifier
	}

	if k.IsNullable() {
		c |= options.CategoryNullable
	}

	return c
}

// FromReflectType returns the first kind, in declaration order, whose Go type is
// exactly rtype. Named types, other integer widths and float32 are not matched.
func FromReflectType(rtype reflect.Type) KindEnum {
	if rtype == nil {
		return 0
	}

	for k := KindEnum(1); int(k) < KindTotal; k++ {
		if kindTypes[k] == rtype {
			return k
		}
	}

	return 0
}
