package analyze

import (
	"reflect"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"classmap-builder/primitive"
)

type Base struct {
	ID        int32
	CreatedAt time.Time
}

type hidden struct {
	Secret string
}

type Node struct {
	Value string
	Next  *Node
}

type Order struct {
	Base
	*hidden
	Number   string
	Total    decimal.Decimal
	Discount *decimal.Decimal
	Notes    []string
	Counts   []int
	Meta     map[string]string
	Head     *Node
	internal bool
}

func TestAnalyzer_OrderFields(t *testing.T) {
	a := NewAnalyzer()
	order := a.Analyze(reflect.TypeFor[Order]())
	require.NotNil(t, order)

	assert.Equal(t, TypeKindStruct, order.Kind)
	assert.Equal(t, "Order", order.ID.Name)
	assert.Equal(t, "classmap-builder/internal/analyze.Order", order.String())

	names := order.FieldNames()
	assert.Contains(t, names, "Base")
	assert.Contains(t, names, "ID", "promoted through an exported embedded struct")
	assert.Contains(t, names, "CreatedAt")
	assert.NotContains(t, names, "hidden")
	assert.NotContains(t, names, "Secret", "behind a nil-able unexported embedded pointer")
	assert.NotContains(t, names, "internal")

	id, ok := order.Field("ID")
	require.True(t, ok)
	assert.True(t, id.Promoted())
	assert.Equal(t, []int{0, 0}, id.IndexPath())
	assert.Equal(t, TypeKindLeaf, id.Type.Kind)
	assert.Equal(t, primitive.KindInt32, id.Type.Leaf)

	_, ok = order.Field("id")
	assert.False(t, ok, "lookup is case-sensitive")

	total, ok := order.Field("Total")
	require.True(t, ok)
	assert.Equal(t, primitive.KindDecimal, total.Type.Leaf)
	assert.Nil(t, total.Type.Fields, "leaf structs are not navigated")

	discount, _ := order.Field("Discount")
	assert.Equal(t, primitive.KindNullDecimal, discount.Type.Leaf)

	notes, _ := order.Field("Notes")
	assert.Equal(t, TypeKindSlice, notes.Type.Kind)
	assert.Equal(t, TypeKindLeaf, notes.Type.ElemType.Kind)
	assert.Equal(t, primitive.KindString, notes.Type.ElemType.Leaf)

	counts, _ := order.Field("Counts")
	assert.Equal(t, TypeKindSlice, counts.Type.Kind)
	assert.Equal(t, TypeKindBasic, counts.Type.ElemType.Kind)
	assert.Zero(t, counts.Type.ElemType.Leaf, "int is not a leaf kind")

	meta, _ := order.Field("Meta")
	assert.Equal(t, TypeKindMap, meta.Type.Kind)
	assert.Equal(t, "map", meta.Type.Kind.String())
}

func TestAnalyzer_RecursiveTypes(t *testing.T) {
	a := NewAnalyzer()
	node := a.Analyze(reflect.TypeFor[Node]())

	next, ok := node.Field("Next")
	require.True(t, ok)
	assert.Equal(t, TypeKindPointer, next.Type.Kind)
	assert.Same(t, node, next.Type.Deref())
	assert.Same(t, node, a.Analyze(reflect.TypeFor[*Node]()).Deref())
}

func TestAnalyzer_Nil(t *testing.T) {
	assert.Nil(t, NewAnalyzer().Analyze(nil))
	assert.Equal(t, "<nil>", (*TypeInfo)(nil).String())
	assert.Equal(t, "unknown", TypeKindUnknown.String())
}

func TestLeafPaths(t *testing.T) {
	a := NewAnalyzer()
	order := a.Analyze(reflect.TypeFor[*Order]())

	var paths []string
	for _, lp := range LeafPaths(order, 3) {
		paths = append(paths, lp.Path)
	}

	assert.Equal(t, []string{
		"ID",
		"CreatedAt",
		"Number",
		"Total",
		"Discount",
		"Head.Value",
	}, paths)

	assert.Nil(t, LeafPaths(a.Analyze(reflect.TypeFor[string]()), 3))
}
