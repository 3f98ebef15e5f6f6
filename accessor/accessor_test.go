package accessor_test

import (
	"reflect"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"classmap-builder/accessor"
	"classmap-builder/primitive"
)

type Address struct {
	Street string
	Since  *time.Time
}

type Audit struct {
	CreatedBy string
}

type Customer struct {
	*Audit
	Name string
	Home *Address
	Work Address
	Nick *string
	Deep **Address
}

func chainTo(t *testing.T, path ...string) accessor.Chain {
	t.Helper()

	chain := accessor.NewChain(reflect.TypeFor[Customer]())
	owner := reflect.TypeFor[Customer]()

	for _, name := range path {
		for owner.Kind() == reflect.Pointer {
			owner = owner.Elem()
		}

		f, ok := owner.FieldByName(name)
		require.True(t, ok, name)

		chain = chain.Field(name, f.Index)
		owner = f.Type
	}

	return chain
}

func TestChain(t *testing.T) {
	t.Parallel()

	chain := chainTo(t, "Home", "Street")
	assert.Equal(t, "Home.Street", chain.Path())
	assert.Equal(t, 2, chain.Depth())
	assert.Equal(t, reflect.TypeFor[Customer](), chain.Root())
	assert.Equal(t, reflect.TypeFor[string](), chain.Leaf())
	require.Len(t, chain.Hops(), 2)
	assert.Equal(t, "Home", chain.Hops()[0].Name)

	// promoted field expands into one hop per embedding level
	promoted := chainTo(t, "CreatedBy")
	assert.Equal(t, "CreatedBy", promoted.Path())
	assert.Equal(t, 1, promoted.Depth())
	require.Len(t, promoted.Hops(), 2)
	assert.Equal(t, "Audit", promoted.Hops()[0].Name)

	// extending a chain leaves the original untouched
	home := chainTo(t, "Home")
	_ = home.Field("Street", []int{0})
	_ = home.Field("Since", []int{1})
	assert.Len(t, home.Hops(), 1)
	assert.Equal(t, "Home", home.Path())

	assert.Nil(t, accessor.NewChain(reflect.TypeFor[*Customer]()).Leaf())
	assert.Panics(t, func() { accessor.NewChain(reflect.TypeFor[string]()) })
	assert.Panics(t, func() { chainTo(t, "Name").Field("Length", []int{0}) })
}

func TestTypedRoundTrip(t *testing.T) {
	t.Parallel()

	name := accessor.New[string](primitive.KindString, chainTo(t, "Name"))

	var c Customer
	require.NoError(t, name.SetValue(&c, "Ada"))
	assert.Equal(t, "Ada", c.Name)

	got, err := name.GetValue(&c)
	require.NoError(t, err)
	assert.Equal(t, "Ada", got)

	// reading from a value works too
	got, err = name.GetValue(c)
	require.NoError(t, err)
	assert.Equal(t, "Ada", got)
}

func TestTypedNestedSelfHealing(t *testing.T) {
	t.Parallel()

	street := accessor.New[string](primitive.KindString, chainTo(t, "Home", "Street"))

	var c Customer

	got, err := street.GetValue(&c)
	require.NoError(t, err)
	assert.Empty(t, got)
	assert.Nil(t, c.Home, "reading must not allocate")

	require.NoError(t, street.SetValue(&c, "Main St"))
	require.NotNil(t, c.Home)
	assert.Equal(t, "Main St", c.Home.Street)

	// existing intermediates are reused, not replaced
	since := accessor.New[*time.Time](primitive.KindNullTime, chainTo(t, "Home", "Since"))
	now := time.Date(2024, 12, 4, 0, 0, 0, 0, time.UTC)
	require.NoError(t, since.SetValue(&c, &now))
	assert.Equal(t, "Main St", c.Home.Street)
	assert.Equal(t, &now, c.Home.Since)

	work := accessor.New[string](primitive.KindString, chainTo(t, "Work", "Street"))
	require.NoError(t, work.SetValue(&c, "Office Rd"))
	assert.Equal(t, "Office Rd", c.Work.Street)

	deep := accessor.New[string](primitive.KindString, chainTo(t, "Deep", "Street"))
	require.NoError(t, deep.SetValue(&c, "Down"))
	require.NotNil(t, c.Deep)
	require.NotNil(t, *c.Deep)
	assert.Equal(t, "Down", (*c.Deep).Street)

	createdBy := accessor.New[string](primitive.KindString, chainTo(t, "CreatedBy"))
	v, err := createdBy.Get(&c)
	require.NoError(t, err)
	assert.Equal(t, "", v)
	require.NoError(t, createdBy.Set(&c, "importer"))
	require.NotNil(t, c.Audit)
	assert.Equal(t, "importer", c.CreatedBy)
}

func TestTypedNullable(t *testing.T) {
	t.Parallel()

	nick := accessor.New[*string](primitive.KindNullString, chainTo(t, "Nick"))

	c := Customer{Nick: new(string)}
	require.NoError(t, nick.Set(&c, nil))
	assert.Nil(t, c.Nick)

	v, err := nick.Get(&c)
	require.NoError(t, err)
	assert.Equal(t, (*string)(nil), v)

	s := "ace"
	require.NoError(t, nick.Set(&c, &s))
	assert.Equal(t, "ace", *c.Nick)
}

func TestTypedErrors(t *testing.T) {
	t.Parallel()

	name := accessor.New[string](primitive.KindString, chainTo(t, "Name"))

	var c Customer

	assert.ErrorIs(t, name.Set(nil, "x"), accessor.ErrNilRoot)
	assert.ErrorIs(t, name.Set((*Customer)(nil), "x"), accessor.ErrNilRoot)
	assert.ErrorIs(t, name.Set(c, "x"), accessor.ErrRootType)
	assert.ErrorIs(t, name.Set(&Address{}, "x"), accessor.ErrRootType)
	assert.ErrorIs(t, name.Set(&c, 42), accessor.ErrValueType)
	assert.ErrorIs(t, name.Set(&c, nil), accessor.ErrValueType)

	_, err := name.Get(nil)
	assert.ErrorIs(t, err, accessor.ErrNilRoot)

	assert.Panics(t, func() { accessor.New[int32](primitive.KindInt32, chainTo(t, "Name")) })
}

func TestAs(t *testing.T) {
	t.Parallel()

	var a accessor.Accessor = accessor.New[string](primitive.KindString, chainTo(t, "Home", "Street"))

	typed, ok := accessor.As[string](a)
	require.True(t, ok)
	assert.Equal(t, "Home.Street", typed.Chain().Path())
	assert.Equal(t, primitive.KindString, a.Kind())
	assert.Equal(t, reflect.TypeFor[string](), a.Type())

	_, ok = accessor.As[*string](a)
	assert.False(t, ok)
}
