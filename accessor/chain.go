package accessor

import (
	"reflect"
	"slices"
	"strings"
)

// Hop is one field step of a Chain.
type Hop struct {
	Name  string       // Go field name
	Index int          // field index within the owning struct
	Type  reflect.Type // declared type of the field
}

// Chain is the static descriptor of a field path: the root struct type followed
// by the ordered field hops down to the leaf. Fields promoted through embedded
// structs contribute one hop per embedding level.
type Chain struct {
	root reflect.Type
	path []string
	hops []Hop
}

// NewChain starts an empty chain rooted at the given struct (or pointer to struct) type.
func NewChain(root reflect.Type) Chain {
	root = base(root)
	if root == nil || root.Kind() != reflect.Struct {
		panic("accessor chain root must be a struct type")
	}

	return Chain{root: root}
}

// Field returns a new chain extended by the named field, reached from the current
// leaf through the struct field index sequence (as reported by reflect.VisibleFields).
func (c Chain) Field(name string, index []int) Chain {
	owner := c.root
	if len(c.hops) > 0 {
		owner = base(c.hops[len(c.hops)-1].Type)
	}

	hops := slices.Clone(c.hops)

	for _, i := range index {
		if owner.Kind() != reflect.Struct {
			panic("accessor chain cannot step into non-struct type " + owner.String())
		}

		f := owner.Field(i)
		hops = append(hops, Hop{Name: f.Name, Index: i, Type: f.Type})
		owner = base(f.Type)
	}

	return Chain{
		root: c.root,
		path: append(slices.Clip(c.path), name),
		hops: hops,
	}
}

// Root returns the root struct type.
func (c Chain) Root() reflect.Type {
	return c.root
}

// Leaf returns the declared type of the last hop, or nil for an empty chain.
func (c Chain) Leaf() reflect.Type {
	if len(c.hops) == 0 {
		return nil
	}

	return c.hops[len(c.hops)-1].Type
}

// Path returns the dotted field path the chain was built from.
func (c Chain) Path() string {
	return strings.Join(c.path, ".")
}

// Hops returns a copy of the hop list.
func (c Chain) Hops() []Hop {
	return slices.Clone(c.hops)
}

// Depth returns the number of path segments.
func (c Chain) Depth() int {
	return len(c.path)
}

// read walks the chain without modifying the graph. It reports false when an
// intermediate pointer is nil.
func (c Chain) read(v reflect.Value) (reflect.Value, bool) {
	for _, h := range c.hops {
		for v.Kind() == reflect.Pointer {
			if v.IsNil() {
				return reflect.Value{}, false
			}

			v = v.Elem()
		}

		v = v.Field(h.Index)
	}

	return v, true
}

// locate walks the chain from an addressable struct value, allocating and
// attaching every nil intermediate pointer, and returns the settable leaf.
func (c Chain) locate(v reflect.Value) reflect.Value {
	for _, h := range c.hops {
		for v.Kind() == reflect.Pointer {
			if v.IsNil() {
				v.Set(reflect.New(v.Type().Elem()))
			}

			v = v.Elem()
		}

		v = v.Field(h.Index)
	}

	return v
}

func base(t reflect.Type) reflect.Type {
	for t != nil && t.Kind() == reflect.Pointer {
		t = t.Elem()
	}

	return t
}
