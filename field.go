package ofx

import (
	"fmt"
	"reflect"
	"strings"
)

type fieldKind int

const (
	elementKind  fieldKind = iota // leaf text value
	childKind                     // single nested aggregate
	childrenKind                  // repeated nested aggregate, one Go type
	oneOfKind                     // repeated nested aggregate, several Go types
)

// Field describes one field of an aggregate schema. Fields are built with
// Element, Child, Children and OneOf, which capture a typed accessor to the
// Go struct field; no reflection is involved in reading or writing values.
type Field struct {
	kind     fieldKind
	tag      string
	order    int
	required bool
	owner    reflect.Type

	nested   reflect.Type // childKind and childrenKind
	variants []variant    // oneOfKind

	format func(owner any) (string, bool)
	parse  func(owner any, text string) error
	items  func(owner any) []any
	alloc  func(owner any, variant int) any
}

// Required marks the field as mandatory, both when writing and after reading.
func (f *Field) Required() *Field {
	f.required = true
	return f
}

// IsRequired reports whether the field is mandatory.
func (f *Field) IsRequired() bool { return f.required }

// Order returns the wire position of the field within its aggregate.
func (f *Field) Order() int { return f.order }

// Element declares a leaf element holding a value converted by c.
func Element[T, V any](tag string, order int, c Codec[V], at func(*T) *V) *Field {
	return &Field{
		kind:  elementKind,
		tag:   tag,
		order: order,
		owner: reflect.TypeFor[T](),
		format: func(o any) (string, bool) {
			return c.Format(*at(o.(*T)))
		},
		parse: func(o any, text string) error {
			v, err := c.Parse(text)
			if err != nil {
				return err
			}
			*at(o.(*T)) = v
			return nil
		},
	}
}

// Child declares an optional nested aggregate. An empty tag uses the nested
// schema's own name; a non empty tag renames the aggregate at this field only.
func Child[T, C any](tag string, order int, at func(*T) **C) *Field {
	return &Field{
		kind:   childKind,
		tag:    tag,
		order:  order,
		owner:  reflect.TypeFor[T](),
		nested: reflect.TypeFor[C](),
		items: func(o any) []any {
			if c := *at(o.(*T)); c != nil {
				return []any{c}
			}
			return nil
		},
		alloc: func(o any, _ int) any {
			c := new(C)
			*at(o.(*T)) = c
			return c
		},
	}
}

// Children declares a sequence of nested aggregates sharing one tag. The
// order of the slice is the wire order.
func Children[T, C any](tag string, order int, at func(*T) *[]C) *Field {
	return &Field{
		kind:   childrenKind,
		tag:    tag,
		order:  order,
		owner:  reflect.TypeFor[T](),
		nested: reflect.TypeFor[C](),
		items: func(o any) []any {
			s := *at(o.(*T))
			items := make([]any, len(s))
			for i := range s {
				items[i] = &s[i]
			}
			return items
		},
		alloc: func(o any, _ int) any {
			s := at(o.(*T))
			*s = append(*s, *new(C))
			return &(*s)[len(*s)-1]
		},
	}
}

type variant struct {
	typ reflect.Type
	new func() any
}

// Variant is one concrete aggregate that may occupy a polymorphic slot of
// interface type U.
type Variant[U any] struct{ v variant }

// As declares that *C may occupy a slot of type U.
func As[C, U any]() Variant[U] {
	if _, ok := any(new(C)).(U); !ok {
		panic(fmt.Sprintf("ofx: *%v does not implement %v", reflect.TypeFor[C](), reflect.TypeFor[U]()))
	}
	return Variant[U]{variant{typ: reflect.TypeFor[C](), new: func() any { return new(C) }}}
}

// OneOf declares a sequence of nested aggregates whose concrete type is
// resolved from the tag, among the closed set of variants.
func OneOf[T, U any](order int, at func(*T) *[]U, variants ...Variant[U]) *Field {
	f := &Field{
		kind:  oneOfKind,
		order: order,
		owner: reflect.TypeFor[T](),
		items: func(o any) []any {
			s := *at(o.(*T))
			items := make([]any, 0, len(s))
			for _, u := range s {
				items = append(items, any(u))
			}
			return items
		},
	}
	for _, v := range variants {
		f.variants = append(f.variants, v.v)
	}
	f.alloc = func(o any, i int) any {
		c := f.variants[i].new()
		s := at(o.(*T))
		*s = append(*s, c.(U))
		return c
	}
	return f
}

// name returns the tag of the field as it appears on the wire.
func (r *Registry) name(f *Field) string {
	switch f.kind {
	case elementKind:
		return f.tag
	case oneOfKind:
		names := make([]string, len(f.variants))
		for i, v := range f.variants {
			if s, ok := r.schemas[v.typ]; ok {
				names[i] = s.name
			} else {
				names[i] = v.typ.Name()
			}
		}
		return strings.Join(names, "|")
	}
	if f.tag != "" {
		return f.tag
	}
	if s, ok := r.schemas[f.nested]; ok {
		return s.name
	}
	return f.nested.Name()
}

// accepts reports whether an Open(tag) belongs to f and which variant it is.
func (r *Registry) accepts(f *Field, tag string) (int, bool) {
	if f.kind != oneOfKind {
		return 0, r.name(f) == tag
	}
	for i, v := range f.variants {
		if s, ok := r.schemas[v.typ]; ok && s.name == tag {
			return i, true
		}
	}
	return 0, false
}
