package ofx

import (
	"fmt"
	"reflect"
	"sort"
)

// Schema is the wire description of a Go type: the tag of the aggregate and
// its fields in wire order.
type Schema struct {
	name   string
	typ    reflect.Type
	fields []*Field
	new    func() any
}

// Name returns the tag of the aggregate.
func (s *Schema) Name() string { return s.name }

// Type returns the Go type described by the schema.
func (s *Schema) Type() reflect.Type { return s.typ }

// Fields returns the fields sorted by order.
func (s *Schema) Fields() []*Field { return s.fields }

// New allocates a new instance and returns a pointer to it.
func (s *Schema) New() any { return s.new() }

// Registry maps Go types to their schema.
//
// A registry is populated by Register during program initialization and
// then sealed. Once sealed it is read-only and safe for concurrent use.
type Registry struct {
	schemas map[reflect.Type]*Schema
	names   map[string][]*Schema
	sealed  bool
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{
		schemas: make(map[reflect.Type]*Schema),
		names:   make(map[string][]*Schema),
	}
}

// Schemas is the registry of every aggregate known to this package.
var Schemas = newDefaultRegistry()

func newDefaultRegistry() *Registry {
	r := NewRegistry()
	registerAll(r)
	r.Seal()
	return r
}

// Register declares T as the aggregate name, made of fields. Registering the
// same type twice returns the first schema.
//
// Register panics if r is sealed, if a field belongs to another type, or if
// two fields share the same order.
func Register[T any](r *Registry, name string, fields ...*Field) *Schema {
	typ := reflect.TypeFor[T]()
	if s, ok := r.schemas[typ]; ok {
		return s
	}
	if r.sealed {
		panic(fmt.Sprintf("ofx: cannot register %v: registry is sealed", typ))
	}
	if name == "" {
		panic(fmt.Sprintf("ofx: cannot register %v without a name", typ))
	}
	sorted := make([]*Field, len(fields))
	copy(sorted, fields)
	sort.SliceStable(sorted, func(i, j int) bool { return sorted[i].order < sorted[j].order })
	for i, f := range sorted {
		if f.owner != typ {
			panic(fmt.Sprintf("ofx: field %q of %s belongs to %v", f.tag, name, f.owner))
		}
		if i > 0 && sorted[i-1].order == f.order {
			panic(fmt.Sprintf("ofx: duplicate order %d in %s", f.order, name))
		}
	}
	s := &Schema{
		name:   name,
		typ:    typ,
		fields: sorted,
		new:    func() any { return new(T) },
	}
	r.schemas[typ] = s
	r.names[name] = append(r.names[name], s)
	return s
}

// Seal forbids any further registration.
func (r *Registry) Seal() { r.sealed = true }

// Lookup returns the schema of t.
func (r *Registry) Lookup(t reflect.Type) (*Schema, error) {
	if s, ok := r.schemas[t]; ok {
		return s, nil
	}
	return nil, &SchemaError{Err: ErrSchemaNotFound, Type: t.String()}
}

// Named returns the schemas whose aggregate tag is name.
func (r *Registry) Named(name string) []*Schema { return r.names[name] }

// schemaOf returns the schema of v, which must be a non nil pointer.
func (r *Registry) schemaOf(v any) (*Schema, error) {
	t := reflect.TypeOf(v)
	if t == nil || t.Kind() != reflect.Pointer {
		return nil, &SchemaError{Err: ErrSchemaNotFound, Type: fmt.Sprintf("%T (want a pointer)", v)}
	}
	return r.Lookup(t.Elem())
}
