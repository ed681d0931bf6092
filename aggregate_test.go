package ofx

import (
	"errors"
	"reflect"
	"strings"
	"testing"
)

type point struct {
	X, Y int
	Name string
}

type shape struct {
	Points []point
	Center *point
}

func mustPanic(t *testing.T, contains string, f func()) {
	t.Helper()
	defer func() {
		r := recover()
		if r == nil {
			t.Fatalf("no panic, want a panic with %q", contains)
		}
		if msg, _ := r.(string); !strings.Contains(msg, contains) {
			t.Errorf("panic %v, want a panic with %q", r, contains)
		}
	}()
	f()
}

func TestRegister(t *testing.T) {
	r := NewRegistry()
	s := Register[point](r, "PT",
		Element("Y", 10, Integer, func(p *point) *int { return &p.Y }),
		Element("X", 0, Integer, func(p *point) *int { return &p.X }),
	)
	if got := Register[point](r, "OTHER"); got != s {
		t.Errorf("second Register returned a new schema, want the first one")
	}
	if s.Name() != "PT" {
		t.Errorf("Name() = %q, want \"PT\"", s.Name())
	}
	if got := s.Fields()[0].Order(); got != 0 {
		t.Errorf("first field has order %d, want fields sorted by order", got)
	}
	if s.Type() != reflect.TypeFor[point]() {
		t.Errorf("Type() = %v, want point", s.Type())
	}
	if _, ok := s.New().(*point); !ok {
		t.Errorf("New() = %T, want *point", s.New())
	}

	got, err := r.Lookup(reflect.TypeFor[point]())
	if err != nil || got != s {
		t.Errorf("Lookup(point) = %v, %v, want the registered schema", got, err)
	}
	_, err = r.Lookup(reflect.TypeFor[shape]())
	if !errors.Is(err, ErrSchemaNotFound) {
		t.Errorf("Lookup(shape) error = %v, want ErrSchemaNotFound", err)
	}
	if names := r.Named("PT"); len(names) != 1 || names[0] != s {
		t.Errorf("Named(\"PT\") = %v, want the registered schema", names)
	}
}

func TestRegisterPanics(t *testing.T) {
	t.Run("duplicate order", func(t *testing.T) {
		mustPanic(t, "duplicate order", func() {
			Register[point](NewRegistry(), "PT",
				Element("X", 0, Integer, func(p *point) *int { return &p.X }),
				Element("Y", 0, Integer, func(p *point) *int { return &p.Y }),
			)
		})
	})
	t.Run("foreign field", func(t *testing.T) {
		mustPanic(t, "belongs to", func() {
			Register[shape](NewRegistry(), "SHAPE",
				Element("X", 0, Integer, func(p *point) *int { return &p.X }),
			)
		})
	})
	t.Run("sealed", func(t *testing.T) {
		r := NewRegistry()
		r.Seal()
		mustPanic(t, "sealed", func() { Register[point](r, "PT") })
	})
	t.Run("default registry", func(t *testing.T) {
		mustPanic(t, "sealed", func() { Register[point](Schemas, "PT") })
	})
}

func TestSchemasLookup(t *testing.T) {
	// every aggregate reachable from the envelopes is registered
	seen := make(map[reflect.Type]bool)
	var visit func(t *testing.T, typ reflect.Type)
	visit = func(t *testing.T, typ reflect.Type) {
		if seen[typ] {
			return
		}
		seen[typ] = true
		s, err := Schemas.Lookup(typ)
		if err != nil {
			t.Errorf("%v is not registered: %v", typ, err)
			return
		}
		for _, f := range s.fields {
			if f.nested != nil {
				visit(t, f.nested)
			}
			for _, v := range f.variants {
				visit(t, v.typ)
			}
		}
	}
	visit(t, reflect.TypeFor[RequestEnvelope]())
	visit(t, reflect.TypeFor[ResponseEnvelope]())
	if len(seen) < 90 {
		t.Errorf("only %d aggregates reachable from the envelopes", len(seen))
	}
}
