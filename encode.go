package ofx

import (
	"bytes"
	"fmt"
	"io"
	"reflect"
	"time"

	"golang.org/x/text/encoding"
)

// Marshal writes v, a pointer to a registered aggregate, to sink.
//
// Fields are visited in ascending order, whatever the layout of the Go
// struct, so the output only depends on the values.
func (r *Registry) Marshal(v any, sink TagSink) error {
	s, err := r.schemaOf(v)
	if err != nil {
		return err
	}
	if reflect.ValueOf(v).IsNil() {
		return &SchemaError{Err: ErrSchemaNotFound, Type: fmt.Sprintf("%T (nil)", v)}
	}
	return r.write(v, s, s.name, sink)
}

func (r *Registry) write(v any, s *Schema, tag string, sink TagSink) error {
	if err := sink.Put(Open(tag)); err != nil {
		return err
	}
	for _, f := range s.fields {
		if f.kind == elementKind {
			text, ok := f.format(v)
			if !ok {
				if f.required {
					return &FieldError{Err: ErrMissingRequiredField, Aggregate: tag, Field: f.tag}
				}
				continue
			}
			if err := put(sink, Open(f.tag), Value(text), Close(f.tag)); err != nil {
				return err
			}
			continue
		}

		items := f.items(v)
		if len(items) == 0 && f.required {
			return &FieldError{Err: ErrMissingRequiredField, Aggregate: tag, Field: r.name(f)}
		}
		for _, item := range items {
			ns, err := r.schemaOf(item)
			if err != nil {
				return err
			}
			name := ns.name
			if f.kind != oneOfKind && f.tag != "" {
				name = f.tag
			}
			if err := r.write(item, ns, name, sink); err != nil {
				return err
			}
		}
	}
	return sink.Put(Close(tag))
}

func put(sink TagSink, events ...Event) error {
	for _, e := range events {
		if err := sink.Put(e); err != nil {
			return err
		}
	}
	return nil
}

// An Encoder writes OFX documents, header included, to an output stream.
type Encoder struct {
	w       io.Writer
	version Version

	// Registry used to marshal, Schemas when nil.
	Registry *Registry
	// MultiLine puts every tag on its own line.
	MultiLine bool
}

// NewEncoder returns an encoder writing documents of the given version to w.
func NewEncoder(w io.Writer, version Version) *Encoder {
	return &Encoder{w: w, version: version}
}

// Encode writes the header and the body of v. Envelopes provide the header
// values (security and file uids); any other aggregate gets a default header.
func (e *Encoder) Encode(v any) (err error) {
	reg := e.Registry
	if reg == nil {
		reg = Schemas
	}
	start := time.Now()
	defer func() { emitMarshalComplete(v, e.version, time.Since(start), err) }()

	h := DefaultHeader()
	if hv, ok := v.(headered); ok {
		h = hv.ofxHeader()
	}
	h.Version = e.version

	var body bytes.Buffer
	var sink TagSink
	if e.version.XML() {
		sink = &xmlWriter{w: &body, multiLine: e.MultiLine}
	} else {
		sink = &sgmlWriter{w: &body, multiLine: e.MultiLine}
	}
	if err := reg.Marshal(v, sink); err != nil {
		return err
	}
	out := body.Bytes()
	if !e.version.XML() {
		// declared as CHARSET:1252 by the v1 header
		if out, err = encoding.ReplaceUnsupported(h.charset().NewEncoder()).Bytes(out); err != nil {
			return fmt.Errorf("cannot encode body: %w", err)
		}
	}
	if err := h.write(e.w); err != nil {
		return err
	}
	_, err = e.w.Write(out)
	return err
}

// Marshal returns the OFX document of v in the given version.
func Marshal(v any, version Version) ([]byte, error) {
	var buf bytes.Buffer
	if err := NewEncoder(&buf, version).Encode(v); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
