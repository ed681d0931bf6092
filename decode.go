package ofx

import (
	"bytes"
	"fmt"
	"io"
	"log"
	"reflect"
	"time"
)

// Verbose logs the unknown tags skipped while reading.
var Verbose bool

// reader builds object graphs from a balanced tag stream.
type reader struct {
	reg  *Registry
	src  TagSource
	back []Event
	// empty elements whose closing tag is still to come, after the
	// siblings the SGML tokenizer nested in them
	dangling []string
}

func (d *reader) next() (Event, error) {
	if n := len(d.back); n > 0 {
		e := d.back[n-1]
		d.back = d.back[:n-1]
		return e, nil
	}
	e, err := d.src.Next()
	if err == io.EOF {
		return e, &SyntaxError{Err: ErrUnparseableAggregate, Msg: "unexpected end of input"}
	}
	return e, err
}

func (d *reader) unread(e Event) { d.back = append(d.back, e) }

// root returns the first opening tag.
func (d *reader) root() (Event, error) {
	for {
		e, err := d.next()
		if err != nil {
			return e, err
		}
		switch e.Kind {
		case OpenTag:
			return e, nil
		case CloseTag:
			return e, &SyntaxError{Err: ErrUnparseableAggregate, Tag: e.Name, Msg: "closing tag before root element"}
		}
	}
}

// Unmarshal reads the aggregate of v, a pointer to a registered type, from
// src. The root tag must be the aggregate's tag.
func (r *Registry) Unmarshal(src TagSource, v any) error {
	s, err := r.schemaOf(v)
	if err != nil {
		return err
	}
	d := &reader{reg: r, src: src}
	e, err := d.root()
	if err != nil {
		return err
	}
	if e.Name != s.name {
		return &SyntaxError{Err: ErrUnparseableAggregate, Tag: e.Name, Msg: fmt.Sprintf("expecting <%s>", s.name)}
	}
	return d.aggregate(v, s, e.Name)
}

// ReadAny reads an aggregate whose type is resolved from the root tag.
func (r *Registry) ReadAny(src TagSource) (any, error) {
	d := &reader{reg: r, src: src}
	e, err := d.root()
	if err != nil {
		return nil, err
	}
	s, err := d.resolve(e.Name)
	if err != nil {
		return nil, err
	}
	v := s.new()
	if err := d.aggregate(v, s, e.Name); err != nil {
		return nil, err
	}
	return v, nil
}

// resolve returns the schema of a root tag. When several schemas share the
// tag, the first child decides: the first candidate accepting it wins.
func (d *reader) resolve(tag string) (*Schema, error) {
	candidates := d.reg.names[tag]
	switch len(candidates) {
	case 0:
		return nil, &SchemaError{Err: ErrSchemaNotFound, Tag: tag}
	case 1:
		return candidates[0], nil
	}
	e, err := d.next()
	if err != nil {
		return nil, err
	}
	d.unread(e)
	if e.Kind == OpenTag {
		for _, s := range candidates {
			if i, _ := d.reg.match(s, e.Name, 0); i >= 0 {
				return s, nil
			}
		}
	}
	return nil, &SchemaError{Err: ErrSchemaNotFound, Tag: tag}
}

// aggregate fills v after its opening tag has been consumed, up to and
// including the matching closing tag.
func (d *reader) aggregate(v any, s *Schema, tag string) error {
	set := make([]bool, len(s.fields))
	cursor := 0
	base := len(d.dangling)
	for {
		e, err := d.next()
		if err != nil {
			return err
		}
		switch e.Kind {
		case ValueText:
			continue
		case CloseTag:
			if n := len(d.dangling); n > base && d.dangling[n-1] == e.Name {
				d.dangling = d.dangling[:n-1]
				continue
			}
			if e.Name != tag {
				return &SyntaxError{Err: ErrUnparseableAggregate, Tag: tag, Msg: fmt.Sprintf("closed by </%s>", e.Name)}
			}
			for i, f := range s.fields {
				if f.required && !set[i] {
					return &FieldError{Err: ErrMissingRequiredField, Aggregate: tag, Field: d.reg.name(f)}
				}
			}
			return nil
		}

		i, variant := d.reg.match(s, e.Name, cursor)
		if i < 0 {
			if Verbose {
				log.Printf("skipping unknown <%s> in <%s>", e.Name, tag)
			}
			if err := d.skip(); err != nil {
				return err
			}
			continue
		}
		cursor = i
		f := s.fields[i]

		if f.kind == elementKind {
			present, err := d.element(v, f, tag)
			if err != nil {
				return err
			}
			set[i] = set[i] || present
			continue
		}

		nested := f.alloc(v, variant)
		ns, err := d.reg.Lookup(reflect.TypeOf(nested).Elem())
		if err != nil {
			return err
		}
		if err := d.aggregate(nested, ns, e.Name); err != nil {
			return err
		}
		set[i] = true
	}
}

// element reads the value of f after its opening tag, and reports whether
// the field now holds a value.
func (d *reader) element(v any, f *Field, aggregate string) (bool, error) {
	e, err := d.next()
	if err != nil {
		return false, err
	}
	switch e.Kind {
	case CloseTag:
		if e.Name != f.tag {
			return false, &SyntaxError{Err: ErrUnparseableAggregate, Tag: f.tag, Msg: fmt.Sprintf("closed by </%s>", e.Name)}
		}
		return false, nil
	case OpenTag:
		// An empty element: what follows are its siblings, and its closing
		// tag comes after them.
		d.unread(e)
		d.dangling = append(d.dangling, f.tag)
		return false, nil
	}

	if err := f.parse(v, e.Text); err != nil {
		return false, &FieldError{Err: ErrInvalidValue, Aggregate: aggregate, Field: f.tag, Cause: err}
	}
	c, err := d.next()
	if err != nil {
		return false, err
	}
	if c.Kind == OpenTag {
		d.unread(c)
		if err := d.skip(); err != nil {
			return false, err
		}
	} else if c.Kind != CloseTag || c.Name != f.tag {
		return false, &SyntaxError{Err: ErrUnparseableAggregate, Tag: f.tag, Msg: fmt.Sprintf("unexpected %v", c)}
	}
	_, present := f.format(v)
	return present, nil
}

// skip consumes events up to the closing tag of an element already opened.
func (d *reader) skip() error {
	depth := 1
	for depth > 0 {
		e, err := d.next()
		if err != nil {
			return err
		}
		switch e.Kind {
		case OpenTag:
			depth++
		case CloseTag:
			depth--
		}
	}
	return nil
}

// match returns the index of the field accepting tag, looking first at the
// fields from the cursor onward, then at the previous ones.
func (r *Registry) match(s *Schema, tag string, cursor int) (int, int) {
	for i := cursor; i < len(s.fields); i++ {
		if variant, ok := r.accepts(s.fields[i], tag); ok {
			return i, variant
		}
	}
	for i := 0; i < cursor; i++ {
		if variant, ok := r.accepts(s.fields[i], tag); ok {
			return i, variant
		}
	}
	return -1, 0
}

// A Decoder reads OFX documents, header included, from an input stream.
type Decoder struct {
	r      io.Reader
	header Header

	// Registry used to unmarshal, Schemas when nil.
	Registry *Registry
}

// NewDecoder returns a decoder reading from r.
func NewDecoder(r io.Reader) *Decoder { return &Decoder{r: r} }

// Header returns the header of the last decoded document.
func (d *Decoder) Header() Header { return d.header }

func (d *Decoder) registry() *Registry {
	if d.Registry == nil {
		return Schemas
	}
	return d.Registry
}

// open reads the header and returns the tokenizer matching its version.
func (d *Decoder) open() (TagSource, error) {
	data, err := io.ReadAll(d.r)
	if err != nil {
		return nil, err
	}
	h, body, err := splitHeader(data)
	if err != nil {
		return nil, err
	}
	d.header = h
	if h.Version.XML() {
		return newXMLTokenizer(bytes.NewReader(body)), nil
	}
	text, err := h.charset().NewDecoder().Bytes(body)
	if err != nil {
		return nil, fmt.Errorf("cannot decode %s body: %w", h.Charset, err)
	}
	return newSGMLTokenizer(string(text)), nil
}

// Decode reads a document into v. Envelopes also receive the header values.
func (d *Decoder) Decode(v any) (err error) {
	start := time.Now()
	defer func() { emitUnmarshalComplete(v, d.header.Version, time.Since(start), err) }()
	src, err := d.open()
	if err != nil {
		return err
	}
	if err := d.registry().Unmarshal(src, v); err != nil {
		return err
	}
	if hv, ok := v.(headered); ok {
		hv.setOFXHeader(d.header)
	}
	return nil
}

// DecodeAny reads a document whose root type is resolved from its tag.
func (d *Decoder) DecodeAny() (v any, err error) {
	start := time.Now()
	defer func() { emitUnmarshalComplete(v, d.header.Version, time.Since(start), err) }()
	src, err := d.open()
	if err != nil {
		return nil, err
	}
	v, err = d.registry().ReadAny(src)
	if err != nil {
		return nil, err
	}
	if hv, ok := v.(headered); ok {
		hv.setOFXHeader(d.header)
	}
	return v, nil
}

// Unmarshal reads the OFX document data into v.
func Unmarshal(data []byte, v any) error {
	return NewDecoder(bytes.NewReader(data)).Decode(v)
}
