package ofx

import (
	"encoding/xml"
	"fmt"
	"io"
	"strings"

	"golang.org/x/text/encoding/htmlindex"
)

// xmlWriter writes the OFX v2 syntax, every element explicitly closed.
type xmlWriter struct {
	w         io.Writer
	multiLine bool
	started   bool
	valued    bool // the last event was a value
}

func (x *xmlWriter) Put(e Event) error {
	var b strings.Builder
	switch e.Kind {
	case OpenTag:
		x.newline(&b)
		b.WriteString("<" + e.Name + ">")
		x.valued = false
	case ValueText:
		if err := xml.EscapeText(&b, []byte(e.Text)); err != nil {
			return err
		}
		x.valued = true
	case CloseTag:
		if !x.valued {
			x.newline(&b)
		}
		b.WriteString("</" + e.Name + ">")
		x.valued = false
	}
	_, err := io.WriteString(x.w, b.String())
	return err
}

func (x *xmlWriter) newline(b *strings.Builder) {
	if x.multiLine && x.started {
		b.WriteString("\n")
	}
	x.started = true
}

// xmlTokenizer reads the OFX v2 syntax with a strict XML decoder: a missing
// closing tag is an error.
type xmlTokenizer struct {
	d     *xml.Decoder
	text  strings.Builder
	queue []Event
}

func newXMLTokenizer(r io.Reader) *xmlTokenizer {
	d := xml.NewDecoder(r)
	d.Strict = true
	d.CharsetReader = charsetReader
	return &xmlTokenizer{d: d}
}

func charsetReader(label string, input io.Reader) (io.Reader, error) {
	e, err := htmlindex.Get(label)
	if err != nil {
		return nil, fmt.Errorf("unsupported charset %q: %w", label, err)
	}
	return e.NewDecoder().Reader(input), nil
}

func (t *xmlTokenizer) Next() (Event, error) {
	for len(t.queue) == 0 {
		tok, err := t.d.Token()
		if err == io.EOF {
			return Event{}, io.EOF
		}
		if err != nil {
			return Event{}, &SyntaxError{Err: ErrUnparseableAggregate, Offset: t.d.InputOffset(), Cause: err}
		}
		switch tok := tok.(type) {
		case xml.StartElement:
			t.flush()
			t.queue = append(t.queue, Open(tok.Name.Local))
		case xml.EndElement:
			t.flush()
			t.queue = append(t.queue, Close(tok.Name.Local))
		case xml.CharData:
			t.text.Write(tok)
		}
	}
	e := t.queue[0]
	t.queue = t.queue[1:]
	return e, nil
}

// flush emits the text accumulated since the last tag.
func (t *xmlTokenizer) flush() {
	text := strings.TrimSpace(t.text.String())
	t.text.Reset()
	if text != "" {
		t.queue = append(t.queue, Value(text))
	}
}
