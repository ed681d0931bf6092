package ofx

import (
	"fmt"
	"io"
)

// Kind distinguishes the events of a tag stream.
type Kind int

const (
	OpenTag Kind = iota
	ValueText
	CloseTag
)

func (k Kind) String() string {
	switch k {
	case OpenTag:
		return "open"
	case ValueText:
		return "value"
	case CloseTag:
		return "close"
	default:
		return fmt.Sprintf("kind(%d)", int(k))
	}
}

// Event is one step of the tag stream shared by both wire syntaxes.
//
// An element is always the three events Open, Value, Close and an aggregate
// is Open, its content, then Close. Tokenizers make the stream balanced even
// when the SGML input omits the closing tags of leaf elements.
type Event struct {
	Kind Kind
	Name string // tag name, for OpenTag and CloseTag
	Text string // unescaped text, for ValueText
}

func Open(name string) Event  { return Event{Kind: OpenTag, Name: name} }
func Value(text string) Event { return Event{Kind: ValueText, Text: text} }
func Close(name string) Event { return Event{Kind: CloseTag, Name: name} }

func (e Event) String() string {
	switch e.Kind {
	case OpenTag:
		return "<" + e.Name + ">"
	case CloseTag:
		return "</" + e.Name + ">"
	default:
		return fmt.Sprintf("%q", e.Text)
	}
}

// TagSink receives the events produced by the marshaller.
type TagSink interface {
	Put(Event) error
}

// TagSource produces the events consumed by the unmarshaller. Next returns
// io.EOF after the last event.
type TagSource interface {
	Next() (Event, error)
}

// Events is an in-memory tag stream. A *Events is both a TagSink and a
// TagSource.
type Events struct {
	List []Event
	pos  int
}

func (s *Events) Put(e Event) error {
	s.List = append(s.List, e)
	return nil
}

func (s *Events) Next() (Event, error) {
	if s.pos >= len(s.List) {
		return Event{}, io.EOF
	}
	e := s.List[s.pos]
	s.pos++
	return e, nil
}

// Collect drains src into a slice.
func Collect(src TagSource) ([]Event, error) {
	var events []Event
	for {
		e, err := src.Next()
		if err == io.EOF {
			return events, nil
		}
		if err != nil {
			return events, err
		}
		events = append(events, e)
	}
}
