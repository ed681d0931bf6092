package ofx

import (
	"io"
	"strings"
)

// sgmlWriter writes the OFX v1 syntax. The closing tag of an element is
// omitted.
type sgmlWriter struct {
	w         io.Writer
	multiLine bool
	started   bool
	last      string // last opened tag
	valued    string // element whose value has just been written
}

var sgmlEscaper = strings.NewReplacer("&", "&amp;", "<", "&lt;", ">", "&gt;")

func (s *sgmlWriter) Put(e Event) error {
	var out string
	switch e.Kind {
	case OpenTag:
		out = s.newline() + "<" + e.Name + ">"
		s.last, s.valued = e.Name, ""
	case ValueText:
		out = sgmlEscaper.Replace(e.Text)
		s.valued = s.last
	case CloseTag:
		if s.valued == e.Name {
			s.valued = ""
			return nil
		}
		out = s.newline() + "</" + e.Name + ">"
	}
	_, err := io.WriteString(s.w, out)
	return err
}

func (s *sgmlWriter) newline() string {
	if !s.multiLine || !s.started {
		s.started = true
		return ""
	}
	return "\r\n"
}

var sgmlUnescaper = strings.NewReplacer(
	"&amp;", "&",
	"&lt;", "<",
	"&gt;", ">",
	"&quot;", `"`,
	"&apos;", "'",
	"&nbsp;", " ",
)

// sgmlTokenizer reads the OFX v1 syntax and produces a balanced event stream.
//
// Tag names are upper cased. A leaf element holding a value is closed by its
// explicit closing tag, by the next opening tag, or by the closing tag of an
// enclosing aggregate. A closing tag naming a tag that is not open is an
// error.
type sgmlTokenizer struct {
	src   string
	pos   int
	stack []string
	leaf  bool // the top of the stack is an element holding a value
	queue []Event
}

func newSGMLTokenizer(src string) *sgmlTokenizer {
	return &sgmlTokenizer{src: src}
}

func (t *sgmlTokenizer) Next() (Event, error) {
	for len(t.queue) == 0 {
		if err := t.step(); err != nil {
			return Event{}, err
		}
	}
	e := t.queue[0]
	t.queue = t.queue[1:]
	return e, nil
}

func (t *sgmlTokenizer) step() error {
	if t.pos >= len(t.src) {
		return t.finish()
	}
	rest := t.src[t.pos:]
	if rest[0] != '<' {
		end := strings.IndexByte(rest, '<')
		if end < 0 {
			end = len(rest)
		}
		t.pos += end
		if text := strings.TrimSpace(rest[:end]); text != "" {
			t.text(sgmlUnescaper.Replace(text))
		}
		return nil
	}

	start := t.pos
	if strings.HasPrefix(rest, "<!--") {
		end := strings.Index(rest, "-->")
		if end < 0 {
			return t.errorf(start, "", "unterminated comment")
		}
		t.pos += end + len("-->")
		return nil
	}
	end := strings.IndexByte(rest, '>')
	if end < 0 {
		return t.errorf(start, "", "unterminated tag")
	}
	t.pos += end + 1
	raw := rest[1:end]
	switch {
	case strings.HasPrefix(raw, "!"), strings.HasPrefix(raw, "?"):
		return nil
	case strings.HasPrefix(raw, "/"):
		return t.close(strings.ToUpper(strings.TrimSpace(raw[1:])), start)
	}
	name := strings.ToUpper(strings.TrimSpace(raw))
	if name == "" || strings.ContainsAny(name, " \t\r\n<") {
		return t.errorf(start, name, "invalid tag")
	}
	t.open(name)
	return nil
}

func (t *sgmlTokenizer) open(name string) {
	if t.leaf {
		t.pop()
	}
	t.stack = append(t.stack, name)
	t.queue = append(t.queue, Open(name))
}

func (t *sgmlTokenizer) text(text string) {
	// text outside of any tag, or a second text after a comment, is dropped
	if len(t.stack) == 0 || t.leaf {
		return
	}
	t.leaf = true
	t.queue = append(t.queue, Value(text))
}

func (t *sgmlTokenizer) close(name string, offset int) error {
	if t.leaf {
		top := t.stack[len(t.stack)-1]
		t.pop()
		if top == name {
			return nil
		}
	}
	i := len(t.stack) - 1
	for i >= 0 && t.stack[i] != name {
		i--
	}
	if i < 0 {
		return t.errorf(offset, name, "closing tag without opening tag")
	}
	for len(t.stack) > i {
		t.pop()
	}
	return nil
}

func (t *sgmlTokenizer) pop() {
	top := t.stack[len(t.stack)-1]
	t.stack = t.stack[:len(t.stack)-1]
	t.leaf = false
	t.queue = append(t.queue, Close(top))
}

func (t *sgmlTokenizer) finish() error {
	if t.leaf {
		t.pop()
	}
	if len(t.stack) > 0 {
		return t.errorf(len(t.src), t.stack[len(t.stack)-1], "unexpected end of input")
	}
	if len(t.queue) > 0 {
		return nil
	}
	return io.EOF
}

func (t *sgmlTokenizer) errorf(offset int, tag, msg string) error {
	return &SyntaxError{Err: ErrUnparseableAggregate, Tag: tag, Offset: int64(offset), Msg: msg}
}
