package ofx

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"regexp"
	"strconv"
	"strings"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/htmlindex"
	"golang.org/x/text/encoding/unicode"
)

// Version is the OFX version declared in the header, such as 102 or 202.
// Versions below 200 use the SGML syntax, the others XML.
type Version int

const (
	V1 Version = 102
	V2 Version = 202
)

// XML reports whether documents of this version use the XML syntax.
func (v Version) XML() bool { return v >= 200 }

func (v Version) String() string { return strconv.Itoa(int(v)) }

// ParseVersion parses "1", "2" or a full version number such as "102".
func ParseVersion(s string) (Version, error) {
	switch s {
	case "1", "v1":
		return V1, nil
	case "2", "v2":
		return V2, nil
	}
	n, err := strconv.Atoi(s)
	if err != nil || n < 100 {
		return 0, fmt.Errorf("invalid OFX version %q", s)
	}
	return Version(n), nil
}

// Header holds the values found before the <OFX> root element.
type Header struct {
	Version    Version
	Security   ApplicationSecurity
	OldFileUID string
	NewFileUID string

	// SGML only.
	Encoding    string
	Charset     string
	Compression string
}

// DefaultHeader returns the header written when nothing else is known.
func DefaultHeader() Header {
	return Header{
		Version:     V1,
		Security:    SecurityNone,
		OldFileUID:  "NONE",
		NewFileUID:  "NONE",
		Encoding:    "USASCII",
		Charset:     "1252",
		Compression: "NONE",
	}
}

func orNone(s string) string {
	if s == "" {
		return "NONE"
	}
	return s
}

// write writes the header in the syntax of h.Version.
func (h Header) write(w io.Writer) error {
	var err error
	if h.Version.XML() {
		_, err = fmt.Fprintf(w, "<?xml version=\"1.0\" encoding=\"utf-8\"?>\n<?OFX OFXHEADER=\"200\" VERSION=\"%d\" SECURITY=\"%s\" OLDFILEUID=\"%s\" NEWFILEUID=\"%s\"?>\n",
			h.Version, orNone(string(h.Security)), orNone(h.OldFileUID), orNone(h.NewFileUID))
		return err
	}
	d := DefaultHeader()
	if h.Encoding == "" {
		h.Encoding = d.Encoding
	}
	if h.Charset == "" {
		h.Charset = d.Charset
	}
	if h.Compression == "" {
		h.Compression = d.Compression
	}
	lines := []string{
		"OFXHEADER:100",
		"DATA:OFXSGML",
		"VERSION:" + h.Version.String(),
		"SECURITY:" + orNone(string(h.Security)),
		"ENCODING:" + h.Encoding,
		"CHARSET:" + h.Charset,
		"COMPRESSION:" + h.Compression,
		"OLDFILEUID:" + orNone(h.OldFileUID),
		"NEWFILEUID:" + orNone(h.NewFileUID),
		"",
		"",
	}
	_, err = io.WriteString(w, strings.Join(lines, "\r\n"))
	return err
}

// charset returns the text encoding of an SGML body.
func (h Header) charset() encoding.Encoding {
	switch strings.ToUpper(h.Charset) {
	case "1252", "WINDOWS-1252", "CP1252":
		return charmap.Windows1252
	case "ISO-8859-1", "8859-1", "LATIN1":
		return charmap.ISO8859_1
	case "", "NONE":
		if strings.EqualFold(h.Encoding, "UTF-8") || strings.EqualFold(h.Encoding, "UNICODE") {
			return unicode.UTF8
		}
		return charmap.Windows1252
	}
	if e, err := htmlindex.Get(h.Charset); err == nil {
		return e
	}
	return charmap.Windows1252
}

var (
	rootStart   = []byte("<OFX")
	ofxPI       = regexp.MustCompile(`<\?OFX\s([^?]*)\?>`)
	piAttribute = regexp.MustCompile(`([A-Za-z]+)\s*=\s*(?:"([^"]*)"|'([^']*)')`)
)

// splitHeader separates the header from the body starting at the <OFX> root.
func splitHeader(data []byte) (Header, []byte, error) {
	i := bytes.Index(data, rootStart)
	if i < 0 {
		return Header{}, nil, &SyntaxError{Err: ErrUnparseableAggregate, Msg: "no <OFX> root element"}
	}
	h := Header{Security: SecurityNone}
	head := data[:i]
	if m := ofxPI.FindSubmatch(head); m != nil {
		h.Version = 200
		for _, a := range piAttribute.FindAllSubmatch(m[1], -1) {
			h.set(string(a[1]), string(a[2])+string(a[3]))
		}
		if !h.Version.XML() {
			return h, nil, &SyntaxError{Err: ErrUnparseableAggregate, Msg: fmt.Sprintf("OFX processing instruction with version %d", h.Version)}
		}
		return h, data, nil
	}

	h.Version = 100
	sc := bufio.NewScanner(bytes.NewReader(head))
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" {
			continue
		}
		key, value, ok := strings.Cut(line, ":")
		if !ok {
			fields := strings.Fields(line)
			if len(fields) != 2 {
				continue
			}
			key, value = fields[0], fields[1]
		}
		h.set(strings.TrimSpace(key), strings.TrimSpace(value))
	}
	if h.Version.XML() {
		return h, nil, &SyntaxError{Err: ErrUnparseableAggregate, Msg: fmt.Sprintf("SGML header with version %d", h.Version)}
	}
	return h, data[i:], nil
}

func (h *Header) set(key, value string) {
	switch strings.ToUpper(key) {
	case "VERSION":
		if n, err := strconv.Atoi(value); err == nil {
			h.Version = Version(n)
		}
	case "SECURITY":
		h.Security = ApplicationSecurity(strings.ToUpper(value))
	case "OLDFILEUID":
		h.OldFileUID = value
	case "NEWFILEUID":
		h.NewFileUID = value
	case "ENCODING":
		h.Encoding = value
	case "CHARSET":
		h.Charset = value
	case "COMPRESSION":
		h.Compression = value
	}
}

// headered is implemented by envelopes, which carry header values.
type headered interface {
	ofxHeader() Header
	setOFXHeader(Header)
}
