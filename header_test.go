package ofx

import (
	"errors"
	"strings"
	"testing"
)

func TestParseVersion(t *testing.T) {
	tests := []struct {
		in      string
		want    Version
		wantErr bool
	}{
		{"1", V1, false},
		{"v2", V2, false},
		{"103", 103, false},
		{"220", 220, false},
		{"12", 0, true},
		{"x", 0, true},
	}
	for _, tt := range tests {
		got, err := ParseVersion(tt.in)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParseVersion(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseVersion(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestHeaderWriteV2(t *testing.T) {
	h := DefaultHeader()
	h.Version, h.NewFileUID = V2, "abc"
	var b strings.Builder
	if err := h.write(&b); err != nil {
		t.Fatal(err)
	}
	want := "<?xml version=\"1.0\" encoding=\"utf-8\"?>\n" +
		"<?OFX OFXHEADER=\"200\" VERSION=\"202\" SECURITY=\"NONE\" OLDFILEUID=\"NONE\" NEWFILEUID=\"abc\"?>\n"
	if got := b.String(); got != want {
		t.Errorf("write() = %q, want %q", got, want)
	}
}

func TestSplitHeader(t *testing.T) {
	tests := []struct {
		name string
		doc  string
		want Header
		body string
	}{
		{
			name: "sgml colon",
			doc:  "OFXHEADER:100\r\nDATA:OFXSGML\r\nVERSION:102\r\nSECURITY:NONE\r\nENCODING:USASCII\r\nCHARSET:1252\r\nCOMPRESSION:NONE\r\nOLDFILEUID:NONE\r\nNEWFILEUID:NONE\r\n\r\n<OFX></OFX>",
			want: Header{Version: 102, Security: SecurityNone, OldFileUID: "NONE", NewFileUID: "NONE", Encoding: "USASCII", Charset: "1252", Compression: "NONE"},
			body: "<OFX></OFX>",
		},
		{
			name: "sgml spaces",
			doc:  "VERSION 151\nCHARSET NONE\nENCODING UTF-8\n<OFX>",
			want: Header{Version: 151, Security: SecurityNone, Encoding: "UTF-8", Charset: "NONE"},
			body: "<OFX>",
		},
		{
			name: "xml",
			doc:  "<?xml version=\"1.0\"?>\n<?OFX OFXHEADER=\"200\" VERSION=\"211\" SECURITY=\"NONE\" OLDFILEUID=\"1\" NEWFILEUID='2'?>\n<OFX/>",
			want: Header{Version: 211, Security: SecurityNone, OldFileUID: "1", NewFileUID: "2"},
			body: "<?xml version=\"1.0\"?>\n<?OFX OFXHEADER=\"200\" VERSION=\"211\" SECURITY=\"NONE\" OLDFILEUID=\"1\" NEWFILEUID='2'?>\n<OFX/>",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, body, err := splitHeader([]byte(tt.doc))
			if err != nil {
				t.Fatal(err)
			}
			if h != tt.want {
				t.Errorf("header = %+v, want %+v", h, tt.want)
			}
			if string(body) != tt.body {
				t.Errorf("body = %q, want %q", body, tt.body)
			}
		})
	}
}

func TestSplitHeaderMismatch(t *testing.T) {
	for _, doc := range []string{
		"VERSION:202\r\n\r\n<OFX>",
		"<?OFX OFXHEADER=\"200\" VERSION=\"102\"?><OFX>",
		"OFXHEADER:100",
	} {
		if _, _, err := splitHeader([]byte(doc)); !errors.Is(err, ErrUnparseableAggregate) {
			t.Errorf("splitHeader(%q) error = %v, want %v", doc, err, ErrUnparseableAggregate)
		}
	}
}

func TestHeaderCharset(t *testing.T) {
	tests := []struct {
		h    Header
		text string
		want string
	}{
		{Header{Charset: "1252"}, "caf\xe9", "café"},
		{Header{Charset: "ISO-8859-1"}, "caf\xe9", "café"},
		{Header{Charset: "NONE", Encoding: "UTF-8"}, "café", "café"},
		{Header{Charset: "unheard-of"}, "caf\xe9", "café"},
	}
	for _, tt := range tests {
		got, err := tt.h.charset().NewDecoder().String(tt.text)
		if err != nil {
			t.Fatal(err)
		}
		if got != tt.want {
			t.Errorf("%+v decoded %q, want %q", tt.h, got, tt.want)
		}
	}
}
