package ofx

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
)

func TestNumber(t *testing.T) {
	tests := []struct {
		text    string
		want    string
		wantErr bool
	}{
		{text: "12.50", want: "12.5"},
		{text: "-0.01", want: "-0.01"},
		{text: "+3", want: "3"},
		{text: " 7.25 ", want: "7.25"},
		{text: "1,5", want: "1.5"},
		{text: "1,234.50", want: "1234.5"},
		{text: "abc", wantErr: true},
		{text: "", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.text, func(t *testing.T) {
			got, err := Number.Parse(tt.text)
			if tt.wantErr {
				if err == nil {
					t.Errorf("Number.Parse(%q) = %v, want an error", tt.text, got)
				}
				return
			}
			if err != nil {
				t.Fatalf("Number.Parse(%q) unexpected error: %v", tt.text, err)
			}
			if !got.Equal(decimal.RequireFromString(tt.want)) {
				t.Errorf("Number.Parse(%q) = %v, want %v", tt.text, got, tt.want)
			}
		})
	}
}

func TestOptional(t *testing.T) {
	if _, present := OptNumber.Format(nil); present {
		t.Errorf("OptNumber.Format(nil) is present, want absent")
	}
	if text, present := OptNumber.Format(decp("0")); !present || text != "0" {
		t.Errorf("OptNumber.Format(0) = %q, %v, want \"0\", true", text, present)
	}
	if _, present := Integer.Format(0); !present {
		t.Errorf("Integer.Format(0) is absent, want present")
	}
	if _, present := Text.Format(""); present {
		t.Errorf("Text.Format(\"\") is present, want absent")
	}
}

func TestFlag(t *testing.T) {
	for text, want := range map[string]bool{"Y": true, "y": true, " Y ": true, "N": false, "n": false} {
		got, err := Flag.Parse(text)
		if err != nil {
			t.Fatalf("Flag.Parse(%q) unexpected error: %v", text, err)
		}
		if got != want {
			t.Errorf("Flag.Parse(%q) = %v, want %v", text, got, want)
		}
	}
	for _, text := range []string{"X", "1", "YES", ""} {
		if _, err := Flag.Parse(text); err == nil {
			t.Errorf("Flag.Parse(%q) succeeded, want an error", text)
		}
	}
	if text, _ := Flag.Format(false); text != "N" {
		t.Errorf("Flag.Format(false) = %q, want \"N\"", text)
	}
}

func TestEnum(t *testing.T) {
	c := Enum(ParseAccountType)
	got, err := c.Parse("savings")
	if err != nil || got != Savings {
		t.Errorf("Parse(\"savings\") = %q, %v, want %q", got, err, Savings)
	}

	// an unmapped token is not an error but an absent value
	got, err = c.Parse("BROKERAGE")
	if err != nil {
		t.Fatalf("Parse(\"BROKERAGE\") unexpected error: %v", err)
	}
	if got != "" {
		t.Errorf("Parse(\"BROKERAGE\") = %q, want no match", got)
	}
	if _, present := c.Format(got); present {
		t.Errorf("no match is present, want absent")
	}
}

func TestDateTime(t *testing.T) {
	got, err := DateTime.Parse("20240115")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if want := at("2024-01-15T00:00:00Z"); !got.Equal(want) {
		t.Errorf("DateTime.Parse(\"20240115\") = %v, want %v", got, want)
	}

	got, err = DateTime.Parse("20240115093000.000[-5:EST]")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	text, _ := DateTime.Format(got)
	if want := "20240115143000.000"; text != want {
		t.Errorf("DateTime.Format() = %q, want %q", text, want)
	}

	if _, present := DateTime.Format(time.Time{}); present {
		t.Errorf("zero time is present, want absent")
	}
}

func TestStatusCode(t *testing.T) {
	got, err := Code.Parse("15500")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != SignonInvalid {
		t.Errorf("Code.Parse(\"15500\") = %#v, want SignonInvalid", got)
	}

	got, err = Code.Parse("99999")
	if err != nil {
		t.Fatalf("unknown code must not fail: %v", err)
	}
	unknown, ok := got.(UnknownCode)
	if !ok {
		t.Fatalf("Code.Parse(\"99999\") = %T, want UnknownCode", got)
	}
	if unknown.Code() != 99999 {
		t.Errorf("Code() = %d, want 99999", unknown.Code())
	}
	if unknown.Severity() != SeverityError {
		t.Errorf("Severity() = %v, want %v", unknown.Severity(), SeverityError)
	}

	if _, err := Code.Parse("OK"); err == nil {
		t.Errorf("Code.Parse(\"OK\") succeeded, want an error")
	}
}
