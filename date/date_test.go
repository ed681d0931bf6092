package date

import (
	"testing"
	"time"
)

// TestTime assert that the time() is cannonical and gives comparable times.
func TestTime(t *testing.T) {
	d1 := New(2025, 7, 31)
	d2 := New(2025, 7, 31)

	if d1.time() != d2.time() {
		// Note that usually time.Time are not comparable (there is a pointer for the timezone) this
		// tests also checks that the property remain true
		t.Errorf("invalid time() function same day gives two different time")
	}
}

func TestParse(t *testing.T) {
	tests := []struct {
		input    string
		expected Date
		err      bool
	}{
		{"2025-01-15", New(2025, time.January, 15), false},
		{"2025-7-1", New(2025, time.July, 1), false},
		{"invalid-date", Date{}, true},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := Parse(tt.input)
			if (err != nil) != tt.err {
				t.Errorf("Parse(%q) error = %v, wantErr %v", tt.input, err, tt.err)
				return
			}
			if !tt.err && got != tt.expected {
				t.Errorf("Parse(%q) = %v, want %v", tt.input, got, tt.expected)
			}
		})
	}
}

func TestParseDateTime(t *testing.T) {
	est := time.FixedZone("EST", -5*3600)
	nst := time.FixedZone("NST", -3*3600-1800)
	tests := []struct {
		input string
		want  time.Time
		err   bool
	}{
		{"20250115", time.Date(2025, 1, 15, 0, 0, 0, 0, time.UTC), false},
		{"202501151230", time.Date(2025, 1, 15, 12, 30, 0, 0, time.UTC), false},
		{"20250115123045", time.Date(2025, 1, 15, 12, 30, 45, 0, time.UTC), false},
		{"20250115123045.123", time.Date(2025, 1, 15, 12, 30, 45, 123000000, time.UTC), false},
		{"20250115123045.123[-5:EST]", time.Date(2025, 1, 15, 12, 30, 45, 123000000, est), false},
		{"20250115120000[-3.5:NST]", time.Date(2025, 1, 15, 12, 0, 0, 0, nst), false},
		{"20250115[0]", time.Date(2025, 1, 15, 0, 0, 0, 0, time.UTC), false},
		{"2025011", time.Time{}, true},
		{"20251315", time.Time{}, true},
		{"2025011512x0", time.Time{}, true},
		{"20250115120", time.Time{}, true},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseDateTime(tt.input)
			if (err != nil) != tt.err {
				t.Fatalf("ParseDateTime(%q) error = %v, wantErr %v", tt.input, err, tt.err)
			}
			if !tt.err && !got.Equal(tt.want) {
				t.Errorf("ParseDateTime(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestFormatRoundTrip(t *testing.T) {
	in := time.Date(2024, 2, 29, 23, 59, 58, 7000000, time.FixedZone("X", 3600))
	s := Format(in)
	if s != "20240229225958.007" {
		t.Errorf("Format() = %q", s)
	}
	got, err := ParseDateTime(s)
	if err != nil {
		t.Fatal(err)
	}
	if !got.Equal(in) {
		t.Errorf("round trip %v != %v", got, in)
	}
}
