package date

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// Layout is the OFX compact date-time layout written by this package.
// Values are always written in UTC with millisecond precision.
const Layout = "20060102150405.000"

// Format formats t in the OFX compact form, in UTC.
func Format(t time.Time) string {
	return t.UTC().Format(Layout)
}

// ParseDateTime parses an OFX date-time value:
//
//	YYYYMMDD[HHMMSS[.XXX]][[gmt offset[:tz name]]]
//
// Any missing time-of-day component defaults to zero, and a missing offset
// means UTC. The offset is in hours and may be fractional ("[-3.5:NST]").
func ParseDateTime(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	value, tz, _ := strings.Cut(s, "[")
	if len(value) < 8 {
		return time.Time{}, fmt.Errorf("invalid OFX date %q: too short", s)
	}

	var frac string
	value, frac, _ = strings.Cut(value, ".")

	var parts [6]int
	widths := [6]int{4, 2, 2, 2, 2, 2}
	pos := 0
	for i, w := range widths {
		if pos >= len(value) {
			break
		}
		if pos+w > len(value) {
			return time.Time{}, fmt.Errorf("invalid OFX date %q: truncated component", s)
		}
		n, err := strconv.Atoi(value[pos : pos+w])
		if err != nil {
			return time.Time{}, fmt.Errorf("invalid OFX date %q: %w", s, err)
		}
		parts[i] = n
		pos += w
	}
	if pos != len(value) {
		return time.Time{}, fmt.Errorf("invalid OFX date %q: trailing characters", s)
	}

	nanos := 0
	if frac != "" {
		digits := frac
		if len(digits) > 9 {
			digits = digits[:9]
		}
		n, err := strconv.Atoi(digits)
		if err != nil {
			return time.Time{}, fmt.Errorf("invalid OFX date %q: %w", s, err)
		}
		for i := len(digits); i < 9; i++ {
			n *= 10
		}
		nanos = n
	}

	loc := time.UTC
	if tz != "" {
		offset, name, _ := strings.Cut(strings.TrimSuffix(tz, "]"), ":")
		hours, err := strconv.ParseFloat(strings.TrimSpace(offset), 64)
		if err != nil {
			return time.Time{}, fmt.Errorf("invalid OFX date %q: bad offset: %w", s, err)
		}
		if name == "" {
			name = "GMT" + strings.TrimSpace(offset)
		}
		loc = time.FixedZone(name, int(hours*3600))
	}

	t := time.Date(parts[0], time.Month(parts[1]), parts[2], parts[3], parts[4], parts[5], nanos, loc)
	if t.Month() != time.Month(parts[1]) || t.Day() != parts[2] {
		return time.Time{}, fmt.Errorf("invalid OFX date %q: out of range", s)
	}
	return t, nil
}
