package date

import (
	"fmt"
	"time"
)

// Range represents a range of dates, boundaries included.
type Range struct{ From, To Date }

// NewRange returns the period that contains d.
func NewRange(d Date, period Period) Range {
	return Range{From: d.StartOf(period), To: d.EndOf(period)}
}

// Previous returns the complete period right before the one containing d.
// It is the usual window for a statement download ("last month").
func Previous(d Date, period Period) Range {
	return NewRange(d.StartOf(period).Add(-1), period)
}

// Contains return true date is included in the range (boundaries included)
func (r Range) Contains(date Date) bool { return !date.Before(r.From) && !date.After(r.To) }

// Validate checks that the range is not reversed.
func (r Range) Validate() error {
	if !r.From.IsZero() && !r.To.IsZero() && r.To.Before(r.From) {
		return fmt.Errorf("invalid range: %s is after %s", r.From, r.To)
	}
	return nil
}

// Start returns the instant the range starts (midnight UTC of From).
// The zero time is returned for an open start.
func (r Range) Start() time.Time { return r.From.Time() }

// End returns the instant right after the last day of the range, OFX end
// dates being exclusive. The zero time is returned for an open end.
func (r Range) End() time.Time {
	if r.To.IsZero() {
		return time.Time{}
	}
	return r.To.Add(1).Time()
}

// String returns "from..to" with empty sides for open boundaries.
func (r Range) String() string { return fmt.Sprintf("%s..%s", r.From, r.To) }
