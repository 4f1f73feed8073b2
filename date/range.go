package date

import (
	"fmt"
	"time"
)

// Range is an inclusive range of stamps. A zero bound is open.
type Range struct{ From, To Stamp }

// Contains reports whether s is within the range, boundaries included.
func (r Range) Contains(s Stamp) bool {
	if !r.From.IsZero() && s.Before(r.From) {
		return false
	}
	if !r.To.IsZero() && s.After(r.To) {
		return false
	}
	return true
}

// IsOpen reports whether the range has no bound at all.
func (r Range) IsOpen() bool { return r.From.IsZero() && r.To.IsZero() }

// String returns a human readable form of the range.
func (r Range) String() string {
	switch {
	case r.IsOpen():
		return "all time"
	case r.From.IsZero():
		return fmt.Sprintf("until %s", r.To.Day(nil))
	case r.To.IsZero():
		return fmt.Sprintf("since %s", r.From.Day(nil))
	default:
		return fmt.Sprintf("%s to %s", r.From.Day(nil), r.To.Day(nil))
	}
}

// ParseRange builds a Range from two day strings, either may be empty.
// The upper bound covers the whole day.
func ParseRange(from, to string) (Range, error) {
	var r Range
	var err error
	if r.From, err = Parse(from); err != nil {
		return Range{}, fmt.Errorf("invalid start: %w", err)
	}
	if r.To, err = Parse(to); err != nil {
		return Range{}, fmt.Errorf("invalid end: %w", err)
	}
	if !r.To.IsZero() && len(to) <= len(DayLayout) {
		r.To = New(r.To.Time().Add(24*time.Hour - time.Millisecond))
	}
	if !r.From.IsZero() && !r.To.IsZero() && r.To.Before(r.From) {
		return Range{}, fmt.Errorf("end %s is before start %s", to, from)
	}
	return r, nil
}
