// Package date handles the timestamps attached to ledger transactions.
//
// A Stamp is persisted in ISO-8601 with millisecond precision in UTC, which
// sorts lexicographically in chronological order. Reading is lenient and
// also accepts RFC 3339 with any fraction, timezone offsets, and bare days.
package date

import (
	"encoding/json"
	"fmt"
	"time"
)

// Layout is the format used to persist stamps.
const Layout = "2006-01-02T15:04:05.000Z07:00"

// DayLayout is the format of a bare day, accepted on read.
const DayLayout = "2006-01-02"

// DisplayLayout is the localized format used in reports and listings.
const DisplayLayout = "1/2/2006, 3:04:05 PM"

// readLayouts are tried in order by Parse.
var readLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-1-2", // permissive day format, allows 2025-7-1
}

// Stamp is a point in time with millisecond precision, always in UTC.
type Stamp struct {
	t time.Time
}

// New returns the Stamp for t, truncated to the millisecond.
func New(t time.Time) Stamp {
	if t.IsZero() {
		return Stamp{}
	}
	return Stamp{t: t.UTC().Truncate(time.Millisecond)}
}

// Now returns the current Stamp.
func Now() Stamp { return New(time.Now()) }

// Time returns the stamp as a time.Time in UTC.
func (s Stamp) Time() time.Time { return s.t }

// IsZero reports whether the stamp is unset.
func (s Stamp) IsZero() bool { return s.t.IsZero() }

// Before reports whether s is before x.
func (s Stamp) Before(x Stamp) bool { return s.t.Before(x.t) }

// After reports whether s is after x.
func (s Stamp) After(x Stamp) bool { return s.t.After(x.t) }

// Equal reports whether s and x represent the same instant.
func (s Stamp) Equal(x Stamp) bool { return s.t.Equal(x.t) }

// Compare returns -1, 0 or +1 like time.Time.Compare.
func (s Stamp) Compare(x Stamp) int { return s.t.Compare(x.t) }

// String formats the stamp in its persisted form, or "" for the zero stamp.
func (s Stamp) String() string {
	if s.IsZero() {
		return ""
	}
	return s.t.Format(Layout)
}

// Day returns the calendar day of the stamp in loc (UTC if nil).
func (s Stamp) Day(loc *time.Location) string {
	if s.IsZero() {
		return ""
	}
	return s.in(loc).Format(DayLayout)
}

// Display formats the stamp for humans, in loc (local time if nil).
func (s Stamp) Display(loc *time.Location) string {
	if s.IsZero() {
		return ""
	}
	if loc == nil {
		loc = time.Local
	}
	return s.t.In(loc).Format(DisplayLayout)
}

func (s Stamp) in(loc *time.Location) time.Time {
	if loc == nil {
		return s.t
	}
	return s.t.In(loc)
}

// Parse reads a stamp in any of the accepted layouts. An empty string yields the zero Stamp.
func Parse(str string) (Stamp, error) {
	if str == "" {
		return Stamp{}, nil
	}
	for _, layout := range readLayouts {
		if t, err := time.Parse(layout, str); err == nil {
			return New(t), nil
		}
	}
	return Stamp{}, fmt.Errorf("invalid date %q want format %q", str, Layout)
}

// MustParse is like Parse but panics on error.
func MustParse(str string) Stamp {
	s, err := Parse(str)
	if err != nil {
		panic(err.Error())
	}
	return s
}

// UnmarshalJSON implements json.Unmarshaler.
func (s *Stamp) UnmarshalJSON(bytes []byte) error {
	var str string
	if err := json.Unmarshal(bytes, &str); err != nil {
		return err
	}
	v, err := Parse(str)
	if err != nil {
		return err
	}
	*s = v
	return nil
}

// MarshalJSON implements json.Marshaler.
func (s Stamp) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.String())
}

var _ json.Marshaler = Stamp{}
var _ json.Unmarshaler = (*Stamp)(nil)
