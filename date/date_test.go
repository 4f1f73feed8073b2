package date

import (
	"encoding/json"
	"testing"
	"time"
)

// TestNewIsComparable asserts that New gives canonical stamps that can be compared with ==.
func TestNewIsComparable(t *testing.T) {
	paris, err := time.LoadLocation("Europe/Paris")
	if err != nil {
		t.Skipf("no tzdata: %v", err)
	}
	s1 := New(time.Date(2025, 7, 31, 14, 0, 0, 123456789, paris))
	s2 := New(time.Date(2025, 7, 31, 12, 0, 0, 123000000, time.UTC))

	if s1 != s2 {
		t.Errorf("New() gives two different stamps for the same instant: %v != %v", s1, s2)
	}
}

func TestParse(t *testing.T) {
	testCases := []struct {
		in      string
		want    string
		wantErr bool
	}{
		{in: "2024-03-01T10:20:30.456Z", want: "2024-03-01T10:20:30.456Z"},
		{in: "2024-03-01T10:20:30Z", want: "2024-03-01T10:20:30.000Z"},
		{in: "2024-03-01T12:20:30+02:00", want: "2024-03-01T10:20:30.000Z"},
		{in: "2024-03-01T10:20:30.123456Z", want: "2024-03-01T10:20:30.123Z"},
		{in: "2024-03-01", want: "2024-03-01T00:00:00.000Z"},
		{in: "2024-3-1", want: "2024-03-01T00:00:00.000Z"},
		{in: "", want: ""},
		{in: "yesterday", wantErr: true},
	}
	for _, tc := range testCases {
		t.Run(tc.in, func(t *testing.T) {
			got, err := Parse(tc.in)
			if (err != nil) != tc.wantErr {
				t.Fatalf("Parse(%q) error = %v, wantErr %v", tc.in, err, tc.wantErr)
			}
			if tc.wantErr {
				return
			}
			if got.String() != tc.want {
				t.Errorf("Parse(%q) = %q, want %q", tc.in, got.String(), tc.want)
			}
		})
	}
}

func TestStampJSON(t *testing.T) {
	s := MustParse("2024-01-15T08:30:00.250Z")
	data, err := json.Marshal(s)
	if err != nil {
		t.Fatalf("Marshal() error = %v", err)
	}
	if want := `"2024-01-15T08:30:00.250Z"`; string(data) != want {
		t.Errorf("Marshal() = %s, want %s", data, want)
	}
	var back Stamp
	if err := json.Unmarshal(data, &back); err != nil {
		t.Fatalf("Unmarshal() error = %v", err)
	}
	if back != s {
		t.Errorf("round trip got %v, want %v", back, s)
	}

	if err := json.Unmarshal([]byte(`"not a date"`), &back); err == nil {
		t.Error("Unmarshal() of an invalid date should fail")
	}
}

func TestDisplay(t *testing.T) {
	s := MustParse("2024-01-05T15:04:05Z")
	if got, want := s.Display(time.UTC), "1/5/2024, 3:04:05 PM"; got != want {
		t.Errorf("Display() = %q, want %q", got, want)
	}
	if got := (Stamp{}).Display(time.UTC); got != "" {
		t.Errorf("Display() of zero stamp = %q, want empty", got)
	}
}

func TestParseRange(t *testing.T) {
	r, err := ParseRange("2024-01-01", "2024-01-31")
	if err != nil {
		t.Fatalf("ParseRange() error = %v", err)
	}
	testCases := []struct {
		stamp string
		want  bool
	}{
		{"2023-12-31T23:59:59.999Z", false},
		{"2024-01-01T00:00:00Z", true},
		{"2024-01-31T23:59:59.999Z", true},
		{"2024-02-01T00:00:00Z", false},
	}
	for _, tc := range testCases {
		if got := r.Contains(MustParse(tc.stamp)); got != tc.want {
			t.Errorf("Contains(%s) = %v, want %v", tc.stamp, got, tc.want)
		}
	}

	if _, err := ParseRange("2024-02-01", "2024-01-01"); err == nil {
		t.Error("ParseRange() with end before start should fail")
	}

	open, _ := ParseRange("", "")
	if !open.IsOpen() || !open.Contains(MustParse("1999-01-01")) {
		t.Error("empty range should be open and contain everything")
	}
}
