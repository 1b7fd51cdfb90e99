package appointment

import (
	"fmt"
	"testing"

	"github.com/BruksfildServices01/appointme-client/internal/httperr"
)

func mustClock(s string) Clock {
	c, err := ParseClock(s)
	if err != nil {
		panic(fmt.Sprintf("appointment: invalid clock %q", s))
	}
	return c
}

func TestParseClock(t *testing.T) {
	cases := []struct {
		in   string
		want Clock
	}{
		{"00:00", 0},
		{"09:30", 570},
		{"09:30:00", 570},
		{"23:59", 1439},
		{"24:00", 1440},
	}
	for _, tc := range cases {
		got, err := ParseClock(tc.in)
		if err != nil {
			t.Fatalf("%s: unexpected error %v", tc.in, err)
		}
		if got != tc.want {
			t.Fatalf("%s: expected %d, got %d", tc.in, tc.want, got)
		}
	}
}

func TestParseClock_Invalid(t *testing.T) {
	for _, in := range []string{"", "9:30", "09:60", "25:00", "24:30", "09:30:10", "ab:cd", "09-30"} {
		_, err := ParseClock(in)
		if !httperr.IsBusiness(err, "invalid_time") {
			t.Fatalf("%q: expected invalid_time, got %v", in, err)
		}
	}
}

func TestClock_Formats(t *testing.T) {
	cases := []struct {
		in, str, value, label string
	}{
		{"00:00", "00:00", "00:00:00", "12:00 AM"},
		{"09:05", "09:05", "09:05:00", "9:05 AM"},
		{"12:30", "12:30", "12:30:00", "12:30 PM"},
		{"17:45", "17:45", "17:45:00", "5:45 PM"},
	}
	for _, tc := range cases {
		c := mustClock(tc.in)
		if c.String() != tc.str || c.Value() != tc.value || c.Label() != tc.label {
			t.Fatalf("%s: got %s / %s / %s", tc.in, c.String(), c.Value(), c.Label())
		}
	}
}
