package appointment

import (
	"testing"
	"time"
)

// 2030-01-07 is a Monday.
var monday = time.Date(2030, 1, 7, 0, 0, 0, 0, time.UTC)

func window(start, end string, minutes int) Window {
	return Window{
		DayOfWeek:   time.Monday,
		Start:       mustClock(start),
		End:         mustClock(end),
		SlotMinutes: minutes,
		Active:      true,
	}
}

func clockStrings(slots []Clock) []string {
	out := make([]string, 0, len(slots))
	for _, s := range slots {
		out = append(out, s.String())
	}
	return out
}

func assertSlots(t *testing.T, got []Clock, want ...string) {
	t.Helper()
	gs := clockStrings(got)
	if len(gs) != len(want) {
		t.Fatalf("expected %v, got %v", want, gs)
	}
	for i := range want {
		if gs[i] != want[i] {
			t.Fatalf("expected %v, got %v", want, gs)
		}
	}
}

func TestGenerateSlots_FutureMonday(t *testing.T) {
	slots := GenerateSlots(AvailabilityInput{
		Windows: []Window{window("09:00", "10:00", 30)},
		Date:    monday,
		Now:     monday.AddDate(0, 0, -3),
	})
	assertSlots(t, slots, "09:00", "09:30")
}

func TestGenerateSlots_ExcludesBooked(t *testing.T) {
	slots := GenerateSlots(AvailabilityInput{
		Windows: []Window{window("09:00", "10:00", 30)},
		Date:    monday,
		Booked:  []string{"09:30:00"},
		Now:     monday.AddDate(0, 0, -3),
	})
	assertSlots(t, slots, "09:00")
}

func TestGenerateSlots_BookedWithSecondsNeverMatches(t *testing.T) {
	slots := GenerateSlots(AvailabilityInput{
		Windows: []Window{window("09:00", "10:00", 30)},
		Date:    monday,
		Booked:  []string{"09:30:15"},
		Now:     monday.AddDate(0, 0, -3),
	})
	assertSlots(t, slots, "09:00", "09:30")
}

func TestGenerateSlots_BookedShortFormMatches(t *testing.T) {
	slots := GenerateSlots(AvailabilityInput{
		Windows: []Window{window("09:00", "10:00", 30)},
		Date:    monday,
		Booked:  []string{"09:00"},
		Now:     monday.AddDate(0, 0, -3),
	})
	assertSlots(t, slots, "09:30")
}

func TestGenerateSlots_CountPerWindow(t *testing.T) {
	cases := []struct {
		start, end string
		minutes    int
		want       int
	}{
		{"08:00", "12:00", 30, 8},
		{"13:00", "17:00", 60, 4},
		{"18:00", "18:45", 15, 3},
	}

	var windows []Window
	total := 0
	for _, tc := range cases {
		windows = append(windows, window(tc.start, tc.end, tc.minutes))
		total += tc.want

		got := GenerateSlots(AvailabilityInput{
			Windows: []Window{window(tc.start, tc.end, tc.minutes)},
			Date:    monday,
			Now:     monday.AddDate(0, 0, -1),
		})
		if len(got) != tc.want {
			t.Fatalf("%s-%s/%d: expected %d slots, got %d", tc.start, tc.end, tc.minutes, tc.want, len(got))
		}
	}

	merged := GenerateSlots(AvailabilityInput{Windows: windows, Date: monday, Now: monday.AddDate(0, 0, -1)})
	if len(merged) != total {
		t.Fatalf("expected %d merged slots, got %d", total, len(merged))
	}
	for i := 1; i < len(merged); i++ {
		if merged[i] <= merged[i-1] {
			t.Fatalf("slots not ascending: %v", clockStrings(merged))
		}
	}
}

func TestGenerateSlots_PartialStepDiscarded(t *testing.T) {
	slots := GenerateSlots(AvailabilityInput{
		Windows: []Window{window("09:00", "10:00", 45)},
		Date:    monday,
		Now:     monday.AddDate(0, 0, -1),
	})
	assertSlots(t, slots, "09:00", "09:45")
}

func TestGenerateSlots_OverlappingWindowsDeduplicated(t *testing.T) {
	slots := GenerateSlots(AvailabilityInput{
		Windows: []Window{
			window("10:00", "11:00", 30),
			window("09:00", "10:30", 30),
		},
		Date: monday,
		Now:  monday.AddDate(0, 0, -1),
	})
	assertSlots(t, slots, "09:00", "09:30", "10:00", "10:30")
}

func TestGenerateSlots_TodaySkipsPastAndCurrentMinute(t *testing.T) {
	now := monday.Add(9*time.Hour + 30*time.Minute + 20*time.Second)
	slots := GenerateSlots(AvailabilityInput{
		Windows: []Window{window("09:00", "11:00", 30)},
		Date:    monday,
		Now:     now,
	})
	assertSlots(t, slots, "10:00", "10:30")
}

func TestGenerateSlots_TodayUsesDateLocation(t *testing.T) {
	loc := time.FixedZone("UTC-3", -3*60*60)
	date := time.Date(2030, 1, 7, 0, 0, 0, 0, loc)
	// 12:10 UTC is 09:10 in loc.
	now := time.Date(2030, 1, 7, 12, 10, 0, 0, time.UTC)

	slots := GenerateSlots(AvailabilityInput{
		Windows: []Window{window("09:00", "10:00", 30)},
		Date:    date,
		Now:     now,
	})
	assertSlots(t, slots, "09:30")
}

func TestGenerateSlots_NoFilteringForFutureDate(t *testing.T) {
	now := monday.Add(-24*time.Hour + 23*time.Hour + 59*time.Minute)
	slots := GenerateSlots(AvailabilityInput{
		Windows: []Window{window("00:00", "01:00", 30)},
		Date:    monday,
		Now:     now,
	})
	assertSlots(t, slots, "00:00", "00:30")
}

func TestGenerateSlots_DefaultDuration(t *testing.T) {
	slots := GenerateSlots(AvailabilityInput{
		Windows: []Window{window("09:00", "10:00", 0)},
		Date:    monday,
		Now:     monday.AddDate(0, 0, -1),
	})
	assertSlots(t, slots, "09:00", "09:30")
}

func TestGenerateSlots_EmptyWhenWindowInverted(t *testing.T) {
	slots := GenerateSlots(AvailabilityInput{
		Windows: []Window{window("10:00", "09:00", 30)},
		Date:    monday,
		Now:     monday.AddDate(0, 0, -1),
	})
	if len(slots) != 0 {
		t.Fatalf("expected no slots, got %v", clockStrings(slots))
	}
}

func TestForDay(t *testing.T) {
	windows := []Window{
		window("09:00", "10:00", 30),
		{DayOfWeek: time.Tuesday, Start: mustClock("09:00"), End: mustClock("10:00"), Active: true},
		{DayOfWeek: time.Monday, Start: mustClock("14:00"), End: mustClock("15:00"), Active: false},
	}

	got := ForDay(windows, time.Monday)
	if len(got) != 1 || got[0].Start != mustClock("09:00") {
		t.Fatalf("unexpected windows %+v", got)
	}
}

func TestIsWithinWindows(t *testing.T) {
	windows := []Window{window("09:00", "10:00", 20)}

	if !IsWithinWindows(windows, mustClock("09:40")) {
		t.Fatalf("09:40 should start a slot")
	}
	if IsWithinWindows(windows, mustClock("09:30")) {
		t.Fatalf("09:30 is not aligned to the slot grid")
	}
	if IsWithinWindows(windows, mustClock("10:00")) {
		t.Fatalf("window end is exclusive")
	}
}

func TestIsOffered(t *testing.T) {
	slots := []Clock{mustClock("09:00"), mustClock("09:30")}
	if !IsOffered(slots, mustClock("09:30")) {
		t.Fatalf("expected 09:30 offered")
	}
	if IsOffered(slots, mustClock("10:00")) {
		t.Fatalf("10:00 not offered")
	}
}
