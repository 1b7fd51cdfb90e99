package appointment

import (
	"time"

	"github.com/BruksfildServices01/appointme-client/internal/models"
)

const DefaultSlotMinutes = 30

// Window is a recurring block of bookable time on one day of the week.
type Window struct {
	DayOfWeek   time.Weekday
	Start       Clock
	End         Clock
	SlotMinutes int
	Active      bool
}

// WindowFromTimeSlot converts the backend representation. Day 0 is Sunday.
func WindowFromTimeSlot(ts models.TimeSlot) (Window, error) {
	start, err := ParseClock(ts.StartTime)
	if err != nil {
		return Window{}, err
	}
	end, err := ParseClock(ts.EndTime)
	if err != nil {
		return Window{}, err
	}

	return Window{
		DayOfWeek:   time.Weekday(ts.DayOfWeek),
		Start:       start,
		End:         end,
		SlotMinutes: ts.SlotDurationMinutes,
		Active:      ts.IsActive,
	}, nil
}

// Step is the slot length, defaulting to DefaultSlotMinutes when unset.
func (w Window) Step() int {
	if w.SlotMinutes <= 0 {
		return DefaultSlotMinutes
	}
	return w.SlotMinutes
}

// ForDay keeps the active windows that apply to weekday.
func ForDay(windows []Window, weekday time.Weekday) []Window {
	out := make([]Window, 0, len(windows))
	for _, w := range windows {
		if w.Active && w.DayOfWeek == weekday {
			out = append(out, w)
		}
	}
	return out
}

// IsWithinWindows reports whether t starts a slot of one of the windows.
func IsWithinWindows(windows []Window, t Clock) bool {
	for _, w := range windows {
		if t < w.Start || t >= w.End {
			continue
		}
		if (int(t)-int(w.Start))%w.Step() == 0 {
			return true
		}
	}
	return false
}
