package appointment

import (
	"sort"
	"time"
)

type AvailabilityInput struct {
	// Windows must already be narrowed to Date's weekday, see ForDay.
	Windows []Window
	Date    time.Time
	// Booked holds backend "HH:MM:SS" times of non-cancelled appointments.
	Booked []string
	Now    time.Time
}

// GenerateSlots enumerates the bookable times of day for in.Date in
// ascending order. On the current date only times strictly after the
// current minute are kept.
func GenerateSlots(in AvailabilityInput) []Clock {
	booked := make(map[string]struct{}, len(in.Booked))
	for _, b := range in.Booked {
		booked[normalizeBooked(b)] = struct{}{}
	}

	cutoff := Clock(-1)
	if now := in.Now.In(in.Date.Location()); sameDate(now, in.Date) {
		cutoff = Clock(now.Hour()*60 + now.Minute())
	}

	seen := make(map[Clock]struct{})
	for _, w := range in.Windows {
		step := Clock(w.Step())
		for cur := w.Start; cur < w.End; cur += step {
			if cur <= cutoff {
				continue
			}
			if _, ok := booked[cur.Value()]; ok {
				continue
			}
			seen[cur] = struct{}{}
		}
	}

	slots := make([]Clock, 0, len(seen))
	for c := range seen {
		slots = append(slots, c)
	}
	sort.Slice(slots, func(i, j int) bool { return slots[i] < slots[j] })

	return slots
}

// IsOffered reports whether t is among the generated slots.
func IsOffered(slots []Clock, t Clock) bool {
	i := sort.Search(len(slots), func(i int) bool { return slots[i] >= t })
	return i < len(slots) && slots[i] == t
}

func normalizeBooked(s string) string {
	if len(s) == len("15:04") {
		return s + ":00"
	}
	return s
}

func sameDate(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}

// TimeSlot is the JSON shape of one generated slot.
type TimeSlot struct {
	Time  string `json:"time"`
	Value string `json:"value"`
	Label string `json:"label"`
}

func ToTimeSlots(slots []Clock) []TimeSlot {
	out := make([]TimeSlot, 0, len(slots))
	for _, c := range slots {
		out = append(out, TimeSlot{
			Time:  c.String(),
			Value: c.Value(),
			Label: c.Label(),
		})
	}
	return out
}
