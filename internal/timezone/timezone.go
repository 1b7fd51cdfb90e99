package timezone

import "time"

const (
	DefaultTimezone = "UTC"
	DateLayout      = "2006-01-02"
)

func IsValid(tz string) bool {
	if tz == "" {
		return false
	}
	_, err := time.LoadLocation(tz)
	return err == nil
}

func Location(tz string) *time.Location {
	if IsValid(tz) {
		if loc, err := time.LoadLocation(tz); err == nil {
			return loc
		}
	}

	loc, _ := time.LoadLocation(DefaultTimezone)
	return loc
}

// ParseDate parses a "2006-01-02" calendar date at midnight in tz.
func ParseDate(tz, date string) (time.Time, error) {
	return time.ParseInLocation(DateLayout, date, Location(tz))
}

// StartOfDay truncates t to midnight in its own location.
func StartOfDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

// IsPastDate reports whether date lies before the calendar day of now.
func IsPastDate(date, now time.Time) bool {
	return StartOfDay(date).Before(StartOfDay(now.In(date.Location())))
}

func FormatDate(t time.Time) string {
	return t.Format(DateLayout)
}
