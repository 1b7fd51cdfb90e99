package appointment

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/BruksfildServices01/appointme-client/internal/httperr"
)

// Clock is a time of day expressed in minutes since midnight.
type Clock int

const minutesPerDay = 24 * 60

// ParseClock accepts "HH:MM" or "HH:MM:SS". Seconds must be zero.
// "24:00" is accepted as the end of the day.
func ParseClock(s string) (Clock, error) {
	parts := strings.Split(strings.TrimSpace(s), ":")
	if len(parts) != 2 && len(parts) != 3 {
		return 0, httperr.ErrBusiness("invalid_time")
	}

	nums := make([]int, len(parts))
	for i, p := range parts {
		if len(p) != 2 {
			return 0, httperr.ErrBusiness("invalid_time")
		}
		n, err := strconv.Atoi(p)
		if err != nil || n < 0 {
			return 0, httperr.ErrBusiness("invalid_time")
		}
		nums[i] = n
	}

	h, m := nums[0], nums[1]
	if m > 59 || h > 24 || (h == 24 && m != 0) {
		return 0, httperr.ErrBusiness("invalid_time")
	}
	if len(nums) == 3 && nums[2] != 0 {
		return 0, httperr.ErrBusiness("invalid_time")
	}

	return Clock(h*60 + m), nil
}

func (c Clock) Hour() int   { return int(c) / 60 }
func (c Clock) Minute() int { return int(c) % 60 }

// String renders "15:04".
func (c Clock) String() string {
	return fmt.Sprintf("%02d:%02d", c.Hour(), c.Minute())
}

// Value renders the "15:04:05" form the backend stores.
func (c Clock) Value() string {
	return c.String() + ":00"
}

// Label renders "3:04 PM".
func (c Clock) Label() string {
	h := c.Hour() % 24
	suffix := "AM"
	if h >= 12 {
		suffix = "PM"
	}
	h12 := h % 12
	if h12 == 0 {
		h12 = 12
	}
	return fmt.Sprintf("%d:%02d %s", h12, c.Minute(), suffix)
}

func (c Clock) MarshalText() ([]byte, error) {
	return []byte(c.String()), nil
}
