package appointment

import (
	"context"
	"time"

	domain "github.com/BruksfildServices01/appointme-client/internal/domain/appointment"
	"github.com/BruksfildServices01/appointme-client/internal/httperr"
	"github.com/BruksfildServices01/appointme-client/internal/timezone"
)

type GetAvailability struct {
	repoFor domain.RepositoryFor
	tz      string
	now     func() time.Time
}

func NewGetAvailability(repoFor domain.RepositoryFor, tz string) *GetAvailability {
	return &GetAvailability{
		repoFor: repoFor,
		tz:      tz,
		now:     time.Now,
	}
}

type AvailabilityResult struct {
	Date  time.Time
	Slots []domain.Clock
}

// Execute lists the free slots of a business on date. An empty date means
// today; dates before today are rejected with past_date.
func (uc *GetAvailability) Execute(
	ctx context.Context,
	actor Actor,
	businessID uint,
	date string,
) (*AvailabilityResult, error) {

	now := uc.now().In(timezone.Location(uc.tz))

	day, err := parseDay(uc.tz, date, now)
	if err != nil {
		return nil, err
	}

	_, slots, err := daySlots(ctx, uc.repoFor(actor.Token), businessID, day, now)
	if err != nil {
		return nil, err
	}

	return &AvailabilityResult{Date: day, Slots: slots}, nil
}

func parseDay(tz, date string, now time.Time) (time.Time, error) {
	if date == "" {
		return timezone.StartOfDay(now), nil
	}

	day, err := timezone.ParseDate(tz, date)
	if err != nil {
		return time.Time{}, httperr.ErrBusiness("invalid_date")
	}
	if timezone.IsPastDate(day, now) {
		return time.Time{}, httperr.ErrBusiness("past_date")
	}
	return day, nil
}

// daySlots returns the active windows of day and the slots still free in
// them at now. Windows the backend sends with unreadable times are ignored.
func daySlots(
	ctx context.Context,
	repo domain.Repository,
	businessID uint,
	day time.Time,
	now time.Time,
) ([]domain.Window, []domain.Clock, error) {

	timeSlots, booked, err := repo.DayAvailability(ctx, businessID, timezone.FormatDate(day))
	if err != nil {
		return nil, nil, err
	}

	windows := make([]domain.Window, 0, len(timeSlots))
	for _, ts := range timeSlots {
		w, err := domain.WindowFromTimeSlot(ts)
		if err != nil {
			continue
		}
		windows = append(windows, w)
	}

	windows = domain.ForDay(windows, day.Weekday())
	return windows, domain.GenerateSlots(domain.AvailabilityInput{
		Windows: windows,
		Date:    day,
		Booked:  booked,
		Now:     now,
	}), nil
}

// checkBookable rejects a time outside the business hours with invalid_time
// and a time that is taken or already past with slot_unavailable.
func checkBookable(windows []domain.Window, slots []domain.Clock, at domain.Clock) error {
	if !domain.IsWithinWindows(windows, at) {
		return httperr.ErrBusiness("invalid_time")
	}
	if !domain.IsOffered(slots, at) {
		return httperr.ErrBusiness("slot_unavailable")
	}
	return nil
}
