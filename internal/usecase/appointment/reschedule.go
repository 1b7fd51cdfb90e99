package appointment

import (
	"context"
	"time"

	"github.com/BruksfildServices01/appointme-client/internal/apiclient"
	"github.com/BruksfildServices01/appointme-client/internal/audit"
	domain "github.com/BruksfildServices01/appointme-client/internal/domain/appointment"
	"github.com/BruksfildServices01/appointme-client/internal/httperr"
	"github.com/BruksfildServices01/appointme-client/internal/models"
	"github.com/BruksfildServices01/appointme-client/internal/timezone"
)

type RescheduleAppointmentInput struct {
	AppointmentID uint
	Date          string
	Time          string
}

type RescheduleAppointment struct {
	repoFor domain.RepositoryFor
	audit   *audit.Dispatcher
	tz      string
	now     func() time.Time
}

func NewRescheduleAppointment(
	repoFor domain.RepositoryFor,
	audit *audit.Dispatcher,
	tz string,
) *RescheduleAppointment {
	return &RescheduleAppointment{
		repoFor: repoFor,
		audit:   audit,
		tz:      tz,
		now:     time.Now,
	}
}

// Execute moves an open appointment to a slot that is offered right now.
func (uc *RescheduleAppointment) Execute(
	ctx context.Context,
	actor Actor,
	in RescheduleAppointmentInput,
) (ap *models.Appointment, err error) {

	defer func() {
		record(uc.audit, actor, "appointment_rescheduled", &in.AppointmentID, err, map[string]any{
			"date": in.Date,
			"time": in.Time,
		})
	}()

	now := uc.now().In(timezone.Location(uc.tz))

	if in.Date == "" {
		return nil, httperr.ErrBusiness("invalid_date")
	}
	day, err := parseDay(uc.tz, in.Date, now)
	if err != nil {
		return nil, err
	}
	at, err := domain.ParseClock(in.Time)
	if err != nil {
		return nil, err
	}

	repo := uc.repoFor(actor.Token)

	current, err := findCustomerAppointment(ctx, repo, in.AppointmentID)
	if err != nil {
		return nil, err
	}
	if err := domain.CanReschedule(domain.Status(current.Status)); err != nil {
		return nil, err
	}

	windows, slots, err := daySlots(ctx, repo, current.BusinessID, day, now)
	if err != nil {
		return nil, err
	}
	if err := checkBookable(windows, slots, at); err != nil {
		return nil, err
	}

	ap, err = repo.RescheduleAppointment(ctx, current.ID, models.AppointmentReschedule{
		AppointmentDate: timezone.FormatDate(day),
		AppointmentTime: at.Value(),
	})
	if apiclient.IsConflict(err) {
		return nil, httperr.ErrBusiness("slot_unavailable")
	}
	if err != nil {
		return nil, err
	}
	return ap, nil
}
