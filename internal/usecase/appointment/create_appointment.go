package appointment

import (
	"context"
	"time"

	"github.com/BruksfildServices01/appointme-client/internal/apiclient"
	"github.com/BruksfildServices01/appointme-client/internal/audit"
	domain "github.com/BruksfildServices01/appointme-client/internal/domain/appointment"
	"github.com/BruksfildServices01/appointme-client/internal/httperr"
	"github.com/BruksfildServices01/appointme-client/internal/metrics"
	"github.com/BruksfildServices01/appointme-client/internal/models"
	"github.com/BruksfildServices01/appointme-client/internal/timezone"
)

// ======================================================
// INPUT
// ======================================================

type CreateAppointmentInput struct {
	BusinessID uint
	ServiceID  uint
	Date       string
	Time       string
}

// ======================================================
// USE CASE
// ======================================================

type CreateAppointment struct {
	repoFor domain.RepositoryFor
	audit   *audit.Dispatcher
	tz      string
	now     func() time.Time
}

func NewCreateAppointment(
	repoFor domain.RepositoryFor,
	audit *audit.Dispatcher,
	tz string,
) *CreateAppointment {
	return &CreateAppointment{
		repoFor: repoFor,
		audit:   audit,
		tz:      tz,
		now:     time.Now,
	}
}

// ======================================================
// EXECUTE
// ======================================================

func (uc *CreateAppointment) Execute(
	ctx context.Context,
	actor Actor,
	in CreateAppointmentInput,
) (ap *models.Appointment, err error) {

	defer func() {
		metrics.BookingsTotal.WithLabelValues(audit.Outcome(err)).Inc()

		var id *uint
		if ap != nil {
			id = &ap.ID
		}
		record(uc.audit, actor, "appointment_created", id, err, map[string]any{
			"business_id": in.BusinessID,
			"service_id":  in.ServiceID,
			"date":        in.Date,
			"time":        in.Time,
		})
	}()

	// --------------------------------------------------
	// 1. Date / time in the configured timezone
	// --------------------------------------------------
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

	// --------------------------------------------------
	// 2. Service
	// --------------------------------------------------
	services, err := repo.ListServices(ctx, in.BusinessID)
	if err != nil {
		return nil, err
	}

	var service *models.Service
	for i := range services {
		if services[i].ID == in.ServiceID && services[i].IsActive {
			service = &services[i]
			break
		}
	}
	if service == nil {
		return nil, httperr.ErrBusiness("service_not_found")
	}

	duration := service.DurationMinutes
	if duration <= 0 {
		duration = domain.DefaultSlotMinutes
	}

	// --------------------------------------------------
	// 3. Slot still offered
	// --------------------------------------------------
	windows, slots, err := daySlots(ctx, repo, in.BusinessID, day, now)
	if err != nil {
		return nil, err
	}
	if err := checkBookable(windows, slots, at); err != nil {
		return nil, err
	}

	// --------------------------------------------------
	// 4. Creation
	// --------------------------------------------------
	ap, err = repo.CreateAppointment(ctx, models.AppointmentCreate{
		BusinessID:      in.BusinessID,
		AppointmentDate: timezone.FormatDate(day),
		AppointmentTime: at.Value(),
		DurationMinutes: duration,
	})
	if apiclient.IsConflict(err) {
		return nil, httperr.ErrBusiness("slot_unavailable")
	}
	if err != nil {
		return nil, err
	}

	return ap, nil
}
