package appointment

import (
	"context"
	"strings"

	"github.com/BruksfildServices01/appointme-client/internal/audit"
	domain "github.com/BruksfildServices01/appointme-client/internal/domain/appointment"
	"github.com/BruksfildServices01/appointme-client/internal/httperr"
	"github.com/BruksfildServices01/appointme-client/internal/models"
)

type UpdateStatusInput struct {
	AppointmentID uint
	Status        string
	Note          string
}

// UpdateAppointmentStatus is the business moving one of its appointments
// along (confirm, complete, reject...).
type UpdateAppointmentStatus struct {
	repoFor domain.RepositoryFor
	audit   *audit.Dispatcher
}

func NewUpdateAppointmentStatus(
	repoFor domain.RepositoryFor,
	audit *audit.Dispatcher,
) *UpdateAppointmentStatus {
	return &UpdateAppointmentStatus{
		repoFor: repoFor,
		audit:   audit,
	}
}

func (uc *UpdateAppointmentStatus) Execute(
	ctx context.Context,
	actor Actor,
	in UpdateStatusInput,
) (ap *models.Appointment, err error) {

	defer func() {
		record(uc.audit, actor, "appointment_status_changed", &in.AppointmentID, err, map[string]any{
			"status": in.Status,
		})
	}()

	next, ok := domain.ParseStatus(in.Status)
	if !ok {
		return nil, httperr.ErrBusiness("invalid_status")
	}

	repo := uc.repoFor(actor.Token)

	aps, err := repo.ListBusinessAppointments(ctx, "")
	if err != nil {
		return nil, err
	}
	for i := range aps {
		if aps[i].ID == in.AppointmentID {
			ap = &aps[i]
			break
		}
	}
	if ap == nil {
		return nil, httperr.ErrBusiness("appointment_not_found")
	}

	if err := domain.CanTransition(domain.Status(ap.Status), next); err != nil {
		return nil, err
	}

	note := strings.TrimSpace(in.Note)
	if err := repo.UpdateAppointmentStatus(ctx, ap.ID, models.AppointmentStatusUpdate{
		Status:       string(next),
		BusinessNote: note,
	}); err != nil {
		return nil, err
	}

	ap.Status = string(next)
	if note != "" {
		ap.BusinessNote = note
	}
	return ap, nil
}
