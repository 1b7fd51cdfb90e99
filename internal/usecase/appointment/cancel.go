package appointment

import (
	"context"

	"github.com/BruksfildServices01/appointme-client/internal/audit"
	domain "github.com/BruksfildServices01/appointme-client/internal/domain/appointment"
	"github.com/BruksfildServices01/appointme-client/internal/httperr"
	"github.com/BruksfildServices01/appointme-client/internal/models"
)

type CancelAppointment struct {
	repoFor domain.RepositoryFor
	audit   *audit.Dispatcher
}

func NewCancelAppointment(
	repoFor domain.RepositoryFor,
	audit *audit.Dispatcher,
) *CancelAppointment {
	return &CancelAppointment{
		repoFor: repoFor,
		audit:   audit,
	}
}

func (uc *CancelAppointment) Execute(
	ctx context.Context,
	actor Actor,
	appointmentID uint,
) (ap *models.Appointment, err error) {

	defer func() {
		record(uc.audit, actor, "appointment_cancelled", &appointmentID, err, nil)
	}()

	repo := uc.repoFor(actor.Token)

	ap, err = findCustomerAppointment(ctx, repo, appointmentID)
	if err != nil {
		return nil, err
	}

	if err := domain.CanCancel(domain.Status(ap.Status)); err != nil {
		return nil, err
	}

	if err := repo.CancelAppointment(ctx, ap.ID); err != nil {
		return nil, err
	}

	ap.Status = string(domain.StatusCancelled)
	return ap, nil
}

func findCustomerAppointment(
	ctx context.Context,
	repo domain.Repository,
	appointmentID uint,
) (*models.Appointment, error) {

	aps, err := repo.ListCustomerAppointments(ctx)
	if err != nil {
		return nil, err
	}
	for i := range aps {
		if aps[i].ID == appointmentID {
			return &aps[i], nil
		}
	}
	return nil, httperr.ErrBusiness("appointment_not_found")
}
