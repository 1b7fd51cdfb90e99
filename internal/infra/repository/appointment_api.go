package repository

import (
	"context"

	"github.com/BruksfildServices01/appointme-client/internal/apiclient"
	domain "github.com/BruksfildServices01/appointme-client/internal/domain/appointment"
	"github.com/BruksfildServices01/appointme-client/internal/models"
)

// AppointmentAPIRepository serves the booking use cases from the REST
// backend.
type AppointmentAPIRepository struct {
	api *apiclient.Client
}

func NewAppointmentAPIRepository(api *apiclient.Client) *AppointmentAPIRepository {
	return &AppointmentAPIRepository{api: api}
}

// AppointmentRepositoryFor scopes every repository it returns to a token.
func AppointmentRepositoryFor(api *apiclient.Client) domain.RepositoryFor {
	return func(token string) domain.Repository {
		if token == "" {
			return NewAppointmentAPIRepository(api)
		}
		return NewAppointmentAPIRepository(api.WithToken(token))
	}
}

// --------------------------------------------------
// Business
// --------------------------------------------------

func (r *AppointmentAPIRepository) GetBusiness(
	ctx context.Context,
	id uint,
) (*models.Business, error) {
	return r.api.Business(ctx, id)
}

func (r *AppointmentAPIRepository) ListServices(
	ctx context.Context,
	businessID uint,
) ([]models.Service, error) {
	return r.api.BusinessServices(ctx, businessID)
}

// --------------------------------------------------
// Availability
// --------------------------------------------------

func (r *AppointmentAPIRepository) DayAvailability(
	ctx context.Context,
	businessID uint,
	date string,
) ([]models.TimeSlot, []string, error) {
	av, err := r.api.DayAvailability(ctx, businessID, date)
	if err != nil {
		return nil, nil, err
	}
	return av.Windows, av.Booked, nil
}

// --------------------------------------------------
// Appointment
// --------------------------------------------------

func (r *AppointmentAPIRepository) CreateAppointment(
	ctx context.Context,
	in models.AppointmentCreate,
) (*models.Appointment, error) {
	return r.api.CreateAppointment(ctx, in)
}

func (r *AppointmentAPIRepository) ListCustomerAppointments(
	ctx context.Context,
) ([]models.Appointment, error) {
	return r.api.CustomerAppointments(ctx)
}

func (r *AppointmentAPIRepository) CancelAppointment(
	ctx context.Context,
	appointmentID uint,
) error {
	return r.api.CancelAppointment(ctx, appointmentID)
}

func (r *AppointmentAPIRepository) RescheduleAppointment(
	ctx context.Context,
	appointmentID uint,
	in models.AppointmentReschedule,
) (*models.Appointment, error) {
	return r.api.RescheduleAppointment(ctx, appointmentID, in)
}

// --------------------------------------------------
// Business side
// --------------------------------------------------

func (r *AppointmentAPIRepository) ListBusinessAppointments(
	ctx context.Context,
	status string,
) ([]models.Appointment, error) {
	return r.api.BusinessAppointments(ctx, status)
}

func (r *AppointmentAPIRepository) UpdateAppointmentStatus(
	ctx context.Context,
	appointmentID uint,
	in models.AppointmentStatusUpdate,
) error {
	return r.api.UpdateAppointmentStatus(ctx, appointmentID, in)
}
