package appointment

import (
	"context"

	"github.com/BruksfildServices01/appointme-client/internal/models"
)

// Repository is the backend as seen by the booking use cases.
type Repository interface {
	// -------- Business --------
	GetBusiness(
		ctx context.Context,
		id uint,
	) (*models.Business, error)

	ListServices(
		ctx context.Context,
		businessID uint,
	) ([]models.Service, error)

	// -------- Availability --------
	// DayAvailability returns the business windows and the times already
	// booked on date ("2006-01-02").
	DayAvailability(
		ctx context.Context,
		businessID uint,
		date string,
	) ([]models.TimeSlot, []string, error)

	// -------- Appointment --------
	CreateAppointment(
		ctx context.Context,
		in models.AppointmentCreate,
	) (*models.Appointment, error)

	ListCustomerAppointments(
		ctx context.Context,
	) ([]models.Appointment, error)

	CancelAppointment(
		ctx context.Context,
		appointmentID uint,
	) error

	RescheduleAppointment(
		ctx context.Context,
		appointmentID uint,
		in models.AppointmentReschedule,
	) (*models.Appointment, error)

	// -------- Business side --------
	ListBusinessAppointments(
		ctx context.Context,
		status string,
	) ([]models.Appointment, error)

	UpdateAppointmentStatus(
		ctx context.Context,
		appointmentID uint,
		in models.AppointmentStatusUpdate,
	) error
}

// RepositoryFor returns a Repository acting with the given bearer token.
// An empty token yields anonymous access.
type RepositoryFor func(token string) Repository
