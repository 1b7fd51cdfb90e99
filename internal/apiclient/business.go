package apiclient

import (
	"context"
	"net/url"

	"github.com/BruksfildServices01/appointme-client/internal/models"
)

// BusinessAppointments lists the business's appointments, optionally
// narrowed to one status.
func (c *Client) BusinessAppointments(ctx context.Context, status string) ([]models.Appointment, error) {
	var q url.Values
	if status != "" {
		q = url.Values{"status": {status}}
	}

	var out []models.Appointment
	if err := c.get(ctx, "/business/appointments", "/business/appointments", q, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) UpdateAppointmentStatus(ctx context.Context, id uint, in models.AppointmentStatusUpdate) error {
	return c.patch(ctx, "/business/appointments/{id}/status", idPath("/business/appointments/%d/status", id), in, nil)
}

func (c *Client) BusinessProfile(ctx context.Context) (*models.Business, error) {
	var out models.Business
	if err := c.get(ctx, "/business/me", "/business/me", nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) UpdateBusinessProfile(ctx context.Context, in models.BusinessUpdate) (*models.Business, error) {
	var out models.Business
	if err := c.put(ctx, "/business/profile", "/business/profile", in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) DeleteBusinessAccount(ctx context.Context) error {
	return c.delete(ctx, "/business/account", "/business/account")
}

// ---- services ----

func (c *Client) Services(ctx context.Context) ([]models.Service, error) {
	var out []models.Service
	if err := c.get(ctx, "/business/services", "/business/services", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) CreateService(ctx context.Context, in models.ServiceInput) (*models.Service, error) {
	var out models.Service
	if err := c.post(ctx, "/business/services", "/business/services", in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) UpdateService(ctx context.Context, id uint, in models.ServiceInput) (*models.Service, error) {
	var out models.Service
	if err := c.put(ctx, "/business/services/{id}", idPath("/business/services/%d", id), in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) DeleteService(ctx context.Context, id uint) error {
	return c.delete(ctx, "/business/services/{id}", idPath("/business/services/%d", id))
}

// ---- availability windows ----

func (c *Client) TimeSlots(ctx context.Context) ([]models.TimeSlot, error) {
	var out []models.TimeSlot
	if err := c.get(ctx, "/business/timeslots", "/business/timeslots", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) CreateTimeSlot(ctx context.Context, in models.TimeSlotInput) (*models.TimeSlot, error) {
	var out models.TimeSlot
	if err := c.post(ctx, "/business/timeslots", "/business/timeslots", in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) UpdateTimeSlot(ctx context.Context, id uint, in models.TimeSlotInput) (*models.TimeSlot, error) {
	var out models.TimeSlot
	if err := c.put(ctx, "/business/timeslots/{id}", idPath("/business/timeslots/%d", id), in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) DeleteTimeSlot(ctx context.Context, id uint) error {
	return c.delete(ctx, "/business/timeslots/{id}", idPath("/business/timeslots/%d", id))
}
