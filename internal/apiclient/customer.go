package apiclient

import (
	"context"

	"github.com/BruksfildServices01/appointme-client/internal/models"
)

func (c *Client) CreateAppointment(ctx context.Context, in models.AppointmentCreate) (*models.Appointment, error) {
	var out models.Appointment
	if err := c.post(ctx, "/customer/appointments", "/customer/appointments", in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) CustomerAppointments(ctx context.Context) ([]models.Appointment, error) {
	var out []models.Appointment
	if err := c.get(ctx, "/customer/appointments", "/customer/appointments", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) CancelAppointment(ctx context.Context, id uint) error {
	return c.delete(ctx, "/customer/appointments/{id}", idPath("/customer/appointments/%d", id))
}

func (c *Client) RescheduleAppointment(ctx context.Context, id uint, in models.AppointmentReschedule) (*models.Appointment, error) {
	var out models.Appointment
	if err := c.put(ctx, "/customer/appointments/{id}/reschedule", idPath("/customer/appointments/%d/reschedule", id), in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) CustomerProfile(ctx context.Context) (*models.Customer, error) {
	var out models.Customer
	if err := c.get(ctx, "/customer/me", "/customer/me", nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) UpdateCustomerProfile(ctx context.Context, in models.CustomerUpdate) (*models.Customer, error) {
	var out models.Customer
	if err := c.put(ctx, "/customer/profile", "/customer/profile", in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) DeleteCustomerAccount(ctx context.Context) error {
	return c.delete(ctx, "/customer/account", "/customer/account")
}
