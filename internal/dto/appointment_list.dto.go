package dto

import "time"

type AppointmentListDTO struct {
	ID              uint      `json:"id"`
	Reference       string    `json:"reference"`
	BusinessID      uint      `json:"business_id"`
	BusinessName    string    `json:"business_name,omitempty"`
	CustomerID      uint      `json:"customer_id"`
	Date            string    `json:"date"`
	DateLabel       string    `json:"date_label"`
	Time            string    `json:"time"`
	TimeLabel       string    `json:"time_label"`
	DurationMinutes int       `json:"duration_minutes"`
	Status          string    `json:"status"`
	BusinessNote    string    `json:"business_note,omitempty"`
	StartsAt        time.Time `json:"starts_at"`
	CanCancel       bool      `json:"can_cancel"`
	CanReschedule   bool      `json:"can_reschedule"`
	NextStatuses    []string  `json:"next_statuses,omitempty"`
}

// CustomerAppointmentsDTO splits a customer's appointments around now.
type CustomerAppointmentsDTO struct {
	Upcoming []AppointmentListDTO `json:"upcoming"`
	Past     []AppointmentListDTO `json:"past"`
}
