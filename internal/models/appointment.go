package models

type Appointment struct {
	ID              uint   `json:"id"`
	AppointmentID   string `json:"appointment_id"`
	CustomerID      uint   `json:"customer_id"`
	BusinessID      uint   `json:"business_id"`
	AppointmentDate string `json:"appointment_date"`
	AppointmentTime string `json:"appointment_time"`
	DurationMinutes int    `json:"duration_minutes"`
	Status          string `json:"status"`
	BusinessNote    string `json:"business_note"`
	CreatedAt       string `json:"created_at"`
}

type AppointmentCreate struct {
	BusinessID      uint   `json:"business_id"`
	AppointmentDate string `json:"appointment_date"`
	AppointmentTime string `json:"appointment_time"`
	DurationMinutes int    `json:"duration_minutes"`
}

type AppointmentReschedule struct {
	AppointmentDate string `json:"appointment_date"`
	AppointmentTime string `json:"appointment_time"`
}

type AppointmentStatusUpdate struct {
	Status       string `json:"status"`
	BusinessNote string `json:"business_note,omitempty"`
}
