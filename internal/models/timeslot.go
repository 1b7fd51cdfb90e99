package models

// TimeSlot is a business availability window as stored by the backend.
type TimeSlot struct {
	ID                  uint   `json:"id"`
	BusinessID          uint   `json:"business_id"`
	DayOfWeek           int    `json:"day_of_week"`
	StartTime           string `json:"start_time"`
	EndTime             string `json:"end_time"`
	SlotDurationMinutes int    `json:"slot_duration_minutes"`
	IsActive            bool   `json:"is_active"`
}

type TimeSlotInput struct {
	DayOfWeek           int    `json:"day_of_week"`
	StartTime           string `json:"start_time"`
	EndTime             string `json:"end_time"`
	SlotDurationMinutes int    `json:"slot_duration_minutes"`
	IsActive            bool   `json:"is_active"`
}

type BookedSlots struct {
	BookedSlots []string `json:"booked_slots"`
}
