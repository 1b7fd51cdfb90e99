package appointment

import "github.com/BruksfildServices01/appointme-client/internal/httperr"

// ===============================
// Appointment Status
// ===============================

type Status string

const (
	StatusPending   Status = "pending"
	StatusConfirmed Status = "confirmed"
	StatusCompleted Status = "completed"
	StatusCancelled Status = "cancelled"
	StatusRejected  Status = "rejected"
	StatusNoShow    Status = "no_show"
)

// AllStatuses is the order used by filters and badges.
var AllStatuses = []Status{
	StatusPending,
	StatusConfirmed,
	StatusCompleted,
	StatusCancelled,
	StatusRejected,
	StatusNoShow,
}

func ParseStatus(s string) (Status, bool) {
	for _, st := range AllStatuses {
		if string(st) == s {
			return st, true
		}
	}
	return "", false
}

// IsOpen reports whether the appointment still holds its slot.
func (s Status) IsOpen() bool {
	return s == StatusPending || s == StatusConfirmed
}

// ===============================
// Validations
// ===============================

// CanCancel defines whether a customer may cancel.
func CanCancel(current Status) error {
	if !current.IsOpen() {
		return httperr.ErrBusiness("invalid_state")
	}
	return nil
}

// CanReschedule defines whether a customer may move the appointment.
func CanReschedule(current Status) error {
	if !current.IsOpen() {
		return httperr.ErrBusiness("invalid_state")
	}
	return nil
}

// CanTransition validates a status change requested by the business.
func CanTransition(current, next Status) error {
	if current == next {
		return httperr.ErrBusiness("invalid_state")
	}
	if !current.IsOpen() {
		return httperr.ErrBusiness("invalid_state")
	}
	if next == StatusPending {
		return httperr.ErrBusiness("invalid_state")
	}
	return nil
}

// NextStatuses lists what the business can move current to.
func NextStatuses(current Status) []Status {
	var out []Status
	for _, st := range AllStatuses {
		if CanTransition(current, st) == nil {
			out = append(out, st)
		}
	}
	return out
}
