package appointment

import (
	"github.com/BruksfildServices01/appointme-client/internal/audit"
	"github.com/BruksfildServices01/appointme-client/internal/models"
)

// Actor is who a use case acts for. An empty Token means anonymous.
type Actor struct {
	Token  string
	Role   models.Role
	UserID uint
}

func record(
	d *audit.Dispatcher,
	a Actor,
	action string,
	entityID *uint,
	err error,
	meta any,
) {
	if d == nil {
		return
	}

	var userID *uint
	if a.UserID != 0 {
		id := a.UserID
		userID = &id
	}

	d.Dispatch(audit.Event{
		Role:     a.Role.String(),
		UserID:   userID,
		Action:   action,
		Entity:   "appointment",
		EntityID: entityID,
		Outcome:  audit.Outcome(err),
		Metadata: meta,
	})
}
