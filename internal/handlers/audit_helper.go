package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/appointme-client/internal/audit"
	"github.com/BruksfildServices01/appointme-client/internal/session"
	ucAppointment "github.com/BruksfildServices01/appointme-client/internal/usecase/appointment"
)

func actorFrom(c *gin.Context) ucAppointment.Actor {
	s := session.From(c)
	return ucAppointment.Actor{
		Token:  s.Token(),
		Role:   s.Role(),
		UserID: s.UserID(),
	}
}

// writeAudit records a mutation made directly through the API client.
func writeAudit(
	d *audit.Dispatcher,
	c *gin.Context,
	action string,
	entity string,
	entityID *uint,
	err error,
	meta any,
) {
	if d == nil {
		return
	}

	s := session.From(c)
	var userID *uint
	if s.IsAuthenticated() {
		id := s.UserID()
		userID = &id
	}

	d.Dispatch(audit.Event{
		Role:     s.Role().String(),
		UserID:   userID,
		Action:   action,
		Entity:   entity,
		EntityID: entityID,
		Outcome:  audit.Outcome(err),
		Metadata: meta,
	})
}
