package handlers

import (
	"github.com/gin-gonic/gin"

	domain "github.com/BruksfildServices01/appointme-client/internal/domain/appointment"
	"github.com/BruksfildServices01/appointme-client/internal/httperr"
	"github.com/BruksfildServices01/appointme-client/internal/httpresp"
	ucAppointment "github.com/BruksfildServices01/appointme-client/internal/usecase/appointment"
)

// PublicHandler serves the JSON endpoints used by scripts on the pages.
type PublicHandler struct {
	Responder
	availability *ucAppointment.GetAvailability
}

func NewPublicHandler(r Responder, availability *ucAppointment.GetAvailability) *PublicHandler {
	return &PublicHandler{
		Responder:    r,
		availability: availability,
	}
}

// Slots answers GET /api/businesses/:id/slots?date=YYYY-MM-DD.
func (h *PublicHandler) Slots(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		httperr.BadRequest(c, "invalid_id", "Invalid business id")
		return
	}

	res, err := h.availability.Execute(c.Request.Context(), actorFrom(c), id, c.Query("date"))
	if err != nil {
		h.failJSON(c, err, "Failed to load available time slots")
		return
	}

	httpresp.List(c, domain.ToTimeSlots(res.Slots))
}
