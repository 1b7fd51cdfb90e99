package handlers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/BruksfildServices01/appointme-client/internal/models"
	"github.com/BruksfildServices01/appointme-client/internal/session"
)

const activityPageSize = 50

type ActivityReader interface {
	ListForUser(ctx context.Context, role string, userID uint, limit int) ([]models.ActivityLog, error)
}

// ActivityHandler shows the signed-in user what this client recorded
// about their actions. Without a database there is nothing to show.
type ActivityHandler struct {
	Responder
	logs ActivityReader
}

func NewActivityHandler(r Responder, logs ActivityReader) *ActivityHandler {
	return &ActivityHandler{Responder: r, logs: logs}
}

func (h *ActivityHandler) Page(c *gin.Context) {
	if h.logs == nil {
		render(c, http.StatusOK, "activity", "Recent activity", gin.H{"Enabled": false})
		return
	}

	s := session.From(c)
	entries, err := h.logs.ListForUser(c.Request.Context(), s.Role().String(), s.UserID(), activityPageSize)
	data := gin.H{"Enabled": true, "Entries": entries}
	if err != nil {
		h.log.Warn("activity lookup failed", zap.Error(err))
		data["Entries"] = []models.ActivityLog{}
		data["LoadError"] = "Failed to load activity"
	}

	render(c, http.StatusOK, "activity", "Recent activity", data)
}
