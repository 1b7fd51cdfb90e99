package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/appointme-client/internal/httpresp"
	"github.com/BruksfildServices01/appointme-client/internal/session"
)

type meResponse struct {
	Authenticated bool   `json:"authenticated"`
	Role          string `json:"role,omitempty"`
	UserID        uint   `json:"user_id,omitempty"`
	DisplayName   string `json:"display_name,omitempty"`
	Email         string `json:"email,omitempty"`
}

type MeHandler struct{}

func NewMeHandler() *MeHandler {
	return &MeHandler{}
}

// GetMe describes the current session without exposing the token.
func (h *MeHandler) GetMe(c *gin.Context) {
	s := session.From(c)
	if !s.IsAuthenticated() {
		httpresp.OK(c, meResponse{})
		return
	}

	out := meResponse{
		Authenticated: true,
		Role:          s.Role().String(),
		UserID:        s.UserID(),
		DisplayName:   s.DisplayName(),
	}
	if p := s.Profile(); p != nil {
		out.Email = p.ContactEmail()
	}
	httpresp.OK(c, out)
}
