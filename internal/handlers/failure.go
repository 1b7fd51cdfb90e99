package handlers

import (
	"errors"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/BruksfildServices01/appointme-client/internal/apiclient"
	"github.com/BruksfildServices01/appointme-client/internal/flash"
	"github.com/BruksfildServices01/appointme-client/internal/httperr"
	"github.com/BruksfildServices01/appointme-client/internal/session"
)

var businessMessages = map[string]string{
	"slot_unavailable":      "This time slot is no longer available. Please choose another one.",
	"past_date":             "Please choose today or a future date",
	"invalid_date":          "Please select a valid date",
	"invalid_time":          "Please select a valid time slot",
	"service_not_found":     "Please select a service",
	"appointment_not_found": "Appointment not found",
	"invalid_state":         "This appointment can no longer be changed",
	"invalid_status":        "Unknown appointment status",
}

func businessMessage(code, fallback string) string {
	if msg, ok := businessMessages[code]; ok {
		return msg
	}
	return fallback
}

// Responder decides what the browser sees when a backend call or a use
// case fails.
type Responder struct {
	sessions *session.Manager
	log      *zap.Logger
}

func NewResponder(sessions *session.Manager, log *zap.Logger) Responder {
	if log == nil {
		log = zap.NewNop()
	}
	return Responder{sessions: sessions, log: log}
}

// authExpired clears the persisted identity. It reports whether err was
// an expired session.
func (r Responder) authExpired(c *gin.Context, err error) bool {
	if !errors.Is(err, apiclient.ErrAuthExpired) {
		return false
	}
	r.sessions.Logout(c.Writer, c.Request)
	session.Set(c, session.Anonymous())
	return true
}

// fail handles a failed mutation: an expired session goes to the login
// page, anything else becomes a notification on the back page.
func (r Responder) fail(c *gin.Context, err error, fallback, back string) {
	if r.authExpired(c, err) {
		r.toLogin(c)
		return
	}

	var be httperr.BusinessError
	if errors.As(err, &be) {
		flash.Fail(c, businessMessage(be.Code, fallback))
		redirect(c, back)
		return
	}

	r.log.Warn("backend call failed",
		zap.String("path", c.Request.URL.Path),
		zap.String("outcome", string(apiclient.Classify(err))),
		zap.Error(err),
	)
	flash.Fail(c, apiclient.Detail(err, fallback))
	redirect(c, back)
}

// failPage handles a failed load of a page body. It reports whether the
// response was already written.
func (r Responder) failPage(c *gin.Context, err error) bool {
	if r.authExpired(c, err) {
		r.toLogin(c)
		return true
	}
	r.log.Warn("page load failed",
		zap.String("path", c.Request.URL.Path),
		zap.String("outcome", string(apiclient.Classify(err))),
		zap.Error(err),
	)
	return false
}

func (r Responder) toLogin(c *gin.Context) {
	path := c.Request.URL.Path
	if path == "/login" || path == "/register" {
		redirect(c, path)
		return
	}
	redirect(c, "/login")
}

// failJSON is fail for the JSON endpoints.
func (r Responder) failJSON(c *gin.Context, err error, fallback string) {
	if r.authExpired(c, err) {
		httperr.Unauthorized(c, "auth_expired", "Session expired. Please login again.")
		return
	}

	var be httperr.BusinessError
	if errors.As(err, &be) {
		httperr.BadRequest(c, be.Code, businessMessage(be.Code, fallback))
		return
	}

	r.log.Warn("backend call failed",
		zap.String("path", c.Request.URL.Path),
		zap.String("outcome", string(apiclient.Classify(err))),
		zap.Error(err),
	)

	switch {
	case apiclient.IsNotFound(err):
		httperr.NotFound(c, "not_found", apiclient.Detail(err, fallback))
	case apiclient.Classify(err) == apiclient.OutcomeNetwork:
		httperr.BadGateway(c, "network_error", fallback)
	default:
		httperr.BadGateway(c, "backend_error", apiclient.Detail(err, fallback))
	}
}

