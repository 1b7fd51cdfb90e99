package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/appointme-client/internal/apiclient"
	"github.com/BruksfildServices01/appointme-client/internal/audit"
	"github.com/BruksfildServices01/appointme-client/internal/flash"
	"github.com/BruksfildServices01/appointme-client/internal/models"
	"github.com/BruksfildServices01/appointme-client/internal/session"
	"github.com/BruksfildServices01/appointme-client/internal/validators"
)

type CustomerProfileHandler struct {
	Responder
	api   *apiclient.Client
	audit *audit.Dispatcher
}

func NewCustomerProfileHandler(r Responder, api *apiclient.Client, d *audit.Dispatcher) *CustomerProfileHandler {
	return &CustomerProfileHandler{Responder: r, api: api, audit: d}
}

type customerProfileForm struct {
	Name  string `form:"name" label:"Full name" binding:"required,max=120"`
	Email string `form:"email" label:"Email" binding:"required,email"`
	Phone string `form:"phone" label:"Phone" binding:"max=30"`
}

// Page shows the profile restored with the session, fetching it again
// when the restore could not.
func (h *CustomerProfileHandler) Page(c *gin.Context) {
	s := session.From(c)

	customer, ok := s.Customer()
	if !ok {
		var err error
		customer, err = s.Client(h.api).CustomerProfile(c.Request.Context())
		if err != nil {
			if h.failPage(c, err) {
				return
			}
			customer = nil
		}
	}

	render(c, http.StatusOK, "profile", "My profile", gin.H{"Customer": customer})
}

func (h *CustomerProfileHandler) Update(c *gin.Context) {
	var form customerProfileForm
	if err := c.ShouldBind(&form); err != nil {
		render(c, http.StatusBadRequest, "profile", "My profile", gin.H{
			"Customer": &models.Customer{FullName: form.Name, Email: form.Email, Phone: form.Phone},
			"Errors":   validators.Messages(err),
		})
		return
	}

	s := session.From(c)
	_, err := s.Client(h.api).UpdateCustomerProfile(c.Request.Context(), models.CustomerUpdate{
		Name:  strings.TrimSpace(form.Name),
		Email: strings.TrimSpace(form.Email),
		Phone: strings.TrimSpace(form.Phone),
	})
	writeAudit(h.audit, c, "profile_updated", "customer", nil, err, nil)
	if err != nil {
		h.fail(c, err, "Failed to update profile", "/profile")
		return
	}

	flash.Succeed(c, "Profile updated successfully!")
	redirect(c, "/profile")
}

// Delete removes the account and ends the session. The form must carry
// confirm=yes.
func (h *CustomerProfileHandler) Delete(c *gin.Context) {
	if c.PostForm("confirm") != "yes" {
		flash.Fail(c, "Please confirm the account deletion")
		redirect(c, "/profile")
		return
	}

	s := session.From(c)
	err := s.Client(h.api).DeleteCustomerAccount(c.Request.Context())
	writeAudit(h.audit, c, "account_deleted", "customer", nil, err, nil)
	if err != nil {
		h.fail(c, err, "Failed to delete account", "/profile")
		return
	}

	h.sessions.Logout(c.Writer, c.Request)
	session.Set(c, session.Anonymous())
	flash.Succeed(c, "Account deleted successfully")
	redirect(c, "/")
}
