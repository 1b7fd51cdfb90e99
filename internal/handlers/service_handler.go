package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/appointme-client/internal/apiclient"
	"github.com/BruksfildServices01/appointme-client/internal/audit"
	"github.com/BruksfildServices01/appointme-client/internal/flash"
	"github.com/BruksfildServices01/appointme-client/internal/models"
	"github.com/BruksfildServices01/appointme-client/internal/session"
	"github.com/BruksfildServices01/appointme-client/internal/validators"
)

// ServiceHandler manages the services a business offers.
type ServiceHandler struct {
	Responder
	api   *apiclient.Client
	audit *audit.Dispatcher
}

func NewServiceHandler(r Responder, api *apiclient.Client, d *audit.Dispatcher) *ServiceHandler {
	return &ServiceHandler{Responder: r, api: api, audit: d}
}

type serviceForm struct {
	Name            string   `form:"name" label:"Service name" binding:"required,max=120"`
	Description     string   `form:"description" label:"Description" binding:"max=1000"`
	Price           *float64 `form:"price" label:"Price" binding:"required,gte=0"`
	DurationMinutes int      `form:"duration_minutes" label:"Duration" binding:"required,min=5,max=480"`
	IsActive        bool     `form:"is_active"`
}

func (f serviceForm) input() models.ServiceInput {
	return models.ServiceInput{
		Name:            f.Name,
		Description:     f.Description,
		Price:           *f.Price,
		DurationMinutes: f.DurationMinutes,
		IsActive:        f.IsActive,
	}
}

func (h *ServiceHandler) Create(c *gin.Context) {
	var form serviceForm
	if err := c.ShouldBind(&form); err != nil {
		flash.Fail(c, validators.First(err))
		redirect(c, businessProfilePath)
		return
	}

	svc, err := session.From(c).Client(h.api).CreateService(c.Request.Context(), form.input())
	var id *uint
	if svc != nil {
		id = &svc.ID
	}
	writeAudit(h.audit, c, "service_created", "service", id, err, nil)
	if err != nil {
		h.fail(c, err, "Failed to save service", businessProfilePath)
		return
	}

	flash.Succeed(c, "Service created successfully!")
	redirect(c, businessProfilePath)
}

func (h *ServiceHandler) Update(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		NotFound(c)
		return
	}

	var form serviceForm
	if err := c.ShouldBind(&form); err != nil {
		flash.Fail(c, validators.First(err))
		redirect(c, businessProfilePath)
		return
	}

	_, err := session.From(c).Client(h.api).UpdateService(c.Request.Context(), id, form.input())
	writeAudit(h.audit, c, "service_updated", "service", &id, err, nil)
	if err != nil {
		h.fail(c, err, "Failed to save service", businessProfilePath)
		return
	}

	flash.Succeed(c, "Service updated successfully!")
	redirect(c, businessProfilePath)
}

func (h *ServiceHandler) Delete(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		NotFound(c)
		return
	}

	err := session.From(c).Client(h.api).DeleteService(c.Request.Context(), id)
	writeAudit(h.audit, c, "service_deleted", "service", &id, err, nil)
	if err != nil {
		h.fail(c, err, "Failed to delete service", businessProfilePath)
		return
	}

	flash.Succeed(c, "Service deleted successfully!")
	redirect(c, businessProfilePath)
}
