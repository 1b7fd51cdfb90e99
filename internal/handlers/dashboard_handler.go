package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"golang.org/x/sync/errgroup"

	domain "github.com/BruksfildServices01/appointme-client/internal/domain/appointment"
	"github.com/BruksfildServices01/appointme-client/internal/dto"
	"github.com/BruksfildServices01/appointme-client/internal/flash"
	ucAppointment "github.com/BruksfildServices01/appointme-client/internal/usecase/appointment"
)

const dashboardPreview = 3

// DashboardHandler renders the landing page of each role.
type DashboardHandler struct {
	Responder
	listCustomer *ucAppointment.ListCustomerAppointments
	listBusiness *ucAppointment.ListBusinessAppointments
}

func NewDashboardHandler(
	r Responder,
	listCustomer *ucAppointment.ListCustomerAppointments,
	listBusiness *ucAppointment.ListBusinessAppointments,
) *DashboardHandler {
	return &DashboardHandler{
		Responder:    r,
		listCustomer: listCustomer,
		listBusiness: listBusiness,
	}
}

func (h *DashboardHandler) CustomerDashboard(c *gin.Context) {
	data := gin.H{}

	list, err := h.listCustomer.Execute(c.Request.Context(), actorFrom(c))
	if err != nil {
		if h.failPage(c, err) {
			return
		}
		data["LoadError"] = "Failed to load appointments"
		list = &dto.CustomerAppointmentsDTO{}
	}

	next := list.Upcoming
	if len(next) > dashboardPreview {
		next = next[:dashboardPreview]
	}
	data["Appointments"] = list
	data["Next"] = next

	render(c, http.StatusOK, "customer_dashboard", "Dashboard", data)
}

// BusinessDashboard lists the appointments, optionally filtered by status.
// The status cards always count every appointment.
func (h *DashboardHandler) BusinessDashboard(c *gin.Context) {
	status := c.Query("status")
	if _, ok := domain.ParseStatus(status); status != "" && !ok {
		flash.Fail(c, businessMessage("invalid_status", ""))
		redirect(c, "/business/dashboard")
		return
	}
	actor := actorFrom(c)

	var all, shown []dto.AppointmentListDTO

	g, ctx := errgroup.WithContext(c.Request.Context())
	g.Go(func() error {
		var err error
		all, err = h.listBusiness.Execute(ctx, actor, "")
		return err
	})
	if status != "" {
		g.Go(func() error {
			var err error
			shown, err = h.listBusiness.Execute(ctx, actor, status)
			return err
		})
	}

	err := g.Wait()
	data := gin.H{"Status": status}
	if err != nil {
		if h.failPage(c, err) {
			return
		}
		data["LoadError"] = "Failed to load appointments"
		all, shown = nil, nil
	}
	if status == "" {
		shown = all
	}

	data["Appointments"] = shown
	data["Counts"] = ucAppointment.CountByStatus(all)

	render(c, http.StatusOK, "business_dashboard", "Dashboard", data)
}
