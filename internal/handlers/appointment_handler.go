package handlers

import (
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/appointme-client/internal/dto"
	"github.com/BruksfildServices01/appointme-client/internal/flash"
	"github.com/BruksfildServices01/appointme-client/internal/timezone"
	ucAppointment "github.com/BruksfildServices01/appointme-client/internal/usecase/appointment"
)

// ======================================================
// HANDLER
// ======================================================

type AppointmentHandler struct {
	Responder
	create       *ucAppointment.CreateAppointment
	cancel       *ucAppointment.CancelAppointment
	reschedule   *ucAppointment.RescheduleAppointment
	list         *ucAppointment.ListCustomerAppointments
	updateStatus *ucAppointment.UpdateAppointmentStatus
	tz           string
	now          func() time.Time
}

func NewAppointmentHandler(
	r Responder,
	create *ucAppointment.CreateAppointment,
	cancel *ucAppointment.CancelAppointment,
	reschedule *ucAppointment.RescheduleAppointment,
	list *ucAppointment.ListCustomerAppointments,
	updateStatus *ucAppointment.UpdateAppointmentStatus,
	tz string,
) *AppointmentHandler {
	return &AppointmentHandler{
		Responder:    r,
		create:       create,
		cancel:       cancel,
		reschedule:   reschedule,
		list:         list,
		updateStatus: updateStatus,
		tz:           tz,
		now:          time.Now,
	}
}

// ======================================================
// REQUESTS
// ======================================================

type bookForm struct {
	ServiceID uint   `form:"service_id" label:"Service" binding:"required"`
	Date      string `form:"date" label:"Date" binding:"required,isodate"`
	Time      string `form:"time" label:"Time" binding:"required,clock"`
}

type rescheduleForm struct {
	Date string `form:"date" label:"Date" binding:"required,isodate"`
	Time string `form:"time" label:"Time" binding:"required,clock"`
}

type statusForm struct {
	Status       string `form:"status" label:"Status" binding:"required"`
	BusinessNote string `form:"business_note" label:"Note" binding:"max=500"`
}

// ======================================================
// BOOK
// ======================================================

func (h *AppointmentHandler) Book(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		NotFound(c)
		return
	}
	back := fmt.Sprintf("/business/%d", id)

	var form bookForm
	if err := c.ShouldBind(&form); err != nil {
		flash.Fail(c, "Please select a service, date, and time slot")
		redirect(c, withDate(back, form.Date))
		return
	}

	_, err := h.create.Execute(c.Request.Context(), actorFrom(c), ucAppointment.CreateAppointmentInput{
		BusinessID: id,
		ServiceID:  form.ServiceID,
		Date:       form.Date,
		Time:       form.Time,
	})
	if err != nil {
		h.fail(c, err, "Failed to book appointment", withDate(back, form.Date))
		return
	}

	flash.Succeed(c, "Appointment booked successfully!")
	redirect(c, "/appointments")
}

func withDate(path, date string) string {
	if date == "" {
		return path
	}
	return path + "?" + url.Values{"date": {date}}.Encode()
}

// ======================================================
// CUSTOMER LIST / CANCEL / RESCHEDULE
// ======================================================

func (h *AppointmentHandler) Appointments(c *gin.Context) {
	data := gin.H{
		"MinDate": timezone.FormatDate(h.now().In(timezone.Location(h.tz))),
	}

	list, err := h.list.Execute(c.Request.Context(), actorFrom(c))
	if err != nil {
		if h.failPage(c, err) {
			return
		}
		data["LoadError"] = "Failed to load appointments"
		list = &dto.CustomerAppointmentsDTO{}
	}
	data["Appointments"] = list

	render(c, http.StatusOK, "appointments", "My appointments", data)
}

func (h *AppointmentHandler) Cancel(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		NotFound(c)
		return
	}

	if _, err := h.cancel.Execute(c.Request.Context(), actorFrom(c), id); err != nil {
		h.fail(c, err, "Failed to cancel appointment", "/appointments")
		return
	}

	flash.Succeed(c, "Appointment cancelled successfully")
	redirect(c, "/appointments")
}

func (h *AppointmentHandler) Reschedule(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		NotFound(c)
		return
	}

	var form rescheduleForm
	if err := c.ShouldBind(&form); err != nil {
		flash.Fail(c, "Please select a date and time")
		redirect(c, "/appointments")
		return
	}

	_, err := h.reschedule.Execute(c.Request.Context(), actorFrom(c), ucAppointment.RescheduleAppointmentInput{
		AppointmentID: id,
		Date:          form.Date,
		Time:          form.Time,
	})
	if err != nil {
		h.fail(c, err, "Failed to reschedule appointment", "/appointments")
		return
	}

	flash.Succeed(c, "Appointment rescheduled successfully")
	redirect(c, "/appointments")
}

// ======================================================
// BUSINESS STATUS
// ======================================================

func (h *AppointmentHandler) UpdateStatus(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		NotFound(c)
		return
	}
	back := "/business/dashboard"

	var form statusForm
	if err := c.ShouldBind(&form); err != nil {
		flash.Fail(c, "Failed to update appointment status")
		redirect(c, back)
		return
	}

	_, err := h.updateStatus.Execute(c.Request.Context(), actorFrom(c), ucAppointment.UpdateStatusInput{
		AppointmentID: id,
		Status:        form.Status,
		Note:          form.BusinessNote,
	})
	if err != nil {
		h.fail(c, err, "Failed to update appointment status", back)
		return
	}

	flash.Succeed(c, "Appointment status updated successfully")
	redirect(c, back)
}
