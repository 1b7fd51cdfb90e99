package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/appointme-client/internal/apiclient"
	"github.com/BruksfildServices01/appointme-client/internal/audit"
	domain "github.com/BruksfildServices01/appointme-client/internal/domain/appointment"
	"github.com/BruksfildServices01/appointme-client/internal/flash"
	"github.com/BruksfildServices01/appointme-client/internal/models"
	"github.com/BruksfildServices01/appointme-client/internal/session"
	"github.com/BruksfildServices01/appointme-client/internal/validators"
)

// TimeSlotHandler manages the weekly availability windows of a business.
type TimeSlotHandler struct {
	Responder
	api   *apiclient.Client
	audit *audit.Dispatcher
}

func NewTimeSlotHandler(r Responder, api *apiclient.Client, d *audit.Dispatcher) *TimeSlotHandler {
	return &TimeSlotHandler{Responder: r, api: api, audit: d}
}

type timeSlotForm struct {
	DayOfWeek           *int   `form:"day_of_week" label:"Day" binding:"required,min=0,max=6"`
	StartTime           string `form:"start_time" label:"Start time" binding:"required,clock"`
	EndTime             string `form:"end_time" label:"End time" binding:"required,clock"`
	SlotDurationMinutes int    `form:"slot_duration_minutes" label:"Slot duration" binding:"required,min=5,max=480"`
	IsActive            bool   `form:"is_active"`
}

// input normalises both bounds to "HH:MM:SS" and rejects windows that
// do not end after they start.
func (f timeSlotForm) input() (models.TimeSlotInput, string) {
	start, err := domain.ParseClock(f.StartTime)
	if err != nil {
		return models.TimeSlotInput{}, "Start time is invalid"
	}
	end, err := domain.ParseClock(f.EndTime)
	if err != nil {
		return models.TimeSlotInput{}, "End time is invalid"
	}
	if end <= start {
		return models.TimeSlotInput{}, "End time must be after start time"
	}

	return models.TimeSlotInput{
		DayOfWeek:           *f.DayOfWeek,
		StartTime:           start.Value(),
		EndTime:             end.Value(),
		SlotDurationMinutes: f.SlotDurationMinutes,
		IsActive:            f.IsActive,
	}, ""
}

func (h *TimeSlotHandler) bind(c *gin.Context) (models.TimeSlotInput, bool) {
	var form timeSlotForm
	if err := c.ShouldBind(&form); err != nil {
		flash.Fail(c, validators.First(err))
		redirect(c, businessProfilePath)
		return models.TimeSlotInput{}, false
	}

	in, problem := form.input()
	if problem != "" {
		flash.Fail(c, problem)
		redirect(c, businessProfilePath)
		return models.TimeSlotInput{}, false
	}
	return in, true
}

func (h *TimeSlotHandler) Create(c *gin.Context) {
	in, ok := h.bind(c)
	if !ok {
		return
	}

	ts, err := session.From(c).Client(h.api).CreateTimeSlot(c.Request.Context(), in)
	var id *uint
	if ts != nil {
		id = &ts.ID
	}
	writeAudit(h.audit, c, "timeslot_created", "timeslot", id, err, nil)
	if err != nil {
		h.fail(c, err, "Failed to save time slot", businessProfilePath)
		return
	}

	flash.Succeed(c, "Time slot created successfully!")
	redirect(c, businessProfilePath)
}

func (h *TimeSlotHandler) Update(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		NotFound(c)
		return
	}
	in, ok := h.bind(c)
	if !ok {
		return
	}

	_, err := session.From(c).Client(h.api).UpdateTimeSlot(c.Request.Context(), id, in)
	writeAudit(h.audit, c, "timeslot_updated", "timeslot", &id, err, nil)
	if err != nil {
		h.fail(c, err, "Failed to save time slot", businessProfilePath)
		return
	}

	flash.Succeed(c, "Time slot updated successfully!")
	redirect(c, businessProfilePath)
}

func (h *TimeSlotHandler) Delete(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		NotFound(c)
		return
	}

	err := session.From(c).Client(h.api).DeleteTimeSlot(c.Request.Context(), id)
	writeAudit(h.audit, c, "timeslot_deleted", "timeslot", &id, err, nil)
	if err != nil {
		h.fail(c, err, "Failed to delete time slot", businessProfilePath)
		return
	}

	flash.Succeed(c, "Time slot deleted successfully!")
	redirect(c, businessProfilePath)
}
