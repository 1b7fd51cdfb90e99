package handlers

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/appointme-client/internal/apiclient"
	domain "github.com/BruksfildServices01/appointme-client/internal/domain/appointment"
	"github.com/BruksfildServices01/appointme-client/internal/httperr"
	"github.com/BruksfildServices01/appointme-client/internal/middleware"
	"github.com/BruksfildServices01/appointme-client/internal/models"
	"github.com/BruksfildServices01/appointme-client/internal/session"
	"github.com/BruksfildServices01/appointme-client/internal/timezone"
	ucAppointment "github.com/BruksfildServices01/appointme-client/internal/usecase/appointment"
)

// Specialties offered by the search filter.
var Specialties = []string{"Hair Salon", "Dental", "Legal", "Beauty", "Medical"}

type PublicWebHandler struct {
	Responder
	api          *apiclient.Client
	loadBusiness *ucAppointment.LoadBusiness
	availability *ucAppointment.GetAvailability
	tz           string
	now          func() time.Time
}

func NewPublicWebHandler(
	r Responder,
	api *apiclient.Client,
	loadBusiness *ucAppointment.LoadBusiness,
	availability *ucAppointment.GetAvailability,
	tz string,
) *PublicWebHandler {
	return &PublicWebHandler{
		Responder:    r,
		api:          api,
		loadBusiness: loadBusiness,
		availability: availability,
		tz:           tz,
		now:          time.Now,
	}
}

// Home searches businesses. An empty or "all" specialty searches by the
// free-text query instead.
func (h *PublicWebHandler) Home(c *gin.Context) {
	query := strings.TrimSpace(c.Query("q"))
	specialty := strings.TrimSpace(c.Query("specialty"))
	location := strings.TrimSpace(c.Query("location"))

	filter := apiclient.SearchFilter{Specialty: specialty, Location: location}
	if specialty == "" || specialty == "all" {
		filter.Specialty = query
	}

	data := gin.H{
		"Query":       query,
		"Specialty":   specialty,
		"Location":    location,
		"Specialties": Specialties,
	}

	businesses, err := h.api.SearchBusinesses(c.Request.Context(), filter)
	if err != nil {
		if h.failPage(c, err) {
			return
		}
		data["SearchError"] = "Failed to load businesses"
		businesses = nil
	}
	data["Businesses"] = businesses

	render(c, http.StatusOK, "home", "", data)
}

// BusinessPage shows the business, its active services and the free slots
// of the requested date (today by default).
func (h *PublicWebHandler) BusinessPage(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		renderError(c, http.StatusNotFound, "Business not found", "This business does not exist.")
		return
	}

	actor := actorFrom(c)
	ctx := c.Request.Context()

	details, err := h.loadBusiness.Execute(ctx, actor, id)
	if err != nil {
		if h.failPage(c, err) {
			return
		}
		if apiclient.IsNotFound(err) {
			renderError(c, http.StatusNotFound, "Business not found", "This business does not exist.")
			return
		}
		renderError(c, http.StatusBadGateway, "Unavailable", "Failed to load business details")
		return
	}

	today := timezone.FormatDate(h.now().In(timezone.Location(h.tz)))
	data := gin.H{
		"Business": details.Business,
		"Services": details.Services,
		"MinDate":  today,
		"Date":     today,
		"Slots":    []domain.TimeSlot{},
		"CanBook":  session.From(c).Is(models.RoleCustomer),
		"LoginURL": middleware.LoginPath(c.Request.URL.RequestURI()),
	}

	res, err := h.availability.Execute(ctx, actor, id, c.Query("date"))
	switch {
	case err == nil:
		data["Date"] = timezone.FormatDate(res.Date)
		data["Slots"] = domain.ToTimeSlots(res.Slots)
	case httperr.IsBusiness(err, "past_date"), httperr.IsBusiness(err, "invalid_date"):
		data["SlotsError"] = businessMessage(err.Error(), "Please select a valid date")
	default:
		if h.failPage(c, err) {
			return
		}
		data["SlotsError"] = "Failed to load available time slots"
	}

	render(c, http.StatusOK, "business", details.Business.BusinessName, data)
}
