package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/BruksfildServices01/appointme-client/internal/apiclient"
	"github.com/BruksfildServices01/appointme-client/internal/audit"
	"github.com/BruksfildServices01/appointme-client/internal/config"
	"github.com/BruksfildServices01/appointme-client/internal/handlers"
	"github.com/BruksfildServices01/appointme-client/internal/imaging"
	infraRepo "github.com/BruksfildServices01/appointme-client/internal/infra/repository"
	"github.com/BruksfildServices01/appointme-client/internal/middleware"
	"github.com/BruksfildServices01/appointme-client/internal/models"
	"github.com/BruksfildServices01/appointme-client/internal/session"
	ucAppointment "github.com/BruksfildServices01/appointme-client/internal/usecase/appointment"
	"github.com/BruksfildServices01/appointme-client/internal/validators"
)

// Deps are the singletons built by main.
type Deps struct {
	Config   *config.Config
	Log      *zap.Logger
	API      *apiclient.Client
	Sessions *session.Manager
	Audit    *audit.Dispatcher

	// Activity is nil when no database is configured.
	Activity handlers.ActivityReader
	// Resolver is used by the optional email domain check.
	Resolver validators.Resolver
}

func RegisterRoutes(r *gin.Engine, d Deps) {
	cfg := d.Config
	if d.Log == nil {
		d.Log = zap.NewNop()
	}

	// ======================================================
	// 🌍 GLOBAL MIDDLEWARE
	// ======================================================
	r.Use(middleware.AccessLog(d.Log))

	// Ops endpoints stay off the session chain; restoring a session costs a
	// backend round trip.
	loadSession := middleware.LoadSession(d.Sessions)
	r.NoRoute(loadSession, handlers.NotFound)

	// ======================================================
	// 🔧 INFRA
	// ======================================================
	repoFor := infraRepo.AppointmentRepositoryFor(d.API)
	responder := handlers.NewResponder(d.Sessions, d.Log)
	loginLimiter := middleware.NewRateLimiter(cfg.LoginRatePerMinute)

	// ======================================================
	// 🧠 USE CASES (APPOINTMENTS)
	// ======================================================
	getAvailabilityUC := ucAppointment.NewGetAvailability(repoFor, cfg.Timezone)
	loadBusinessUC := ucAppointment.NewLoadBusiness(repoFor)
	createAppointmentUC := ucAppointment.NewCreateAppointment(repoFor, d.Audit, cfg.Timezone)
	cancelAppointmentUC := ucAppointment.NewCancelAppointment(repoFor, d.Audit)
	rescheduleAppointmentUC := ucAppointment.NewRescheduleAppointment(repoFor, d.Audit, cfg.Timezone)
	updateStatusUC := ucAppointment.NewUpdateAppointmentStatus(repoFor, d.Audit)
	listCustomerUC := ucAppointment.NewListCustomerAppointments(repoFor, cfg.Timezone)
	listBusinessUC := ucAppointment.NewListBusinessAppointments(repoFor, cfg.Timezone)

	// ======================================================
	// 🧩 HANDLERS
	// ======================================================
	authHandler := handlers.NewAuthHandler(responder, d.API, handlers.AuthOptions{
		CheckEmailDomain: cfg.CheckEmailDomain,
		Resolver:         d.Resolver,
		DemoHint:         !cfg.IsProduction(),
	})
	meHandler := handlers.NewMeHandler()

	publicWebHandler := handlers.NewPublicWebHandler(responder, d.API, loadBusinessUC, getAvailabilityUC, cfg.Timezone)
	publicHandler := handlers.NewPublicHandler(responder, getAvailabilityUC)

	appointmentHandler := handlers.NewAppointmentHandler(
		responder,
		createAppointmentUC,
		cancelAppointmentUC,
		rescheduleAppointmentUC,
		listCustomerUC,
		updateStatusUC,
		cfg.Timezone,
	)
	dashboardHandler := handlers.NewDashboardHandler(responder, listCustomerUC, listBusinessUC)

	customerProfileHandler := handlers.NewCustomerProfileHandler(responder, d.API, d.Audit)
	businessProfileHandler := handlers.NewBusinessProfileHandler(responder, d.API, d.Audit, imaging.Options{
		MaxBytes:     cfg.UploadMaxBytes,
		MaxDimension: cfg.ImageMaxDimension,
		MaxPixels:    cfg.ImageMaxPixels,
	})
	serviceHandler := handlers.NewServiceHandler(responder, d.API, d.Audit)
	timeSlotHandler := handlers.NewTimeSlotHandler(responder, d.API, d.Audit)
	activityHandler := handlers.NewActivityHandler(responder, d.Activity)

	// ======================================================
	// 🩺 OPS
	// ======================================================
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// ======================================================
	// 🌍 PUBLIC PAGES
	// ======================================================
	app := r.Group("/")
	app.Use(loadSession)
	app.GET("/", publicWebHandler.Home)
	app.GET("/business/:id", publicWebHandler.BusinessPage)

	// ======================================================
	// 🔐 AUTH
	// ======================================================
	guest := app.Group("/")
	guest.Use(middleware.RedirectAuthenticated())
	{
		guest.GET("/login", authHandler.LoginPage)
		guest.POST("/login", loginLimiter.Middleware(), authHandler.Login)
		guest.GET("/register", authHandler.RegisterPage)
		guest.POST("/register", loginLimiter.Middleware(), authHandler.Register)
	}
	app.POST("/logout", authHandler.Logout)

	signedIn := app.Group("/")
	signedIn.Use(middleware.RequireRole(models.RoleCustomer, models.RoleBusiness))
	{
		signedIn.GET("/activity", activityHandler.Page)
	}

	// ======================================================
	// 👤 CUSTOMER
	// ======================================================
	customer := app.Group("/")
	customer.Use(middleware.RequireRole(models.RoleCustomer))
	{
		customer.GET("/dashboard", dashboardHandler.CustomerDashboard)

		customer.POST("/business/:id/book", appointmentHandler.Book)
		customer.GET("/appointments", appointmentHandler.Appointments)
		customer.POST("/appointments/:id/cancel", appointmentHandler.Cancel)
		customer.POST("/appointments/:id/reschedule", appointmentHandler.Reschedule)

		customer.GET("/profile", customerProfileHandler.Page)
		customer.POST("/profile", customerProfileHandler.Update)
		customer.POST("/profile/delete", customerProfileHandler.Delete)
	}

	// ======================================================
	// 🏪 BUSINESS
	// ======================================================
	business := app.Group("/business")
	business.Use(middleware.RequireRole(models.RoleBusiness))
	{
		business.GET("/dashboard", dashboardHandler.BusinessDashboard)
		business.POST("/appointments/:id/status", appointmentHandler.UpdateStatus)

		business.GET("/profile", businessProfileHandler.Page)
		business.POST("/profile", businessProfileHandler.Update)
		business.POST("/profile/delete", businessProfileHandler.Delete)
		business.POST("/images/:kind", businessProfileHandler.UploadImage)
		business.POST("/images/:kind/delete", businessProfileHandler.DeleteImage)

		business.POST("/services", serviceHandler.Create)
		business.POST("/services/:id", serviceHandler.Update)
		business.POST("/services/:id/delete", serviceHandler.Delete)

		business.POST("/timeslots", timeSlotHandler.Create)
		business.POST("/timeslots/:id", timeSlotHandler.Update)
		business.POST("/timeslots/:id/delete", timeSlotHandler.Delete)
	}

	// ======================================================
	// 🌐 API (JSON)
	// ======================================================
	api := r.Group("/api")
	api.Use(middleware.CORS(cfg.CORSAllowedOrigins), loadSession)
	{
		api.GET("/me", meHandler.GetMe)
		api.GET("/businesses/:id/slots", publicHandler.Slots)
	}
}
