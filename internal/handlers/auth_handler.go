package handlers

import (
	"context"
	"net/http"
	"net/url"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/BruksfildServices01/appointme-client/internal/apiclient"
	"github.com/BruksfildServices01/appointme-client/internal/flash"
	"github.com/BruksfildServices01/appointme-client/internal/middleware"
	"github.com/BruksfildServices01/appointme-client/internal/models"
	"github.com/BruksfildServices01/appointme-client/internal/validators"
)

// ======================================================
// HANDLER
// ======================================================

type AuthHandler struct {
	Responder
	api *apiclient.Client

	checkEmailDomain bool
	resolver         validators.Resolver
	demoHint         bool
}

type AuthOptions struct {
	CheckEmailDomain bool
	Resolver         validators.Resolver
	DemoHint         bool
}

func NewAuthHandler(r Responder, api *apiclient.Client, opts AuthOptions) *AuthHandler {
	return &AuthHandler{
		Responder:        r,
		api:              api,
		checkEmailDomain: opts.CheckEmailDomain,
		resolver:         opts.Resolver,
		demoHint:         opts.DemoHint,
	}
}

// ======================================================
// REQUESTS
// ======================================================

type loginForm struct {
	Email    string `form:"email" label:"Email" binding:"required,email"`
	Password string `form:"password" label:"Password" binding:"required"`
	Role     string `form:"role"`
	From     string `form:"from"`
}

type registerForm struct {
	Role            string `form:"role"`
	FullName        string `form:"full_name"`
	BusinessName    string `form:"business_name"`
	Email           string `form:"email" label:"Email" binding:"required,email"`
	Phone           string `form:"phone"`
	Address         string `form:"address"`
	Specialty       string `form:"specialty"`
	Description     string `form:"description"`
	Password        string `form:"password" label:"Password" binding:"required,min=6"`
	ConfirmPassword string `form:"confirm_password" label:"Confirm password" binding:"required,eqfield=Password"`
}

// roleParam defaults to customer, as the role tabs do.
func roleParam(s string) models.Role {
	if r, ok := models.ParseRole(s); ok {
		return r
	}
	return models.RoleCustomer
}

// ======================================================
// LOGIN
// ======================================================

func (h *AuthHandler) LoginPage(c *gin.Context) {
	render(c, http.StatusOK, "login", "Login", gin.H{
		"Role":     roleParam(c.Query("role")).String(),
		"From":     c.Query("from"),
		"DemoHint": h.demoHint,
	})
}

func (h *AuthHandler) Login(c *gin.Context) {
	var form loginForm
	if err := c.ShouldBind(&form); err != nil {
		render(c, http.StatusBadRequest, "login", "Login", gin.H{
			"Role":     roleParam(form.Role).String(),
			"From":     form.From,
			"Email":    form.Email,
			"Errors":   []string{"Please fill in all fields"},
			"DemoHint": h.demoHint,
		})
		return
	}

	role := roleParam(form.Role)
	email := strings.TrimSpace(form.Email)

	s, err := h.sessions.Login(c.Request.Context(), c.Writer, c.Request, email, form.Password, role)
	if err != nil {
		h.log.Info("login rejected",
			zap.String("role", role.String()),
			zap.String("outcome", string(apiclient.Classify(err))),
		)
		flash.Fail(c, apiclient.Detail(err, "Login failed"))
		redirect(c, loginURL(role, form.From))
		return
	}

	if s.HasProfile() {
		flash.Succeed(c, "Login successful!")
	} else {
		flash.Fail(c, "Failed to fetch user profile")
	}
	redirect(c, middleware.SafeReturnPath(form.From, s.Role().Dashboard()))
}

func loginURL(role models.Role, from string) string {
	q := url.Values{"role": {role.String()}}
	if from != "" {
		q.Set("from", from)
	}
	return "/login?" + q.Encode()
}

// ======================================================
// REGISTER
// ======================================================

func (h *AuthHandler) RegisterPage(c *gin.Context) {
	role := roleParam(c.Query("role"))
	render(c, http.StatusOK, "register", "Register", gin.H{
		"Role": role.String(),
		"Form": registerForm{Role: role.String()},
	})
}

func (h *AuthHandler) Register(c *gin.Context) {
	var form registerForm
	bindErr := c.ShouldBind(&form)
	role := roleParam(form.Role)

	errs := h.validateRegistration(c.Request.Context(), role, form, bindErr)
	if len(errs) > 0 {
		h.registerAgain(c, http.StatusBadRequest, role, form, errs)
		return
	}

	var err error
	switch role {
	case models.RoleBusiness:
		_, err = h.api.RegisterBusiness(c.Request.Context(), models.BusinessRegistration{
			Email:        strings.TrimSpace(form.Email),
			Password:     form.Password,
			BusinessName: strings.TrimSpace(form.BusinessName),
			Phone:        strings.TrimSpace(form.Phone),
			Address:      strings.TrimSpace(form.Address),
			Specialty:    strings.TrimSpace(form.Specialty),
			Description:  strings.TrimSpace(form.Description),
		})
	default:
		_, err = h.api.RegisterCustomer(c.Request.Context(), models.CustomerRegistration{
			Email:    strings.TrimSpace(form.Email),
			Password: form.Password,
			FullName: strings.TrimSpace(form.FullName),
			Phone:    strings.TrimSpace(form.Phone),
		})
	}
	if err != nil {
		h.log.Info("registration rejected",
			zap.String("role", role.String()),
			zap.String("outcome", string(apiclient.Classify(err))),
		)
		h.registerAgain(c, http.StatusUnprocessableEntity, role, form, []string{apiclient.Detail(err, "Registration failed")})
		return
	}

	flash.Succeed(c, "Registration successful! Please login.")
	redirect(c, loginURL(role, ""))
}

// validateRegistration returns every problem found before any backend
// call is made.
func (h *AuthHandler) validateRegistration(
	ctx context.Context,
	role models.Role,
	form registerForm,
	bindErr error,
) []string {

	var errs []string

	switch role {
	case models.RoleBusiness:
		if strings.TrimSpace(form.BusinessName) == "" {
			errs = append(errs, "Please enter your business name")
		}
	default:
		if strings.TrimSpace(form.FullName) == "" {
			errs = append(errs, "Please enter your full name")
		}
	}

	if bindErr != nil {
		errs = append(errs, validators.Messages(bindErr)...)
		return errs
	}

	if h.checkEmailDomain && !validators.EmailDomainExists(ctx, h.resolver, form.Email) {
		errs = append(errs, "Email domain does not accept mail")
	}
	return errs
}

func (h *AuthHandler) registerAgain(c *gin.Context, status int, role models.Role, form registerForm, errs []string) {
	form.Password = ""
	form.ConfirmPassword = ""
	form.Role = role.String()

	render(c, status, "register", "Register", gin.H{
		"Role":   role.String(),
		"Form":   form,
		"Errors": errs,
	})
}

// ======================================================
// LOGOUT
// ======================================================

func (h *AuthHandler) Logout(c *gin.Context) {
	h.sessions.Logout(c.Writer, c.Request)
	flash.Succeed(c, "Logged out successfully")
	redirect(c, "/")
}
