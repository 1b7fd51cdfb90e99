package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/BruksfildServices01/appointme-client/internal/apiclient"
	"github.com/BruksfildServices01/appointme-client/internal/audit"
	"github.com/BruksfildServices01/appointme-client/internal/flash"
	"github.com/BruksfildServices01/appointme-client/internal/imaging"
	"github.com/BruksfildServices01/appointme-client/internal/metrics"
	"github.com/BruksfildServices01/appointme-client/internal/models"
	"github.com/BruksfildServices01/appointme-client/internal/session"
	"github.com/BruksfildServices01/appointme-client/internal/validators"
)

const businessProfilePath = "/business/profile"

// ======================================================
// HANDLER
// ======================================================

type BusinessProfileHandler struct {
	Responder
	api    *apiclient.Client
	audit  *audit.Dispatcher
	upload imaging.Options
}

func NewBusinessProfileHandler(
	r Responder,
	api *apiclient.Client,
	d *audit.Dispatcher,
	upload imaging.Options,
) *BusinessProfileHandler {
	return &BusinessProfileHandler{Responder: r, api: api, audit: d, upload: upload}
}

type businessProfileForm struct {
	Name        string `form:"name" label:"Business name" binding:"required,max=120"`
	Email       string `form:"email" label:"Email" binding:"required,email"`
	Phone       string `form:"phone" label:"Phone" binding:"max=30"`
	Address     string `form:"address" label:"Address" binding:"max=255"`
	Category    string `form:"category" label:"Specialty" binding:"max=60"`
	Description string `form:"description" label:"Description" binding:"max=5000"`
}

// ======================================================
// PAGE
// ======================================================

// Page loads the profile, every service and every availability window in
// parallel.
func (h *BusinessProfileHandler) Page(c *gin.Context) {
	h.page(c, http.StatusOK, nil, nil)
}

func (h *BusinessProfileHandler) page(c *gin.Context, status int, override *models.Business, errs []string) {
	api := session.From(c).Client(h.api)

	var (
		business  *models.Business
		services  []models.Service
		timeSlots []models.TimeSlot
	)

	g, ctx := errgroup.WithContext(c.Request.Context())
	g.Go(func() error {
		var err error
		business, err = api.BusinessProfile(ctx)
		return err
	})
	g.Go(func() error {
		var err error
		services, err = api.Services(ctx)
		return err
	})
	g.Go(func() error {
		var err error
		timeSlots, err = api.TimeSlots(ctx)
		return err
	})

	if err := g.Wait(); err != nil {
		if h.failPage(c, err) {
			return
		}
		errs = append(errs, apiclient.Detail(err, "Failed to load business details"))
	}

	if override != nil {
		if business != nil {
			override.ProfileImage = business.ProfileImage
			override.CoverImage = business.CoverImage
		}
		business = override
	}

	render(c, status, "business_profile", "Business profile", gin.H{
		"Business":  business,
		"Services":  services,
		"TimeSlots": timeSlots,
		"Errors":    errs,
	})
}

// ======================================================
// PROFILE
// ======================================================

func (h *BusinessProfileHandler) Update(c *gin.Context) {
	var form businessProfileForm
	if err := c.ShouldBind(&form); err != nil {
		h.page(c, http.StatusBadRequest, &models.Business{
			BusinessName: form.Name,
			Email:        form.Email,
			Phone:        form.Phone,
			Address:      form.Address,
			Specialty:    form.Category,
			Description:  form.Description,
		}, validators.Messages(err))
		return
	}

	_, err := session.From(c).Client(h.api).UpdateBusinessProfile(c.Request.Context(), models.BusinessUpdate{
		Name:        strings.TrimSpace(form.Name),
		Email:       strings.TrimSpace(form.Email),
		Phone:       strings.TrimSpace(form.Phone),
		Address:     strings.TrimSpace(form.Address),
		Category:    strings.TrimSpace(form.Category),
		Description: strings.TrimSpace(form.Description),
	})
	writeAudit(h.audit, c, "profile_updated", "business", nil, err, nil)
	if err != nil {
		h.fail(c, err, "Failed to update profile", businessProfilePath)
		return
	}

	flash.Succeed(c, "Profile updated successfully!")
	redirect(c, businessProfilePath)
}

func (h *BusinessProfileHandler) Delete(c *gin.Context) {
	if c.PostForm("confirm") != "yes" {
		flash.Fail(c, "Please confirm the account deletion")
		redirect(c, businessProfilePath)
		return
	}

	err := session.From(c).Client(h.api).DeleteBusinessAccount(c.Request.Context())
	writeAudit(h.audit, c, "account_deleted", "business", nil, err, nil)
	if err != nil {
		h.fail(c, err, "Failed to delete account", businessProfilePath)
		return
	}

	h.sessions.Logout(c.Writer, c.Request)
	session.Set(c, session.Anonymous())
	flash.Succeed(c, "Account deleted successfully")
	redirect(c, "/")
}

// ======================================================
// IMAGES
// ======================================================

// UploadImage accepts the multipart "file" field, checks and resizes it
// locally, then forwards it to the backend.
func (h *BusinessProfileHandler) UploadImage(c *gin.Context) {
	kind, ok := models.ParseImageKind(c.Param("kind"))
	if !ok {
		NotFound(c)
		return
	}

	result := "error"
	defer func() {
		metrics.UploadsTotal.WithLabelValues(string(kind), result).Inc()
	}()

	tooLarge := fmt.Sprintf("File size must be less than %dMB", h.upload.MaxBytes>>20)

	// Leave room for the multipart envelope around the file itself.
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, h.upload.MaxBytes+1<<20)

	fh, err := c.FormFile("file")
	if err != nil {
		var mbe *http.MaxBytesError
		if errors.As(err, &mbe) {
			result = "too_large"
			flash.Fail(c, tooLarge)
		} else {
			result = "invalid"
			flash.Fail(c, "Please choose an image to upload")
		}
		redirect(c, businessProfilePath)
		return
	}
	if fh.Size > h.upload.MaxBytes {
		result = "too_large"
		flash.Fail(c, tooLarge)
		redirect(c, businessProfilePath)
		return
	}

	f, err := fh.Open()
	if err != nil {
		flash.Fail(c, "Failed to upload image")
		redirect(c, businessProfilePath)
		return
	}
	defer f.Close()

	img, err := imaging.Prepare(f, fh.Filename, h.upload)
	switch {
	case errors.Is(err, imaging.ErrTooLarge):
		result = "too_large"
		flash.Fail(c, tooLarge)
		redirect(c, businessProfilePath)
		return
	case errors.Is(err, imaging.ErrTooManyPixels):
		result = "too_large"
		flash.Fail(c, "Image dimensions are too large")
		redirect(c, businessProfilePath)
		return
	case errors.Is(err, imaging.ErrUnsupported), errors.Is(err, imaging.ErrCorruptedImage):
		result = "invalid"
		flash.Fail(c, "Please upload a JPEG, PNG, GIF or WebP image")
		redirect(c, businessProfilePath)
		return
	case err != nil:
		h.log.Error("image preparation failed", zap.Error(err))
		flash.Fail(c, "Failed to upload image")
		redirect(c, businessProfilePath)
		return
	}

	_, err = session.From(c).Client(h.api).UploadBusinessImage(
		c.Request.Context(), kind, img.Filename, img.ContentType, img.Data,
	)
	writeAudit(h.audit, c, "image_uploaded", "business", nil, err, map[string]any{
		"kind":    kind,
		"bytes":   len(img.Data),
		"resized": img.Resized,
	})
	if err != nil {
		h.fail(c, err, "Failed to upload image", businessProfilePath)
		return
	}

	result = "ok"
	if kind == models.ImageCover {
		flash.Succeed(c, "Cover image uploaded successfully!")
	} else {
		flash.Succeed(c, "Profile image uploaded successfully!")
	}
	redirect(c, businessProfilePath)
}

func (h *BusinessProfileHandler) DeleteImage(c *gin.Context) {
	kind, ok := models.ParseImageKind(c.Param("kind"))
	if !ok {
		NotFound(c)
		return
	}

	err := session.From(c).Client(h.api).DeleteBusinessImage(c.Request.Context(), kind)
	writeAudit(h.audit, c, "image_deleted", "business", nil, err, map[string]any{"kind": kind})
	if err != nil {
		h.fail(c, err, "Failed to delete image", businessProfilePath)
		return
	}

	flash.Succeed(c, "Image removed")
	redirect(c, businessProfilePath)
}
