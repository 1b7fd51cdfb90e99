package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/csrf"

	"github.com/BruksfildServices01/appointme-client/internal/flash"
	"github.com/BruksfildServices01/appointme-client/internal/session"
)

// render executes the "base" layout with the page body named page.
func render(c *gin.Context, status int, page, title string, data gin.H) {
	if data == nil {
		data = gin.H{}
	}
	data["Page"] = page
	data["Title"] = title
	data["Session"] = session.From(c)
	data["Flash"] = flash.Pop(c)
	data["CSRF"] = csrf.TemplateField(c.Request)

	c.HTML(status, "base", data)
}

func renderError(c *gin.Context, status int, title, message string) {
	render(c, status, "error", title, gin.H{"Message": message})
}

func redirect(c *gin.Context, path string) {
	c.Redirect(http.StatusSeeOther, path)
}

// NotFound renders the error page for unknown routes.
func NotFound(c *gin.Context) {
	renderError(c, http.StatusNotFound, "Page not found", "The page you are looking for does not exist.")
}

func parseID(c *gin.Context, name string) (uint, bool) {
	id, err := strconv.ParseUint(c.Param(name), 10, 64)
	if err != nil || id == 0 {
		return 0, false
	}
	return uint(id), true
}
