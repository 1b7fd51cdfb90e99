package middleware

import (
	"net/http"
	"net/url"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/appointme-client/internal/models"
	"github.com/BruksfildServices01/appointme-client/internal/session"
)

// LoadSession restores the request's session once and stores it in the
// gin context for every later handler.
func LoadSession(m *session.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		session.Set(c, m.Restore(c.Writer, c.Request))
		c.Next()
	}
}

// RequireRole lets through authenticated sessions whose role is one of
// roles. Anonymous visitors go to the login page, with a return path
// for GETs. Sessions of another role go to their own dashboard.
func RequireRole(roles ...models.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		s := session.From(c)

		if !s.IsAuthenticated() {
			from := ""
			if c.Request.Method == http.MethodGet {
				from = c.Request.URL.RequestURI()
			}
			c.Redirect(http.StatusSeeOther, LoginPath(from))
			c.Abort()
			return
		}

		for _, role := range roles {
			if s.Is(role) {
				c.Next()
				return
			}
		}

		c.Redirect(http.StatusSeeOther, s.Role().Dashboard())
		c.Abort()
	}
}

// RedirectAuthenticated keeps signed-in users away from the login and
// register pages.
func RedirectAuthenticated() gin.HandlerFunc {
	return func(c *gin.Context) {
		s := session.From(c)
		if s.IsAuthenticated() {
			c.Redirect(http.StatusSeeOther, SafeReturnPath(c.Query("from"), s.Role().Dashboard()))
			c.Abort()
			return
		}
		c.Next()
	}
}

func LoginPath(from string) string {
	if from == "" || from == "/" {
		return "/login"
	}
	return "/login?from=" + url.QueryEscape(from)
}

// SafeReturnPath accepts only local absolute paths.
func SafeReturnPath(from, fallback string) string {
	if from == "" {
		return fallback
	}
	u, err := url.Parse(from)
	if err != nil || u.IsAbs() || u.Host != "" || len(u.Path) == 0 || u.Path[0] != '/' {
		return fallback
	}
	if len(from) > 1 && (from[1] == '/' || from[1] == '\\') {
		return fallback
	}
	return from
}
