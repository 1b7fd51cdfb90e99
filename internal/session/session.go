package session

import (
	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/appointme-client/internal/apiclient"
	"github.com/BruksfildServices01/appointme-client/internal/models"
)

const contextKey = "session"

// Session is the identity of one request. It is built once by the
// session middleware and never mutated afterwards.
type Session struct {
	authenticated bool
	role          models.Role
	userID        uint
	token         string
	profile       models.Profile
}

var anonymous = &Session{}

func Anonymous() *Session {
	return anonymous
}

func authenticated(role models.Role, userID uint, token string, profile models.Profile) *Session {
	return &Session{
		authenticated: true,
		role:          role,
		userID:        userID,
		token:         token,
		profile:       profile,
	}
}

func (s *Session) IsAuthenticated() bool { return s.authenticated }

func (s *Session) Role() models.Role { return s.role }

func (s *Session) Is(role models.Role) bool {
	return s.authenticated && s.role == role
}

func (s *Session) UserID() uint { return s.userID }

// Profile is nil when the profile could not be fetched after login.
func (s *Session) Profile() models.Profile { return s.profile }

func (s *Session) HasProfile() bool { return s.profile != nil }

func (s *Session) Customer() (*models.Customer, bool) {
	c, ok := s.profile.(*models.Customer)
	return c, ok
}

func (s *Session) Business() (*models.Business, bool) {
	b, ok := s.profile.(*models.Business)
	return b, ok
}

func (s *Session) DisplayName() string {
	if s.profile != nil {
		return s.profile.DisplayName()
	}
	return ""
}

// Client scopes api to this session's credentials. Anonymous sessions get
// the anonymous client.
func (s *Session) Client(api *apiclient.Client) *apiclient.Client {
	if !s.authenticated {
		return api
	}
	return api.WithToken(s.token)
}

func (s *Session) Token() string { return s.token }

func Set(c *gin.Context, s *Session) {
	c.Set(contextKey, s)
}

// From returns the request's session, anonymous when none was loaded.
func From(c *gin.Context) *Session {
	if v, ok := c.Get(contextKey); ok {
		if s, ok := v.(*Session); ok && s != nil {
			return s
		}
	}
	return anonymous
}
