package session

import (
	"errors"
	"net/http"
	"time"
)

// ErrNoSession reports that the request carries no persisted identity.
var ErrNoSession = errors.New("session: no session")

// Record is the persisted identity: bearer token, role and numeric user id,
// kept as the three strings the browser used to hold.
type Record struct {
	Token  string `json:"token"`
	Role   string `json:"role"`
	UserID string `json:"user_id"`
}

func (r Record) Complete() bool {
	return r.Token != "" && r.Role != "" && r.UserID != ""
}

func (r Record) Empty() bool {
	return r.Token == "" && r.Role == "" && r.UserID == ""
}

// Store persists a Record across requests.
type Store interface {
	Load(r *http.Request) (Record, error)
	Save(w http.ResponseWriter, r *http.Request, rec Record) error
	Clear(w http.ResponseWriter, r *http.Request) error
}

const CookieName = "appointme_session"

type CookieOptions struct {
	Name   string
	TTL    time.Duration
	Secure bool
}

func (o CookieOptions) name() string {
	if o.Name == "" {
		return CookieName
	}
	return o.Name
}

func (o CookieOptions) set(w http.ResponseWriter, value string) {
	http.SetCookie(w, &http.Cookie{
		Name:     o.name(),
		Value:    value,
		Path:     "/",
		MaxAge:   int(o.TTL.Seconds()),
		HttpOnly: true,
		Secure:   o.Secure,
		SameSite: http.SameSiteLaxMode,
	})
}

func (o CookieOptions) expire(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     o.name(),
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   o.Secure,
		SameSite: http.SameSiteLaxMode,
	})
}

func (o CookieOptions) value(r *http.Request) (string, bool) {
	c, err := r.Cookie(o.name())
	if err != nil || c.Value == "" {
		return "", false
	}
	return c.Value, true
}
