// Package flash carries one-shot notifications across a redirect.
package flash

import (
	"encoding/base64"
	"encoding/json"
	"net/http"

	"github.com/gin-gonic/gin"
)

const cookieName = "appointme_flash"

type Kind string

const (
	Success Kind = "success"
	Error   Kind = "error"
	Info    Kind = "info"
)

type Message struct {
	Kind Kind   `json:"k"`
	Text string `json:"t"`
}

// Set queues a notification for the next rendered page.
func Set(c *gin.Context, kind Kind, text string) {
	b, err := json.Marshal(Message{Kind: kind, Text: text})
	if err != nil {
		return
	}
	http.SetCookie(c.Writer, &http.Cookie{
		Name:     cookieName,
		Value:    base64.RawURLEncoding.EncodeToString(b),
		Path:     "/",
		MaxAge:   60,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}

func Succeed(c *gin.Context, text string) { Set(c, Success, text) }

func Fail(c *gin.Context, text string) { Set(c, Error, text) }

// Pop returns and clears the pending notification, if any.
func Pop(c *gin.Context) *Message {
	raw, err := c.Cookie(cookieName)
	if err != nil || raw == "" {
		return nil
	}

	http.SetCookie(c.Writer, &http.Cookie{
		Name:     cookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})

	b, err := base64.RawURLEncoding.DecodeString(raw)
	if err != nil {
		return nil
	}
	var m Message
	if err := json.Unmarshal(b, &m); err != nil || m.Text == "" {
		return nil
	}
	return &m
}
