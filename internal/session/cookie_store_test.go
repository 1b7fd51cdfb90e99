package session

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

func roundTrip(t *testing.T, w *httptest.ResponseRecorder) *http.Request {
	t.Helper()
	r := httptest.NewRequest(http.MethodGet, "/", nil)
	for _, c := range w.Result().Cookies() {
		r.AddCookie(c)
	}
	return r
}

func TestCookieStore_SaveLoad(t *testing.T) {
	store := NewCookieStore("secret", CookieOptions{TTL: time.Hour})
	rec := Record{Token: "tok", Role: "customer", UserID: "3"}

	w := httptest.NewRecorder()
	if err := store.Save(w, httptest.NewRequest(http.MethodGet, "/", nil), rec); err != nil {
		t.Fatalf("save: %v", err)
	}

	cookies := w.Result().Cookies()
	if len(cookies) != 1 || !cookies[0].HttpOnly || cookies[0].SameSite != http.SameSiteLaxMode {
		t.Fatalf("unexpected cookie %+v", cookies)
	}

	got, err := store.Load(roundTrip(t, w))
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if got != rec {
		t.Fatalf("expected %+v, got %+v", rec, got)
	}
}

func TestCookieStore_RejectsForeignKey(t *testing.T) {
	w := httptest.NewRecorder()
	_ = NewCookieStore("one", CookieOptions{TTL: time.Hour}).Save(w, httptest.NewRequest(http.MethodGet, "/", nil), Record{Token: "t", Role: "customer", UserID: "1"})

	_, err := NewCookieStore("two", CookieOptions{TTL: time.Hour}).Load(roundTrip(t, w))
	if !errors.Is(err, errCorruptCookie) {
		t.Fatalf("expected corrupt cookie, got %v", err)
	}
}

func TestCookieStore_MissingCookie(t *testing.T) {
	_, err := NewCookieStore("s", CookieOptions{}).Load(httptest.NewRequest(http.MethodGet, "/", nil))
	if !errors.Is(err, ErrNoSession) {
		t.Fatalf("expected ErrNoSession, got %v", err)
	}
}

func TestCookieStore_Clear(t *testing.T) {
	w := httptest.NewRecorder()
	_ = NewCookieStore("s", CookieOptions{}).Clear(w, httptest.NewRequest(http.MethodGet, "/", nil))

	cookies := w.Result().Cookies()
	if len(cookies) != 1 || cookies[0].MaxAge >= 0 || cookies[0].Name != CookieName {
		t.Fatalf("expected expiring cookie, got %+v", cookies)
	}
}
