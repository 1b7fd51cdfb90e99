package routes

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/appointme-client/internal/apiclient"
	"github.com/BruksfildServices01/appointme-client/internal/config"
	"github.com/BruksfildServices01/appointme-client/internal/models"
	"github.com/BruksfildServices01/appointme-client/internal/session"
	"github.com/BruksfildServices01/appointme-client/internal/validators"
	"github.com/BruksfildServices01/appointme-client/internal/web"
)

type testApp struct {
	router  *gin.Engine
	backend *http.ServeMux
	store   *session.CookieStore

	profileCalls atomic.Int32
}

func newTestApp(t *testing.T) *testApp {
	t.Helper()
	gin.SetMode(gin.TestMode)
	if err := validators.Register(); err != nil {
		t.Fatalf("validators: %v", err)
	}

	mux := http.NewServeMux()
	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)

	api := apiclient.NewWithHTTPClient(srv.URL, &http.Client{Timeout: 2 * time.Second}, nil)
	store := session.NewCookieStore("test-secret", session.CookieOptions{TTL: time.Hour})
	sessions := session.NewManager(store, session.NewAPIBackend(api), nil)

	tmpl, err := web.Templates(web.Options{FileURL: api.FileURL})
	if err != nil {
		t.Fatalf("templates: %v", err)
	}

	r := gin.New()
	r.SetHTMLTemplate(tmpl)
	RegisterRoutes(r, Deps{
		Config: &config.Config{
			Timezone:           "UTC",
			LoginRatePerMinute: 100,
			UploadMaxBytes:     1 << 20,
			ImageMaxDimension:  512,
		},
		API:      api,
		Sessions: sessions,
	})

	return &testApp{router: r, backend: mux, store: store}
}

func (a *testApp) customerCookies(t *testing.T) []*http.Cookie {
	t.Helper()
	a.backend.HandleFunc("GET /customer/me", func(w http.ResponseWriter, r *http.Request) {
		a.profileCalls.Add(1)
		writeJSON(w, http.StatusOK, models.Customer{ID: 1, FullName: "Ana Lima", Email: "ana@example.com"})
	})

	w := httptest.NewRecorder()
	rec := session.Record{Token: "tok-ana", Role: "customer", UserID: "1"}
	if err := a.store.Save(w, httptest.NewRequest(http.MethodGet, "/", nil), rec); err != nil {
		t.Fatalf("save session: %v", err)
	}
	return w.Result().Cookies()
}

func (a *testApp) do(method, target string, form url.Values, cookies []*http.Cookie, accept string) *httptest.ResponseRecorder {
	var req *http.Request
	if form != nil {
		req = httptest.NewRequest(method, target, strings.NewReader(form.Encode()))
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	} else {
		req = httptest.NewRequest(method, target, nil)
	}
	if accept != "" {
		req.Header.Set("Accept", accept)
	}
	for _, c := range cookies {
		req.AddCookie(c)
	}

	w := httptest.NewRecorder()
	a.router.ServeHTTP(w, req)
	return w
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func sessionCleared(w *httptest.ResponseRecorder) bool {
	for _, c := range w.Result().Cookies() {
		if c.Name == session.CookieName && c.MaxAge < 0 {
			return true
		}
	}
	return false
}

func everyDayWindows() []models.TimeSlot {
	out := make([]models.TimeSlot, 0, 7)
	for d := 0; d < 7; d++ {
		out = append(out, models.TimeSlot{
			ID: uint(d + 1), BusinessID: 1, DayOfWeek: d,
			StartTime: "09:00:00", EndTime: "17:00:00",
			SlotDurationMinutes: 30, IsActive: true,
		})
	}
	return out
}

func TestHealth(t *testing.T) {
	app := newTestApp(t)

	w := app.do(http.MethodGet, "/health", nil, nil, "")
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
}

func TestOpsEndpoints_DoNotRestoreSession(t *testing.T) {
	app := newTestApp(t)
	cookies := app.customerCookies(t)

	for _, path := range []string{"/health", "/metrics"} {
		if w := app.do(http.MethodGet, path, nil, cookies, ""); w.Code != http.StatusOK {
			t.Fatalf("%s: expected 200, got %d", path, w.Code)
		}
	}
	if n := app.profileCalls.Load(); n != 0 {
		t.Fatalf("ops endpoints should not call the backend, got %d profile calls", n)
	}

	if w := app.do(http.MethodGet, "/api/me", nil, cookies, "application/json"); w.Code != http.StatusOK {
		t.Fatalf("/api/me: expected 200, got %d", w.Code)
	}
	if n := app.profileCalls.Load(); n != 1 {
		t.Fatalf("expected one profile call for /api/me, got %d", n)
	}
}

func TestHome_RendersSearchResults(t *testing.T) {
	app := newTestApp(t)

	var gotSpecialty string
	app.backend.HandleFunc("GET /public/businesses", func(w http.ResponseWriter, r *http.Request) {
		gotSpecialty = r.URL.Query().Get("specialty")
		writeJSON(w, http.StatusOK, []models.Business{{ID: 1, BusinessName: "Bright Smiles", Specialty: "Dental"}})
	})

	w := app.do(http.MethodGet, "/?q=teeth&specialty=all", nil, nil, "")
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	if !strings.Contains(w.Body.String(), "Bright Smiles") {
		t.Fatalf("expected business in page")
	}
	if gotSpecialty != "teeth" {
		t.Fatalf("\"all\" specialty should search by query, got %q", gotSpecialty)
	}
}

func TestHome_BackendDownShowsMessage(t *testing.T) {
	app := newTestApp(t)
	app.backend.HandleFunc("GET /public/businesses", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusInternalServerError, map[string]string{"detail": "boom"})
	})

	w := app.do(http.MethodGet, "/", nil, nil, "")
	if w.Code != http.StatusOK {
		t.Fatalf("expected page to render, got %d", w.Code)
	}
	if !strings.Contains(w.Body.String(), "Failed to load businesses") {
		t.Fatalf("expected search error message")
	}
}

func TestCustomerPages_RequireLogin(t *testing.T) {
	app := newTestApp(t)

	w := app.do(http.MethodGet, "/appointments", nil, nil, "")
	if w.Code != http.StatusSeeOther {
		t.Fatalf("expected 303, got %d", w.Code)
	}
	if loc := w.Header().Get("Location"); loc != "/login?from=%2Fappointments" {
		t.Fatalf("unexpected redirect %s", loc)
	}
}

func TestLogin_PersistsSessionAndRedirects(t *testing.T) {
	app := newTestApp(t)

	app.backend.HandleFunc("POST /auth/customer/login", func(w http.ResponseWriter, r *http.Request) {
		var creds models.Credentials
		_ = json.NewDecoder(r.Body).Decode(&creds)
		if creds.Email != "ana@example.com" || creds.Password != "secret1" {
			writeJSON(w, http.StatusUnauthorized, map[string]string{"detail": "Incorrect email or password"})
			return
		}
		writeJSON(w, http.StatusOK, models.LoginResponse{AccessToken: "tok-ana", TokenType: "bearer", UserType: "customer", UserID: 1})
	})
	app.backend.HandleFunc("GET /customer/me", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, models.Customer{ID: 1, FullName: "Ana Lima"})
	})

	form := url.Values{"email": {"ana@example.com"}, "password": {"secret1"}, "role": {"customer"}, "from": {"/appointments"}}
	w := app.do(http.MethodPost, "/login", form, nil, "")
	if w.Code != http.StatusSeeOther {
		t.Fatalf("expected 303, got %d", w.Code)
	}
	if loc := w.Header().Get("Location"); loc != "/appointments" {
		t.Fatalf("expected return path honoured, got %s", loc)
	}

	var saved bool
	for _, c := range w.Result().Cookies() {
		if c.Name == session.CookieName && c.MaxAge > 0 {
			saved = true
		}
	}
	if !saved {
		t.Fatalf("expected session cookie")
	}
}

func TestLogin_RejectedKeepsAnonymous(t *testing.T) {
	app := newTestApp(t)
	app.backend.HandleFunc("POST /auth/business/login", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusUnauthorized, map[string]string{"detail": "Incorrect email or password"})
	})

	form := url.Values{"email": {"shop@example.com"}, "password": {"nope"}, "role": {"business"}}
	w := app.do(http.MethodPost, "/login", form, nil, "")
	if w.Code != http.StatusSeeOther {
		t.Fatalf("expected 303, got %d", w.Code)
	}
	if loc := w.Header().Get("Location"); loc != "/login?role=business" {
		t.Fatalf("unexpected redirect %s", loc)
	}
	for _, c := range w.Result().Cookies() {
		if c.Name == session.CookieName && c.MaxAge > 0 {
			t.Fatalf("rejected login must not persist a session")
		}
	}
}

func TestAuthExpired_PageClearsSessionAndGoesToLogin(t *testing.T) {
	app := newTestApp(t)
	cookies := app.customerCookies(t)

	app.backend.HandleFunc("GET /customer/appointments", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusUnauthorized, map[string]string{"detail": "Could not validate credentials"})
	})

	w := app.do(http.MethodGet, "/appointments", nil, cookies, "")
	if w.Code != http.StatusSeeOther {
		t.Fatalf("expected 303, got %d", w.Code)
	}
	if loc := w.Header().Get("Location"); loc != "/login" {
		t.Fatalf("expected /login, got %s", loc)
	}
	if !sessionCleared(w) {
		t.Fatalf("expected session cookie cleared")
	}
}

func TestAuthExpired_MutationClearsSession(t *testing.T) {
	app := newTestApp(t)
	cookies := app.customerCookies(t)

	app.backend.HandleFunc("GET /customer/appointments", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusUnauthorized, map[string]string{"detail": "expired"})
	})

	w := app.do(http.MethodPost, "/appointments/9/cancel", url.Values{}, cookies, "")
	if w.Code != http.StatusSeeOther || w.Header().Get("Location") != "/login" {
		t.Fatalf("expected redirect to /login, got %d %s", w.Code, w.Header().Get("Location"))
	}
	if !sessionCleared(w) {
		t.Fatalf("expected session cookie cleared")
	}
}

func TestAuthExpired_JSONAnswers401(t *testing.T) {
	app := newTestApp(t)
	cookies := app.customerCookies(t)

	app.backend.HandleFunc("GET /public/businesses/{id}/slots", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusUnauthorized, map[string]string{"detail": "expired"})
	})
	app.backend.HandleFunc("GET /public/businesses/{id}/booked-slots", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, models.BookedSlots{})
	})

	w := app.do(http.MethodGet, "/api/businesses/1/slots", nil, cookies, "application/json")
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", w.Code)
	}
	if !strings.Contains(w.Body.String(), "auth_expired") {
		t.Fatalf("expected auth_expired code, got %s", w.Body.String())
	}
	if !sessionCleared(w) {
		t.Fatalf("expected session cookie cleared")
	}
}

func TestSlotsAPI_ListsFreeSlots(t *testing.T) {
	app := newTestApp(t)
	date := time.Now().UTC().AddDate(0, 0, 3).Format("2006-01-02")

	app.backend.HandleFunc("GET /public/businesses/{id}/slots", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, everyDayWindows())
	})
	app.backend.HandleFunc("GET /public/businesses/{id}/booked-slots", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, models.BookedSlots{BookedSlots: []string{"09:00:00"}})
	})

	w := app.do(http.MethodGet, "/api/businesses/1/slots?date="+date, nil, nil, "application/json")
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}
	body := w.Body.String()
	if strings.Contains(body, `"09:00"`) {
		t.Fatalf("booked slot must not be offered: %s", body)
	}
	if !strings.Contains(body, `"09:30"`) {
		t.Fatalf("expected 09:30 offered: %s", body)
	}
}

func TestSlotsAPI_RejectsPastDate(t *testing.T) {
	app := newTestApp(t)

	w := app.do(http.MethodGet, "/api/businesses/1/slots?date=2001-01-01", nil, nil, "application/json")
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", w.Code)
	}
	if !strings.Contains(w.Body.String(), "past_date") {
		t.Fatalf("expected past_date code, got %s", w.Body.String())
	}
}

func TestBook_CreatesAppointment(t *testing.T) {
	app := newTestApp(t)
	cookies := app.customerCookies(t)
	date := time.Now().UTC().AddDate(0, 0, 2).Format("2006-01-02")

	var (
		mu      sync.Mutex
		created models.AppointmentCreate
		auth    string
	)
	app.backend.HandleFunc("GET /public/businesses/{id}/services", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, []map[string]any{
			{"id": 5, "business_id": 1, "name": "Cleaning", "price": "80.00", "duration_minutes": 45, "is_active": true},
		})
	})
	app.backend.HandleFunc("GET /public/businesses/{id}/slots", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, everyDayWindows())
	})
	app.backend.HandleFunc("GET /public/businesses/{id}/booked-slots", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, models.BookedSlots{})
	})
	app.backend.HandleFunc("POST /customer/appointments", func(w http.ResponseWriter, r *http.Request) {
		mu.Lock()
		defer mu.Unlock()
		auth = r.Header.Get("Authorization")
		if err := json.NewDecoder(r.Body).Decode(&created); err != nil {
			t.Errorf("decode: %v", err)
		}
		writeJSON(w, http.StatusCreated, models.Appointment{ID: 77, BusinessID: 1, Status: "pending"})
	})

	form := url.Values{"service_id": {"5"}, "date": {date}, "time": {"10:00"}}
	w := app.do(http.MethodPost, "/business/1/book", form, cookies, "")
	if w.Code != http.StatusSeeOther {
		t.Fatalf("expected 303, got %d", w.Code)
	}
	if loc := w.Header().Get("Location"); loc != "/appointments" {
		t.Fatalf("expected redirect to /appointments, got %s", loc)
	}

	mu.Lock()
	defer mu.Unlock()
	if auth != "Bearer tok-ana" {
		t.Fatalf("expected bearer token, got %q", auth)
	}
	if created.AppointmentDate != date || created.AppointmentTime != "10:00:00" || created.DurationMinutes != 45 {
		t.Fatalf("unexpected body %+v", created)
	}
}

func TestBook_InvalidFormGoesBack(t *testing.T) {
	app := newTestApp(t)
	cookies := app.customerCookies(t)

	form := url.Values{"service_id": {"5"}, "date": {"2030-01-07"}}
	w := app.do(http.MethodPost, "/business/1/book", form, cookies, "")
	if w.Code != http.StatusSeeOther {
		t.Fatalf("expected 303, got %d", w.Code)
	}
	if loc := w.Header().Get("Location"); loc != "/business/1?date=2030-01-07" {
		t.Fatalf("unexpected redirect %s", loc)
	}
}

func TestBusinessPages_RejectCustomers(t *testing.T) {
	app := newTestApp(t)
	cookies := app.customerCookies(t)

	w := app.do(http.MethodGet, "/business/dashboard", nil, cookies, "")
	if w.Code != http.StatusSeeOther || w.Header().Get("Location") != "/dashboard" {
		t.Fatalf("expected customer sent to own dashboard, got %d %s", w.Code, w.Header().Get("Location"))
	}
}

func TestMe_Anonymous(t *testing.T) {
	app := newTestApp(t)

	w := app.do(http.MethodGet, "/api/me", nil, nil, "application/json")
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	if !strings.Contains(w.Body.String(), `"authenticated":false`) {
		t.Fatalf("unexpected body %s", w.Body.String())
	}
}

func TestUnknownRoute_RendersNotFound(t *testing.T) {
	app := newTestApp(t)

	w := app.do(http.MethodGet, "/nowhere", nil, nil, "")
	if w.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", w.Code)
	}
}
