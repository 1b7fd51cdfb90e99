package session

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/BruksfildServices01/appointme-client/internal/apiclient"
	"github.com/BruksfildServices01/appointme-client/internal/models"
)

type memStore struct {
	rec     Record
	has     bool
	loadErr error
	cleared int
	saved   int
}

func (s *memStore) Load(*http.Request) (Record, error) {
	if s.loadErr != nil {
		return Record{}, s.loadErr
	}
	if !s.has {
		return Record{}, ErrNoSession
	}
	return s.rec, nil
}

func (s *memStore) Save(_ http.ResponseWriter, _ *http.Request, rec Record) error {
	s.rec, s.has = rec, true
	s.saved++
	return nil
}

func (s *memStore) Clear(http.ResponseWriter, *http.Request) error {
	s.rec, s.has = Record{}, false
	s.cleared++
	return nil
}

type stubBackend struct {
	loginFn   func(ctx context.Context, role models.Role, email, password string) (*models.LoginResponse, error)
	profileFn func(ctx context.Context, token string, role models.Role) (models.Profile, error)
}

func (b *stubBackend) Login(ctx context.Context, role models.Role, email, password string) (*models.LoginResponse, error) {
	return b.loginFn(ctx, role, email, password)
}

func (b *stubBackend) Profile(ctx context.Context, token string, role models.Role) (models.Profile, error) {
	return b.profileFn(ctx, token, role)
}

func newRequest() (*httptest.ResponseRecorder, *http.Request) {
	return httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil)
}

func TestRestore_NoSessionIsAnonymous(t *testing.T) {
	store := &memStore{}
	m := NewManager(store, &stubBackend{
		profileFn: func(context.Context, string, models.Role) (models.Profile, error) {
			t.Fatalf("backend must not be called without a session")
			return nil, nil
		},
	}, nil)

	w, r := newRequest()
	s := m.Restore(w, r)

	if s.IsAuthenticated() {
		t.Fatalf("expected anonymous session")
	}
	if store.cleared != 0 {
		t.Fatalf("nothing to clear")
	}
}

func TestRestore_ValidSession(t *testing.T) {
	store := &memStore{has: true, rec: Record{Token: "tok", Role: "business", UserID: "9"}}
	m := NewManager(store, &stubBackend{
		profileFn: func(_ context.Context, token string, role models.Role) (models.Profile, error) {
			if token != "tok" || role != models.RoleBusiness {
				t.Fatalf("unexpected args %s %s", token, role)
			}
			return &models.Business{ID: 9, BusinessName: "Salon"}, nil
		},
	}, nil)

	w, r := newRequest()
	s := m.Restore(w, r)

	if !s.Is(models.RoleBusiness) || s.UserID() != 9 {
		t.Fatalf("expected authenticated business 9, got %+v", s)
	}
	b, ok := s.Business()
	if !ok || b.BusinessName != "Salon" {
		t.Fatalf("expected business profile")
	}
	if _, ok := s.Customer(); ok {
		t.Fatalf("business session has no customer profile")
	}
	if store.cleared != 0 {
		t.Fatalf("valid session must not be cleared")
	}
}

func TestRestore_InvalidTokenClearsEverything(t *testing.T) {
	failures := []error{
		&apiclient.ServerError{Status: http.StatusNotFound},
		&apiclient.NetworkError{Op: "GET /customer/me", Err: errors.New("refused")},
		apiclient.ErrAuthExpired,
	}

	for _, failure := range failures {
		store := &memStore{has: true, rec: Record{Token: "tok", Role: "customer", UserID: "1"}}
		m := NewManager(store, &stubBackend{
			profileFn: func(context.Context, string, models.Role) (models.Profile, error) {
				return nil, failure
			},
		}, nil)

		w, r := newRequest()
		s := m.Restore(w, r)

		if s.IsAuthenticated() {
			t.Fatalf("%v: expected anonymous session", failure)
		}
		if store.cleared != 1 || store.has {
			t.Fatalf("%v: expected all persisted fields cleared", failure)
		}
	}
}

func TestRestore_ExpiredJWTSkipsBackend(t *testing.T) {
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub": "1",
		"exp": time.Now().Add(-time.Minute).Unix(),
	}).SignedString([]byte("secret"))
	if err != nil {
		t.Fatalf("sign: %v", err)
	}

	store := &memStore{has: true, rec: Record{Token: token, Role: "customer", UserID: "1"}}
	m := NewManager(store, &stubBackend{
		profileFn: func(context.Context, string, models.Role) (models.Profile, error) {
			t.Fatalf("expired token must not reach the backend")
			return nil, nil
		},
	}, nil)

	w, r := newRequest()
	if s := m.Restore(w, r); s.IsAuthenticated() {
		t.Fatalf("expected anonymous session")
	}
	if store.cleared != 1 {
		t.Fatalf("expected store cleared")
	}
}

func TestRestore_MalformedRecordCleared(t *testing.T) {
	records := []Record{
		{Token: "tok", Role: "admin", UserID: "1"},
		{Token: "tok", Role: "customer", UserID: "abc"},
		{Token: "tok", Role: "customer"},
	}

	for _, rec := range records {
		store := &memStore{has: true, rec: rec}
		m := NewManager(store, &stubBackend{
			profileFn: func(context.Context, string, models.Role) (models.Profile, error) {
				t.Fatalf("malformed record must not reach the backend")
				return nil, nil
			},
		}, nil)

		w, r := newRequest()
		if s := m.Restore(w, r); s.IsAuthenticated() {
			t.Fatalf("%+v: expected anonymous", rec)
		}
		if store.cleared != 1 {
			t.Fatalf("%+v: expected cleared", rec)
		}
	}
}

func TestRestore_CorruptStoreCleared(t *testing.T) {
	store := &memStore{loadErr: errCorruptCookie}
	m := NewManager(store, &stubBackend{}, nil)

	w, r := newRequest()
	if s := m.Restore(w, r); s.IsAuthenticated() {
		t.Fatalf("expected anonymous")
	}
	if store.cleared != 1 {
		t.Fatalf("expected corrupt session cleared")
	}
}

func TestLogin_PersistsIdentity(t *testing.T) {
	store := &memStore{}
	m := NewManager(store, &stubBackend{
		loginFn: func(_ context.Context, role models.Role, email, password string) (*models.LoginResponse, error) {
			if role != models.RoleCustomer || email != "ana@example.com" || password != "secret1" {
				t.Fatalf("unexpected args %s %s %s", role, email, password)
			}
			return &models.LoginResponse{AccessToken: "tok", TokenType: "bearer", UserType: "customer", UserID: 5}, nil
		},
		profileFn: func(context.Context, string, models.Role) (models.Profile, error) {
			return &models.Customer{ID: 5, FullName: "Ana"}, nil
		},
	}, nil)

	w, r := newRequest()
	s, err := m.Login(context.Background(), w, r, "ana@example.com", "secret1", models.RoleCustomer)
	if err != nil {
		t.Fatalf("login: %v", err)
	}

	if !s.Is(models.RoleCustomer) || s.DisplayName() != "Ana" {
		t.Fatalf("unexpected session %+v", s)
	}
	if store.rec != (Record{Token: "tok", Role: "customer", UserID: "5"}) {
		t.Fatalf("unexpected persisted record %+v", store.rec)
	}
}

func TestLogin_ProfileFailureKeepsAuthenticated(t *testing.T) {
	store := &memStore{}
	m := NewManager(store, &stubBackend{
		loginFn: func(context.Context, models.Role, string, string) (*models.LoginResponse, error) {
			return &models.LoginResponse{AccessToken: "tok", UserType: "business", UserID: 2}, nil
		},
		profileFn: func(context.Context, string, models.Role) (models.Profile, error) {
			return nil, &apiclient.ServerError{Status: http.StatusInternalServerError}
		},
	}, nil)

	w, r := newRequest()
	s, err := m.Login(context.Background(), w, r, "b@example.com", "secret1", models.RoleBusiness)
	if err != nil {
		t.Fatalf("profile failure must not fail login: %v", err)
	}
	if !s.IsAuthenticated() || s.HasProfile() {
		t.Fatalf("expected authenticated session without profile")
	}
	if !store.has {
		t.Fatalf("identity must stay persisted")
	}
}

func TestLogin_RejectedLeavesAnonymous(t *testing.T) {
	store := &memStore{}
	m := NewManager(store, &stubBackend{
		loginFn: func(context.Context, models.Role, string, string) (*models.LoginResponse, error) {
			return nil, &apiclient.ServerError{Status: http.StatusUnauthorized, Detail: "Incorrect email or password"}
		},
	}, nil)

	w, r := newRequest()
	s, err := m.Login(context.Background(), w, r, "x@example.com", "nope", models.RoleCustomer)
	if err == nil {
		t.Fatalf("expected error")
	}
	if s.IsAuthenticated() || store.saved != 0 {
		t.Fatalf("failed login must not persist anything")
	}
	if apiclient.Detail(err, "Login failed") != "Incorrect email or password" {
		t.Fatalf("expected backend detail to surface")
	}
}

func TestLogout_ClearsUnconditionally(t *testing.T) {
	store := &memStore{has: true, rec: Record{Token: "tok", Role: "customer", UserID: "1"}}
	m := NewManager(store, &stubBackend{}, nil)

	w, r := newRequest()
	if s := m.Logout(w, r); s.IsAuthenticated() {
		t.Fatalf("expected anonymous after logout")
	}
	if store.has || store.cleared != 1 {
		t.Fatalf("expected store cleared")
	}
}
