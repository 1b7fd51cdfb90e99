package session

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"go.uber.org/zap"

	"github.com/BruksfildServices01/appointme-client/internal/apiclient"
	"github.com/BruksfildServices01/appointme-client/internal/metrics"
	"github.com/BruksfildServices01/appointme-client/internal/models"
)

var errTokenExpired = errors.New("session: token expired")

// Backend is what the Manager needs from the REST backend.
type Backend interface {
	Login(ctx context.Context, role models.Role, email, password string) (*models.LoginResponse, error)
	Profile(ctx context.Context, token string, role models.Role) (models.Profile, error)
}

type apiBackend struct {
	api *apiclient.Client
}

func NewAPIBackend(api *apiclient.Client) Backend {
	return &apiBackend{api: api}
}

func (b *apiBackend) Login(ctx context.Context, role models.Role, email, password string) (*models.LoginResponse, error) {
	return b.api.Login(ctx, role, email, password)
}

func (b *apiBackend) Profile(ctx context.Context, token string, role models.Role) (models.Profile, error) {
	return b.api.WithToken(token).Profile(ctx, role)
}

// Manager owns the persisted identity. It is the only writer of the Store.
type Manager struct {
	store   Store
	backend Backend
	log     *zap.Logger
	now     func() time.Time
}

func NewManager(store Store, backend Backend, log *zap.Logger) *Manager {
	if log == nil {
		log = zap.NewNop()
	}
	return &Manager{
		store:   store,
		backend: backend,
		log:     log,
		now:     time.Now,
	}
}

// Restore rebuilds the session of r from the Store. Any failure to
// validate the persisted identity clears it and yields an anonymous
// session; Restore never fails.
func (m *Manager) Restore(w http.ResponseWriter, r *http.Request) *Session {
	rec, err := m.store.Load(r)
	if errors.Is(err, ErrNoSession) || (err == nil && rec.Empty()) {
		metrics.SessionRestoresTotal.WithLabelValues("anonymous").Inc()
		return Anonymous()
	}
	if err != nil {
		return m.invalidate(w, r, "load", err)
	}
	if !rec.Complete() {
		return m.invalidate(w, r, "incomplete", nil)
	}

	role, ok := models.ParseRole(rec.Role)
	if !ok {
		return m.invalidate(w, r, "role", nil)
	}
	userID, err := strconv.ParseUint(rec.UserID, 10, 64)
	if err != nil {
		return m.invalidate(w, r, "user_id", err)
	}
	if err := m.checkExpiry(rec.Token); err != nil {
		return m.invalidate(w, r, "expired", err)
	}

	profile, err := m.backend.Profile(r.Context(), rec.Token, role)
	if err != nil {
		return m.invalidate(w, r, string(apiclient.Classify(err)), err)
	}

	metrics.SessionRestoresTotal.WithLabelValues("authenticated").Inc()
	return authenticated(role, uint(userID), rec.Token, profile)
}

func (m *Manager) invalidate(w http.ResponseWriter, r *http.Request, reason string, err error) *Session {
	metrics.SessionRestoresTotal.WithLabelValues("invalidated").Inc()
	m.log.Debug("session invalidated", zap.String("reason", reason), zap.Error(err))

	if cerr := m.store.Clear(w, r); cerr != nil {
		m.log.Warn("failed to clear session", zap.Error(cerr))
	}
	return Anonymous()
}

// checkExpiry rejects JWTs whose exp already passed. Opaque tokens are
// left to the backend.
func (m *Manager) checkExpiry(token string) error {
	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, claims); err != nil {
		return nil
	}

	exp, err := claims.GetExpirationTime()
	if err != nil || exp == nil {
		return nil
	}
	if !exp.After(m.now()) {
		return errTokenExpired
	}
	return nil
}

// Login authenticates against the role's login endpoint and persists the
// identity. The profile is fetched best-effort: when it fails the
// returned session is authenticated but has no profile.
func (m *Manager) Login(
	ctx context.Context,
	w http.ResponseWriter,
	r *http.Request,
	email string,
	password string,
	role models.Role,
) (*Session, error) {

	resp, err := m.backend.Login(ctx, role, email, password)
	if err != nil {
		metrics.LoginsTotal.WithLabelValues(role.String(), "rejected").Inc()
		return Anonymous(), err
	}
	if resp.AccessToken == "" {
		metrics.LoginsTotal.WithLabelValues(role.String(), "rejected").Inc()
		return Anonymous(), &apiclient.ServerError{Op: "login", Status: http.StatusBadGateway, Detail: "Login failed"}
	}

	if rt, ok := models.ParseRole(resp.UserType); ok {
		role = rt
	}

	rec := Record{
		Token:  resp.AccessToken,
		Role:   role.String(),
		UserID: strconv.FormatUint(uint64(resp.UserID), 10),
	}
	if err := m.store.Save(w, r, rec); err != nil {
		metrics.LoginsTotal.WithLabelValues(role.String(), "error").Inc()
		return Anonymous(), fmt.Errorf("session: persist login: %w", err)
	}

	metrics.LoginsTotal.WithLabelValues(role.String(), "ok").Inc()

	profile, err := m.backend.Profile(ctx, resp.AccessToken, role)
	if err != nil {
		m.log.Warn("profile fetch after login failed", zap.String("role", role.String()), zap.Error(err))
		profile = nil
	}

	return authenticated(role, resp.UserID, resp.AccessToken, profile), nil
}

// Logout clears the persisted identity unconditionally.
func (m *Manager) Logout(w http.ResponseWriter, r *http.Request) *Session {
	if err := m.store.Clear(w, r); err != nil {
		m.log.Warn("failed to clear session", zap.Error(err))
	}
	return Anonymous()
}
