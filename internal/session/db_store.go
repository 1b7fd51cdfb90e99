package session

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/BruksfildServices01/appointme-client/internal/models"
)

// ErrSessionNotFound is returned by a Repository for unknown or expired ids.
var ErrSessionNotFound = errors.New("session: not found")

type Repository interface {
	Get(ctx context.Context, id string) (*models.WebSession, error)
	Put(ctx context.Context, s *models.WebSession) error
	Delete(ctx context.Context, id string) error
}

// DBStore keeps the Record in the web_sessions table.
type DBStore struct {
	repo Repository
	opts CookieOptions
	now  func() time.Time
}

func NewDBStore(repo Repository, opts CookieOptions) *DBStore {
	return &DBStore{repo: repo, opts: opts, now: time.Now}
}

func (s *DBStore) Load(r *http.Request) (Record, error) {
	id, ok := s.opts.value(r)
	if !ok {
		return Record{}, ErrNoSession
	}

	ws, err := s.repo.Get(r.Context(), id)
	if errors.Is(err, ErrSessionNotFound) {
		return Record{}, ErrNoSession
	}
	if err != nil {
		return Record{}, fmt.Errorf("session: db load: %w", err)
	}

	return Record{Token: ws.Token, Role: ws.Role, UserID: ws.UserID}, nil
}

func (s *DBStore) Save(w http.ResponseWriter, r *http.Request, rec Record) error {
	ctx := r.Context()

	if old, ok := s.opts.value(r); ok {
		_ = s.repo.Delete(ctx, old)
	}

	ws := &models.WebSession{
		ID:        uuid.NewString(),
		Token:     rec.Token,
		Role:      rec.Role,
		UserID:    rec.UserID,
		ExpiresAt: s.now().Add(s.opts.TTL),
	}
	if err := s.repo.Put(ctx, ws); err != nil {
		return fmt.Errorf("session: db save: %w", err)
	}

	s.opts.set(w, ws.ID)
	return nil
}

func (s *DBStore) Clear(w http.ResponseWriter, r *http.Request) error {
	s.opts.expire(w)

	id, ok := s.opts.value(r)
	if !ok {
		return nil
	}
	if err := s.repo.Delete(r.Context(), id); err != nil {
		return fmt.Errorf("session: db clear: %w", err)
	}
	return nil
}
