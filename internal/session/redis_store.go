package session

import (
	"fmt"
	"net/http"

	"github.com/go-redis/redis/v8"
	"github.com/google/uuid"
)

const redisPrefix = "session:"

// RedisStore keeps the Record in a redis hash; the cookie only carries
// the session id.
type RedisStore struct {
	client *redis.Client
	opts   CookieOptions
}

func NewRedisStore(client *redis.Client, opts CookieOptions) *RedisStore {
	return &RedisStore{client: client, opts: opts}
}

func (s *RedisStore) Load(r *http.Request) (Record, error) {
	id, ok := s.opts.value(r)
	if !ok {
		return Record{}, ErrNoSession
	}

	fields, err := s.client.HGetAll(r.Context(), redisPrefix+id).Result()
	if err != nil {
		return Record{}, fmt.Errorf("session: redis load: %w", err)
	}
	if len(fields) == 0 {
		return Record{}, ErrNoSession
	}

	return Record{
		Token:  fields["token"],
		Role:   fields["role"],
		UserID: fields["user_id"],
	}, nil
}

// Save always issues a fresh id so a login never reuses a pre-login id.
func (s *RedisStore) Save(w http.ResponseWriter, r *http.Request, rec Record) error {
	ctx := r.Context()

	if old, ok := s.opts.value(r); ok {
		s.client.Del(ctx, redisPrefix+old)
	}

	id := uuid.NewString()
	key := redisPrefix + id

	pipe := s.client.TxPipeline()
	pipe.HSet(ctx, key, map[string]any{
		"token":   rec.Token,
		"role":    rec.Role,
		"user_id": rec.UserID,
	})
	pipe.Expire(ctx, key, s.opts.TTL)
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("session: redis save: %w", err)
	}

	s.opts.set(w, id)
	return nil
}

func (s *RedisStore) Clear(w http.ResponseWriter, r *http.Request) error {
	s.opts.expire(w)

	id, ok := s.opts.value(r)
	if !ok {
		return nil
	}
	if err := s.client.Del(r.Context(), redisPrefix+id).Err(); err != nil {
		return fmt.Errorf("session: redis clear: %w", err)
	}
	return nil
}
