package session

import (
	"crypto/rand"
	"crypto/sha256"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"golang.org/x/crypto/nacl/secretbox"
)

var errCorruptCookie = errors.New("session: corrupt cookie")

// CookieStore keeps the Record in the cookie itself, sealed with
// NaCl secretbox so it is neither readable nor forgeable by the browser.
type CookieStore struct {
	key  [32]byte
	opts CookieOptions
}

func NewCookieStore(secret string, opts CookieOptions) *CookieStore {
	return &CookieStore{
		key:  sha256.Sum256([]byte(secret)),
		opts: opts,
	}
}

func (s *CookieStore) Load(r *http.Request) (Record, error) {
	v, ok := s.opts.value(r)
	if !ok {
		return Record{}, ErrNoSession
	}

	sealed, err := base64.RawURLEncoding.DecodeString(v)
	if err != nil || len(sealed) < 24+secretbox.Overhead {
		return Record{}, errCorruptCookie
	}

	var nonce [24]byte
	copy(nonce[:], sealed[:24])

	plain, ok := secretbox.Open(nil, sealed[24:], &nonce, &s.key)
	if !ok {
		return Record{}, errCorruptCookie
	}

	var rec Record
	if err := json.Unmarshal(plain, &rec); err != nil {
		return Record{}, errCorruptCookie
	}
	return rec, nil
}

func (s *CookieStore) Save(w http.ResponseWriter, _ *http.Request, rec Record) error {
	plain, err := json.Marshal(rec)
	if err != nil {
		return fmt.Errorf("session: encode: %w", err)
	}

	var nonce [24]byte
	if _, err := rand.Read(nonce[:]); err != nil {
		return fmt.Errorf("session: nonce: %w", err)
	}

	sealed := secretbox.Seal(nonce[:], plain, &nonce, &s.key)
	s.opts.set(w, base64.RawURLEncoding.EncodeToString(sealed))
	return nil
}

func (s *CookieStore) Clear(w http.ResponseWriter, _ *http.Request) error {
	s.opts.expire(w)
	return nil
}
