// Package session holds the single bearer credential of the console.
//
// The Holder is passed explicitly to everything that needs the credential;
// there is no package-level token. Its Store keeps the token durable between
// invocations.
package session

import (
	"errors"
	"sync"
	"time"

	"github.com/golang-jwt/jwt"
	"go.uber.org/zap"
)

var ErrNoCredential = errors.New("no credential")

type Store interface {
	Load() (string, error)
	Save(token string) error
	Remove() error
}

type Claims struct {
	Subject   string
	ExpiresAt time.Time
}

type Holder struct {
	mu    sync.RWMutex
	token string
	store Store
}

// New loads the persisted credential, if any. A store that cannot be read is
// treated as an empty session.
func New(store Store) *Holder {
	h := &Holder{store: store}
	token, err := store.Load()
	if err != nil {
		zap.L().Warn("can't load session", zap.Error(err))
		return h
	}
	h.token = token
	return h
}

func (h *Holder) Get() string {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.token
}

func (h *Holder) Present() bool {
	return h.Get() != ""
}

func (h *Holder) Set(token string) error {
	h.mu.Lock()
	defer h.mu.Unlock()
	if err := h.store.Save(token); err != nil {
		return err
	}
	h.token = token
	return nil
}

// Clear drops the credential from memory even when the store fails.
func (h *Holder) Clear() error {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.token = ""
	return h.store.Remove()
}

// Claims decodes the token payload without checking its signature; the
// backend stays the only authority on validity.
func (h *Holder) Claims() (*Claims, error) {
	token := h.Get()
	if token == "" {
		return nil, ErrNoCredential
	}

	var sc jwt.StandardClaims
	if _, _, err := new(jwt.Parser).ParseUnverified(token, &sc); err != nil {
		return nil, err
	}

	claims := &Claims{Subject: sc.Subject}
	if sc.ExpiresAt != 0 {
		claims.ExpiresAt = time.Unix(sc.ExpiresAt, 0)
	}
	return claims, nil
}
