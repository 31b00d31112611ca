// Package session is the explicit auth store for the storefront client:
// initialized on login, torn down on logout. It replaces the old habit of
// stashing auth data in a generic fetch cache.
package session

import (
	"errors"
	"sync"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

var ErrNoSession = errors.New("no active session")

type Store struct {
	mu        sync.RWMutex
	token     string
	userID    string
	email     string
	expiresAt time.Time
}

func NewStore() *Store {
	return &Store{}
}

// Init installs the login token and extracts the identity claims. The
// client holds only the public claims — signature verification is the
// backend's job, so the token is parsed unverified here.
func (s *Store) Init(token string) error {
	claims := jwt.MapClaims{}
	parser := jwt.NewParser()
	if _, _, err := parser.ParseUnverified(token, claims); err != nil {
		return errors.New("invalid session token")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.token = token
	if id, ok := claims["user_id"].(string); ok {
		s.userID = id
	} else if sub, ok := claims["sub"].(string); ok {
		s.userID = sub
	}
	if email, ok := claims["email"].(string); ok {
		s.email = email
	}
	s.expiresAt = time.Time{}
	if exp, ok := claims["exp"].(float64); ok {
		s.expiresAt = time.Unix(int64(exp), 0)
	}
	return nil
}

// Teardown clears the session on logout.
func (s *Store) Teardown() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.token = ""
	s.userID = ""
	s.email = ""
	s.expiresAt = time.Time{}
}

// Token implements api.TokenSource. An expired token counts as absent.
func (s *Store) Token() (string, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.token == "" {
		return "", false
	}
	if !s.expiresAt.IsZero() && time.Now().After(s.expiresAt) {
		return "", false
	}
	return s.token, true
}

func (s *Store) UserID() (string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.userID == "" {
		return "", ErrNoSession
	}
	return s.userID, nil
}

func (s *Store) Email() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.email
}
