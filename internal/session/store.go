// Package session holds the single active login of the process.
//
// A session is created by Authenticate and destroyed by End. The stored
// token is a signed JWT; Current re-validates it and re-reads the identity
// from the directory on every call, so a deleted identity or an expired
// token reads as "no session".
package session

import (
	"context"
	"sync"
	"time"

	"github.com/dmitrijs2005/edublog/internal/common"
	"github.com/dmitrijs2005/edublog/internal/models"
	"github.com/dmitrijs2005/edublog/internal/repositories/identities"
)

type Store struct {
	mu         sync.Mutex
	identities identities.Repository
	secret     []byte
	ttl        time.Duration
	now        func() time.Time

	identityID string
	token      string
}

// Option customizes a Store.
type Option func(*Store)

// WithTTL makes tokens expire ttl after login. Zero means never.
func WithTTL(ttl time.Duration) Option {
	return func(s *Store) { s.ttl = ttl }
}

// WithClock replaces time.Now, for tests.
func WithClock(now func() time.Time) Option {
	return func(s *Store) { s.now = now }
}

// NewStore returns an empty store. An empty secret is replaced with random
// bytes, so tokens are only valid for the lifetime of the process.
func NewStore(repo identities.Repository, secret []byte, opts ...Option) *Store {
	if len(secret) == 0 {
		secret = common.GenerateRandByteArray(32)
	}
	s := &Store{identities: repo, secret: secret, now: time.Now}
	for _, o := range opts {
		o(s)
	}
	return s
}

// Authenticate checks email and password against the credential table and
// on success replaces the active session. On failure the store is left as
// it was.
func (s *Store) Authenticate(ctx context.Context, email, password string) (*models.Session, error) {
	identity, err := s.identities.Authenticate(ctx, email, password)
	if err != nil {
		return nil, err
	}

	token, err := GenerateToken(identity, s.secret, s.ttl, s.now())
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	s.identityID = identity.ID
	s.token = token
	s.mu.Unlock()

	return &models.Session{Identity: *identity, Token: token}, nil
}

// End clears the session. Calling it without a session is not an error.
func (s *Store) End() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.clear()
}

// Current returns the logged-in identity, or nil if there is none.
//
// Current is not a pure read. When the stored token no longer parses
// (expired, or minted for another identity) or the identity has been
// removed from the directory, Current ends the session before returning
// nil, so Token reports "" afterwards.
func (s *Store) Current(ctx context.Context) *models.Identity {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.token == "" {
		return nil
	}
	claims, err := ParseToken(s.token, s.secret, s.now())
	if err != nil || claims.Subject != s.identityID {
		s.clear()
		return nil
	}
	identity, err := s.identities.GetByID(ctx, s.identityID)
	if err != nil {
		s.clear()
		return nil
	}
	return identity
}

// Token returns the active session token, or "" without a session.
func (s *Store) Token() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.token
}

// Require returns the current identity or common.ErrUnauthorized.
func (s *Store) Require(ctx context.Context) (*models.Identity, error) {
	identity := s.Current(ctx)
	if identity == nil {
		return nil, common.ErrUnauthorized
	}
	return identity, nil
}

// RequireRole is Require plus a role check.
func (s *Store) RequireRole(ctx context.Context, role models.Role) (*models.Identity, error) {
	identity, err := s.Require(ctx)
	if err != nil {
		return nil, err
	}
	if identity.Role != role {
		return nil, common.ErrUnauthorized
	}
	return identity, nil
}

func (s *Store) clear() {
	s.identityID = ""
	s.token = ""
}
