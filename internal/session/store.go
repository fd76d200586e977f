// Package session owns the cached identity: the current user record and
// bearer token. Both are set and cleared together; a cache holding only one
// of the two is treated as corrupt and wiped.
package session

import (
	"context"
	"encoding/json"
	"errors"
	"sync"

	"followup_tracker/internal/cache"
	"followup_tracker/internal/model"
)

// Cache keys. "swa" is the app prefix carried over from the web client so
// an upgraded install keeps its session.
const (
	UserKey  = "swa_user"
	TokenKey = "swa_token"
)

// corruptSentinel is the literal string a buggy writer once stored for
// absent values. Its presence in either key forces a full clear.
const corruptSentinel = "undefined"

var (
	ErrNoSession      = errors.New("session: no valid session in cache")
	ErrMissingUser    = errors.New("session: user is required")
	ErrMissingToken   = errors.New("session: token is required")
	ErrNotEstablished = errors.New("session: no session established")
)

// Store is the single owner of the persisted session. All mutation goes
// through Establish, UpdateUser and Clear; feature modules read only.
type Store struct {
	cache cache.Client

	mu    sync.RWMutex
	user  *model.User
	token string
}

// NewStore creates a session store over the given cache backend.
func NewStore(c cache.Client) *Store {
	return &Store{cache: c}
}

// Hydrate loads the persisted session into memory. It succeeds only when
// both entries exist, neither is empty or the literal "undefined", and the
// user JSON parses to a non-zero user. Any other combination, including a
// partial write, clears both entries and returns ErrNoSession.
func (s *Store) Hydrate(ctx context.Context) (*model.User, error) {
	rawUser, userErr := s.cache.Get(ctx, UserKey)
	token, tokenErr := s.cache.Get(ctx, TokenKey)

	valid := userErr == nil && tokenErr == nil &&
		rawUser != "" && token != "" &&
		rawUser != corruptSentinel && token != corruptSentinel

	if valid {
		var user model.User
		if err := json.Unmarshal([]byte(rawUser), &user); err != nil || user.IsZero() {
			valid = false
		} else {
			user.NormalizeID()
			s.mu.Lock()
			s.user = &user
			s.token = token
			s.mu.Unlock()
			return &user, nil
		}
	}

	// Guard against partial or corrupt writes: wipe whatever is there.
	if err := s.Clear(ctx); err != nil {
		return nil, err
	}
	return nil, ErrNoSession
}

// Establish persists a freshly authenticated session. Both arguments are
// required; on validation failure nothing is mutated, in memory or on disk.
func (s *Store) Establish(ctx context.Context, user *model.User, token string) error {
	if user == nil || user.IsZero() {
		return ErrMissingUser
	}
	if token == "" {
		return ErrMissingToken
	}

	raw, err := json.Marshal(user)
	if err != nil {
		return err
	}
	if err := s.cache.Set(ctx, UserKey, string(raw)); err != nil {
		return err
	}
	if err := s.cache.Set(ctx, TokenKey, token); err != nil {
		return err
	}

	s.mu.Lock()
	u := *user
	s.user = &u
	s.token = token
	s.mu.Unlock()
	return nil
}

// UpdateUser overwrites only the cached user record, e.g. after a profile
// edit. The token is untouched.
func (s *Store) UpdateUser(ctx context.Context, user *model.User) error {
	if user == nil || user.IsZero() {
		return ErrMissingUser
	}
	s.mu.RLock()
	established := s.token != ""
	s.mu.RUnlock()
	if !established {
		return ErrNotEstablished
	}

	raw, err := json.Marshal(user)
	if err != nil {
		return err
	}
	if err := s.cache.Set(ctx, UserKey, string(raw)); err != nil {
		return err
	}

	s.mu.Lock()
	u := *user
	s.user = &u
	s.mu.Unlock()
	return nil
}

// Clear removes both persisted entries and resets in-memory state.
// Clearing an already-empty store is fine.
func (s *Store) Clear(ctx context.Context) error {
	userErr := s.cache.Delete(ctx, UserKey)
	tokenErr := s.cache.Delete(ctx, TokenKey)

	s.mu.Lock()
	s.user = nil
	s.token = ""
	s.mu.Unlock()

	if userErr != nil {
		return userErr
	}
	return tokenErr
}

// User returns a copy of the current user, or nil when unauthenticated.
func (s *Store) User() *model.User {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.user == nil {
		return nil
	}
	u := *s.user
	return &u
}

// Token returns the current bearer token, empty when unauthenticated.
func (s *Store) Token() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.token
}

// Authenticated reports whether a complete session is held in memory.
func (s *Store) Authenticated() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.user != nil && s.token != ""
}
