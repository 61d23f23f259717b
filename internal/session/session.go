// Package session holds the signed-in state shared by pages and commands.
package session

import (
	"context"
	"strings"
	"sync"

	"github.com/yigit/campusconnect/internal/pkg/apperrors"
)

// TokenStore persists the session token between runs or requests
type TokenStore interface {
	Load() (string, error)
	Save(token string) error
	Clear() error
}

// Session tracks whether the viewer is signed in. The zero value is not
// usable; create one with New.
type Session struct {
	mu    sync.RWMutex
	store TokenStore
	token string
}

// New derives the initial state from the store. A load error leaves the
// session signed out and is returned for logging.
func New(store TokenStore) (*Session, error) {
	s := &Session{store: store}
	token, err := store.Load()
	if err != nil {
		return s, err
	}
	s.token = strings.TrimSpace(token)
	return s, nil
}

// IsAuthenticated reports whether a token is held
func (s *Session) IsAuthenticated() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.token != ""
}

// MarkAuthenticated saves token and flips the session to signed in
func (s *Session) MarkAuthenticated(token string) error {
	token = strings.TrimSpace(token)
	if token == "" {
		return apperrors.ErrInvalidSession
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.store.Save(token); err != nil {
		return err
	}
	s.token = token
	return nil
}

// Clear signs the session out. The in-memory state is cleared even when the
// store fails.
func (s *Session) Clear() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.token = ""
	return s.store.Clear()
}

// Token returns the raw token, or "" when signed out
func (s *Session) Token(context.Context) string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.token
}

type ctxKey struct{}

// WithSession returns a copy of ctx carrying s
func WithSession(ctx context.Context, s *Session) context.Context {
	return context.WithValue(ctx, ctxKey{}, s)
}

// FromContext returns the session stored in ctx, or nil
func FromContext(ctx context.Context) *Session {
	s, _ := ctx.Value(ctxKey{}).(*Session)
	return s
}

// ContextSource reads the token of whichever session the request context
// carries. It lets one API client serve every web request.
type ContextSource struct{}

// Token implements apiclient.TokenSource
func (ContextSource) Token(ctx context.Context) string {
	if s := FromContext(ctx); s != nil {
		return s.Token(ctx)
	}
	return ""
}

// MemoryStore keeps the token in memory only
type MemoryStore struct {
	mu    sync.Mutex
	token string
}

// NewMemoryStore creates a MemoryStore holding token
func NewMemoryStore(token string) *MemoryStore {
	return &MemoryStore{token: token}
}

// Load implements TokenStore
func (m *MemoryStore) Load() (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.token, nil
}

// Save implements TokenStore
func (m *MemoryStore) Save(token string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.token = token
	return nil
}

// Clear implements TokenStore
func (m *MemoryStore) Clear() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.token = ""
	return nil
}
