package sessions

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"medimanager/internal/ports/auth"
)

type session struct {
	claims    auth.Claims
	expiresAt time.Time // zero = sin vencimiento
}

// MemoryStore es el mapa token -> sesión, inyectado en el router (no es global).
type MemoryStore struct {
	mu       sync.RWMutex
	sessions map[string]session
	ttl      time.Duration
	now      func() time.Time
	newToken func() string
}

var _ auth.SessionStore = (*MemoryStore)(nil)

// NewMemoryStore: ttl <= 0 = las sesiones duran lo que el proceso.
func NewMemoryStore(ttl time.Duration) *MemoryStore {
	return &MemoryStore{
		sessions: make(map[string]session),
		ttl:      ttl,
		now:      time.Now,
		newToken: uuid.NewString,
	}
}

func (s *MemoryStore) Issue(ctx context.Context, claims auth.Claims) (string, error) {
	if strings.TrimSpace(claims.UserID) == "" {
		return "", auth.ErrInvalidToken
	}

	token := s.newToken()
	sess := session{claims: claims}
	if s.ttl > 0 {
		sess.expiresAt = s.now().Add(s.ttl)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.sessions[token] = sess
	return token, nil
}

func (s *MemoryStore) Verify(ctx context.Context, token string) (auth.Claims, error) {
	token = strings.TrimSpace(token)
	if token == "" {
		return auth.Claims{}, auth.ErrInvalidToken
	}

	s.mu.RLock()
	sess, ok := s.sessions[token]
	s.mu.RUnlock()
	if !ok {
		return auth.Claims{}, auth.ErrInvalidToken
	}

	if !sess.expiresAt.IsZero() && !s.now().Before(sess.expiresAt) {
		s.mu.Lock()
		delete(s.sessions, token)
		s.mu.Unlock()
		return auth.Claims{}, auth.ErrInvalidToken
	}
	return sess.claims, nil
}

func (s *MemoryStore) Revoke(ctx context.Context, token string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sessions, strings.TrimSpace(token))
	return nil
}

// Cleanup purga las sesiones vencidas y devuelve cuántas borró.
// Sin ttl no hace nada.
func (s *MemoryStore) Cleanup() int {
	if s.ttl <= 0 {
		return 0
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	n := 0
	for token, sess := range s.sessions {
		if !sess.expiresAt.IsZero() && !now.Before(sess.expiresAt) {
			delete(s.sessions, token)
			n++
		}
	}
	return n
}

// Len cuenta sesiones guardadas (incluye vencidas aún no purgadas).
func (s *MemoryStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.sessions)
}
