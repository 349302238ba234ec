package memory

import (
	"context"
	"sync"
	"time"

	"github.com/jhoicas/Storefront-api/internal/domain/entity"
	"github.com/jhoicas/Storefront-api/internal/domain/repository"
)

type sessionItem struct {
	session   entity.Session
	expiresAt time.Time
}

// SessionStore sesiones en memoria con expiración perezosa.
type SessionStore struct {
	mu    sync.RWMutex
	items map[string]sessionItem
	now   func() time.Time
}

// NewSessionStore construye el almacén de sesiones en memoria.
func NewSessionStore() *SessionStore {
	return &SessionStore{items: map[string]sessionItem{}, now: time.Now}
}

var _ repository.SessionRepository = (*SessionStore)(nil)

func (s *SessionStore) Save(_ context.Context, session *entity.Session, ttl time.Duration) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.items[session.ID] = sessionItem{session: *session, expiresAt: s.now().Add(ttl)}
	return nil
}

func (s *SessionStore) Get(_ context.Context, id string) (*entity.Session, error) {
	s.mu.RLock()
	item, ok := s.items[id]
	s.mu.RUnlock()
	if !ok {
		return nil, nil
	}
	if !s.now().Before(item.expiresAt) {
		s.mu.Lock()
		delete(s.items, id)
		s.mu.Unlock()
		return nil, nil
	}
	sess := item.session
	return &sess, nil
}

func (s *SessionStore) Delete(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.items, id)
	return nil
}
