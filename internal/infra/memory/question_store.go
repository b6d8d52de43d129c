package memory

import (
	"context"
	"sync"
	"time"

	"wellnest/internal/domain"
)

// QuestionStore retains in-flight test sessions in memory with a TTL.
// Suitable for single-instance deployments and tests; the Redis store is
// the production counterpart.
type QuestionStore struct {
	ttl   time.Duration
	clock func() time.Time

	mu       sync.RWMutex
	sessions map[string]storedSession
}

type storedSession struct {
	session   domain.TestSession
	expiresAt time.Time
}

func NewQuestionStore(ttl time.Duration) *QuestionStore {
	return &QuestionStore{
		ttl:      ttl,
		clock:    time.Now,
		sessions: make(map[string]storedSession),
	}
}

// NewQuestionStoreWithClock is test-only for deterministic expiry.
func NewQuestionStoreWithClock(ttl time.Duration, clock func() time.Time) *QuestionStore {
	store := NewQuestionStore(ttl)
	store.clock = clock
	return store
}

func (s *QuestionStore) Save(_ context.Context, session domain.TestSession) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sessions[session.ID] = storedSession{
		session:   session,
		expiresAt: s.clock().Add(s.ttl),
	}
	return nil
}

func (s *QuestionStore) Get(_ context.Context, id string) (domain.TestSession, error) {
	s.mu.RLock()
	entry, ok := s.sessions[id]
	s.mu.RUnlock()

	if !ok || entry.expiresAt.Before(s.clock()) {
		return domain.TestSession{}, domain.ErrSessionNotFound
	}
	return entry.session, nil
}

func (s *QuestionStore) Delete(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sessions, id)
	return nil
}
