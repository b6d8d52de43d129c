package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"wellnest/internal/domain"
)

// QuestionStore retains in-flight test sessions in Redis so a test can
// be submitted against any instance. Sessions are stored as JSON under
// test:session:{id} with a TTL; an expired session means the test was
// abandoned.
type QuestionStore struct {
	client *redis.Client
	ttl    time.Duration
}

func NewQuestionStore(client *redis.Client, ttl time.Duration) *QuestionStore {
	return &QuestionStore{client: client, ttl: ttl}
}

func (s *QuestionStore) Save(ctx context.Context, session domain.TestSession) error {
	payload, err := json.Marshal(session)
	if err != nil {
		return fmt.Errorf("marshal session: %w", err)
	}
	if err := s.client.Set(ctx, s.key(session.ID), payload, s.ttl).Err(); err != nil {
		return fmt.Errorf("store session: %w", err)
	}
	return nil
}

func (s *QuestionStore) Get(ctx context.Context, id string) (domain.TestSession, error) {
	payload, err := s.client.Get(ctx, s.key(id)).Bytes()
	if errors.Is(err, redis.Nil) {
		return domain.TestSession{}, domain.ErrSessionNotFound
	}
	if err != nil {
		return domain.TestSession{}, fmt.Errorf("load session: %w", err)
	}

	var session domain.TestSession
	if err := json.Unmarshal(payload, &session); err != nil {
		return domain.TestSession{}, fmt.Errorf("unmarshal session: %w", err)
	}
	return session, nil
}

func (s *QuestionStore) Delete(ctx context.Context, id string) error {
	return s.client.Del(ctx, s.key(id)).Err()
}

func (s *QuestionStore) key(id string) string {
	return "test:session:" + id
}
