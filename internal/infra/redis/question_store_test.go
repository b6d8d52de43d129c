package redis

import (
	"context"
	"errors"
	"testing"
	"time"

	miniredis "github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"

	"wellnest/internal/domain"
)

func newTestStore(t *testing.T, ttl time.Duration) (*QuestionStore, *miniredis.Miniredis) {
	t.Helper()

	mr, err := miniredis.Run()
	if err != nil {
		t.Fatalf("run miniredis: %v", err)
	}
	t.Cleanup(mr.Close)

	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	return NewQuestionStore(client, ttl), mr
}

func TestQuestionStoreRoundTrip(t *testing.T) {
	store, mr := newTestStore(t, time.Minute)

	session := domain.TestSession{
		ID:       "s1",
		UserID:   "u1",
		Category: "stress",
		Questions: []domain.Question{
			{ID: "q1", Text: "How often do you feel stressed?", Options: []domain.Option{
				{Text: "Never", Value: "Never", Points: 3},
				{Text: "Always", Value: "Always", Points: 0},
			}},
		},
	}

	if err := store.Save(context.Background(), session); err != nil {
		t.Fatalf("Save: %v", err)
	}
	if !mr.Exists("test:session:s1") {
		t.Fatalf("expected redis key to be set")
	}

	got, err := store.Get(context.Background(), "s1")
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if got.UserID != "u1" || len(got.Questions) != 1 || got.Questions[0].Options[0].Points != 3 {
		t.Fatalf("unexpected session: %+v", got)
	}
}

func TestQuestionStoreExpiry(t *testing.T) {
	store, mr := newTestStore(t, time.Minute)

	if err := store.Save(context.Background(), domain.TestSession{ID: "s1"}); err != nil {
		t.Fatalf("Save: %v", err)
	}

	mr.FastForward(2 * time.Minute)

	_, err := store.Get(context.Background(), "s1")
	if !errors.Is(err, domain.ErrSessionNotFound) {
		t.Fatalf("expected ErrSessionNotFound after expiry, got %v", err)
	}
}

func TestQuestionStoreDelete(t *testing.T) {
	store, mr := newTestStore(t, time.Minute)

	if err := store.Save(context.Background(), domain.TestSession{ID: "s1"}); err != nil {
		t.Fatalf("Save: %v", err)
	}
	if err := store.Delete(context.Background(), "s1"); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if mr.Exists("test:session:s1") {
		t.Fatalf("expected redis key to be removed")
	}
}
