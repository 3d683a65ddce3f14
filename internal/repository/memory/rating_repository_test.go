package memory

import (
	"context"
	"testing"
	"time"

	"movieRadar/domain"
)

func TestRatingRepository_UpsertReplaces(t *testing.T) {
	repo := NewRatingRepository()
	ctx := context.Background()

	first := domain.Rating{UserID: "u", MovieID: 1, Value: 5, RatedAt: time.Now()}
	second := domain.Rating{UserID: "u", MovieID: 1, Value: 3, RatedAt: time.Now()}

	if err := repo.Upsert(ctx, first); err != nil {
		t.Fatalf("upsert: %v", err)
	}
	if err := repo.Upsert(ctx, second); err != nil {
		t.Fatalf("upsert: %v", err)
	}

	facts, err := repo.RatingsOf(ctx, "u")
	if err != nil {
		t.Fatalf("RatingsOf: %v", err)
	}
	if len(facts) != 1 {
		t.Fatalf("got %d facts, want 1", len(facts))
	}
	if facts[0].Value != 3 {
		t.Errorf("value = %v, want 3", facts[0].Value)
	}
}

func TestRatingRepository_AllUsersDistinct(t *testing.T) {
	repo := NewRatingRepository()
	ctx := context.Background()

	facts := []domain.Rating{
		{UserID: "a", MovieID: 1, Value: 4},
		{UserID: "b", MovieID: 1, Value: 2},
		{UserID: "a", MovieID: 2, Value: 5},
	}
	if err := repo.Load(ctx, facts); err != nil {
		t.Fatalf("Load: %v", err)
	}

	users, err := repo.AllUsers(ctx)
	if err != nil {
		t.Fatalf("AllUsers: %v", err)
	}
	if len(users) != 2 {
		t.Fatalf("got %d users, want 2", len(users))
	}
	if users[0] != "a" || users[1] != "b" {
		t.Errorf("users = %v, want first-seen order [a b]", users)
	}
}

func TestRatingRepository_UnknownUserEmpty(t *testing.T) {
	repo := NewRatingRepository()

	facts, err := repo.RatingsOf(context.Background(), "nobody")
	if err != nil {
		t.Fatalf("RatingsOf: %v", err)
	}
	if len(facts) != 0 {
		t.Errorf("got %d facts for unknown user", len(facts))
	}
}

func TestRatingRepository_CancelledContext(t *testing.T) {
	repo := NewRatingRepository()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if err := repo.Upsert(ctx, domain.Rating{UserID: "u", MovieID: 1, Value: 4}); err == nil {
		t.Error("expected error for cancelled context")
	}
}
