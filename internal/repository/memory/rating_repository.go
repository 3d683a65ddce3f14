package memory

import (
	"context"
	"fmt"
	"sync"

	"movieRadar/domain"
)

// RatingRepository is the in-memory store of all known rating facts. It is
// the only mutable state the engine reads; the upsert is atomic per
// (user, movie) key so a replace can never duplicate a fact.
type RatingRepository struct {
	mu      sync.RWMutex
	byUser  map[string]map[uint64]domain.Rating
	userIDs []string
}

func NewRatingRepository() *RatingRepository {
	return &RatingRepository{
		byUser: make(map[string]map[uint64]domain.Rating),
	}
}

// Upsert stores the fact, replacing any existing fact with the same
// (user, movie) key.
func (r *RatingRepository) Upsert(ctx context.Context, rating domain.Rating) error {
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("context error: %w", err)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	facts, ok := r.byUser[rating.UserID]
	if !ok {
		facts = make(map[uint64]domain.Rating)
		r.byUser[rating.UserID] = facts
		r.userIDs = append(r.userIDs, rating.UserID)
	}
	facts[rating.MovieID] = rating

	return nil
}

// RatingsOf returns the user's facts, unordered. The slice is a copy.
func (r *RatingRepository) RatingsOf(ctx context.Context, userID string) ([]domain.Rating, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("context error: %w", err)
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	facts := r.byUser[userID]
	out := make([]domain.Rating, 0, len(facts))
	for _, f := range facts {
		out = append(out, f)
	}

	return out, nil
}

// AllUsers returns the distinct user ids with at least one fact, in first-seen
// order.
func (r *RatingRepository) AllUsers(ctx context.Context) ([]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("context error: %w", err)
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]string, len(r.userIDs))
	copy(out, r.userIDs)

	return out, nil
}

// Load bulk-inserts seed facts, typically the persisted community signal at
// startup.
func (r *RatingRepository) Load(ctx context.Context, ratings []domain.Rating) error {
	for _, rating := range ratings {
		if err := r.Upsert(ctx, rating); err != nil {
			return err
		}
	}

	return nil
}
