package recommend

import (
	"context"
	"math"
	"testing"
	"time"

	"movieRadar/domain"
	"movieRadar/internal/repository/memory"
)

func TestCosineSimilarity_Symmetric(t *testing.T) {
	a := map[uint64]float64{1: 5, 2: 3, 3: 1}
	b := map[uint64]float64{1: 4, 2: 2, 4: 5}

	ab := cosineSimilarity(a, b)
	ba := cosineSimilarity(b, a)

	if math.Abs(ab-ba) > 1e-12 {
		t.Errorf("similarity not symmetric: %v vs %v", ab, ba)
	}
	if ab <= 0 {
		t.Errorf("expected positive similarity, got %v", ab)
	}
}

func TestCosineSimilarity_SelfIsOne(t *testing.T) {
	v := map[uint64]float64{1: 5, 2: 3}

	if sim := cosineSimilarity(v, v); math.Abs(sim-1.0) > 1e-12 {
		t.Errorf("self similarity = %v, want 1.0", sim)
	}
}

func TestCosineSimilarity_IdenticalCommonRatings(t *testing.T) {
	// both rate movie 1 = 5 and movie 2 = 3, nothing else in common
	a := map[uint64]float64{1: 5, 2: 3, 7: 4}
	b := map[uint64]float64{1: 5, 2: 3, 9: 1}

	if sim := cosineSimilarity(a, b); math.Abs(sim-1.0) > 1e-12 {
		t.Errorf("similarity = %v, want exactly 1.0", sim)
	}
}

func TestCosineSimilarity_NoOverlap(t *testing.T) {
	a := map[uint64]float64{1: 5}
	b := map[uint64]float64{2: 5}

	if sim := cosineSimilarity(a, b); sim != 0 {
		t.Errorf("similarity = %v, want 0 for empty intersection", sim)
	}
}

func TestCosineSimilarity_ZeroNorm(t *testing.T) {
	a := map[uint64]float64{1: 0}
	b := map[uint64]float64{1: 5}

	if sim := cosineSimilarity(a, b); sim != 0 {
		t.Errorf("similarity = %v, want 0 for zero norm", sim)
	}
}

func TestFindNeighbors_FloorAndCap(t *testing.T) {
	ctx := context.Background()
	store := memory.NewRatingRepository()

	// target rates movies 1 and 2
	target := map[uint64]float64{1: 5, 2: 3}

	// seven users aligned with the target, one orthogonal-ish profile
	aligned := []string{"a", "b", "c", "d", "e", "f", "g"}
	for _, u := range aligned {
		mustUpsert(t, store, u, 1, 5)
		mustUpsert(t, store, u, 2, 3)
	}
	// no common movies at all
	mustUpsert(t, store, "loner", 9, 5)

	svc := NewService(nil, store, DefaultConfig())

	neighbors, err := svc.findNeighbors(ctx, "target", target)
	if err != nil {
		t.Fatalf("findNeighbors: %v", err)
	}

	if len(neighbors) != defaultMaxNeighbors {
		t.Fatalf("got %d neighbors, want %d", len(neighbors), defaultMaxNeighbors)
	}

	// all similarities equal, so stable sort keeps sorted-id scan order
	for i, want := range []string{"a", "b", "c", "d", "e"} {
		if neighbors[i].userID != want {
			t.Errorf("neighbor[%d] = %s, want %s", i, neighbors[i].userID, want)
		}
	}
	for _, n := range neighbors {
		if n.similarity <= defaultSimilarityFloor {
			t.Errorf("neighbor %s below floor: %v", n.userID, n.similarity)
		}
	}
}

func TestFindNeighbors_ExcludesTarget(t *testing.T) {
	ctx := context.Background()
	store := memory.NewRatingRepository()
	mustUpsert(t, store, "me", 1, 5)
	mustUpsert(t, store, "other", 1, 5)

	svc := NewService(nil, store, DefaultConfig())

	neighbors, err := svc.findNeighbors(ctx, "me", map[uint64]float64{1: 5})
	if err != nil {
		t.Fatalf("findNeighbors: %v", err)
	}

	for _, n := range neighbors {
		if n.userID == "me" {
			t.Error("target user returned as its own neighbor")
		}
	}
	if len(neighbors) != 1 {
		t.Errorf("got %d neighbors, want 1", len(neighbors))
	}
}

func mustUpsert(t *testing.T, store *memory.RatingRepository, userID string, movieID uint64, value float64) {
	t.Helper()
	err := store.Upsert(context.Background(), domain.Rating{
		UserID:  userID,
		MovieID: movieID,
		Value:   value,
		RatedAt: time.Now(),
	})
	if err != nil {
		t.Fatalf("upsert: %v", err)
	}
}
