package recommend

import (
	"context"
	"fmt"
	"math"
	"strings"
	"testing"

	"movieRadar/internal/repository/memory"
)

// Two neighbors rating the same candidate: the prediction is the
// similarity-weighted mean, not the raw weighted sum.
func TestCollaborative_WeightedMean(t *testing.T) {
	catalog := testCatalog()
	store := memory.NewRatingRepository()

	// both peers agree with "me" on movie 1, so both have similarity 1
	mustUpsert(t, store, "me", 1, 5)
	mustUpsert(t, store, "peerA", 1, 5)
	mustUpsert(t, store, "peerA", 3, 4)
	mustUpsert(t, store, "peerB", 1, 5)
	mustUpsert(t, store, "peerB", 3, 2)

	svc := newTestService(catalog, store)
	ctx := context.Background()

	me, err := store.RatingsOf(ctx, "me")
	if err != nil {
		t.Fatalf("RatingsOf: %v", err)
	}

	recs, err := svc.collaborative(ctx, "me", me, nil, 10)
	if err != nil {
		t.Fatalf("collaborative: %v", err)
	}

	if len(recs) != 1 || recs[0].Movie.ID != 3 {
		t.Fatalf("recommendations = %v, want just movie 3", recs)
	}

	// (4*1 + 2*1) / 2 contributors
	if math.Abs(recs[0].Score-3.0) > 1e-9 {
		t.Errorf("score = %v, want weighted mean 3.0", recs[0].Score)
	}
	if want := fmt.Sprintf("Recommended by users with similar taste (%d similar users)", 2); recs[0].Reason != want {
		t.Errorf("reason = %q, want %q", recs[0].Reason, want)
	}
}

func TestCollaborative_NoNeighborsFallsBackToContent(t *testing.T) {
	catalog := testCatalog()
	store := memory.NewRatingRepository()

	// the only other user shares no rated movie with "me"
	mustUpsert(t, store, "me", 1, 5)
	mustUpsert(t, store, "stranger", 3, 5)

	svc := newTestService(catalog, store)
	ctx := context.Background()

	me, err := store.RatingsOf(ctx, "me")
	if err != nil {
		t.Fatalf("RatingsOf: %v", err)
	}

	recs, err := svc.collaborative(ctx, "me", me, nil, 10)
	if err != nil {
		t.Fatalf("collaborative: %v", err)
	}

	want := svc.contentBased(me, nil, 10)
	if len(recs) != len(want) {
		t.Fatalf("fallback returned %d recommendations, want %d", len(recs), len(want))
	}
	for i := range recs {
		if recs[i].Movie.ID != want[i].Movie.ID || recs[i].Score != want[i].Score {
			t.Errorf("fallback[%d] = (%d, %v), want (%d, %v)",
				i, recs[i].Movie.ID, recs[i].Score, want[i].Movie.ID, want[i].Score)
		}
		if !strings.Contains(string(recs[i].Strategy), "content") {
			t.Errorf("fallback strategy = %s, want content-based", recs[i].Strategy)
		}
	}
}

func TestCollaborative_EmptyHistoryFallsBackToPopular(t *testing.T) {
	svc := newTestService(testCatalog(), memory.NewRatingRepository())

	recs, err := svc.collaborative(context.Background(), "newcomer", nil, nil, 2)
	if err != nil {
		t.Fatalf("collaborative: %v", err)
	}

	want := svc.popular(nil, 2)
	if len(recs) != len(want) {
		t.Fatalf("got %d recommendations, want %d", len(recs), len(want))
	}
	for i := range recs {
		if recs[i].Movie.ID != want[i].Movie.ID {
			t.Errorf("fallback[%d] movie %d, want %d", i, recs[i].Movie.ID, want[i].Movie.ID)
		}
	}
}
