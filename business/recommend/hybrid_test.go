package recommend

import (
	"math"
	"testing"

	"movieRadar/domain"
	"movieRadar/internal/repository/memory"
)

func TestBlend_FixedWeights(t *testing.T) {
	svc := newTestService(testCatalog(), memory.NewRatingRepository())

	contentRecs := []domain.Recommendation{
		{Movie: domain.Movie{ID: 1}, Score: 4.0, Reason: "content reason", Strategy: domain.StrategyContentBased},
		{Movie: domain.Movie{ID: 2}, Score: 3.0, Reason: "content only", Strategy: domain.StrategyContentBased},
	}
	collaborativeRecs := []domain.Recommendation{
		{Movie: domain.Movie{ID: 1}, Score: 2.0, Reason: "collab reason", Strategy: domain.StrategyCollaborative},
		{Movie: domain.Movie{ID: 3}, Score: 5.0, Reason: "collab only", Strategy: domain.StrategyCollaborative},
	}

	recs := svc.blend(contentRecs, collaborativeRecs, 10)

	byID := map[uint64]domain.Recommendation{}
	for _, rec := range recs {
		byID[rec.Movie.ID] = rec
		if rec.Strategy != domain.StrategyHybrid {
			t.Errorf("movie %d strategy = %s, want hybrid", rec.Movie.ID, rec.Strategy)
		}
	}

	// present in both sets: exactly 0.6*content + 0.4*collaborative
	if got, want := byID[1].Score, 0.6*4.0+0.4*2.0; math.Abs(got-want) > 1e-12 {
		t.Errorf("movie 1 score = %v, want %v", got, want)
	}
	// content only: collaborative term is 0
	if got, want := byID[2].Score, 0.6*3.0; math.Abs(got-want) > 1e-12 {
		t.Errorf("movie 2 score = %v, want %v", got, want)
	}
	// collaborative only: content term is 0
	if got, want := byID[3].Score, 0.4*5.0; math.Abs(got-want) > 1e-12 {
		t.Errorf("movie 3 score = %v, want %v", got, want)
	}

	if byID[1].Reason != "content reason • collab reason" {
		t.Errorf("joined reason = %q", byID[1].Reason)
	}
}

func TestBlend_SortsAndTruncates(t *testing.T) {
	svc := newTestService(testCatalog(), memory.NewRatingRepository())

	contentRecs := []domain.Recommendation{
		{Movie: domain.Movie{ID: 1}, Score: 1.0},
		{Movie: domain.Movie{ID: 2}, Score: 5.0},
	}
	collaborativeRecs := []domain.Recommendation{
		{Movie: domain.Movie{ID: 3}, Score: 5.0},
	}

	recs := svc.blend(contentRecs, collaborativeRecs, 2)

	if len(recs) != 2 {
		t.Fatalf("got %d recommendations, want 2", len(recs))
	}
	// 0.6*5 = 3.0 beats 0.4*5 = 2.0 beats 0.6*1
	if recs[0].Movie.ID != 2 || recs[1].Movie.ID != 3 {
		t.Errorf("order = [%d %d], want [2 3]", recs[0].Movie.ID, recs[1].Movie.ID)
	}
}

func TestBlend_TieKeepsEncounterOrder(t *testing.T) {
	svc := newTestService(testCatalog(), memory.NewRatingRepository())

	contentRecs := []domain.Recommendation{
		{Movie: domain.Movie{ID: 7}, Score: 2.0},
		{Movie: domain.Movie{ID: 8}, Score: 2.0},
	}

	recs := svc.blend(contentRecs, nil, 10)
	if recs[0].Movie.ID != 7 || recs[1].Movie.ID != 8 {
		t.Errorf("tie order = [%d %d], want encounter order [7 8]", recs[0].Movie.ID, recs[1].Movie.ID)
	}
}
