package recommend

import (
	"context"
	"strings"

	"movieRadar/domain"
)

// reasonSeparator joins reason strings when a movie surfaces in both source
// sets.
const reasonSeparator = " • "

func (s *Service) hybrid(ctx context.Context, userID string, userRatings []domain.Rating, filters *domain.RecommendationFilters, limit int) ([]domain.Recommendation, error) {
	if limit <= 0 {
		return []domain.Recommendation{}, nil
	}
	if len(userRatings) == 0 {
		// both sources would degrade to the same popularity ranking, so
		// return it directly
		return s.popular(filters, limit), nil
	}

	contentRecs := s.contentBased(userRatings, filters, limit*2)
	collaborativeRecs, err := s.collaborative(ctx, userID, userRatings, filters, limit*2)
	if err != nil {
		return nil, err
	}

	return s.blend(contentRecs, collaborativeRecs, limit), nil
}

// blend merges the two candidate sets by movie identity. A movie present in
// only one set scores 0 in the missing dimension; the final score is the
// fixed-weight combination, content favoured.
func (s *Service) blend(contentRecs, collaborativeRecs []domain.Recommendation, limit int) []domain.Recommendation {
	type combined struct {
		movie              domain.Movie
		contentScore       float64
		collaborativeScore float64
		reasons            []string
	}

	byMovie := make(map[uint64]*combined)
	order := make([]uint64, 0, len(contentRecs)+len(collaborativeRecs))

	for _, rec := range contentRecs {
		byMovie[rec.Movie.ID] = &combined{
			movie:        rec.Movie,
			contentScore: rec.Score,
			reasons:      []string{rec.Reason},
		}
		order = append(order, rec.Movie.ID)
	}

	for _, rec := range collaborativeRecs {
		if existing, ok := byMovie[rec.Movie.ID]; ok {
			existing.collaborativeScore = rec.Score
			existing.reasons = append(existing.reasons, rec.Reason)
			continue
		}
		byMovie[rec.Movie.ID] = &combined{
			movie:              rec.Movie,
			collaborativeScore: rec.Score,
			reasons:            []string{rec.Reason},
		}
		order = append(order, rec.Movie.ID)
	}

	recs := make([]domain.Recommendation, 0, len(order))
	for _, movieID := range order {
		c := byMovie[movieID]
		recs = append(recs, domain.Recommendation{
			Movie:    c.movie,
			Score:    s.cfg.ContentWeight*c.contentScore + s.cfg.CollaborativeWeight*c.collaborativeScore,
			Reason:   strings.Join(c.reasons, reasonSeparator),
			Strategy: domain.StrategyHybrid,
		})
	}

	sortByScore(recs)
	if len(recs) > limit {
		recs = recs[:limit]
	}

	return recs
}
