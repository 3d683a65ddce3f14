package recommend

import (
	"context"
	"fmt"
	"sort"

	"movieRadar/domain"
)

func (s *Service) collaborative(ctx context.Context, userID string, userRatings []domain.Rating, filters *domain.RecommendationFilters, limit int) ([]domain.Recommendation, error) {
	if limit <= 0 {
		return []domain.Recommendation{}, nil
	}
	if len(userRatings) == 0 {
		return s.popular(filters, limit), nil
	}

	neighbors, err := s.findNeighbors(ctx, userID, ratingVector(userRatings))
	if err != nil {
		return nil, err
	}
	if len(neighbors) == 0 {
		return s.contentBased(userRatings, filters, limit), nil
	}

	rated := ratedMovieIDs(userRatings)

	type accumulator struct {
		weighted float64
		count    int
	}
	scores := make(map[uint64]*accumulator)
	order := make([]uint64, 0)

	for _, n := range neighbors {
		facts, err := s.ratings.RatingsOf(ctx, n.userID)
		if err != nil {
			return nil, err
		}
		// per-neighbor facts come back unordered
		sort.Slice(facts, func(i, j int) bool { return facts[i].MovieID < facts[j].MovieID })

		for _, f := range facts {
			if _, ok := rated[f.MovieID]; ok {
				continue
			}

			acc, ok := scores[f.MovieID]
			if !ok {
				acc = &accumulator{}
				scores[f.MovieID] = acc
				order = append(order, f.MovieID)
			}
			acc.weighted += f.Value * n.similarity
			acc.count++
		}
	}

	recs := make([]domain.Recommendation, 0, len(order))
	for _, movieID := range order {
		movie, ok := s.byID[movieID]
		if !ok {
			continue
		}
		if !passesFilters(movie, filters) {
			continue
		}

		acc := scores[movieID]
		recs = append(recs, domain.Recommendation{
			Movie: movie,
			// similarity-weighted mean, so movies rated by more
			// neighbors are not inflated by the extra terms
			Score:    acc.weighted / float64(acc.count),
			Reason:   fmt.Sprintf("Recommended by users with similar taste (%d similar users)", acc.count),
			Strategy: domain.StrategyCollaborative,
		})
	}

	sortByScore(recs)
	if len(recs) > limit {
		recs = recs[:limit]
	}

	return recs, nil
}
