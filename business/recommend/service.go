package recommend

import (
	"context"
	"fmt"
	"sort"
	"time"

	"movieRadar/domain"
	"movieRadar/pkg/logger"
)

// RatingRepository is the store of all known rating facts. The engine only
// ever mutates it through Upsert.
type RatingRepository interface {
	Upsert(ctx context.Context, rating domain.Rating) error
	RatingsOf(ctx context.Context, userID string) ([]domain.Rating, error)
	AllUsers(ctx context.Context) ([]string, error)
}

// Service is the recommendation facade. It owns an immutable catalog
// snapshot taken at construction and recomputes every query from the current
// rating facts; nothing is cached between calls.
type Service struct {
	catalog []domain.Movie
	byID    map[uint64]domain.Movie
	ratings RatingRepository
	cfg     Config

	now func() time.Time
}

func NewService(catalog []domain.Movie, ratings RatingRepository, cfg Config) *Service {
	if cfg.MaxNeighbors <= 0 {
		cfg = DefaultConfig()
	}

	byID := make(map[uint64]domain.Movie, len(catalog))
	for _, m := range catalog {
		byID[m.ID] = m
	}

	return &Service{
		catalog: catalog,
		byID:    byID,
		ratings: ratings,
		cfg:     cfg,
		now:     time.Now,
	}
}

// GetPopular ranks the filtered catalog by editorial quality. It is also the
// fallback for users without any rating history.
func (s *Service) GetPopular(ctx context.Context, filters *domain.RecommendationFilters, limit int) ([]domain.Recommendation, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("context error: %w", err)
	}

	recs := s.popular(filters, limit)
	RecommendationsServedTotal.WithLabelValues("popular").Inc()

	return recs, nil
}

// GetContentBased scores unrated movies against the user's own genre
// preferences. Zero ratings degrade to the popularity ranking.
func (s *Service) GetContentBased(ctx context.Context, userRatings []domain.Rating, filters *domain.RecommendationFilters, limit int) ([]domain.Recommendation, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("context error: %w", err)
	}

	recs := s.contentBased(userRatings, filters, limit)
	RecommendationsServedTotal.WithLabelValues("content-based").Inc()

	return recs, nil
}

// GetCollaborative predicts scores from the most similar other users. It
// degrades to content-based scoring when no neighbor clears the similarity
// floor, and to the popularity ranking when the user has no history at all.
func (s *Service) GetCollaborative(ctx context.Context, userID string, userRatings []domain.Rating, filters *domain.RecommendationFilters, limit int) ([]domain.Recommendation, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("context error: %w", err)
	}

	recs, err := s.collaborative(ctx, userID, userRatings, filters, limit)
	if err != nil {
		return nil, err
	}
	RecommendationsServedTotal.WithLabelValues("collaborative").Inc()

	return recs, nil
}

// GetHybrid blends content-based and collaborative candidate sets with fixed
// weights. A user without ratings gets exactly the popularity ranking.
func (s *Service) GetHybrid(ctx context.Context, userID string, userRatings []domain.Rating, filters *domain.RecommendationFilters, limit int) ([]domain.Recommendation, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("context error: %w", err)
	}

	recs, err := s.hybrid(ctx, userID, userRatings, filters, limit)
	if err != nil {
		return nil, err
	}
	RecommendationsServedTotal.WithLabelValues("hybrid").Inc()

	return recs, nil
}

// AddRating validates and upserts one rating fact. A fact with the same
// (user, movie) key replaces the earlier one.
func (s *Service) AddRating(ctx context.Context, userID string, movieID uint64, value float64, ratedAt time.Time) error {
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("context error: %w", err)
	}

	rating := domain.Rating{
		UserID:  userID,
		MovieID: movieID,
		Value:   value,
		RatedAt: ratedAt,
	}
	if rating.RatedAt.IsZero() {
		rating.RatedAt = s.now()
	}

	if !rating.Valid() {
		logger.Warn("Rejected out-of-scale rating",
			"user_id", userID,
			"movie_id", movieID,
			"value", value,
		)
		return domain.ErrInvalidRatingValue
	}

	if err := s.ratings.Upsert(ctx, rating); err != nil {
		return fmt.Errorf("failed to upsert rating: %w", err)
	}
	RatingUpsertsTotal.Inc()

	return nil
}

// RatingsFor returns the user's current rating facts.
func (s *Service) RatingsFor(ctx context.Context, userID string) ([]domain.Rating, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("context error: %w", err)
	}

	return s.ratings.RatingsOf(ctx, userID)
}

func (s *Service) popular(filters *domain.RecommendationFilters, limit int) []domain.Recommendation {
	if limit <= 0 {
		return []domain.Recommendation{}
	}

	candidates := make([]domain.Movie, 0, len(s.catalog))
	for _, m := range s.catalog {
		if passesFilters(m, filters) {
			candidates = append(candidates, m)
		}
	}

	// stable keeps catalog order for equal quality
	sort.SliceStable(candidates, func(i, j int) bool {
		return candidates[i].Rating > candidates[j].Rating
	})
	if len(candidates) > limit {
		candidates = candidates[:limit]
	}

	recs := make([]domain.Recommendation, 0, len(candidates))
	for _, m := range candidates {
		recs = append(recs, domain.Recommendation{
			Movie:    m,
			Score:    m.Rating / 2,
			Reason:   fmt.Sprintf("Popular %s movie with %.1f/10 rating", m.PrimaryGenre(), m.Rating),
			Strategy: domain.StrategyContentBased,
		})
	}

	return recs
}

func passesFilters(m domain.Movie, filters *domain.RecommendationFilters) bool {
	if filters == nil {
		return true
	}
	return filters.Matches(m)
}

func ratedMovieIDs(userRatings []domain.Rating) map[uint64]struct{} {
	rated := make(map[uint64]struct{}, len(userRatings))
	for _, r := range userRatings {
		rated[r.MovieID] = struct{}{}
	}
	return rated
}

// sortByScore orders recommendations by score descending, keeping encounter
// order for ties.
func sortByScore(recs []domain.Recommendation) {
	sort.SliceStable(recs, func(i, j int) bool {
		return recs[i].Score > recs[j].Score
	})
}
