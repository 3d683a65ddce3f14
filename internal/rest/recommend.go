package rest

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"time"

	"movieRadar/domain"
	"movieRadar/pkg/logger"

	"github.com/AMFarhan21/fres"
	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
)

// ResponseError represent the response error struct
type ResponseError struct {
	Message string `json:"message"`
}

type (
	RecommendationHandler struct {
		validate  *validator.Validate
		service   RecommendationService
		persister RatingPersister
	}

	RecommendationService interface {
		GetPopular(ctx context.Context, filters *domain.RecommendationFilters, limit int) ([]domain.Recommendation, error)
		GetContentBased(ctx context.Context, userRatings []domain.Rating, filters *domain.RecommendationFilters, limit int) ([]domain.Recommendation, error)
		GetCollaborative(ctx context.Context, userID string, userRatings []domain.Rating, filters *domain.RecommendationFilters, limit int) ([]domain.Recommendation, error)
		GetHybrid(ctx context.Context, userID string, userRatings []domain.Rating, filters *domain.RecommendationFilters, limit int) ([]domain.Recommendation, error)
		AddRating(ctx context.Context, userID string, movieID uint64, value float64, ratedAt time.Time) error
		RatingsFor(ctx context.Context, userID string) ([]domain.Rating, error)
	}

	// RatingPersister receives a write-behind copy of accepted ratings so
	// the community signal survives a restart. Failures are logged, never
	// surfaced.
	RatingPersister interface {
		Upsert(ctx context.Context, rating domain.Rating) error
	}

	RecommendQuery struct {
		Strategy    string  `query:"strategy" validate:"omitempty,oneof=popular content collaborative hybrid"`
		UserID      string  `query:"user_id"`
		N           int     `query:"n"`
		Genres      string  `query:"genres"`
		YearMin     int     `query:"year_min"`
		YearMax     int     `query:"year_max"`
		MinRating   float64 `query:"min_rating"`
		Languages   string  `query:"languages"`
		MaxDuration int     `query:"max_duration"`
	}

	RatingRequest struct {
		UserID  string  `json:"user_id" validate:"required"`
		MovieID uint64  `json:"movie_id" validate:"required"`
		Rating  float64 `json:"rating" validate:"required,min=1,max=5"`
	}
)

func NewRecommendationHandler(service RecommendationService, persister RatingPersister) *RecommendationHandler {
	return &RecommendationHandler{
		validate:  validator.New(),
		service:   service,
		persister: persister,
	}
}

// GET /api/v1/recommendations?strategy=hybrid&user_id=current&n=10
func (h *RecommendationHandler) Recommend(c echo.Context) error {
	var q RecommendQuery
	if err := c.Bind(&q); err != nil {
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}
	if err := h.validate.Struct(&q); err != nil {
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}

	if q.N <= 0 {
		q.N = 10
	}
	if q.Strategy == "" {
		q.Strategy = "popular"
	}
	if q.Strategy != "popular" && q.UserID == "" {
		return c.JSON(http.StatusBadRequest, ResponseError{Message: "user_id is required for personalized strategies"})
	}

	ctx := c.Request().Context()
	filters := buildFilters(c, q)

	var userRatings []domain.Rating
	if q.UserID != "" {
		var err error
		userRatings, err = h.service.RatingsFor(ctx, q.UserID)
		if err != nil {
			return c.JSON(http.StatusInternalServerError, ResponseError{Message: err.Error()})
		}
	}

	var (
		recs []domain.Recommendation
		err  error
	)
	switch q.Strategy {
	case "content":
		recs, err = h.service.GetContentBased(ctx, userRatings, filters, q.N)
	case "collaborative":
		recs, err = h.service.GetCollaborative(ctx, q.UserID, userRatings, filters, q.N)
	case "hybrid":
		recs, err = h.service.GetHybrid(ctx, q.UserID, userRatings, filters, q.N)
	default:
		recs, err = h.service.GetPopular(ctx, filters, q.N)
	}
	if err != nil {
		return c.JSON(http.StatusInternalServerError, ResponseError{Message: err.Error()})
	}

	return c.JSON(http.StatusOK, fres.Response.StatusOK(recs))
}

// POST /api/v1/ratings
func (h *RecommendationHandler) AddRating(c echo.Context) error {
	var req RatingRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}
	if err := h.validate.Struct(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}

	ctx := c.Request().Context()
	now := time.Now()

	if err := h.service.AddRating(ctx, req.UserID, req.MovieID, req.Rating, now); err != nil {
		if errors.Is(err, domain.ErrInvalidRatingValue) {
			return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
		}
		return c.JSON(http.StatusInternalServerError, ResponseError{Message: err.Error()})
	}

	if h.persister != nil {
		rating := domain.Rating{UserID: req.UserID, MovieID: req.MovieID, Value: req.Rating, RatedAt: now}
		if err := h.persister.Upsert(ctx, rating); err != nil {
			logger.Warn("Failed to persist rating", "user_id", req.UserID, "movie_id", req.MovieID, "error", err)
		}
	}

	return c.JSON(http.StatusCreated, fres.Response.StatusCreated("rating recorded"))
}

// GET /api/v1/ratings?user_id=current
func (h *RecommendationHandler) GetRatings(c echo.Context) error {
	userID := c.QueryParam("user_id")
	if userID == "" {
		return c.JSON(http.StatusBadRequest, ResponseError{Message: "user_id is required"})
	}

	ratings, err := h.service.RatingsFor(c.Request().Context(), userID)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, ResponseError{Message: err.Error()})
	}

	return c.JSON(http.StatusOK, fres.Response.StatusOK(ratings))
}

// buildFilters turns the optional filter params into a criteria object, or
// nil when none were supplied at all.
func buildFilters(c echo.Context, q RecommendQuery) *domain.RecommendationFilters {
	params := c.QueryParams()
	supplied := false
	for _, key := range []string{"genres", "year_min", "year_max", "min_rating", "languages", "max_duration"} {
		if params.Has(key) {
			supplied = true
			break
		}
	}
	if !supplied {
		return nil
	}

	filters := domain.RecommendationFilters{
		Genres:    splitCSV(q.Genres),
		YearMin:   q.YearMin,
		YearMax:   q.YearMax,
		MinRating: q.MinRating,
		Languages: splitCSV(q.Languages),
	}
	if filters.YearMax == 0 {
		filters.YearMax = time.Now().Year()
	}
	if q.MaxDuration > 0 {
		filters.MaxDuration = &q.MaxDuration
	}

	return &filters
}

func splitCSV(s string) []string {
	if s == "" {
		return nil
	}

	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			out = append(out, trimmed)
		}
	}

	return out
}
