package postgres

import (
	"context"
	"fmt"

	"movieRadar/domain"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// RatingRepository persists rating facts so a restart can re-seed the
// in-memory store with the community signal. The engine itself never reads
// from here after startup.
type RatingRepository struct {
	DB *gorm.DB
}

func NewRatingRepository(db *gorm.DB) *RatingRepository {
	return &RatingRepository{
		DB: db,
	}
}

func (r *RatingRepository) FindAll(ctx context.Context) ([]domain.Rating, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("context error: %w", err)
	}

	var ratings []domain.Rating
	err := r.DB.WithContext(ctx).Find(&ratings).Error
	if err != nil {
		return nil, fmt.Errorf("failed to find ratings: %w", err)
	}

	return ratings, nil
}

// Upsert inserts the fact or replaces the existing one with the same
// (user_id, movie_id) key.
func (r *RatingRepository) Upsert(ctx context.Context, rating domain.Rating) error {
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("context error: %w", err)
	}

	err := r.DB.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "user_id"}, {Name: "movie_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"value", "rated_at"}),
	}).Create(&rating).Error
	if err != nil {
		return fmt.Errorf("failed to upsert rating: %w", err)
	}

	return nil
}
