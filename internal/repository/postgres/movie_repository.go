package postgres

import (
	"context"
	"errors"
	"fmt"

	"movieRadar/domain"

	"gorm.io/gorm"
)

type MovieRepository struct {
	DB *gorm.DB
}

func NewMovieRepository(db *gorm.DB) *MovieRepository {
	return &MovieRepository{
		DB: db,
	}
}

// FindAll returns the full catalog in stable id order. The engine loads this
// once at startup and treats the snapshot as immutable.
func (r *MovieRepository) FindAll(ctx context.Context) ([]domain.Movie, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("context error: %w", err)
	}

	var movies []domain.Movie
	err := r.DB.WithContext(ctx).Order("id").Find(&movies).Error
	if err != nil {
		return nil, fmt.Errorf("failed to find movies: %w", err)
	}

	return movies, nil
}

func (r *MovieRepository) FindByID(ctx context.Context, id uint64) (domain.Movie, error) {
	if err := ctx.Err(); err != nil {
		return domain.Movie{}, fmt.Errorf("context error: %w", err)
	}

	var movie domain.Movie

	err := r.DB.WithContext(ctx).First(&movie, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.Movie{}, errors.New("movie not found")
		}
		return domain.Movie{}, fmt.Errorf("failed to find movie: %w", err)
	}

	return movie, nil
}
