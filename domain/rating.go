package domain

import (
	"errors"
	"time"
)

// RatingMin and RatingMax bound the user rating scale.
const (
	RatingMin = 1.0
	RatingMax = 5.0
)

// ErrInvalidRatingValue is returned when a rating value falls outside the
// 1-5 scale. Out-of-range values are rejected at the boundary so they never
// reach the scoring aggregates.
var ErrInvalidRatingValue = errors.New("rating value must be between 1 and 5")

// CREATE TABLE public.ratings (
//     user_id     TEXT NOT NULL,
//     movie_id    BIGINT NOT NULL,
//     value       NUMERIC NOT NULL,
//     rated_at    TIMESTAMPTZ,
//     PRIMARY KEY (user_id, movie_id)
// );

// Rating is one (user, movie) rating fact. The pair (UserID, MovieID) is the
// natural key: a later fact with the same key replaces the earlier one.
type Rating struct {
	UserID  string    `gorm:"column:user_id;primaryKey" json:"user_id"`
	MovieID uint64    `gorm:"column:movie_id;primaryKey" json:"movie_id"`
	Value   float64   `gorm:"column:value;type:numeric;not null" json:"rating"`
	RatedAt time.Time `gorm:"column:rated_at" json:"timestamp"`
}

func (Rating) TableName() string {
	return "ratings"
}

// Valid reports whether the rating value sits on the allowed scale.
func (r Rating) Valid() bool {
	return r.Value >= RatingMin && r.Value <= RatingMax
}
