package domain

import (
	"gorm.io/datatypes"
)

// CREATE TABLE public.movies (
//     id              BIGINT PRIMARY KEY,
//     title           TEXT NOT NULL,
//     genres          JSONB NOT NULL,
//     year            INT,
//     director        TEXT,
//     movie_cast      JSONB,
//     plot            TEXT,
//     poster_url      TEXT,
//     rating          NUMERIC,
//     duration        INT,
//     language        TEXT,
//     country         TEXT,
//     imdb_rating     NUMERIC,
//     rotten_tomatoes INT
// );

// Movie is one catalog entry. The catalog is loaded once at startup and is
// read-only afterwards; Rating is the editorial 0-10 quality score, not a
// user rating.
type Movie struct {
	ID             uint64                      `gorm:"primaryKey" json:"id"`
	Title          string                      `gorm:"column:title;type:text;not null" json:"title"`
	Genres         datatypes.JSONSlice[string] `gorm:"column:genres;type:jsonb" json:"genres"`
	Year           int                         `gorm:"column:year" json:"year"`
	Director       string                      `gorm:"column:director;type:text" json:"director"`
	Cast           datatypes.JSONSlice[string] `gorm:"column:movie_cast;type:jsonb" json:"cast"`
	Plot           string                      `gorm:"column:plot;type:text" json:"plot"`
	PosterURL      string                      `gorm:"column:poster_url;type:text" json:"poster"`
	Rating         float64                     `gorm:"column:rating;type:numeric" json:"rating"`
	Duration       int                         `gorm:"column:duration" json:"duration"`
	Language       string                      `gorm:"column:language;type:text" json:"language"`
	Country        string                      `gorm:"column:country;type:text" json:"country"`
	IMDBRating     float64                     `gorm:"column:imdb_rating;type:numeric" json:"imdb_rating"`
	RottenTomatoes *int                        `gorm:"column:rotten_tomatoes" json:"rotten_tomatoes,omitempty"`
}

func (Movie) TableName() string {
	return "movies"
}

// PrimaryGenre returns the first genre tag. Genres are non-empty for any
// well-formed catalog entry, but a zero-value Movie is tolerated.
func (m Movie) PrimaryGenre() string {
	if len(m.Genres) == 0 {
		return ""
	}
	return m.Genres[0]
}
