package postgres

import (
	"context"
	"fmt"
	"time"

	"movieRadar/domain"

	"gorm.io/gorm"
)

// SeedIfEmpty loads the mock catalog and the sample community ratings the
// first time the service runs against an empty database. Existing rows are
// never touched.
func SeedIfEmpty(ctx context.Context, db *gorm.DB) error {
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("context error: %w", err)
	}

	var movieCount int64
	if err := db.WithContext(ctx).Model(&domain.Movie{}).Count(&movieCount).Error; err != nil {
		return fmt.Errorf("failed to count movies: %w", err)
	}
	if movieCount == 0 {
		if err := db.WithContext(ctx).Create(seedMovies()).Error; err != nil {
			return fmt.Errorf("failed to seed movies: %w", err)
		}
	}

	var ratingCount int64
	if err := db.WithContext(ctx).Model(&domain.Rating{}).Count(&ratingCount).Error; err != nil {
		return fmt.Errorf("failed to count ratings: %w", err)
	}
	if ratingCount == 0 {
		if err := db.WithContext(ctx).Create(seedRatings()).Error; err != nil {
			return fmt.Errorf("failed to seed ratings: %w", err)
		}
	}

	return nil
}

func intPtr(v int) *int {
	return &v
}

func seedMovies() []domain.Movie {
	return []domain.Movie{
		{ID: 1, Title: "The Shawshank Redemption", Genres: []string{"Drama"}, Year: 1994, Director: "Frank Darabont", Cast: []string{"Tim Robbins", "Morgan Freeman"}, Plot: "Two imprisoned men bond over a number of years, finding solace and eventual redemption.", PosterURL: "/posters/shawshank-redemption.jpg", Rating: 9.3, Duration: 142, Language: "English", Country: "USA", IMDBRating: 9.3, RottenTomatoes: intPtr(91)},
		{ID: 2, Title: "The Godfather", Genres: []string{"Crime", "Drama"}, Year: 1972, Director: "Francis Ford Coppola", Cast: []string{"Marlon Brando", "Al Pacino"}, Plot: "The aging patriarch of an organized crime dynasty transfers control to his reluctant son.", PosterURL: "/posters/the-godfather.jpg", Rating: 9.2, Duration: 175, Language: "English", Country: "USA", IMDBRating: 9.2, RottenTomatoes: intPtr(97)},
		{ID: 3, Title: "The Dark Knight", Genres: []string{"Action", "Crime", "Drama"}, Year: 2008, Director: "Christopher Nolan", Cast: []string{"Christian Bale", "Heath Ledger"}, Plot: "Batman faces the Joker, a criminal mastermind who plunges Gotham into anarchy.", PosterURL: "/posters/the-dark-knight.jpg", Rating: 9.0, Duration: 152, Language: "English", Country: "USA", IMDBRating: 9.0, RottenTomatoes: intPtr(94)},
		{ID: 4, Title: "Pulp Fiction", Genres: []string{"Crime", "Drama"}, Year: 1994, Director: "Quentin Tarantino", Cast: []string{"John Travolta", "Uma Thurman", "Samuel L. Jackson"}, Plot: "The lives of two mob hitmen, a boxer and a pair of diner bandits intertwine.", PosterURL: "/posters/pulp-fiction.jpg", Rating: 8.9, Duration: 154, Language: "English", Country: "USA", IMDBRating: 8.9, RottenTomatoes: intPtr(92)},
		{ID: 5, Title: "Forrest Gump", Genres: []string{"Comedy", "Drama", "Romance"}, Year: 1994, Director: "Robert Zemeckis", Cast: []string{"Tom Hanks", "Robin Wright"}, Plot: "The presidencies, wars and cultural shifts of decades unfold through the eyes of a slow-witted but kind man.", PosterURL: "/posters/forrest-gump.jpg", Rating: 8.8, Duration: 142, Language: "English", Country: "USA", IMDBRating: 8.8, RottenTomatoes: intPtr(71)},
		{ID: 6, Title: "Inception", Genres: []string{"Action", "Sci-Fi", "Thriller"}, Year: 2010, Director: "Christopher Nolan", Cast: []string{"Leonardo DiCaprio", "Joseph Gordon-Levitt"}, Plot: "A thief who steals corporate secrets through dream-sharing is given an inverse task: plant an idea.", PosterURL: "/posters/inception.jpg", Rating: 8.8, Duration: 148, Language: "English", Country: "USA", IMDBRating: 8.8, RottenTomatoes: intPtr(87)},
		{ID: 7, Title: "The Matrix", Genres: []string{"Action", "Sci-Fi"}, Year: 1999, Director: "Lana Wachowski", Cast: []string{"Keanu Reeves", "Laurence Fishburne"}, Plot: "A computer hacker learns the true nature of his reality and his role in the war against its controllers.", PosterURL: "/posters/the-matrix.jpg", Rating: 8.7, Duration: 136, Language: "English", Country: "USA", IMDBRating: 8.7, RottenTomatoes: intPtr(88)},
		{ID: 8, Title: "Goodfellas", Genres: []string{"Crime", "Drama"}, Year: 1990, Director: "Martin Scorsese", Cast: []string{"Robert De Niro", "Ray Liotta", "Joe Pesci"}, Plot: "The story of Henry Hill and his life in the mob.", PosterURL: "/posters/goodfellas.jpg", Rating: 8.7, Duration: 146, Language: "English", Country: "USA", IMDBRating: 8.7, RottenTomatoes: intPtr(95)},
		{ID: 9, Title: "The Grand Budapest Hotel", Genres: []string{"Comedy", "Drama"}, Year: 2014, Director: "Wes Anderson", Cast: []string{"Ralph Fiennes", "Tony Revolori"}, Plot: "A legendary concierge and his protégé are drawn into the theft of a priceless painting.", PosterURL: "/posters/grand-budapest-hotel.jpg", Rating: 8.1, Duration: 99, Language: "English", Country: "USA", IMDBRating: 8.1, RottenTomatoes: intPtr(92)},
		{ID: 10, Title: "Interstellar", Genres: []string{"Sci-Fi", "Drama", "Adventure"}, Year: 2014, Director: "Christopher Nolan", Cast: []string{"Matthew McConaughey", "Anne Hathaway"}, Plot: "Explorers travel through a wormhole in space in an attempt to ensure humanity's survival.", PosterURL: "/posters/interstellar.jpg", Rating: 8.6, Duration: 169, Language: "English", Country: "USA", IMDBRating: 8.6, RottenTomatoes: intPtr(73)},
		{ID: 11, Title: "Parasite", Genres: []string{"Thriller", "Drama"}, Year: 2019, Director: "Bong Joon-ho", Cast: []string{"Song Kang-ho", "Choi Woo-shik"}, Plot: "Greed and class discrimination threaten the symbiotic relationship between two families.", PosterURL: "/posters/parasite.jpg", Rating: 8.5, Duration: 132, Language: "Korean", Country: "South Korea", IMDBRating: 8.5, RottenTomatoes: intPtr(99)},
		{ID: 12, Title: "La La Land", Genres: []string{"Comedy", "Drama", "Romance"}, Year: 2016, Director: "Damien Chazelle", Cast: []string{"Ryan Gosling", "Emma Stone"}, Plot: "A jazz pianist and an aspiring actress fall in love while pursuing their dreams in Los Angeles.", PosterURL: "/posters/la-la-land.jpg", Rating: 8.0, Duration: 128, Language: "English", Country: "USA", IMDBRating: 8.0, RottenTomatoes: intPtr(91)},
		{ID: 13, Title: "Mad Max: Fury Road", Genres: []string{"Action", "Adventure", "Sci-Fi"}, Year: 2015, Director: "George Miller", Cast: []string{"Tom Hardy", "Charlize Theron"}, Plot: "A woman rebels against a tyrannical ruler in a post-apocalyptic wasteland.", PosterURL: "/posters/mad-max-fury-road.jpg", Rating: 8.1, Duration: 120, Language: "English", Country: "Australia", IMDBRating: 8.1, RottenTomatoes: intPtr(97)},
		{ID: 14, Title: "The Intouchables", Genres: []string{"Comedy", "Drama"}, Year: 2011, Director: "Olivier Nakache", Cast: []string{"François Cluzet", "Omar Sy"}, Plot: "A quadriplegic aristocrat hires a young man from the projects as his caregiver.", PosterURL: "/posters/the-intouchables.jpg", Rating: 8.5, Duration: 112, Language: "French", Country: "France", IMDBRating: 8.5, RottenTomatoes: intPtr(75)},
		{ID: 15, Title: "Little Miss Sunshine", Genres: []string{"Comedy", "Drama"}, Year: 2006, Director: "Jonathan Dayton", Cast: []string{"Abigail Breslin", "Steve Carell", "Toni Collette"}, Plot: "A dysfunctional family road-trips cross country to get their daughter into a beauty pageant.", PosterURL: "/posters/little-miss-sunshine.jpg", Rating: 7.8, Duration: 101, Language: "English", Country: "USA", IMDBRating: 7.8, RottenTomatoes: intPtr(91)},
		{ID: 16, Title: "Spirited Away", Genres: []string{"Animation", "Fantasy", "Adventure"}, Year: 2001, Director: "Hayao Miyazaki", Cast: []string{"Rumi Hiiragi", "Miyu Irino"}, Plot: "A girl wanders into a world of spirits and must work to free herself and her parents.", PosterURL: "/posters/spirited-away.jpg", Rating: 8.6, Duration: 125, Language: "Japanese", Country: "Japan", IMDBRating: 8.6, RottenTomatoes: intPtr(96)},
	}
}

func seedRatings() []domain.Rating {
	day := func(d string) time.Time {
		t, _ := time.Parse("2006-01-02", d)
		return t
	}

	return []domain.Rating{
		{UserID: "user1", MovieID: 1, Value: 5, RatedAt: day("2024-01-15")},
		{UserID: "user1", MovieID: 2, Value: 5, RatedAt: day("2024-01-16")},
		{UserID: "user1", MovieID: 3, Value: 4, RatedAt: day("2024-01-17")},
		{UserID: "user1", MovieID: 8, Value: 5, RatedAt: day("2024-01-18")},
		{UserID: "user1", MovieID: 9, Value: 3, RatedAt: day("2024-01-19")},

		{UserID: "user2", MovieID: 1, Value: 5, RatedAt: day("2024-01-20")},
		{UserID: "user2", MovieID: 2, Value: 4, RatedAt: day("2024-01-21")},
		{UserID: "user2", MovieID: 4, Value: 5, RatedAt: day("2024-01-22")},
		{UserID: "user2", MovieID: 8, Value: 4, RatedAt: day("2024-01-23")},
		{UserID: "user2", MovieID: 10, Value: 4, RatedAt: day("2024-01-24")},

		{UserID: "user3", MovieID: 6, Value: 5, RatedAt: day("2024-01-25")},
		{UserID: "user3", MovieID: 7, Value: 5, RatedAt: day("2024-01-26")},
		{UserID: "user3", MovieID: 10, Value: 5, RatedAt: day("2024-01-27")},
		{UserID: "user3", MovieID: 13, Value: 4, RatedAt: day("2024-01-28")},
		{UserID: "user3", MovieID: 3, Value: 4, RatedAt: day("2024-01-29")},

		{UserID: "user4", MovieID: 5, Value: 5, RatedAt: day("2024-01-30")},
		{UserID: "user4", MovieID: 9, Value: 5, RatedAt: day("2024-01-31")},
		{UserID: "user4", MovieID: 12, Value: 4, RatedAt: day("2024-02-01")},
		{UserID: "user4", MovieID: 14, Value: 5, RatedAt: day("2024-02-02")},
		{UserID: "user4", MovieID: 15, Value: 4, RatedAt: day("2024-02-03")},

		{UserID: "user5", MovieID: 3, Value: 5, RatedAt: day("2024-02-04")},
		{UserID: "user5", MovieID: 6, Value: 4, RatedAt: day("2024-02-05")},
		{UserID: "user5", MovieID: 7, Value: 5, RatedAt: day("2024-02-06")},
		{UserID: "user5", MovieID: 13, Value: 5, RatedAt: day("2024-02-07")},
		{UserID: "user5", MovieID: 10, Value: 3, RatedAt: day("2024-02-08")},
	}
}
