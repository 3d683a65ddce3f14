package domain

import (
	"testing"
)

func sampleMovie() Movie {
	return Movie{
		ID:       1,
		Genres:   []string{"Drama", "Crime"},
		Year:     2008,
		Rating:   9.0,
		Language: "English",
		Duration: 152,
	}
}

func TestFilters_Matches(t *testing.T) {
	maxShort := 100
	maxLong := 180

	cases := []struct {
		name    string
		filters RecommendationFilters
		want    bool
	}{
		{"all pass", RecommendationFilters{YearMin: 2000, YearMax: 2020}, true},
		{"genre intersects", RecommendationFilters{Genres: []string{"Crime", "Horror"}, YearMax: 3000}, true},
		{"genre disjoint", RecommendationFilters{Genres: []string{"Horror"}, YearMax: 3000}, false},
		{"empty genre set passes", RecommendationFilters{Genres: nil, YearMax: 3000}, true},
		{"year below range", RecommendationFilters{YearMin: 2010, YearMax: 2020}, false},
		{"year above range", RecommendationFilters{YearMin: 1990, YearMax: 2000}, false},
		{"year inclusive bounds", RecommendationFilters{YearMin: 2008, YearMax: 2008}, true},
		{"min rating floor", RecommendationFilters{MinRating: 9.0, YearMax: 3000}, true},
		{"min rating too high", RecommendationFilters{MinRating: 9.5, YearMax: 3000}, false},
		{"language match", RecommendationFilters{Languages: []string{"English"}, YearMax: 3000}, true},
		{"language mismatch", RecommendationFilters{Languages: []string{"French"}, YearMax: 3000}, false},
		{"duration ceiling ok", RecommendationFilters{MaxDuration: &maxLong, YearMax: 3000}, true},
		{"duration too long", RecommendationFilters{MaxDuration: &maxShort, YearMax: 3000}, false},
	}

	m := sampleMovie()
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.filters.Matches(m); got != tc.want {
				t.Errorf("Matches = %v, want %v", got, tc.want)
			}
		})
	}
}

func TestFilters_WithDoesNotMutate(t *testing.T) {
	original := RecommendationFilters{
		Genres:    []string{"Drama"},
		YearMin:   1990,
		YearMax:   2020,
		MinRating: 7,
	}

	newMin := 8.5
	newGenres := []string{"Comedy"}
	derived := original.With(FilterOverrides{
		MinRating: &newMin,
		Genres:    &newGenres,
	})

	if derived.MinRating != 8.5 || derived.Genres[0] != "Comedy" {
		t.Errorf("overrides not applied: %+v", derived)
	}
	if derived.YearMin != 1990 || derived.YearMax != 2020 {
		t.Errorf("untouched fields changed: %+v", derived)
	}
	if original.MinRating != 7 || original.Genres[0] != "Drama" {
		t.Errorf("original mutated: %+v", original)
	}
}

func TestFilters_WithClearsMaxDuration(t *testing.T) {
	ceiling := 120
	original := RecommendationFilters{MaxDuration: &ceiling}

	var cleared *int
	derived := original.With(FilterOverrides{MaxDuration: &cleared})

	if derived.MaxDuration != nil {
		t.Errorf("MaxDuration = %v, want nil", *derived.MaxDuration)
	}
	if original.MaxDuration == nil {
		t.Error("original mutated")
	}
}
