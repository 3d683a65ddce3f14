package domain

// RecommendationFilters is the filter-criteria value object produced by the
// filter UI. The engine never mutates it; derive variants with With. Empty
// genre/language sets mean "no constraint", a nil MaxDuration means no
// duration ceiling.
type RecommendationFilters struct {
	Genres      []string `json:"genres"`
	YearMin     int      `json:"year_min"`
	YearMax     int      `json:"year_max"`
	MinRating   float64  `json:"min_rating"`
	Languages   []string `json:"languages"`
	MaxDuration *int     `json:"max_duration,omitempty"`
}

// FilterOverrides carries partial updates for With. Nil fields keep the
// original value.
type FilterOverrides struct {
	Genres      *[]string
	YearMin     *int
	YearMax     *int
	MinRating   *float64
	Languages   *[]string
	MaxDuration **int
}

// With returns a copy of f with the non-nil overrides applied. The receiver
// is left untouched.
func (f RecommendationFilters) With(o FilterOverrides) RecommendationFilters {
	out := f
	if o.Genres != nil {
		out.Genres = *o.Genres
	}
	if o.YearMin != nil {
		out.YearMin = *o.YearMin
	}
	if o.YearMax != nil {
		out.YearMax = *o.YearMax
	}
	if o.MinRating != nil {
		out.MinRating = *o.MinRating
	}
	if o.Languages != nil {
		out.Languages = *o.Languages
	}
	if o.MaxDuration != nil {
		out.MaxDuration = *o.MaxDuration
	}
	return out
}

// Matches reports whether the movie passes every supplied constraint. All
// constraints are conjunctive; absent constraints pass everything.
func (f RecommendationFilters) Matches(m Movie) bool {
	if len(f.Genres) > 0 && !intersects(m.Genres, f.Genres) {
		return false
	}
	if m.Year < f.YearMin || m.Year > f.YearMax {
		return false
	}
	if m.Rating < f.MinRating {
		return false
	}
	if len(f.Languages) > 0 && !contains(f.Languages, m.Language) {
		return false
	}
	if f.MaxDuration != nil && m.Duration > *f.MaxDuration {
		return false
	}
	return true
}

func intersects(a []string, b []string) bool {
	for _, v := range a {
		if contains(b, v) {
			return true
		}
	}
	return false
}

func contains(set []string, v string) bool {
	for _, s := range set {
		if s == v {
			return true
		}
	}
	return false
}
