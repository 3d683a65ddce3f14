package recommend

import (
	"fmt"
	"math"
	"sort"
	"strings"

	"movieRadar/domain"
)

func (s *Service) contentBased(userRatings []domain.Rating, filters *domain.RecommendationFilters, limit int) []domain.Recommendation {
	if limit <= 0 {
		return []domain.Recommendation{}
	}
	if len(userRatings) == 0 {
		return s.popular(filters, limit)
	}

	prefs := s.genrePreferences(userRatings)
	rated := ratedMovieIDs(userRatings)

	recs := make([]domain.Recommendation, 0, len(s.catalog))
	for _, m := range s.catalog {
		if _, ok := rated[m.ID]; ok {
			continue
		}
		if !passesFilters(m, filters) {
			continue
		}

		recs = append(recs, domain.Recommendation{
			Movie:    m,
			Score:    s.contentScore(m, prefs),
			Reason:   contentReason(m, prefs),
			Strategy: domain.StrategyContentBased,
		})
	}

	sortByScore(recs)
	if len(recs) > limit {
		recs = recs[:limit]
	}

	return recs
}

// genrePreferences derives the user's mean rating per genre tag. A movie with
// several tags contributes its rating to each tag independently. Ratings of
// movies missing from the catalog are skipped.
func (s *Service) genrePreferences(userRatings []domain.Rating) map[string]float64 {
	sums := make(map[string]float64)
	counts := make(map[string]int)

	for _, r := range userRatings {
		movie, ok := s.byID[r.MovieID]
		if !ok {
			continue
		}
		for _, genre := range movie.Genres {
			sums[genre] += r.Value
			counts[genre]++
		}
	}

	prefs := make(map[string]float64, len(sums))
	for genre, total := range sums {
		prefs[genre] = total / float64(counts[genre])
	}

	return prefs
}

// contentScore sums the genre-affinity average, a quality boost and a mild
// recency bonus, clamped to the rating scale. A genre absent from the
// preference map contributes nothing.
func (s *Service) contentScore(m domain.Movie, prefs map[string]float64) float64 {
	score := 0.0
	matches := 0

	for _, genre := range m.Genres {
		if pref, ok := prefs[genre]; ok {
			score += pref
			matches++
		}
	}
	if matches > 0 {
		score /= float64(matches)
	}

	score += m.Rating / 10 * qualityBoostFactor

	currentYear := s.now().Year()
	ageBonus := float64(currentYear-m.Year+recencyGraceYears) / recencyScale
	score += math.Max(0, ageBonus)

	return math.Min(maxContentScore, math.Max(0, score))
}

// contentReason cites the user's strongest genres when the movie shares one,
// otherwise falls back to the movie's own pedigree.
func contentReason(m domain.Movie, prefs map[string]float64) string {
	top := topGenres(prefs, reasonTopGenres)

	matching := make([]string, 0, len(m.Genres))
	for _, genre := range m.Genres {
		for _, t := range top {
			if genre == t {
				matching = append(matching, genre)
				break
			}
		}
	}

	if len(matching) > 0 {
		return fmt.Sprintf("You enjoy %s movies", strings.Join(matching, " and "))
	}

	return fmt.Sprintf("Highly rated %s movie (%.1f/10)", m.PrimaryGenre(), m.Rating)
}

// topGenres returns the n best-loved genres, ties broken by name so the
// result is deterministic.
func topGenres(prefs map[string]float64, n int) []string {
	genres := make([]string, 0, len(prefs))
	for genre := range prefs {
		genres = append(genres, genre)
	}

	sort.Slice(genres, func(i, j int) bool {
		if prefs[genres[i]] != prefs[genres[j]] {
			return prefs[genres[i]] > prefs[genres[j]]
		}
		return genres[i] < genres[j]
	})

	if len(genres) > n {
		genres = genres[:n]
	}

	return genres
}
