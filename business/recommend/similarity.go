package recommend

import (
	"context"
	"math"
	"sort"

	"movieRadar/domain"
)

// neighbor is another user whose rating vector clears the similarity floor.
type neighbor struct {
	userID     string
	similarity float64
}

// findNeighbors computes cosine similarity between the target vector and
// every other user's vector, keeps those above the floor and returns the top
// MaxNeighbors. Users are scanned in sorted-id order and the sort is stable,
// so equal similarities rank by user id.
func (s *Service) findNeighbors(ctx context.Context, userID string, vector map[uint64]float64) ([]neighbor, error) {
	users, err := s.ratings.AllUsers(ctx)
	if err != nil {
		return nil, err
	}
	sort.Strings(users)

	neighbors := make([]neighbor, 0, len(users))
	for _, other := range users {
		if other == userID {
			continue
		}

		facts, err := s.ratings.RatingsOf(ctx, other)
		if err != nil {
			return nil, err
		}

		otherVector := make(map[uint64]float64, len(facts))
		for _, f := range facts {
			otherVector[f.MovieID] = f.Value
		}

		sim := cosineSimilarity(vector, otherVector)
		if sim > s.cfg.SimilarityFloor {
			neighbors = append(neighbors, neighbor{userID: other, similarity: sim})
		}
	}

	sort.SliceStable(neighbors, func(i, j int) bool {
		return neighbors[i].similarity > neighbors[j].similarity
	})
	if len(neighbors) > s.cfg.MaxNeighbors {
		neighbors = neighbors[:s.cfg.MaxNeighbors]
	}

	return neighbors, nil
}

// cosineSimilarity restricts both vectors to their commonly-rated movies and
// returns the cosine of the restricted vectors. Empty intersections and zero
// norms yield 0 rather than a numeric fault.
func cosineSimilarity(a, b map[uint64]float64) float64 {
	var dot, normA, normB float64
	common := 0

	for movieID, ra := range a {
		rb, ok := b[movieID]
		if !ok {
			continue
		}
		common++
		dot += ra * rb
		normA += ra * ra
		normB += rb * rb
	}

	if common == 0 || normA == 0 || normB == 0 {
		return 0
	}

	return dot / (math.Sqrt(normA) * math.Sqrt(normB))
}

func ratingVector(userRatings []domain.Rating) map[uint64]float64 {
	vector := make(map[uint64]float64, len(userRatings))
	for _, r := range userRatings {
		vector[r.MovieID] = r.Value
	}
	return vector
}
