package domain

// Strategy tags the origin of a recommendation. The set is closed: rendering
// code branches on it exhaustively.
type Strategy string

const (
	StrategyContentBased  Strategy = "content-based"
	StrategyCollaborative Strategy = "collaborative"
	StrategyHybrid        Strategy = "hybrid"
)

// Recommendation is one scored catalog entry produced for a single query.
// Recommendations are never persisted.
type Recommendation struct {
	Movie    Movie    `json:"movie"`
	Score    float64  `json:"score"`
	Reason   string   `json:"reason"`
	Strategy Strategy `json:"type"`
}
