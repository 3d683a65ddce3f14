package recommend

// Scoring constants. The quality boost maps the 0-10 catalog rating onto a
// 0-2 contribution; the recency bonus decays linearly with age and tops out
// around 0.2 for a current-year release.
const (
	defaultSimilarityFloor     = 0.1
	defaultMaxNeighbors        = 5
	defaultContentWeight       = 0.6
	defaultCollaborativeWeight = 0.4

	qualityBoostFactor = 2.0
	recencyGraceYears  = 10
	recencyScale       = 50.0
	maxContentScore    = 5.0

	// how many of the user's favourite genres a reason string may cite
	reasonTopGenres = 2
)

// Config holds the engine tuning values. The similarity floor and neighbor
// cap are fixed product constants by default but stay configurable.
type Config struct {
	// SimilarityFloor discards near-noise neighbors; similarities at or
	// below it are ignored.
	SimilarityFloor float64

	// MaxNeighbors caps how many similar users feed the collaborative
	// scorer.
	MaxNeighbors int

	// ContentWeight and CollaborativeWeight blend the hybrid score. They
	// are fixed regardless of data sparsity.
	ContentWeight       float64
	CollaborativeWeight float64
}

func DefaultConfig() Config {
	return Config{
		SimilarityFloor:     defaultSimilarityFloor,
		MaxNeighbors:        defaultMaxNeighbors,
		ContentWeight:       defaultContentWeight,
		CollaborativeWeight: defaultCollaborativeWeight,
	}
}
