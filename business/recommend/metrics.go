package recommend

import (
	"github.com/prometheus/client_golang/prometheus"
)

var (
	RecommendationsServedTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "recommendations_served_total",
			Help: "Count of recommendation queries served by strategy.",
		},
		[]string{"strategy"},
	)

	RatingUpsertsTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "rating_upserts_total",
			Help: "Count of rating facts written through the facade.",
		},
	)
)

func init() {
	prometheus.MustRegister(RecommendationsServedTotal, RatingUpsertsTotal)
}
