package metrics

import "github.com/prometheus/client_golang/prometheus"

var (
	// Latency of HTTP handlers by route
	RequestDuration = prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "http_request_duration_seconds",
		Help:    "Latency of HTTP requests by method and route",
		Buckets: prometheus.DefBuckets,
	}, []string{"method", "route"})

	// Total HTTP requests served
	RequestsTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "http_requests_total",
		Help: "Total HTTP requests by method, route and status",
	}, []string{"method", "route", "status"})
)

func Init() {
	prometheus.MustRegister(
		RequestDuration,
		RequestsTotal,
	)
}
