package redfish

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	fetchTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "redfish_fetch_total",
			Help: "GET requests sent to the Redfish server by service and status code (\"error\" for transport failures)",
		},
		[]string{"service", "code"},
	)

	fetchDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "redfish_fetch_duration_seconds",
			Help:    "Time from request to decoded document (per service)",
			Buckets: []float64{0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10, 30},
		},
		[]string{"service"},
	)

	fetchInFlight = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "redfish_fetch_in_flight",
			Help: "GET requests currently awaiting a response",
		},
	)

	cacheHits = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "redfish_fetch_cache_hits_total",
			Help: "Fetches answered from the document cache (per service)",
		},
		[]string{"service"},
	)
)
