package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	ConnectAttempts = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "event_service_mongo_connect_attempts_total",
			Help: "MongoDB connection attempts by result",
		},
		[]string{"result"},
	)

	ValidationFailures = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "event_service_validation_failures_total",
			Help: "Writes rejected before reaching the store",
		},
		[]string{"entity", "kind"},
	)

	CacheRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "event_service_cache_requests_total",
			Help: "Event cache lookups by result",
		},
		[]string{"result"},
	)
)
