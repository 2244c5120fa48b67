package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "flowerforecast_http_requests_total",
			Help: "Total HTTP requests by method, route and status code",
		},
		[]string{"method", "route", "status"},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "flowerforecast_http_request_duration_seconds",
			Help:    "HTTP request latency in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "route"},
	)

	SearchMatches = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "flowerforecast_search_matches_total",
			Help: "Ranked matches returned, by verdict",
		},
		[]string{"verdict"},
	)

	CacheHits = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "flowerforecast_cache_hits_total",
			Help: "Responses served from the cache",
		},
	)

	CacheMisses = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "flowerforecast_cache_misses_total",
			Help: "Cache lookups that fell through to the handler",
		},
	)

	RateLimited = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "flowerforecast_rate_limited_total",
			Help: "Requests rejected by the per-client rate limiter",
		},
	)
)
