package observability

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	MatchRequests = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "pawmatch",
		Name:      "match_requests_total",
		Help:      "Total number of match queries served",
	})

	MatchesFound = promauto.NewHistogram(prometheus.HistogramOpts{
		Namespace: "pawmatch",
		Name:      "matches_found",
		Help:      "Number of matches returned per query",
		Buckets:   prometheus.LinearBuckets(0, 1, 10),
	})

	ImagesAnalyzed = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "pawmatch",
		Name:      "images_analyzed_total",
		Help:      "Total number of images analyzed, by provider",
	}, []string{"provider"})

	VisionFallbacks = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "pawmatch",
		Name:      "vision_fallbacks_total",
		Help:      "Total number of provider failures degraded to mock results",
	}, []string{"provider"})

	HTTPRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "pawmatch",
		Name:      "http_request_duration_seconds",
		Help:      "HTTP request duration",
		Buckets:   prometheus.DefBuckets,
	}, []string{"method", "path", "status"})

	WSConnections = promauto.NewGauge(prometheus.GaugeOpts{
		Namespace: "pawmatch",
		Name:      "ws_connections",
		Help:      "Number of active WebSocket connections",
	})
)
