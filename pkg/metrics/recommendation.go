package metrics

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
)

var (
	// Latency of the recommendation HTTP handlers, by recommendation type
	RecommendLatency = prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "reco_recommend_latency_seconds",
		Help:    "Latency of recommendation handlers",
		Buckets: prometheus.DefBuckets,
	}, []string{"type"})

	// Number of recommendation lists served
	RecommendRequests = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "reco_recommend_requests_total",
		Help: "Total number of recommendation requests by type and outcome",
	}, []string{"type", "outcome"})

	// Items returned per list
	RecommendItems = prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "reco_recommend_items",
		Help:    "Number of recommendations returned per request",
		Buckets: []float64{0, 1, 5, 10, 25, 50, 100},
	}, []string{"type"})

	SnapshotCache = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "reco_snapshot_cache_total",
		Help: "Snapshot cache lookups by kind and result",
	}, []string{"kind", "result"})

	BreakerState = prometheus.NewGaugeVec(prometheus.GaugeOpts{
		Name: "reco_store_breaker_state",
		Help: "Circuit breaker state of the storage guard (0 closed, 1 half-open, 2 open)",
	}, []string{"name"})

	registerOnce sync.Once
)

// Init registers the collectors with the default registry. Safe to call more than once.
func Init() {
	registerOnce.Do(func() {
		prometheus.MustRegister(
			RecommendLatency,
			RecommendRequests,
			RecommendItems,
			SnapshotCache,
			BreakerState,
		)
	})
}

func ObserveRecommend(recoType string, seconds float64, items int, err error) {
	outcome := "ok"
	if err != nil {
		outcome = "error"
	}

	RecommendLatency.WithLabelValues(recoType).Observe(seconds)
	RecommendRequests.WithLabelValues(recoType, outcome).Inc()
	if err == nil {
		RecommendItems.WithLabelValues(recoType).Observe(float64(items))
	}
}

func CacheHit(kind string) {
	SnapshotCache.WithLabelValues(kind, "hit").Inc()
}

func CacheMiss(kind string) {
	SnapshotCache.WithLabelValues(kind, "miss").Inc()
}
