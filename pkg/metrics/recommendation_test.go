package metrics

import (
	"errors"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestObserveRecommend(t *testing.T) {
	Init()
	Init()

	before := testutil.ToFloat64(RecommendRequests.WithLabelValues("TRENDING", "ok"))
	beforeErr := testutil.ToFloat64(RecommendRequests.WithLabelValues("TRENDING", "error"))

	ObserveRecommend("TRENDING", 0.01, 3, nil)
	ObserveRecommend("TRENDING", 0.02, 0, errors.New("db down"))

	assert.Equal(t, before+1, testutil.ToFloat64(RecommendRequests.WithLabelValues("TRENDING", "ok")))
	assert.Equal(t, beforeErr+1, testutil.ToFloat64(RecommendRequests.WithLabelValues("TRENDING", "error")))
}

func TestCacheCounters(t *testing.T) {
	hits := testutil.ToFloat64(SnapshotCache.WithLabelValues("catalog", "hit"))
	misses := testutil.ToFloat64(SnapshotCache.WithLabelValues("catalog", "miss"))

	CacheHit("catalog")
	CacheMiss("catalog")
	CacheMiss("catalog")

	assert.Equal(t, hits+1, testutil.ToFloat64(SnapshotCache.WithLabelValues("catalog", "hit")))
	assert.Equal(t, misses+2, testutil.ToFloat64(SnapshotCache.WithLabelValues("catalog", "miss")))
}
