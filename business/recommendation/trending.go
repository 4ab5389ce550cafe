package recommendation

import (
	"time"

	"dataMarket/domain"
)

// TrendingCounts counts paid orders per dataset placed at or after since.
func TrendingCounts(orders []domain.Order, since time.Time) map[uint64]int {
	counts := make(map[uint64]int)
	for _, o := range orders {
		if !o.IsPaid() || o.OrderDate.Before(since) {
			continue
		}
		counts[o.DatasetID]++
	}
	return counts
}

// TrendingScores scores candidates by their raw window count. Candidates
// nobody bought are left out.
func TrendingScores(counts map[uint64]int, candidates []domain.Dataset) ScoreMap {
	scores := make(ScoreMap)
	for _, c := range candidates {
		if n := counts[c.ID]; n > 0 {
			scores[c.ID] = float64(n)
		}
	}
	return scores
}
