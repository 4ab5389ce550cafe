package recommendation

import (
	"sort"

	"dataMarket/domain"
)

// CollaborativeScores sums, per candidate, the similarity of every
// neighbour that bought it. A consumer without history gets no scores.
func CollaborativeScores(
	own PurchaseSet,
	similar map[uint]float64,
	all map[uint]PurchaseSet,
	candidates []domain.Dataset,
) ScoreMap {
	scores := make(ScoreMap)
	if len(own) == 0 || len(similar) == 0 {
		return scores
	}

	// fixed neighbour order keeps float sums reproducible
	neighbours := make([]uint, 0, len(similar))
	for id := range similar {
		neighbours = append(neighbours, id)
	}
	sort.Slice(neighbours, func(i, j int) bool { return neighbours[i] < neighbours[j] })

	for _, c := range candidates {
		var sum float64
		for _, n := range neighbours {
			if all[n].Has(c.ID) {
				sum += similar[n]
			}
		}
		if sum > 0 {
			scores[c.ID] = sum
		}
	}

	return scores
}
