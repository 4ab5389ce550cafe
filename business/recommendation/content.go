package recommendation

import "dataMarket/domain"

// ContentScores rates candidates by the share of the consumer's purchases
// that fall in the candidate's category.
func ContentScores(purchased []domain.Dataset, candidates []domain.Dataset) ScoreMap {
	scores := make(ScoreMap)
	if len(purchased) == 0 {
		return scores
	}

	hist := make(map[string]int)
	for _, d := range purchased {
		hist[d.Category]++
	}

	total := float64(len(purchased))
	for _, c := range candidates {
		if n := hist[c.Category]; n > 0 {
			scores[c.ID] = float64(n) / total
		}
	}

	return scores
}
