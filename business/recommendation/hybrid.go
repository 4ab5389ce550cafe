package recommendation

import (
	"sort"

	"dataMarket/domain"
)

type ScoredCandidate struct {
	Dataset domain.Dataset
	Score   float64
	Reason  domain.ReasonKind

	// weighted contributions, kept for debugging and reason selection
	Collaborative float64
	Content       float64
	Trending      float64
}

// Combine blends the normalized signals and ranks candidates by final
// score, highest first. Equal scores keep candidate order.
func Combine(candidates []domain.Dataset, collab, content, trending ScoreMap, w Weights) []ScoredCandidate {
	out := make([]ScoredCandidate, 0, len(candidates))
	for _, d := range candidates {
		sc := ScoredCandidate{
			Dataset:       d,
			Collaborative: w.Collaborative * collab[d.ID],
			Content:       w.Content * content[d.ID],
			Trending:      w.Trending * trending[d.ID],
		}
		sc.Score = sc.Collaborative + sc.Content + sc.Trending
		sc.Reason = dominantReason(sc.Collaborative, sc.Content, sc.Trending)
		out = append(out, sc)
	}

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Score > out[j].Score
	})

	return out
}

// dominantReason picks the largest contribution; ties go to collaborative,
// then content, then trending.
func dominantReason(collab, content, trending float64) domain.ReasonKind {
	switch {
	case collab == 0 && content == 0 && trending == 0:
		return domain.ReasonExplore
	case collab >= content && collab >= trending:
		return domain.ReasonCollaborative
	case content >= trending:
		return domain.ReasonContent
	default:
		return domain.ReasonTrending
	}
}
