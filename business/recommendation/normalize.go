package recommendation

// ScoreMap maps a dataset id to a non-negative score.
type ScoreMap map[uint64]float64

// Normalize divides every score by the maximum so the top entry becomes 1.
// Empty maps and maps whose maximum is not positive come back as copies.
func Normalize(scores ScoreMap) ScoreMap {
	out := make(ScoreMap, len(scores))

	var maxScore float64
	for id, v := range scores {
		out[id] = v
		if v > maxScore {
			maxScore = v
		}
	}

	if maxScore <= 0 {
		return out
	}

	for id, v := range out {
		out[id] = v / maxScore
	}
	return out
}
