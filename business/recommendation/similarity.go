package recommendation

// PurchaseSet is the set of dataset ids a consumer has paid for.
type PurchaseSet map[uint64]struct{}

func NewPurchaseSet(ids ...uint64) PurchaseSet {
	s := make(PurchaseSet, len(ids))
	for _, id := range ids {
		s[id] = struct{}{}
	}
	return s
}

func (s PurchaseSet) Add(id uint64) {
	s[id] = struct{}{}
}

func (s PurchaseSet) Has(id uint64) bool {
	_, ok := s[id]
	return ok
}

// Jaccard returns |a ∩ b| / |a ∪ b|. Two empty sets have similarity 0.
func Jaccard(a, b PurchaseSet) float64 {
	if len(a) == 0 && len(b) == 0 {
		return 0
	}

	small, large := a, b
	if len(small) > len(large) {
		small, large = large, small
	}

	inter := 0
	for id := range small {
		if large.Has(id) {
			inter++
		}
	}

	union := len(a) + len(b) - inter
	return float64(inter) / float64(union)
}

// SimilarConsumers scores every other consumer against own and keeps the
// ones whose similarity is strictly above threshold.
func SimilarConsumers(consumerID uint, own PurchaseSet, all map[uint]PurchaseSet, threshold float64) map[uint]float64 {
	out := make(map[uint]float64)
	if len(own) == 0 {
		return out
	}

	for other, set := range all {
		if other == consumerID {
			continue
		}
		if sim := Jaccard(own, set); sim > threshold {
			out[other] = sim
		}
	}

	return out
}
