package domain

import (
	"fmt"
)

// RecommendationType tells the client which pipeline produced a recommendation.
type RecommendationType string

const (
	RecommendationHybrid       RecommendationType = "HYBRID"
	RecommendationTrending     RecommendationType = "TRENDING"
	RecommendationContentBased RecommendationType = "CONTENT_BASED"
)

func (t RecommendationType) Valid() bool {
	switch t {
	case RecommendationHybrid, RecommendationTrending, RecommendationContentBased:
		return true
	default:
		return false
	}
}

func (t RecommendationType) String() string {
	return string(t)
}

// ReasonKind identifies the signal a recommendation is explained by.
type ReasonKind int

const (
	ReasonCollaborative ReasonKind = iota
	ReasonContent
	ReasonTrending
	ReasonExplore
	ReasonSimilar
)

// Text renders the human readable reason. category is only used by the
// category-based kinds.
func (k ReasonKind) Text(category string) string {
	switch k {
	case ReasonCollaborative:
		return "Consumers with purchases like yours also bought this dataset"
	case ReasonContent:
		return fmt.Sprintf("Because you purchased datasets in the %s category", category)
	case ReasonTrending:
		return "Trending in the marketplace right now"
	case ReasonSimilar:
		return fmt.Sprintf("Another dataset in the %s category", category)
	default:
		return "Recommended from the marketplace catalog"
	}
}

func (k ReasonKind) String() string {
	switch k {
	case ReasonCollaborative:
		return "collaborative"
	case ReasonContent:
		return "content"
	case ReasonTrending:
		return "trending"
	case ReasonSimilar:
		return "similar"
	default:
		return "explore"
	}
}

type Recommendation struct {
	DatasetID           uint64             `json:"datasetId"`
	DatasetName         string             `json:"datasetName"`
	Description         string             `json:"description"`
	Category            string             `json:"category"`
	Price               float64            `json:"price"`
	RecommendationScore float64            `json:"recommendationScore"`
	RecommendationType  RecommendationType `json:"recommendationType"`
	Reason              string             `json:"reason"`
	PurchaseCount       int                `json:"purchaseCount"`
}
