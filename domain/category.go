package domain

// Categories are a single text tag on each dataset, so the overview is
// derived from the catalog instead of a table of its own.
type CategorySummary struct {
	Category     string `json:"category"`
	DatasetCount int    `json:"dataset_count"`
}
