package category

import (
	"context"
	"fmt"
	"sort"

	"dataMarket/domain"
	"dataMarket/pkg/logger"
)

// DatasetRepository contract interface
type DatasetRepository interface {
	FindAll(ctx context.Context) ([]domain.Dataset, error)
}

type categoryService struct {
	datasetRepo DatasetRepository
}

func NewCategoryService(datasetRepo DatasetRepository) *categoryService {
	return &categoryService{
		datasetRepo: datasetRepo,
	}
}

// GetAllCategories returns every category in the catalog with the number of
// datasets tagged with it, sorted by name.
func (s *categoryService) GetAllCategories(ctx context.Context) ([]domain.CategorySummary, error) {
	if err := ctx.Err(); err != nil {
		logger.Error("context error when get all categories")
		return nil, fmt.Errorf("context error: %w", err)
	}

	datasets, err := s.datasetRepo.FindAll(ctx)
	if err != nil {
		logger.Error("Failed to find all datasets", err)
		return nil, err
	}

	counts := make(map[string]int)
	for _, d := range datasets {
		if d.Category == "" {
			continue
		}
		counts[d.Category]++
	}

	categories := make([]domain.CategorySummary, 0, len(counts))
	for name, n := range counts {
		categories = append(categories, domain.CategorySummary{
			Category:     name,
			DatasetCount: n,
		})
	}
	sort.Slice(categories, func(i, j int) bool {
		return categories[i].Category < categories[j].Category
	})

	return categories, nil
}
