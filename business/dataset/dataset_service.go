package dataset

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"dataMarket/domain"
	"dataMarket/pkg/logger"
)

var ErrDatasetNotFound = errors.New("dataset not found")

// DatasetRepository contract interface
type DatasetRepository interface {
	FindAll(ctx context.Context) ([]domain.Dataset, error)
	FindByID(ctx context.Context, id uint64) (domain.Dataset, bool, error)
}

type datasetService struct {
	datasetRepo DatasetRepository
}

func NewDatasetService(datasetRepo DatasetRepository) *datasetService {
	return &datasetService{
		datasetRepo: datasetRepo,
	}
}

// GetAllDatasets lists the catalog, optionally only one category
// (case-insensitive).
func (s *datasetService) GetAllDatasets(ctx context.Context, category string) ([]domain.Dataset, error) {
	if err := ctx.Err(); err != nil {
		logger.Error("context error when get all datasets")
		return nil, fmt.Errorf("context error: %w", err)
	}

	datasets, err := s.datasetRepo.FindAll(ctx)
	if err != nil {
		logger.Error("Failed to find all datasets", err)
		return nil, err
	}

	category = strings.TrimSpace(category)
	if category == "" {
		return datasets, nil
	}

	filtered := make([]domain.Dataset, 0, len(datasets))
	for _, d := range datasets {
		if strings.EqualFold(d.Category, category) {
			filtered = append(filtered, d)
		}
	}

	return filtered, nil
}

func (s *datasetService) GetDatasetByID(ctx context.Context, id uint64) (domain.Dataset, error) {
	if id == 0 {
		logger.Error("invalid dataset id")
		return domain.Dataset{}, ErrDatasetNotFound
	}

	if err := ctx.Err(); err != nil {
		logger.Error("context error when get dataset by id")
		return domain.Dataset{}, fmt.Errorf("context error: %w", err)
	}

	dataset, ok, err := s.datasetRepo.FindByID(ctx, id)
	if err != nil {
		logger.Error("failed to find dataset by id", err, "dataset_id", id)
		return domain.Dataset{}, err
	}
	if !ok {
		return domain.Dataset{}, ErrDatasetNotFound
	}

	return dataset, nil
}
