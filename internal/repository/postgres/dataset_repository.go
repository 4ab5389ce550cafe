package postgres

import (
	"context"
	"errors"
	"fmt"

	"dataMarket/domain"

	"gorm.io/gorm"
)

type DatasetRepository struct {
	DB *gorm.DB
}

func NewDatasetRepository(db *gorm.DB) *DatasetRepository {
	return &DatasetRepository{
		DB: db,
	}
}

// FindAll returns the catalog ordered by id, which is the catalog order
// every ranking tie falls back to.
func (r *DatasetRepository) FindAll(ctx context.Context) ([]domain.Dataset, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("context error: %w", err)
	}

	var datasets []domain.Dataset
	err := r.DB.WithContext(ctx).Order("id ASC").Find(&datasets).Error
	if err != nil {
		return nil, fmt.Errorf("failed to find datasets: %w", err)
	}

	return datasets, nil
}

func (r *DatasetRepository) FindByIDs(ctx context.Context, ids []uint64) ([]domain.Dataset, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("context error: %w", err)
	}

	if len(ids) == 0 {
		return []domain.Dataset{}, nil
	}

	var datasets []domain.Dataset
	err := r.DB.WithContext(ctx).Where("id IN ?", ids).Order("id ASC").Find(&datasets).Error
	if err != nil {
		return nil, fmt.Errorf("failed to find datasets by ids: %w", err)
	}

	return datasets, nil
}

// FindByID reports ok=false when the dataset does not exist.
func (r *DatasetRepository) FindByID(ctx context.Context, id uint64) (domain.Dataset, bool, error) {
	if err := ctx.Err(); err != nil {
		return domain.Dataset{}, false, fmt.Errorf("context error: %w", err)
	}

	var dataset domain.Dataset
	err := r.DB.WithContext(ctx).First(&dataset, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.Dataset{}, false, nil
		}
		return domain.Dataset{}, false, fmt.Errorf("failed to find dataset: %w", err)
	}

	return dataset, true, nil
}
