package orders

import (
	"context"
	"fmt"

	"dataMarket/domain"
	"dataMarket/pkg/logger"
)

type OrdersRepository interface {
	FindAllPaidOrdersByConsumer(ctx context.Context, consumerID uint) ([]domain.Order, error)
}

type DatasetRepository interface {
	FindByIDs(ctx context.Context, ids []uint64) ([]domain.Dataset, error)
}

type OrdersService struct {
	orderRepo   OrdersRepository
	datasetRepo DatasetRepository
}

func NewOrdersService(orderRepo OrdersRepository, datasetRepo DatasetRepository) *OrdersService {
	return &OrdersService{
		orderRepo:   orderRepo,
		datasetRepo: datasetRepo,
	}
}

// GetPurchaseHistory returns the consumer's paid orders, newest first as
// stored, joined with dataset details. Orders for datasets that left the
// catalog keep their ids with empty names.
func (s *OrdersService) GetPurchaseHistory(ctx context.Context, consumerID uint) ([]domain.PurchaseHistoryItem, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("context error: %w", err)
	}

	orders, err := s.orderRepo.FindAllPaidOrdersByConsumer(ctx, consumerID)
	if err != nil {
		logger.Error("Failed to get paid orders", err, "consumer_id", consumerID)
		return nil, err
	}

	items := make([]domain.PurchaseHistoryItem, 0, len(orders))
	if len(orders) == 0 {
		return items, nil
	}

	seen := make(map[uint64]struct{}, len(orders))
	ids := make([]uint64, 0, len(orders))
	for _, o := range orders {
		if _, ok := seen[o.DatasetID]; ok {
			continue
		}
		seen[o.DatasetID] = struct{}{}
		ids = append(ids, o.DatasetID)
	}

	datasets, err := s.datasetRepo.FindByIDs(ctx, ids)
	if err != nil {
		logger.Error("Failed to get purchased datasets", err, "consumer_id", consumerID)
		return nil, err
	}

	byID := make(map[uint64]domain.Dataset, len(datasets))
	for _, d := range datasets {
		byID[d.ID] = d
	}

	for _, o := range orders {
		d := byID[o.DatasetID]
		items = append(items, domain.PurchaseHistoryItem{
			OrderID:     o.ID,
			DatasetID:   o.DatasetID,
			DatasetName: d.Name,
			Category:    d.Category,
			Amount:      o.Amount,
			OrderDate:   o.OrderDate,
		})
	}

	return items, nil
}
