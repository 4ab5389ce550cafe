package postgres

import (
	"context"
	"fmt"

	"dataMarket/domain"

	"gorm.io/gorm"
)

type OrdersRepository struct {
	DB *gorm.DB
}

func NewOrdersRepository(db *gorm.DB) *OrdersRepository {
	return &OrdersRepository{
		DB: db,
	}
}

func (r *OrdersRepository) FindAllPaidOrdersByConsumer(ctx context.Context, consumerID uint) ([]domain.Order, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("context error: %w", err)
	}

	var orders []domain.Order
	err := r.DB.WithContext(ctx).
		Where("buyer_id = ? AND status = ?", consumerID, domain.OrderStatusPaid).
		Order("order_date DESC").
		Find(&orders).Error
	if err != nil {
		return nil, fmt.Errorf("failed to find paid orders for consumer: %w", err)
	}

	return orders, nil
}

func (r *OrdersRepository) FindAllPaidOrders(ctx context.Context) ([]domain.Order, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("context error: %w", err)
	}

	var orders []domain.Order
	err := r.DB.WithContext(ctx).
		Where("status = ?", domain.OrderStatusPaid).
		Order("id ASC").
		Find(&orders).Error
	if err != nil {
		return nil, fmt.Errorf("failed to find paid orders: %w", err)
	}

	return orders, nil
}
