package domain

import "time"

const (
	OrderStatusPending   = "PENDING"
	OrderStatusPaid      = "PAID"
	OrderStatusFailed    = "FAILED"
	OrderStatusRefunded  = "REFUNDED"
	OrderStatusCancelled = "CANCELLED"
)

// CREATE TABLE public.orders (
//     id          BIGINT GENERATED ALWAYS AS IDENTITY PRIMARY KEY,
//     dataset_id  BIGINT NOT NULL REFERENCES datasets(id),
//     buyer_id    BIGINT NOT NULL,
//     amount      NUMERIC NOT NULL,
//     order_date  TIMESTAMPTZ NOT NULL DEFAULT NOW(),
//     status      TEXT NOT NULL
// );

// Orders are written by the checkout subsystem; this service only reads them.
type Order struct {
	ID        uint64    `gorm:"primaryKey;autoIncrement" json:"id"`
	DatasetID uint64    `gorm:"column:dataset_id;not null" json:"dataset_id"`
	BuyerID   uint      `gorm:"column:buyer_id;not null" json:"buyer_id"`
	Amount    float64   `gorm:"column:amount;type:numeric" json:"amount"`
	OrderDate time.Time `gorm:"column:order_date" json:"order_date"`
	Status    string    `gorm:"column:status;type:text" json:"status"`
}

func (Order) TableName() string {
	return "orders"
}

func (o Order) IsPaid() bool {
	return o.Status == OrderStatusPaid
}

// PurchaseHistoryItem is a paid order joined with the dataset it bought.
type PurchaseHistoryItem struct {
	OrderID     uint64    `json:"order_id"`
	DatasetID   uint64    `json:"dataset_id"`
	DatasetName string    `json:"dataset_name"`
	Category    string    `json:"category"`
	Amount      float64   `json:"amount"`
	OrderDate   time.Time `json:"order_date"`
}
