package domain

import (
	"time"
)

// CREATE TABLE public.datasets (
//     id              BIGINT GENERATED ALWAYS AS IDENTITY PRIMARY KEY,
//     provider_id     BIGINT,
//     name            TEXT NOT NULL,
//     description     TEXT,
//     category        TEXT NOT NULL,
//     price           NUMERIC NOT NULL,
//     created_at      TIMESTAMPTZ DEFAULT NOW()
// );

type Dataset struct {
	ID          uint64    `gorm:"primaryKey;autoIncrement" json:"id"`
	ProviderID  uint64    `gorm:"column:provider_id" json:"provider_id"`
	Name        string    `gorm:"column:name;type:text;not null" json:"name"`
	Description string    `gorm:"column:description;type:text" json:"description"`
	Category    string    `gorm:"column:category;type:text;not null" json:"category"`
	Price       float64   `gorm:"column:price;type:numeric" json:"price"`
	CreatedAt   time.Time `gorm:"column:created_at" json:"created_at"`
}

func (Dataset) TableName() string {
	return "datasets"
}
