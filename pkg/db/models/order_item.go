package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// OrderItem snapshots one cart line at placement time. Name and price are
// copied from the product, so later catalog edits never alter placed orders.
type OrderItem struct {
	ID          uuid.UUID  `gorm:"type:uuid;default:gen_random_uuid();primaryKey"`
	OrderID     uuid.UUID  `gorm:"column:order_id;type:uuid;not null;index"`
	ProductID   *uuid.UUID `gorm:"column:product_id;type:uuid"`
	ProductName string     `gorm:"column:product_name;not null"`
	Size        string     `gorm:"column:size;not null"`
	Quantity    int        `gorm:"column:quantity;not null"`
	Price       int64      `gorm:"column:price;not null"`
	CreatedAt   time.Time  `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt   time.Time  `gorm:"column:updated_at;autoUpdateTime"`
}

func (i *OrderItem) BeforeCreate(*gorm.DB) error {
	if i.ID == uuid.Nil {
		i.ID = uuid.New()
	}
	return nil
}
