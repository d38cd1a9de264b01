package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/gorm"

	"github.com/tirupurthreads/storefront-backend/pkg/enums"
)

// Product is a catalog garment. Price is whole rupees; carts and orders copy it
// at their own points in time, so editing a product never rewrites history.
type Product struct {
	ID          uuid.UUID           `gorm:"type:uuid;default:gen_random_uuid();primaryKey"`
	Name        string              `gorm:"column:name;not null"`
	Description string              `gorm:"column:description"`
	Price       int64               `gorm:"column:price;not null"`
	ImageURL    string              `gorm:"column:image_url"`
	Gender      enums.ProductGender `gorm:"column:gender;type:text;not null"`
	ProductType enums.ProductType   `gorm:"column:product_type;type:text;not null"`
	Material    string              `gorm:"column:material"`
	Sizes       pq.StringArray      `gorm:"column:sizes;type:text[]"`
	IsActive    bool                `gorm:"column:is_active;not null;default:true"`
	CreatedAt   time.Time           `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt   time.Time           `gorm:"column:updated_at;autoUpdateTime"`
}

func (p *Product) BeforeCreate(*gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	return nil
}
