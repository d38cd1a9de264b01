package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// WholesaleEnquiry is a lead captured from the public wholesale form.
type WholesaleEnquiry struct {
	ID            uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey"`
	Name          string    `gorm:"column:name;not null"`
	BusinessName  string    `gorm:"column:business_name"`
	Email         string    `gorm:"column:email;not null"`
	Phone         string    `gorm:"column:phone"`
	QuantityRange string    `gorm:"column:quantity_range"`
	Message       string    `gorm:"column:message"`
	CreatedAt     time.Time `gorm:"column:created_at;autoCreateTime"`
}

func (e *WholesaleEnquiry) BeforeCreate(*gorm.DB) error {
	if e.ID == uuid.Nil {
		e.ID = uuid.New()
	}
	return nil
}
