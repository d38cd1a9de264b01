package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/tirupurthreads/storefront-backend/pkg/enums"
)

// Order is the immutable record of a placed checkout. Customer and address
// fields are snapshots copied at placement time; totals are computed once and
// never recomputed on read.
type Order struct {
	ID            uuid.UUID           `gorm:"type:uuid;default:gen_random_uuid();primaryKey"`
	UserID        uuid.UUID           `gorm:"column:user_id;type:uuid;not null;index"`
	FirstName     string              `gorm:"column:first_name;not null"`
	LastName      string              `gorm:"column:last_name;not null"`
	Email         string              `gorm:"column:email;not null"`
	Phone         string              `gorm:"column:phone"`
	Address       string              `gorm:"column:address;not null"`
	City          string              `gorm:"column:city;not null"`
	State         string              `gorm:"column:state;not null"`
	Pincode       string              `gorm:"column:pincode;not null"`
	Subtotal      int64               `gorm:"column:subtotal;not null"`
	Tax           int64               `gorm:"column:tax;not null"`
	TotalAmount   int64               `gorm:"column:total_amount;not null"`
	Status        enums.OrderStatus   `gorm:"column:status;type:text;not null;default:'placed'"`
	PaymentMethod enums.PaymentMethod `gorm:"column:payment_method;type:text;not null;default:'cod'"`
	Items         []OrderItem         `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
	CreatedAt     time.Time           `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt     time.Time           `gorm:"column:updated_at;autoUpdateTime"`
}

func (o *Order) BeforeCreate(*gorm.DB) error {
	if o.ID == uuid.Nil {
		o.ID = uuid.New()
	}
	return nil
}
