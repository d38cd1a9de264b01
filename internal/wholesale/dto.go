package wholesale

import (
	"time"

	"github.com/google/uuid"

	"github.com/tirupurthreads/storefront-backend/pkg/db/models"
)

// EnquiryRequest is the bulk-order enquiry form payload.
type EnquiryRequest struct {
	Name          string `json:"name" validate:"required,max=100"`
	BusinessName  string `json:"business_name" validate:"omitempty,max=200"`
	Email         string `json:"email" validate:"required,email,max=255"`
	Phone         string `json:"phone" validate:"omitempty,min=7,max=20"`
	QuantityRange string `json:"quantity_range" validate:"omitempty,max=50"`
	Message       string `json:"message" validate:"omitempty,max=2000"`
}

// EnquiryView is the stored enquiry as returned to admins.
type EnquiryView struct {
	ID            uuid.UUID `json:"id"`
	Name          string    `json:"name"`
	BusinessName  string    `json:"business_name,omitempty"`
	Email         string    `json:"email"`
	Phone         string    `json:"phone,omitempty"`
	QuantityRange string    `json:"quantity_range,omitempty"`
	Message       string    `json:"message,omitempty"`
	CreatedAt     time.Time `json:"created_at"`
}

func viewFromModel(m models.WholesaleEnquiry) EnquiryView {
	return EnquiryView{
		ID:            m.ID,
		Name:          m.Name,
		BusinessName:  m.BusinessName,
		Email:         m.Email,
		Phone:         m.Phone,
		QuantityRange: m.QuantityRange,
		Message:       m.Message,
		CreatedAt:     m.CreatedAt,
	}
}
