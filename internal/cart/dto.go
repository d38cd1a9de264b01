package cart

import (
	"time"

	"github.com/google/uuid"

	"github.com/tirupurthreads/storefront-backend/pkg/db/models"
)

// AddItemRequest is the payload for adding a garment to the cart.
type AddItemRequest struct {
	ProductID string `json:"product_id" validate:"required,uuid4"`
	Size      string `json:"size" validate:"required,max=10"`
	Quantity  int    `json:"quantity" validate:"omitempty,min=1,max=99"`
}

// ItemView is a cart line joined with its product snapshot.
type ItemView struct {
	ID        uuid.UUID  `json:"id"`
	ProductID uuid.UUID  `json:"product_id"`
	Name      string     `json:"name"`
	ImageURL  string     `json:"image_url,omitempty"`
	Size      string     `json:"size"`
	Quantity  int        `json:"quantity"`
	Price     int64      `json:"price"`
	LineTotal int64      `json:"line_total"`
	AddedAt   time.Time  `json:"added_at"`
}

// Totals carries the rupee amounts derived from the cart contents.
type Totals struct {
	Subtotal int64 `json:"subtotal"`
	Tax      int64 `json:"tax"`
	Total    int64 `json:"total"`
}

// View is the full cart returned to the storefront.
type View struct {
	Items  []ItemView `json:"items"`
	Totals Totals     `json:"totals"`
}

func itemViewFromModel(item models.CartItem) ItemView {
	view := ItemView{
		ID:        item.ID,
		ProductID: item.ProductID,
		Size:      item.Size,
		Quantity:  item.Quantity,
		AddedAt:   item.CreatedAt,
	}
	if item.Product != nil {
		view.Name = item.Product.Name
		view.ImageURL = item.Product.ImageURL
		view.Price = item.Product.Price
		view.LineTotal = item.Product.Price * int64(item.Quantity)
	}
	return view
}
