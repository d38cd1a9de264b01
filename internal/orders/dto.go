package orders

import (
	"time"

	"github.com/google/uuid"

	"github.com/tirupurthreads/storefront-backend/pkg/db/models"
	"github.com/tirupurthreads/storefront-backend/pkg/enums"
)

// ListFilters describe the inputs supported by the admin orders list.
type ListFilters struct {
	Status   *enums.OrderStatus
	DateFrom *time.Time
	DateTo   *time.Time
	Limit    int
	Offset   int
}

// ItemView is an order line as returned to clients.
type ItemView struct {
	ID          uuid.UUID  `json:"id"`
	ProductID   *uuid.UUID `json:"product_id,omitempty"`
	ProductName string     `json:"product_name"`
	Size        string     `json:"size"`
	Quantity    int        `json:"quantity"`
	Price       int64      `json:"price"`
	LineTotal   int64      `json:"line_total"`
}

// View is the full order projection returned to clients.
type View struct {
	ID            uuid.UUID           `json:"id"`
	Number        string              `json:"number"`
	FirstName     string              `json:"first_name"`
	LastName      string              `json:"last_name"`
	Email         string              `json:"email"`
	Phone         string              `json:"phone,omitempty"`
	Address       string              `json:"address"`
	City          string              `json:"city"`
	State         string              `json:"state"`
	Pincode       string              `json:"pincode"`
	Subtotal      int64               `json:"subtotal"`
	Tax           int64               `json:"tax"`
	TotalAmount   int64               `json:"total_amount"`
	Status        enums.OrderStatus   `json:"status"`
	PaymentMethod enums.PaymentMethod `json:"payment_method"`
	Items         []ItemView          `json:"items"`
	CreatedAt     time.Time           `json:"created_at"`
}

// Summary is the compact projection used by order lists.
type Summary struct {
	ID          uuid.UUID         `json:"id"`
	Number      string            `json:"number"`
	TotalAmount int64             `json:"total_amount"`
	Status      enums.OrderStatus `json:"status"`
	ItemCount   int               `json:"item_count"`
	CreatedAt   time.Time         `json:"created_at"`
}

// ListResult wraps a page of orders plus the total match count.
type ListResult struct {
	Orders []Summary `json:"orders"`
	Total  int64     `json:"total"`
}

// ViewFromModel converts a persisted order into the client projection.
func ViewFromModel(order *models.Order) *View {
	if order == nil {
		return nil
	}
	items := make([]ItemView, 0, len(order.Items))
	for _, item := range order.Items {
		items = append(items, ItemView{
			ID:          item.ID,
			ProductID:   item.ProductID,
			ProductName: item.ProductName,
			Size:        item.Size,
			Quantity:    item.Quantity,
			Price:       item.Price,
			LineTotal:   item.Price * int64(item.Quantity),
		})
	}
	return &View{
		ID:            order.ID,
		Number:        Number(order.ID),
		FirstName:     order.FirstName,
		LastName:      order.LastName,
		Email:         order.Email,
		Phone:         order.Phone,
		Address:       order.Address,
		City:          order.City,
		State:         order.State,
		Pincode:       order.Pincode,
		Subtotal:      order.Subtotal,
		Tax:           order.Tax,
		TotalAmount:   order.TotalAmount,
		Status:        order.Status,
		PaymentMethod: order.PaymentMethod,
		Items:         items,
		CreatedAt:     order.CreatedAt,
	}
}

func summaryFromModel(order models.Order) Summary {
	count := 0
	for _, item := range order.Items {
		count += item.Quantity
	}
	return Summary{
		ID:          order.ID,
		Number:      Number(order.ID),
		TotalAmount: order.TotalAmount,
		Status:      order.Status,
		ItemCount:   count,
		CreatedAt:   order.CreatedAt,
	}
}
