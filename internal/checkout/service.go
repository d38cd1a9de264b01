package checkout

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/tirupurthreads/storefront-backend/internal/address"
	"github.com/tirupurthreads/storefront-backend/internal/cart"
	"github.com/tirupurthreads/storefront-backend/internal/orders"
	"github.com/tirupurthreads/storefront-backend/pkg/db/models"
	"github.com/tirupurthreads/storefront-backend/pkg/enums"
	pkgerrors "github.com/tirupurthreads/storefront-backend/pkg/errors"
	"github.com/tirupurthreads/storefront-backend/pkg/logger"
)

type txRunner interface {
	WithTx(ctx context.Context, fn func(tx *gorm.DB) error) error
}

type cartRepository interface {
	WithTx(tx *gorm.DB) *cart.Repository
	ListByUser(ctx context.Context, userID uuid.UUID) ([]models.CartItem, error)
	DeleteByUser(ctx context.Context, userID uuid.UUID) error
}

type orderRepository interface {
	WithTx(tx *gorm.DB) *orders.Repository
	Create(ctx context.Context, order *models.Order) (*models.Order, error)
}

type addressValidator interface {
	Validate(fields address.Fields) error
}

// Service places orders from the checkout wizard.
type Service interface {
	Place(ctx context.Context, userID uuid.UUID, req PlaceOrderRequest) (*orders.View, error)
}

type service struct {
	tx        txRunner
	carts     cartRepository
	orders    orderRepository
	addresses addressValidator
	taxRate   decimal.Decimal
	logg      *logger.Logger
}

// ServiceParams bundles the checkout dependencies.
type ServiceParams struct {
	Tx        txRunner
	CartRepo  cartRepository
	OrderRepo orderRepository
	Addresses addressValidator
	TaxRate   string
	Logger    *logger.Logger
}

// NewService builds the checkout service.
func NewService(params ServiceParams) (Service, error) {
	if params.Tx == nil {
		return nil, fmt.Errorf("transaction runner is required")
	}
	if params.CartRepo == nil {
		return nil, fmt.Errorf("cart repository is required")
	}
	if params.OrderRepo == nil {
		return nil, fmt.Errorf("orders repository is required")
	}
	if params.Addresses == nil {
		return nil, fmt.Errorf("address validator is required")
	}
	rate, err := decimal.NewFromString(params.TaxRate)
	if err != nil {
		return nil, fmt.Errorf("invalid tax rate %q: %w", params.TaxRate, err)
	}
	return &service{
		tx:        params.Tx,
		carts:     params.CartRepo,
		orders:    params.OrderRepo,
		addresses: params.Addresses,
		taxRate:   rate,
		logg:      params.Logger,
	}, nil
}

// Place validates the shipping details, then snapshots the cart into an order,
// inserts its line items, and clears the cart, all inside one transaction. A
// failure at any write leaves the cart untouched.
func (s *service) Place(ctx context.Context, userID uuid.UUID, req PlaceOrderRequest) (*orders.View, error) {
	if userID == uuid.Nil {
		return nil, pkgerrors.New(pkgerrors.CodeUnauthorized, "user identity missing")
	}

	if err := s.addresses.Validate(address.Fields{
		Line:     req.Address,
		State:    req.State,
		District: req.District,
		Pincode:  req.Pincode,
	}); err != nil {
		return nil, err
	}

	method := enums.PaymentMethod(strings.ToLower(strings.TrimSpace(req.PaymentMethod)))
	if !method.IsValid() {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "payment method not supported").
			WithDetails(map[string]any{"payment_method": req.PaymentMethod, "supported": []string{"cod"}})
	}

	var placed *models.Order
	err := s.tx.WithTx(ctx, func(tx *gorm.DB) error {
		cartRepo := s.carts.WithTx(tx)
		orderRepo := s.orders.WithTx(tx)

		items, err := cartRepo.ListByUser(ctx, userID)
		if err != nil {
			return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "load cart")
		}
		if len(items) == 0 {
			return pkgerrors.New(pkgerrors.CodeValidation, "cart is empty")
		}

		lines := make([]models.OrderItem, 0, len(items))
		for _, item := range items {
			if item.Product == nil {
				return pkgerrors.New(pkgerrors.CodeConflict, "cart references a missing product")
			}
			if !item.Product.IsActive {
				return pkgerrors.New(pkgerrors.CodeConflict, "cart references a retired product").
					WithDetails(map[string]any{"product_id": item.ProductID.String()})
			}
			productID := item.ProductID
			lines = append(lines, models.OrderItem{
				ProductID:   &productID,
				ProductName: item.Product.Name,
				Size:        item.Size,
				Quantity:    item.Quantity,
				Price:       item.Product.Price,
			})
		}

		totals := cart.ComputeTotals(items, s.taxRate)

		order := &models.Order{
			UserID:        userID,
			FirstName:     strings.TrimSpace(req.FirstName),
			LastName:      strings.TrimSpace(req.LastName),
			Email:         strings.ToLower(strings.TrimSpace(req.Email)),
			Phone:         strings.TrimSpace(req.Phone),
			Address:       strings.TrimSpace(req.Address),
			City:          strings.TrimSpace(req.District),
			State:         strings.TrimSpace(req.State),
			Pincode:       strings.TrimSpace(req.Pincode),
			Subtotal:      totals.Subtotal,
			Tax:           totals.Tax,
			TotalAmount:   totals.Total,
			Status:        enums.OrderStatusPlaced,
			PaymentMethod: method,
			Items:         lines,
		}

		if _, err := orderRepo.Create(ctx, order); err != nil {
			return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "persist order")
		}

		if err := cartRepo.DeleteByUser(ctx, userID); err != nil {
			return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "clear cart")
		}

		placed = order
		return nil
	})
	if err != nil {
		return nil, err
	}

	if s.logg != nil {
		doneCtx := s.logg.WithOrderID(ctx, placed.ID.String())
		s.logg.Info(doneCtx, "order placed")
	}

	return orders.ViewFromModel(placed), nil
}
