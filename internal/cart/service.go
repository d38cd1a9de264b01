package cart

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/tirupurthreads/storefront-backend/pkg/db/models"
	pkgerrors "github.com/tirupurthreads/storefront-backend/pkg/errors"
)

// Service defines the cart operations used by the controller.
type Service interface {
	Add(ctx context.Context, userID uuid.UUID, req AddItemRequest) (*View, error)
	Increase(ctx context.Context, userID, itemID uuid.UUID) (*View, error)
	Decrease(ctx context.Context, userID, itemID uuid.UUID) (*View, error)
	Remove(ctx context.Context, userID, itemID uuid.UUID) (*View, error)
	Get(ctx context.Context, userID uuid.UUID) (*View, error)
}

type cartRepository interface {
	Create(ctx context.Context, item *models.CartItem) (*models.CartItem, error)
	FindByUserProductSize(ctx context.Context, userID, productID uuid.UUID, size string) (*models.CartItem, error)
	FindByIDAndUser(ctx context.Context, id, userID uuid.UUID) (*models.CartItem, error)
	ListByUser(ctx context.Context, userID uuid.UUID) ([]models.CartItem, error)
	UpdateQuantity(ctx context.Context, id, userID uuid.UUID, quantity int) error
	Delete(ctx context.Context, id, userID uuid.UUID) error
}

type productFinder interface {
	FindByID(ctx context.Context, id uuid.UUID) (*models.Product, error)
}

type service struct {
	repo     cartRepository
	products productFinder
	taxRate  decimal.Decimal
}

// NewService constructs a cart service. taxRate is the fraction applied to the
// subtotal, e.g. "0.18".
func NewService(repo cartRepository, products productFinder, taxRate string) (Service, error) {
	if repo == nil {
		return nil, fmt.Errorf("cart repository is required")
	}
	if products == nil {
		return nil, fmt.Errorf("product finder is required")
	}
	rate, err := decimal.NewFromString(taxRate)
	if err != nil {
		return nil, fmt.Errorf("invalid tax rate %q: %w", taxRate, err)
	}
	if rate.IsNegative() {
		return nil, fmt.Errorf("tax rate cannot be negative")
	}
	return &service{repo: repo, products: products, taxRate: rate}, nil
}

func (s *service) Add(ctx context.Context, userID uuid.UUID, req AddItemRequest) (*View, error) {
	if userID == uuid.Nil {
		return nil, pkgerrors.New(pkgerrors.CodeUnauthorized, "user identity missing")
	}
	productID, err := uuid.Parse(req.ProductID)
	if err != nil {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "product id must be a UUID")
	}

	product, err := s.products.FindByID(ctx, productID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.New(pkgerrors.CodeNotFound, "product not found")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "load product")
	}
	if !product.IsActive {
		return nil, pkgerrors.New(pkgerrors.CodeNotFound, "product not found")
	}
	if !hasSize(product.Sizes, req.Size) {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "size not offered for this product").
			WithDetails(map[string]any{"size": req.Size, "offered": []string(product.Sizes)})
	}

	qty := req.Quantity
	if qty <= 0 {
		qty = 1
	}

	existing, err := s.repo.FindByUserProductSize(ctx, userID, productID, req.Size)
	switch {
	case err == nil:
		if err := s.repo.UpdateQuantity(ctx, existing.ID, userID, existing.Quantity+qty); err != nil {
			return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "bump cart quantity")
		}
	case errors.Is(err, gorm.ErrRecordNotFound):
		_, err = s.repo.Create(ctx, &models.CartItem{
			UserID:    userID,
			ProductID: productID,
			Size:      req.Size,
			Quantity:  qty,
		})
		if err != nil {
			return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "add cart line")
		}
	default:
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "load cart line")
	}

	return s.Get(ctx, userID)
}

func (s *service) Increase(ctx context.Context, userID, itemID uuid.UUID) (*View, error) {
	item, err := s.loadOwned(ctx, userID, itemID)
	if err != nil {
		return nil, err
	}
	if err := s.repo.UpdateQuantity(ctx, item.ID, userID, item.Quantity+1); err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "bump cart quantity")
	}
	return s.Get(ctx, userID)
}

// Decrease lowers the quantity by one. A line already at one is left alone;
// removal is an explicit, separate action.
func (s *service) Decrease(ctx context.Context, userID, itemID uuid.UUID) (*View, error) {
	item, err := s.loadOwned(ctx, userID, itemID)
	if err != nil {
		return nil, err
	}
	if item.Quantity > 1 {
		if err := s.repo.UpdateQuantity(ctx, item.ID, userID, item.Quantity-1); err != nil {
			return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "lower cart quantity")
		}
	}
	return s.Get(ctx, userID)
}

func (s *service) Remove(ctx context.Context, userID, itemID uuid.UUID) (*View, error) {
	if _, err := s.loadOwned(ctx, userID, itemID); err != nil {
		return nil, err
	}
	if err := s.repo.Delete(ctx, itemID, userID); err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "remove cart line")
	}
	return s.Get(ctx, userID)
}

func (s *service) Get(ctx context.Context, userID uuid.UUID) (*View, error) {
	if userID == uuid.Nil {
		return nil, pkgerrors.New(pkgerrors.CodeUnauthorized, "user identity missing")
	}
	items, err := s.repo.ListByUser(ctx, userID)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "list cart")
	}

	views := make([]ItemView, 0, len(items))
	for _, item := range items {
		views = append(views, itemViewFromModel(item))
	}

	return &View{
		Items:  views,
		Totals: ComputeTotals(items, s.taxRate),
	}, nil
}

func (s *service) loadOwned(ctx context.Context, userID, itemID uuid.UUID) (*models.CartItem, error) {
	if userID == uuid.Nil {
		return nil, pkgerrors.New(pkgerrors.CodeUnauthorized, "user identity missing")
	}
	if itemID == uuid.Nil {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "cart item id required")
	}
	item, err := s.repo.FindByIDAndUser(ctx, itemID, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.New(pkgerrors.CodeNotFound, "cart item not found")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "load cart line")
	}
	return item, nil
}

func hasSize(offered []string, size string) bool {
	for _, s := range offered {
		if s == size {
			return true
		}
	}
	return false
}
