package checkout

import (
	"context"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/tirupurthreads/storefront-backend/internal/address"
	"github.com/tirupurthreads/storefront-backend/internal/cart"
	"github.com/tirupurthreads/storefront-backend/internal/orders"
	"github.com/tirupurthreads/storefront-backend/pkg/db/models"
	"github.com/tirupurthreads/storefront-backend/pkg/enums"
	pkgerrors "github.com/tirupurthreads/storefront-backend/pkg/errors"
)

type gormTxRunner struct {
	db *gorm.DB
}

func (g gormTxRunner) WithTx(ctx context.Context, fn func(tx *gorm.DB) error) error {
	return g.db.WithContext(ctx).Transaction(fn)
}

func setupCheckoutTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open("file::memory:?cache=shared"), &gorm.Config{})
	require.NoError(t, err)

	statements := []string{`
CREATE TABLE IF NOT EXISTS products (
  id TEXT PRIMARY KEY,
  name TEXT NOT NULL,
  description TEXT,
  price INTEGER NOT NULL,
  image_url TEXT,
  gender TEXT NOT NULL,
  product_type TEXT NOT NULL,
  material TEXT,
  sizes TEXT,
  is_active INTEGER NOT NULL DEFAULT 1,
  created_at DATETIME,
  updated_at DATETIME
);`, `
CREATE TABLE IF NOT EXISTS cart_items (
  id TEXT PRIMARY KEY,
  user_id TEXT NOT NULL,
  product_id TEXT NOT NULL,
  size TEXT NOT NULL,
  quantity INTEGER NOT NULL DEFAULT 1,
  created_at DATETIME,
  updated_at DATETIME
);`, `
CREATE TABLE IF NOT EXISTS orders (
  id TEXT PRIMARY KEY,
  user_id TEXT NOT NULL,
  first_name TEXT NOT NULL,
  last_name TEXT NOT NULL,
  email TEXT NOT NULL,
  phone TEXT,
  address TEXT NOT NULL,
  city TEXT NOT NULL,
  state TEXT NOT NULL,
  pincode TEXT NOT NULL,
  subtotal INTEGER NOT NULL,
  tax INTEGER NOT NULL,
  total_amount INTEGER NOT NULL,
  status TEXT NOT NULL DEFAULT 'placed',
  payment_method TEXT NOT NULL DEFAULT 'cod',
  created_at DATETIME,
  updated_at DATETIME
);`, `
CREATE TABLE IF NOT EXISTS order_items (
  id TEXT PRIMARY KEY,
  order_id TEXT NOT NULL,
  product_id TEXT,
  product_name TEXT NOT NULL,
  size TEXT NOT NULL,
  quantity INTEGER NOT NULL,
  price INTEGER NOT NULL,
  created_at DATETIME,
  updated_at DATETIME
);`}
	for _, stmt := range statements {
		require.NoError(t, db.Exec(stmt).Error)
	}
	return db
}

func newCheckoutTestService(t *testing.T, db *gorm.DB) Service {
	t.Helper()

	validator, err := address.NewValidator("")
	require.NoError(t, err)

	svc, err := NewService(ServiceParams{
		Tx:        gormTxRunner{db: db},
		CartRepo:  cart.NewRepository(db),
		OrderRepo: orders.NewRepository(db),
		Addresses: validator,
		TaxRate:   "0.18",
	})
	require.NoError(t, err)
	return svc
}

func seedCheckoutCart(t *testing.T, db *gorm.DB, userID uuid.UUID, name string, price int64, size string, qty int) *models.Product {
	t.Helper()

	product := &models.Product{
		ID:          uuid.New(),
		Name:        name,
		Price:       price,
		Gender:      enums.ProductGenderUnisex,
		ProductType: enums.ProductTypeTShirt,
		Sizes:       pq.StringArray{"S", "M", "L"},
		IsActive:    true,
	}
	require.NoError(t, db.Create(product).Error)
	require.NoError(t, db.Create(&models.CartItem{
		ID:        uuid.New(),
		UserID:    userID,
		ProductID: product.ID,
		Size:      size,
		Quantity:  qty,
	}).Error)
	return product
}

func validPlaceRequest() PlaceOrderRequest {
	return PlaceOrderRequest{
		FirstName:     "Arun",
		LastName:      "Kumar",
		Email:         "arun@example.com",
		Phone:         "9876543210",
		Address:       "12 Mill Road",
		State:         "Tamil Nadu",
		District:      "Tiruppur",
		Pincode:       "641601",
		PaymentMethod: "cod",
	}
}

func TestPlaceSnapshotsCartIntoOrder(t *testing.T) {
	db := setupCheckoutTestDB(t)
	svc := newCheckoutTestService(t, db)
	userID := uuid.New()
	seedCheckoutCart(t, db, userID, "Crew Tee", 500, "M", 2)
	seedCheckoutCart(t, db, userID, "Zip Hoodie", 1000, "L", 1)

	view, err := svc.Place(context.Background(), userID, validPlaceRequest())
	require.NoError(t, err)

	assert.Equal(t, int64(2000), view.Subtotal)
	assert.Equal(t, int64(360), view.Tax)
	assert.Equal(t, int64(2360), view.TotalAmount)
	assert.Equal(t, enums.OrderStatusPlaced, view.Status)
	assert.Equal(t, enums.PaymentMethodCOD, view.PaymentMethod)
	assert.Equal(t, "Tiruppur", view.City)
	assert.True(t, strings.HasPrefix(view.Number, "TT-"))
	assert.Len(t, view.Items, 2)

	var remaining int64
	require.NoError(t, db.Model(&models.CartItem{}).Where("user_id = ?", userID).Count(&remaining).Error)
	assert.Zero(t, remaining)

	var persisted models.Order
	require.NoError(t, db.Preload("Items").First(&persisted, "user_id = ?", userID).Error)
	assert.Len(t, persisted.Items, 2)
}

func TestPlaceRejectsInvalidDistrictWithoutWrites(t *testing.T) {
	db := setupCheckoutTestDB(t)
	svc := newCheckoutTestService(t, db)
	userID := uuid.New()
	seedCheckoutCart(t, db, userID, "Crew Tee", 500, "M", 1)

	req := validPlaceRequest()
	req.District = "Mumbai"

	_, err := svc.Place(context.Background(), userID, req)
	require.Error(t, err)
	typed := pkgerrors.As(err)
	require.NotNil(t, typed)
	assert.Equal(t, pkgerrors.CodeValidation, typed.Code())

	var carts int64
	require.NoError(t, db.Model(&models.CartItem{}).Where("user_id = ?", userID).Count(&carts).Error)
	assert.Equal(t, int64(1), carts)

	var placed int64
	require.NoError(t, db.Model(&models.Order{}).Where("user_id = ?", userID).Count(&placed).Error)
	assert.Zero(t, placed)
}

func TestPlaceRejectsEmptyCart(t *testing.T) {
	db := setupCheckoutTestDB(t)
	svc := newCheckoutTestService(t, db)

	_, err := svc.Place(context.Background(), uuid.New(), validPlaceRequest())
	require.Error(t, err)
	typed := pkgerrors.As(err)
	require.NotNil(t, typed)
	assert.Equal(t, pkgerrors.CodeValidation, typed.Code())
}

func TestPlaceRejectsUnsupportedPaymentMethod(t *testing.T) {
	db := setupCheckoutTestDB(t)
	svc := newCheckoutTestService(t, db)
	userID := uuid.New()
	seedCheckoutCart(t, db, userID, "Crew Tee", 500, "M", 1)

	req := validPlaceRequest()
	req.PaymentMethod = "card"

	_, err := svc.Place(context.Background(), userID, req)
	require.Error(t, err)
	typed := pkgerrors.As(err)
	require.NotNil(t, typed)
	assert.Equal(t, pkgerrors.CodeValidation, typed.Code())
}

func TestPlaceRejectsRetiredProductWithoutWrites(t *testing.T) {
	db := setupCheckoutTestDB(t)
	svc := newCheckoutTestService(t, db)
	userID := uuid.New()
	product := seedCheckoutCart(t, db, userID, "Retired Tee", 500, "M", 1)
	require.NoError(t, db.Model(&models.Product{}).Where("id = ?", product.ID).Update("is_active", false).Error)

	_, err := svc.Place(context.Background(), userID, validPlaceRequest())
	require.Error(t, err)
	typed := pkgerrors.As(err)
	require.NotNil(t, typed)
	assert.Equal(t, pkgerrors.CodeConflict, typed.Code())

	var carts int64
	require.NoError(t, db.Model(&models.CartItem{}).Where("user_id = ?", userID).Count(&carts).Error)
	assert.Equal(t, int64(1), carts)
}

func TestPlacedOrderKeepsPriceAfterCatalogEdit(t *testing.T) {
	db := setupCheckoutTestDB(t)
	svc := newCheckoutTestService(t, db)
	userID := uuid.New()
	product := seedCheckoutCart(t, db, userID, "Crew Tee", 1000, "M", 1)

	view, err := svc.Place(context.Background(), userID, validPlaceRequest())
	require.NoError(t, err)

	require.NoError(t, db.Model(&models.Product{}).Where("id = ?", product.ID).Update("price", 9999).Error)

	reloaded, err := orders.NewRepository(db).FindByID(context.Background(), view.ID)
	require.NoError(t, err)
	require.Len(t, reloaded.Items, 1)
	assert.Equal(t, int64(1000), reloaded.Items[0].Price)
	assert.Equal(t, int64(1180), reloaded.TotalAmount)
}
