package wholesale

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/tirupurthreads/storefront-backend/pkg/db/models"
)

func setupWholesaleTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open("file::memory:?cache=shared"), &gorm.Config{})
	require.NoError(t, err)

	enquiries := `
CREATE TABLE IF NOT EXISTS wholesale_enquiries (
  id TEXT PRIMARY KEY,
  name TEXT NOT NULL,
  business_name TEXT,
  email TEXT NOT NULL,
  phone TEXT,
  quantity_range TEXT,
  message TEXT,
  created_at DATETIME
);`
	require.NoError(t, db.Exec(enquiries).Error)
	return db
}

func newWholesaleTestService(t *testing.T, db *gorm.DB) Service {
	t.Helper()

	svc, err := NewService(NewRepository(db))
	require.NoError(t, err)
	return svc
}

func TestSubmitNormalizesFields(t *testing.T) {
	db := setupWholesaleTestDB(t)
	svc := newWholesaleTestService(t, db)

	view, err := svc.Submit(context.Background(), EnquiryRequest{
		Name:          "  Priya Textiles ",
		BusinessName:  " Priya Exports ",
		Email:         " Priya@Example.COM ",
		Phone:         " 9876543210 ",
		QuantityRange: "500-1000",
		Message:       " Looking for polo shirts in bulk. ",
	})
	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, view.ID)
	assert.Equal(t, "Priya Textiles", view.Name)
	assert.Equal(t, "priya@example.com", view.Email)
	assert.Equal(t, "Looking for polo shirts in bulk.", view.Message)

	var stored models.WholesaleEnquiry
	require.NoError(t, db.First(&stored, "id = ?", view.ID).Error)
	assert.Equal(t, "priya@example.com", stored.Email)
}

func TestListNewestFirst(t *testing.T) {
	db := setupWholesaleTestDB(t)
	svc := newWholesaleTestService(t, db)

	future := time.Now().UTC().Add(24 * time.Hour)
	older := &models.WholesaleEnquiry{ID: uuid.New(), Name: "Older", Email: "a@example.com", CreatedAt: future.Add(-time.Hour)}
	newer := &models.WholesaleEnquiry{ID: uuid.New(), Name: "Newer", Email: "b@example.com", CreatedAt: future}
	require.NoError(t, db.Create(older).Error)
	require.NoError(t, db.Create(newer).Error)

	views, total, err := svc.List(context.Background(), 10, 0)
	require.NoError(t, err)
	assert.GreaterOrEqual(t, total, int64(2))
	require.NotEmpty(t, views)
	assert.Equal(t, newer.ID, views[0].ID)
	assert.Equal(t, older.ID, views[1].ID)
}
