package wholesale

import (
	"context"

	"gorm.io/gorm"

	"github.com/tirupurthreads/storefront-backend/pkg/db/models"
)

// Repository persists wholesale enquiries.
type Repository struct {
	db *gorm.DB
}

// NewRepository constructs a wholesale repo bound to the provided GORM DB.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// Create inserts a new enquiry.
func (r *Repository) Create(ctx context.Context, enquiry *models.WholesaleEnquiry) (*models.WholesaleEnquiry, error) {
	if err := r.db.WithContext(ctx).Create(enquiry).Error; err != nil {
		return nil, err
	}
	return enquiry, nil
}

// List returns enquiries, newest first.
func (r *Repository) List(ctx context.Context, limit, offset int) ([]models.WholesaleEnquiry, int64, error) {
	query := r.db.WithContext(ctx).Model(&models.WholesaleEnquiry{})

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	query = query.Order("created_at DESC")
	if limit > 0 {
		query = query.Limit(limit)
	}
	if offset > 0 {
		query = query.Offset(offset)
	}

	var rows []models.WholesaleEnquiry
	if err := query.Find(&rows).Error; err != nil {
		return nil, 0, err
	}
	return rows, total, nil
}
