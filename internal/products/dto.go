package products

import (
	"time"

	"github.com/google/uuid"

	"github.com/tirupurthreads/storefront-backend/pkg/db/models"
	"github.com/tirupurthreads/storefront-backend/pkg/enums"
)

// Sort orders supported by the catalog list.
const (
	SortPriceAsc  = "price_asc"
	SortPriceDesc = "price_desc"
	SortNewest    = "newest"
)

// ListFilters describe the inputs supported by the catalog list.
type ListFilters struct {
	Gender      string
	ProductType string
	Size        string
	Material    string
	Sort        string
	Limit       int
	Offset      int
}

// Summary is the catalog projection returned by list and detail reads.
type Summary struct {
	ID          uuid.UUID           `json:"id"`
	Name        string              `json:"name"`
	Description string              `json:"description,omitempty"`
	Price       int64               `json:"price"`
	ImageURL    string              `json:"image_url,omitempty"`
	Gender      enums.ProductGender `json:"gender"`
	ProductType enums.ProductType   `json:"product_type"`
	Material    string              `json:"material,omitempty"`
	Sizes       []string            `json:"sizes"`
	CreatedAt   time.Time           `json:"created_at"`
}

// List wraps the catalog page plus the total match count.
type List struct {
	Products []Summary `json:"products"`
	Total    int64     `json:"total"`
}

func summaryFromModel(p models.Product) Summary {
	sizes := make([]string, len(p.Sizes))
	copy(sizes, p.Sizes)
	return Summary{
		ID:          p.ID,
		Name:        p.Name,
		Description: p.Description,
		Price:       p.Price,
		ImageURL:    p.ImageURL,
		Gender:      p.Gender,
		ProductType: p.ProductType,
		Material:    p.Material,
		Sizes:       sizes,
		CreatedAt:   p.CreatedAt,
	}
}
