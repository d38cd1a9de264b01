package cart

import (
	"github.com/shopspring/decimal"

	"github.com/tirupurthreads/storefront-backend/pkg/db/models"
)

// ComputeTotals derives the cart amounts from line items carrying their
// products. Tax is rounded half away from zero to whole rupees.
func ComputeTotals(items []models.CartItem, taxRate decimal.Decimal) Totals {
	var subtotal int64
	for _, item := range items {
		if item.Product == nil {
			continue
		}
		subtotal += item.Product.Price * int64(item.Quantity)
	}

	tax := decimal.NewFromInt(subtotal).Mul(taxRate).Round(0).IntPart()

	return Totals{
		Subtotal: subtotal,
		Tax:      tax,
		Total:    subtotal + tax,
	}
}
