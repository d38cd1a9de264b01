package invoice

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/tirupurthreads/storefront-backend/internal/orders"
	"github.com/tirupurthreads/storefront-backend/pkg/config"
	pkgerrors "github.com/tirupurthreads/storefront-backend/pkg/errors"
)

type orderFetcher interface {
	Fetch(ctx context.Context, userID, orderID uuid.UUID) (*orders.View, error)
}

// Service produces invoice PDFs for a customer's own orders.
type Service interface {
	Generate(ctx context.Context, userID, orderID uuid.UUID) (*Document, error)
}

// Document is a rendered invoice ready for download.
type Document struct {
	Filename string
	PDF      []byte
}

type service struct {
	orders   orderFetcher
	renderer Renderer
	cfg      config.InvoiceConfig
}

// NewService builds the invoice service.
func NewService(fetcher orderFetcher, renderer Renderer, cfg config.InvoiceConfig) (Service, error) {
	if fetcher == nil {
		return nil, fmt.Errorf("order fetcher is required")
	}
	if renderer == nil {
		return nil, fmt.Errorf("renderer is required")
	}
	return &service{orders: fetcher, renderer: renderer, cfg: cfg}, nil
}

// Generate loads the order with the caller's ownership enforced, then renders
// the branded invoice.
func (s *service) Generate(ctx context.Context, userID, orderID uuid.UUID) (*Document, error) {
	order, err := s.orders.Fetch(ctx, userID, orderID)
	if err != nil {
		return nil, err
	}

	html, err := BuildHTML(s.cfg.BrandName, s.cfg.BrandTagline, order)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "build invoice")
	}

	pdf, err := s.renderer.Render(ctx, html)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "render invoice")
	}

	return &Document{
		Filename: fmt.Sprintf("invoice-%s.pdf", order.Number),
		PDF:      pdf,
	}, nil
}
