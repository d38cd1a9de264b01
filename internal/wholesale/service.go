package wholesale

import (
	"context"
	"fmt"
	"strings"

	"github.com/tirupurthreads/storefront-backend/pkg/db/models"
	pkgerrors "github.com/tirupurthreads/storefront-backend/pkg/errors"
)

// Service handles bulk-order enquiries from the storefront.
type Service interface {
	Submit(ctx context.Context, req EnquiryRequest) (*EnquiryView, error)
	List(ctx context.Context, limit, offset int) ([]EnquiryView, int64, error)
}

type repository interface {
	Create(ctx context.Context, enquiry *models.WholesaleEnquiry) (*models.WholesaleEnquiry, error)
	List(ctx context.Context, limit, offset int) ([]models.WholesaleEnquiry, int64, error)
}

type service struct {
	repo repository
}

// NewService builds the wholesale enquiry service.
func NewService(repo repository) (Service, error) {
	if repo == nil {
		return nil, fmt.Errorf("wholesale repository is required")
	}
	return &service{repo: repo}, nil
}

func (s *service) Submit(ctx context.Context, req EnquiryRequest) (*EnquiryView, error) {
	enquiry := &models.WholesaleEnquiry{
		Name:          strings.TrimSpace(req.Name),
		BusinessName:  strings.TrimSpace(req.BusinessName),
		Email:         strings.ToLower(strings.TrimSpace(req.Email)),
		Phone:         strings.TrimSpace(req.Phone),
		QuantityRange: strings.TrimSpace(req.QuantityRange),
		Message:       strings.TrimSpace(req.Message),
	}

	stored, err := s.repo.Create(ctx, enquiry)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "store enquiry")
	}

	view := viewFromModel(*stored)
	return &view, nil
}

func (s *service) List(ctx context.Context, limit, offset int) ([]EnquiryView, int64, error) {
	rows, total, err := s.repo.List(ctx, limit, offset)
	if err != nil {
		return nil, 0, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "list enquiries")
	}
	out := make([]EnquiryView, 0, len(rows))
	for _, row := range rows {
		out = append(out, viewFromModel(row))
	}
	return out, total, nil
}
