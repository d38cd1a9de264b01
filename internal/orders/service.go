package orders

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/tirupurthreads/storefront-backend/pkg/db/models"
	"github.com/tirupurthreads/storefront-backend/pkg/enums"
	pkgerrors "github.com/tirupurthreads/storefront-backend/pkg/errors"
	"github.com/tirupurthreads/storefront-backend/pkg/logger"
)

// Service defines order reads and the admin status transition.
type Service interface {
	Fetch(ctx context.Context, userID, orderID uuid.UUID) (*View, error)
	ListForUser(ctx context.Context, userID uuid.UUID) ([]Summary, error)
	AdminList(ctx context.Context, filters ListFilters) (*ListResult, error)
	AdminUpdateStatus(ctx context.Context, orderID uuid.UUID, status enums.OrderStatus) (*View, error)
}

type repository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*models.Order, error)
	ListByUser(ctx context.Context, userID uuid.UUID) ([]models.Order, error)
	List(ctx context.Context, filters ListFilters) ([]models.Order, int64, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status enums.OrderStatus) error
}

type service struct {
	repo repository
	logg *logger.Logger
}

// NewService builds the order service.
func NewService(repo repository, logg *logger.Logger) (Service, error) {
	if repo == nil {
		return nil, fmt.Errorf("orders repository is required")
	}
	return &service{repo: repo, logg: logg}, nil
}

// Fetch returns the order only when it belongs to the user. A hit on someone
// else's order comes back as not found; the mismatch is still logged so the
// probe is visible.
func (s *service) Fetch(ctx context.Context, userID, orderID uuid.UUID) (*View, error) {
	if userID == uuid.Nil {
		return nil, pkgerrors.New(pkgerrors.CodeUnauthorized, "user identity missing")
	}
	if orderID == uuid.Nil {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "order id required")
	}

	order, err := s.repo.FindByID(ctx, orderID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.New(pkgerrors.CodeNotFound, "order not found")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "load order")
	}

	if order.UserID != userID {
		if s.logg != nil {
			warnCtx := s.logg.WithFields(ctx, map[string]any{
				"order_id":       orderID.String(),
				"order_owner":    order.UserID.String(),
				"requesting_uid": userID.String(),
			})
			s.logg.Warn(warnCtx, "order access denied for non-owner")
		}
		return nil, pkgerrors.New(pkgerrors.CodeNotFound, "order not found")
	}

	return ViewFromModel(order), nil
}

func (s *service) ListForUser(ctx context.Context, userID uuid.UUID) ([]Summary, error) {
	if userID == uuid.Nil {
		return nil, pkgerrors.New(pkgerrors.CodeUnauthorized, "user identity missing")
	}
	rows, err := s.repo.ListByUser(ctx, userID)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "list orders")
	}
	out := make([]Summary, 0, len(rows))
	for _, row := range rows {
		out = append(out, summaryFromModel(row))
	}
	return out, nil
}

func (s *service) AdminList(ctx context.Context, filters ListFilters) (*ListResult, error) {
	rows, total, err := s.repo.List(ctx, filters)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "list orders")
	}
	out := make([]Summary, 0, len(rows))
	for _, row := range rows {
		out = append(out, summaryFromModel(row))
	}
	return &ListResult{Orders: out, Total: total}, nil
}

func (s *service) AdminUpdateStatus(ctx context.Context, orderID uuid.UUID, status enums.OrderStatus) (*View, error) {
	if orderID == uuid.Nil {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "order id required")
	}
	if !status.IsValid() {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "unknown order status")
	}

	order, err := s.repo.FindByID(ctx, orderID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.New(pkgerrors.CodeNotFound, "order not found")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "load order")
	}

	if order.Status == status {
		return ViewFromModel(order), nil
	}
	if !order.Status.CanTransitionTo(status) {
		return nil, pkgerrors.New(pkgerrors.CodeConflict, "status transition not allowed").
			WithDetails(map[string]any{"from": order.Status, "to": status})
	}

	if err := s.repo.UpdateStatus(ctx, orderID, status); err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "update order status")
	}

	order.Status = status
	return ViewFromModel(order), nil
}
