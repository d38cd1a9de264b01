package controllers

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/tirupurthreads/storefront-backend/api/responses"
	"github.com/tirupurthreads/storefront-backend/api/validators"
	ordersvc "github.com/tirupurthreads/storefront-backend/internal/orders"
	wholesalesvc "github.com/tirupurthreads/storefront-backend/internal/wholesale"
	"github.com/tirupurthreads/storefront-backend/pkg/enums"
	pkgerrors "github.com/tirupurthreads/storefront-backend/pkg/errors"
	"github.com/tirupurthreads/storefront-backend/pkg/logger"
)

const (
	defaultAdminPageSize = 50
	maxAdminPageSize     = 200
)

type updateOrderStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=placed shipped delivered cancelled"`
}

// AdminOrderList serves the back-office order queue.
func AdminOrderList(svc ordersvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		status, err := validators.ParseQueryEnum(r, "status", "placed", "shipped", "delivered", "cancelled")
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		limit, err := validators.ParseQueryInt(r, "limit", defaultAdminPageSize, 1, maxAdminPageSize)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		offset, err := validators.ParseQueryInt(r, "offset", 0, 0, 1000000)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		filters := ordersvc.ListFilters{Limit: limit, Offset: offset}
		if status != "" {
			parsed := enums.OrderStatus(status)
			filters.Status = &parsed
		}
		if from := r.URL.Query().Get("from"); from != "" {
			ts, err := time.Parse(time.RFC3339, from)
			if err != nil {
				responses.WriteError(r.Context(), logg, w, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "from must be RFC3339"))
				return
			}
			filters.DateFrom = &ts
		}
		if to := r.URL.Query().Get("to"); to != "" {
			ts, err := time.Parse(time.RFC3339, to)
			if err != nil {
				responses.WriteError(r.Context(), logg, w, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "to must be RFC3339"))
				return
			}
			filters.DateTo = &ts
		}

		result, err := svc.AdminList(r.Context(), filters)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, result)
	}
}

// AdminOrderUpdateStatus moves an order along the fulfillment lifecycle.
func AdminOrderUpdateStatus(svc ordersvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		orderID, err := uuid.Parse(chi.URLParam(r, "orderID"))
		if err != nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid order id"))
			return
		}

		var payload updateOrderStatusRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		order, err := svc.AdminUpdateStatus(r.Context(), orderID, enums.OrderStatus(payload.Status))
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, order)
	}
}

// AdminWholesaleList serves submitted wholesale enquiries.
func AdminWholesaleList(svc wholesalesvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		limit, err := validators.ParseQueryInt(r, "limit", defaultAdminPageSize, 1, maxAdminPageSize)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		offset, err := validators.ParseQueryInt(r, "offset", 0, 0, 1000000)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		enquiries, total, err := svc.List(r.Context(), limit, offset)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, map[string]any{"enquiries": enquiries, "total": total})
	}
}
