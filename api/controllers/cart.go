package controllers

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/tirupurthreads/storefront-backend/api/middleware"
	"github.com/tirupurthreads/storefront-backend/api/responses"
	"github.com/tirupurthreads/storefront-backend/api/validators"
	cartsvc "github.com/tirupurthreads/storefront-backend/internal/cart"
	pkgerrors "github.com/tirupurthreads/storefront-backend/pkg/errors"
	"github.com/tirupurthreads/storefront-backend/pkg/logger"
)

// CartGet returns the caller's cart with computed totals.
func CartGet(svc cartsvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, err := authedUserID(r)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		view, err := svc.Get(r.Context(), userID)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, view)
	}
}

// CartAdd adds a garment/size to the cart, merging into an existing line.
func CartAdd(svc cartsvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, err := authedUserID(r)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		var payload cartsvc.AddItemRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		view, err := svc.Add(r.Context(), userID, payload)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccessStatus(w, http.StatusCreated, view)
	}
}

// CartIncrease bumps a line's quantity by one.
func CartIncrease(svc cartsvc.Service, logg *logger.Logger) http.HandlerFunc {
	return cartQuantityHandler(svc, logg, func(s cartsvc.Service) quantityFn { return s.Increase })
}

// CartDecrease lowers a line's quantity by one, never below one.
func CartDecrease(svc cartsvc.Service, logg *logger.Logger) http.HandlerFunc {
	return cartQuantityHandler(svc, logg, func(s cartsvc.Service) quantityFn { return s.Decrease })
}

// CartRemove deletes a line outright.
func CartRemove(svc cartsvc.Service, logg *logger.Logger) http.HandlerFunc {
	return cartQuantityHandler(svc, logg, func(s cartsvc.Service) quantityFn { return s.Remove })
}

type quantityFn func(ctx context.Context, userID, itemID uuid.UUID) (*cartsvc.View, error)

func cartQuantityHandler(svc cartsvc.Service, logg *logger.Logger, pick func(cartsvc.Service) quantityFn) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, err := authedUserID(r)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		itemID, err := uuid.Parse(chi.URLParam(r, "itemID"))
		if err != nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid cart item id"))
			return
		}

		view, err := pick(svc)(r.Context(), userID, itemID)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, view)
	}
}

func authedUserID(r *http.Request) (uuid.UUID, error) {
	raw := middleware.UserIDFromContext(r.Context())
	if raw == "" {
		return uuid.Nil, pkgerrors.New(pkgerrors.CodeUnauthorized, "user identity missing")
	}
	userID, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, pkgerrors.Wrap(pkgerrors.CodeUnauthorized, err, "invalid user identity")
	}
	return userID, nil
}
