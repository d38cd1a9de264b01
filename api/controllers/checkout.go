package controllers

import (
	"net/http"

	"github.com/tirupurthreads/storefront-backend/api/responses"
	"github.com/tirupurthreads/storefront-backend/api/validators"
	addresssvc "github.com/tirupurthreads/storefront-backend/internal/address"
	checkoutsvc "github.com/tirupurthreads/storefront-backend/internal/checkout"
	pkgerrors "github.com/tirupurthreads/storefront-backend/pkg/errors"
	"github.com/tirupurthreads/storefront-backend/pkg/logger"
)

// Checkout places an order from the caller's cart.
func Checkout(svc checkoutsvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "checkout service unavailable"))
			return
		}

		userID, err := authedUserID(r)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		var payload checkoutsvc.PlaceOrderRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		order, err := svc.Place(r.Context(), userID, payload)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccessStatus(w, http.StatusCreated, order)
	}
}

// ShippingStates lists the serviceable states for the address step.
func ShippingStates(validator *addresssvc.Validator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		responses.WriteSuccess(w, map[string]any{"states": validator.States()})
	}
}

// ShippingDistricts lists the serviceable districts of the requested state.
func ShippingDistricts(validator *addresssvc.Validator, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		state := validators.SanitizeString(r.URL.Query().Get("state"), 100)
		if state == "" {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeValidation, "state query parameter required"))
			return
		}
		responses.WriteSuccess(w, map[string]any{
			"state":     state,
			"districts": validator.DistrictsFor(state),
		})
	}
}
