package checkout

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/lmarchetti/storefront-backend/api/middleware"
	"github.com/lmarchetti/storefront-backend/api/responses"
	"github.com/lmarchetti/storefront-backend/api/validators"
	checkoutsvc "github.com/lmarchetti/storefront-backend/internal/checkout"
	"github.com/lmarchetti/storefront-backend/internal/orders"
	pkgerrors "github.com/lmarchetti/storefront-backend/pkg/errors"
	"github.com/lmarchetti/storefront-backend/pkg/logger"
)

// totalsResponse flattens decimal totals into the wire's dollar numbers.
type totalsResponse struct {
	Subtotal float64 `json:"subtotal"`
	Shipping float64 `json:"shipping"`
	Total    float64 `json:"total"`
}

// Preview prices the current cart without creating an order.
func Preview(svc checkoutsvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "checkout service unavailable"))
			return
		}

		token := middleware.CartTokenFromContext(r.Context())
		totals, err := svc.Preview(r.Context(), token)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, totalsResponse{
			Subtotal: totals.Subtotal.InexactFloat64(),
			Shipping: totals.Shipping.InexactFloat64(),
			Total:    totals.Total.InexactFloat64(),
		})
	}
}

// PlaceOrder turns the cart into an order.
func PlaceOrder(svc checkoutsvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "checkout service unavailable"))
			return
		}

		token := middleware.CartTokenFromContext(r.Context())

		var payload PlaceOrderRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		order, err := svc.PlaceOrder(r.Context(), toPlaceOrderInput(token, payload))
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccessStatus(w, http.StatusCreated, order)
	}
}

// GetOrder serves the confirmation page for a placed order.
func GetOrder(svc orders.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "orders service unavailable"))
			return
		}

		id, err := uuid.Parse(chi.URLParam(r, "id"))
		if err != nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid order id"))
			return
		}

		order, err := svc.GetOrder(r.Context(), id)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, order)
	}
}
