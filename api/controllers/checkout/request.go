package checkout

import (
	checkoutsvc "github.com/lmarchetti/storefront-backend/internal/checkout"
	"github.com/lmarchetti/storefront-backend/pkg/enums"
	"github.com/lmarchetti/storefront-backend/pkg/types"
)

// PlaceOrderRequest is the submitted checkout form. Presence of individual
// fields is enforced in the service so the shopper sees the first missing
// field, not a bulk validation dump.
type PlaceOrderRequest struct {
	PaymentMethod   string                 `json:"paymentMethod" validate:"required"`
	ShippingAddress types.Address          `json:"shippingAddress"`
	Card            *checkoutsvc.CardInput `json:"card,omitempty"`
}

func toPlaceOrderInput(token string, req PlaceOrderRequest) checkoutsvc.PlaceOrderInput {
	return checkoutsvc.PlaceOrderInput{
		CartToken:       token,
		PaymentMethod:   enums.PaymentMethod(req.PaymentMethod),
		ShippingAddress: req.ShippingAddress,
		Card:            req.Card,
	}
}
