package cart

import (
	cartsvc "github.com/lmarchetti/storefront-backend/internal/cart"
	"github.com/lmarchetti/storefront-backend/pkg/types"
)

// AddItemRequest is the payload for adding a product to the cart.
type AddItemRequest struct {
	ProductID        int64                  `json:"productId" validate:"required,gt=0"`
	Quantity         int                    `json:"quantity" validate:"required,gt=0"`
	SelectedVariants types.VariantSelection `json:"selectedVariants"`
}

func toAddItemInput(req AddItemRequest) cartsvc.AddItemInput {
	return cartsvc.AddItemInput{
		ProductID: req.ProductID,
		Quantity:  req.Quantity,
		Selection: req.SelectedVariants,
	}
}
