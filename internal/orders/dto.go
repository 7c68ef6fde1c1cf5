package orders

import (
	"time"

	"github.com/google/uuid"
	"github.com/lmarchetti/storefront-backend/pkg/db/models"
	"github.com/lmarchetti/storefront-backend/pkg/enums"
	"github.com/lmarchetti/storefront-backend/pkg/types"
	"github.com/shopspring/decimal"
)

// OrderDTO is the confirmation-page read shape for a placed order.
type OrderDTO struct {
	ID            uuid.UUID           `json:"id"`
	Status        enums.OrderStatus   `json:"status"`
	PaymentMethod enums.PaymentMethod `json:"paymentMethod"`
	Currency      enums.Currency      `json:"currency"`
	Shipping      *types.Address      `json:"shippingAddress,omitempty"`
	Subtotal      float64             `json:"subtotal"`
	ShippingFee   float64             `json:"shippingFee"`
	Total         float64             `json:"total"`
	Lines         []OrderLineDTO      `json:"lines"`
	CreatedAt     time.Time           `json:"createdAt"`
}

// OrderLineDTO mirrors one frozen cart line on the confirmation page.
type OrderLineDTO struct {
	ProductID               int64                  `json:"productId"`
	Name                    string                 `json:"name"`
	Slug                    string                 `json:"slug"`
	Image                   string                 `json:"image"`
	Price                   float64                `json:"price"`
	Quantity                int                    `json:"quantity"`
	SelectedVariants        types.VariantSelection `json:"selectedVariants"`
	SelectedVariantsDisplay types.SelectionDisplay `json:"selectedVariantsDisplay"`
}

func centsToDollars(cents int64) float64 {
	return decimal.New(cents, -2).InexactFloat64()
}

// ToDTO maps a persisted order onto its read shape.
func ToDTO(order *models.Order) *OrderDTO {
	dto := &OrderDTO{
		ID:            order.ID,
		Status:        order.Status,
		PaymentMethod: order.PaymentMethod,
		Currency:      order.Currency,
		Shipping:      order.ShippingAddress,
		Subtotal:      centsToDollars(order.SubtotalCents),
		ShippingFee:   centsToDollars(order.ShippingCents),
		Total:         centsToDollars(order.TotalCents),
		Lines:         make([]OrderLineDTO, 0, len(order.Lines)),
		CreatedAt:     order.CreatedAt,
	}
	for i := range order.Lines {
		line := &order.Lines[i]
		dto.Lines = append(dto.Lines, OrderLineDTO{
			ProductID:               line.ProductID,
			Name:                    line.Name,
			Slug:                    line.Slug,
			Image:                   line.Image,
			Price:                   centsToDollars(line.UnitPriceCents),
			Quantity:                line.Quantity,
			SelectedVariants:        line.SelectedVariants,
			SelectedVariantsDisplay: line.SelectedVariantsDisplay,
		})
	}
	return dto
}
