package models

import (
	"time"

	"github.com/google/uuid"

	"github.com/lmarchetti/storefront-backend/pkg/enums"
	"github.com/lmarchetti/storefront-backend/pkg/types"
)

// Order is the server-side record created when a cart is submitted. The cart
// has no server representation before this point.
type Order struct {
	ID              uuid.UUID           `gorm:"column:id;type:uuid;default:gen_random_uuid();primaryKey"`
	CartToken       string              `gorm:"column:cart_token;not null;index"`
	Status          enums.OrderStatus   `gorm:"column:status;not null;default:'pending'"`
	PaymentMethod   enums.PaymentMethod `gorm:"column:payment_method;not null"`
	ShippingAddress *types.Address      `gorm:"column:shipping_address;type:jsonb;serializer:json"`
	Currency        enums.Currency      `gorm:"column:currency;not null;default:'USD'"`
	SubtotalCents   int64               `gorm:"column:subtotal_cents;not null;default:0"`
	ShippingCents   int64               `gorm:"column:shipping_cents;not null;default:0"`
	TotalCents      int64               `gorm:"column:total_cents;not null;default:0"`
	Lines           []OrderLineItem     `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
	CreatedAt       time.Time           `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt       time.Time           `gorm:"column:updated_at;autoUpdateTime"`
}
