package models

import (
	"time"

	"github.com/google/uuid"

	"github.com/lmarchetti/storefront-backend/pkg/types"
)

// OrderLineItem freezes one cart line at submission time, including the
// variant selection and its display snapshot.
type OrderLineItem struct {
	ID                      int64                  `gorm:"column:id;primaryKey;autoIncrement"`
	OrderID                 uuid.UUID              `gorm:"column:order_id;type:uuid;not null;index"`
	ProductID               int64                  `gorm:"column:product_id;not null"`
	Name                    string                 `gorm:"column:name;not null"`
	Slug                    string                 `gorm:"column:slug;not null"`
	Image                   string                 `gorm:"column:image"`
	UnitPriceCents          int64                  `gorm:"column:unit_price_cents;not null"`
	Quantity                int                    `gorm:"column:quantity;not null"`
	SelectedVariants        types.VariantSelection `gorm:"column:selected_variants;type:jsonb;serializer:json"`
	SelectedVariantsDisplay types.SelectionDisplay `gorm:"column:selected_variants_display;type:jsonb;serializer:json"`
	CreatedAt               time.Time              `gorm:"column:created_at;autoCreateTime"`
}
