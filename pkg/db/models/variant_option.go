package models

import (
	"time"

	"github.com/lib/pq"
)

// VariantOption is one selectable value within a variant. Options are unique
// by id within their variant; Position preserves the authoring order.
type VariantOption struct {
	ID                   int64          `gorm:"column:id;primaryKey;autoIncrement"`
	VariantID            int64          `gorm:"column:variant_id;not null;index"`
	Value                string         `gorm:"column:value;not null"`
	PriceAdjustmentCents int64          `gorm:"column:price_adjustment_cents;not null;default:0"`
	Stock                int            `gorm:"column:stock;not null;default:0"`
	Image                *string        `gorm:"column:image"`
	OptionImages         pq.StringArray `gorm:"column:option_images;type:text[]"`
	Position             int            `gorm:"column:position;not null;default:0"`
	CreatedAt            time.Time      `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt            time.Time      `gorm:"column:updated_at;autoUpdateTime"`
}
