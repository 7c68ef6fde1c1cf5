package models

import (
	"time"

	"github.com/lmarchetti/storefront-backend/pkg/enums"
)

// ProductVariant is a configurable axis of a product, e.g. "Size" or "Color".
type ProductVariant struct {
	ID          int64                    `gorm:"column:id;primaryKey;autoIncrement"`
	ProductID   int64                    `gorm:"column:product_id;not null;index"`
	Name        string                   `gorm:"column:name;not null"`
	DisplayType enums.VariantDisplayType `gorm:"column:display_type;not null;default:'dropdown'"`
	Position    int                      `gorm:"column:position;not null;default:0"`
	Options     []VariantOption          `gorm:"foreignKey:VariantID;constraint:OnDelete:CASCADE"`
	CreatedAt   time.Time                `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt   time.Time                `gorm:"column:updated_at;autoUpdateTime"`
}
