package models

import (
	"time"

	"github.com/lib/pq"
)

// Product represents the canonical catalog listing.
type Product struct {
	ID           int64            `gorm:"column:id;primaryKey;autoIncrement"`
	Name         string           `gorm:"column:name;not null"`
	Slug         string           `gorm:"column:slug;not null;uniqueIndex"`
	Description  *string          `gorm:"column:description"`
	PriceCents   int64            `gorm:"column:price_cents;not null"`
	PrimaryImage string           `gorm:"column:primary_image;not null"`
	Images       pq.StringArray   `gorm:"column:images;type:text[]"`
	IsActive     bool             `gorm:"column:is_active;not null;default:true"`
	Variants     []ProductVariant `gorm:"foreignKey:ProductID;constraint:OnDelete:CASCADE"`
	CreatedAt    time.Time        `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt    time.Time        `gorm:"column:updated_at;autoUpdateTime"`
}
