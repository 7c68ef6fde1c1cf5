package catalog

import (
	"time"

	"github.com/lmarchetti/storefront-backend/pkg/db/models"
	"github.com/lmarchetti/storefront-backend/pkg/enums"
	"github.com/shopspring/decimal"
)

// ProductDTO is the storefront read shape for a product detail page.
type ProductDTO struct {
	ID           int64        `json:"id"`
	Name         string       `json:"name"`
	Slug         string       `json:"slug"`
	Description  *string      `json:"description,omitempty"`
	Price        float64      `json:"price"`
	PrimaryImage string       `json:"primaryImage"`
	Images       []string     `json:"images"`
	IsActive     bool         `json:"isActive"`
	Variants     []VariantDTO `json:"variants"`
	CreatedAt    time.Time    `json:"createdAt"`
}

// VariantDTO describes one configurable axis of a product.
type VariantDTO struct {
	ID          int64                   `json:"id"`
	Name        string                  `json:"name"`
	DisplayType enums.VariantDisplayType `json:"displayType"`
	Options     []VariantOptionDTO      `json:"options"`
}

// VariantOptionDTO describes one choice within a variant.
type VariantOptionDTO struct {
	ID              int64    `json:"id"`
	Value           string   `json:"value"`
	PriceAdjustment float64  `json:"priceAdjustment"`
	Stock           int      `json:"stock"`
	Image           *string  `json:"image,omitempty"`
	OptionImages    []string `json:"optionImages"`
}

// ProductSummaryDTO is the compact shape used by listings and recommendations.
type ProductSummaryDTO struct {
	ID           int64   `json:"id"`
	Name         string  `json:"name"`
	Slug         string  `json:"slug"`
	Price        float64 `json:"price"`
	PrimaryImage string  `json:"primaryImage"`
}

// ProductListResult bundles a page of summaries with its continuation cursor.
type ProductListResult struct {
	Products   []ProductSummaryDTO `json:"products"`
	NextCursor string              `json:"nextCursor,omitempty"`
}

func centsToDollars(cents int64) float64 {
	return decimal.New(cents, -2).InexactFloat64()
}

func toProductDTO(product *models.Product) *ProductDTO {
	dto := &ProductDTO{
		ID:           product.ID,
		Name:         product.Name,
		Slug:         product.Slug,
		Description:  product.Description,
		Price:        centsToDollars(product.PriceCents),
		PrimaryImage: product.PrimaryImage,
		Images:       append([]string{}, product.Images...),
		IsActive:     product.IsActive,
		Variants:     make([]VariantDTO, 0, len(product.Variants)),
		CreatedAt:    product.CreatedAt,
	}
	for i := range product.Variants {
		dto.Variants = append(dto.Variants, toVariantDTO(&product.Variants[i]))
	}
	return dto
}

func toVariantDTO(variant *models.ProductVariant) VariantDTO {
	dto := VariantDTO{
		ID:          variant.ID,
		Name:        variant.Name,
		DisplayType: variant.DisplayType,
		Options:     make([]VariantOptionDTO, 0, len(variant.Options)),
	}
	for i := range variant.Options {
		option := &variant.Options[i]
		dto.Options = append(dto.Options, VariantOptionDTO{
			ID:              option.ID,
			Value:           option.Value,
			PriceAdjustment: centsToDollars(option.PriceAdjustmentCents),
			Stock:           option.Stock,
			Image:           option.Image,
			OptionImages:    append([]string{}, option.OptionImages...),
		})
	}
	return dto
}

func toSummaryDTO(product *models.Product) ProductSummaryDTO {
	return ProductSummaryDTO{
		ID:           product.ID,
		Name:         product.Name,
		Slug:         product.Slug,
		Price:        centsToDollars(product.PriceCents),
		PrimaryImage: product.PrimaryImage,
	}
}
