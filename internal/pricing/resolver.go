package pricing

import (
	"strconv"

	"github.com/shopspring/decimal"

	"github.com/lmarchetti/storefront-backend/pkg/db/models"
	"github.com/lmarchetti/storefront-backend/pkg/types"
)

// Resolve computes the effective unit price for a product under the given
// variant selection: the base price plus every selected option's adjustment.
// Selection entries that reference a variant or option the product no longer
// carries contribute nothing; a shopper with a stale selection still gets a
// price. The total is accumulated in integer cents and converted to a
// two-decimal dollar amount once at the end, never negative.
func Resolve(product *models.Product, selection types.VariantSelection) decimal.Decimal {
	if product == nil {
		return decimal.Zero
	}

	totalCents := product.PriceCents
	for variantKey, optionID := range selection {
		variantID, err := strconv.ParseInt(variantKey, 10, 64)
		if err != nil {
			continue
		}
		option := findOption(product, variantID, optionID)
		if option == nil {
			continue
		}
		totalCents += option.PriceAdjustmentCents
	}

	if totalCents < 0 {
		totalCents = 0
	}
	return decimal.New(totalCents, -2)
}

// SelectedOptions maps each selection entry to its option, keyed by the
// variant's display name. Stale entries are skipped, mirroring Resolve.
func SelectedOptions(product *models.Product, selection types.VariantSelection) types.SelectionDisplay {
	display := types.SelectionDisplay{}
	if product == nil {
		return display
	}
	for variantKey, optionID := range selection {
		variantID, err := strconv.ParseInt(variantKey, 10, 64)
		if err != nil {
			continue
		}
		variant := findVariant(product, variantID)
		if variant == nil {
			continue
		}
		option := findVariantOption(variant, optionID)
		if option == nil {
			continue
		}
		snapshot := types.SelectedOption{
			ID:              option.ID,
			Value:           option.Value,
			PriceAdjustment: decimal.New(option.PriceAdjustmentCents, -2).InexactFloat64(),
			Stock:           option.Stock,
			OptionImages:    option.OptionImages,
		}
		if option.Image != nil {
			snapshot.Image = *option.Image
		}
		display[variant.Name] = snapshot
	}
	return display
}

func findVariant(product *models.Product, variantID int64) *models.ProductVariant {
	for i := range product.Variants {
		if product.Variants[i].ID == variantID {
			return &product.Variants[i]
		}
	}
	return nil
}

func findVariantOption(variant *models.ProductVariant, optionID int64) *models.VariantOption {
	for i := range variant.Options {
		if variant.Options[i].ID == optionID {
			return &variant.Options[i]
		}
	}
	return nil
}

func findOption(product *models.Product, variantID, optionID int64) *models.VariantOption {
	variant := findVariant(product, variantID)
	if variant == nil {
		return nil
	}
	return findVariantOption(variant, optionID)
}
