package gallery

import (
	"github.com/lmarchetti/storefront-backend/pkg/db/models"
)

// Gallery is the ordered image set shown for the current selection. The
// active index always restarts at zero when the gallery changes; the prior
// index may be out of bounds for the new set.
type Gallery struct {
	Images      []string `json:"images"`
	ActiveIndex int      `json:"activeIndex"`
}

// Resolve picks the image set to display after a variant option changes. An
// option with its own images takes over the gallery wholesale; otherwise the
// gallery reverts to the product's primary image followed by its extra
// images. A product with no images at all yields an empty gallery, which
// renders as nothing rather than failing.
func Resolve(product *models.Product, changedOption *models.VariantOption) Gallery {
	if changedOption != nil && len(changedOption.OptionImages) > 0 {
		images := make([]string, len(changedOption.OptionImages))
		copy(images, changedOption.OptionImages)
		return Gallery{Images: images}
	}
	return Default(product)
}

// Default returns the product's own gallery: primary image first, then the
// additional images in catalog order.
func Default(product *models.Product) Gallery {
	if product == nil {
		return Gallery{}
	}
	images := make([]string, 0, len(product.Images)+1)
	if product.PrimaryImage != "" {
		images = append(images, product.PrimaryImage)
	}
	images = append(images, product.Images...)
	return Gallery{Images: images}
}
