package types

// VariantSelection maps a variant id (stringified, JSON object keys are
// strings on the wire) to the chosen option id.
type VariantSelection map[string]int64

// SelectedOption is the denormalized option snapshot captured at add-to-cart
// time so the cart can render without refetching the product.
type SelectedOption struct {
	ID              int64    `json:"id"`
	Value           string   `json:"value"`
	PriceAdjustment float64  `json:"priceAdjustment"`
	Stock           int      `json:"stock"`
	Image           string   `json:"image,omitempty"`
	OptionImages    []string `json:"optionImages,omitempty"`
}

// SelectionDisplay maps a variant display name to its chosen option snapshot.
type SelectionDisplay map[string]SelectedOption
