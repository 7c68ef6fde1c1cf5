package cart

import (
	"encoding/json"

	"github.com/lmarchetti/storefront-backend/pkg/types"
)

// Line is one entry of the persisted cart document. The JSON field names are
// the document's wire format; the storefront client reads the document as-is.
type Line struct {
	ProductID               int64                  `json:"productId"`
	Name                    string                 `json:"name"`
	Slug                    string                 `json:"slug"`
	Price                   float64                `json:"price"`
	Image                   string                 `json:"image"`
	Quantity                int                    `json:"quantity"`
	SelectedVariants        types.VariantSelection `json:"selectedVariants"`
	SelectedVariantsDisplay types.SelectionDisplay `json:"selectedVariantsDisplay"`
}

// SelectionKey serializes the variant selection for line identity.
// encoding/json emits map keys in sorted order, so two selections with the
// same variant/option pairs produce the same key no matter how they were
// assembled.
func (l Line) SelectionKey() string {
	if len(l.SelectedVariants) == 0 {
		return "{}"
	}
	raw, err := json.Marshal(l.SelectedVariants)
	if err != nil {
		return "{}"
	}
	return string(raw)
}

// SameLine reports whether two lines are the same cart entry: same product
// and an identical serialized selection.
func (l Line) SameLine(other Line) bool {
	return l.ProductID == other.ProductID && l.SelectionKey() == other.SelectionKey()
}

// AddOrMerge folds newLine into the document. A duplicate of an existing
// line has its quantity summed; the price and display snapshot are replaced
// by the newest values so a changed adjustment shows up on the merged line.
// Anything else is appended. The second return reports whether a merge
// happened.
func AddOrMerge(lines []Line, newLine Line) ([]Line, bool) {
	for i := range lines {
		if lines[i].SameLine(newLine) {
			lines[i].Quantity += newLine.Quantity
			lines[i].Price = newLine.Price
			lines[i].SelectedVariantsDisplay = newLine.SelectedVariantsDisplay
			return lines, true
		}
	}
	return append(lines, newLine), false
}
