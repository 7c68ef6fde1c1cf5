package enums

import "fmt"

// VariantDisplayType describes how a product variant is rendered on the product page.
type VariantDisplayType string

const (
	VariantDisplayDropdown VariantDisplayType = "dropdown"
	VariantDisplayButtons  VariantDisplayType = "buttons"
)

var validVariantDisplayTypes = []VariantDisplayType{
	VariantDisplayDropdown,
	VariantDisplayButtons,
}

// IsValid reports whether the value matches the canonical variant display type enum.
func (v VariantDisplayType) IsValid() bool {
	for _, candidate := range validVariantDisplayTypes {
		if candidate == v {
			return true
		}
	}
	return false
}

// ParseVariantDisplayType converts the raw string to VariantDisplayType.
func ParseVariantDisplayType(value string) (VariantDisplayType, error) {
	for _, candidate := range validVariantDisplayTypes {
		if string(candidate) == value {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("invalid variant display type %q", value)
}
