package checkout

import (
	"fmt"
	"strings"

	"github.com/lmarchetti/storefront-backend/pkg/enums"
	pkgerrors "github.com/lmarchetti/storefront-backend/pkg/errors"
	"github.com/lmarchetti/storefront-backend/pkg/types"
)

// CardInput carries the raw card form fields. They are validated for
// presence, recorded nowhere, and discarded after the order is created.
type CardInput struct {
	Number     string `json:"number"`
	HolderName string `json:"holderName"`
	Expiry     string `json:"expiry"`
	CVC        string `json:"cvc"`
}

type fieldCheck struct {
	label string
	value string
}

// validateInput walks the form fields in display order and rejects on the
// first missing one, so the caller can point the shopper at a single field.
func validateInput(address types.Address, method enums.PaymentMethod, card *CardInput) error {
	checks := []fieldCheck{
		{"name", address.Name},
		{"email", address.Email},
		{"phone", address.Phone},
		{"address line", address.Line1},
		{"city", address.City},
		{"state", address.State},
		{"postal code", address.PostalCode},
		{"country", address.Country},
	}

	if !method.IsValid() {
		return pkgerrors.New(pkgerrors.CodeValidation, "unsupported payment method").
			WithDetails(map[string]string{"field": "payment method"})
	}
	if method == enums.PaymentMethodCreditCard {
		if card == nil {
			card = &CardInput{}
		}
		checks = append(checks,
			fieldCheck{"card number", card.Number},
			fieldCheck{"card holder name", card.HolderName},
			fieldCheck{"card expiry", card.Expiry},
			fieldCheck{"card cvc", card.CVC},
		)
	}

	for _, check := range checks {
		if strings.TrimSpace(check.value) == "" {
			return pkgerrors.New(pkgerrors.CodeValidation, fmt.Sprintf("%s is required", check.label)).
				WithDetails(map[string]string{"field": check.label})
		}
	}
	return nil
}
