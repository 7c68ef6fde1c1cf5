package checkout

import (
	"github.com/lmarchetti/storefront-backend/internal/cart"
	"github.com/shopspring/decimal"
)

// Totals holds the priced summary for a cart about to become an order.
// Amounts are dollars with two decimal places.
type Totals struct {
	Subtotal decimal.Decimal
	Shipping decimal.Decimal
	Total    decimal.Decimal
}

// ComputeTotals prices the cart: subtotal is the sum of price times quantity
// per line, shipping is the configured flat fee, total is their sum. An empty
// cart totals to zero with no shipping charge.
func ComputeTotals(lines []cart.Line, shippingFeeCents int64) Totals {
	subtotal := decimal.Zero
	for _, line := range lines {
		price := decimal.NewFromFloat(line.Price)
		subtotal = subtotal.Add(price.Mul(decimal.NewFromInt(int64(line.Quantity))))
	}
	subtotal = subtotal.Round(2)

	if subtotal.IsZero() {
		return Totals{Subtotal: decimal.Zero, Shipping: decimal.Zero, Total: decimal.Zero}
	}

	shipping := decimal.New(shippingFeeCents, -2)
	return Totals{
		Subtotal: subtotal,
		Shipping: shipping,
		Total:    subtotal.Add(shipping),
	}
}

// Cents converts a two-decimal dollar amount to integer cents.
func Cents(amount decimal.Decimal) int64 {
	return amount.Mul(decimal.NewFromInt(100)).Round(0).IntPart()
}

func decimalFromPrice(price float64) decimal.Decimal {
	return decimal.NewFromFloat(price).Round(2)
}
