// Package calculator holds the pure arithmetic behind a bill split: totals,
// tip derivation, per-person allocation and settlement.
//
// Nothing here rounds internally. Callers round when they report a value.
package calculator

import (
	"github.com/shopspring/decimal"

	"github.com/mmynk/billsplit/internal/models"
)

var hundred = decimal.NewFromInt(100)

// Charges are the bill-level amounts added to or removed from the subtotal.
type Charges struct {
	Tax      decimal.Decimal
	Tip      decimal.Decimal
	Discount decimal.Decimal
}

// Shared returns tax + tip - discount. It is negative when the discount
// exceeds tax and tip.
func (c Charges) Shared() decimal.Decimal {
	return c.Tax.Add(c.Tip).Sub(c.Discount)
}

// Subtotal returns the sum of unitPrice × quantity over all items.
func Subtotal(items []models.Item) decimal.Decimal {
	sum := decimal.Zero
	for _, item := range items {
		sum = sum.Add(item.LineTotal())
	}
	return sum
}

// Total returns subtotal + tax + tip - discount.
func Total(items []models.Item, c Charges) decimal.Decimal {
	return Subtotal(items).Add(c.Shared())
}

// TipFromPercentage returns pct% of subtotal rounded to the cent.
func TipFromPercentage(pct, subtotal decimal.Decimal) decimal.Decimal {
	return pct.Div(hundred).Mul(subtotal).Round(2)
}

// TipPercentage returns tip as a percentage of subtotal, or zero for an
// empty subtotal.
func TipPercentage(tip, subtotal decimal.Decimal) decimal.Decimal {
	if subtotal.IsZero() {
		return decimal.Zero
	}
	return tip.Div(subtotal).Mul(hundred)
}
