package split

import (
	"github.com/shopspring/decimal"

	"github.com/mmynk/billsplit/internal/calculator"
	"github.com/mmynk/billsplit/internal/models"
)

// SetTax sets taxes and extra fees. Negative amounts are rejected.
func (s *Session) SetTax(amount decimal.Decimal) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if amount.IsNegative() {
		return s.reject(OpSetTax, "amount", amount.String())
	}
	s.charges.Tax = amount
	return s.commit(OpSetTax)
}

// SetDiscount sets the discount. Negative amounts are rejected.
func (s *Session) SetDiscount(amount decimal.Decimal) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if amount.IsNegative() {
		return s.reject(OpSetDiscount, "amount", amount.String())
	}
	s.charges.Discount = amount
	return s.commit(OpSetDiscount)
}

// SetTipByAmount sets the tip to a fixed amount, rounded to the cent.
// Negative amounts are rejected.
func (s *Session) SetTipByAmount(amount decimal.Decimal) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if amount.IsNegative() {
		return s.reject(OpSetTipAmount, "amount", amount.String())
	}
	s.charges.Tip = amount.Round(2)
	return s.commit(OpSetTipAmount)
}

// SetTipByPercentage sets the tip to pct% of the current subtotal, rounded
// to the cent. Negative percentages are rejected. The tip is not updated if
// the subtotal changes afterwards.
func (s *Session) SetTipByPercentage(pct decimal.Decimal) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if pct.IsNegative() {
		return s.reject(OpSetTipPercent, "percentage", pct.String())
	}
	s.charges.Tip = calculator.TipFromPercentage(pct, s.subtotal)
	return s.commit(OpSetTipPercent)
}

// Subtotal returns the sum of every item's line total, rounded to the cent.
func (s *Session) Subtotal() decimal.Decimal {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return calculator.Subtotal(s.items.items).Round(2)
}

// Total returns subtotal + tax + tip - discount, rounded to the cent.
// Unlike Bill().Total it is always computed from the current state, even
// before the scanned total has been reconciled.
func (s *Session) Total() decimal.Decimal {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return calculator.Total(s.items.items, s.charges).Round(2)
}

// TipPercentage returns the tip as a percentage of the subtotal.
func (s *Session) TipPercentage() decimal.Decimal {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return calculator.TipPercentage(s.charges.Tip, s.subtotal)
}

// TotalCheck compares the scanned receipt total with the computed total.
func (s *Session) TotalCheck() models.TotalCheck {
	s.mu.RLock()
	defer s.mu.RUnlock()

	computed := calculator.Total(s.items.items, s.charges).Round(2)
	return models.TotalCheck{
		Scanned:    s.scanned,
		Computed:   computed,
		Difference: computed.Sub(s.scanned),
	}
}
