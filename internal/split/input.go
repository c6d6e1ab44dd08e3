package split

import (
	"github.com/mmynk/billsplit/internal/models"
)

// The *Text variants take amounts as typed by a user. Text that does not
// parse as a non-negative number is rejected like any other invalid input.

// AddItemText is AddItem with a user-entered price.
func (s *Session) AddItemText(name, price string) (models.Item, bool) {
	p, err := models.ParseAmount(price)
	if err != nil {
		return models.Item{}, s.rejectText(OpAddItem, price)
	}
	return s.AddItem(name, p)
}

// EditItemText is EditItem with a user-entered price.
func (s *Session) EditItemText(id, name, price string) bool {
	p, err := models.ParseAmount(price)
	if err != nil {
		return s.rejectText(OpEditItem, price)
	}
	return s.EditItem(id, name, p)
}

// SetTipAmountText is SetTipByAmount with user-entered text.
func (s *Session) SetTipAmountText(amount string) bool {
	a, err := models.ParseAmount(amount)
	if err != nil {
		return s.rejectText(OpSetTipAmount, amount)
	}
	return s.SetTipByAmount(a)
}

// SetTipPercentText is SetTipByPercentage with user-entered text.
func (s *Session) SetTipPercentText(pct string) bool {
	p, err := models.ParseAmount(pct)
	if err != nil {
		return s.rejectText(OpSetTipPercent, pct)
	}
	return s.SetTipByPercentage(p)
}

func (s *Session) rejectText(op, input string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.reject(op, "reason", "not a number", "input", input)
}
