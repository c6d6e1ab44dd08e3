package split

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/mmynk/billsplit/internal/calculator"
	"github.com/mmynk/billsplit/internal/models"
)

// Allocations computes each person's share of the bill in roster order.
// An empty roster yields an empty slice.
func (s *Session) Allocations() []models.Allocation {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.allocate()
}

// allocate runs the allocation engine. Callers hold at least the read lock.
func (s *Session) allocate() []models.Allocation {
	start := time.Now()
	allocations := calculator.Allocate(s.itemsSnapshot(), s.charges, s.people.people)
	s.recorder.Allocation(len(s.people.people), time.Since(start))
	return allocations
}

// Unallocated returns how much of the total no one has been allocated,
// rounded to the cent. It is zero once every item is assigned and the
// roster is not empty.
func (s *Session) Unallocated() decimal.Decimal {
	s.mu.RLock()
	defer s.mu.RUnlock()

	total := calculator.Total(s.items.items, s.charges)
	return calculator.Unallocated(total, s.allocate()).Round(2)
}

// Settle returns the transfers that square everyone up given what each
// person actually paid.
func (s *Session) Settle(paid map[string]decimal.Decimal) []models.Transfer {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return calculator.Settle(s.allocate(), paid)
}

// SettleWith returns the transfers owed to payerID, assuming they paid the
// whole bill. An unknown payer yields no transfers.
func (s *Session) SettleWith(payerID string) []models.Transfer {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.people.index(payerID) < 0 {
		return nil
	}
	total := calculator.Total(s.items.items, s.charges).Round(2)
	return calculator.Settle(s.allocate(), map[string]decimal.Decimal{payerID: total})
}
