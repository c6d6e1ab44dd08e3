// Package split owns the mutable state of one bill being split: the roster,
// the items, who is assigned to what, and the bill-level charges.
//
// Every mutation validates its input, applies the change and recomputes the
// derived values (subtotal, total, whether every item is assigned) under a
// single write lock, so readers never observe a change without its
// recompute. Invalid input is rejected as a no-op and reported as
// applied == false rather than as an error.
package split

import (
	"log/slog"
	"strings"
	"sync"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/mmynk/billsplit/internal/calculator"
	"github.com/mmynk/billsplit/internal/models"
)

// DefaultPalette is the legend color cycle assigned to people by roster position.
var DefaultPalette = []string{"#FF6B6B", "#4ECDC4", "#45B7D1", "#FFA07A", "#98D8C8"}

// DefaultCurrency is used when a bill does not name one.
const DefaultCurrency = "$"

// Session is the owning context for a single bill split.
// It is safe for concurrent use.
type Session struct {
	mu sync.RWMutex

	logger   *slog.Logger
	recorder Recorder
	palette  []string
	currency string

	people  roster
	items   itemRegistry
	matrix  matrix
	charges calculator.Charges

	// scanned is the total read off the receipt, kept for TotalCheck.
	scanned decimal.Decimal

	// Derived values, recomputed after every applied mutation.
	subtotal      decimal.Decimal
	total         decimal.Decimal
	fullyAssigned bool
}

// Option configures a Session.
type Option func(*Session)

// WithLogger sets the logger used for rejected mutations.
func WithLogger(l *slog.Logger) Option {
	return func(s *Session) {
		if l != nil {
			s.logger = l
		}
	}
}

// WithRecorder sets the metrics recorder.
func WithRecorder(r Recorder) Option {
	return func(s *Session) {
		if r != nil {
			s.recorder = r
		}
	}
}

// WithPalette overrides the legend colors.
func WithPalette(colors []string) Option {
	return func(s *Session) {
		if len(colors) > 0 {
			s.palette = append([]string(nil), colors...)
		}
	}
}

// WithCurrency sets the currency shown next to amounts.
func WithCurrency(currency string) Option {
	return func(s *Session) {
		if currency != "" {
			s.currency = currency
		}
	}
}

// New creates an empty session.
func New(opts ...Option) *Session {
	s := &Session{
		logger:   slog.Default(),
		recorder: nopRecorder{},
		palette:  DefaultPalette,
		currency: DefaultCurrency,
		matrix:   newMatrix(),
	}
	for _, opt := range opts {
		opt(s)
	}
	s.logger = s.logger.With("component", "split")
	s.recompute()
	return s
}

// NewFromBill creates a session seeded with a parsed bill and roster.
//
// Input is repaired rather than rejected so the session invariants hold:
//   - people with a blank name are skipped; a repeated person ID gets a fresh one
//   - items with a negative price are dropped
//   - a blank or repeated item ID gets a fresh one
//   - a quantity below one becomes one
//   - negative charges become zero
//
// Assignments to people not in people are dropped. A positive bill.Total is
// kept as the scanned total and reported by Bill until the first applied
// mutation reconciles it.
func NewFromBill(bill models.Bill, people []models.Person, opts ...Option) *Session {
	s := New(append(opts[:len(opts):len(opts)], WithCurrency(bill.Currency))...)

	for _, p := range people {
		p.Name = strings.TrimSpace(p.Name)
		if p.Name == "" {
			s.logger.Warn("skipping person without a name", "person_id", p.ID)
			continue
		}
		if p.ID == "" || s.people.index(p.ID) >= 0 {
			id := uuid.New().String()
			s.logger.Warn("replacing repeated person id", "person_id", p.ID, "new_id", id)
			p.ID = id
		}
		s.people.add(p)
	}

	for _, item := range bill.Items {
		if item.UnitPrice.IsNegative() {
			s.logger.Warn("dropping item with negative price", "item_id", item.ID, "price", item.UnitPrice.String())
			continue
		}
		if item.ID == "" || s.items.index(item.ID) >= 0 {
			id := uuid.New().String()
			s.logger.Warn("replacing repeated item id", "item_id", item.ID, "new_id", id)
			item.ID = id
		}
		if item.Quantity < 1 {
			s.logger.Warn("quantity below one, using one", "item_id", item.ID, "quantity", item.Quantity)
			item.Quantity = 1
		}
		s.items.add(item)
		for _, personID := range item.AssignedTo {
			if s.people.index(personID) < 0 {
				s.logger.Warn("dropping assignment to unknown person", "item_id", item.ID, "person_id", personID)
				continue
			}
			if !s.matrix.has(item.ID, personID) {
				s.matrix.toggle(item.ID, personID)
			}
		}
	}

	s.charges = calculator.Charges{
		Tax:      s.nonNegative("tax", bill.TaxAmount),
		Tip:      s.nonNegative("tip", bill.TipAmount),
		Discount: s.nonNegative("discount", bill.DiscountAmount),
	}
	s.scanned = s.nonNegative("total", bill.Total)

	s.recompute()
	if !s.scanned.IsZero() {
		s.total = s.scanned
	}
	return s
}

func (s *Session) nonNegative(field string, d decimal.Decimal) decimal.Decimal {
	if d.IsNegative() {
		s.logger.Warn("negative amount, using zero", "field", field, "amount", d.String())
		return decimal.Zero
	}
	return d
}

// recompute refreshes every derived value. Callers hold the write lock.
func (s *Session) recompute() {
	s.subtotal = calculator.Subtotal(s.items.items)
	s.total = s.subtotal.Add(s.charges.Shared())
	s.fullyAssigned = s.matrix.fullyAssigned(s.items.items)
}

// commit finishes an applied mutation. Callers hold the write lock.
func (s *Session) commit(op string) bool {
	s.recompute()
	s.recorder.Mutation(op, true)
	return true
}

// reject records a mutation that was not applied. Callers hold the write lock.
func (s *Session) reject(op string, args ...any) bool {
	s.logger.Debug("mutation rejected", append([]any{"op", op}, args...)...)
	s.recorder.Mutation(op, false)
	return false
}

// Currency returns the currency shown next to amounts.
func (s *Session) Currency() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.currency
}

// Bill returns a snapshot of the bill. Amounts are rounded to the cent.
func (s *Session) Bill() models.Bill {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return models.Bill{
		Currency:       s.currency,
		Items:          s.itemsSnapshot(),
		TaxAmount:      s.charges.Tax.Round(2),
		TipAmount:      s.charges.Tip.Round(2),
		DiscountAmount: s.charges.Discount.Round(2),
		Subtotal:       s.subtotal.Round(2),
		Total:          s.total.Round(2),
	}
}
