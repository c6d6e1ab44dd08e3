package split

import (
	"strings"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/mmynk/billsplit/internal/models"
)

// itemRegistry holds the line items in bill order. Assignments live in the
// matrix, never in items[i].AssignedTo.
type itemRegistry struct {
	items []models.Item
}

func (r *itemRegistry) add(item models.Item) {
	item.AssignedTo = nil
	r.items = append(r.items, item)
}

func (r *itemRegistry) index(id string) int {
	for i, item := range r.items {
		if item.ID == id {
			return i
		}
	}
	return -1
}

func (r *itemRegistry) remove(i int) {
	r.items = append(r.items[:i], r.items[i+1:]...)
}

// AddItem appends a new item with quantity 1 and no assignees.
// An empty name or a negative price is rejected.
func (s *Session) AddItem(name string, unitPrice decimal.Decimal) (models.Item, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	name = strings.TrimSpace(name)
	if name == "" {
		return models.Item{}, s.reject(OpAddItem, "reason", "empty name")
	}
	if unitPrice.IsNegative() {
		return models.Item{}, s.reject(OpAddItem, "reason", "negative price", "price", unitPrice.String())
	}

	item := models.Item{
		ID:        uuid.New().String(),
		Name:      name,
		Quantity:  1,
		UnitPrice: unitPrice,
	}
	s.items.add(item)
	return item, s.commit(OpAddItem)
}

// EditItem replaces an item's name and unit price, validated like AddItem.
// Quantity and assignees are kept.
func (s *Session) EditItem(id, name string, unitPrice decimal.Decimal) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	name = strings.TrimSpace(name)
	if name == "" {
		return s.reject(OpEditItem, "item_id", id, "reason", "empty name")
	}
	if unitPrice.IsNegative() {
		return s.reject(OpEditItem, "item_id", id, "reason", "negative price", "price", unitPrice.String())
	}
	i := s.items.index(id)
	if i < 0 {
		return s.reject(OpEditItem, "item_id", id, "reason", "unknown item")
	}

	s.items.items[i].Name = name
	s.items.items[i].UnitPrice = unitPrice
	return s.commit(OpEditItem)
}

// RemoveItem deletes an item together with its assignments.
func (s *Session) RemoveItem(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.items.index(id)
	if i < 0 {
		return s.reject(OpRemoveItem, "item_id", id, "reason", "unknown item")
	}

	s.items.remove(i)
	s.matrix.dropItem(id)
	return s.commit(OpRemoveItem)
}

// SetQuantity sets an item's quantity. Quantities below 1 are rejected.
func (s *Session) SetQuantity(id string, quantity int) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.setQuantity(id, func(int) int { return quantity })
}

// IncrementQuantity adds one unit to an item.
func (s *Session) IncrementQuantity(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.setQuantity(id, func(q int) int { return q + 1 })
}

// DecrementQuantity removes one unit from an item. An item never drops
// below one unit; use RemoveItem instead.
func (s *Session) DecrementQuantity(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.setQuantity(id, func(q int) int { return q - 1 })
}

func (s *Session) setQuantity(id string, next func(int) int) bool {
	i := s.items.index(id)
	if i < 0 {
		return s.reject(OpSetQuantity, "item_id", id, "reason", "unknown item")
	}
	q := next(s.items.items[i].Quantity)
	if q < 1 {
		return s.reject(OpSetQuantity, "item_id", id, "reason", "quantity below 1", "quantity", q)
	}

	s.items.items[i].Quantity = q
	return s.commit(OpSetQuantity)
}

// Items returns the items in bill order, each with its current assignees.
func (s *Session) Items() []models.Item {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.itemsSnapshot()
}

// Item looks up an item by id.
func (s *Session) Item(id string) (models.Item, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	i := s.items.index(id)
	if i < 0 {
		return models.Item{}, false
	}
	item := s.items.items[i]
	item.AssignedTo = s.matrix.assignees(id)
	return item, true
}

// itemsSnapshot copies the items and fills in their assignees. Callers hold
// at least the read lock.
func (s *Session) itemsSnapshot() []models.Item {
	out := make([]models.Item, len(s.items.items))
	for i, item := range s.items.items {
		item.AssignedTo = s.matrix.assignees(item.ID)
		out[i] = item
	}
	return out
}
