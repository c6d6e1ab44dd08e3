package split

import "github.com/mmynk/billsplit/internal/models"

// matrix is the item/person relation: item ID -> assigned person IDs in the
// order they were assigned.
type matrix struct {
	rows map[string][]string
}

func newMatrix() matrix {
	return matrix{rows: make(map[string][]string)}
}

func (m matrix) has(itemID, personID string) bool {
	for _, id := range m.rows[itemID] {
		if id == personID {
			return true
		}
	}
	return false
}

// toggle adds personID to the item's set, or removes it if already present.
func (m matrix) toggle(itemID, personID string) {
	row := m.rows[itemID]
	for i, id := range row {
		if id == personID {
			m.rows[itemID] = append(row[:i:i], row[i+1:]...)
			return
		}
	}
	m.rows[itemID] = append(row, personID)
}

// prune removes personID from every item.
func (m matrix) prune(personID string) {
	for itemID := range m.rows {
		if m.has(itemID, personID) {
			m.toggle(itemID, personID)
		}
	}
}

func (m matrix) dropItem(itemID string) {
	delete(m.rows, itemID)
}

func (m matrix) assignees(itemID string) []string {
	return append([]string(nil), m.rows[itemID]...)
}

func (m matrix) fullyAssigned(items []models.Item) bool {
	for _, item := range items {
		if len(m.rows[item.ID]) == 0 {
			return false
		}
	}
	return true
}

// Toggle assigns a person to an item, or unassigns them if they already are.
// Unknown item or person ids are a no-op.
func (s *Session) Toggle(itemID, personID string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.items.index(itemID) < 0 {
		return s.reject(OpToggle, "item_id", itemID, "person_id", personID, "reason", "unknown item")
	}
	if s.people.index(personID) < 0 {
		return s.reject(OpToggle, "item_id", itemID, "person_id", personID, "reason", "unknown person")
	}

	s.matrix.toggle(itemID, personID)
	return s.commit(OpToggle)
}

// IsFullyAssigned reports whether every item has at least one assignee.
// It is true for a bill with no items.
func (s *Session) IsFullyAssigned() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.fullyAssigned
}

// AssignedTo returns the ids of the people sharing an item.
func (s *Session) AssignedTo(itemID string) []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.matrix.assignees(itemID)
}

// UnassignedItems returns the items nobody is assigned to. Their cost is in
// the total but in no one's allocation.
func (s *Session) UnassignedItems() []models.Item {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var out []models.Item
	for _, item := range s.items.items {
		if len(s.matrix.rows[item.ID]) == 0 {
			out = append(out, item)
		}
	}
	return out
}
