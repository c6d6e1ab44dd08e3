package ingest

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/mmynk/billsplit/internal/models"
	"github.com/mmynk/billsplit/internal/split"
)

// Load builds a session from a validated document.
//
// The roster is seeded from the document's people. An assignTo reference is
// matched against the roster by id, then by name; a reference that matches
// nobody adds a person with that name, so every assignment points at someone
// on the roster. Items without an id (or with a repeated one) get a fresh
// id and blank names get a placeholder. The session coerces quantities
// below one to one.
func Load(doc *Document, opts ...split.Option) *split.Session {
	l := &loader{byID: map[string]int{}, byName: map[string]int{}}

	for _, ref := range doc.People {
		l.resolve(ref)
	}

	seen := make(map[string]bool, len(doc.Items))
	items := make([]models.Item, 0, len(doc.Items))
	for i, di := range doc.Items {
		item := models.Item{
			ID:        strings.TrimSpace(di.ID),
			Name:      strings.TrimSpace(di.Name),
			UnitPrice: di.Price,
		}
		// Validate bounds the quantity above; anything below one is left
		// for the session to repair.
		if di.Quantity.GreaterThanOrEqual(decimal.NewFromInt(1)) && di.Quantity.LessThanOrEqual(maxQuantity) {
			item.Quantity = int(di.Quantity.IntPart())
		}
		if item.ID == "" || seen[item.ID] {
			item.ID = uuid.New().String()
		}
		seen[item.ID] = true
		if item.Name == "" {
			item.Name = fmt.Sprintf("Item %d", i+1)
		}
		for _, ref := range di.AssignTo {
			if p, ok := l.resolve(ref); ok {
				item.AssignedTo = append(item.AssignedTo, p.ID)
			}
		}
		items = append(items, item)
	}

	bill := models.Bill{
		Currency:       strings.TrimSpace(doc.Currency),
		Items:          items,
		TaxAmount:      doc.Taxes,
		TipAmount:      doc.Tip,
		DiscountAmount: doc.Discount,
		Total:          doc.Total,
	}
	return split.NewFromBill(bill, l.people, opts...)
}

type loader struct {
	people []models.Person
	byID   map[string]int
	byName map[string]int
}

// resolve finds the person ref points at, adding them if needed.
func (l *loader) resolve(ref PersonRef) (models.Person, bool) {
	id := strings.TrimSpace(ref.ID)
	name := strings.TrimSpace(ref.Name)

	if i, ok := l.byID[id]; ok && id != "" {
		return l.people[i], true
	}
	if i, ok := l.byName[strings.ToLower(name)]; ok && name != "" {
		return l.people[i], true
	}
	if name == "" {
		name = id
	}
	if name == "" {
		return models.Person{}, false
	}
	if id == "" {
		id = uuid.New().String()
	}

	p := models.Person{ID: id, Name: name}
	l.byID[id] = len(l.people)
	l.byName[strings.ToLower(name)] = len(l.people)
	l.people = append(l.people, p)
	return p, true
}
