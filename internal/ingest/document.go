// Package ingest turns the bill document produced by the receipt scanner
// into a split session.
package ingest

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/shopspring/decimal"
)

// ErrInvalidDocument wraps every decoding and validation failure.
var ErrInvalidDocument = errors.New("invalid bill document")

// MaxQuantity is the largest item quantity a document may carry.
const MaxQuantity = 1_000_000

var maxQuantity = decimal.NewFromInt(MaxQuantity)

// Document is the scanned bill as delivered by the extraction service.
// Total is what the receipt says. It is only a hint; the session recomputes
// it on the first edit.
type Document struct {
	Items    []DocumentItem  `json:"items"`
	People   []PersonRef     `json:"people,omitempty"`
	Currency string          `json:"currency"`
	Taxes    decimal.Decimal `json:"taxes"`
	Discount decimal.Decimal `json:"discount"`
	Tip      decimal.Decimal `json:"tip"`
	Total    decimal.Decimal `json:"total"`
}

// DocumentItem is one line of the scanned bill.
type DocumentItem struct {
	ID       string          `json:"id"`
	Name     string          `json:"name"`
	Quantity decimal.Decimal `json:"quantity"`
	Price    decimal.Decimal `json:"price"`
	AssignTo []PersonRef     `json:"assignTo"`
}

// PersonRef identifies a person by id, by name, or both. In JSON it is
// either a plain string or an object with id and name.
type PersonRef struct {
	ID   string `json:"id,omitempty"`
	Name string `json:"name,omitempty"`
}

// UnmarshalJSON accepts "ref" as well as {"id": ..., "name": ...}. A plain
// string may be either an id or a name.
func (r *PersonRef) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*r = PersonRef{ID: s, Name: s}
		return nil
	}
	type plain PersonRef
	var p plain
	if err := json.Unmarshal(data, &p); err != nil {
		return err
	}
	*r = PersonRef(p)
	return nil
}

// Decode reads and validates a document.
func Decode(r io.Reader) (*Document, error) {
	var doc Document
	if err := json.NewDecoder(r).Decode(&doc); err != nil {
		return nil, fmt.Errorf("%w: decode: %w", ErrInvalidDocument, err)
	}
	if err := doc.Validate(); err != nil {
		return nil, err
	}
	return &doc, nil
}

// Validate checks the numeric fields. Quantities below one and blank names
// are repaired on load rather than rejected here.
func (d *Document) Validate() error {
	var errs []error

	for _, f := range []struct {
		name  string
		value decimal.Decimal
	}{
		{"taxes", d.Taxes},
		{"discount", d.Discount},
		{"tip", d.Tip},
		{"total", d.Total},
	} {
		if f.value.IsNegative() {
			errs = append(errs, fmt.Errorf("%s is negative: %s", f.name, f.value))
		}
	}

	for i, item := range d.Items {
		if item.Price.IsNegative() {
			errs = append(errs, fmt.Errorf("item %d (%q): price is negative: %s", i, item.Name, item.Price))
		}
		if !item.Quantity.Equal(item.Quantity.Truncate(0)) {
			errs = append(errs, fmt.Errorf("item %d (%q): quantity is not a whole number: %s", i, item.Name, item.Quantity))
		}
		if item.Quantity.GreaterThan(maxQuantity) {
			errs = append(errs, fmt.Errorf("item %d (%q): quantity is too large: %s", i, item.Name, item.Quantity))
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf("%w: %w", ErrInvalidDocument, errors.Join(errs...))
	}
	return nil
}
