package models

import "github.com/shopspring/decimal"

// Bill is a snapshot of a bill being split.
type Bill struct {
	// Currency is the symbol or code shown next to amounts (e.g., "$").
	Currency string

	// Items are the line items on the bill, in bill order.
	Items []Item

	// TaxAmount covers taxes and extra fees.
	TaxAmount decimal.Decimal

	// TipAmount is the tip, entered directly or derived from a percentage of the subtotal.
	TipAmount decimal.Decimal

	// DiscountAmount is subtracted from the total.
	DiscountAmount decimal.Decimal

	// Subtotal is the sum of every item's line total (unrounded).
	Subtotal decimal.Decimal

	// Total is subtotal + tax + tip - discount.
	// Right after ingestion it holds the scanned total until the first edit
	// reconciles it.
	Total decimal.Decimal
}

// Item represents a single line item on a bill.
// Items can be shared among multiple people.
type Item struct {
	// ID is the unique identifier for the item.
	ID string

	// Name is the description of the item (e.g., "Caesar Salad").
	Name string

	// Quantity is the number of units ordered. Always at least 1.
	Quantity int

	// UnitPrice is the price of a single unit. Never negative.
	UnitPrice decimal.Decimal

	// AssignedTo holds the IDs of the people sharing this item, in the
	// order they were assigned.
	// If multiple people are assigned, the item is split equally among them.
	AssignedTo []string
}

// LineTotal returns UnitPrice × Quantity.
func (i Item) LineTotal() decimal.Decimal {
	return i.UnitPrice.Mul(decimal.NewFromInt(int64(i.Quantity)))
}

// IsAssignedTo reports whether personID is among the item's assignees.
func (i Item) IsAssignedTo(personID string) bool {
	for _, id := range i.AssignedTo {
		if id == personID {
			return true
		}
	}
	return false
}

// Clone returns a copy of the item that shares no memory with i.
func (i Item) Clone() Item {
	c := i
	c.AssignedTo = append([]string(nil), i.AssignedTo...)
	return c
}

// PersonItem represents an item's share for one person.
type PersonItem struct {
	ItemID string
	Name   string
	Share  decimal.Decimal // This person's share of the item's line total
}

// Allocation represents one person's calculated share of a bill.
// This is the output of the allocation algorithm and is never stored.
type Allocation struct {
	// PersonID is the ID of the person this allocation belongs to.
	PersonID string

	// Name is the person's display name at the time of calculation.
	Name string

	// ItemShare is the sum of this person's shares of their assigned items.
	ItemShare decimal.Decimal

	// SharedCostShare is this person's even share of tax + tip - discount.
	// Negative when the discount exceeds tax and tip.
	SharedCostShare decimal.Decimal

	// PersonTotal is ItemShare + SharedCostShare (unrounded).
	PersonTotal decimal.Decimal

	// Percentage is PersonTotal as a percentage of the bill total (unrounded).
	// Zero when the bill total is zero.
	Percentage decimal.Decimal

	// Items are the items assigned to this person with their share amounts.
	Items []PersonItem
}

// DisplayTotal returns PersonTotal rounded to two decimal places.
func (a Allocation) DisplayTotal() string {
	return a.PersonTotal.StringFixed(2)
}

// DisplayPercentage returns Percentage rounded to one decimal place.
func (a Allocation) DisplayPercentage() string {
	return a.Percentage.StringFixed(1)
}

// Transfer is a payment from one person to another that settles a debt.
type Transfer struct {
	From   string          // Person who owes
	To     string          // Person who is owed
	Amount decimal.Decimal
}

// TotalCheck compares the total read off the receipt with the total
// computed from the current items and charges.
type TotalCheck struct {
	Scanned  decimal.Decimal
	Computed decimal.Decimal
	// Difference is Computed - Scanned.
	Difference decimal.Decimal
}

// Matches reports whether the scanned and computed totals agree to the cent.
func (c TotalCheck) Matches() bool {
	return c.Difference.Round(2).IsZero()
}
