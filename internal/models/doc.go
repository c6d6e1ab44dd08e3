// Package models defines the core domain models for billsplit.
//
// # Models
//
//   - Person: a participant on the roster
//   - Item: a line item on the bill, shared among zero or more people
//   - Bill: a snapshot of the bill totals and items
//   - Allocation: the derived share one person owes
//   - Transfer: a payment that settles what one person owes another
//
// # Design Principles
//
// 1. **IDs, not pointers**: Items reference people by ID so removal and
// serialization stay simple.
// 2. **Decimal money**: Amounts are shopspring decimals. Rounding happens
// only when a value is reported.
// 3. **Snapshots are copies**: Values handed to callers never alias the
// state held by a split session.
package models
