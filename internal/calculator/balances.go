package calculator

import (
	"github.com/shopspring/decimal"

	"github.com/mmynk/billsplit/internal/models"
)

// settleThreshold keeps rounding noise from turning into transfers.
var settleThreshold = decimal.NewFromFloat(0.01)

type balance struct {
	personID string
	amount   decimal.Decimal
}

// Settle computes the transfers that square everyone up after the bill has
// been paid.
//
// paid maps person IDs to the amount each one actually handed over. People
// missing from paid paid nothing.
//
// Algorithm:
//   - owed = person total rounded to the cent
//   - net = paid - owed (positive = owed money, negative = owes money)
//   - Debtors and creditors are matched greedily in roster order
func Settle(allocations []models.Allocation, paid map[string]decimal.Decimal) []models.Transfer {
	var creditors, debtors []balance
	for _, a := range allocations {
		net := paid[a.PersonID].Sub(a.PersonTotal.Round(2))
		switch {
		case net.GreaterThan(decimal.Zero):
			creditors = append(creditors, balance{personID: a.PersonID, amount: net})
		case net.LessThan(decimal.Zero):
			debtors = append(debtors, balance{personID: a.PersonID, amount: net.Neg()})
		}
	}

	var transfers []models.Transfer
	i, j := 0, 0
	for i < len(debtors) && j < len(creditors) {
		debtor := &debtors[i]
		creditor := &creditors[j]

		// Amount to settle is minimum of what debtor owes and creditor is owed
		amount := decimal.Min(debtor.amount, creditor.amount)
		if amount.GreaterThanOrEqual(settleThreshold) {
			transfers = append(transfers, models.Transfer{
				From:   debtor.personID,
				To:     creditor.personID,
				Amount: amount,
			})
		}

		debtor.amount = debtor.amount.Sub(amount)
		creditor.amount = creditor.amount.Sub(amount)

		if debtor.amount.LessThan(settleThreshold) {
			i++
		}
		if creditor.amount.LessThan(settleThreshold) {
			j++
		}
	}

	return transfers
}
