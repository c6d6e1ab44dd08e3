package calculator

import (
	"github.com/shopspring/decimal"

	"github.com/mmynk/billsplit/internal/models"
)

// Allocate computes how much each person owes.
//
// Algorithm:
//   - Each item's line total is split evenly among its assignees, regardless
//     of how many units each one had
//   - Tax + tip - discount is split evenly across the whole roster
//   - person_total = item_share + shared_cost_share
//   - percentage = person_total / bill_total × 100 (zero for a zero total)
//
// Results follow roster order. An empty roster yields an empty slice.
// Items nobody is assigned to still count towards the bill total but towards
// no one's share, so the allocations can add up to less than the total.
func Allocate(items []models.Item, c Charges, people []models.Person) []models.Allocation {
	allocations := make([]models.Allocation, 0, len(people))
	if len(people) == 0 {
		return allocations
	}

	total := Total(items, c)
	perPersonShared := c.Shared().Div(decimal.NewFromInt(int64(len(people))))

	index := make(map[string]int, len(people))
	for i, p := range people {
		index[p.ID] = i
		allocations = append(allocations, models.Allocation{
			PersonID:        p.ID,
			Name:            p.Name,
			ItemShare:       decimal.Zero,
			SharedCostShare: perPersonShared,
		})
	}

	for _, item := range items {
		if len(item.AssignedTo) == 0 {
			continue
		}

		// Split item among assigned people
		share := item.LineTotal().Div(decimal.NewFromInt(int64(len(item.AssignedTo))))
		for _, personID := range item.AssignedTo {
			i, ok := index[personID]
			if !ok {
				continue
			}
			a := &allocations[i]
			a.ItemShare = a.ItemShare.Add(share)
			a.Items = append(a.Items, models.PersonItem{
				ItemID: item.ID,
				Name:   item.Name,
				Share:  share,
			})
		}
	}

	for i := range allocations {
		a := &allocations[i]
		a.PersonTotal = a.ItemShare.Add(a.SharedCostShare)
		if total.IsZero() {
			a.Percentage = decimal.Zero
		} else {
			a.Percentage = a.PersonTotal.Div(total).Mul(hundred)
		}
	}

	return allocations
}

// Unallocated returns the part of total not covered by any allocation.
// It is non-zero when some items have no assignees or the roster is empty.
func Unallocated(total decimal.Decimal, allocations []models.Allocation) decimal.Decimal {
	covered := decimal.Zero
	for _, a := range allocations {
		covered = covered.Add(a.PersonTotal)
	}
	return total.Sub(covered)
}
