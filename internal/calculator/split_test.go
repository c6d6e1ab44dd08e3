package calculator

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mmynk/billsplit/internal/models"
)

var (
	alice = models.Person{ID: "alice", Name: "Alice"}
	bob   = models.Person{ID: "bob", Name: "Bob"}
	carol = models.Person{ID: "carol", Name: "Carol"}
)

func TestAllocate(t *testing.T) {
	tests := []struct {
		name         string
		items        []models.Item
		charges      Charges
		people       []models.Person
		validateFunc func(t *testing.T, got []models.Allocation)
	}{
		{
			name: "shared item and tax split evenly",
			items: []models.Item{
				item("tenders", "11", 1, "alice"),
				item("burger", "18.50", 1, "alice", "bob"),
			},
			charges: Charges{Tax: dec("15")},
			people:  []models.Person{alice, bob},
			validateFunc: func(t *testing.T, got []models.Allocation) {
				// total = 44.50, shared = 15 / 2 = 7.50 each
				// Alice: 11 + 9.25 + 7.50 = 27.75
				// Bob: 9.25 + 7.50 = 16.75
				require.Len(t, got, 2)
				assert.Equal(t, "alice", got[0].PersonID)
				assert.Equal(t, "20.25", got[0].ItemShare.StringFixed(2))
				assert.Equal(t, "7.50", got[0].SharedCostShare.StringFixed(2))
				assert.Equal(t, "27.75", got[0].DisplayTotal())
				assert.Equal(t, "62.4", got[0].DisplayPercentage())

				assert.Equal(t, "bob", got[1].PersonID)
				assert.Equal(t, "9.25", got[1].ItemShare.StringFixed(2))
				assert.Equal(t, "16.75", got[1].DisplayTotal())
				assert.Equal(t, "37.6", got[1].DisplayPercentage())
			},
		},
		{
			name:    "empty roster yields empty allocation",
			items:   []models.Item{item("a", "10", 1)},
			charges: Charges{Tax: dec("1")},
			people:  nil,
			validateFunc: func(t *testing.T, got []models.Allocation) {
				assert.NotNil(t, got)
				assert.Empty(t, got)
			},
		},
		{
			name:    "zero total reports zero percentage",
			items:   []models.Item{item("free", "0", 1, "alice")},
			charges: Charges{},
			people:  []models.Person{alice},
			validateFunc: func(t *testing.T, got []models.Allocation) {
				require.Len(t, got, 1)
				assert.True(t, got[0].PersonTotal.IsZero())
				assert.True(t, got[0].Percentage.IsZero())
			},
		},
		{
			name:    "no items splits shared cost only",
			items:   nil,
			charges: Charges{Tax: dec("9"), Tip: dec("3")},
			people:  []models.Person{alice, bob, carol},
			validateFunc: func(t *testing.T, got []models.Allocation) {
				require.Len(t, got, 3)
				for _, a := range got {
					assert.Equal(t, "4.00", a.DisplayTotal())
					assert.Empty(t, a.Items)
				}
			},
		},
		{
			name:    "discount beyond charges lowers every share",
			items:   []models.Item{item("a", "20", 1, "alice"), item("b", "20", 1, "bob")},
			charges: Charges{Tax: dec("2"), Discount: dec("6")},
			people:  []models.Person{alice, bob},
			validateFunc: func(t *testing.T, got []models.Allocation) {
				require.Len(t, got, 2)
				assert.Equal(t, "-2.00", got[0].SharedCostShare.StringFixed(2))
				assert.Equal(t, "18.00", got[0].DisplayTotal())
				assert.Equal(t, "50.0", got[1].DisplayPercentage())
			},
		},
		{
			name:    "unassigned item counts towards no one",
			items:   []models.Item{item("a", "10", 1, "alice"), item("b", "30", 1)},
			charges: Charges{},
			people:  []models.Person{alice, bob},
			validateFunc: func(t *testing.T, got []models.Allocation) {
				assert.Equal(t, "10.00", got[0].DisplayTotal())
				assert.Equal(t, "25.0", got[0].DisplayPercentage())
				assert.True(t, got[1].PersonTotal.IsZero())
				assert.Equal(t, "30.00", Unallocated(dec("40"), got).StringFixed(2))
			},
		},
		{
			name:    "quantity is split evenly not per unit",
			items:   []models.Item{item("drink", "2.75", 3, "alice", "bob", "carol")},
			charges: Charges{},
			people:  []models.Person{alice, bob, carol},
			validateFunc: func(t *testing.T, got []models.Allocation) {
				for _, a := range got {
					assert.Equal(t, "2.75", a.DisplayTotal())
					require.Len(t, a.Items, 1)
					assert.Equal(t, "drink", a.Items[0].ItemID)
				}
			},
		},
		{
			name:    "results follow roster order",
			items:   []models.Item{item("a", "5", 1, "carol", "alice")},
			charges: Charges{},
			people:  []models.Person{carol, alice, bob},
			validateFunc: func(t *testing.T, got []models.Allocation) {
				require.Len(t, got, 3)
				assert.Equal(t, []string{"carol", "alice", "bob"}, []string{got[0].PersonID, got[1].PersonID, got[2].PersonID})
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.validateFunc(t, Allocate(tt.items, tt.charges, tt.people))
		})
	}
}

func TestAllocateSumsToTotalWhenFullyAssigned(t *testing.T) {
	items := []models.Item{
		item("a", "10.01", 1, "alice"),
		item("b", "3.33", 3, "bob"),
		item("c", "7.77", 1, "carol"),
		item("d", "1.99", 2, "alice"),
	}
	charges := Charges{Tax: dec("2.17"), Tip: dec("4.44"), Discount: dec("1")}
	people := []models.Person{alice, bob, carol}

	got := Allocate(items, charges, people)
	total := Total(items, charges)

	sum := decimal.Zero
	for _, a := range got {
		sum = sum.Add(a.PersonTotal.Round(2))
	}
	tolerance := 0.01 * float64(len(people))
	assert.InDelta(t, total.InexactFloat64(), sum.InexactFloat64(), tolerance)
}

func TestSettle(t *testing.T) {
	allocs := Allocate(
		[]models.Item{
			item("tenders", "11", 1, "alice"),
			item("burger", "18.50", 1, "alice", "bob"),
		},
		Charges{Tax: dec("15")},
		[]models.Person{alice, bob},
	)

	t.Run("single payer is owed by everyone else", func(t *testing.T) {
		got := Settle(allocs, map[string]decimal.Decimal{"alice": dec("44.50")})
		require.Len(t, got, 1)
		assert.Equal(t, "bob", got[0].From)
		assert.Equal(t, "alice", got[0].To)
		assert.Equal(t, "16.75", got[0].Amount.StringFixed(2))
	})

	t.Run("split payment", func(t *testing.T) {
		got := Settle(allocs, map[string]decimal.Decimal{"alice": dec("20"), "bob": dec("24.50")})
		require.Len(t, got, 1)
		assert.Equal(t, "alice", got[0].From)
		assert.Equal(t, "bob", got[0].To)
		assert.Equal(t, "7.75", got[0].Amount.StringFixed(2))
	})

	t.Run("already even", func(t *testing.T) {
		got := Settle(allocs, map[string]decimal.Decimal{"alice": dec("27.75"), "bob": dec("16.75")})
		assert.Empty(t, got)
	})

	t.Run("nobody paid", func(t *testing.T) {
		assert.Empty(t, Settle(allocs, nil))
	})
}
