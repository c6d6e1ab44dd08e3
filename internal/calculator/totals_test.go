package calculator

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/mmynk/billsplit/internal/models"
)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func item(id string, price string, qty int, assigned ...string) models.Item {
	return models.Item{ID: id, Name: id, Quantity: qty, UnitPrice: dec(price), AssignedTo: assigned}
}

func TestSubtotal(t *testing.T) {
	tests := []struct {
		name  string
		items []models.Item
		want  string
	}{
		{name: "no items", items: nil, want: "0"},
		{name: "single item", items: []models.Item{item("a", "11", 1)}, want: "11"},
		{
			name: "quantities multiply",
			items: []models.Item{
				item("tenders", "11", 1),
				item("burger", "18.50", 1),
				item("drink", "2.75", 3),
				item("salad", "9.5", 1),
			},
			want: "47.25",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.True(t, Subtotal(tt.items).Equal(dec(tt.want)), "Subtotal() = %s, want %s", Subtotal(tt.items), tt.want)
		})
	}
}

func TestSubtotalIgnoresOrder(t *testing.T) {
	a := []models.Item{item("x", "0.1", 3), item("y", "0.2", 1), item("z", "19.99", 2)}
	b := []models.Item{a[2], a[0], a[1]}
	assert.True(t, Subtotal(a).Equal(Subtotal(b)))
}

func TestTotal(t *testing.T) {
	items := []models.Item{item("a", "11", 1), item("b", "18.50", 1)}

	tests := []struct {
		name    string
		charges Charges
		want    string
	}{
		{name: "tax only", charges: Charges{Tax: dec("15")}, want: "44.5"},
		{name: "tax tip discount", charges: Charges{Tax: dec("15"), Tip: dec("5"), Discount: dec("4.5")}, want: "45"},
		{name: "discount larger than charges", charges: Charges{Tax: dec("1"), Discount: dec("3")}, want: "27.5"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Total(items, tt.charges)
			assert.True(t, got.Equal(dec(tt.want)), "Total() = %s, want %s", got, tt.want)
		})
	}
}

func TestTipFromPercentage(t *testing.T) {
	assert.Equal(t, "5.00", TipFromPercentage(dec("10"), dec("50.00")).StringFixed(2))
	assert.Equal(t, "8.51", TipFromPercentage(dec("18"), dec("47.25")).StringFixed(2))
	assert.True(t, TipFromPercentage(dec("15"), decimal.Zero).IsZero())
}

func TestTipPercentage(t *testing.T) {
	assert.Equal(t, "10.0", TipPercentage(dec("5"), dec("50")).StringFixed(1))
	assert.True(t, TipPercentage(dec("5"), decimal.Zero).IsZero())
}
