package bag

import (
	"testing"

	"github.com/avGenie/go-food-bag/internal/app/entity"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func price(value string) decimal.Decimal {
	return decimal.RequireFromString(value)
}

func quantityItem(id int64, unitPrice string, quantity int) entity.OrderItem {
	return entity.OrderItem{
		ID:        id,
		Name:      "item",
		Pricing:   entity.PricingQuantity,
		UnitPrice: price(unitPrice),
		Quantity:  quantity,
	}
}

func weightItem(id int64) entity.OrderItem {
	return entity.OrderItem{
		ID:      id,
		Name:    "tomatoes",
		Pricing: entity.PricingWeight,
	}
}

func testSections() entity.OrderSections {
	return entity.OrderSections{
		{
			Day: "2025 Wednesday 07/30",
			Orders: entity.Orders{
				{ID: 1, Status: entity.StatusPreparing, Items: []entity.OrderItem{
					quantityItem(1, "12.99", 1), quantityItem(2, "4.99", 2), quantityItem(3, "2.49", 1),
				}},
				{ID: 2, Status: entity.StatusOnTheWay, Items: []entity.OrderItem{
					quantityItem(1, "8.99", 1), quantityItem(2, "3.49", 1), quantityItem(3, "4.99", 1),
				}},
			},
		},
		{
			Day: "2025 Tuesday 07/29",
			Orders: entity.Orders{
				{ID: 3, Status: entity.StatusDelivered, Items: []entity.OrderItem{
					quantityItem(1, "6.99", 2), quantityItem(2, "3.99", 4), quantityItem(3, "2.99", 1),
				}},
			},
		},
		{
			Day:    "2025 Monday 07/28",
			Orders: entity.Orders{},
		},
		{
			Day: "2025 Sunday 07/27",
			Orders: entity.Orders{
				{ID: 4, Status: entity.StatusDelivered, Items: []entity.OrderItem{
					quantityItem(1, "3.49", 3), quantityItem(2, "2.99", 1), quantityItem(3, "4.99", 2),
				}},
			},
		},
	}
}

func TestPriceOrder(t *testing.T) {
	type want struct {
		subtotal    string
		tax         string
		total       string
		weightItems int
	}
	tests := []struct {
		name  string
		items []entity.OrderItem

		want want
	}{
		{
			name:  "pizza palace order",
			items: []entity.OrderItem{quantityItem(1, "12.99", 1), quantityItem(2, "4.99", 2), quantityItem(3, "2.49", 1)},

			want: want{subtotal: "25.46", tax: "2.04", total: "30.49"},
		},
		{
			name:  "burger hub order",
			items: []entity.OrderItem{quantityItem(1, "8.99", 1), quantityItem(2, "3.49", 1), quantityItem(3, "4.99", 1)},

			want: want{subtotal: "17.47", tax: "1.40", total: "21.86"},
		},
		{
			name:  "sushi express order",
			items: []entity.OrderItem{quantityItem(1, "6.99", 2), quantityItem(2, "3.99", 4), quantityItem(3, "2.99", 1)},

			want: want{subtotal: "32.93", tax: "2.63", total: "38.55"},
		},
		{
			name:  "weight priced item is left out",
			items: []entity.OrderItem{quantityItem(1, "10.00", 1), weightItem(2)},

			want: want{subtotal: "10.00", tax: "0.80", total: "13.79", weightItems: 1},
		},
		{
			name:  "only weight priced items",
			items: []entity.OrderItem{weightItem(1), weightItem(2)},

			want: want{subtotal: "0.00", tax: "0.00", total: "2.99", weightItems: 2},
		},
		{
			name:  "empty order pays delivery only",
			items: nil,

			want: want{subtotal: "0.00", tax: "0.00", total: "2.99"},
		},
		{
			name:  "item without price",
			items: []entity.OrderItem{{ID: 1, Pricing: entity.PricingQuantity, Quantity: 3}},

			want: want{subtotal: "0.00", tax: "0.00", total: "2.99"},
		},
		{
			name:  "zero quantity",
			items: []entity.OrderItem{quantityItem(1, "12.99", 0), quantityItem(2, "1.00", 1)},

			want: want{subtotal: "1.00", tax: "0.08", total: "4.07"},
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			breakdown := PriceOrder(entity.Order{ID: 1, Items: test.items})

			assert.Equal(t, test.want.subtotal, breakdown.Subtotal.StringFixed(2))
			assert.Equal(t, test.want.tax, breakdown.Tax.StringFixed(2))
			assert.Equal(t, test.want.total, breakdown.Total.StringFixed(2))
			assert.Equal(t, "2.99", breakdown.DeliveryFee.StringFixed(2))
			assert.Equal(t, test.want.weightItems, breakdown.WeightItems)
			assert.Equal(t, test.want.weightItems > 0, breakdown.WeightPriced())
		})
	}
}

func TestPriceOrderMatchesFormula(t *testing.T) {
	for _, order := range Flatten(testSections()) {
		subtotal := decimal.Zero
		for _, item := range order.Items {
			subtotal = subtotal.Add(item.UnitPrice.Mul(decimal.NewFromInt(int64(item.Quantity))))
		}
		expected := subtotal.Add(price("2.99")).Add(subtotal.Mul(price("0.08"))).Round(2)

		assert.True(t, expected.Equal(PriceOrder(order).Total), "order %d", order.ID)
	}
}

func TestDescribe(t *testing.T) {
	plain := PriceOrder(entity.Order{Items: []entity.OrderItem{quantityItem(1, "12.99", 1), quantityItem(2, "4.99", 2), quantityItem(3, "2.49", 1)}})
	assert.Equal(t, "Total $30.49", Describe(plain))
	assert.NotContains(t, Describe(plain), "weight")

	weighted := PriceOrder(entity.Order{Items: []entity.OrderItem{quantityItem(1, "10.00", 1), weightItem(2)}})
	assert.Contains(t, Describe(weighted), "price calculated by weight")
	assert.Contains(t, Describe(weighted), "$13.79")
}

func TestFlatten(t *testing.T) {
	sections := testSections()

	orders := Flatten(sections)

	require.Len(t, orders, 4)
	ids := make([]entity.OrderID, 0, len(orders))
	for _, order := range orders {
		ids = append(ids, order.ID)
	}
	assert.Equal(t, []entity.OrderID{1, 2, 3, 4}, ids)

	assert.Empty(t, Flatten(nil))
}

func TestSplitByStatus(t *testing.T) {
	tests := []struct {
		name     string
		sections entity.OrderSections

		wantActive    int
		wantDelivered int
	}{
		{
			name:          "mixed sections",
			sections:      testSections(),
			wantActive:    2,
			wantDelivered: 2,
		},
		{
			name:          "no sections",
			sections:      nil,
			wantActive:    0,
			wantDelivered: 0,
		},
		{
			name: "only active",
			sections: entity.OrderSections{
				{Day: "day", Orders: entity.Orders{{ID: 1, Status: entity.StatusPreparing}, {ID: 2, Status: entity.StatusOnTheWay}}},
			},
			wantActive:    2,
			wantDelivered: 0,
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			orders := Flatten(test.sections)
			active, delivered := SplitByStatus(orders)

			assert.Len(t, active, test.wantActive)
			assert.Len(t, delivered, test.wantDelivered)
			assert.Equal(t, len(orders), len(active)+len(delivered))

			for _, order := range active {
				assert.NotEqual(t, entity.StatusDelivered, order.Status)
			}
			for _, order := range delivered {
				assert.Equal(t, entity.StatusDelivered, order.Status)
			}
		})
	}
}

func TestSummarize(t *testing.T) {
	summary := Summarize(testSections())

	assert.Len(t, summary.Orders, 4)
	assert.Len(t, summary.Active, 2)
	assert.Len(t, summary.Delivered, 2)
	require.Len(t, summary.Breakdowns, 4)
	assert.Equal(t, "28.31", summary.Breakdowns[4].Total.StringFixed(2))
}
