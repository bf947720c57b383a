// Package bag derives everything the bag screens show from the order
// sections handed over by storage: the flattened list, active and delivered
// orders and the price breakdown of each order.
package bag

import (
	"fmt"

	"github.com/avGenie/go-food-bag/internal/app/entity"
	"github.com/shopspring/decimal"
)

var (
	// TaxRate is applied to the item subtotal.
	TaxRate = decimal.RequireFromString("0.08")
	// DeliveryFee is charged once per order.
	DeliveryFee = decimal.RequireFromString("2.99")
)

const moneyPlaces = 2

type Breakdown struct {
	Subtotal    decimal.Decimal
	DeliveryFee decimal.Decimal
	Tax         decimal.Decimal
	Total       decimal.Decimal

	// WeightItems counts items left out of Total until they are weighed.
	WeightItems int
}

func (b Breakdown) WeightPriced() bool {
	return b.WeightItems > 0
}

type Summary struct {
	Orders     entity.Orders
	Active     entity.Orders
	Delivered  entity.Orders
	Breakdowns map[entity.OrderID]Breakdown
}

// Flatten keeps section order first and the order inside each section second.
func Flatten(sections entity.OrderSections) entity.Orders {
	count := 0
	for _, section := range sections {
		count += len(section.Orders)
	}

	orders := make(entity.Orders, 0, count)
	for _, section := range sections {
		orders = append(orders, section.Orders...)
	}

	return orders
}

func SplitByStatus(orders entity.Orders) (active entity.Orders, delivered entity.Orders) {
	active = make(entity.Orders, 0, len(orders))
	delivered = make(entity.Orders, 0, len(orders))

	for _, order := range orders {
		if order.Status.Active() {
			active = append(active, order)
			continue
		}
		delivered = append(delivered, order)
	}

	return active, delivered
}

// PriceOrder sums quantity priced items only. Items without a price count as zero.
func PriceOrder(order entity.Order) Breakdown {
	subtotal := decimal.Zero
	weightItems := 0

	for _, item := range order.Items {
		if item.WeightPriced() {
			weightItems++
			continue
		}
		subtotal = subtotal.Add(item.UnitPrice.Mul(decimal.NewFromInt(int64(item.Quantity))))
	}

	tax := subtotal.Mul(TaxRate)

	return Breakdown{
		Subtotal:    subtotal,
		DeliveryFee: DeliveryFee,
		Tax:         tax,
		Total:       subtotal.Add(DeliveryFee).Add(tax).Round(moneyPlaces),
		WeightItems: weightItems,
	}
}

func Describe(breakdown Breakdown) string {
	total := fmt.Sprintf("$%s", breakdown.Total.StringFixed(moneyPlaces))
	if !breakdown.WeightPriced() {
		return fmt.Sprintf("Total %s", total)
	}

	return fmt.Sprintf("Total %s + %d item(s) at checkout, price calculated by weight", total, breakdown.WeightItems)
}

func Summarize(sections entity.OrderSections) Summary {
	orders := Flatten(sections)
	active, delivered := SplitByStatus(orders)

	breakdowns := make(map[entity.OrderID]Breakdown, len(orders))
	for _, order := range orders {
		breakdowns[order.ID] = PriceOrder(order)
	}

	return Summary{
		Orders:     orders,
		Active:     active,
		Delivered:  delivered,
		Breakdowns: breakdowns,
	}
}
