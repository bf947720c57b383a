package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

type OrderStatus string

const (
	StatusPreparing OrderStatus = `preparing`
	StatusOnTheWay  OrderStatus = `on_the_way`
	StatusDelivered OrderStatus = `delivered`
)

func (s OrderStatus) Valid() bool {
	switch s {
	case StatusPreparing, StatusOnTheWay, StatusDelivered:
		return true
	}

	return false
}

// Active reports whether the order still waits for delivery.
func (s OrderStatus) Active() bool {
	return s != StatusDelivered
}

func (s OrderStatus) Text() string {
	switch s {
	case StatusPreparing:
		return "Preparing your order"
	case StatusOnTheWay:
		return "On the way"
	case StatusDelivered:
		return "Delivered"
	default:
		return "Unknown"
	}
}

type PricingMode string

const (
	PricingQuantity PricingMode = `quantity`
	PricingWeight   PricingMode = `weight`
)

type OrderID int64

type OrderItem struct {
	ID        int64
	Name      string
	Pricing   PricingMode
	UnitPrice decimal.Decimal
	Quantity  int
}

// WeightPriced items get their price only when the order is weighed at checkout.
func (i OrderItem) WeightPriced() bool {
	return i.Pricing == PricingWeight
}

type Customer struct {
	FullName string
	Phone    string
}

type DeliveryPerson struct {
	Name    string
	Phone   string
	Vehicle string
}

type Orders []Order

type Order struct {
	ID             OrderID
	UserID         UserID
	Number         string
	Status         OrderStatus
	Restaurant     string
	RestaurantLogo string
	Items          []OrderItem
	Address        string
	Customer       Customer
	DeliveryPerson *DeliveryPerson

	OrderTime         time.Time
	EstimatedDelivery *time.Time
	DeliveredTime     *time.Time
}

// Clone returns a copy which shares nothing mutable with the receiver.
func (o Order) Clone() Order {
	out := o
	out.Items = append([]OrderItem(nil), o.Items...)
	if o.DeliveryPerson != nil {
		person := *o.DeliveryPerson
		out.DeliveryPerson = &person
	}

	return out
}

type OrderSections []OrderSection

type OrderSection struct {
	Day    string
	Orders Orders
}

type OrderStatusEvent struct {
	OrderID    OrderID
	UserID     UserID
	Number     string
	Status     OrderStatus
	OccurredAt time.Time
}
