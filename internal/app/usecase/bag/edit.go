package bag

import (
	"errors"

	"github.com/avGenie/go-food-bag/internal/app/entity"
)

var (
	ErrItemNotFound     = errors.New("item doesn't exist in order")
	ErrNegativeQuantity = errors.New("item quantity can't be negative")
)

func FindOrder(sections entity.OrderSections, id entity.OrderID) (entity.Order, bool) {
	for _, section := range sections {
		for _, order := range section.Orders {
			if order.ID == id {
				return order, true
			}
		}
	}

	return entity.Order{}, false
}

// UpdateItemQuantity returns an edited copy, the given order stays untouched.
func UpdateItemQuantity(order entity.Order, itemID int64, quantity int) (entity.Order, error) {
	if quantity < 0 {
		return order, ErrNegativeQuantity
	}

	edited := order.Clone()
	for i := range edited.Items {
		if edited.Items[i].ID == itemID {
			edited.Items[i].Quantity = quantity
			return edited, nil
		}
	}

	return order, ErrItemNotFound
}

func RemoveItem(order entity.Order, itemID int64) (entity.Order, error) {
	edited := order.Clone()
	items := edited.Items[:0]
	for _, item := range edited.Items {
		if item.ID != itemID {
			items = append(items, item)
		}
	}

	if len(items) == len(order.Items) {
		return order, ErrItemNotFound
	}
	edited.Items = items

	return edited, nil
}
