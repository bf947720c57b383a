package converter

import (
	"fmt"

	"github.com/avGenie/go-food-bag/internal/app/entity"
	"github.com/avGenie/go-food-bag/internal/app/model"
	"github.com/shopspring/decimal"
)

// ConvertOrderResponseToOrder rebuilds the order on the client side so it can
// be edited and priced locally before saving.
func ConvertOrderResponseToOrder(response model.OrderResponse) (entity.Order, error) {
	items := make([]entity.OrderItem, 0, len(response.Items))
	for _, item := range response.Items {
		price := decimal.Zero
		if len(item.UnitPrice) != 0 {
			parsed, err := decimal.NewFromString(item.UnitPrice)
			if err != nil {
				return entity.Order{}, fmt.Errorf("error while parsing price of item %d: %w", item.ID, err)
			}
			price = parsed
		}

		items = append(items, entity.OrderItem{
			ID:        item.ID,
			Name:      item.Name,
			Pricing:   entity.PricingMode(item.Pricing),
			UnitPrice: price,
			Quantity:  item.Quantity,
		})
	}

	orderTime, err := parseTime(response.OrderTime)
	if err != nil {
		return entity.Order{}, fmt.Errorf("error while parsing order time: %w", err)
	}

	estimatedDelivery, err := parseOptionalTime(response.EstimatedDelivery)
	if err != nil {
		return entity.Order{}, fmt.Errorf("error while parsing estimated delivery time: %w", err)
	}

	deliveredTime, err := parseOptionalTime(response.DeliveredTime)
	if err != nil {
		return entity.Order{}, fmt.Errorf("error while parsing delivered time: %w", err)
	}

	var deliveryPerson *entity.DeliveryPerson
	if response.DeliveryPerson != nil {
		deliveryPerson = &entity.DeliveryPerson{
			Name:    response.DeliveryPerson.Name,
			Phone:   response.DeliveryPerson.Phone,
			Vehicle: response.DeliveryPerson.Vehicle,
		}
	}

	return entity.Order{
		ID:             entity.OrderID(response.ID),
		Number:         response.OrderNumber,
		Status:         entity.OrderStatus(response.Status),
		Restaurant:     response.Restaurant,
		RestaurantLogo: response.RestaurantLogo,
		Items:          items,
		Address:        response.Address,
		Customer: entity.Customer{
			FullName: response.Customer.FullName,
			Phone:    response.Customer.Phone,
		},
		DeliveryPerson:    deliveryPerson,
		OrderTime:         orderTime,
		EstimatedDelivery: estimatedDelivery,
		DeliveredTime:     deliveredTime,
	}, nil
}

func ConvertOrderToSaveRequest(order entity.Order) model.SaveOrderRequest {
	items := make([]model.SaveOrderItemRequest, 0, len(order.Items))
	for _, item := range order.Items {
		items = append(items, model.SaveOrderItemRequest{
			ID:       item.ID,
			Quantity: item.Quantity,
		})
	}

	return model.SaveOrderRequest{
		Items:   items,
		Address: order.Address,
		Customer: model.CustomerResponse{
			FullName: order.Customer.FullName,
			Phone:    order.Customer.Phone,
		},
	}
}
