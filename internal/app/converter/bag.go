package converter

import (
	"github.com/avGenie/go-food-bag/internal/app/entity"
	"github.com/avGenie/go-food-bag/internal/app/model"
	"github.com/avGenie/go-food-bag/internal/app/usecase/bag"
	"github.com/shopspring/decimal"
)

const moneyPlaces = 2

func ConvertBreakdownToResponse(breakdown bag.Breakdown) model.PriceBreakdownResponse {
	return model.PriceBreakdownResponse{
		Subtotal:     breakdown.Subtotal.StringFixed(moneyPlaces),
		DeliveryFee:  breakdown.DeliveryFee.StringFixed(moneyPlaces),
		Tax:          breakdown.Tax.StringFixed(moneyPlaces),
		Total:        breakdown.Total.StringFixed(moneyPlaces),
		WeightPriced: breakdown.WeightPriced(),
		WeightItems:  breakdown.WeightItems,
		Description:  bag.Describe(breakdown),
	}
}

func ConvertOrderToResponse(order entity.Order, breakdown bag.Breakdown) model.OrderResponse {
	items := make([]model.OrderItemResponse, 0, len(order.Items))
	for _, item := range order.Items {
		response := model.OrderItemResponse{
			ID:       item.ID,
			Name:     item.Name,
			Pricing:  string(item.Pricing),
			Quantity: item.Quantity,
		}
		if !item.WeightPriced() {
			response.UnitPrice = item.UnitPrice.StringFixed(moneyPlaces)
			response.LineTotal = item.UnitPrice.Mul(decimal.NewFromInt(int64(item.Quantity))).StringFixed(moneyPlaces)
		}
		items = append(items, response)
	}

	response := model.OrderResponse{
		ID:             int64(order.ID),
		OrderNumber:    order.Number,
		Status:         string(order.Status),
		StatusText:     order.Status.Text(),
		Restaurant:     order.Restaurant,
		RestaurantLogo: order.RestaurantLogo,
		Items:          items,
		Address:        order.Address,
		Customer: model.CustomerResponse{
			FullName: order.Customer.FullName,
			Phone:    order.Customer.Phone,
		},
		OrderTime:         formatTime(order.OrderTime),
		EstimatedDelivery: formatOptionalTime(order.EstimatedDelivery),
		DeliveredTime:     formatOptionalTime(order.DeliveredTime),
		Breakdown:         ConvertBreakdownToResponse(breakdown),
	}

	if order.DeliveryPerson != nil {
		response.DeliveryPerson = &model.DeliveryPersonResponse{
			Name:    order.DeliveryPerson.Name,
			Phone:   order.DeliveryPerson.Phone,
			Vehicle: order.DeliveryPerson.Vehicle,
		}
	}

	return response
}

func ConvertSectionsToBagResponse(sections entity.OrderSections) model.BagResponse {
	summary := bag.Summarize(sections)

	out := make([]model.OrderSectionResponse, 0, len(sections))
	for _, section := range sections {
		orders := make([]model.OrderResponse, 0, len(section.Orders))
		for _, order := range section.Orders {
			orders = append(orders, ConvertOrderToResponse(order, summary.Breakdowns[order.ID]))
		}

		out = append(out, model.OrderSectionResponse{
			Day:    section.Day,
			Orders: orders,
		})
	}

	return model.BagResponse{
		Sections:       out,
		ActiveCount:    len(summary.Active),
		DeliveredCount: len(summary.Delivered),
		TotalCount:     len(summary.Orders),
	}
}

// ApplySaveOrderRequest applies the edit on top of the stored order through
// the bag editing rules: listed items get their quantity, the rest are removed.
// A request without items keeps the stored ones.
func ApplySaveOrderRequest(order entity.Order, request model.SaveOrderRequest) (entity.Order, error) {
	edited := order.Clone()
	if request.Items != nil {
		var err error
		edited, err = applySaveItems(order, request.Items)
		if err != nil {
			return order, err
		}
	}

	if len(request.Address) != 0 {
		edited.Address = request.Address
	}
	if len(request.Customer.FullName) != 0 {
		edited.Customer.FullName = request.Customer.FullName
	}
	if len(request.Customer.Phone) != 0 {
		edited.Customer.Phone = request.Customer.Phone
	}

	return edited, nil
}

func applySaveItems(order entity.Order, items []model.SaveOrderItemRequest) (entity.Order, error) {
	edited := order.Clone()
	kept := make(map[int64]struct{}, len(items))

	var err error
	for _, item := range items {
		edited, err = bag.UpdateItemQuantity(edited, item.ID, item.Quantity)
		if err != nil {
			return order, err
		}
		kept[item.ID] = struct{}{}
	}

	for _, item := range order.Items {
		if _, ok := kept[item.ID]; ok {
			continue
		}
		edited, err = bag.RemoveItem(edited, item.ID)
		if err != nil {
			return order, err
		}
	}

	return edited, nil
}
